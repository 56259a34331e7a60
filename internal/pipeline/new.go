package pipeline

import (
	"github.com/quickrecap/recap-pipeline/internal/blobstore"
	"github.com/quickrecap/recap-pipeline/internal/config"
	"github.com/quickrecap/recap-pipeline/internal/logger"
	"github.com/quickrecap/recap-pipeline/internal/report"
	"github.com/quickrecap/recap-pipeline/internal/store"
	"github.com/quickrecap/recap-pipeline/internal/transcode"
	"github.com/quickrecap/recap-pipeline/internal/transcriber"
)

// Deps collects the pipeline's external collaborators. All are required
// except Report.
type Deps struct {
	Store       store.RecordStore
	Blobs       blobstore.BlobStore
	Transcoder  transcode.Transcoder
	Transcriber transcriber.Transcriber

	// Report, when set, writes a docx artifact per completed run.
	Report report.Writer
}

type implPipeline struct {
	cfg   config.PipelineConfig
	paths config.PathsConfig
	deps  Deps
	log   logger.Logger
	locks *keyedMutex
}

// New creates a Pipeline instance
func New(cfg config.PipelineConfig, paths config.PathsConfig, deps Deps, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:   cfg,
		paths: paths,
		deps:  deps,
		log:   log,
		locks: newKeyedMutex(),
	}
}
