package transcode

import (
	"time"

	"github.com/quickrecap/recap-pipeline/internal/logger"
	"github.com/quickrecap/recap-pipeline/pkg/executor"
)

type implTranscoder struct {
	executor executor.Executor
	logger   logger.Logger
	timeout  time.Duration
}

// New creates a Transcoder that shells out to ffmpeg. Each run is bounded
// by timeout.
func New(exec executor.Executor, log logger.Logger, timeout time.Duration) Transcoder {
	return &implTranscoder{
		executor: exec,
		logger:   log,
		timeout:  timeout,
	}
}
