package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/quickrecap/recap-pipeline/internal/logger"
	"github.com/quickrecap/recap-pipeline/internal/roles"
	"github.com/quickrecap/recap-pipeline/internal/store"
	"github.com/quickrecap/recap-pipeline/internal/summarize"
)

// Handle runs the full pipeline for one record-update event.
//
// The run is gated twice: records that already carry results are skipped,
// and a compare-and-swap on the processing status ensures that of two
// concurrent updates for the same user only one proceeds. Transient
// failures are retried with exponential backoff; terminal failures mark
// the record failed immediately. No partial results are ever written.
func (p *implPipeline) Handle(ctx context.Context, event Event) error {
	log := p.log.WithField("user_id", event.UserID)

	if event.FileURL == "" {
		log.Debug(ctx, "No file URL on event, skipping")
		return nil
	}

	unlock := p.locks.lock(event.UserID)
	defer unlock()

	rec, err := p.deps.Store.Get(ctx, event.UserID)
	if err != nil {
		return fmt.Errorf("load record: %w", err)
	}

	if rec.HasResults() {
		log.Info(ctx, "Transcript already exists, skipping processing")
		return nil
	}

	claimed, err := p.deps.Store.ClaimProcessing(ctx, event.UserID)
	if err != nil {
		return fmt.Errorf("claim record: %w", err)
	}
	if !claimed {
		log.Info(ctx, "Record claimed by another run, skipping")
		return nil
	}

	start := time.Now()
	log.Info(ctx, "Starting media processing: %s", event.FileURL)

	if err := p.runWithRetry(ctx, log, rec, event); err != nil {
		log.Error(ctx, "Processing failed: %v", err)
		if statusErr := p.deps.Store.SetStatus(ctx, event.UserID, store.StatusFailed); statusErr != nil {
			log.Error(ctx, "Failed to mark record failed: %v", statusErr)
		}
		return err
	}

	log.Info(ctx, "Processing completed in %s", time.Since(start))
	return nil
}

func (p *implPipeline) runWithRetry(ctx context.Context, log logger.Logger, rec *store.UserMediaRecord, event Event) error {
	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(p.cfg.MaxRetries)),
		ctx,
	)

	attempt := 0
	op := func() error {
		attempt++
		if attempt > 1 {
			log.Warn(ctx, "Retrying processing (attempt %d)", attempt)
		}

		err := p.run(ctx, log, rec, event)
		if err == nil {
			return nil
		}
		if IsTerminal(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	return backoff.Retry(op, bo)
}

// run executes the stages of one attempt in strict order: acquire,
// transcode, re-upload, transcribe, summarize, persist.
func (p *implPipeline) run(ctx context.Context, log logger.Logger, rec *store.UserMediaRecord, event Event) error {
	scratch, err := p.newScratch(event.UserID)
	if err != nil {
		return fmt.Errorf("create scratch dir: %w", err)
	}
	defer scratch.cleanup(ctx, log)

	fileName, err := fileNameFromURL(event.FileURL)
	if err != nil {
		return Terminal(fmt.Errorf("parse file URL: %w", err))
	}

	uploadKey := fmt.Sprintf("uploads/%s/%s", event.UserID, fileName)
	mediaPath := scratch.path(fileName)

	log.Info(ctx, "Downloading media: %s", uploadKey)
	if err := p.deps.Blobs.Download(ctx, uploadKey, mediaPath); err != nil {
		return fmt.Errorf("download media: %w", err)
	}

	wavPath := scratch.path("audio.wav")
	if err := p.deps.Transcoder.ToWAV(ctx, mediaPath, wavPath); err != nil {
		// A failed transcode means the input itself is unusable.
		return Terminal(fmt.Errorf("transcode media: %w", err))
	}

	audioKey := fmt.Sprintf("audio/%s/audio.wav", event.UserID)
	log.Info(ctx, "Uploading waveform: %s", audioKey)
	if err := p.deps.Blobs.Upload(ctx, audioKey, wavPath); err != nil {
		return fmt.Errorf("upload waveform: %w", err)
	}

	transcript, err := p.deps.Transcriber.Transcribe(ctx, p.deps.Blobs.URI(audioKey))
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}
	log.Debug(ctx, "Transcript length: %d characters", len(transcript))

	sentences := summarize.Segment(transcript)

	results := store.Results{
		Transcript:          transcript,
		GenericSummary:      summarize.Sentences(sentences, p.cfg.SummaryLength),
		PersonalizedSummary: roles.Personalize(rec.Role, sentences),
	}

	if err := p.deps.Store.SaveResults(ctx, event.UserID, results); err != nil {
		return fmt.Errorf("save results: %w", err)
	}

	if p.deps.Report != nil {
		if err := p.deps.Report.Write(ctx, event.UserID, results); err != nil {
			log.Warn(ctx, "Failed to write artifact: %v", err)
		}
	}

	return nil
}
