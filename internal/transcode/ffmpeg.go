package transcode

import (
	"context"
	"fmt"
)

// ToWAV converts the input to the fixed transcription target format.
// Transcription accuracy depends on this exact shape, so the arguments are
// not configurable.
func (t *implTranscoder) ToWAV(ctx context.Context, inputPath, outputPath string) error {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	t.logger.Info(ctx, "Extracting audio: %s", inputPath)

	// -vn: drop video
	// -ac 1: mono
	// -ar 44100: 44.1 kHz sample rate
	// -c:a pcm_s16le: 16-bit little-endian linear PCM
	// -y: overwrite output
	args := []string{
		"-i", inputPath,
		"-vn",
		"-ac", "1",
		"-ar", "44100",
		"-c:a", "pcm_s16le",
		"-f", "wav",
		"-y",
		outputPath,
	}

	if _, err := t.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return fmt.Errorf("ffmpeg transcode: %w", err)
	}

	t.logger.Info(ctx, "Audio extracted: %s", outputPath)
	return nil
}
