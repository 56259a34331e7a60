package transcode

import "context"

// Transcoder normalizes an uploaded media file into the waveform format the
// transcription service expects.
type Transcoder interface {
	// ToWAV extracts the audio track of inputPath into outputPath as mono
	// 44.1 kHz 16-bit little-endian PCM in a WAV container.
	ToWAV(ctx context.Context, inputPath, outputPath string) error
}
