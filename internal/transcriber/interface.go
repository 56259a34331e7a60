package transcriber

import "context"

// Transcriber converts a stored waveform into a transcript via an external
// speech recognition service. The call is long-running: implementations
// submit a job and wait for asynchronous completion.
type Transcriber interface {
	// Transcribe resolves audioURI to its full transcript. An audio file the
	// service recognizes nothing in yields an empty transcript, not an error.
	Transcribe(ctx context.Context, audioURI string) (string, error)
}
