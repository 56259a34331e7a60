package blobstore

import "context"

// BlobStore abstracts the object storage holding uploaded media and
// extracted waveforms. Keys are slash-separated paths within one bucket.
type BlobStore interface {
	// Download copies the object at key to the local destination path.
	Download(ctx context.Context, key, destPath string) error

	// Upload stores the local file at srcPath under key, overwriting any
	// existing object.
	Upload(ctx context.Context, key, srcPath string) error

	// URI returns the external reference for key, in the form the
	// transcription service resolves.
	URI(key string) string
}
