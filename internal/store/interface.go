package store

import "context"

// RecordStore is the pipeline's view of the durable user record store.
type RecordStore interface {
	// Get fetches a user's record. Missing records return ErrNotFound.
	Get(ctx context.Context, userID string) (*UserMediaRecord, error)

	// ClaimProcessing atomically moves the record to StatusProcessing and
	// reports whether the claim won. A false return means another run holds
	// the record; the caller must not process.
	ClaimProcessing(ctx context.Context, userID string) (bool, error)

	// SetStatus updates only the status field.
	SetStatus(ctx context.Context, userID string, status Status) error

	// SaveResults merges transcript and both summaries into the record in a
	// single write and marks it done. Unrelated fields are preserved.
	SaveResults(ctx context.Context, userID string, results Results) error

	Close(ctx context.Context) error
}
