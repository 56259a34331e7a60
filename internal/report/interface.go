package report

import (
	"context"

	"github.com/quickrecap/recap-pipeline/internal/store"
)

// Writer exports a completed run's results as a downloadable artifact.
type Writer interface {
	Write(ctx context.Context, userID string, results store.Results) error
}
