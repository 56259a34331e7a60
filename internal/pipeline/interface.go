package pipeline

import "context"

// Event is one record-update notification: a user whose record now carries
// a freshly uploaded media reference.
type Event struct {
	UserID  string `json:"userId"`
	FileURL string `json:"fileUrl"`
}

// Pipeline turns an uploaded media blob into a transcript and two summaries
// and persists them on the user's record.
type Pipeline interface {
	Handle(ctx context.Context, event Event) error
}
