package store

// Status tracks a record's progress through the pipeline.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusDone       Status = "done"
	StatusFailed     Status = "failed"
)

// UserMediaRecord is the slice of the user record the pipeline reads and
// writes. Unrelated fields in the backing store are never touched.
type UserMediaRecord struct {
	UserID              string
	Role                string
	FileURL             string
	Transcript          string
	GenericSummary      string
	PersonalizedSummary string
	Status              Status
}

// HasResults reports whether the record already holds a transcript and a
// summary, in which case reprocessing is redundant.
func (r *UserMediaRecord) HasResults() bool {
	return r.Transcript != "" && r.GenericSummary != ""
}

// Results is the output of one successful pipeline run. The three fields are
// always persisted together.
type Results struct {
	Transcript          string
	GenericSummary      string
	PersonalizedSummary string
}
