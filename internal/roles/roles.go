package roles

import (
	"strings"

	"github.com/quickrecap/recap-pipeline/internal/summarize"
)

// Profile biases summarization toward sentences relevant to a reader
// persona. Profiles are fixed at build time and immutable.
type Profile struct {
	Name          string
	Keywords      []string
	SummaryLength int
}

// DefaultRole is used when a record carries no role or an unknown one.
const DefaultRole = "student"

var profiles = map[string]Profile{
	"student": {
		Name:          "student",
		Keywords:      []string{"education", "learn", "lesson", "life", "study", "university", "college"},
		SummaryLength: 3,
	},
	"entrepreneur": {
		Name:          "entrepreneur",
		Keywords:      []string{"business", "startup", "innovation", "risk", "vision", "failure", "success"},
		SummaryLength: 3,
	},
	"teacher": {
		Name:          "teacher",
		Keywords:      []string{"message", "structure", "clarity", "lesson", "teaching", "explain", "example"},
		SummaryLength: 4,
	},
	"content_creator": {
		Name:          "content_creator",
		Keywords:      []string{"quote", "viral", "story", "attention", "audience", "engagement", "hook"},
		SummaryLength: 2,
	},
}

// Resolve maps a role name to its profile, falling back to the default
// profile for unknown or empty names.
func Resolve(role string) Profile {
	if p, ok := profiles[strings.ToLower(strings.TrimSpace(role))]; ok {
		return p
	}
	return profiles[DefaultRole]
}

// Personalize summarizes the sentences most relevant to the role. Sentences
// containing any profile keyword (case-insensitive substring match) are
// preferred; when no sentence matches, the whole corpus is summarized so a
// keyword miss never empties the summary.
func Personalize(role string, sentences []string) string {
	profile := Resolve(role)

	var filtered []string
	for _, s := range sentences {
		lower := strings.ToLower(s)
		for _, kw := range profile.Keywords {
			if strings.Contains(lower, kw) {
				filtered = append(filtered, s)
				break
			}
		}
	}

	if len(filtered) == 0 {
		filtered = sentences
	}

	return summarize.Sentences(filtered, profile.SummaryLength)
}
