package roles

import (
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		role string
		want string
	}{
		{name: "known role", role: "entrepreneur", want: "entrepreneur"},
		{name: "case insensitive", role: "Teacher", want: "teacher"},
		{name: "unknown role falls back", role: "astronaut", want: DefaultRole},
		{name: "empty role falls back", role: "", want: DefaultRole},
		{name: "whitespace trimmed", role: "  student  ", want: "student"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.role); got.Name != tt.want {
				t.Errorf("Resolve(%q).Name = %q, want %q", tt.role, got.Name, tt.want)
			}
		})
	}
}

func TestPersonalizePrefersKeywordSentences(t *testing.T) {
	sentences := []string{
		"The weather was pleasant all week.",
		"Starting a business takes real vision.",
		"Lunch was served at noon.",
	}

	got := Personalize("entrepreneur", sentences)
	if !strings.Contains(got, "business") {
		t.Errorf("Personalize = %q, expected the business sentence", got)
	}
	if strings.Contains(got, "Lunch") {
		t.Errorf("Personalize = %q, unexpected non-keyword sentence", got)
	}
}

func TestPersonalizeSubstringMatch(t *testing.T) {
	// Keyword matching is substring-based, so "risk" matches "risky".
	sentences := []string{
		"The plan felt quite risky overall.",
		"Dinner happened late that evening.",
	}

	got := Personalize("entrepreneur", sentences)
	if !strings.Contains(got, "risky") {
		t.Errorf("Personalize = %q, expected substring keyword match", got)
	}
}

func TestPersonalizeFallbackOnNoMatch(t *testing.T) {
	sentences := []string{
		"The river flowed quietly.",
		"Birds circled overhead all morning.",
		"The river froze by night.",
	}

	// No entrepreneur keyword appears anywhere; the full corpus must be
	// summarized instead of returning nothing.
	got := Personalize("entrepreneur", sentences)
	if got == "" {
		t.Fatal("Personalize returned empty output despite non-empty corpus")
	}
}

func TestPersonalizeEmptyCorpus(t *testing.T) {
	if got := Personalize("student", nil); got != "" {
		t.Errorf("Personalize(student, nil) = %q, want empty", got)
	}
}

func TestPersonalizeUsesProfileLength(t *testing.T) {
	sentences := []string{
		"A good story starts with a hook.",
		"The audience decides what goes viral.",
		"Attention is the scarcest resource.",
		"A strong quote travels far.",
	}

	// content_creator summaries hold at most 2 sentences.
	got := Personalize("content_creator", sentences)
	count := 0
	for _, s := range sentences {
		if strings.Contains(got, s) {
			count++
		}
	}
	if count != 2 {
		t.Errorf("Personalize selected %d sentences, want 2: %q", count, got)
	}
}
