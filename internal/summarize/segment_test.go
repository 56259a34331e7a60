package summarize

import (
	"reflect"
	"testing"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "basic terminators",
			text: "Hello world. How are you? Great!",
			want: []string{"Hello world.", "How are you?", "Great!"},
		},
		{
			name: "abbreviation not a boundary",
			text: "Dr. Smith arrived late. He apologized.",
			want: []string{"Dr. Smith arrived late.", "He apologized."},
		},
		{
			name: "decimal number not a boundary",
			text: "Pi is roughly 3.14 in value. Everyone knows that.",
			want: []string{"Pi is roughly 3.14 in value.", "Everyone knows that."},
		},
		{
			name: "single letter initial",
			text: "It was J. Smith who spoke. Nobody disagreed.",
			want: []string{"It was J. Smith who spoke.", "Nobody disagreed."},
		},
		{
			name: "no terminal punctuation",
			text: "an unfinished thought",
			want: []string{"an unfinished thought"},
		},
		{
			name: "repeated terminators",
			text: "Really?! I had no idea.",
			want: []string{"Really?!", "I had no idea."},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "whitespace only",
			text: "   \t\n ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segment(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segment(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSegmentPreservesOrder(t *testing.T) {
	text := "First sentence here. Second sentence here. Third sentence here."
	got := Segment(text)
	if len(got) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %v", len(got), got)
	}
	for i, prefix := range []string{"First", "Second", "Third"} {
		if got[i][:len(prefix)] != prefix {
			t.Errorf("sentence %d = %q, want prefix %q", i, got[i], prefix)
		}
	}
}
