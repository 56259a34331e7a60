package summarize

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercases and strips punctuation",
			text: "The Cat, sat!",
			want: []string{"the", "cat", "sat"},
		},
		{
			name: "keeps contractions",
			text: "don't stop",
			want: []string{"don't", "stop"},
		},
		{
			name: "empty",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestWordFrequenciesExcludesStopWords(t *testing.T) {
	freq := WordFrequencies("the cat and the cat")
	if freq["the"] != 0 || freq["and"] != 0 {
		t.Errorf("stop words must not be counted: %v", freq)
	}
	if freq["cat"] != 2 {
		t.Errorf("freq[cat] = %d, want 2", freq["cat"])
	}
}

func TestSentencesRanking(t *testing.T) {
	corpus := []string{
		"the cat sat",
		"the cat sat on the mat",
		"dogs bark loudly",
	}

	got := Sentences(corpus, 1)
	want := "the cat sat on the mat"
	if got != want {
		t.Errorf("Sentences(corpus, 1) = %q, want %q", got, want)
	}
}

func TestSentencesScoreDescendingOrder(t *testing.T) {
	corpus := []string{
		"dogs bark loudly",
		"the cat sat on the mat",
		"the cat sat",
	}

	// Highest-scoring sentence comes first even though it appears second.
	got := Sentences(corpus, 2)
	want := "the cat sat on the mat the cat sat"
	if got != want {
		t.Errorf("Sentences(corpus, 2) = %q, want %q", got, want)
	}
}

func TestSentencesStableTieBreak(t *testing.T) {
	// Both sentences score identically; original order must hold.
	corpus := []string{"alpha beta", "beta alpha"}
	got := Sentences(corpus, 2)
	want := "alpha beta beta alpha"
	if got != want {
		t.Errorf("Sentences(corpus, 2) = %q, want %q", got, want)
	}
}

func TestSentencesDeterminism(t *testing.T) {
	corpus := []string{
		"education shapes every life",
		"business requires vision and risk",
		"a story holds attention",
		"learning never stops",
	}

	first := Sentences(corpus, 2)
	for i := 0; i < 10; i++ {
		if got := Sentences(corpus, 2); got != first {
			t.Fatalf("run %d produced %q, first run produced %q", i, got, first)
		}
	}
}

func TestSentencesTruncation(t *testing.T) {
	corpus := []string{"one sentence here.", "two sentences here.", "three sentences here."}
	got := Sentences(corpus, 5)
	if got == "" {
		t.Fatal("expected all sentences, got empty output")
	}
	for _, s := range corpus {
		if !strings.Contains(got, s) {
			t.Errorf("output %q missing sentence %q", got, s)
		}
	}
}

func TestSentencesEmptyCorpus(t *testing.T) {
	if got := Sentences(nil, 3); got != "" {
		t.Errorf("Sentences(nil, 3) = %q, want empty", got)
	}
	if got := Sentences([]string{}, 0); got != "" {
		t.Errorf("Sentences(empty, 0) = %q, want empty", got)
	}
}

func TestEmptyTextSummarizesEmpty(t *testing.T) {
	if got := Sentences(Segment(""), DefaultLength); got != "" {
		t.Errorf("summary of empty text = %q, want empty", got)
	}
	if got := Sentences(Segment("   "), DefaultLength); got != "" {
		t.Errorf("summary of whitespace text = %q, want empty", got)
	}
}
