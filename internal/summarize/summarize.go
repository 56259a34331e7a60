package summarize

import (
	"sort"
	"strings"
	"unicode"
)

// DefaultLength is the sentence count of the generic summary.
const DefaultLength = 3

// Tokenize lower-cases text and splits it into words. Apostrophes are kept
// inside words so contractions survive stop-word matching.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})

	words := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "'")
		if f != "" {
			words = append(words, f)
		}
	}
	return words
}

// WordFrequencies builds a frequency table over the non-stop-words of text.
func WordFrequencies(text string) map[string]int {
	freq := make(map[string]int)
	for _, w := range Tokenize(text) {
		if !IsStopWord(w) {
			freq[w]++
		}
	}
	return freq
}

// Score sums the frequency-table counts of a sentence's words. Stop words
// contribute nothing; a sentence with no table words scores zero.
func Score(sentence string, freq map[string]int) int {
	total := 0
	for _, w := range Tokenize(sentence) {
		total += freq[w]
	}
	return total
}

// Sentences selects the n highest-scoring sentences and joins them with
// single spaces, most central first. Ties keep original sentence order
// (stable sort), so output is reproducible for identical input. When n
// exceeds the corpus, every sentence is returned; an empty corpus yields
// an empty string.
func Sentences(sentences []string, n int) string {
	if len(sentences) == 0 || n <= 0 {
		return ""
	}

	freq := WordFrequencies(strings.Join(sentences, " "))

	type scored struct {
		sentence string
		score    int
	}
	ranked := make([]scored, len(sentences))
	for i, s := range sentences {
		ranked[i] = scored{sentence: s, score: Score(s, freq)}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if n > len(ranked) {
		n = len(ranked)
	}

	selected := make([]string, n)
	for i := 0; i < n; i++ {
		selected[i] = ranked[i].sentence
	}
	return strings.Join(selected, " ")
}
