package summarize

import (
	"strings"
	"unicode"
)

// Abbreviations that end with a period but do not terminate a sentence.
var abbreviations = map[string]bool{
	"mr":     true,
	"mrs":    true,
	"ms":     true,
	"dr":     true,
	"prof":   true,
	"sr":     true,
	"jr":     true,
	"st":     true,
	"vs":     true,
	"etc":    true,
	"inc":    true,
	"ltd":    true,
	"co":     true,
	"e.g":    true,
	"i.e":    true,
	"approx": true,
}

// Segment splits text into sentences, preserving discourse order. Terminal
// punctuation (. ! ?) ends a sentence unless it closes a known abbreviation,
// a single-letter initial, or sits inside a number. Whitespace-only input
// yields no sentences.
func Segment(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var sentences []string
	runes := []rune(text)
	start := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}

		if r == '.' && !isBoundaryPeriod(runes, i) {
			continue
		}

		// Consume trailing closers and repeated terminators ("?!", "...").
		end := i
		for end+1 < len(runes) && isTerminatorOrCloser(runes[end+1]) {
			end++
		}

		s := strings.TrimSpace(string(runes[start : end+1]))
		if s != "" {
			sentences = append(sentences, s)
		}
		start = end + 1
		i = end
	}

	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		sentences = append(sentences, tail)
	}

	return sentences
}

// isBoundaryPeriod reports whether the period at position i ends a sentence.
func isBoundaryPeriod(runes []rune, i int) bool {
	// A digit on both sides means a decimal point.
	if i > 0 && i+1 < len(runes) && unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]) {
		return false
	}

	// Must be followed by end of text or whitespace (possibly after closers).
	j := i + 1
	for j < len(runes) && isCloser(runes[j]) {
		j++
	}
	if j < len(runes) && !unicode.IsSpace(runes[j]) {
		return false
	}

	// Collect the word immediately before the period.
	w := i - 1
	for w >= 0 && (unicode.IsLetter(runes[w]) || runes[w] == '.') {
		w--
	}
	word := strings.ToLower(strings.TrimSuffix(string(runes[w+1:i]), "."))

	if abbreviations[word] {
		return false
	}
	// Single-letter initials such as "J." in "J. Smith".
	if len(word) == 1 && j < len(runes) {
		return false
	}

	return true
}

func isTerminatorOrCloser(r rune) bool {
	return r == '.' || r == '!' || r == '?' || isCloser(r)
}

func isCloser(r rune) bool {
	return r == '"' || r == '\'' || r == ')' || r == ']' || r == '”' || r == '’'
}
