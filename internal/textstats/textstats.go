// Package textstats computes lexical metrics for one text unit at a time: a
// single comment, a single docstring, or a single markdown cell.
package textstats

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/teachnology/codelytics/internal/spell"
)

// sentencePattern is a sentence-boundary heuristic, not a full parse: a
// sentence starts with an uppercase letter and runs to the first
// terminating punctuation mark.
var sentencePattern = regexp.MustCompile(`[A-Z][^.!?]*[.!?]`)

// UnitStats holds the lexical metrics of one text unit.
type UnitStats struct {
	Words      int
	Chars      int
	Sentences  int
	NonASCII   int
	Misspelled int
	// Why is set for comments that explain reasoning rather than restate
	// the code. See Classify.
	Why bool
}

// Analyze computes the lexical metrics of a single text unit. Spell
// checking goes through the shared dictionary; the Why flag is only
// meaningful for comments and is filled by the caller via Classify.
func Analyze(text string, checker *spell.Checker) UnitStats {
	return UnitStats{
		Words:      len(strings.Fields(text)),
		Chars:      utf8.RuneCountInString(text),
		Sentences:  len(sentencePattern.FindAllString(text, -1)),
		NonASCII:   countNonASCII(text),
		Misspelled: checker.CountMisspelled(text),
	}
}

func countNonASCII(text string) int {
	n := 0
	for _, r := range text {
		if r > 127 {
			n++
		}
	}
	return n
}
