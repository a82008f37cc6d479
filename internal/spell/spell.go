// Package spell wraps the English misspelling dictionary used by the text
// extractors. The dictionary is compiled once per process and is read-only
// afterwards, so a single shared Checker is safe for concurrent use.
package spell

import (
	"strings"
	"sync"
	"unicode"

	"github.com/client9/misspell"
)

// Checker answers whether a single token is a known misspelling.
type Checker struct {
	replacer *misspell.Replacer
}

var (
	defaultOnce    sync.Once
	defaultChecker *Checker
)

// Default returns the process-wide Checker, compiling the dictionary on
// first use.
func Default() *Checker {
	defaultOnce.Do(func() {
		r := misspell.New()
		r.Compile()
		defaultChecker = &Checker{replacer: r}
	})
	return defaultChecker
}

// Misspelled reports whether the given token is a known English
// misspelling. The lookup is case-insensitive. Tokens that are not plain
// words (empty, or carrying non-letter runes) are never flagged.
func (c *Checker) Misspelled(token string) bool {
	word := strings.ToLower(token)
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	corrected, diffs := c.replacer.Replace(word)
	return len(diffs) > 0 && corrected != word
}

// Words tokenizes natural-language text for spell checking: split on
// whitespace, strip surrounding punctuation, lowercase, and keep only
// pure-alphabetic tokens. Identifiers, numbers, and code fragments do not
// survive this filter, so they are never handed to the dictionary. The same
// tokenizer serves comments, docstrings, and markdown cells.
func Words(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		w = strings.ToLower(w)
		if w == "" {
			continue
		}
		alpha := true
		for _, r := range w {
			if !unicode.IsLetter(r) {
				alpha = false
				break
			}
		}
		if alpha {
			words = append(words, w)
		}
	}
	return words
}

// CountMisspelled returns how many tokens of the text are known
// misspellings.
func (c *Checker) CountMisspelled(text string) int {
	n := 0
	for _, w := range Words(text) {
		if c.Misspelled(w) {
			n++
		}
	}
	return n
}
