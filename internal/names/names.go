// Package names classifies user-defined identifiers by naming convention.
package names

import (
	"regexp"
	"unicode/utf8"
)

// Style patterns. SimplePattern doubles as the documented rule for what a
// "simple" identifier is: one lowercase word, nothing else.
var (
	CamelPattern  = regexp.MustCompile(`^[a-z]+(?:[A-Z][a-z]*)*$`)
	SnakePattern  = regexp.MustCompile(`^[a-z]+(?:_[a-z]+)*$`)
	PascalPattern = regexp.MustCompile(`^[A-Z][a-z]*(?:[A-Z][a-z]*)*$`)
	SimplePattern = regexp.MustCompile(`^[a-z]+$`)

	privatePattern = regexp.MustCompile(`^_`)
	numberPattern  = regexp.MustCompile(`\d$`)
	asciiPattern   = regexp.MustCompile(`^[\x00-\x7F]*$`)
)

// Set holds the distinct user-defined names of one Python unit.
type Set struct {
	names []string
}

// NewSet builds a Set from already-deduplicated names.
func NewSet(ns []string) *Set {
	return &Set{names: ns}
}

// Len returns the number of names.
func (s *Set) Len() int { return len(s.names) }

// CharLengths returns the rune length of every name, one sample per name.
func (s *Set) CharLengths() []float64 {
	lengths := make([]float64, 0, len(s.names))
	for _, n := range s.names {
		lengths = append(lengths, float64(utf8.RuneCountInString(n)))
	}
	return lengths
}

// Ratios are the per-unit fractions of names satisfying each convention
// flag. A unit with zero names yields all-zero ratios.
type Ratios struct {
	CamelCase      float64
	SnakeCase      float64
	PascalCase     float64
	Private        float64
	EndswithNumber float64
	Simple         float64
	ASCII          float64
}

// Ratios computes the convention ratios over the set. The denominator is
// the name count; an empty set returns the zero value, never NaN.
func (s *Set) Ratios() Ratios {
	if len(s.names) == 0 {
		return Ratios{}
	}
	var r Ratios
	for _, n := range s.names {
		if CamelPattern.MatchString(n) {
			r.CamelCase++
		}
		if SnakePattern.MatchString(n) {
			r.SnakeCase++
		}
		if PascalPattern.MatchString(n) {
			r.PascalCase++
		}
		if privatePattern.MatchString(n) {
			r.Private++
		}
		if numberPattern.MatchString(n) {
			r.EndswithNumber++
		}
		if SimplePattern.MatchString(n) {
			r.Simple++
		}
		if asciiPattern.MatchString(n) {
			r.ASCII++
		}
	}
	total := float64(len(s.names))
	r.CamelCase /= total
	r.SnakeCase /= total
	r.PascalCase /= total
	r.Private /= total
	r.EndswithNumber /= total
	r.Simple /= total
	r.ASCII /= total
	return r
}
