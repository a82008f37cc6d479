package pysrc

import (
	"math"

	sitter "github.com/smacker/go-tree-sitter"
)

// HalsteadReport holds the Halstead measures of one function, derived
// from its operator and operand counts. All values keep full float
// precision; the record never rounds them.
type HalsteadReport struct {
	Vocabulary float64
	Length     float64
	Volume     float64
	Difficulty float64
	Effort     float64
}

// halsteadOperators is the operator token vocabulary: arithmetic,
// comparison, assignment, bitwise, and boolean tokens. Delimiters
// (parentheses, commas, colons) are not operators.
var halsteadOperators = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "//": true, "%": true,
	"**": true, "@": true,
	"==": true, "!=": true, "<": true, ">": true, "<=": true, ">=": true,
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "//=": true,
	"%=": true, "**=": true, "@=": true,
	"&": true, "|": true, "^": true, "~": true, "<<": true, ">>": true,
	"&=": true, "|=": true, "^=": true, "<<=": true, ">>=": true,
	":=": true, "and": true, "or": true, "not": true, "in": true, "is": true,
}

// operandTypes are the leaf node kinds counted as operands. String nodes
// are treated as single operands without descending into their parts.
var operandTypes = map[string]bool{
	"identifier": true,
	"integer":    true,
	"float":      true,
	"true":       true,
	"false":      true,
	"none":       true,
	"ellipsis":   true,
}

// Halstead returns per-function Halstead reports. A unit with no
// functions, or an invalid unit, yields an empty slice.
func (s *Source) Halstead() []HalsteadReport {
	fns := s.functions()
	reports := make([]HalsteadReport, 0, len(fns))
	for _, fn := range fns {
		reports = append(reports, s.halsteadOf(fn))
	}
	return reports
}

func (s *Source) halsteadOf(fn *sitter.Node) HalsteadReport {
	operators := make(map[string]int)
	operands := make(map[string]int)

	walk(fn, func(n *sitter.Node) bool {
		switch {
		case n.Type() == "comment":
			return false
		case n.Type() == "string":
			operands[s.text(n)]++
			return false
		case n.ChildCount() == 0:
			text := s.text(n)
			if operandTypes[n.Type()] {
				operands[text]++
			} else if halsteadOperators[text] {
				operators[text]++
			}
			return false
		}
		return true
	})

	n1 := float64(len(operators))
	n2 := float64(len(operands))
	var totalOps, totalOperands float64
	for _, c := range operators {
		totalOps += float64(c)
	}
	for _, c := range operands {
		totalOperands += float64(c)
	}

	report := HalsteadReport{
		Vocabulary: n1 + n2,
		Length:     totalOps + totalOperands,
	}
	if report.Vocabulary > 0 {
		report.Volume = report.Length * math.Log2(report.Vocabulary)
	}
	if n2 > 0 {
		report.Difficulty = n1 / 2 * totalOperands / n2
	}
	report.Effort = report.Difficulty * report.Volume
	return report
}
