package pysrc

import sitter "github.com/smacker/go-tree-sitter"

// decisionTypes are the node kinds that add one to cyclomatic complexity.
// Each elif clause and each except clause counts separately; boolean
// operators count once per operator node.
var decisionTypes = map[string]bool{
	"if_statement":     true,
	"elif_clause":      true,
	"while_statement":  true,
	"for_statement":    true,
	"try_statement":    true,
	"except_clause":    true,
	"with_statement":   true,
	"boolean_operator": true,
	"if_clause":        true, // comprehension condition
}

// Cyclomatic returns the per-function cyclomatic complexity samples of
// the unit: baseline 1 per function plus one per decision point in its
// body. A unit with no functions yields an empty slice; so does an
// invalid unit.
func (s *Source) Cyclomatic() []float64 {
	fns := s.functions()
	samples := make([]float64, 0, len(fns))
	for _, fn := range fns {
		c := 1
		walk(fn, func(n *sitter.Node) bool {
			if n != fn && decisionTypes[n.Type()] {
				c++
			}
			return true
		})
		samples = append(samples, float64(c))
	}
	return samples
}

// nestingTypes are the structures whose contents count as one level
// deeper for cognitive complexity.
var nestingTypes = map[string]bool{
	"if_statement":           true,
	"while_statement":        true,
	"for_statement":          true,
	"except_clause":          true,
	"conditional_expression": true,
	"function_definition":    true,
	"lambda":                 true,
}

// Cognitive returns per-function cognitive complexity samples. The score
// follows the nesting-weighted model: branch structures cost one plus
// their nesting depth, elif/else continuations cost a flat one, boolean
// operators cost one each, and nested structures (including nested
// functions) deepen the nesting level for their contents.
func (s *Source) Cognitive() []float64 {
	fns := s.functions()
	samples := make([]float64, 0, len(fns))
	for _, fn := range fns {
		score := 0
		if body := fn.ChildByFieldName("body"); body != nil {
			score = cognitiveWalk(body, 0)
		}
		samples = append(samples, float64(score))
	}
	return samples
}

func cognitiveWalk(n *sitter.Node, nesting int) int {
	total := 0
	switch n.Type() {
	case "if_statement", "while_statement", "for_statement",
		"except_clause", "conditional_expression":
		total += 1 + nesting
	case "elif_clause", "else_clause":
		total++
	case "boolean_operator":
		total++
	}

	childNesting := nesting
	if nestingTypes[n.Type()] {
		childNesting = nesting + 1
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		total += cognitiveWalk(n.NamedChild(i), childNesting)
	}
	return total
}
