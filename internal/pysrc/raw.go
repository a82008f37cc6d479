package pysrc

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// RawCounts are the raw line categories of one unit, following the
// radon-style counting rules: LOC is every physical line; LLOC counts
// logical statements including docstrings; SLOC excludes blank lines,
// comment-only lines, and docstring lines; Comments counts lines carrying
// a comment (inline included); Multi counts lines taken by standalone
// string statements (docstrings); Blank counts whitespace-only lines.
type RawCounts struct {
	LOC      int
	LLOC     int
	SLOC     int
	Comments int
	Multi    int
	Blank    int
}

// statementTypes are the node kinds that count as one logical line each.
// Compound statements count once per clause header, the way radon counts
// an if/elif/else chain as three logical lines.
var statementTypes = map[string]bool{
	"expression_statement":    true,
	"return_statement":        true,
	"pass_statement":          true,
	"break_statement":         true,
	"continue_statement":      true,
	"import_statement":        true,
	"import_from_statement":   true,
	"future_import_statement": true,
	"raise_statement":         true,
	"assert_statement":        true,
	"global_statement":        true,
	"nonlocal_statement":      true,
	"delete_statement":        true,
	"exec_statement":          true,
	"print_statement":         true,
	"if_statement":            true,
	"elif_clause":             true,
	"else_clause":             true,
	"for_statement":           true,
	"while_statement":         true,
	"try_statement":           true,
	"except_clause":           true,
	"finally_clause":          true,
	"with_statement":          true,
	"match_statement":         true,
	"case_clause":             true,
	"function_definition":     true,
	"class_definition":        true,
	"decorator":               true,
}

// Raw computes the line categories of the unit. Invalid units yield the
// zero value.
func (s *Source) Raw() RawCounts {
	root := s.root()
	if root == nil {
		return RawCounts{}
	}

	lines := strings.Split(string(s.content), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var counts RawCounts
	counts.LOC = len(lines)

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			counts.Blank++
		}
	}

	commentRows := make(map[int]bool)     // rows carrying any comment
	commentOnlyRows := make(map[int]bool) // rows that are nothing but a comment
	multiRows := make(map[int]bool)       // rows covered by standalone strings

	walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "comment":
			row := int(n.StartPoint().Row)
			commentRows[row] = true
			if row < len(lines) {
				prefix := lines[row][:min(int(n.StartPoint().Column), len(lines[row]))]
				if strings.TrimSpace(prefix) == "" {
					commentOnlyRows[row] = true
				}
			}
			return false
		case "expression_statement":
			if n.NamedChildCount() == 1 && n.NamedChild(0).Type() == "string" {
				str := n.NamedChild(0)
				for row := int(str.StartPoint().Row); row <= int(str.EndPoint().Row); row++ {
					multiRows[row] = true
				}
				return false
			}
		}
		return true
	})

	counts.Comments = len(commentRows)
	counts.Multi = len(multiRows)

	walk(root, func(n *sitter.Node) bool {
		if statementTypes[n.Type()] {
			counts.LLOC++
		}
		return true
	})

	counts.SLOC = counts.LOC - counts.Blank - len(commentOnlyRows) - counts.Multi
	if counts.SLOC < 0 {
		counts.SLOC = 0
	}

	return counts
}

// LLOC is the engine's own logical-line count: statements excluding
// docstrings. It deliberately differs from RawCounts.LLOC, which follows
// the collaborator's rule of counting docstrings as logical lines; both
// are exposed in the project record as distinct metrics.
func (s *Source) LLOC() int {
	if !s.valid {
		return 0
	}
	n := s.Raw().LLOC - len(s.Docstrings())
	if n < 0 {
		return 0
	}
	return n
}
