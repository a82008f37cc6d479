package pysrc

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Comments returns every comment in the unit with the leading hash marks
// and surrounding whitespace stripped. Empty comments are dropped.
// Docstrings are not comments; see Docstrings.
func (s *Source) Comments() []string {
	var comments []string
	walk(s.root(), func(n *sitter.Node) bool {
		if n.Type() == "comment" {
			text := strings.TrimSpace(strings.TrimLeft(s.text(n), "#"))
			if text != "" {
				comments = append(comments, text)
			}
			return false
		}
		return true
	})
	return comments
}

// Docstrings returns the docstrings of the module and of every class and
// function: the first string expression of the respective body, trimmed.
func (s *Source) Docstrings() []string {
	root := s.root()
	if root == nil {
		return nil
	}

	var docs []string
	appendDoc := func(body *sitter.Node) {
		if doc := s.docstringOf(body); doc != "" {
			docs = append(docs, doc)
		}
	}

	appendDoc(root)
	walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "function_definition", "class_definition":
			appendDoc(n.ChildByFieldName("body"))
		}
		return true
	})
	return docs
}

// docstringOf extracts the docstring from a body block, if its first
// statement is a plain string expression.
func (s *Source) docstringOf(body *sitter.Node) string {
	if body == nil || body.NamedChildCount() == 0 {
		return ""
	}
	first := body.NamedChild(0)
	if first.Type() != "expression_statement" || first.NamedChildCount() == 0 {
		return ""
	}
	expr := first.NamedChild(0)
	if expr.Type() != "string" {
		return ""
	}
	return cleanDocstring(s.text(expr))
}

// cleanDocstring strips string prefixes and the surrounding quotes.
func cleanDocstring(raw string) string {
	s := raw
	// Drop prefix letters (r, b, u, f and combinations) before the quote.
	for len(s) > 0 && s[0] != '"' && s[0] != '\'' {
		s = s[1:]
	}
	for _, quote := range []string{`"""`, "'''", `"`, "'"} {
		if strings.HasPrefix(s, quote) && strings.HasSuffix(s, quote) && len(s) >= 2*len(quote) {
			s = strings.TrimPrefix(s, quote)
			s = strings.TrimSuffix(s, quote)
			break
		}
	}
	return strings.TrimSpace(s)
}
