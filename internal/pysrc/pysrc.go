// Package pysrc extracts structural metrics from one unit of Python
// source: a .py file or a single notebook code cell. A Source is parsed
// once with tree-sitter; every accessor on an invalid unit yields empty
// samples or zero counts rather than an error, so one broken file never
// aborts a project run.
package pysrc

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// Source wraps one unit of Python text and its parse tree.
type Source struct {
	content []byte
	tree    *sitter.Tree
	valid   bool
}

// New parses the given Python source. Parsing never fails hard: a unit
// with syntax errors simply produces an invalid Source.
func New(content []byte) *Source {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	s := &Source{content: content}
	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil || tree == nil {
		return s
	}
	s.tree = tree
	s.valid = !tree.RootNode().HasError()
	return s
}

// Valid reports whether the unit parsed without syntax errors.
func (s *Source) Valid() bool { return s.valid }

// NChar returns the number of characters (runes, not bytes) in the unit.
// Defined even for invalid units.
func (s *Source) NChar() int {
	n := 0
	for range string(s.content) {
		n++
	}
	return n
}

// root returns the parse tree root, or nil for invalid units. Extractors
// gate on this so invalid units contribute nothing.
func (s *Source) root() *sitter.Node {
	if !s.valid || s.tree == nil {
		return nil
	}
	return s.tree.RootNode()
}

// text returns the source text of a node.
func (s *Source) text(n *sitter.Node) string {
	return n.Content(s.content)
}

// walk visits n and its entire subtree (named and anonymous nodes).
// Returning false from fn prunes the subtree below the current node.
func walk(n *sitter.Node, fn func(*sitter.Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		walk(n.Child(i), fn)
	}
}

// functions collects every function definition in the unit, including
// methods and nested functions.
func (s *Source) functions() []*sitter.Node {
	var fns []*sitter.Node
	walk(s.root(), func(n *sitter.Node) bool {
		if n.Type() == "function_definition" {
			fns = append(fns, n)
		}
		return true
	})
	return fns
}
