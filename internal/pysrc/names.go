package pysrc

import (
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Names returns the distinct user-defined names declared in the unit:
// function and class names, parameters, assignment and loop targets,
// comprehension and exception variables, with-statement aliases, and
// global/nonlocal declarations. self, cls, and dunder names are excluded.
// The result is sorted for reproducible output.
func (s *Source) Names() []string {
	found := make(map[string]bool)
	add := func(name string) {
		if name == "" || name == "self" || name == "cls" {
			return
		}
		if strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__") {
			return
		}
		found[name] = true
	}

	walk(s.root(), func(n *sitter.Node) bool {
		switch n.Type() {
		case "function_definition":
			if name := n.ChildByFieldName("name"); name != nil {
				add(s.text(name))
			}
			s.collectParams(n.ChildByFieldName("parameters"), add)
		case "class_definition":
			if name := n.ChildByFieldName("name"); name != nil {
				add(s.text(name))
			}
		case "assignment", "augmented_assignment":
			s.collectTargets(n.ChildByFieldName("left"), add)
		case "named_expression":
			if name := n.ChildByFieldName("name"); name != nil {
				add(s.text(name))
			}
		case "for_statement", "for_in_clause":
			s.collectTargets(n.ChildByFieldName("left"), add)
		case "except_clause":
			s.collectExcept(n, add)
		case "as_pattern":
			if alias := n.ChildByFieldName("alias"); alias != nil {
				s.collectTargets(firstNamed(alias), add)
			}
		case "global_statement", "nonlocal_statement":
			for i := 0; i < int(n.NamedChildCount()); i++ {
				child := n.NamedChild(i)
				if child.Type() == "identifier" {
					add(s.text(child))
				}
			}
		}
		return true
	})

	result := make([]string, 0, len(found))
	for name := range found {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// collectTargets gathers identifiers from an assignment-like target:
// plain names, tuple/list unpacking, and attribute targets (self.x adds
// the attribute name x).
func (s *Source) collectTargets(target *sitter.Node, add func(string)) {
	if target == nil {
		return
	}
	switch target.Type() {
	case "identifier":
		add(s.text(target))
	case "pattern_list", "tuple_pattern", "list_pattern", "tuple", "list":
		for i := 0; i < int(target.NamedChildCount()); i++ {
			s.collectTargets(target.NamedChild(i), add)
		}
	case "attribute":
		if attr := target.ChildByFieldName("attribute"); attr != nil {
			add(s.text(attr))
		}
	}
}

// collectParams gathers parameter names of every flavor: plain, typed,
// defaulted, *args, and **kwargs.
func (s *Source) collectParams(params *sitter.Node, add func(string)) {
	if params == nil {
		return
	}
	for i := 0; i < int(params.NamedChildCount()); i++ {
		p := params.NamedChild(i)
		switch p.Type() {
		case "identifier":
			add(s.text(p))
		case "default_parameter", "typed_default_parameter":
			if name := p.ChildByFieldName("name"); name != nil {
				add(s.text(name))
			}
		case "typed_parameter":
			s.collectTargets(firstNamed(p), add)
		case "list_splat_pattern", "dictionary_splat_pattern":
			s.collectTargets(firstNamed(p), add)
		case "tuple_pattern":
			s.collectTargets(p, add)
		}
	}
}

// collectExcept handles both grammar shapes of "except E as name": an
// as_pattern child (handled by the as_pattern case of the main walk) or
// a bare identifier after the "as" keyword.
func (s *Source) collectExcept(clause *sitter.Node, add func(string)) {
	sawAs := false
	for i := 0; i < int(clause.ChildCount()); i++ {
		child := clause.Child(i)
		if !child.IsNamed() && s.text(child) == "as" {
			sawAs = true
			continue
		}
		if sawAs && child.Type() == "identifier" {
			add(s.text(child))
			return
		}
	}
}

func firstNamed(n *sitter.Node) *sitter.Node {
	if n == nil || n.NamedChildCount() == 0 {
		return nil
	}
	return n.NamedChild(0)
}
