package pysrc

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// NFunctions counts function definitions: regular, async, methods, and
// nested functions alike.
func (s *Source) NFunctions() int {
	return len(s.functions())
}

// NClasses counts class definitions, nested classes included.
func (s *Source) NClasses() int {
	n := 0
	walk(s.root(), func(node *sitter.Node) bool {
		if node.Type() == "class_definition" {
			n++
		}
		return true
	})
	return n
}

// NImports counts import statements of every form: plain imports, from
// imports, aliased imports, and star imports.
func (s *Source) NImports() int {
	n := 0
	walk(s.root(), func(node *sitter.Node) bool {
		switch node.Type() {
		case "import_statement", "import_from_statement", "future_import_statement":
			n++
		}
		return true
	})
	return n
}

// NImportedModules counts the distinct top-level modules imported,
// deduplicated by root segment: os.path and os are one module. Relative
// imports name no module and are excluded.
func (s *Source) NImportedModules() int {
	modules := make(map[string]bool)
	walk(s.root(), func(node *sitter.Node) bool {
		switch node.Type() {
		case "import_statement":
			for i := 0; i < int(node.NamedChildCount()); i++ {
				child := node.NamedChild(i)
				name := ""
				switch child.Type() {
				case "dotted_name":
					name = s.text(child)
				case "aliased_import":
					if child.NamedChildCount() > 0 {
						name = s.text(child.NamedChild(0))
					}
				}
				if root := moduleRoot(name); root != "" {
					modules[root] = true
				}
			}
		case "import_from_statement":
			if mod := node.ChildByFieldName("module_name"); mod != nil && mod.Type() == "dotted_name" {
				if root := moduleRoot(s.text(mod)); root != "" {
					modules[root] = true
				}
			}
		case "future_import_statement":
			modules["__future__"] = true
		}
		return true
	})
	return len(modules)
}

func moduleRoot(name string) string {
	if name == "" {
		return ""
	}
	root, _, _ := strings.Cut(name, ".")
	return root
}
