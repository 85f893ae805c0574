// Package frontend implements the parsing front-end contract spec.md §6
// asks of the core: iteration over the declarations of a translation unit,
// per-declaration location queries, and an "is this in the main file"
// predicate. It is built on github.com/tree-sitter/go-tree-sitter (the
// teacher's own parsing dependency) with the github.com/tree-sitter/
// tree-sitter-c grammar.
package frontend

import (
	"fmt"
	"os"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_c "github.com/tree-sitter/tree-sitter-c/bindings/go"
)

// Options carries the forwarded front-end flags from spec.md §6: include
// directories, macro definitions, and the resource-path for a from-source
// front end. This tree-sitter front end does not expand includes or
// evaluate macros (the Non-goals in spec.md §1 exclude preprocessor
// evaluation) but keeps the fields so a future front end swap has somewhere
// to plug them in.
type Options struct {
	IncludeDirs  []string
	Macros       []string
	ResourcePath string
}

// TranslationUnit wraps one parsed header file.
type TranslationUnit struct {
	path   string
	source []byte
	tree   *sitter.Tree
}

// Parse reads path and parses it as a C translation unit.
func Parse(path string, _ Options) (*TranslationUnit, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("frontend: reading %s: %w", path, err)
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(sitter.NewLanguage(tree_sitter_c.Language()))

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("frontend: %s: parser returned no tree", path)
	}

	return &TranslationUnit{path: path, source: source, tree: tree}, nil
}

// Close releases the underlying tree-sitter tree. It is safe to call on a
// nil receiver.
func (tu *TranslationUnit) Close() {
	if tu == nil || tu.tree == nil {
		return
	}
	tu.tree.Close()
}

// Path returns the header path this translation unit was parsed from.
func (tu *TranslationUnit) Path() string { return tu.path }

// Source returns the raw header bytes, needed to spell any node's text.
func (tu *TranslationUnit) Source() []byte { return tu.source }

// RootNode returns the translation_unit node at the root of the parse tree.
func (tu *TranslationUnit) RootNode() *sitter.Node { return tu.tree.RootNode() }

// IsMainFile reports whether a node originates from the header under
// analysis. tree-sitter parses exactly one file per call with no #include
// expansion, so every declaration it produces originates from that file —
// this is the tree-sitter analogue of clang's "is in main file" query.
func (tu *TranslationUnit) IsMainFile(*sitter.Node) bool { return true }

// Text returns the spelled source text of a node.
func (tu *TranslationUnit) Text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Utf8Text(tu.source)
}

// Location is a 1-indexed source span, used for diagnostics only — it plays
// no part in node identity (spec.md §3.1: the unique key and qualified name
// are position-independent).
type Location struct {
	Path      string
	StartLine int
	EndLine   int
}

// NodeLocation returns the location of a node within this translation unit.
func (tu *TranslationUnit) NodeLocation(n *sitter.Node) Location {
	return Location{
		Path:      tu.path,
		StartLine: int(n.StartPosition().Row) + 1,
		EndLine:   int(n.EndPosition().Row) + 1,
	}
}
