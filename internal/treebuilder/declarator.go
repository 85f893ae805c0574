package treebuilder

import sitter "github.com/tree-sitter/go-tree-sitter"

// declInfo is the result of unwrapping a tree-sitter declarator chain down
// to the declared name, mirroring what apinode.UnwrapType does for an
// already-spelled type string (C2) but starting from the parse tree instead
// of from text.
type declInfo struct {
	name       string
	pointer    string
	arraySuf   string
	isFunction bool
	paramsNode *sitter.Node
	valueText  string
}

// parseDeclarator only follows the single declarator tree-sitter builds for
// one declared name; "int a, *b;" style comma declarations are not split
// into per-name declarators by this front end (documented simplification,
// see DESIGN.md).
func parseDeclarator(n *sitter.Node, source []byte) declInfo {
	if n == nil {
		return declInfo{}
	}

	switch n.Kind() {
	case "identifier", "field_identifier", "type_identifier":
		return declInfo{name: textOf(n, source)}

	case "pointer_declarator":
		inner := n.ChildByFieldName("declarator")
		d := parseDeclarator(inner, source)
		d.pointer = "*" + d.pointer
		return d

	case "array_declarator":
		inner := n.ChildByFieldName("declarator")
		d := parseDeclarator(inner, source)
		size := n.ChildByFieldName("size")
		d.arraySuf = d.arraySuf + "[" + textOf(size, source) + "]"
		return d

	case "function_declarator":
		inner := n.ChildByFieldName("declarator")
		d := parseDeclarator(inner, source)
		d.isFunction = true
		d.paramsNode = n.ChildByFieldName("parameters")
		return d

	case "parenthesized_declarator":
		inner := firstNamedChild(n)
		return parseDeclarator(inner, source)

	case "init_declarator":
		inner := n.ChildByFieldName("declarator")
		d := parseDeclarator(inner, source)
		d.valueText = textOf(n.ChildByFieldName("value"), source)
		return d

	default:
		return declInfo{name: textOf(n, source)}
	}
}

func textOf(n *sitter.Node, source []byte) string {
	if n == nil {
		return ""
	}
	return n.Utf8Text(source)
}

func firstNamedChild(n *sitter.Node) *sitter.Node {
	cursor := n.Walk()
	defer cursor.Close()
	if !cursor.GotoFirstChild() {
		return nil
	}
	for {
		c := cursor.Node()
		if c.IsNamed() {
			return c
		}
		if !cursor.GotoNextSibling() {
			return nil
		}
	}
}
