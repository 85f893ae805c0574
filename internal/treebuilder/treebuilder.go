// Package treebuilder walks a parsed translation unit (internal/frontend)
// and populates a normalized context (internal/apicontext) with API nodes
// (internal/apinode) — component C5. Declaration kinds are matched with a
// tagged-variant switch, dispatching to one builder routine per kind,
// rather than the visitor-class inheritance the original clang-based
// implementation used (spec.md §9's redesign note).
package treebuilder

import (
	"strings"

	"github.com/armor-abi/armor/internal/apicontext"
	"github.com/armor-abi/armor/internal/apinode"
	"github.com/armor-abi/armor/internal/armorlog"
	"github.com/armor-abi/armor/internal/frontend"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Build walks tu's top-level declarations and returns a populated,
// read-only-from-here-on normalized context.
func Build(tu *frontend.TranslationUnit, excluded []string, log *armorlog.Logger) *apicontext.Context {
	ctx := apicontext.New(excluded)
	scope := apinode.NewScopeStack()

	b := &builder{tu: tu, ctx: ctx, scope: scope, log: log}
	b.walkTopLevel(tu.RootNode())
	return ctx
}

type builder struct {
	tu    *frontend.TranslationUnit
	ctx   *apicontext.Context
	scope *apinode.ScopeStack
	log   *armorlog.Logger
}

func (b *builder) src() []byte { return b.tu.Source() }

func (b *builder) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return strings.TrimSpace(b.tu.Text(n))
}

func (b *builder) walkTopLevel(root *sitter.Node) {
	cursor := root.Walk()
	defer cursor.Close()

	if !cursor.GotoFirstChild() {
		return
	}
	for {
		child := cursor.Node()
		if node := b.buildDeclaration(child, true); node != nil {
			b.ctx.AddRoot(node)
		}
		if !cursor.GotoNextSibling() {
			break
		}
	}
}

// buildDeclaration dispatches on the tree-sitter node kind of a declaration.
// It returns the node it built, or nil for declarations it skips (a
// declaration the front end could not classify is skipped with a
// diagnostic; traversal continues — spec.md §4.3's failure semantics).
func (b *builder) buildDeclaration(n *sitter.Node, atRoot bool) *apinode.Node {
	if !b.tu.IsMainFile(n) {
		return nil
	}

	switch n.Kind() {
	case "struct_specifier":
		return b.buildRecord(n, apinode.Struct)
	case "union_specifier":
		return b.buildRecord(n, apinode.Union)
	case "enum_specifier":
		return b.buildEnum(n)
	case "type_definition":
		return b.buildTypedef(n)
	case "declaration":
		return b.buildFreeDeclaration(n)
	case "function_definition":
		return b.buildFunction(n)
	case "preproc_def":
		return b.buildMacro(n, false)
	case "preproc_function_def":
		return b.buildMacro(n, true)
	case "comment", "preproc_include", ";":
		return nil
	default:
		if b.log != nil {
			b.log.Debug("skipping unsupported top-level declaration", "kind", n.Kind())
		}
		return nil
	}
}

// buildFreeDeclaration handles a `declaration` node: a bare record
// definition ("struct Foo { ... };" with no declarator), a function
// prototype, or a variable declaration.
func (b *builder) buildFreeDeclaration(n *sitter.Node) *apinode.Node {
	typeNode := n.ChildByFieldName("type")
	declNode := n.ChildByFieldName("declarator")

	if declNode == nil && typeNode != nil {
		// A bare record/enum definition: "struct Foo { ... };"
		return b.buildDeclaration(typeNode, false)
	}
	if declNode == nil {
		return nil
	}

	info := parseDeclarator(declNode, b.src())
	if info.isFunction {
		return b.buildFunctionSignature(n, typeNode, info)
	}
	return b.buildVariable(n, typeNode, info, apinode.Variable)
}

func typeSpelling(b *builder, typeNode *sitter.Node) string {
	if typeNode == nil {
		return ""
	}
	return b.text(typeNode)
}

func storageOf(n *sitter.Node, b *builder) apinode.Storage {
	cursor := n.Walk()
	defer cursor.Close()
	if !cursor.GotoFirstChild() {
		return apinode.StorageNone
	}
	for {
		c := cursor.Node()
		if c.Kind() == "storage_class_specifier" {
			switch b.text(c) {
			case "static":
				return apinode.StorageStatic
			case "extern":
				return apinode.StorageExtern
			case "register":
				return apinode.StorageRegister
			case "auto":
				return apinode.StorageAuto
			}
		}
		if !cursor.GotoNextSibling() {
			break
		}
	}
	return apinode.StorageNone
}

func constQualifierOf(n *sitter.Node, b *builder) apinode.ConstQualifier {
	cursor := n.Walk()
	defer cursor.Close()
	if !cursor.GotoFirstChild() {
		return apinode.ConstNone
	}
	for {
		c := cursor.Node()
		if c.Kind() == "type_qualifier" && b.text(c) == "const" {
			return apinode.ConstConst
		}
		if !cursor.GotoNextSibling() {
			break
		}
	}
	return apinode.ConstNone
}

func (b *builder) buildVariable(declNode, typeNode *sitter.Node, info declInfo, kind apinode.Kind) *apinode.Node {
	if info.name == "" {
		return nil
	}
	qn := b.scope.Qualify(info.name)
	spelling := strings.TrimSpace(typeSpelling(b, typeNode) + " " + info.pointer + info.arraySuf)
	_, terminal := apinode.UnwrapType(spelling)

	node := &apinode.Node{
		Kind:          kind,
		QualifiedName: qn,
		TypeName:      terminal,
		DataType:      spelling,
		Value:         info.valueText,
		Storage:       storageOf(declNode, b),
		Const:         constQualifierOf(declNode, b),
		Access:        apinode.AccessNone,
	}
	node.USR = frontend.SynthesizeUSR(node.QualifiedName, node.DataType)
	b.ctx.AddNode(node.USR, node)
	return node
}

func (b *builder) buildRecord(n *sitter.Node, kind apinode.Kind) *apinode.Node {
	nameNode := n.ChildByFieldName("name")
	name := b.text(nameNode)
	if name == "" {
		name = "$anonymous"
	}

	qn := b.scope.Qualify(name)
	node := &apinode.Node{
		Kind:          kind,
		QualifiedName: qn,
		TypeName:      name,
		Access:        apinode.AccessPublic,
	}
	node.USR = frontend.SynthesizeUSR(node.QualifiedName, string(kind))

	body := n.ChildByFieldName("body")
	if body != nil {
		b.scope.Push(name)
		node.Children = b.buildFieldList(body)
		b.scope.Pop()
	}

	b.ctx.AddNode(node.USR, node)
	return node
}

func (b *builder) buildFieldList(body *sitter.Node) []*apinode.Node {
	var children []*apinode.Node
	cursor := body.Walk()
	defer cursor.Close()

	if !cursor.GotoFirstChild() {
		return children
	}
	for {
		field := cursor.Node()
		if field.Kind() == "field_declaration" {
			if child := b.buildField(field); child != nil {
				children = append(children, child)
			}
		}
		if !cursor.GotoNextSibling() {
			break
		}
	}
	return children
}

func (b *builder) buildField(n *sitter.Node) *apinode.Node {
	typeNode := n.ChildByFieldName("type")
	declNode := n.ChildByFieldName("declarator")

	// A nested record defined as a field's type ("struct { ... } d;") is
	// built and registered in the context before the field itself, but it is
	// not appended to the enclosing record's Children; the field's DataType
	// carries the nested definition's spelled text.
	if typeNode != nil && (typeNode.Kind() == "struct_specifier" || typeNode.Kind() == "union_specifier" || typeNode.Kind() == "enum_specifier") {
		if typeNode.ChildByFieldName("body") != nil {
			b.buildDeclaration(typeNode, false)
		}
	}

	if declNode == nil {
		return nil
	}
	info := parseDeclarator(declNode, b.src())
	if info.name == "" {
		return nil
	}

	qn := b.scope.Qualify(info.name)
	spelling := strings.TrimSpace(typeSpelling(b, typeNode) + " " + info.pointer + info.arraySuf)
	_, terminal := apinode.UnwrapType(spelling)

	node := &apinode.Node{
		Kind:          apinode.Field,
		QualifiedName: qn,
		TypeName:      terminal,
		DataType:      spelling,
		Access:        apinode.AccessPublic,
		Const:         constQualifierOf(n, b),
	}
	node.USR = frontend.SynthesizeUSR(node.QualifiedName, node.DataType)
	b.ctx.AddNode(node.USR, node)
	return node
}

func (b *builder) buildEnum(n *sitter.Node) *apinode.Node {
	nameNode := n.ChildByFieldName("name")
	name := b.text(nameNode)
	if name == "" {
		name = "$anonymous"
	}

	qn := b.scope.Qualify(name)
	node := &apinode.Node{
		Kind:          apinode.Enum,
		QualifiedName: qn,
		TypeName:      name,
		Access:        apinode.AccessPublic,
	}
	node.USR = frontend.SynthesizeUSR(node.QualifiedName, string(apinode.Enum))

	body := n.ChildByFieldName("body")
	if body != nil {
		b.scope.Push(name)
		cursor := body.Walk()
		if cursor.GotoFirstChild() {
			for {
				enumerator := cursor.Node()
				if enumerator.Kind() == "enumerator" {
					if child := b.buildEnumerator(enumerator); child != nil {
						node.Children = append(node.Children, child)
					}
				}
				if !cursor.GotoNextSibling() {
					break
				}
			}
		}
		cursor.Close()
		b.scope.Pop()
	}

	b.ctx.AddNode(node.USR, node)
	return node
}

func (b *builder) buildEnumerator(n *sitter.Node) *apinode.Node {
	nameNode := n.ChildByFieldName("name")
	name := b.text(nameNode)
	if name == "" {
		return nil
	}
	valueNode := n.ChildByFieldName("value")

	node := &apinode.Node{
		Kind:          apinode.Enumerator,
		QualifiedName: b.scope.Qualify(name),
		Value:         b.text(valueNode),
	}
	node.USR = frontend.SynthesizeUSR(node.QualifiedName, "enumerator")
	b.ctx.AddNode(node.USR, node)
	return node
}

func (b *builder) buildTypedef(n *sitter.Node) *apinode.Node {
	typeNode := n.ChildByFieldName("type")
	declNode := n.ChildByFieldName("declarator")
	if declNode == nil {
		return nil
	}
	info := parseDeclarator(declNode, b.src())
	if info.name == "" {
		return nil
	}

	qn := b.scope.Qualify(info.name)
	spelling := strings.TrimSpace(typeSpelling(b, typeNode) + " " + info.pointer + info.arraySuf)
	_, terminal := apinode.UnwrapType(spelling)

	node := &apinode.Node{
		Kind:          apinode.Typedef,
		QualifiedName: qn,
		TypeName:      info.name,
		DataType:      terminal,
	}
	node.USR = frontend.SynthesizeUSR(node.QualifiedName, node.DataType)
	b.ctx.AddNode(node.USR, node)
	return node
}

func (b *builder) buildMacro(n *sitter.Node, isFunctionLike bool) *apinode.Node {
	nameNode := n.ChildByFieldName("name")
	name := b.text(nameNode)
	if name == "" {
		return nil
	}
	valueNode := n.ChildByFieldName("value")

	node := &apinode.Node{
		Kind:          apinode.Macro,
		QualifiedName: b.scope.Qualify(name),
		Value:         b.text(valueNode),
	}
	if isFunctionLike {
		if params := n.ChildByFieldName("parameters"); params != nil {
			node.DataType = b.text(params)
		}
	}
	node.USR = frontend.SynthesizeUSR(node.QualifiedName, "macro:"+node.DataType)
	b.ctx.AddNode(node.USR, node)
	return node
}
