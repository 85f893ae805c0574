package treebuilder

import (
	"fmt"
	"strings"

	"github.com/armor-abi/armor/internal/apinode"
	"github.com/armor-abi/armor/internal/frontend"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// buildFunction handles a `function_definition` node (a header with an
// inline body, e.g. a C++ inline function or a static inline helper).
func (b *builder) buildFunction(n *sitter.Node) *apinode.Node {
	typeNode := n.ChildByFieldName("type")
	declNode := n.ChildByFieldName("declarator")
	if declNode == nil {
		return nil
	}
	info := parseDeclarator(declNode, b.src())
	if !info.isFunction {
		return nil
	}
	return b.assembleFunction(n, typeNode, info)
}

// buildFunctionSignature handles a prototype-only `declaration` whose
// declarator is a function_declarator ("int f(int x);").
func (b *builder) buildFunctionSignature(n, typeNode *sitter.Node, info declInfo) *apinode.Node {
	return b.assembleFunction(n, typeNode, info)
}

// assembleFunction builds a Function node plus its ReturnType and Parameter
// children (spec.md §4.3 step 5). The function's DataType holds its full
// signature spelling, which apinode.Node.DiffKey uses instead of
// qualifiedName so overloads stay distinct siblings in the tree (spec.md
// §4.7's key-extraction rule).
func (b *builder) assembleFunction(declNode, typeNode *sitter.Node, info declInfo) *apinode.Node {
	if info.name == "" {
		return nil
	}

	returnSpelling := strings.TrimSpace(typeSpelling(b, typeNode) + " " + info.pointer)
	_, returnTerminal := apinode.UnwrapType(returnSpelling)

	params := b.buildParameters(info.paramsNode)
	paramTypes := make([]string, len(params))
	for i, p := range params {
		paramTypes[i] = p.DataType
	}

	qn := b.scope.Qualify(info.name)
	dataType := fmt.Sprintf("%s (%s)", returnSpelling, strings.Join(paramTypes, ", "))

	node := &apinode.Node{
		Kind:          apinode.Function,
		QualifiedName: qn,
		TypeName:      info.name,
		DataType:      dataType,
		Storage:       storageOf(declNode, b),
		Access:        apinode.AccessPublic,
	}
	node.USR = frontend.SynthesizeUSR(node.QualifiedName, node.DataType)

	returnNode := &apinode.Node{
		Kind:          apinode.ReturnType,
		QualifiedName: qn + ".$return",
		TypeName:      returnTerminal,
		DataType:      returnSpelling,
	}
	returnNode.USR = frontend.SynthesizeUSR(returnNode.QualifiedName, returnNode.DataType)
	node.Children = append(node.Children, returnNode)
	node.Children = append(node.Children, params...)

	b.ctx.AddNode(node.USR, node)
	return node
}

func (b *builder) buildParameters(paramsNode *sitter.Node) []*apinode.Node {
	if paramsNode == nil {
		return nil
	}

	var out []*apinode.Node
	cursor := paramsNode.Walk()
	defer cursor.Close()

	if !cursor.GotoFirstChild() {
		return out
	}
	index := 0
	for {
		c := cursor.Node()
		switch c.Kind() {
		case "parameter_declaration":
			out = append(out, b.buildParameter(c, index))
			index++
		case "variadic_parameter":
			out = append(out, &apinode.Node{
				Kind:          apinode.Parameter,
				QualifiedName: fmt.Sprintf("$param%d", index),
				TypeName:      "...",
				DataType:      "...",
			})
			index++
		}
		if !cursor.GotoNextSibling() {
			break
		}
	}
	return out
}

func (b *builder) buildParameter(n *sitter.Node, index int) *apinode.Node {
	typeNode := n.ChildByFieldName("type")
	declNode := n.ChildByFieldName("declarator")
	info := parseDeclarator(declNode, b.src())

	name := info.name
	if name == "" {
		name = fmt.Sprintf("$param%d", index)
	}

	spelling := strings.TrimSpace(typeSpelling(b, typeNode) + " " + info.pointer + info.arraySuf)
	_, terminal := apinode.UnwrapType(spelling)

	node := &apinode.Node{
		Kind:          apinode.Parameter,
		QualifiedName: name,
		TypeName:      terminal,
		DataType:      spelling,
		Value:         info.valueText,
	}
	node.USR = frontend.SynthesizeUSR(node.QualifiedName+fmt.Sprintf("#%d", index), node.DataType)
	return node
}
