// Package apicontext holds the normalized tree produced by one parsed
// header (C4): a USR-keyed map of every node, the ordered top-level roots,
// and the set of qualified names excluded from diff reporting.
package apicontext

import "github.com/armor-abi/armor/internal/apinode"

// Context groups all nodes from one parsed header. It is created empty,
// populated by a single tree-builder traversal, then treated as read-only
// by the diff engine. There is no explicit Close: once the last reference
// to a Context is dropped, its nodes are collected with it.
type Context struct {
	tree     map[string]*apinode.Node
	roots    []*apinode.Node
	excluded map[string]struct{}
}

// New returns an empty context with the given exclusion set. excluded holds
// fully-qualified names whose diffs are suppressed under every tag;
// diff.Contexts applies it to root declarations only.
func New(excluded []string) *Context {
	c := &Context{
		tree:     make(map[string]*apinode.Node),
		excluded: make(map[string]struct{}, len(excluded)),
	}
	for _, name := range excluded {
		c.excluded[name] = struct{}{}
	}
	return c
}

// AddNode inserts node under key if no node is already registered there.
// It reports whether the insertion happened.
func (c *Context) AddNode(key string, node *apinode.Node) bool {
	if _, exists := c.tree[key]; exists {
		return false
	}
	c.tree[key] = node
	return true
}

// AddOrUpdateNode inserts or overwrites the node registered under key.
func (c *Context) AddOrUpdateNode(key string, node *apinode.Node) {
	c.tree[key] = node
}

// Node looks up a node by its unique key. It returns nil if absent.
func (c *Context) Node(key string) *apinode.Node {
	return c.tree[key]
}

// NodeByQualifiedName performs a linear scan for a node with the given
// qualified name among every registered node. Root lookups should prefer
// Roots() plus a caller-maintained qualified-name index; this helper exists
// for the rarer case (diff bookkeeping, tests) where only the name is known.
func (c *Context) NodeByQualifiedName(name string) *apinode.Node {
	for _, n := range c.tree {
		if n.QualifiedName == name {
			return n
		}
	}
	return nil
}

// AddRoot appends a top-level node (declared directly in the header) to the
// ordered root list.
func (c *Context) AddRoot(node *apinode.Node) {
	c.roots = append(c.roots, node)
}

// Tree returns the full key -> node map.
func (c *Context) Tree() map[string]*apinode.Node {
	return c.tree
}

// Roots returns the ordered top-level nodes.
func (c *Context) Roots() []*apinode.Node {
	return c.roots
}

// Excluded reports whether qualifiedName is in the exclusion set.
func (c *Context) Excluded(qualifiedName string) bool {
	_, ok := c.excluded[qualifiedName]
	return ok
}

// Empty reports whether the context has no roots and no nodes.
func (c *Context) Empty() bool {
	return len(c.tree) == 0 && len(c.roots) == 0
}

// Len reports how many nodes are registered in the tree map.
func (c *Context) Len() int {
	return len(c.tree)
}
