package diff

import "github.com/armor-abi/armor/internal/apinode"

// Tree recursively diffs two sibling lists (C7), keying each side by
// apinode.Node.DiffKey so that same-named overloads never collide and
// same-named non-function declarations match directly by qualified name.
// A key present on only one side produces an Added or Removed record whose
// children are the node's entire subtree, tagged the same way all the way
// down (tagSubtree); there is no counterpart to diff against. A key present
// on both sides recurses into the pair's children after diffing their own
// attributes. excluded is consulted for the siblings passed in only; the
// recursive calls for children pass nil, so a nested name is never
// filtered out.
func Tree(baseNodes, headNodes []*apinode.Node, excluded func(qualifiedName string) bool) []*Record {
	baseByKey := indexByKey(baseNodes)
	headByKey := indexByKey(headNodes)

	seen := make(map[string]struct{}, len(baseByKey)+len(headByKey))
	var records []*Record

	// Preserve head's declaration order first, then any base-only keys
	// that head no longer has, so removed declarations still surface in
	// roughly their original position.
	for _, n := range headNodes {
		key := n.DiffKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		if excluded != nil && excluded(n.QualifiedName) {
			continue
		}
		records = append(records, diffPair(key, baseByKey[key], headByKey[key]))
	}
	for _, n := range baseNodes {
		key := n.DiffKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		if excluded != nil && excluded(n.QualifiedName) {
			continue
		}
		records = append(records, diffPair(key, baseByKey[key], headByKey[key]))
	}

	return records
}

func diffPair(key string, base, head *apinode.Node) *Record {
	switch {
	case base == nil:
		return &Record{Key: key, Tag: Added, Head: head, Children: tagSubtree(head.Children, Added)}
	case head == nil:
		return &Record{Key: key, Tag: Removed, Base: base, Children: tagSubtree(base.Children, Removed)}
	default:
		attrs := DiffAttributes(base, head)
		children := Tree(base.Children, head.Children, nil)
		tag := Unchanged
		if len(attrs) > 0 || subtreeChanged(children) {
			tag = Modified
		}
		return &Record{Key: key, Tag: tag, Base: base, Head: head, Attrs: attrs, Children: children}
	}
}

// tagSubtree converts a whole node subtree into Added or Removed records,
// recursively, so a describer walking an Added/Removed root can still list
// every descendant instead of only the root declaration itself.
func tagSubtree(nodes []*apinode.Node, tag Tag) []*Record {
	if len(nodes) == 0 {
		return nil
	}
	records := make([]*Record, 0, len(nodes))
	for _, n := range nodes {
		r := &Record{Key: n.DiffKey(), Tag: tag, Children: tagSubtree(n.Children, tag)}
		if tag == Added {
			r.Head = n
		} else {
			r.Base = n
		}
		records = append(records, r)
	}
	return records
}

func subtreeChanged(children []*Record) bool {
	for _, c := range children {
		if c.Tag != Unchanged {
			return true
		}
	}
	return false
}

func indexByKey(nodes []*apinode.Node) map[string]*apinode.Node {
	m := make(map[string]*apinode.Node, len(nodes))
	for _, n := range nodes {
		m[n.DiffKey()] = n
	}
	return m
}
