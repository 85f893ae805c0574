// Package diff implements the structural tree-diff engine (C7) and its
// per-node attribute comparison (C6). Two normalized contexts (one per
// header revision) go in; a tagged tree of added/removed/modified/unchanged
// records comes out, keyed the same way apinode.Node.DiffKey partitions
// siblings, so function overloads never collide with each other.
package diff

import "github.com/armor-abi/armor/internal/apinode"

// Tag classifies a Record relative to the base revision.
type Tag string

const (
	Added      Tag = "Added"
	Removed    Tag = "Removed"
	Modified   Tag = "Modified"
	Unchanged  Tag = "Unchanged"
)

// AttributeChange names one field that differs between the base and head
// revision of a same-key node, produced by DiffAttributes (C6).
type AttributeChange struct {
	Field    string `json:"field"`
	OldValue string `json:"oldValue"`
	NewValue string `json:"newValue"`
}

// Record is one node of the tagged diff tree. Base or Head is nil for an
// Added or Removed record respectively; both are populated for Modified and
// Unchanged records. The json tags give --dump-ast-diff a stable wire shape.
type Record struct {
	Key      string            `json:"key"`
	Tag      Tag               `json:"tag"`
	Base     *apinode.Node     `json:"base,omitempty"`
	Head     *apinode.Node     `json:"head,omitempty"`
	Attrs    []AttributeChange `json:"attrs,omitempty"`
	Children []*Record         `json:"children,omitempty"`
}

// Kind reports the node kind this record describes, preferring Head (the
// revision that still exists) and falling back to Base for a Removed
// record.
func (r *Record) Kind() apinode.Kind {
	if r.Head != nil {
		return r.Head.Kind
	}
	if r.Base != nil {
		return r.Base.Kind
	}
	return apinode.Unknown
}

// QualifiedName reports the qualified name of whichever revision of the
// node is present.
func (r *Record) QualifiedName() string {
	if r.Head != nil {
		return r.Head.QualifiedName
	}
	if r.Base != nil {
		return r.Base.QualifiedName
	}
	return ""
}
