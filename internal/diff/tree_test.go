package diff_test

import (
	"testing"

	"github.com/armor-abi/armor/internal/apinode"
	"github.com/armor-abi/armor/internal/diff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func field(name, dataType string) *apinode.Node {
	return &apinode.Node{Kind: apinode.Field, QualifiedName: name, DataType: dataType}
}

func fn(name, signature string) *apinode.Node {
	return &apinode.Node{Kind: apinode.Function, QualifiedName: name, DataType: signature}
}

func TestTreeDetectsAddedAndRemoved(t *testing.T) {
	base := []*apinode.Node{field("Point.x", "int")}
	head := []*apinode.Node{field("Point.x", "int"), field("Point.y", "int")}

	records := diff.Tree(base, head, nil)
	require.Len(t, records, 2)

	var tags []diff.Tag
	for _, r := range records {
		tags = append(tags, r.Tag)
	}
	assert.Contains(t, tags, diff.Unchanged)
	assert.Contains(t, tags, diff.Added)
}

func TestTreeDetectsRemoval(t *testing.T) {
	base := []*apinode.Node{field("Point.x", "int"), field("Point.y", "int")}
	head := []*apinode.Node{field("Point.x", "int")}

	records := diff.Tree(base, head, nil)
	var removed int
	for _, r := range records {
		if r.Tag == diff.Removed {
			removed++
			assert.Equal(t, "Point.y", r.QualifiedName())
		}
	}
	assert.Equal(t, 1, removed)
}

func TestTreeDetectsModifiedAttribute(t *testing.T) {
	base := []*apinode.Node{field("Point.x", "int[10]")}
	head := []*apinode.Node{field("Point.x", "int[5]")}

	records := diff.Tree(base, head, nil)
	require.Len(t, records, 1)
	assert.Equal(t, diff.Modified, records[0].Tag)
	require.Len(t, records[0].Attrs, 1)
	assert.Equal(t, "dataType", records[0].Attrs[0].Field)
}

func TestTreeKeepsOverloadsDistinctByDataType(t *testing.T) {
	base := []*apinode.Node{fn("run", "void (int)")}
	head := []*apinode.Node{fn("run", "void (int)"), fn("run", "void (int, int)")}

	records := diff.Tree(base, head, nil)
	require.Len(t, records, 2)

	var addedCount, unchangedCount int
	for _, r := range records {
		switch r.Tag {
		case diff.Added:
			addedCount++
		case diff.Unchanged:
			unchangedCount++
		}
	}
	assert.Equal(t, 1, addedCount)
	assert.Equal(t, 1, unchangedCount)
}

func TestTreeHonorsExclusion(t *testing.T) {
	base := []*apinode.Node{field("Internal.helper", "int")}
	head := []*apinode.Node{field("Internal.helper", "long")}

	records := diff.Tree(base, head, func(qn string) bool { return qn == "Internal.helper" })
	assert.Empty(t, records)
}

func TestTreeRecursesIntoChildren(t *testing.T) {
	base := []*apinode.Node{{
		Kind: apinode.Struct, QualifiedName: "Outer",
		Children: []*apinode.Node{field("Outer.x", "int[10]")},
	}}
	head := []*apinode.Node{{
		Kind: apinode.Struct, QualifiedName: "Outer",
		Children: []*apinode.Node{field("Outer.x", "int[5]")},
	}}

	records := diff.Tree(base, head, nil)
	require.Len(t, records, 1)
	assert.Equal(t, diff.Modified, records[0].Tag)
	require.Len(t, records[0].Children, 1)
	assert.Equal(t, diff.Modified, records[0].Children[0].Tag)
}
