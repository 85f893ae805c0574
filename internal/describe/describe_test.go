package describe_test

import (
	"testing"

	"github.com/armor-abi/armor/internal/apinode"
	"github.com/armor-abi/armor/internal/describe"
	"github.com/armor-abi/armor/internal/diff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordsDescribesAddedFunctionAsFunctionalityChanged(t *testing.T) {
	records := []*diff.Record{{
		Tag:  diff.Added,
		Head: &apinode.Node{Kind: apinode.Function, QualifiedName: "newFeature"},
	}}

	changes := describe.Records("api.h", records)
	require.Len(t, changes, 1)
	assert.Equal(t, "Function added", changes[0].Description)
	assert.Equal(t, describe.FunctionalityChanged, changes[0].ChangeType)
	assert.Equal(t, describe.BackwardCompatible, changes[0].Compatibility)
}

func TestRecordsDescribesRemovedFunctionAsCompatibilityChanged(t *testing.T) {
	records := []*diff.Record{{
		Tag:  diff.Removed,
		Base: &apinode.Node{Kind: apinode.Function, QualifiedName: "oldFeature"},
	}}

	changes := describe.Records("api.h", records)
	require.Len(t, changes, 1)
	assert.Equal(t, "Function removed", changes[0].Description)
	assert.Equal(t, describe.CompatibilityChanged, changes[0].ChangeType)
	assert.Equal(t, describe.BackwardIncompatible, changes[0].Compatibility)
}

func TestRecordsDescribesFunctionAttributeChange(t *testing.T) {
	records := []*diff.Record{{
		Tag:  diff.Modified,
		Base: &apinode.Node{Kind: apinode.Function, QualifiedName: "run"},
		Head: &apinode.Node{Kind: apinode.Function, QualifiedName: "run"},
		Attrs: []diff.AttributeChange{
			{Field: "storageQualifier", OldValue: "None", NewValue: "Static"},
		},
	}}

	changes := describe.Records("api.h", records)
	require.Len(t, changes, 1)
	assert.Equal(t, "Function attribute storageQualifier changed from 'None' to 'Static'", changes[0].Description)
	assert.Equal(t, describe.CompatibilityChanged, changes[0].ChangeType)
}

func TestRecordsDescribesReturnTypeChange(t *testing.T) {
	returnType := &diff.Record{
		Tag: diff.Modified,
		Base: &apinode.Node{Kind: apinode.ReturnType, QualifiedName: "run.$return"},
		Head: &apinode.Node{Kind: apinode.ReturnType, QualifiedName: "run.$return"},
		Attrs: []diff.AttributeChange{
			{Field: "dataType", OldValue: "int", NewValue: "long"},
		},
	}
	fn := &diff.Record{
		Tag:      diff.Modified,
		Base:     &apinode.Node{Kind: apinode.Function, QualifiedName: "run"},
		Head:     &apinode.Node{Kind: apinode.Function, QualifiedName: "run"},
		Children: []*diff.Record{returnType},
	}

	changes := describe.Records("api.h", []*diff.Record{fn})
	require.Len(t, changes, 1)
	assert.Equal(t, "Return type changed from 'int' to 'long'", changes[0].Description)
}

func TestRecordsDescribesParameterRename(t *testing.T) {
	removed := &diff.Record{Tag: diff.Removed, Base: &apinode.Node{Kind: apinode.Parameter, QualifiedName: "a", DataType: "int"}}
	added := &diff.Record{Tag: diff.Added, Head: &apinode.Node{Kind: apinode.Parameter, QualifiedName: "b", DataType: "int"}}
	fn := &diff.Record{
		Tag:      diff.Modified,
		Base:     &apinode.Node{Kind: apinode.Function, QualifiedName: "run"},
		Head:     &apinode.Node{Kind: apinode.Function, QualifiedName: "run"},
		Children: []*diff.Record{removed, added},
	}

	changes := describe.Records("api.h", []*diff.Record{fn})
	require.Len(t, changes, 1)
	assert.Equal(t, "Parameter renamed from 'a' to 'b' (type 'int')", changes[0].Description)
	assert.Equal(t, describe.CompatibilityChanged, changes[0].ChangeType)
}

func TestRecordsFallsBackToFunctionModified(t *testing.T) {
	records := []*diff.Record{{
		Tag:  diff.Modified,
		Base: &apinode.Node{Kind: apinode.Function, QualifiedName: "run"},
		Head: &apinode.Node{Kind: apinode.Function, QualifiedName: "run"},
	}}

	changes := describe.Records("api.h", records)
	require.Len(t, changes, 1)
	assert.Equal(t, "Function modified", changes[0].Description)
}

func TestRecordsDescribesEnumeratorRemoved(t *testing.T) {
	enumerator := &diff.Record{Tag: diff.Removed, Base: &apinode.Node{Kind: apinode.Enumerator, QualifiedName: "E.C"}}
	enum := &diff.Record{
		Tag:      diff.Modified,
		Base:     &apinode.Node{Kind: apinode.Enum, QualifiedName: "E"},
		Head:     &apinode.Node{Kind: apinode.Enum, QualifiedName: "E"},
		Children: []*diff.Record{enumerator},
	}

	changes := describe.Records("api.h", []*diff.Record{enum})
	require.Len(t, changes, 1)
	assert.Equal(t, "Enumerator removed: 'E.C'", changes[0].Description)
	assert.Equal(t, describe.CompatibilityChanged, changes[0].ChangeType)
}

func TestRecordsDescendsIntoNestedFieldTypeChange(t *testing.T) {
	field := &diff.Record{
		Tag:  diff.Modified,
		Base: &apinode.Node{Kind: apinode.Field, QualifiedName: "Outer.d"},
		Head: &apinode.Node{Kind: apinode.Field, QualifiedName: "Outer.d"},
		Attrs: []diff.AttributeChange{
			{Field: "dataType", OldValue: "int[10]", NewValue: "int[5]"},
		},
	}
	outer := &diff.Record{
		Tag:      diff.Modified,
		Base:     &apinode.Node{Kind: apinode.Struct, QualifiedName: "Outer"},
		Head:     &apinode.Node{Kind: apinode.Struct, QualifiedName: "Outer"},
		Children: []*diff.Record{field},
	}

	changes := describe.Records("api.h", []*diff.Record{outer})
	require.Len(t, changes, 1)
	assert.Equal(t, "Outer", changes[0].Name)
	assert.Equal(t, "Field 'Outer.d' type changed from 'int[10]' to 'int[5]'", changes[0].Description)
}

func TestRecordsDescribesAddedStructWithFields(t *testing.T) {
	field := &diff.Record{Tag: diff.Added, Head: &apinode.Node{Kind: apinode.Field, QualifiedName: "Widget.id", DataType: "int"}}
	widget := &diff.Record{
		Tag:      diff.Added,
		Head:     &apinode.Node{Kind: apinode.Struct, QualifiedName: "Widget"},
		Children: []*diff.Record{field},
	}

	changes := describe.Records("api.h", []*diff.Record{widget})
	require.Len(t, changes, 1)
	assert.Equal(t, "Struct added: 'Widget'\nField added: 'Widget.id' with type 'int'", changes[0].Description)
	assert.Equal(t, describe.FunctionalityChanged, changes[0].ChangeType)
}

func TestMacroValueChangeIsStillBackwardIncompatibleAtomically(t *testing.T) {
	records := []*diff.Record{{
		Tag:  diff.Modified,
		Base: &apinode.Node{Kind: apinode.Macro, QualifiedName: "MAX_DEVICES"},
		Head: &apinode.Node{Kind: apinode.Macro, QualifiedName: "MAX_DEVICES"},
		Attrs: []diff.AttributeChange{
			{Field: "value", OldValue: "10", NewValue: "20"},
		},
	}}

	changes := describe.Records("api.h", records)
	require.Len(t, changes, 1)
	assert.Equal(t, "Macro 'MAX_DEVICES' attribute value changed from '10' to '20'", changes[0].Description)
	assert.Equal(t, describe.CompatibilityChanged, changes[0].ChangeType)
}
