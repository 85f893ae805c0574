package diff_test

import (
	"testing"

	"github.com/armor-abi/armor/internal/apinode"
	"github.com/armor-abi/armor/internal/diff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffAttributesFindsChangedFields(t *testing.T) {
	base := &apinode.Node{TypeName: "int", Storage: apinode.StorageNone, DataType: "int"}
	head := &apinode.Node{TypeName: "long", Storage: apinode.StorageStatic, DataType: "long"}

	changes := diff.DiffAttributes(base, head)

	fields := make(map[string]diff.AttributeChange)
	for _, c := range changes {
		fields[c.Field] = c
	}

	assert.Equal(t, "int", fields["typeName"].OldValue)
	assert.Equal(t, "long", fields["typeName"].NewValue)
	assert.Equal(t, "None", fields["storage"].OldValue)
	assert.Equal(t, "Static", fields["storage"].NewValue)
	assert.Equal(t, "dataType", fields["dataType"].Field)
}

func TestDiffAttributesIgnoresDataTypeForFunctions(t *testing.T) {
	base := &apinode.Node{Kind: apinode.Function, DataType: "void (int)", Storage: apinode.StorageNone}
	head := &apinode.Node{Kind: apinode.Function, DataType: "void (int)", Storage: apinode.StorageStatic}

	changes := diff.DiffAttributes(base, head)
	for _, c := range changes {
		assert.NotEqual(t, "dataType", c.Field)
	}
}

func TestDiffAttributesRestrictsFunctionsToThreeFields(t *testing.T) {
	base := &apinode.Node{
		Kind: apinode.Function, DataType: "void (int)",
		Storage: apinode.StorageNone, CallingConvention: apinode.CallNone,
		IsInline: false, TypeName: "int", Access: apinode.AccessPublic, IsPointer: true,
	}
	head := &apinode.Node{
		Kind: apinode.Function, DataType: "void (int)",
		Storage: apinode.StorageStatic, CallingConvention: apinode.CallCDecl,
		IsInline: true, TypeName: "long", Access: apinode.AccessPrivate, IsPointer: false,
	}

	changes := diff.DiffAttributes(base, head)
	fields := make(map[string]diff.AttributeChange)
	for _, c := range changes {
		fields[c.Field] = c
	}

	require.Len(t, changes, 3)
	assert.Equal(t, "Static", fields["storageQualifier"].NewValue)
	assert.Equal(t, "CDecl", fields["functionCallingConvention"].NewValue)
	assert.Equal(t, "true", fields["inline"].NewValue)
	_, hasTypeName := fields["typeName"]
	assert.False(t, hasTypeName)
}

func TestDiffAttributesEmptyWhenIdentical(t *testing.T) {
	n := &apinode.Node{TypeName: "int", DataType: "int"}
	assert.Empty(t, diff.DiffAttributes(n, n))
}
