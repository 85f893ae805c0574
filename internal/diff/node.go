package diff

import "github.com/armor-abi/armor/internal/apinode"

// DiffAttributes compares two nodes already known to share a diff key (same
// kind, same DiffKey) and reports every attribute that differs (C6). A
// Function node's signature lives in DataType, which the key extractor
// already used to match the pair, so a true signature change produces a new
// key and a Removed/Added pair in the tree instead of a Modified record;
// the only attributes left worth comparing on a Function are the ones a
// signature match doesn't already pin down — storage class, calling
// convention, and inlining — matching the original's diff_function_attributes.
func DiffAttributes(base, head *apinode.Node) []AttributeChange {
	if base.Kind == apinode.Function {
		return diffFunctionAttributes(base, head)
	}
	return diffGenericAttributes(base, head)
}

func diffFunctionAttributes(base, head *apinode.Node) []AttributeChange {
	var changes []AttributeChange
	add := func(field, oldValue, newValue string) {
		if oldValue != newValue {
			changes = append(changes, AttributeChange{Field: field, OldValue: oldValue, NewValue: newValue})
		}
	}

	add("storageQualifier", string(base.Storage), string(head.Storage))
	add("functionCallingConvention", string(base.CallingConvention), string(head.CallingConvention))
	add("inline", boolString(base.IsInline), boolString(head.IsInline))

	return changes
}

func diffGenericAttributes(base, head *apinode.Node) []AttributeChange {
	var changes []AttributeChange
	add := func(field, oldValue, newValue string) {
		if oldValue != newValue {
			changes = append(changes, AttributeChange{Field: field, OldValue: oldValue, NewValue: newValue})
		}
	}

	add("typeName", base.TypeName, head.TypeName)
	add("dataType", base.DataType, head.DataType)
	add("value", base.Value, head.Value)
	add("access", string(base.Access), string(head.Access))
	add("storage", string(base.Storage), string(head.Storage))
	add("const", string(base.Const), string(head.Const))
	add("virtual", string(base.Virtual), string(head.Virtual))
	add("callingConvention", string(base.CallingConvention), string(head.CallingConvention))
	add("isInline", boolString(base.IsInline), boolString(head.IsInline))
	add("isPointer", boolString(base.IsPointer), boolString(head.IsPointer))
	add("isReference", boolString(base.IsReference), boolString(head.IsReference))
	add("isRValueRef", boolString(base.IsRValueRef), boolString(head.IsRValueRef))
	add("isPacked", boolString(base.IsPacked), boolString(head.IsPacked))

	return changes
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
