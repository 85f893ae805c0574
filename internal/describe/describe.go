// Package describe turns a tagged diff tree (internal/diff) into a flat
// list of atomic, human-readable change records with a backward-
// compatibility verdict attached to each one (C8). The wording and
// grouping rules below are ported kind-by-kind from the original
// report_utils.cpp describer rather than a single generic template, so the
// same input produces the same sentence the original would have written.
package describe

import (
	"fmt"
	"strings"

	"github.com/armor-abi/armor/internal/apinode"
	"github.com/armor-abi/armor/internal/diff"
)

// ChangeType is the atomic-level classification attached to one Change,
// before changes are grouped by declaration. Only a top-level addition
// counts as functionality added; everything else, including every change
// nested inside a modified declaration, is a compatibility change.
type ChangeType string

const (
	FunctionalityChanged ChangeType = "Functionality_changed"
	CompatibilityChanged ChangeType = "Compatibility_changed"
)

// Compatibility is the verdict attached to one Change.
type Compatibility string

const (
	BackwardCompatible   Compatibility = "backward_compatible"
	BackwardIncompatible Compatibility = "backward_incompatible"
)

// Change is one atomic, describable difference between a base and head
// declaration.
type Change struct {
	HeaderFile    string
	Name          string
	Description   string
	ChangeType    ChangeType
	Compatibility Compatibility
}

// rawChange is the pre-classification shape every per-kind describer
// produces; toChange derives ChangeType/Compatibility from it the same way
// the original's to_change_category/to_record pair did.
type rawChange struct {
	name     string
	detail   string
	kind     string // "added", "removed", or "modified"
	topLevel bool
}

func toChange(headerFile string, r rawChange) Change {
	changeType := CompatibilityChanged
	if r.kind == "added" && r.topLevel {
		changeType = FunctionalityChanged
	}
	compat := BackwardIncompatible
	if changeType == FunctionalityChanged {
		compat = BackwardCompatible
	}
	return Change{
		HeaderFile:    headerFile,
		Name:          r.name,
		Description:   r.detail,
		ChangeType:    changeType,
		Compatibility: compat,
	}
}

// Records walks a diffed tree of root records and produces the flat list of
// Change values a report groups by header and name. A Function node can
// contribute several Change rows (one per attribute/parameter change); every
// other kind contributes exactly one, its Description built by recursively
// describing whatever changed underneath it.
func Records(headerFile string, records []*diff.Record) []Change {
	var out []Change
	for _, r := range records {
		if r.Tag == diff.Unchanged {
			continue
		}
		if r.Kind() == apinode.Function {
			for _, raw := range describeFunction(r) {
				out = append(out, toChange(headerFile, raw))
			}
			continue
		}
		out = append(out, toChange(headerFile, rawChange{
			name:     r.QualifiedName(),
			detail:   generateNonFunctionDescription(r),
			kind:     tagKind(r.Tag),
			topLevel: r.Tag == diff.Added,
		}))
	}
	return out
}

func tagKind(t diff.Tag) string {
	switch t {
	case diff.Added:
		return "added"
	case diff.Removed:
		return "removed"
	case diff.Modified:
		return "modified"
	default:
		return ""
	}
}

// describeFunction mirrors preprocess_api_changes's Function branch: added
// and removed functions each get one fixed-text row; a modified function is
// inspected for its own attribute changes, nested return-type/parameter
// type changes, and direct parameter add/remove/rename, falling back to a
// single "Function modified" row when nothing specific is found. An added
// function's row is topLevel; every row the modified case produces is
// forced to topLevel=false, matching the original
// — a modified function is never functionality added, even when one of its
// changes is itself a parameter addition.
func describeFunction(r *diff.Record) []rawChange {
	name := r.QualifiedName()
	switch r.Tag {
	case diff.Added:
		return []rawChange{{name: name, detail: "Function added", kind: "added", topLevel: true}}
	case diff.Removed:
		return []rawChange{{name: name, detail: "Function removed", kind: "removed", topLevel: false}}
	case diff.Modified:
		var rows []rawChange
		for _, attr := range r.Attrs {
			if line := functionAttributeLine(attr); line != "" {
				rows = append(rows, rawChange{name: name, detail: line, kind: "modified"})
			}
		}

		var removedParams, addedParams []*apinode.Node
		for _, child := range r.Children {
			switch {
			case child.Kind() == apinode.ReturnType && child.Tag == diff.Modified:
				if line := nestedTypeChangeLine(child, true); line != "" {
					rows = append(rows, rawChange{name: name, detail: line, kind: "modified"})
				}
			case child.Kind() == apinode.Parameter && child.Tag == diff.Modified:
				if line := nestedTypeChangeLine(child, false); line != "" {
					rows = append(rows, rawChange{name: name, detail: line, kind: "modified"})
				}
			case child.Kind() == apinode.Parameter && child.Tag == diff.Added:
				addedParams = append(addedParams, child.Head)
			case child.Kind() == apinode.Parameter && child.Tag == diff.Removed:
				removedParams = append(removedParams, child.Base)
			}
		}
		rows = append(rows, diffDirectParams(name, removedParams, addedParams)...)

		if len(rows) == 0 {
			rows = []rawChange{{name: name, detail: "Function modified", kind: "modified"}}
		}
		for i := range rows {
			rows[i].topLevel = false
		}
		return rows
	default:
		return nil
	}
}

// functionAttributeLine renders one of a Function's three comparable
// attributes (diff.DiffAttributes already restricts this set) as
// add/remove/change text, matching add_attr_change. "None" is the closed
// enum's sentinel for "not present", so it is treated like an empty string
// for the purposes of the added/removed phrasing.
func functionAttributeLine(attr diff.AttributeChange) string {
	oldV, newV := normalizeAbsent(attr.OldValue), normalizeAbsent(attr.NewValue)
	switch {
	case oldV == newV:
		return ""
	case oldV != "" && newV == "":
		return fmt.Sprintf("Function attribute %s removed '%s'", attr.Field, oldV)
	case oldV == "" && newV != "":
		return fmt.Sprintf("Function attribute %s added '%s'", attr.Field, newV)
	default:
		return fmt.Sprintf("Function attribute %s changed from '%s' to '%s'", attr.Field, oldV, newV)
	}
}

func normalizeAbsent(v string) string {
	if v == "None" {
		return ""
	}
	return v
}

// nestedTypeChangeLine handles a Modified ReturnType or Parameter child of a
// Function, matching diff_nested_mod_node. Only a dataType change is
// described this way; other attribute changes on a parameter are not part
// of the original's function-attribute vocabulary.
func nestedTypeChangeLine(child *diff.Record, isReturnType bool) string {
	for _, attr := range child.Attrs {
		if attr.Field != "dataType" {
			continue
		}
		if isReturnType {
			return fmt.Sprintf("Return type changed from '%s' to '%s'", attr.OldValue, attr.NewValue)
		}
		return fmt.Sprintf("Parameter '%s' type changed from '%s' to '%s'", child.QualifiedName(), attr.OldValue, attr.NewValue)
	}
	return ""
}

// diffDirectParams pairs a function's directly added/removed parameters by
// data type (a same-type removed+added pair looks like a rename), then
// reports whatever is left over as a plain removal or addition, matching
// diff_direct_param_nodes/looks_like_rename.
func diffDirectParams(name string, removed, added []*apinode.Node) []rawChange {
	var rows []rawChange
	matchedAdded := make([]bool, len(added))
	matchedRemoved := make([]bool, len(removed))

	for i, r := range removed {
		for j, a := range added {
			if matchedAdded[j] || r.DataType == "" || r.DataType != a.DataType {
				continue
			}
			rows = append(rows, rawChange{
				name:   name,
				detail: fmt.Sprintf("Parameter renamed from '%s' to '%s' (type '%s')", r.QualifiedName, a.QualifiedName, r.DataType),
				kind:   "modified",
			})
			matchedRemoved[i] = true
			matchedAdded[j] = true
			break
		}
	}
	for i, r := range removed {
		if matchedRemoved[i] {
			continue
		}
		rows = append(rows, rawChange{
			name:   name,
			detail: fmt.Sprintf("Parameter '%s' removed (type '%s')", r.QualifiedName, r.DataType),
			kind:   "removed",
		})
	}
	for j, a := range added {
		if matchedAdded[j] {
			continue
		}
		rows = append(rows, rawChange{
			name:   name,
			detail: fmt.Sprintf("Parameter '%s' added (type '%s')", a.QualifiedName, a.DataType),
			kind:   "added",
		})
	}
	return rows
}

// generateNonFunctionDescription recursively builds every line describing
// what changed under a non-Function record and joins them into the single
// multi-line Description the record's one Change row carries, matching
// generate_non_function_description. A record with nothing recursively
// describable (e.g. a leaf with no children and no type to report) falls
// back to the generic "<kind> <tag>: '<name>'" line.
func generateNonFunctionDescription(r *diff.Record) string {
	lines := describeNonFunctionLines(r)
	if len(lines) == 0 {
		return fmt.Sprintf("%s %s: '%s'", r.Kind(), tagKind(r.Tag), r.QualifiedName())
	}
	return strings.Join(lines, "\n")
}

func describeNonFunctionLines(r *diff.Record) []string {
	switch r.Tag {
	case diff.Added:
		lines := []string{formatAddedOrRemoved(string(r.Kind()), r.QualifiedName(), dataTypeOf(r), "added")}
		return append(lines, emitSubtreeLines(r.Children)...)
	case diff.Removed:
		lines := []string{formatAddedOrRemoved(string(r.Kind()), r.QualifiedName(), dataTypeOf(r), "removed")}
		return append(lines, emitSubtreeLines(r.Children)...)
	case diff.Modified:
		lines := attributeLines(r.Kind(), r.QualifiedName(), r.Attrs)
		return append(lines, describeModifiedChildren(r.Children)...)
	default:
		return nil
	}
}

// attributeLines reports a record's own attribute changes: a dataType
// change gets the "type changed from x to y" phrasing diff_nested_mod_node
// uses for ReturnType/Parameter, generalized to every kind that carries a
// type (Field, Variable, Typedef); every other attribute gets a named
// "attribute <field> changed" line, the same shape functionAttributeLine
// uses for a Function's three comparable attributes.
func attributeLines(kind apinode.Kind, qualifiedName string, attrs []diff.AttributeChange) []string {
	var lines []string
	for _, attr := range attrs {
		if attr.Field == "dataType" {
			lines = append(lines, fmt.Sprintf("%s '%s' type changed from '%s' to '%s'", kind, qualifiedName, attr.OldValue, attr.NewValue))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s '%s' attribute %s changed from '%s' to '%s'", kind, qualifiedName, attr.Field, attr.OldValue, attr.NewValue))
	}
	return lines
}

// describeModifiedChildren walks the direct children of a Modified record:
// a wholly added/removed child is reported together with its whole subtree;
// a modified child recurses through describeNonFunctionLines, which reports
// its own attribute changes before descending further, matching
// describe_non_function_recursive's handling of a "modified"-tagged child.
func describeModifiedChildren(children []*diff.Record) []string {
	var lines []string
	for _, c := range children {
		switch c.Tag {
		case diff.Removed:
			lines = append(lines, formatAddedOrRemoved(string(c.Kind()), c.QualifiedName(), dataTypeOf(c), "removed"))
			lines = append(lines, emitSubtreeLines(c.Children)...)
		case diff.Added:
			lines = append(lines, formatAddedOrRemoved(string(c.Kind()), c.QualifiedName(), dataTypeOf(c), "added"))
			lines = append(lines, emitSubtreeLines(c.Children)...)
		case diff.Modified:
			lines = append(lines, describeNonFunctionLines(c)...)
		}
	}
	return lines
}

// emitSubtreeLines lists every descendant of a wholly added/removed subtree,
// matching emit_added_removed_children. diff.Tree tags an entire
// Added/Removed subtree with the same tag all the way down, so each child's
// own Tag already says whether it was added or removed.
func emitSubtreeLines(children []*diff.Record) []string {
	var lines []string
	for _, c := range children {
		verb := "added"
		if c.Tag == diff.Removed {
			verb = "removed"
		}
		lines = append(lines, formatAddedOrRemoved(string(c.Kind()), c.QualifiedName(), dataTypeOf(c), verb))
		lines = append(lines, emitSubtreeLines(c.Children)...)
	}
	return lines
}

func formatAddedOrRemoved(kind, qualifiedName, dataType, verb string) string {
	if dataType != "" {
		return fmt.Sprintf("%s %s: '%s' with type '%s'", kind, verb, qualifiedName, dataType)
	}
	return fmt.Sprintf("%s %s: '%s'", kind, verb, qualifiedName)
}

func dataTypeOf(r *diff.Record) string {
	if r.Head != nil {
		return r.Head.DataType
	}
	if r.Base != nil {
		return r.Base.DataType
	}
	return ""
}
