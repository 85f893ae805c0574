// Package report groups a flat change list into the header+name buckets a
// human reads a compatibility report by, and renders those buckets as JSON
// or HTML (C9). Grouping matches the original's group_records_by_function:
// one Row per (headerFile, name), description lines newline-joined in the
// order they were produced, and a verdict that escalates to "breaking" the
// moment any bucketed change is a compatibility change.
package report

import "github.com/armor-abi/armor/internal/describe"

// ChangeType is the grouped-level classification carried on a Row. It uses
// a distinct vocabulary from describe.ChangeType (spaced words, not an
// underscore) because it classifies a whole declaration's bucket of
// changes, not one atomic change.
type ChangeType string

const (
	FunctionalityAdded  ChangeType = "Functionality Added"
	CompatibilityChanged ChangeType = "Compatibility Changed"
)

// Row is one line of a compatibility report: every change bucketed under
// one (HeaderFile, Name) pair, collapsed to a single description and a
// single verdict.
type Row struct {
	HeaderFile    string                 `json:"headerfile"`
	Name          string                 `json:"name"`
	Description   string                 `json:"description"`
	ChangeType    ChangeType             `json:"changetype"`
	Compatibility describe.Compatibility `json:"compatibility"`
}

// GroupChanges buckets changes by header file and declaration name,
// preserving each bucket's first-seen order so a report is stable across
// runs given the same diff tree. A bucket's ChangeType is
// "Compatibility Changed" if any change inside it was a compatibility
// change, "Functionality Added" otherwise — the same rule
// group_records_by_function applies when folding several atomic rows for
// one function into one report row.
func GroupChanges(changes []describe.Change) []Row {
	index := make(map[string]int)
	var rows []Row
	var descriptions [][]string
	var compatibilityChanged []bool

	for _, c := range changes {
		key := c.HeaderFile + "\x00" + c.Name
		i, ok := index[key]
		if !ok {
			i = len(rows)
			index[key] = i
			rows = append(rows, Row{HeaderFile: c.HeaderFile, Name: c.Name})
			descriptions = append(descriptions, nil)
			compatibilityChanged = append(compatibilityChanged, false)
		}
		descriptions[i] = append(descriptions[i], c.Description)
		if c.ChangeType == describe.CompatibilityChanged {
			compatibilityChanged[i] = true
		}
	}

	for i := range rows {
		rows[i].Description = joinLines(descriptions[i])
		if compatibilityChanged[i] {
			rows[i].ChangeType = CompatibilityChanged
			rows[i].Compatibility = describe.BackwardIncompatible
		} else {
			rows[i].ChangeType = FunctionalityAdded
			rows[i].Compatibility = describe.BackwardCompatible
		}
	}
	return rows
}

func joinLines(lines []string) string {
	out := lines[0]
	for _, l := range lines[1:] {
		out += "\n" + l
	}
	return out
}
