package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSON renders rows as a 4-space-indented JSON array, matching the
// wire format spec.md §4.7 documents for machine consumers of a report.
func WriteJSON(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("report: encoding json: %w", err)
	}
	return nil
}
