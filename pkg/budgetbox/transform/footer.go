// Package transform implements the core table transforms: label
// normalization, segmentation at sentinel total rows, totals
// reconciliation, hyperlink annotation, and row/column edits.
//
// All transforms are pure: they return a new table and never mutate their
// input. Nothing in this package performs I/O.
package transform

import "strings"

// Footer sentinel labels, matched trimmed and case-insensitive. Rows with
// these labels carry pre-aggregated values from the source template and are
// never data rows. Both the abbreviated and expanded spellings are listed
// because normalization may or may not have run on a given table.
var footerLabels = map[string]struct{}{
	"total":                 {},
	"est. conversions":      {},
	"estimated conversions": {},
	"est. impressions":      {},
	"estimated impressions": {},
}

// foldLabel canonicalizes a label value for sentinel comparison.
func foldLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsFooterLabel reports whether a label marks a footer row. The segmenter
// and the reconciler share this predicate so a row can never be a boundary
// for one and a data row for the other.
func IsFooterLabel(s string) bool {
	_, ok := footerLabels[foldLabel(s)]
	return ok
}

// IsTotalLabel reports whether a label marks a total row, the sentinel that
// closes a segment.
func IsTotalLabel(s string) bool {
	return foldLabel(s) == "total"
}

// IsEstimatedConversionsLabel reports whether a label marks an estimated
// conversions footer row, in either spelling.
func IsEstimatedConversionsLabel(s string) bool {
	f := foldLabel(s)
	return f == "est. conversions" || f == "estimated conversions"
}
