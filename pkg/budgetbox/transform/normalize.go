package transform

import (
	"regexp"
	"strings"

	"github.com/budgetbox/budgetbox-go/pkg/budgetbox/models"
)

const (
	// abbrevToken is replaced with abbrevExpansion wherever it appears in
	// column names and string cells. The upstream template uses both forms
	// interchangeably.
	abbrevToken     = "Est."
	abbrevExpansion = "Estimated"
)

var (
	// reCodePrefix matches the "AB:" style routing prefix the template
	// prepends to some service labels.
	reCodePrefix = regexp.MustCompile(`^..:`)
	// reParen matches well-formed parenthesized annotations like "(Markup)".
	// Unbalanced parentheses are left alone.
	reParen = regexp.MustCompile(`\(.*?\)`)
)

// CleanLabel normalizes a single label value: strips a leading
// two-character-plus-colon prefix, truncates at the first "/", removes
// parenthesized annotations, and trims whitespace. Values without the
// recognized patterns pass through unchanged, so cleaning is idempotent.
func CleanLabel(s string) string {
	s = reCodePrefix.ReplaceAllString(s, "")
	if i := strings.Index(s, "/"); i >= 0 {
		s = s[:i]
	}
	s = reParen.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Normalize returns a copy of the table with the first column renamed to
// labelColumn, every label value cleaned via CleanLabel, and the "Est."
// abbreviation expanded across all column names and string cells.
//
// Normalization never drops or reorders rows or columns.
func Normalize(t models.Table, labelColumn string) models.Table {
	out := t.Clone()

	if len(out.Columns) > 0 && out.Columns[0] != labelColumn {
		out.Columns[0] = labelColumn
	}
	for i, c := range out.Columns {
		out.Columns[i] = strings.TrimSpace(strings.ReplaceAll(c, abbrevToken, abbrevExpansion))
	}

	labelIdx := out.ColumnIndex(labelColumn)
	if labelIdx < 0 {
		labelIdx = 0
	}
	for _, row := range out.Rows {
		for j := range row {
			row[j] = strings.ReplaceAll(row[j], abbrevToken, abbrevExpansion)
		}
		if labelIdx < len(row) {
			row[labelIdx] = CleanLabel(row[labelIdx])
		}
	}
	return out
}
