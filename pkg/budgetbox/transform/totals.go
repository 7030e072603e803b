package transform

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/budgetbox/budgetbox-go/logging"
	"github.com/budgetbox/budgetbox-go/pkg/budgetbox/models"
)

// Policy declares, per column, whether a reconciled total is recomputed by
// summation over data rows or carried forward from the source's last footer
// row. The upstream template is inconsistent about which estimate columns
// are pre-aggregated, so this is configuration rather than code.
type Policy struct {
	// Recompute lists columns whose total is the sum of surviving data rows.
	Recompute []string `yaml:"recompute"`
	// CarryForward lists columns whose total is copied verbatim from the
	// last footer total row. Empty means "every column not in Recompute".
	CarryForward []string `yaml:"carry_forward"`
}

// DefaultPolicy recomputes the two currency columns the template always
// derives from line items and carries every other footer value forward.
func DefaultPolicy() Policy {
	return Policy{Recompute: []string{"Monthly Amount", "Item Total"}}
}

// Label-ish columns are never summed, regardless of policy.
var labelColumns = map[string]struct{}{
	"service":     {},
	"strategy":    {},
	"description": {},
	"notes":       {},
}

func (p Policy) recomputes(column string) bool {
	if _, ok := labelColumns[foldLabel(column)]; ok {
		return false
	}
	for _, c := range p.Recompute {
		if c == column {
			return true
		}
	}
	return false
}

// IsSummation reports whether a column's total is recomputed by summation.
// The renderer uses this to pick currency formatting.
func (p Policy) IsSummation(column string) bool {
	return p.recomputes(column)
}

func (p Policy) carriesForward(column string) bool {
	if p.recomputes(column) {
		return false
	}
	if len(p.CarryForward) == 0 {
		return true
	}
	for _, c := range p.CarryForward {
		if c == column {
			return true
		}
	}
	return false
}

// Reconcile rebuilds a segment's total row in two phases: capture the last
// footer total row, then drop every footer row and append one fresh total.
// Summation columns are recomputed over the surviving data rows; carry-forward
// columns keep the captured footer value. The result always ends in exactly
// one total row, and reconciling an already-reconciled table reproduces it.
func Reconcile(t models.Table, labelColumn string, p Policy) models.Table {
	labelIdx := t.ColumnIndex(labelColumn)
	if labelIdx < 0 {
		logging.Logger().Warn("label column not found, using first column",
			"column", labelColumn)
		labelIdx = 0
	}

	// Phase 1: capture the last pre-aggregated total row, if any.
	var captured models.Row
	for _, row := range t.Rows {
		if labelIdx < len(row) && IsTotalLabel(row[labelIdx]) {
			captured = row
		}
	}

	// Phase 2: drop all footer rows, then rebuild the total.
	out := models.Table{Columns: append([]string(nil), t.Columns...)}
	for _, row := range t.Rows {
		if labelIdx < len(row) && IsFooterLabel(row[labelIdx]) {
			continue
		}
		out.Rows = append(out.Rows, append(models.Row(nil), row...))
	}

	total := make(models.Row, len(out.Columns))
	for j, col := range out.Columns {
		switch {
		case j == labelIdx:
			total[j] = "Total"
		case p.recomputes(col):
			total[j] = sumColumn(out.Rows, j)
		case p.carriesForward(col) && captured != nil && j < len(captured):
			total[j] = captured[j]
		}
	}
	out.Rows = append(out.Rows, total)
	return out
}

// sumColumn sums the column's cells over the given rows. Blank or
// unparseable cells contribute zero; summation never fails.
func sumColumn(rows []models.Row, col int) string {
	sum := decimal.Zero
	for _, row := range rows {
		if col >= len(row) {
			continue
		}
		if v, ok := ParseAmount(row[col]); ok {
			sum = sum.Add(v)
		}
	}
	return sum.String()
}

// ParseAmount parses a cell as a numeric amount, tolerating currency symbols,
// thousands separators, and surrounding whitespace.
func ParseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
