package transform

import "github.com/budgetbox/budgetbox-go/pkg/budgetbox/models"

// RemoveColumn returns a copy of the table without the named column. If the
// column does not exist the table is returned unchanged.
func RemoveColumn(t models.Table, column string) models.Table {
	col := t.ColumnIndex(column)
	if col < 0 {
		return t
	}
	out := models.Table{
		Columns: make([]string, 0, len(t.Columns)-1),
		Rows:    make([]models.Row, 0, len(t.Rows)),
	}
	out.Columns = append(out.Columns, t.Columns[:col]...)
	out.Columns = append(out.Columns, t.Columns[col+1:]...)
	for _, row := range t.Rows {
		nr := make(models.Row, 0, len(out.Columns))
		for j, v := range row {
			if j == col {
				continue
			}
			nr = append(nr, v)
		}
		out.Rows = append(out.Rows, nr)
	}
	return out
}

// RemoveRow returns a copy of the table without the row at index. Out of
// range indices leave the table unchanged.
func RemoveRow(t models.Table, index int) models.Table {
	if index < 0 || index >= len(t.Rows) {
		return t
	}
	out := models.Table{Columns: append([]string(nil), t.Columns...)}
	for i, row := range t.Rows {
		if i == index {
			continue
		}
		out.Rows = append(out.Rows, append(models.Row(nil), row...))
	}
	return out
}

// StripEstimatedConversionRows returns a copy of the table without estimated
// conversions footer rows. The interactive surface drops these before
// presenting a segment for editing.
func StripEstimatedConversionRows(t models.Table, labelColumn string) models.Table {
	labelIdx := t.ColumnIndex(labelColumn)
	if labelIdx < 0 {
		labelIdx = 0
	}
	out := models.Table{Columns: append([]string(nil), t.Columns...)}
	for _, row := range t.Rows {
		if labelIdx < len(row) && IsEstimatedConversionsLabel(row[labelIdx]) {
			continue
		}
		out.Rows = append(out.Rows, append(models.Row(nil), row...))
	}
	return out
}
