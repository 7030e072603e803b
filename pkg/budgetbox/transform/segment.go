package transform

import (
	"fmt"

	"github.com/budgetbox/budgetbox-go/logging"
	"github.com/budgetbox/budgetbox-go/pkg/budgetbox/models"
)

// Header tokens that repeat inside the body of the source table and must not
// be picked as segment names.
var repeatedHeaderTokens = map[string]struct{}{
	"service":  {},
	"strategy": {},
}

// IsHeaderEcho reports whether a label is a repeated header token embedded
// in the table body. Such rows never name a segment and are dropped from
// rendered output.
func IsHeaderEcho(s string) bool {
	_, ok := repeatedHeaderTokens[foldLabel(s)]
	return ok
}

// Segment partitions the table into named sub-tables. A segment closes at
// each row whose label equals "total" (inclusive); rows past the last total
// form a trailing segment with no total row. Every input row lands in
// exactly one segment, in order.
func Segment(t models.Table, labelColumn string) []models.Segment {
	labelIdx := t.ColumnIndex(labelColumn)
	if labelIdx < 0 {
		logging.Logger().Warn("label column not found, using first column",
			"column", labelColumn)
		labelIdx = 0
	}

	var segments []models.Segment
	start := 0
	for i, row := range t.Rows {
		if labelIdx >= len(row) || !IsTotalLabel(row[labelIdx]) {
			continue
		}
		segments = append(segments, newSegment(t, start, i+1, labelIdx, len(segments)))
		start = i + 1
	}
	if start < len(t.Rows) {
		segments = append(segments, newSegment(t, start, len(t.Rows), labelIdx, len(segments)))
	}
	return segments
}

// newSegment builds the segment covering rows [start, end) and derives its
// name from the first label that is neither empty nor a repeated header.
func newSegment(t models.Table, start, end, labelIdx, position int) models.Segment {
	sub := models.Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([]models.Row, 0, end-start),
	}
	for _, row := range t.Rows[start:end] {
		sub.Rows = append(sub.Rows, append(models.Row(nil), row...))
	}

	name := fmt.Sprintf("Table %d", position+1)
	for _, row := range sub.Rows {
		if labelIdx >= len(row) {
			continue
		}
		v := row[labelIdx]
		if foldLabel(v) == "" || IsHeaderEcho(v) || IsFooterLabel(v) {
			continue
		}
		name = v
		break
	}
	return models.Segment{Name: name, Table: sub}
}
