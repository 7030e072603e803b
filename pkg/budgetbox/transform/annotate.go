package transform

import (
	"fmt"
	"regexp"

	"github.com/budgetbox/budgetbox-go/pkg/budgetbox/models"
)

// linkMarkup is the inline hyperlink form the renderer understands. It is
// appended after a separator so the original cell text stays legible.
const linkMarkup = `<font color="blue"><a href="%s">link</a></font>`

var reLink = regexp.MustCompile(`<a href="([^"]*)">`)

// Annotate appends inline hyperlink markup to the cell at (rowIndex, column).
// If the column does not exist or rowIndex is out of range, the table is
// returned unchanged; the calling surface constrains valid targets, so an
// out-of-range request is a guard case, not an error.
func Annotate(t models.Table, column string, rowIndex int, url string) models.Table {
	col := t.ColumnIndex(column)
	if col < 0 || rowIndex < 0 || rowIndex >= len(t.Rows) || url == "" {
		return t
	}
	out := t.Clone()
	row := out.Rows[rowIndex]
	if col >= len(row) {
		return t
	}
	row[col] = row[col] + " – " + fmt.Sprintf(linkMarkup, url)
	return out
}

// LinkTarget extracts the hyperlink URL from an annotated cell, if any.
func LinkTarget(cell string) (string, bool) {
	m := reLink.FindStringSubmatch(cell)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// StripMarkup removes annotation markup from a cell, leaving the original
// text and a trailing "link" indicator for plain-text rendering.
func StripMarkup(cell string) string {
	if !ContainsLink(cell) {
		return cell
	}
	s := reMarkupTag.ReplaceAllString(cell, "")
	return s
}

// ContainsLink reports whether a cell carries annotation markup. The
// reconciler never parses such cells as numbers unless they are explicitly a
// summation field, which annotations never target.
func ContainsLink(cell string) bool {
	return reLink.MatchString(cell)
}

var reMarkupTag = regexp.MustCompile(`</?(?:font|a)[^>]*>`)
