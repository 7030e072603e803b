// Package output renders finalized segments: formatting rules, JSON export,
// and the landscape PDF document.
package output

import (
	"strings"
	"time"

	"github.com/budgetbox/budgetbox-go/pkg/budgetbox/transform"
)

// dateLayouts are tried in order when coercing a date-like cell. Sources
// vary between ISO exports and US short forms.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
	"01-02-06",
	"1/2/06",
	"2-Jan-06",
	"Jan 2, 2006",
	"January 2, 2006",
	"2006/01/02",
}

// IsDateColumn reports whether a column should be rendered as a date.
func IsDateColumn(name string) bool {
	return strings.Contains(strings.ToLower(name), "date")
}

// FormatDate coerces a date-like cell to MM/DD/YYYY. Unparseable values
// render blank rather than failing the document.
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("01/02/2006")
		}
	}
	return ""
}

// FormatCurrency renders a summation cell as a whole-dollar amount with
// thousands separators. Blank or unparseable values render as $0.
func FormatCurrency(s string) string {
	d, ok := transform.ParseAmount(s)
	if !ok {
		return "$0"
	}
	v := d.Round(0).String()
	neg := strings.HasPrefix(v, "-")
	v = strings.TrimPrefix(v, "-")
	v = groupThousands(v)
	if neg {
		return "-$" + v
	}
	return "$" + v
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	rem := n % 3
	if rem > 0 {
		b.WriteString(digits[:rem])
	}
	for i := rem; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
