package transform

import (
	"log/slog"
	"reflect"
	"testing"

	"github.com/budgetbox/budgetbox-go/logging"
	"github.com/budgetbox/budgetbox-go/pkg/budgetbox/models"
)

func TestReconcileSummation(t *testing.T) {
	in := models.Table{
		Columns: []string{"Service", "Monthly Amount"},
		Rows: []models.Row{
			{"Paid Search", "10"},
			{"Display", "20"},
			{"Email", "bad"},
			{"SEO", ""},
		},
	}

	got := Reconcile(in, "Service", DefaultPolicy())

	last := got.Rows[len(got.Rows)-1]
	if last[0] != "Total" {
		t.Fatalf("last row label = %q, expected %q", last[0], "Total")
	}
	if last[1] != "30" {
		t.Errorf("Monthly Amount total = %q, expected %q", last[1], "30")
	}
	if len(got.Rows) != 5 {
		t.Errorf("expected 4 data rows + 1 total, got %d rows", len(got.Rows))
	}
}

func TestReconcileCarryForward(t *testing.T) {
	in := models.Table{
		Columns: []string{"Service", "Monthly Amount", "Estimated Impressions"},
		Rows: []models.Row{
			{"Paid Search", "100", ""},
			{"Estimated Impressions", "", "90000"},
			{"Total", "999", "500"},
		},
	}

	got := Reconcile(in, "Service", DefaultPolicy())

	if len(got.Rows) != 2 {
		t.Fatalf("expected 1 data row + total, got %d rows", len(got.Rows))
	}
	total := got.Rows[1]
	if total[1] != "100" {
		t.Errorf("summation field = %q, expected recomputed %q", total[1], "100")
	}
	if total[2] != "500" {
		t.Errorf("carry-forward field = %q, expected %q from footer", total[2], "500")
	}
}

func TestReconcileDropsAllFooterVariants(t *testing.T) {
	in := models.Table{
		Columns: []string{"Service", "Monthly Amount"},
		Rows: []models.Row{
			{"Paid Search", "10"},
			{"Est. Conversions", "1"},
			{"Estimated Conversions", "2"},
			{"Est. Impressions", "3"},
			{"Estimated Impressions", "4"},
			{"Total", "99"},
			{"total ", "98"},
		},
	}

	got := Reconcile(in, "Service", DefaultPolicy())

	if len(got.Rows) != 2 {
		t.Fatalf("expected only the data row and one total, got %d rows", len(got.Rows))
	}
	if got.Rows[1][1] != "10" {
		t.Errorf("total = %q, expected %q", got.Rows[1][1], "10")
	}
}

func TestReconcileIdempotent(t *testing.T) {
	in := models.Table{
		Columns: []string{"Service", "Monthly Amount", "Estimated Impressions"},
		Rows: []models.Row{
			{"Paid Search", "$1,000", ""},
			{"Display", "250.50", ""},
			{"Total", "0", "42000"},
		},
	}

	once := Reconcile(in, "Service", DefaultPolicy())
	twice := Reconcile(once, "Service", DefaultPolicy())
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Reconcile not idempotent:\nonce:  %v\ntwice: %v", once, twice)
	}
	if once.Rows[len(once.Rows)-1][1] != "1250.5" {
		t.Errorf("total = %q, expected %q", once.Rows[len(once.Rows)-1][1], "1250.5")
	}
}

func TestReconcileNoFooterInSource(t *testing.T) {
	in := models.Table{
		Columns: []string{"Service", "Monthly Amount", "Estimated Impressions"},
		Rows: []models.Row{
			{"Paid Search", "10", "5000"},
		},
	}

	got := Reconcile(in, "Service", DefaultPolicy())

	total := got.Rows[len(got.Rows)-1]
	if total[1] != "10" {
		t.Errorf("summation field = %q, expected %q", total[1], "10")
	}
	// No footer to carry from: carry-forward fields stay empty, never summed.
	if total[2] != "" {
		t.Errorf("carry-forward field = %q, expected empty", total[2])
	}
}

func TestReconcileNeverSumsLabelColumns(t *testing.T) {
	p := Policy{Recompute: []string{"Description", "Monthly Amount"}}
	in := models.Table{
		Columns: []string{"Service", "Description", "Monthly Amount"},
		Rows: []models.Row{
			{"Paid Search", "10", "10"},
		},
	}

	got := Reconcile(in, "Service", p)

	total := got.Rows[len(got.Rows)-1]
	if total[1] != "" {
		t.Errorf("Description in total = %q, expected empty (label columns are never summed)", total[1])
	}
	if total[2] != "10" {
		t.Errorf("Monthly Amount = %q, expected %q", total[2], "10")
	}
}

func TestReconcileExplicitCarryForwardList(t *testing.T) {
	p := Policy{
		Recompute:    []string{"Monthly Amount"},
		CarryForward: []string{"Estimated Impressions"},
	}
	in := models.Table{
		Columns: []string{"Service", "Monthly Amount", "Estimated Impressions", "Notes"},
		Rows: []models.Row{
			{"Paid Search", "10", "", ""},
			{"Total", "0", "500", "stale"},
		},
	}

	got := Reconcile(in, "Service", p)

	total := got.Rows[len(got.Rows)-1]
	if total[2] != "500" {
		t.Errorf("listed carry-forward = %q, expected %q", total[2], "500")
	}
	// Notes is in neither list: with an explicit carry-forward list it is
	// rebuilt empty instead of copied.
	if total[3] != "" {
		t.Errorf("unlisted column = %q, expected empty", total[3])
	}
}

func TestReconcileMissingLabelColumnWarns(t *testing.T) {
	handler := logging.NewBufferedLogHandler(nil)
	logging.SetLogger(slog.New(handler))
	defer logging.SetLogger(nil)

	in := models.Table{
		Columns: []string{"Category", "Monthly Amount"},
		Rows: []models.Row{
			{"Paid Search", "10"},
			{"Total", "99"},
		},
	}

	got := Reconcile(in, "Service", DefaultPolicy())

	if !handler.Contains("label column not found") {
		t.Error("expected a user-visible warning for the missing label column")
	}
	// Best-effort substitution: the first column still drives reconciliation.
	last := got.Rows[len(got.Rows)-1]
	if last[0] != "Total" || last[1] != "10" {
		t.Errorf("fallback reconcile produced %v", last)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"10", "10", true},
		{"$1,234.56", "1234.56", true},
		{" 42 ", "42", true},
		{"-7", "-7", true},
		{"", "0", false},
		{"bad", "0", false},
		{"Google Ads – link", "0", false},
	}

	for _, tt := range tests {
		d, ok := ParseAmount(tt.input)
		if ok != tt.ok || d.String() != tt.expected {
			t.Errorf("ParseAmount(%q) = (%s, %v), expected (%s, %v)",
				tt.input, d.String(), ok, tt.expected, tt.ok)
		}
	}
}
