package budgetbox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/budgetbox/budgetbox-go/pkg/budgetbox/transform"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestBuildEndToEnd(t *testing.T) {
	// Banner row, header row, then three logical tables: two closed by
	// Total sentinels and one trailing.
	src := "Client Budget Export,,\n" +
		"Strategy,Description,Monthly Amount\n" +
		"AB: Paid Search/Notes (Markup),search ads,100\n" +
		"Display,banners,200\n" +
		"Total,,999\n" +
		"Paid Social,social ads,50\n" +
		"Total,,999\n" +
		"Email,newsletters,25\n"

	path := writeFixture(t, "budget.csv", src)
	segments, err := Build(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segments))
	}
	wantNames := []string{"Paid Search", "Paid Social", "Email"}
	wantTotals := []string{"300", "50", "25"}
	for i, s := range segments {
		if s.Name != wantNames[i] {
			t.Errorf("segment %d name = %q, expected %q", i, s.Name, wantNames[i])
		}
		rows := s.Table.Rows
		last := rows[len(rows)-1]
		if last[0] != "Total" {
			t.Errorf("segment %d does not end in a total row: %v", i, last)
		}
		amountIdx := s.Table.ColumnIndex("Monthly Amount")
		if amountIdx < 0 {
			t.Fatalf("segment %d missing Monthly Amount column", i)
		}
		if last[amountIdx] != wantTotals[i] {
			t.Errorf("segment %d total = %q, expected %q (sum of its own rows)",
				i, last[amountIdx], wantTotals[i])
		}
		// Exactly one total row per segment.
		totals := 0
		for _, r := range rows {
			if transform.IsTotalLabel(r[0]) {
				totals++
			}
		}
		if totals != 1 {
			t.Errorf("segment %d has %d total rows", i, totals)
		}
	}
}

func TestLoadPolicy(t *testing.T) {
	path := writeFixture(t, "policy.yaml",
		"recompute:\n  - Monthly Amount\ncarry_forward:\n  - Estimated Impressions\n")

	p, err := LoadPolicy(path)
	if err != nil {
		t.Fatalf("LoadPolicy failed: %v", err)
	}
	if len(p.Recompute) != 1 || p.Recompute[0] != "Monthly Amount" {
		t.Errorf("recompute = %v", p.Recompute)
	}
	if len(p.CarryForward) != 1 || p.CarryForward[0] != "Estimated Impressions" {
		t.Errorf("carry_forward = %v", p.CarryForward)
	}
}

func TestLoadPolicyBadYAML(t *testing.T) {
	path := writeFixture(t, "policy.yaml", "recompute: {not a list\n")
	if _, err := LoadPolicy(path); err == nil {
		t.Error("expected error for malformed policy")
	}
}

func TestOptionsDefaults(t *testing.T) {
	o := DefaultOptions()
	if o.EffectiveHeaderRow() != 2 {
		t.Errorf("header row = %d, expected 2", o.EffectiveHeaderRow())
	}
	if o.EffectiveLabelColumn() != "Service" {
		t.Errorf("label column = %q", o.EffectiveLabelColumn())
	}
	if !o.ShouldStripEstimatedRows() {
		t.Error("estimated rows should be stripped by default")
	}
	p := o.EffectivePolicy()
	if !p.IsSummation("Monthly Amount") || !p.IsSummation("Item Total") {
		t.Errorf("default policy recompute = %v", p.Recompute)
	}
	if p.IsSummation("Estimated Impressions") {
		t.Error("estimate columns must not be summed by default")
	}

	strip := false
	o.StripEstimatedRows = &strip
	o.HeaderRow = 1
	o.LabelColumn = "Strategy"
	if o.ShouldStripEstimatedRows() || o.EffectiveHeaderRow() != 1 || o.EffectiveLabelColumn() != "Strategy" {
		t.Error("overrides not applied")
	}
}
