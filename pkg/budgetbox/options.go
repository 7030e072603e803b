// Package budgetbox turns a tabular budget/proposal export into named,
// reconciled sub-tables ready for rendering.
package budgetbox

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/budgetbox/budgetbox-go/pkg/budgetbox/transform"
)

// DefaultHeaderRow is the 1-based row the upstream template puts column
// names on. The first physical row holds a decorative banner.
const DefaultHeaderRow = 2

// DefaultLabelColumn is the canonical name of the row-category column.
const DefaultLabelColumn = "Service"

// Options configures the pipeline.
type Options struct {
	// HeaderRow is the 1-based row holding column names (1 or 2).
	// Zero means DefaultHeaderRow.
	HeaderRow int
	// LabelColumn is the canonical name the first column is renamed to.
	// Empty means DefaultLabelColumn.
	LabelColumn string
	// Policy selects recompute-vs-carry-forward behavior per column.
	// Nil means DefaultPolicy.
	Policy *transform.Policy
	// StripEstimatedRows controls whether estimated-conversions rows are
	// dropped before segments are presented for editing. If nil, defaults
	// to true.
	StripEstimatedRows *bool
}

// DefaultOptions returns the options matching the upstream template.
func DefaultOptions() Options {
	return Options{}
}

// EffectiveHeaderRow returns the configured header row, applying the default.
func (o Options) EffectiveHeaderRow() int {
	if o.HeaderRow < 1 {
		return DefaultHeaderRow
	}
	return o.HeaderRow
}

// EffectiveLabelColumn returns the configured label column, applying the default.
func (o Options) EffectiveLabelColumn() string {
	if o.LabelColumn == "" {
		return DefaultLabelColumn
	}
	return o.LabelColumn
}

// EffectivePolicy returns the configured reconcile policy, applying the default.
func (o Options) EffectivePolicy() transform.Policy {
	if o.Policy != nil {
		return *o.Policy
	}
	return transform.DefaultPolicy()
}

// ShouldStripEstimatedRows returns whether estimated-conversions rows are
// removed from the editable view.
func (o Options) ShouldStripEstimatedRows() bool {
	if o.StripEstimatedRows != nil {
		return *o.StripEstimatedRows
	}
	return true
}

// LoadPolicy reads a reconcile policy from a YAML file with "recompute" and
// "carry_forward" lists.
func LoadPolicy(path string) (transform.Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return transform.Policy{}, err
	}
	var p transform.Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return transform.Policy{}, &PipelineError{Stage: "policy", Err: err}
	}
	return p, nil
}
