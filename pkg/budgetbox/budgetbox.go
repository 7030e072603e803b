package budgetbox

import (
	"io"

	"github.com/budgetbox/budgetbox-go/logging"
	"github.com/budgetbox/budgetbox-go/pkg/budgetbox/models"
	"github.com/budgetbox/budgetbox-go/pkg/budgetbox/parser"
	"github.com/budgetbox/budgetbox-go/pkg/budgetbox/transform"
)

// Load reads and normalizes a table from a file.
func Load(path string, opts Options) (models.Table, error) {
	t, err := parser.ReadFile(path, opts.EffectiveHeaderRow())
	if err != nil {
		return models.Table{}, &PipelineError{Stage: "read", Err: err}
	}
	return transform.Normalize(t, opts.EffectiveLabelColumn()), nil
}

// LoadReader reads and normalizes a table from a reader; filename selects
// the format by extension.
func LoadReader(r io.Reader, filename string, opts Options) (models.Table, error) {
	t, err := parser.Read(r, filename, opts.EffectiveHeaderRow())
	if err != nil {
		return models.Table{}, &PipelineError{Stage: "read", Err: err}
	}
	return transform.Normalize(t, opts.EffectiveLabelColumn()), nil
}

// Split segments a normalized table, optionally dropping estimated
// conversions rows from each segment's editable view.
func Split(t models.Table, opts Options) ([]models.Segment, error) {
	label := opts.EffectiveLabelColumn()
	segments := transform.Segment(t, label)
	if len(segments) == 0 {
		return nil, ErrNoSegments
	}
	if opts.ShouldStripEstimatedRows() {
		for i := range segments {
			segments[i].Table = transform.StripEstimatedConversionRows(segments[i].Table, label)
		}
	}
	logging.Logger().Debug("table segmented", "segments", len(segments))
	return segments, nil
}

// Reconcile finalizes every segment so each ends in exactly one total row.
// Segments are replaced, not mutated; the caller's edits stay intact.
func Reconcile(segments []models.Segment, opts Options) []models.Segment {
	label := opts.EffectiveLabelColumn()
	policy := opts.EffectivePolicy()
	out := make([]models.Segment, len(segments))
	for i, s := range segments {
		out[i] = models.Segment{
			Name:  s.Name,
			Table: transform.Reconcile(s.Table, label, policy),
		}
	}
	return out
}

// Build runs the whole non-interactive pipeline for a file:
// read, normalize, segment, reconcile.
func Build(path string, opts Options) ([]models.Segment, error) {
	t, err := Load(path, opts)
	if err != nil {
		return nil, err
	}
	segments, err := Split(t, opts)
	if err != nil {
		return nil, err
	}
	return Reconcile(segments, opts), nil
}
