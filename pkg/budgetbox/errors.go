package budgetbox

import (
	"errors"
	"fmt"
)

// ErrNoSegments indicates the source produced no segments at all.
var ErrNoSegments = errors.New("no segments found")

// PipelineError wraps an error with the pipeline stage that produced it.
type PipelineError struct {
	Stage string // "read", "policy", "render"
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}
