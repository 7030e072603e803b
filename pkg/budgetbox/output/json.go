package output

import (
	"encoding/json"

	"github.com/budgetbox/budgetbox-go/pkg/budgetbox/models"
)

// ToJSON serializes reconciled segments for downstream consumers.
func ToJSON(segments []models.Segment, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(segments, "", "  ")
	}
	return json.Marshal(segments)
}
