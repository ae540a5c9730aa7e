package request

import "restoration_billing/internal/domain/debris"

type DebrisEntryRequest struct {
	Category string  `json:"category" binding:"required"`
	WeightLb float64 `json:"weight_lb" binding:"required"`
	Moisture string  `json:"moisture" binding:"required"`
}

// DebrisCalculationRequest carries the readings for one debris-weight
// calculation. Stateless; nothing is persisted.
type DebrisCalculationRequest struct {
	Entries []DebrisEntryRequest `json:"entries" binding:"required"`
}

func (r DebrisCalculationRequest) ToEntries() []debris.Entry {
	entries := make([]debris.Entry, 0, len(r.Entries))
	for _, e := range r.Entries {
		entries = append(entries, debris.Entry{
			Category: e.Category,
			WeightLb: e.WeightLb,
			Moisture: debris.MoistureLevel(e.Moisture),
		})
	}
	return entries
}
