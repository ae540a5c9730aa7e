package response

import "restoration_billing/internal/domain/debris"

type DebrisCategoryResponse struct {
	Category string  `json:"category"`
	WeightLb float64 `json:"weight_lb"`
}

type DebrisCalculationResponse struct {
	Categories    []DebrisCategoryResponse `json:"categories"`
	TotalWeightLb float64                  `json:"total_weight_lb"`
	TotalTons     float64                  `json:"total_tons"`
	DumpsterSize  string                   `json:"dumpster_size"`
}

func FromDebrisResult(res debris.Result) DebrisCalculationResponse {
	out := DebrisCalculationResponse{
		Categories:    make([]DebrisCategoryResponse, 0, len(res.Categories)),
		TotalWeightLb: res.TotalWeightLb,
		TotalTons:     res.TotalTons,
		DumpsterSize:  res.DumpsterSize,
	}
	for _, c := range res.Categories {
		out.Categories = append(out.Categories, DebrisCategoryResponse{Category: c.Category, WeightLb: c.WeightLb})
	}
	return out
}
