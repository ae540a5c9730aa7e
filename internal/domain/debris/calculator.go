package debris

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrCategoryRequired = errors.New("debris category required")
	ErrWeightInvalid    = errors.New("debris weight must be positive")
	ErrUnknownMoisture  = errors.New("unknown moisture level")
)

// MoistureLevel scales a dry-weight reading for water retained by the
// material. Multipliers match the tables used on restoration jobs.

type MoistureLevel string

const (
	MoistureDry       MoistureLevel = "dry"
	MoistureDamp      MoistureLevel = "damp"
	MoistureWet       MoistureLevel = "wet"
	MoistureSaturated MoistureLevel = "saturated"
)

var moistureMultipliers = map[MoistureLevel]float64{
	MoistureDry:       1.0,
	MoistureDamp:      1.15,
	MoistureWet:       1.3,
	MoistureSaturated: 1.5,
}

// Entry is one debris reading to be sized: a material category, its dry
// weight in pounds, and the observed moisture level.
type Entry struct {
	Category string        `json:"category"`
	WeightLb float64       `json:"weight_lb"`
	Moisture MoistureLevel `json:"moisture"`
}

// CategoryTotal is the adjusted weight aggregated per material category.
type CategoryTotal struct {
	Category string  `json:"category"`
	WeightLb float64 `json:"weight_lb"`
}

// Result is the full calculation output, including the recommended
// dumpster size for the adjusted total tonnage.
type Result struct {
	Categories    []CategoryTotal `json:"categories"`
	TotalWeightLb float64         `json:"total_weight_lb"`
	TotalTons     float64         `json:"total_tons"`
	DumpsterSize  string          `json:"dumpster_size"`
}

// Calculate runs the formula chain: weight × moisture multiplier, summed
// per category, then a dumpster-size lookup on the adjusted total. Entries
// are validated up front; one bad entry rejects the whole input.
func Calculate(entries []Entry) (Result, error) {
	totals := map[string]float64{}
	var order []string
	for _, e := range entries {
		category := strings.TrimSpace(e.Category)
		if category == "" {
			return Result{}, ErrCategoryRequired
		}
		if e.WeightLb <= 0 {
			return Result{}, ErrWeightInvalid
		}
		mult, ok := moistureMultipliers[e.Moisture]
		if !ok {
			return Result{}, ErrUnknownMoisture
		}
		if _, seen := totals[category]; !seen {
			order = append(order, category)
		}
		totals[category] += e.WeightLb * mult
	}

	res := Result{}
	for _, category := range order {
		w := round2(totals[category])
		res.Categories = append(res.Categories, CategoryTotal{Category: category, WeightLb: w})
		res.TotalWeightLb += w
	}
	res.TotalWeightLb = round2(res.TotalWeightLb)
	res.TotalTons = round2(res.TotalWeightLb / 2000)
	res.DumpsterSize = dumpsterSizeForTons(res.TotalTons)
	return res, nil
}

// dumpsterSizeForTons maps adjusted tonnage to the smallest standard
// roll-off container that carries it.
func dumpsterSizeForTons(tons float64) string {
	switch {
	case tons <= 1.5:
		return "10 yard"
	case tons <= 3:
		return "20 yard"
	case tons <= 4.5:
		return "30 yard"
	default:
		return "40 yard"
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
