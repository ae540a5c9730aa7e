package debris

import (
	"errors"
	"testing"
)

func TestCalculate(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		res, err := Calculate(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TotalWeightLb != 0 || res.TotalTons != 0 || res.DumpsterSize != "10 yard" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("moisture multipliers and category aggregation", func(t *testing.T) {
		res, err := Calculate([]Entry{
			{Category: "drywall", WeightLb: 1000, Moisture: MoistureWet},
			{Category: "drywall", WeightLb: 500, Moisture: MoistureDry},
			{Category: "carpet", WeightLb: 200, Moisture: MoistureSaturated},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Categories) != 2 {
			t.Fatalf("expected 2 categories, got %+v", res.Categories)
		}
		// 1000*1.3 + 500 = 1800, 200*1.5 = 300.
		if res.Categories[0].Category != "drywall" || res.Categories[0].WeightLb != 1800 {
			t.Fatalf("unexpected drywall total: %+v", res.Categories[0])
		}
		if res.Categories[1].Category != "carpet" || res.Categories[1].WeightLb != 300 {
			t.Fatalf("unexpected carpet total: %+v", res.Categories[1])
		}
		if res.TotalWeightLb != 2100 || res.TotalTons != 1.05 {
			t.Fatalf("unexpected totals: %+v", res)
		}
		if res.DumpsterSize != "10 yard" {
			t.Fatalf("dumpster = %q, want 10 yard", res.DumpsterSize)
		}
	})

	t.Run("dumpster size thresholds", func(t *testing.T) {
		cases := []struct {
			weightLb float64
			want     string
		}{
			{3000, "10 yard"},
			{3100, "20 yard"},
			{6000, "20 yard"},
			{6200, "30 yard"},
			{9000, "30 yard"},
			{9200, "40 yard"},
		}
		for _, tc := range cases {
			res, err := Calculate([]Entry{{Category: "mixed", WeightLb: tc.weightLb, Moisture: MoistureDry}})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.DumpsterSize != tc.want {
				t.Fatalf("weight %v: dumpster = %q, want %q", tc.weightLb, res.DumpsterSize, tc.want)
			}
		}
	})

	t.Run("validation", func(t *testing.T) {
		if _, err := Calculate([]Entry{{Category: " ", WeightLb: 10, Moisture: MoistureDry}}); !errors.Is(err, ErrCategoryRequired) {
			t.Fatalf("expected ErrCategoryRequired, got %v", err)
		}
		if _, err := Calculate([]Entry{{Category: "c", WeightLb: 0, Moisture: MoistureDry}}); !errors.Is(err, ErrWeightInvalid) {
			t.Fatalf("expected ErrWeightInvalid, got %v", err)
		}
		if _, err := Calculate([]Entry{{Category: "c", WeightLb: 10, Moisture: "soggy"}}); !errors.Is(err, ErrUnknownMoisture) {
			t.Fatalf("expected ErrUnknownMoisture, got %v", err)
		}
	})
}
