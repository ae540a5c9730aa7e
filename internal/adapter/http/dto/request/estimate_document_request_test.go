package request

import (
	"testing"

	"restoration_billing/internal/domain/entities"
)

func boolPtr(v bool) *bool { return &v }

func TestLineItemRequest_ToEntity(t *testing.T) {
	t.Run("taxable defaults to true", func(t *testing.T) {
		it := LineItemRequest{Name: "Drywall", Quantity: 10, Unit: "SF", UnitPrice: 2.5}.ToEntity()
		if !it.Taxable {
			t.Fatal("expected taxable to default to true")
		}
	})

	t.Run("explicit taxable false is kept", func(t *testing.T) {
		it := LineItemRequest{Name: "Permit", Quantity: 1, Unit: "EA", UnitPrice: 50, Taxable: boolPtr(false)}.ToEntity()
		if it.Taxable {
			t.Fatal("expected taxable false")
		}
	})

	t.Run("id is trimmed", func(t *testing.T) {
		it := LineItemRequest{ID: "  item-1  ", Name: "X", Quantity: 1, Unit: "EA", UnitPrice: 1}.ToEntity()
		if it.ID.String() != "item-1" {
			t.Fatalf("expected trimmed id, got %q", it.ID.String())
		}
	})
}

func TestEstimateDocumentRequest_ResolveSections(t *testing.T) {
	req := EstimateDocumentRequest{
		Title: "T",
		Sections: []SectionRequest{
			{Title: "Kitchen", Items: []LineItemRequest{{Name: "Drywall", Quantity: 10, Unit: "SF", UnitPrice: 2.5}}},
			{Title: "Bath", ShowSubtotal: boolPtr(false)},
		},
	}

	sections := req.ResolveSections()
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if !sections[0].ShowSubtotal {
		t.Fatal("showSubtotal should default to true")
	}
	if sections[1].ShowSubtotal {
		t.Fatal("explicit showSubtotal false should be kept")
	}
	if len(sections[0].Items) != 1 || sections[0].Items[0].Name != "Drywall" {
		t.Fatalf("unexpected items: %+v", sections[0].Items)
	}
}

func TestEstimateDocumentRequest_ResolveTaxMethod(t *testing.T) {
	cases := []struct {
		name   string
		method string
		want   entities.TaxMethod
	}{
		{name: "empty defaults to percentage", method: "", want: entities.TaxMethodPercentage},
		{name: "blank defaults to percentage", method: "   ", want: entities.TaxMethodPercentage},
		{name: "specific passes through", method: "specific", want: entities.TaxMethodSpecific},
		{name: "unknown passes through for domain rejection", method: "vat", want: entities.TaxMethod("vat")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EstimateDocumentRequest{Title: "T", TaxMethod: tc.method}.ResolveTaxMethod()
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
