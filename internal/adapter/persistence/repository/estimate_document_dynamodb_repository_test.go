package repository

import (
	"testing"
	"time"

	"restoration_billing/internal/domain/entities"
)

func TestDocumentItemConversion(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 123456789, time.UTC)
	updated := created.Add(time.Hour)
	doc := entities.EstimateDocument{
		ID:     "est-1",
		Title:  "Water Loss",
		Status: entities.DocumentStatusApproved,
		Sections: []entities.Section{
			{
				ID:           "sec-1",
				Title:        "Kitchen",
				ShowSubtotal: true,
				Subtotal:     25,
				DisplayOrder: 0,
				Items: []entities.LineItem{
					{ID: entities.NewItemID("item-1"), Name: "Drywall", Description: "5/8 in", Quantity: 10, Unit: "SF", UnitPrice: 2.5, Total: 25, Taxable: true, PrimaryGroup: "Kitchen"},
				},
			},
		},
		Items: []entities.LineItem{
			{ID: entities.NewItemID("item-1"), Name: "Drywall", Description: "5/8 in", Quantity: 10, Unit: "SF", UnitPrice: 2.5, Total: 25, Taxable: true, PrimaryGroup: "Kitchen"},
		},
		OPPercent:         10,
		OPAmount:          2.5,
		Subtotal:          25,
		TaxMethod:         entities.TaxMethodPercentage,
		TaxRate:           10,
		SpecificTaxAmount: 0,
		TaxAmount:         2.75,
		TotalAmount:       30.25,
		CreatedAt:         created,
		UpdatedAt:         updated,
	}

	got := fromDocumentItem(toDocumentItem(doc))

	if got.ID != doc.ID || got.Title != doc.Title || got.Status != doc.Status {
		t.Fatalf("header fields changed: %+v", got)
	}
	if got.TaxMethod != doc.TaxMethod || got.TaxRate != doc.TaxRate || got.TaxAmount != doc.TaxAmount {
		t.Fatalf("tax fields changed: %+v", got)
	}
	if got.Subtotal != doc.Subtotal || got.OPAmount != doc.OPAmount || got.TotalAmount != doc.TotalAmount {
		t.Fatalf("totals changed: %+v", got)
	}
	if !got.CreatedAt.Equal(created) || !got.UpdatedAt.Equal(updated) {
		t.Fatalf("timestamps lost precision: created %v, updated %v", got.CreatedAt, got.UpdatedAt)
	}
	if len(got.Sections) != 1 || len(got.Sections[0].Items) != 1 {
		t.Fatalf("section structure changed: %+v", got.Sections)
	}
	sec := got.Sections[0]
	if sec.ID != "sec-1" || sec.Title != "Kitchen" || !sec.ShowSubtotal || sec.Subtotal != 25 {
		t.Fatalf("section fields changed: %+v", sec)
	}
	item := sec.Items[0]
	if item.ID.String() != "item-1" || item.Description != "5/8 in" || item.Total != 25 || !item.Taxable {
		t.Fatalf("item fields changed: %+v", item)
	}
	if len(got.Items) != 1 || got.Items[0].PrimaryGroup != "Kitchen" {
		t.Fatalf("flat items changed: %+v", got.Items)
	}
}
