package request

import (
	"strings"

	"restoration_billing/internal/domain/entities"
)

type LineItemRequest struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Note         string  `json:"note"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	UnitPrice    float64 `json:"unit_price"`
	Taxable      *bool   `json:"taxable"`
	PrimaryGroup string  `json:"primary_group"`
}

type SectionRequest struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Items        []LineItemRequest `json:"items"`
	ShowSubtotal *bool             `json:"showSubtotal"`
}

// EstimateDocumentRequest is the payload for creating or replacing an
// estimate. Callers send either a nested section tree or a flat item list;
// derived figures in the payload are ignored and recomputed server-side.
type EstimateDocumentRequest struct {
	Title             string            `json:"title" binding:"required"`
	Sections          []SectionRequest  `json:"sections"`
	Items             []LineItemRequest `json:"items"`
	OPPercent         float64           `json:"op_percent"`
	TaxMethod         string            `json:"tax_method"`
	TaxRate           float64           `json:"tax_rate"`
	SpecificTaxAmount float64           `json:"specific_tax_amount"`
}

func (r LineItemRequest) ToEntity() entities.LineItem {
	// Taxable defaults to true when omitted.
	taxable := true
	if r.Taxable != nil {
		taxable = *r.Taxable
	}
	return entities.LineItem{
		ID:           entities.NewItemID(strings.TrimSpace(r.ID)),
		Name:         r.Name,
		Description:  r.Description,
		Note:         r.Note,
		Quantity:     r.Quantity,
		Unit:         r.Unit,
		UnitPrice:    r.UnitPrice,
		Taxable:      taxable,
		PrimaryGroup: r.PrimaryGroup,
	}
}

func (r EstimateDocumentRequest) ResolveSections() []entities.Section {
	sections := make([]entities.Section, 0, len(r.Sections))
	for _, s := range r.Sections {
		// showSubtotal defaults to true when omitted.
		show := true
		if s.ShowSubtotal != nil {
			show = *s.ShowSubtotal
		}
		sec := entities.Section{ID: strings.TrimSpace(s.ID), Title: s.Title, ShowSubtotal: show}
		for _, it := range s.Items {
			sec.Items = append(sec.Items, it.ToEntity())
		}
		sections = append(sections, sec)
	}
	return sections
}

func (r EstimateDocumentRequest) ResolveItems() []entities.LineItem {
	items := make([]entities.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, it.ToEntity())
	}
	return items
}

// ResolveTaxMethod defaults to percentage when the field is omitted; an
// unknown value is passed through for the domain layer to reject.
func (r EstimateDocumentRequest) ResolveTaxMethod() entities.TaxMethod {
	m := strings.TrimSpace(r.TaxMethod)
	if m == "" {
		return entities.TaxMethodPercentage
	}
	return entities.TaxMethod(m)
}
