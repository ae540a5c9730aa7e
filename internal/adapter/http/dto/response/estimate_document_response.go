package response

import (
	"time"

	"restoration_billing/internal/domain/entities"
)

type LineItemResponse struct {
	ID           string  `json:"id,omitempty"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Note         string  `json:"note,omitempty"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	UnitPrice    float64 `json:"unit_price"`
	Total        float64 `json:"total"`
	Taxable      bool    `json:"taxable"`
	PrimaryGroup string  `json:"primary_group"`
}

type SectionResponse struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Items        []LineItemResponse `json:"items"`
	ShowSubtotal bool               `json:"showSubtotal"`
	Subtotal     float64            `json:"subtotal"`
	DisplayOrder int                `json:"display_order"`
}

type EstimateDocumentResponse struct {
	ID                string             `json:"id"`
	Title             string             `json:"title"`
	Status            string             `json:"status"`
	Sections          []SectionResponse  `json:"sections"`
	Items             []LineItemResponse `json:"items"`
	OPPercent         float64            `json:"op_percent"`
	OPAmount          float64            `json:"op_amount"`
	Subtotal          float64            `json:"subtotal"`
	TaxMethod         string             `json:"tax_method"`
	TaxRate           float64            `json:"tax_rate"`
	SpecificTaxAmount float64            `json:"specific_tax_amount"`
	TaxAmount         float64            `json:"tax_amount"`
	TotalAmount       float64            `json:"total_amount"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

func FromEstimateDocument(doc entities.EstimateDocument) EstimateDocumentResponse {
	res := EstimateDocumentResponse{
		ID:                doc.ID,
		Title:             doc.Title,
		Status:            string(doc.Status),
		Sections:          make([]SectionResponse, 0, len(doc.Sections)),
		Items:             make([]LineItemResponse, 0, len(doc.Items)),
		OPPercent:         doc.OPPercent,
		OPAmount:          doc.OPAmount,
		Subtotal:          doc.Subtotal,
		TaxMethod:         string(doc.TaxMethod),
		TaxRate:           doc.TaxRate,
		SpecificTaxAmount: doc.SpecificTaxAmount,
		TaxAmount:         doc.TaxAmount,
		TotalAmount:       doc.TotalAmount,
		CreatedAt:         doc.CreatedAt,
		UpdatedAt:         doc.UpdatedAt,
	}
	for _, s := range doc.Sections {
		res.Sections = append(res.Sections, fromSection(s))
	}
	for _, it := range doc.Items {
		res.Items = append(res.Items, fromLineItem(it))
	}
	return res
}

func fromSection(s entities.Section) SectionResponse {
	sec := SectionResponse{
		ID:           s.ID,
		Title:        s.Title,
		Items:        make([]LineItemResponse, 0, len(s.Items)),
		ShowSubtotal: s.ShowSubtotal,
		Subtotal:     s.Subtotal,
		DisplayOrder: s.DisplayOrder,
	}
	for _, it := range s.Items {
		sec.Items = append(sec.Items, fromLineItem(it))
	}
	return sec
}

func fromLineItem(it entities.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:           it.ID.String(),
		Name:         it.Name,
		Description:  it.Description,
		Note:         it.Note,
		Quantity:     it.Quantity,
		Unit:         it.Unit,
		UnitPrice:    it.UnitPrice,
		Total:        it.Total,
		Taxable:      it.Taxable,
		PrimaryGroup: it.PrimaryGroup,
	}
}
