package entities

import (
	"encoding/json"
	"time"
)

// DocumentStatus represents the lifecycle of an estimate document.
//
// Domain notes:
//   - The billing service is the source of truth for estimate state.
//   - Drafts are edited freely; sent/approved/declined reflect the
//     customer-facing workflow.

type DocumentStatus string

const (
	DocumentStatusDraft    DocumentStatus = "draft"
	DocumentStatusSent     DocumentStatus = "sent"
	DocumentStatusApproved DocumentStatus = "approved"
	DocumentStatusDeclined DocumentStatus = "declined"
)

// TaxMethod selects how the estimate's tax amount is produced.
//
//   - percentage: tax_rate applied over the taxable portion of the
//     subtotal plus the taxable share of O&P.
//   - specific: a caller-supplied flat amount, no computation.

type TaxMethod string

const (
	TaxMethodPercentage TaxMethod = "percentage"
	TaxMethodSpecific   TaxMethod = "specific"
)

// ItemID is the identity of a line item. The zero value means the item is
// pending: it has not been confirmed by persistence and carries no durable
// id. Durable ids are minted at save time.
type ItemID struct {
	value string
}

func NewItemID(v string) ItemID {
	return ItemID{value: v}
}

// Pending reports whether the item has no durable identity yet.
func (id ItemID) Pending() bool {
	return id.value == ""
}

func (id ItemID) String() string {
	return id.value
}

func (id ItemID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.value)
}

func (id *ItemID) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	id.value = v
	return nil
}

// LineItem is a single priced row inside a section.
//
// Total is always derived from Quantity and UnitPrice; a stale incoming
// Total is never trusted. PrimaryGroup carries the owning section title in
// the flat persistence shape and is recomputed from containment on every
// flatten.
type LineItem struct {
	ID           ItemID  `json:"id"`
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

// Section is a named, ordered group of line items within an estimate.
type Section struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Items        []LineItem `json:"items"`
	ShowSubtotal bool       `json:"showSubtotal"`
	Subtotal     float64    `json:"subtotal"`
	DisplayOrder int        `json:"display_order"`
}

// EstimateDocument is the persisted estimate snapshot.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Sections are authoritative for containment; Items is the flattened list
// kept value-consistent with the sections at save time (the same shape the
// preview/PDF collaborator consumes).
type EstimateDocument struct {
	ID                string         `json:"id"`
	Title             string         `json:"title"`
	Status            DocumentStatus `json:"status"`
	Sections          []Section      `json:"sections"`
	Items             []LineItem     `json:"items"`
	OPPercent         float64        `json:"op_percent"`
	OPAmount          float64        `json:"op_amount"`
	Subtotal          float64        `json:"subtotal"`
	TaxMethod         TaxMethod      `json:"tax_method"`
	TaxRate           float64        `json:"tax_rate"`
	SpecificTaxAmount float64        `json:"specific_tax_amount"`
	TaxAmount         float64        `json:"tax_amount"`
	TotalAmount       float64        `json:"total_amount"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}
