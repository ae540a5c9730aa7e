package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"restoration_billing/internal/domain/entities"
	"restoration_billing/internal/domain/estimate"
	"restoration_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound     = errors.New("estimate not found")
	ErrInvalidEstimateID    = errors.New("invalid estimate id")
	ErrInvalidEstimateTitle = errors.New("invalid estimate title")
)

// EstimateContent is the caller-supplied content of an estimate: either a
// nested section tree or a flat item list (grouped by primary_group when
// no sections are given), plus the O&P/tax configuration.
type EstimateContent struct {
	Title             string
	Sections          []entities.Section
	Items             []entities.LineItem
	OPPercent         float64
	TaxMethod         entities.TaxMethod
	TaxRate           float64
	SpecificTaxAmount float64
}

// IEstimateDocumentUseCase exposes the estimate document operations.
//
// Create and ReplaceContent always rebuild the aggregation engine from the
// incoming content and recompute every derived figure server-side; a
// client-supplied total is never trusted.

type IEstimateDocumentUseCase interface {
	Create(ctx context.Context, content EstimateContent) (entities.EstimateDocument, error)
	GetByID(ctx context.Context, id string) (entities.EstimateDocument, error)
	ReplaceContent(ctx context.Context, id string, content EstimateContent) (entities.EstimateDocument, error)
	SendByID(ctx context.Context, id string) (entities.EstimateDocument, error)
	ApproveByID(ctx context.Context, id string) (entities.EstimateDocument, error)
	DeclineByID(ctx context.Context, id string) (entities.EstimateDocument, error)
	DeleteByID(ctx context.Context, id string) error
}

type EstimateDocumentUseCase struct {
	repo interfaces.IEstimateDocumentRepository
}

var _ IEstimateDocumentUseCase = (*EstimateDocumentUseCase)(nil)

func NewEstimateDocumentUseCase(repo interfaces.IEstimateDocumentRepository) *EstimateDocumentUseCase {
	return &EstimateDocumentUseCase{repo: repo}
}

func (u *EstimateDocumentUseCase) Create(ctx context.Context, content EstimateContent) (entities.EstimateDocument, error) {
	title := strings.TrimSpace(content.Title)
	if title == "" {
		return entities.EstimateDocument{}, ErrInvalidEstimateTitle
	}

	agg, err := buildAggregate(content)
	if err != nil {
		return entities.EstimateDocument{}, err
	}

	now := time.Now().UTC()
	doc := snapshotDocument(agg)
	doc.ID = uuid.NewString()
	doc.Title = title
	doc.Status = entities.DocumentStatusDraft
	doc.CreatedAt = now
	doc.UpdatedAt = now
	return u.repo.Create(ctx, doc)
}

func (u *EstimateDocumentUseCase) GetByID(ctx context.Context, id string) (entities.EstimateDocument, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EstimateDocument{}, ErrInvalidEstimateID
	}

	doc, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.EstimateDocument{}, err
	}
	if doc.ID == "" {
		return entities.EstimateDocument{}, ErrEstimateNotFound
	}
	return rehydrateDocument(doc), nil
}

// ReplaceContent swaps the document's sections/items/configuration for the
// given content and recomputes totals. Identity, status, and creation time
// survive the replace.
func (u *EstimateDocumentUseCase) ReplaceContent(ctx context.Context, id string, content EstimateContent) (entities.EstimateDocument, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EstimateDocument{}, ErrInvalidEstimateID
	}
	title := strings.TrimSpace(content.Title)
	if title == "" {
		return entities.EstimateDocument{}, ErrInvalidEstimateTitle
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.EstimateDocument{}, err
	}
	if existing.ID == "" {
		return entities.EstimateDocument{}, ErrEstimateNotFound
	}

	agg, err := buildAggregate(content)
	if err != nil {
		return entities.EstimateDocument{}, err
	}

	doc := snapshotDocument(agg)
	doc.ID = existing.ID
	doc.Title = title
	doc.Status = existing.Status
	doc.CreatedAt = existing.CreatedAt
	doc.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Replace(ctx, doc)
	if err != nil {
		return entities.EstimateDocument{}, err
	}
	if updated.ID == "" {
		return entities.EstimateDocument{}, ErrEstimateNotFound
	}
	return updated, nil
}

func (u *EstimateDocumentUseCase) SendByID(ctx context.Context, id string) (entities.EstimateDocument, error) {
	return u.updateStatusByID(ctx, id, entities.DocumentStatusSent)
}

func (u *EstimateDocumentUseCase) ApproveByID(ctx context.Context, id string) (entities.EstimateDocument, error) {
	return u.updateStatusByID(ctx, id, entities.DocumentStatusApproved)
}

func (u *EstimateDocumentUseCase) DeclineByID(ctx context.Context, id string) (entities.EstimateDocument, error) {
	return u.updateStatusByID(ctx, id, entities.DocumentStatusDeclined)
}

func (u *EstimateDocumentUseCase) updateStatusByID(ctx context.Context, id string, status entities.DocumentStatus) (entities.EstimateDocument, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EstimateDocument{}, ErrInvalidEstimateID
	}

	log.Printf("[estimate][usecase] status update estimate_id=%s status=%s", id, status)
	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		log.Printf("[estimate][usecase] status update failed estimate_id=%s err=%v", id, err)
		return entities.EstimateDocument{}, err
	}
	if updated.ID == "" {
		log.Printf("[estimate][usecase] estimate not found estimate_id=%s", id)
		return entities.EstimateDocument{}, ErrEstimateNotFound
	}
	return updated, nil
}

func (u *EstimateDocumentUseCase) DeleteByID(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEstimateID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrEstimateNotFound
	}
	return u.repo.DeleteByID(ctx, id)
}

// buildAggregate feeds content through the aggregation engine so every
// structural and field-level rule applies. A structured payload goes
// through AddSection/AddItems (validating, atomic per section batch); a
// flat payload goes through the grouping load, which never fails.
func buildAggregate(content EstimateContent) (*estimate.Aggregate, error) {
	agg := estimate.New()
	if len(content.Sections) > 0 {
		for i, s := range content.Sections {
			if err := agg.AddSection(s.Title); err != nil {
				return nil, err
			}
			if !s.ShowSubtotal {
				if err := agg.SetShowSubtotal(i, false); err != nil {
					return nil, err
				}
			}
			if len(s.Items) > 0 {
				if err := agg.AddItems(i, s.Items); err != nil {
					return nil, err
				}
			}
		}
	} else {
		agg.LoadFromFlatItems(content.Items)
	}

	if content.TaxMethod != "" {
		if err := agg.SetTaxMethod(content.TaxMethod); err != nil {
			return nil, err
		}
	}
	agg.SetOPPercent(content.OPPercent)
	agg.SetTaxRate(content.TaxRate)
	agg.SetSpecificTaxAmount(content.SpecificTaxAmount)
	return agg, nil
}

// rehydrateDocument replays a stored snapshot's sections through the
// aggregation engine, so reads always return engine-derived totals and a
// flat list in sync with containment, even for snapshots written before a
// formula change.
func rehydrateDocument(doc entities.EstimateDocument) entities.EstimateDocument {
	agg := estimate.New()
	agg.LoadFromSections(doc.Sections)
	if doc.TaxMethod != "" {
		if err := agg.SetTaxMethod(doc.TaxMethod); err != nil {
			log.Printf("[estimate][usecase] stored tax method invalid estimate_id=%s method=%s", doc.ID, doc.TaxMethod)
		}
	}
	agg.SetOPPercent(doc.OPPercent)
	agg.SetTaxRate(doc.TaxRate)
	agg.SetSpecificTaxAmount(doc.SpecificTaxAmount)

	out := snapshotDocument(agg)
	out.ID = doc.ID
	out.Title = doc.Title
	out.Status = doc.Status
	out.CreatedAt = doc.CreatedAt
	out.UpdatedAt = doc.UpdatedAt
	return out
}

// snapshotDocument produces the persistence shape: pending items get their
// placeholder ids minted here (save time), the flat list is rebuilt from
// the id-stamped sections, and all derived figures come from the engine.
func snapshotDocument(agg *estimate.Aggregate) entities.EstimateDocument {
	sections := agg.Sections()
	var items []entities.LineItem
	for si := range sections {
		for ii := range sections[si].Items {
			if sections[si].Items[ii].ID.Pending() {
				sections[si].Items[ii].ID = entities.NewItemID(uuid.NewString())
			}
			it := sections[si].Items[ii]
			it.PrimaryGroup = sections[si].Title
			items = append(items, it)
		}
	}

	totals := agg.Totals()
	return entities.EstimateDocument{
		Sections:          sections,
		Items:             items,
		OPPercent:         agg.OPPercent(),
		OPAmount:          totals.OPAmount,
		Subtotal:          totals.Subtotal,
		TaxMethod:         agg.TaxMethod(),
		TaxRate:           agg.TaxRate(),
		SpecificTaxAmount: agg.SpecificTaxAmount(),
		TaxAmount:         totals.TaxAmount,
		TotalAmount:       totals.Total,
	}
}
