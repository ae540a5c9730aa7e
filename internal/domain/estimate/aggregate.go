package estimate

import (
	"errors"
	"math"
	"strings"

	"restoration_billing/internal/domain/entities"

	"github.com/google/uuid"
)

var (
	ErrSectionTitleRequired = errors.New("section title required")
	ErrItemNameRequired     = errors.New("item name required")
	ErrItemUnitRequired     = errors.New("item unit required")
	ErrItemQuantityInvalid  = errors.New("item quantity must be positive")
	ErrItemUnitPriceInvalid = errors.New("item unit price must be positive")
	ErrInvalidTaxMethod     = errors.New("invalid tax method")
	ErrIndexOutOfRange      = errors.New("index out of range")
	ErrCrossSectionMove     = errors.New("cross-section move not supported")
)

// DefaultSectionTitle is the fallback group for flat items that carry no
// primary_group.
const DefaultSectionTitle = "Default Section"

// Totals is the derived whole-document figure set.
type Totals struct {
	Subtotal  float64
	OPAmount  float64
	TaxAmount float64
	Total     float64
}

// Aggregate owns the mutable section/item tree of one editing session and
// keeps every derived figure consistent after each mutation.
//
// It performs no I/O and accepts no concurrent callers: one aggregate
// belongs to one editing session, and persistence happens outside via
// Sections/FlattenToItems/Totals snapshots.
type Aggregate struct {
	sections          []entities.Section
	opPercent         float64
	taxMethod         entities.TaxMethod
	taxRate           float64
	specificTaxAmount float64
	dirty             bool
}

func New() *Aggregate {
	return &Aggregate{taxMethod: entities.TaxMethodPercentage}
}

// LoadFromSections replaces the tree with the given sections. Item totals
// and section subtotals are recomputed; incoming derived values are never
// trusted. Sections without an id get a fresh one. Never fails.
func (a *Aggregate) LoadFromSections(sections []entities.Section) {
	a.sections = make([]entities.Section, 0, len(sections))
	for _, s := range sections {
		sec := entities.Section{
			ID:           s.ID,
			Title:        s.Title,
			ShowSubtotal: s.ShowSubtotal,
			Items:        make([]entities.LineItem, len(s.Items)),
		}
		if sec.ID == "" {
			sec.ID = uuid.NewString()
		}
		copy(sec.Items, s.Items)
		for i := range sec.Items {
			sec.Items[i].Total = round2(sec.Items[i].Quantity * sec.Items[i].UnitPrice)
			sec.Items[i].PrimaryGroup = sec.Title
		}
		a.sections = append(a.sections, sec)
	}
	a.recomputeAll()
	a.dirty = false
}

// LoadFromFlatItems builds the section list by grouping a flat item list
// on primary_group, preserving relative order. Items without a group fall
// into DefaultSectionTitle. Never fails; an empty list yields an empty
// section list.
func (a *Aggregate) LoadFromFlatItems(items []entities.LineItem) {
	a.sections = nil
	index := map[string]int{}
	for _, it := range items {
		group := strings.TrimSpace(it.PrimaryGroup)
		if group == "" {
			group = DefaultSectionTitle
		}
		si, ok := index[group]
		if !ok {
			a.sections = append(a.sections, entities.Section{
				ID:           uuid.NewString(),
				Title:        group,
				ShowSubtotal: true,
			})
			si = len(a.sections) - 1
			index[group] = si
		}
		it.PrimaryGroup = group
		it.Total = round2(it.Quantity * it.UnitPrice)
		a.sections[si].Items = append(a.sections[si].Items, it)
	}
	a.recomputeAll()
	a.dirty = false
}

// Sections returns a snapshot of the tree with display_order assigned from
// the current sequence positions.
func (a *Aggregate) Sections() []entities.Section {
	out := make([]entities.Section, len(a.sections))
	for i, s := range a.sections {
		cp := s
		cp.Items = make([]entities.LineItem, len(s.Items))
		copy(cp.Items, s.Items)
		cp.DisplayOrder = i
		out[i] = cp
	}
	return out
}

func (a *Aggregate) AddSection(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrSectionTitleRequired
	}
	a.sections = append(a.sections, entities.Section{
		ID:           uuid.NewString(),
		Title:        title,
		ShowSubtotal: true,
	})
	a.dirty = true
	return nil
}

// DeleteSection removes the section and all of its items. Outstanding item
// indexes held by the caller for this section become invalid.
func (a *Aggregate) DeleteSection(sectionIndex int) error {
	if err := a.checkSection(sectionIndex); err != nil {
		return err
	}
	a.sections = append(a.sections[:sectionIndex], a.sections[sectionIndex+1:]...)
	a.dirty = true
	return nil
}

// RenameSection updates the title only. Items already in the section keep
// their old primary_group until the next flatten; only newly added items
// pick up the new title.
func (a *Aggregate) RenameSection(sectionIndex int, newTitle string) error {
	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		return ErrSectionTitleRequired
	}
	if err := a.checkSection(sectionIndex); err != nil {
		return err
	}
	a.sections[sectionIndex].Title = newTitle
	a.dirty = true
	return nil
}

// SetShowSubtotal toggles whether a section's subtotal row is displayed.
func (a *Aggregate) SetShowSubtotal(sectionIndex int, show bool) error {
	if err := a.checkSection(sectionIndex); err != nil {
		return err
	}
	if a.sections[sectionIndex].ShowSubtotal == show {
		return nil
	}
	a.sections[sectionIndex].ShowSubtotal = show
	a.dirty = true
	return nil
}

// ReorderSections moves a section with stable remove-then-insert
// semantics. No-op when from == to.
func (a *Aggregate) ReorderSections(fromIndex, toIndex int) error {
	if err := a.checkSection(fromIndex); err != nil {
		return err
	}
	if err := a.checkSection(toIndex); err != nil {
		return err
	}
	if fromIndex == toIndex {
		return nil
	}
	moved := a.sections[fromIndex]
	rest := append(a.sections[:fromIndex:fromIndex], a.sections[fromIndex+1:]...)
	a.sections = append(rest[:toIndex:toIndex], append([]entities.Section{moved}, rest[toIndex:]...)...)
	a.dirty = true
	return nil
}

func (a *Aggregate) AddItem(sectionIndex int, item entities.LineItem) error {
	return a.AddItems(sectionIndex, []entities.LineItem{item})
}

// AddItems validates every item before inserting any of them; one invalid
// item rejects the whole batch. Accepted items are stamped with the
// section title as primary_group.
func (a *Aggregate) AddItems(sectionIndex int, items []entities.LineItem) error {
	if err := a.checkSection(sectionIndex); err != nil {
		return err
	}
	normalized := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		n, err := normalizeItem(it)
		if err != nil {
			return err
		}
		n.PrimaryGroup = a.sections[sectionIndex].Title
		normalized = append(normalized, n)
	}
	sec := &a.sections[sectionIndex]
	sec.Items = append(sec.Items, normalized...)
	a.recomputeSection(sec)
	a.dirty = true
	return nil
}

// EditItem replaces all fields except identity, with the same validation
// as AddItem.
func (a *Aggregate) EditItem(sectionIndex, itemIndex int, newFields entities.LineItem) error {
	if err := a.checkItem(sectionIndex, itemIndex); err != nil {
		return err
	}
	n, err := normalizeItem(newFields)
	if err != nil {
		return err
	}
	sec := &a.sections[sectionIndex]
	n.ID = sec.Items[itemIndex].ID
	n.PrimaryGroup = sec.Items[itemIndex].PrimaryGroup
	sec.Items[itemIndex] = n
	a.recomputeSection(sec)
	a.dirty = true
	return nil
}

func (a *Aggregate) DeleteItem(sectionIndex, itemIndex int) error {
	return a.DeleteItems(sectionIndex, []int{itemIndex})
}

// DeleteItems removes the given index set against the current item order,
// preserving the relative order of the survivors.
func (a *Aggregate) DeleteItems(sectionIndex int, itemIndexes []int) error {
	if err := a.checkSection(sectionIndex); err != nil {
		return err
	}
	sec := &a.sections[sectionIndex]
	for _, i := range itemIndexes {
		if i < 0 || i >= len(sec.Items) {
			return ErrIndexOutOfRange
		}
	}
	drop := make(map[int]bool, len(itemIndexes))
	for _, i := range itemIndexes {
		drop[i] = true
	}
	kept := sec.Items[:0]
	for i, it := range sec.Items {
		if !drop[i] {
			kept = append(kept, it)
		}
	}
	sec.Items = kept
	a.recomputeSection(sec)
	a.dirty = true
	return nil
}

// DuplicateItem appends a copy of the item to the same section. The copy
// is pending: it gets a durable id only at the next save.
func (a *Aggregate) DuplicateItem(sectionIndex, itemIndex int) error {
	if err := a.checkItem(sectionIndex, itemIndex); err != nil {
		return err
	}
	sec := &a.sections[sectionIndex]
	cp := sec.Items[itemIndex]
	cp.ID = entities.ItemID{}
	sec.Items = append(sec.Items, cp)
	a.recomputeSection(sec)
	a.dirty = true
	return nil
}

// MoveItem reorders within one section with stable remove-then-insert
// semantics. Moving across sections is rejected and changes nothing; the
// source application only ever supported within-section drags.
func (a *Aggregate) MoveItem(fromSection, fromIndex, toSection, toIndex int) error {
	if err := a.checkSection(fromSection); err != nil {
		return err
	}
	if err := a.checkSection(toSection); err != nil {
		return err
	}
	if fromSection != toSection {
		return ErrCrossSectionMove
	}
	sec := &a.sections[fromSection]
	if fromIndex < 0 || fromIndex >= len(sec.Items) || toIndex < 0 || toIndex >= len(sec.Items) {
		return ErrIndexOutOfRange
	}
	if fromIndex == toIndex {
		return nil
	}
	moved := sec.Items[fromIndex]
	rest := append(sec.Items[:fromIndex:fromIndex], sec.Items[fromIndex+1:]...)
	sec.Items = append(rest[:toIndex:toIndex], append([]entities.LineItem{moved}, rest[toIndex:]...)...)
	a.dirty = true
	return nil
}

func (a *Aggregate) SetTaxableForItem(sectionIndex, itemIndex int, taxable bool) error {
	if err := a.checkItem(sectionIndex, itemIndex); err != nil {
		return err
	}
	if a.sections[sectionIndex].Items[itemIndex].Taxable == taxable {
		return nil
	}
	a.sections[sectionIndex].Items[itemIndex].Taxable = taxable
	a.dirty = true
	return nil
}

func (a *Aggregate) SetTaxableForSection(sectionIndex int, taxable bool) error {
	if err := a.checkSection(sectionIndex); err != nil {
		return err
	}
	for i := range a.sections[sectionIndex].Items {
		if a.sections[sectionIndex].Items[i].Taxable != taxable {
			a.sections[sectionIndex].Items[i].Taxable = taxable
			a.dirty = true
		}
	}
	return nil
}

func (a *Aggregate) SetTaxableForAll(taxable bool) {
	for si := range a.sections {
		for i := range a.sections[si].Items {
			if a.sections[si].Items[i].Taxable != taxable {
				a.sections[si].Items[i].Taxable = taxable
				a.dirty = true
			}
		}
	}
}

// SetOPPercent clamps to [0, 100]. Setting the current value is a no-op
// and does not mark the aggregate dirty.
func (a *Aggregate) SetOPPercent(percent float64) {
	percent = clamp(percent, 0, 100)
	if a.opPercent == percent {
		return
	}
	a.opPercent = percent
	a.dirty = true
}

func (a *Aggregate) SetTaxMethod(method entities.TaxMethod) error {
	if method != entities.TaxMethodPercentage && method != entities.TaxMethodSpecific {
		return ErrInvalidTaxMethod
	}
	if a.taxMethod == method {
		return nil
	}
	a.taxMethod = method
	a.dirty = true
	return nil
}

// SetTaxRate clamps to [0, 100]. Only consulted in percentage mode.
func (a *Aggregate) SetTaxRate(rate float64) {
	rate = clamp(rate, 0, 100)
	if a.taxRate == rate {
		return
	}
	a.taxRate = rate
	a.dirty = true
}

// SetSpecificTaxAmount clamps below at 0. Only consulted in specific mode.
func (a *Aggregate) SetSpecificTaxAmount(amount float64) {
	if amount < 0 {
		amount = 0
	}
	if a.specificTaxAmount == amount {
		return
	}
	a.specificTaxAmount = amount
	a.dirty = true
}

func (a *Aggregate) OPPercent() float64            { return a.opPercent }
func (a *Aggregate) TaxMethod() entities.TaxMethod { return a.taxMethod }
func (a *Aggregate) TaxRate() float64              { return a.taxRate }
func (a *Aggregate) SpecificTaxAmount() float64    { return a.specificTaxAmount }

// Totals derives the whole-document figures from the current state. Pure
// and idempotent; safe to call at any time.
//
// In percentage mode only the taxable portion of the subtotal is taxed,
// plus O&P apportioned by the taxable-to-total ratio. In specific mode the
// configured amount passes through verbatim. total = subtotal + op + tax
// in both modes.
func (a *Aggregate) Totals() Totals {
	var subtotal, taxableSubtotal float64
	for _, s := range a.sections {
		for _, it := range s.Items {
			subtotal += it.Total
			if it.Taxable {
				taxableSubtotal += it.Total
			}
		}
	}
	subtotal = round2(subtotal)
	taxableSubtotal = round2(taxableSubtotal)
	opAmount := round2(subtotal * a.opPercent / 100)

	var taxAmount float64
	switch a.taxMethod {
	case entities.TaxMethodSpecific:
		taxAmount = a.specificTaxAmount
	default:
		taxableOP := 0.0
		if subtotal > 0 {
			taxableOP = round2(opAmount * taxableSubtotal / subtotal)
		}
		taxAmount = round2((taxableSubtotal + taxableOP) * a.taxRate / 100)
	}

	return Totals{
		Subtotal:  subtotal,
		OPAmount:  opAmount,
		TaxAmount: taxAmount,
		Total:     round2(subtotal + opAmount + taxAmount),
	}
}

// FlattenToItems returns the flat item list in section order with each
// item's primary_group forced to the current owning section title. This is
// the save/submit shape for the persistence collaborator.
func (a *Aggregate) FlattenToItems() []entities.LineItem {
	var out []entities.LineItem
	for _, s := range a.sections {
		for _, it := range s.Items {
			it.PrimaryGroup = s.Title
			out = append(out, it)
		}
	}
	return out
}

// Dirty reports whether the aggregate has mutated since the last load or
// MarkSaved. External auto-save collaborators poll this.
func (a *Aggregate) Dirty() bool {
	return a.dirty
}

func (a *Aggregate) MarkSaved() {
	a.dirty = false
}

func (a *Aggregate) checkSection(i int) error {
	if i < 0 || i >= len(a.sections) {
		return ErrIndexOutOfRange
	}
	return nil
}

func (a *Aggregate) checkItem(si, ii int) error {
	if err := a.checkSection(si); err != nil {
		return err
	}
	if ii < 0 || ii >= len(a.sections[si].Items) {
		return ErrIndexOutOfRange
	}
	return nil
}

func (a *Aggregate) recomputeSection(sec *entities.Section) {
	var sum float64
	for _, it := range sec.Items {
		sum += it.Total
	}
	sec.Subtotal = round2(sum)
}

func (a *Aggregate) recomputeAll() {
	for i := range a.sections {
		a.recomputeSection(&a.sections[i])
	}
}

func normalizeItem(it entities.LineItem) (entities.LineItem, error) {
	it.Name = strings.TrimSpace(it.Name)
	it.Unit = strings.TrimSpace(it.Unit)
	if it.Name == "" {
		return entities.LineItem{}, ErrItemNameRequired
	}
	if it.Quantity <= 0 {
		return entities.LineItem{}, ErrItemQuantityInvalid
	}
	if it.Unit == "" {
		return entities.LineItem{}, ErrItemUnitRequired
	}
	if it.UnitPrice <= 0 {
		return entities.LineItem{}, ErrItemUnitPriceInvalid
	}
	it.Total = round2(it.Quantity * it.UnitPrice)
	return it, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
