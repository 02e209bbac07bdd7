// Package quote snapshots priced selections into immutable, time-bounded
// quote records.
//
// A quote embeds a simplified copy of the bill (component names, not live
// catalog references) so it stays meaningful even if catalog entries change
// after it was issued. The quote is the one externally durable artifact whose
// shape the core owns; it must round-trip losslessly through JSON.
package quote

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"assembly-config-poc/internal/pricing"
	"assembly-config-poc/internal/selection"
)

// Status is the stored lifecycle state of a quote. Expiry is additionally a
// derived fact: consumers must honor the time-based check regardless of the
// stored status, and it wins for display.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
)

// DefaultValidDays is the quote validity window when none is given.
const DefaultValidDays = 30

// Item is one row of a quote's embedded bill.
type Item struct {
	ComponentID   string          `json:"id"`
	ComponentName string          `json:"componentName"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
}

// BOM is the simplified bill embedded in a quote.
type BOM struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Total    decimal.Decimal `json:"total"`
	Items    []Item          `json:"items"`
}

// Quote is an immutable, time-bounded offer derived from a priced selection.
type Quote struct {
	ID              string    `json:"id"`
	ConfigurationID string    `json:"configurationId"`
	UserID          string    `json:"userId"`
	Bill            BOM       `json:"billOfMaterials"`
	ValidUntil      time.Time `json:"validUntil"`
	Status          Status    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	Notes           string    `json:"notes,omitempty"`
}

// EffectiveStatus returns the status a consumer should display at the given
// instant: expired whenever now is past the validity window, otherwise the
// stored status.
func EffectiveStatus(q Quote, now time.Time) Status {
	if now.After(q.ValidUntil) {
		return StatusExpired
	}
	return q.Status
}

// IsExpired reports whether the quote's validity window has passed.
func IsExpired(q Quote, now time.Time) bool {
	return EffectiveStatus(q, now) == StatusExpired
}

// Factory creates quotes from selections using a pricing engine. Pure
// construction: no storage, no side effects. The clock is injectable for
// tests; nil means time.Now.
type Factory struct {
	engine *pricing.Engine
	now    func() time.Time
}

// NewFactory creates a quote factory over the pricing engine.
func NewFactory(engine *pricing.Engine, now func() time.Time) *Factory {
	if now == nil {
		now = time.Now
	}
	return &Factory{engine: engine, now: now}
}

// Options tune quote creation.
type Options struct {
	// ValidDays is the validity window length; zero or negative means
	// DefaultValidDays.
	ValidDays int
	// Notes is free text attached to the quote.
	Notes string
}

// CreateQuote snapshots the selection's current bill into a draft quote for
// the user.
func (f *Factory) CreateQuote(sel *selection.Selection, userID string, opts Options) Quote {
	validDays := opts.ValidDays
	if validDays <= 0 {
		validDays = DefaultValidDays
	}

	bill := f.engine.GenerateBill(sel)
	items := make([]Item, 0, len(bill.Items))
	for _, li := range bill.Items {
		items = append(items, Item{
			ComponentID:   li.ComponentID,
			ComponentName: li.ComponentName,
			Quantity:      li.Quantity,
			UnitPrice:     li.UnitPrice,
			TotalPrice:    li.TotalPrice,
		})
	}

	now := f.now()
	configurationID := ""
	if sel != nil {
		configurationID = sel.ID
	}
	return Quote{
		ID:              uuid.NewString(),
		ConfigurationID: configurationID,
		UserID:          userID,
		Bill: BOM{
			Subtotal: bill.Subtotal,
			Total:    bill.Total,
			Items:    items,
		},
		ValidUntil: now.AddDate(0, 0, validDays),
		Status:     StatusDraft,
		CreatedAt:  now,
		Notes:      opts.Notes,
	}
}
