package pricing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"assembly-config-poc/internal/catalog"
)

// LineItem is one priced row of a bill: a single selected component.
// Quantity is fixed at one in the current model (one slot per category), but
// the shape carries it so totals stay explicit.
type LineItem struct {
	ComponentID   string           `json:"id"`
	ComponentName string           `json:"component_name"`
	Category      catalog.Category `json:"category"`
	Quantity      int              `json:"quantity"`
	UnitPrice     decimal.Decimal  `json:"unit_price"`
	TotalPrice    decimal.Decimal  `json:"total_price"`
}

// NewLineItem builds a line item for the component. Quantity below one is
// the single precondition the core enforces: it is rejected here rather than
// discovered mid-calculation.
func NewLineItem(comp catalog.Component, quantity int) (LineItem, error) {
	if quantity < 1 {
		return LineItem{}, fmt.Errorf("line item quantity must be at least 1, got %d", quantity)
	}
	qty := decimal.NewFromInt(int64(quantity))
	return LineItem{
		ComponentID:   comp.ID,
		ComponentName: comp.Name,
		Category:      comp.Category,
		Quantity:      quantity,
		UnitPrice:     comp.BasePrice,
		TotalPrice:    comp.BasePrice.Mul(qty),
	}, nil
}

// AppliedAdjustment records one pricing rule that matched the selection, in
// the order it was applied, with the signed amount it contributed.
type AppliedAdjustment struct {
	RuleID         string                  `json:"rule_id"`
	RuleName       string                  `json:"rule_name"`
	RuleType       catalog.PricingRuleType `json:"rule_type"`
	AdjustmentType catalog.AdjustmentType  `json:"adjustment_type"`
	Value          decimal.Decimal         `json:"value"`
	Amount         decimal.Decimal         `json:"amount"`
}

// BillOfMaterials is the priced, itemized snapshot of a selection. It is
// recomputed on demand and never mutated after construction.
type BillOfMaterials struct {
	Items       []LineItem          `json:"items"`
	Adjustments []AppliedAdjustment `json:"adjustments"`
	Subtotal    decimal.Decimal     `json:"subtotal"`
	Total       decimal.Decimal     `json:"total"`
	GeneratedAt time.Time           `json:"generated_at"`
}
