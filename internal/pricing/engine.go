// Package pricing turns a selection into a priced bill of materials.
//
// All monetary arithmetic uses exact base-10 decimals; binary floating point
// would drift at cent level across chained percentage and fixed adjustments.
// Matched pricing rules fold into the total left to right in catalog
// declaration order. The order is semantic: a percentage applied after a
// fixed amount compounds differently than one applied before it.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"assembly-config-poc/internal/catalog"
	"assembly-config-poc/internal/selection"
)

// Engine prices selections against one immutable catalog.
type Engine struct {
	catalog *catalog.Catalog
}

// New creates a pricing engine over the catalog.
func New(cat *catalog.Catalog) *Engine {
	return &Engine{catalog: cat}
}

// GenerateBill builds the bill for the selection: one line item per selected
// component in category step order, every matching pricing rule applied in
// catalog order. An empty selection yields an empty bill with zero totals.
func (e *Engine) GenerateBill(sel *selection.Selection) BillOfMaterials {
	bill := BillOfMaterials{
		Subtotal:    decimal.Zero,
		Total:       decimal.Zero,
		GeneratedAt: time.Now(),
	}
	if sel == nil {
		return bill
	}

	for _, comp := range sel.Components() {
		item, err := NewLineItem(comp, 1)
		if err != nil {
			// Unreachable with quantity fixed at 1; skip rather than poison
			// the whole bill.
			continue
		}
		bill.Items = append(bill.Items, item)
		bill.Subtotal = bill.Subtotal.Add(item.TotalPrice)
	}

	selectedIDs := sel.ComponentIDs()
	selectedCategories := sel.Categories()

	total := bill.Subtotal
	for _, rule := range e.catalog.PricingRules() {
		if !rule.Condition.Matches(selectedIDs, selectedCategories) {
			continue
		}
		adjusted := rule.Adjustment.Apply(total)
		bill.Adjustments = append(bill.Adjustments, AppliedAdjustment{
			RuleID:         rule.ID,
			RuleName:       rule.Name,
			RuleType:       rule.Type,
			AdjustmentType: rule.Adjustment.Type,
			Value:          rule.Adjustment.Value,
			Amount:         adjusted.Sub(total),
		})
		total = adjusted
	}
	bill.Total = total

	return bill
}

// CalculateSubtotal returns the sum of line totals for the selection. It
// always agrees with a freshly generated bill.
func (e *Engine) CalculateSubtotal(sel *selection.Selection) decimal.Decimal {
	return e.GenerateBill(sel).Subtotal
}

// CalculateTotal returns the adjusted total for the selection. It always
// agrees with a freshly generated bill.
func (e *Engine) CalculateTotal(sel *selection.Selection) decimal.Decimal {
	return e.GenerateBill(sel).Total
}
