// Package catalog defines the immutable universe of purchasable components
// and the rules governing their combination and price.
//
// The catalog is pure data: components, compatibility rules, and pricing
// rules are loaded once and never mutated. All lookups are total functions
// that return empty results for unknown identifiers, never errors.
package catalog

import (
	"github.com/shopspring/decimal"
)

// Component is a single catalog entry.
type Component struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    Category          `json:"category"`
	Description string            `json:"description"`
	BasePrice   decimal.Decimal   `json:"base_price"`
	Specs       map[string]string `json:"specs,omitempty"`

	// CompatibilityTags describe what this component offers to others.
	CompatibilityTags TagSet `json:"compatibility_tags,omitempty"`

	// RequiredTags are reserved for future bidirectional matching; the
	// resolver does not consume them in the current rule set.
	RequiredTags TagSet `json:"required_tags,omitempty"`
}

// CompatibilityRule is a directed constraint from one source component to a
// target category: components in that category are permitted only if they
// carry all required tags and none of the excluded ones.
type CompatibilityRule struct {
	ID                string   `json:"id"`
	SourceComponentID string   `json:"source_component_id"`
	TargetCategory    Category `json:"target_category"`
	RequiredTags      TagSet   `json:"required_tags,omitempty"`
	ExcludedTags      TagSet   `json:"excluded_tags,omitempty"`
}

// Matches reports whether the target component satisfies this rule.
func (r CompatibilityRule) Matches(target Component) bool {
	if target.Category != r.TargetCategory {
		return false
	}
	if !r.RequiredTags.SubsetOf(target.CompatibilityTags) {
		return false
	}
	return r.ExcludedTags.DisjointWith(target.CompatibilityTags)
}

// PricingRuleType is an informational grouping of pricing rules. It does not
// alter evaluation mechanics.
type PricingRuleType string

const (
	RuleTypeDiscount       PricingRuleType = "discount"
	RuleTypeSurcharge      PricingRuleType = "surcharge"
	RuleTypeBundleDiscount PricingRuleType = "bundle_discount"
	RuleTypeVolumeDiscount PricingRuleType = "volume_discount"
)

// PricingRule is a conditional price adjustment evaluated against a full
// selection. Rules apply in catalog declaration order.
type PricingRule struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Type       PricingRuleType  `json:"type"`
	Condition  PricingCondition `json:"condition"`
	Adjustment PriceAdjustment  `json:"adjustment"`
}

// PricingCondition is a predicate over the ids and categories of a selection.
//
// ComponentIDs takes priority: when it is non-empty the Categories branch is
// never consulted. With both empty the condition is vacuously true.
// MinimumQuantity, when set, additionally requires at least that many
// selected components.
type PricingCondition struct {
	ComponentIDs    []string   `json:"component_ids,omitempty"`
	Categories      []Category `json:"categories,omitempty"`
	MinimumQuantity *int       `json:"minimum_quantity,omitempty"`
	RequiresAll     bool       `json:"requires_all"`
}

// Matches evaluates the condition against the selected component ids and
// their categories. The count of selected components is len(selectedIDs);
// quantity per slot is fixed at one.
func (c PricingCondition) Matches(selectedIDs []string, selectedCategories []Category) bool {
	result := true

	switch {
	case len(c.ComponentIDs) > 0:
		result = matchSet(c.ComponentIDs, selectedIDs, c.RequiresAll)
	case len(c.Categories) > 0:
		want := make([]string, 0, len(c.Categories))
		for _, cat := range c.Categories {
			want = append(want, string(cat))
		}
		have := make([]string, 0, len(selectedCategories))
		for _, cat := range selectedCategories {
			have = append(have, string(cat))
		}
		result = matchSet(want, have, c.RequiresAll)
	}

	if c.MinimumQuantity != nil {
		result = result && len(selectedIDs) >= *c.MinimumQuantity
	}
	return result
}

// matchSet applies the condition's set test: subset when requiresAll,
// otherwise non-disjoint.
func matchSet(want, have []string, requiresAll bool) bool {
	haveSet := make(map[string]struct{}, len(have))
	for _, h := range have {
		haveSet[h] = struct{}{}
	}
	if requiresAll {
		for _, w := range want {
			if _, ok := haveSet[w]; !ok {
				return false
			}
		}
		return true
	}
	for _, w := range want {
		if _, ok := haveSet[w]; ok {
			return true
		}
	}
	return false
}

// AdjustmentType distinguishes percentage from fixed-amount adjustments.
type AdjustmentType string

const (
	AdjustmentPercentage  AdjustmentType = "percentage"
	AdjustmentFixedAmount AdjustmentType = "fixed_amount"
)

// PriceAdjustment modifies a price. Negative values are discounts, positive
// values surcharges, for both types. Percentage values are whole-or-fractional
// percentage points: -10 means "subtract 10%".
type PriceAdjustment struct {
	Type  AdjustmentType  `json:"type"`
	Value decimal.Decimal `json:"value"`
}

var oneHundred = decimal.NewFromInt(100)

// Apply returns the adjusted price. Unknown adjustment types leave the price
// unchanged.
func (a PriceAdjustment) Apply(price decimal.Decimal) decimal.Decimal {
	switch a.Type {
	case AdjustmentPercentage:
		multiplier := decimal.NewFromInt(1).Add(a.Value.Div(oneHundred))
		return price.Mul(multiplier)
	case AdjustmentFixedAmount:
		return price.Add(a.Value)
	default:
		return price
	}
}
