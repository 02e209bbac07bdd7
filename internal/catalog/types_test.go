package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
)

// =============================================================================
// PricingCondition Tests
// =============================================================================

func TestCondition_VacuouslyTrue(t *testing.T) {
	cond := PricingCondition{}
	if !cond.Matches(nil, nil) {
		t.Error("empty condition should match an empty selection")
	}
	if !cond.Matches([]string{"a"}, []Category{CategoryBase}) {
		t.Error("empty condition should match any selection")
	}
}

func TestCondition_ComponentIDs_AnyOf(t *testing.T) {
	cond := PricingCondition{ComponentIDs: []string{"a", "b"}}

	if !cond.Matches([]string{"b", "x"}, nil) {
		t.Error("non-disjoint component ids should match when requiresAll is false")
	}
	if cond.Matches([]string{"x", "y"}, nil) {
		t.Error("disjoint component ids should not match")
	}
}

func TestCondition_ComponentIDs_RequiresAll(t *testing.T) {
	cond := PricingCondition{ComponentIDs: []string{"a", "b"}, RequiresAll: true}

	if !cond.Matches([]string{"a", "b", "c"}, nil) {
		t.Error("superset of required ids should match")
	}
	if cond.Matches([]string{"a", "c"}, nil) {
		t.Error("partial overlap should not match when requiresAll is true")
	}
}

func TestCondition_Categories(t *testing.T) {
	cond := PricingCondition{Categories: []Category{CategoryPower, CategorySensor}}

	if !cond.Matches([]string{"x"}, []Category{CategoryBase, CategoryPower}) {
		t.Error("overlapping categories should match")
	}
	if cond.Matches([]string{"x"}, []Category{CategoryBase}) {
		t.Error("disjoint categories should not match")
	}
}

func TestCondition_ComponentIDsTakePriority(t *testing.T) {
	// Both branches populated: componentIds wins, categories are ignored.
	cond := PricingCondition{
		ComponentIDs: []string{"a"},
		Categories:   []Category{CategoryBase},
	}
	if cond.Matches([]string{"x"}, []Category{CategoryBase}) {
		t.Error("categories must be ignored when componentIds is populated")
	}
	if !cond.Matches([]string{"a"}, nil) {
		t.Error("componentIds branch should match")
	}
}

func TestCondition_MinimumQuantity(t *testing.T) {
	min := 3
	cond := PricingCondition{MinimumQuantity: &min}

	if cond.Matches([]string{"a", "b"}, nil) {
		t.Error("two selected components should not satisfy minimum of three")
	}
	if !cond.Matches([]string{"a", "b", "c"}, nil) {
		t.Error("three selected components should satisfy minimum of three")
	}
}

func TestCondition_MinimumQuantityANDsWithBase(t *testing.T) {
	min := 2
	cond := PricingCondition{ComponentIDs: []string{"a"}, MinimumQuantity: &min}

	if cond.Matches([]string{"a"}, nil) {
		t.Error("matching id but insufficient count should not match")
	}
	if !cond.Matches([]string{"a", "b"}, nil) {
		t.Error("matching id with sufficient count should match")
	}
}

// =============================================================================
// PriceAdjustment Tests
// =============================================================================

func TestAdjustment_Percentage(t *testing.T) {
	adj := PriceAdjustment{Type: AdjustmentPercentage, Value: decimal.RequireFromString("-10")}

	got := adj.Apply(decimal.RequireFromString("1000.00"))
	want := decimal.RequireFromString("900.00")
	if !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestAdjustment_FixedAmount(t *testing.T) {
	adj := PriceAdjustment{Type: AdjustmentFixedAmount, Value: decimal.RequireFromString("500.00")}

	got := adj.Apply(decimal.RequireFromString("1570.00"))
	want := decimal.RequireFromString("2070.00")
	if !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestAdjustment_FractionalPercentage(t *testing.T) {
	adj := PriceAdjustment{Type: AdjustmentPercentage, Value: decimal.RequireFromString("2.5")}

	got := adj.Apply(decimal.RequireFromString("200.00"))
	want := decimal.RequireFromString("205.00")
	if !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

// =============================================================================
// CompatibilityRule Tests
// =============================================================================

func TestRule_Matches(t *testing.T) {
	rule := CompatibilityRule{
		ID:                "r1",
		SourceComponentID: "src",
		TargetCategory:    CategoryMounting,
		RequiredTags:      NewTagSet("din"),
		ExcludedTags:      NewTagSet("outdoor"),
	}

	ok := Component{ID: "m1", Category: CategoryMounting, CompatibilityTags: NewTagSet("din", "rail")}
	if !rule.Matches(ok) {
		t.Error("component with required tags and no excluded tags should match")
	}

	wrongCategory := Component{ID: "m2", Category: CategoryPower, CompatibilityTags: NewTagSet("din")}
	if rule.Matches(wrongCategory) {
		t.Error("component in another category should not match")
	}

	missingRequired := Component{ID: "m3", Category: CategoryMounting, CompatibilityTags: NewTagSet("pole")}
	if rule.Matches(missingRequired) {
		t.Error("component lacking required tags should not match")
	}

	excluded := Component{ID: "m4", Category: CategoryMounting, CompatibilityTags: NewTagSet("din", "outdoor")}
	if rule.Matches(excluded) {
		t.Error("component carrying an excluded tag should not match")
	}
}
