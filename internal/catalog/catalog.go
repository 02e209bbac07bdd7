package catalog

import "sort"

// Catalog bundles the three immutable collections the core consumes. It is
// loaded wholesale (from seed data or a datastore) and treated as read-only
// for the lifetime of every resolution and pricing call.
type Catalog struct {
	components   []Component
	compatRules  []CompatibilityRule
	pricingRules []PricingRule

	componentsByID  map[string]Component
	componentsByCat map[Category][]Component
	rulesBySource   map[string][]CompatibilityRule
}

// New builds a catalog with lookup indexes over the given collections. The
// slices are copied; later mutation of the arguments does not affect the
// catalog.
func New(components []Component, compatRules []CompatibilityRule, pricingRules []PricingRule) *Catalog {
	c := &Catalog{
		components:      make([]Component, len(components)),
		compatRules:     make([]CompatibilityRule, len(compatRules)),
		pricingRules:    make([]PricingRule, len(pricingRules)),
		componentsByID:  make(map[string]Component, len(components)),
		componentsByCat: make(map[Category][]Component),
		rulesBySource:   make(map[string][]CompatibilityRule),
	}
	copy(c.components, components)
	copy(c.compatRules, compatRules)
	copy(c.pricingRules, pricingRules)

	for _, comp := range c.components {
		c.componentsByID[comp.ID] = comp
		c.componentsByCat[comp.Category] = append(c.componentsByCat[comp.Category], comp)
	}
	for _, rule := range c.compatRules {
		c.rulesBySource[rule.SourceComponentID] = append(c.rulesBySource[rule.SourceComponentID], rule)
	}
	return c
}

// ComponentByID looks up a component. The second return is false for unknown
// ids; lookups never fail.
func (c *Catalog) ComponentByID(id string) (Component, bool) {
	comp, ok := c.componentsByID[id]
	return comp, ok
}

// Components returns every catalog component in load order.
func (c *Catalog) Components() []Component {
	out := make([]Component, len(c.components))
	copy(out, c.components)
	return out
}

// ComponentsInCategory returns the components of one category sorted by
// display name ascending. Unknown categories yield an empty slice.
func (c *Catalog) ComponentsInCategory(cat Category) []Component {
	src := c.componentsByCat[cat]
	out := make([]Component, len(src))
	copy(out, src)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// RulesForSource returns the compatibility rules declared by the given source
// component that constrain the target category. An empty result means the
// source imposes no restriction there.
func (c *Catalog) RulesForSource(sourceID string, target Category) []CompatibilityRule {
	var out []CompatibilityRule
	for _, rule := range c.rulesBySource[sourceID] {
		if rule.TargetCategory == target {
			out = append(out, rule)
		}
	}
	return out
}

// HasRulesForSource reports whether the source component declares any
// compatibility rule at all for the target category.
func (c *Catalog) HasRulesForSource(sourceID string, target Category) bool {
	for _, rule := range c.rulesBySource[sourceID] {
		if rule.TargetCategory == target {
			return true
		}
	}
	return false
}

// PricingRules returns every pricing rule in catalog declaration order. The
// order is load-bearing: adjustments fold left to right in this order.
func (c *Catalog) PricingRules() []PricingRule {
	out := make([]PricingRule, len(c.pricingRules))
	copy(out, c.pricingRules)
	return out
}
