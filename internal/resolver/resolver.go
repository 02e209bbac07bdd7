// Package resolver computes which catalog components remain selectable for a
// partial selection, and whether a completed selection is internally
// consistent.
//
// Resolution is permissive by default: a selected component with no
// compatibility rules for a target category imposes no restriction there.
// Unknown or unconfigured combinations are allowed rather than rejected, so
// completeness is the rule authors' burden. No operation returns an error;
// absent data yields empty result sets.
package resolver

import (
	"sort"

	"assembly-config-poc/internal/catalog"
	"assembly-config-poc/internal/selection"
)

// Resolver answers compatibility questions against one immutable catalog.
type Resolver struct {
	catalog *catalog.Catalog
}

// New creates a resolver over the catalog.
func New(cat *catalog.Catalog) *Resolver {
	return &Resolver{catalog: cat}
}

// CompatibleComponents returns the components in targetCategory compatible
// with every component already selected, sorted by display name ascending.
//
// With nothing selected, only the base category is open: the base must be
// chosen first. This is a design gate, not a compatibility rule. Each
// selected component contributes the union of components matched by its own
// rules for the target category (or everything, if it declares no rules
// there); the result is the intersection of those contributions.
func (r *Resolver) CompatibleComponents(sel *selection.Selection, targetCategory catalog.Category) []catalog.Component {
	all := r.catalog.ComponentsInCategory(targetCategory)

	if sel == nil || sel.IsEmpty() {
		if targetCategory == catalog.CategoryBase {
			return all
		}
		return nil
	}

	result := all
	for _, source := range sel.Components() {
		result = intersect(result, r.compatibleFor(source, targetCategory, all))
		if len(result) == 0 {
			break
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// compatibleFor returns the components of all that the source component
// permits: those matching at least one of its rules for the target category,
// or all of them when it declares no such rules.
func (r *Resolver) compatibleFor(source catalog.Component, target catalog.Category, all []catalog.Component) []catalog.Component {
	rules := r.catalog.RulesForSource(source.ID, target)
	if len(rules) == 0 {
		return all
	}

	var out []catalog.Component
	for _, candidate := range all {
		for _, rule := range rules {
			if rule.Matches(candidate) {
				out = append(out, candidate)
				break
			}
		}
	}
	return out
}

// IsSelectionValid reports whether the selection has a base component and
// every ordered pair of distinct selected components is mutually compatible.
//
// For each pair (A, B): the components compatible with A alone in B's
// category must contain B, unless that set is empty, which means A imposes
// no effective constraint there and never fails validity.
func (r *Resolver) IsSelectionValid(sel *selection.Selection) bool {
	if sel == nil || !sel.HasBase() {
		return false
	}

	comps := sel.Components()
	for _, a := range comps {
		for _, b := range comps {
			if a.ID == b.ID {
				continue
			}
			allowed := r.compatibleFor(a, b.Category, r.catalog.ComponentsInCategory(b.Category))
			if len(allowed) == 0 {
				continue
			}
			if !containsComponent(allowed, b.ID) {
				return false
			}
		}
	}
	return true
}

func intersect(a, b []catalog.Component) []catalog.Component {
	ids := make(map[string]struct{}, len(b))
	for _, comp := range b {
		ids[comp.ID] = struct{}{}
	}
	var out []catalog.Component
	for _, comp := range a {
		if _, ok := ids[comp.ID]; ok {
			out = append(out, comp)
		}
	}
	return out
}

func containsComponent(comps []catalog.Component, id string) bool {
	for _, comp := range comps {
		if comp.ID == id {
			return true
		}
	}
	return false
}
