package cli

import (
	"context"
	"fmt"

	"assembly-config-poc/internal/catalog"
	"assembly-config-poc/internal/datastore"
)

// RunListComponents prints catalog components, optionally filtered to one
// category.
func RunListComponents(ctx context.Context, ds datastore.DataStore, args []string) error {
	cat, err := ds.LoadCatalog(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	categories := catalog.AllCategories()
	if len(args) > 0 {
		parsed, ok := catalog.ParseCategory(args[0])
		if !ok {
			return fmt.Errorf("unknown category %q", args[0])
		}
		categories = []catalog.Category{parsed}
	}

	for _, c := range categories {
		comps := cat.ComponentsInCategory(c)
		if len(comps) == 0 {
			continue
		}
		fmt.Printf("%s:\n", c.DisplayName())
		for _, comp := range comps {
			fmt.Printf("  %-12s %-30s %10s  [%s]\n",
				comp.ID, comp.Name, comp.BasePrice.StringFixed(2), joinTags(comp))
		}
	}
	return nil
}

func joinTags(comp catalog.Component) string {
	tags := comp.CompatibilityTags.Sorted()
	out := ""
	for i, t := range tags {
		if i > 0 {
			out += ", "
		}
		out += t
	}
	return out
}
