package cli

import (
	"fmt"

	"assembly-config-poc/internal/catalog"
	"assembly-config-poc/internal/selection"
)

// buildSelection resolves component ids against the catalog into a working
// selection. Unknown ids are a usage error at the CLI boundary, even though
// the core itself is permissive about them.
func buildSelection(cat *catalog.Catalog, name string, ids []string) (*selection.Selection, error) {
	sel := selection.New(name)
	for _, id := range ids {
		comp, ok := cat.ComponentByID(id)
		if !ok {
			return nil, fmt.Errorf("unknown component id %q", id)
		}
		sel.Select(comp)
	}
	return sel, nil
}
