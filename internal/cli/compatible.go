package cli

import (
	"context"
	"fmt"

	"assembly-config-poc/internal/catalog"
	"assembly-config-poc/internal/datastore"
	"assembly-config-poc/internal/resolver"
)

// RunCompatible prints the components still selectable in a target category
// given the already-selected component ids.
func RunCompatible(ctx context.Context, ds datastore.DataStore, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: compatible <target-category> [selected-component-id...]")
	}

	target, ok := catalog.ParseCategory(args[0])
	if !ok {
		return fmt.Errorf("unknown category %q", args[0])
	}

	cat, err := ds.LoadCatalog(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	sel, err := buildSelection(cat, "cli", args[1:])
	if err != nil {
		return err
	}

	res := resolver.New(cat)
	comps := res.CompatibleComponents(sel, target)
	if len(comps) == 0 {
		fmt.Printf("No compatible components in %s.\n", target.DisplayName())
		return nil
	}

	fmt.Printf("Compatible components in %s:\n", target.DisplayName())
	for _, comp := range comps {
		fmt.Printf("  %-12s %-30s %10s\n", comp.ID, comp.Name, comp.BasePrice.StringFixed(2))
	}
	return nil
}

// RunValidateSelection checks the mutual compatibility of a full selection.
func RunValidateSelection(ctx context.Context, ds datastore.DataStore, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: validate-selection <component-id...>")
	}

	cat, err := ds.LoadCatalog(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	sel, err := buildSelection(cat, "cli", args)
	if err != nil {
		return err
	}

	res := resolver.New(cat)
	if res.IsSelectionValid(sel) {
		fmt.Println("Selection is valid.")
		return nil
	}
	if !sel.HasBase() {
		fmt.Println("Selection is invalid: no base component selected.")
		return nil
	}
	fmt.Println("Selection is invalid: selected components are not mutually compatible.")
	return nil
}
