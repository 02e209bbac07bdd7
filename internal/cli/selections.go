package cli

import (
	"context"
	"flag"
	"fmt"

	"assembly-config-poc/internal/datastore"
	"assembly-config-poc/internal/pricing"
	"assembly-config-poc/internal/resolver"
	"assembly-config-poc/internal/selection"
)

// RunSaveSelection builds a named selection from component ids and persists
// it.
func RunSaveSelection(ctx context.Context, ds datastore.DataStore, args []string) error {
	fs := flag.NewFlagSet("save-selection", flag.ContinueOnError)
	name := fs.String("name", "untitled", "Selection name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ids := fs.Args()
	if len(ids) == 0 {
		return fmt.Errorf("usage: save-selection [--name=<name>] <component-id...>")
	}

	cat, err := ds.LoadCatalog(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	sel, err := buildSelection(cat, *name, ids)
	if err != nil {
		return err
	}
	if err := ds.SaveSelection(ctx, sel.ToRecord()); err != nil {
		return fmt.Errorf("failed to save selection: %w", err)
	}

	fmt.Printf("Saved selection %s (%q, %d components)\n", sel.ID, sel.Name, sel.Count())
	return nil
}

// RunListSelections prints every saved selection with validity and total.
func RunListSelections(ctx context.Context, ds datastore.DataStore, args []string) error {
	cat, err := ds.LoadCatalog(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	records, err := ds.ListSelections(ctx)
	if err != nil {
		return fmt.Errorf("failed to list selections: %w", err)
	}
	if len(records) == 0 {
		fmt.Println("No saved selections.")
		return nil
	}

	res := resolver.New(cat)
	engine := pricing.New(cat)
	for _, rec := range records {
		sel := selection.FromRecord(rec, cat)
		state := "invalid"
		if res.IsSelectionValid(sel) {
			state = "valid"
		}
		fmt.Printf("%s  %-20s %d components  %-7s total %s\n",
			sel.ID, sel.Name, sel.Count(), state, engine.CalculateTotal(sel).StringFixed(2))
	}
	return nil
}

// RunDeleteSelection removes a saved selection by id.
func RunDeleteSelection(ctx context.Context, ds datastore.DataStore, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: delete-selection <selection-id>")
	}
	if err := ds.DeleteSelection(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to delete selection: %w", err)
	}
	fmt.Println("Selection deleted.")
	return nil
}
