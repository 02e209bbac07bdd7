package cli

import (
	"context"
	"fmt"

	"assembly-config-poc/internal/datastore"
	"assembly-config-poc/internal/pricing"
)

// RunPrice generates and prints a bill of materials for the given component
// ids.
func RunPrice(ctx context.Context, ds datastore.DataStore, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: price <component-id...>")
	}

	cat, err := ds.LoadCatalog(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	sel, err := buildSelection(cat, "cli", args)
	if err != nil {
		return err
	}

	engine := pricing.New(cat)
	bill := engine.GenerateBill(sel)

	for _, item := range bill.Items {
		fmt.Printf("  %-30s x%d %12s\n", item.ComponentName, item.Quantity, item.TotalPrice.StringFixed(2))
	}
	fmt.Printf("Subtotal: %s\n", bill.Subtotal.StringFixed(2))
	for _, adj := range bill.Adjustments {
		fmt.Printf("  %-30s    %12s\n", adj.RuleName, adj.Amount.StringFixed(2))
	}
	fmt.Printf("Total:    %s\n", bill.Total.StringFixed(2))
	return nil
}
