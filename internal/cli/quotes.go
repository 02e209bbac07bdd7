package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"assembly-config-poc/internal/datastore"
	"assembly-config-poc/internal/pricing"
	"assembly-config-poc/internal/quote"
)

// CreateQuoteCommand creates the create-quote command.
func CreateQuoteCommand(ds datastore.DataStore) *cobra.Command {
	var (
		userID    string
		validDays int
		notes     string
	)

	cmd := &cobra.Command{
		Use:   "create-quote <component-id...>",
		Short: "Create a time-bounded quote from a selection",
		Long: `Price the given components and snapshot the result into a quote.

The quote embeds component names and prices rather than live catalog
references, so it stays valid even if the catalog changes later.

Examples:
  ./acp create-quote base-001 mount-001 --user alice
  ./acp create-quote base-002 house-003 --user bob --valid-days 14 --notes "rush job"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cat, err := ds.LoadCatalog(ctx)
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			sel, err := buildSelection(cat, "cli", args)
			if err != nil {
				return err
			}
			if err := ds.SaveSelection(ctx, sel.ToRecord()); err != nil {
				return fmt.Errorf("failed to save selection: %w", err)
			}

			factory := quote.NewFactory(pricing.New(cat), nil)
			q := factory.CreateQuote(sel, userID, quote.Options{
				ValidDays: validDays,
				Notes:     notes,
			})
			if err := ds.SaveQuote(ctx, q); err != nil {
				return fmt.Errorf("failed to save quote: %w", err)
			}

			fmt.Printf("Created quote %s for %s\n", q.ID, q.UserID)
			fmt.Printf("  Total:       %s\n", q.Bill.Total.StringFixed(2))
			fmt.Printf("  Valid until: %s\n", q.ValidUntil.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User id to attach the quote to")
	cmd.Flags().IntVar(&validDays, "valid-days", quote.DefaultValidDays, "Days the quote remains valid")
	cmd.Flags().StringVar(&notes, "notes", "", "Free text notes to attach")
	cmd.MarkFlagRequired("user")

	return cmd
}

// RunCreateQuote adapts the cobra command to the dispatcher.
func RunCreateQuote(ctx context.Context, ds datastore.DataStore, args []string) error {
	cmd := CreateQuoteCommand(ds)
	cmd.SetContext(ctx)
	cmd.SetArgs(args)
	return cmd.Execute()
}

// RunListQuotes prints a user's quotes with their effective status.
func RunListQuotes(ctx context.Context, ds datastore.DataStore, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: list-quotes <user-id>")
	}

	quotes, err := ds.ListQuotesForUser(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to list quotes: %w", err)
	}
	if len(quotes) == 0 {
		fmt.Println("No quotes found.")
		return nil
	}

	now := time.Now()
	for _, q := range quotes {
		fmt.Printf("%s  %-9s %12s  valid until %s\n",
			q.ID, quote.EffectiveStatus(q, now), q.Bill.Total.StringFixed(2),
			q.ValidUntil.Format("2006-01-02"))
	}
	return nil
}
