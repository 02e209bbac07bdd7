package datastore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"assembly-config-poc/internal/catalog"
	"assembly-config-poc/internal/quote"
	"assembly-config-poc/internal/selection"

	"github.com/shopspring/decimal"
)

func TestMockStore_MissingFilesAreRecoverable(t *testing.T) {
	store := NewMockStore(t.TempDir())
	ctx := context.Background()

	cat, err := store.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if len(cat.Components()) != 24 {
		t.Errorf("expected seed catalog fallback, got %d components", len(cat.Components()))
	}

	selections, err := store.ListSelections(ctx)
	if err != nil {
		t.Fatalf("ListSelections failed: %v", err)
	}
	if len(selections) != 0 {
		t.Errorf("expected empty saved list, got %d", len(selections))
	}

	quotes, err := store.ListQuotesForUser(ctx, "anyone")
	if err != nil {
		t.Fatalf("ListQuotesForUser failed: %v", err)
	}
	if len(quotes) != 0 {
		t.Errorf("expected no quotes, got %d", len(quotes))
	}
}

func TestMockStore_SeedCatalogWritesFile(t *testing.T) {
	dir := t.TempDir()
	store := NewMockStore(dir)
	ctx := context.Background()

	if err := store.SeedCatalog(ctx); err != nil {
		t.Fatalf("SeedCatalog failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "catalog.json")); err != nil {
		t.Fatalf("catalog.json not written: %v", err)
	}

	cat, err := store.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	comp, ok := cat.ComponentByID("house-003")
	if !ok {
		t.Fatal("house-003 missing after catalog round trip")
	}
	if !comp.BasePrice.Equal(decimal.RequireFromString("1480.00")) {
		t.Errorf("price lost precision through JSON: %s", comp.BasePrice)
	}
	if !comp.CompatibilityTags.Contains("climate") {
		t.Error("tags lost through JSON round trip")
	}
	if len(cat.PricingRules()) != len(catalog.SeedPricingRules()) {
		t.Errorf("pricing rules lost through round trip")
	}
}

func TestMockStore_SelectionLifecycle(t *testing.T) {
	store := NewMockStore(t.TempDir())
	ctx := context.Background()

	rec := selection.Record{
		ID:         "sel-1",
		Name:       "bench rig",
		Components: map[string]string{"base": "base-001"},
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
		UpdatedAt:  time.Now().UTC().Truncate(time.Second),
	}
	if err := store.SaveSelection(ctx, rec); err != nil {
		t.Fatalf("SaveSelection failed: %v", err)
	}

	got, err := store.GetSelection(ctx, "sel-1")
	if err != nil {
		t.Fatalf("GetSelection failed: %v", err)
	}
	if got == nil || got.Name != "bench rig" || got.Components["base"] != "base-001" {
		t.Errorf("unexpected record: %+v", got)
	}

	missing, err := store.GetSelection(ctx, "nope")
	if err != nil || missing != nil {
		t.Errorf("missing selection should be (nil, nil), got %+v, %v", missing, err)
	}

	if err := store.DeleteSelection(ctx, "sel-1"); err != nil {
		t.Fatalf("DeleteSelection failed: %v", err)
	}
	if err := store.DeleteSelection(ctx, "sel-1"); err != nil {
		t.Errorf("deleting a missing selection should be a no-op, got %v", err)
	}
	after, _ := store.ListSelections(ctx)
	if len(after) != 0 {
		t.Errorf("expected empty list after delete, got %d", len(after))
	}
}

func TestMockStore_QuotesFilteredByUser(t *testing.T) {
	store := NewMockStore(t.TempDir())
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	for i, userID := range []string{"alice", "bob", "alice"} {
		q := quote.Quote{
			ID:         string(rune('a'+i)) + "-quote",
			UserID:     userID,
			Status:     quote.StatusDraft,
			CreatedAt:  now.Add(time.Duration(i) * time.Minute),
			ValidUntil: now.AddDate(0, 0, 30),
			Bill: quote.BOM{
				Subtotal: decimal.NewFromInt(100),
				Total:    decimal.NewFromInt(100),
			},
		}
		if err := store.SaveQuote(ctx, q); err != nil {
			t.Fatalf("SaveQuote failed: %v", err)
		}
	}

	quotes, err := store.ListQuotesForUser(ctx, "alice")
	if err != nil {
		t.Fatalf("ListQuotesForUser failed: %v", err)
	}
	if len(quotes) != 2 {
		t.Fatalf("expected 2 quotes for alice, got %d", len(quotes))
	}
	// Newest first.
	if !quotes[0].CreatedAt.After(quotes[1].CreatedAt) {
		t.Error("quotes not sorted newest first")
	}

	got, err := store.GetQuote(ctx, "a-quote")
	if err != nil || got == nil {
		t.Fatalf("GetQuote failed: %+v, %v", got, err)
	}
	missing, err := store.GetQuote(ctx, "zzz")
	if err != nil || missing != nil {
		t.Errorf("missing quote should be (nil, nil), got %+v, %v", missing, err)
	}
}
