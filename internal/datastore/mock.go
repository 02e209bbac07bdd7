package datastore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"assembly-config-poc/internal/catalog"
	"assembly-config-poc/internal/quote"
	"assembly-config-poc/internal/selection"
)

// mockStore implements DataStore on JSON files under a data directory. A
// missing catalog file falls back to the built-in seed catalog; missing
// selection or quote files mean empty saved lists. Deserialization problems
// surface as recoverable "no data" states, never as failures that would
// propagate into core computations.
type mockStore struct {
	dataPath string
}

// catalogFile is the on-disk shape of a catalog override.
type catalogFile struct {
	Components         []catalog.Component         `json:"components"`
	CompatibilityRules []catalog.CompatibilityRule `json:"compatibility_rules"`
	PricingRules       []catalog.PricingRule       `json:"pricing_rules"`
}

// NewMockStore creates a mock store rooted at the data directory.
func NewMockStore(dataPath string) *mockStore {
	return &mockStore{dataPath: dataPath}
}

// Close is a no-op for the file-backed store.
func (m *mockStore) Close() error { return nil }

// InitDB is a no-op: the data directory is created lazily on first write.
func (m *mockStore) InitDB(ctx context.Context) error { return nil }

// SeedCatalog writes the built-in seed catalog to disk so it can be edited.
func (m *mockStore) SeedCatalog(ctx context.Context) error {
	file := catalogFile{
		Components:         catalog.SeedComponents(),
		CompatibilityRules: catalog.SeedCompatibilityRules(),
		PricingRules:       catalog.SeedPricingRules(),
	}
	return m.writeFile("catalog.json", file)
}

// LoadCatalog reads the catalog override file, or returns the seed catalog
// when none exists.
func (m *mockStore) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	var file catalogFile
	ok, err := m.readFile("catalog.json", &file)
	if err != nil {
		return nil, err
	}
	if !ok {
		return catalog.SeedCatalog(), nil
	}
	return catalog.New(file.Components, file.CompatibilityRules, file.PricingRules), nil
}

// SaveSelection upserts the record in selections.json.
func (m *mockStore) SaveSelection(ctx context.Context, rec selection.Record) error {
	records, err := m.loadSelections()
	if err != nil {
		return err
	}
	records[rec.ID] = rec
	return m.writeFile("selections.json", records)
}

// GetSelection returns the record, or (nil, nil) when absent.
func (m *mockStore) GetSelection(ctx context.Context, id string) (*selection.Record, error) {
	records, err := m.loadSelections()
	if err != nil {
		return nil, err
	}
	rec, ok := records[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// ListSelections returns every saved selection, most recently updated first.
func (m *mockStore) ListSelections(ctx context.Context) ([]selection.Record, error) {
	records, err := m.loadSelections()
	if err != nil {
		return nil, err
	}
	out := make([]selection.Record, 0, len(records))
	for _, rec := range records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

// DeleteSelection removes the record. Deleting a missing record is a no-op.
func (m *mockStore) DeleteSelection(ctx context.Context, id string) error {
	records, err := m.loadSelections()
	if err != nil {
		return err
	}
	if _, ok := records[id]; !ok {
		return nil
	}
	delete(records, id)
	return m.writeFile("selections.json", records)
}

// SaveQuote appends the quote to quotes.json.
func (m *mockStore) SaveQuote(ctx context.Context, q quote.Quote) error {
	quotes, err := m.loadQuotes()
	if err != nil {
		return err
	}
	quotes = append(quotes, q)
	return m.writeFile("quotes.json", quotes)
}

// GetQuote returns the quote, or (nil, nil) when absent.
func (m *mockStore) GetQuote(ctx context.Context, id string) (*quote.Quote, error) {
	quotes, err := m.loadQuotes()
	if err != nil {
		return nil, err
	}
	for i := range quotes {
		if quotes[i].ID == id {
			return &quotes[i], nil
		}
	}
	return nil, nil
}

// ListQuotesForUser returns the user's quotes, newest first.
func (m *mockStore) ListQuotesForUser(ctx context.Context, userID string) ([]quote.Quote, error) {
	quotes, err := m.loadQuotes()
	if err != nil {
		return nil, err
	}
	var out []quote.Quote
	for _, q := range quotes {
		if q.UserID == userID {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *mockStore) loadSelections() (map[string]selection.Record, error) {
	records := make(map[string]selection.Record)
	if _, err := m.readFile("selections.json", &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (m *mockStore) loadQuotes() ([]quote.Quote, error) {
	var quotes []quote.Quote
	if _, err := m.readFile("quotes.json", &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

// readFile decodes the named JSON file into v. A missing file returns
// (false, nil) so callers can start from an empty state.
func (m *mockStore) readFile(name string, v interface{}) (bool, error) {
	data, err := os.ReadFile(filepath.Join(m.dataPath, name))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return true, nil
}

// writeFile encodes v to the named JSON file, creating the data directory if
// needed.
func (m *mockStore) writeFile(name string, v interface{}) error {
	if err := os.MkdirAll(m.dataPath, 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(m.dataPath, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
