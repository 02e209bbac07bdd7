// Package datastore supplies the core's collaborators: the catalog source
// and persistence for saved selections and quotes.
//
// The core itself never touches storage. It receives a loaded catalog and
// selection snapshots; everything durable lives behind the DataStore
// interface, with a PostgreSQL implementation for real deployments and a
// JSON file-backed mock for local runs and tests.
package datastore

import (
	"context"

	"assembly-config-poc/internal/catalog"
	"assembly-config-poc/internal/quote"
	"assembly-config-poc/internal/selection"
)

// DataStore defines all data access operations. Both the PostgreSQL store
// and the JSON mock store implement it.
type DataStore interface {
	// Lifecycle
	Close() error

	// Catalog operations. The catalog is loaded wholesale; there is no
	// incremental update contract.
	LoadCatalog(ctx context.Context) (*catalog.Catalog, error)

	// Selection operations
	SaveSelection(ctx context.Context, rec selection.Record) error
	GetSelection(ctx context.Context, id string) (*selection.Record, error)
	ListSelections(ctx context.Context) ([]selection.Record, error)
	DeleteSelection(ctx context.Context, id string) error

	// Quote operations
	SaveQuote(ctx context.Context, q quote.Quote) error
	GetQuote(ctx context.Context, id string) (*quote.Quote, error)
	ListQuotesForUser(ctx context.Context, userID string) ([]quote.Quote, error)

	// Schema and seed management (no-ops for the mock store)
	InitDB(ctx context.Context) error
	SeedCatalog(ctx context.Context) error
}

// Type represents the kind of data store to use.
type Type string

const (
	// PostgreSQLStore uses a real PostgreSQL database.
	PostgreSQLStore Type = "postgresql"
	// MockStore uses JSON files on disk.
	MockStore Type = "mock"
)

// Config holds configuration for data store creation.
type Config struct {
	Type             Type
	ConnectionString string
	MockDataPath     string
}

// NewDataStore creates a data store from configuration.
func NewDataStore(config Config) (DataStore, error) {
	switch config.Type {
	case PostgreSQLStore:
		return NewPostgresStore(config.ConnectionString)
	case MockStore:
		return NewMockStore(config.MockDataPath), nil
	default:
		return nil, &UnsupportedStoreTypeError{Type: string(config.Type)}
	}
}

// UnsupportedStoreTypeError is returned when an unsupported store type is
// requested.
type UnsupportedStoreTypeError struct {
	Type string
}

func (e *UnsupportedStoreTypeError) Error() string {
	return "unsupported store type: " + e.Type
}
