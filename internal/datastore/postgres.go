package datastore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"assembly-config-poc/internal/catalog"
	"assembly-config-poc/internal/quote"
	"assembly-config-poc/internal/selection"
)

// PostgresStore implements DataStore on PostgreSQL via sqlx.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore opens a connection to the database and verifies it.
func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sqlx.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// NewPostgresStoreWithDB wraps an existing connection. Used by tests with
// sqlmock.
func NewPostgresStoreWithDB(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: sqlx.NewDb(db, "postgres")}
}

// Close releases the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS components (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    category TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    base_price NUMERIC(12,2) NOT NULL,
    specs JSONB NOT NULL DEFAULT '{}',
    compatibility_tags TEXT[] NOT NULL DEFAULT '{}',
    required_tags TEXT[] NOT NULL DEFAULT '{}'
);

CREATE TABLE IF NOT EXISTS compatibility_rules (
    id TEXT PRIMARY KEY,
    source_component_id TEXT NOT NULL,
    target_category TEXT NOT NULL,
    required_tags TEXT[] NOT NULL DEFAULT '{}',
    excluded_tags TEXT[] NOT NULL DEFAULT '{}',
    position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS pricing_rules (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    rule_type TEXT NOT NULL,
    condition JSONB NOT NULL,
    adjustment JSONB NOT NULL,
    position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS selections (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    components JSONB NOT NULL DEFAULT '{}',
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS quotes (
    id TEXT PRIMARY KEY,
    configuration_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    bill JSONB NOT NULL,
    status TEXT NOT NULL,
    valid_until TIMESTAMPTZ NOT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    notes TEXT NOT NULL DEFAULT ''
);
`

// InitDB creates the schema if it does not exist.
func (s *PostgresStore) InitDB(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaDDL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// SeedCatalog loads the sample catalog into the database, replacing whatever
// catalog rows are present. Catalog refresh is wholesale by design.
func (s *PostgresStore) SeedCatalog(ctx context.Context) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"components", "compatibility_rules", "pricing_rules"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, comp := range catalog.SeedComponents() {
		specs, err := json.Marshal(comp.Specs)
		if err != nil {
			return fmt.Errorf("failed to marshal specs for %s: %w", comp.ID, err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO components (id, name, category, description, base_price, specs, compatibility_tags, required_tags)
             VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			comp.ID, comp.Name, string(comp.Category), comp.Description, comp.BasePrice,
			specs, pq.Array(comp.CompatibilityTags.Sorted()), pq.Array(comp.RequiredTags.Sorted()))
		if err != nil {
			return fmt.Errorf("failed to insert component %s: %w", comp.ID, err)
		}
	}

	for i, rule := range catalog.SeedCompatibilityRules() {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO compatibility_rules (id, source_component_id, target_category, required_tags, excluded_tags, position)
             VALUES ($1, $2, $3, $4, $5, $6)`,
			rule.ID, rule.SourceComponentID, string(rule.TargetCategory),
			pq.Array(rule.RequiredTags.Sorted()), pq.Array(rule.ExcludedTags.Sorted()), i)
		if err != nil {
			return fmt.Errorf("failed to insert compatibility rule %s: %w", rule.ID, err)
		}
	}

	for i, rule := range catalog.SeedPricingRules() {
		condition, err := json.Marshal(rule.Condition)
		if err != nil {
			return fmt.Errorf("failed to marshal condition for %s: %w", rule.ID, err)
		}
		adjustment, err := json.Marshal(rule.Adjustment)
		if err != nil {
			return fmt.Errorf("failed to marshal adjustment for %s: %w", rule.ID, err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO pricing_rules (id, name, rule_type, condition, adjustment, position)
             VALUES ($1, $2, $3, $4, $5, $6)`,
			rule.ID, rule.Name, string(rule.Type), condition, adjustment, i)
		if err != nil {
			return fmt.Errorf("failed to insert pricing rule %s: %w", rule.ID, err)
		}
	}

	return tx.Commit()
}

type componentRow struct {
	ID                string          `db:"id"`
	Name              string          `db:"name"`
	Category          string          `db:"category"`
	Description       string          `db:"description"`
	BasePrice         decimal.Decimal `db:"base_price"`
	Specs             []byte          `db:"specs"`
	CompatibilityTags pq.StringArray  `db:"compatibility_tags"`
	RequiredTags      pq.StringArray  `db:"required_tags"`
}

type compatibilityRuleRow struct {
	ID                string         `db:"id"`
	SourceComponentID string         `db:"source_component_id"`
	TargetCategory    string         `db:"target_category"`
	RequiredTags      pq.StringArray `db:"required_tags"`
	ExcludedTags      pq.StringArray `db:"excluded_tags"`
	Position          int            `db:"position"`
}

type pricingRuleRow struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	RuleType   string `db:"rule_type"`
	Condition  []byte `db:"condition"`
	Adjustment []byte `db:"adjustment"`
	Position   int    `db:"position"`
}

// LoadCatalog reads the three catalog collections wholesale. Rule ordering
// follows the stored position columns so pricing keeps declaration order.
func (s *PostgresStore) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	var compRows []componentRow
	err := s.db.SelectContext(ctx, &compRows,
		`SELECT id, name, category, description, base_price, specs, compatibility_tags, required_tags
         FROM components ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load components: %w", err)
	}

	components := make([]catalog.Component, 0, len(compRows))
	for _, row := range compRows {
		var specs map[string]string
		if len(row.Specs) > 0 {
			if err := json.Unmarshal(row.Specs, &specs); err != nil {
				return nil, fmt.Errorf("failed to decode specs for %s: %w", row.ID, err)
			}
		}
		components = append(components, catalog.Component{
			ID:                row.ID,
			Name:              row.Name,
			Category:          catalog.Category(row.Category),
			Description:       row.Description,
			BasePrice:         row.BasePrice,
			Specs:             specs,
			CompatibilityTags: catalog.NewTagSet(row.CompatibilityTags...),
			RequiredTags:      catalog.NewTagSet(row.RequiredTags...),
		})
	}

	var ruleRows []compatibilityRuleRow
	err = s.db.SelectContext(ctx, &ruleRows,
		`SELECT id, source_component_id, target_category, required_tags, excluded_tags, position
         FROM compatibility_rules ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to load compatibility rules: %w", err)
	}

	compatRules := make([]catalog.CompatibilityRule, 0, len(ruleRows))
	for _, row := range ruleRows {
		compatRules = append(compatRules, catalog.CompatibilityRule{
			ID:                row.ID,
			SourceComponentID: row.SourceComponentID,
			TargetCategory:    catalog.Category(row.TargetCategory),
			RequiredTags:      catalog.NewTagSet(row.RequiredTags...),
			ExcludedTags:      catalog.NewTagSet(row.ExcludedTags...),
		})
	}

	var priceRows []pricingRuleRow
	err = s.db.SelectContext(ctx, &priceRows,
		`SELECT id, name, rule_type, condition, adjustment, position
         FROM pricing_rules ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to load pricing rules: %w", err)
	}

	pricingRules := make([]catalog.PricingRule, 0, len(priceRows))
	for _, row := range priceRows {
		var condition catalog.PricingCondition
		if err := json.Unmarshal(row.Condition, &condition); err != nil {
			return nil, fmt.Errorf("failed to decode condition for %s: %w", row.ID, err)
		}
		var adjustment catalog.PriceAdjustment
		if err := json.Unmarshal(row.Adjustment, &adjustment); err != nil {
			return nil, fmt.Errorf("failed to decode adjustment for %s: %w", row.ID, err)
		}
		pricingRules = append(pricingRules, catalog.PricingRule{
			ID:         row.ID,
			Name:       row.Name,
			Type:       catalog.PricingRuleType(row.RuleType),
			Condition:  condition,
			Adjustment: adjustment,
		})
	}

	return catalog.New(components, compatRules, pricingRules), nil
}

// SaveSelection upserts a selection record.
func (s *PostgresStore) SaveSelection(ctx context.Context, rec selection.Record) error {
	components, err := json.Marshal(rec.Components)
	if err != nil {
		return fmt.Errorf("failed to marshal selection components: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO selections (id, name, components, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5)
         ON CONFLICT (id) DO UPDATE SET name = $2, components = $3, updated_at = $5`,
		rec.ID, rec.Name, components, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save selection %s: %w", rec.ID, err)
	}
	return nil
}

// GetSelection fetches one selection record. A missing row returns (nil, nil)
// rather than an error: absent data is a recoverable state.
func (s *PostgresStore) GetSelection(ctx context.Context, id string) (*selection.Record, error) {
	var rec selection.Record
	var components []byte
	row := s.db.QueryRowxContext(ctx,
		`SELECT id, name, components, created_at, updated_at FROM selections WHERE id = $1`, id)
	err := row.Scan(&rec.ID, &rec.Name, &components, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load selection %s: %w", id, err)
	}
	if err := json.Unmarshal(components, &rec.Components); err != nil {
		return nil, fmt.Errorf("failed to decode selection components: %w", err)
	}
	return &rec, nil
}

// ListSelections returns every saved selection, most recently updated first.
func (s *PostgresStore) ListSelections(ctx context.Context) ([]selection.Record, error) {
	rows, err := s.db.QueryxContext(ctx,
		`SELECT id, name, components, created_at, updated_at FROM selections ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list selections: %w", err)
	}
	defer rows.Close()

	var out []selection.Record
	for rows.Next() {
		var rec selection.Record
		var components []byte
		if err := rows.Scan(&rec.ID, &rec.Name, &components, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan selection: %w", err)
		}
		if err := json.Unmarshal(components, &rec.Components); err != nil {
			return nil, fmt.Errorf("failed to decode selection components: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// DeleteSelection removes a selection record. Deleting a missing record is
// not an error.
func (s *PostgresStore) DeleteSelection(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM selections WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete selection %s: %w", id, err)
	}
	return nil
}

// SaveQuote stores a quote. Quotes are immutable once created, so this is a
// plain insert.
func (s *PostgresStore) SaveQuote(ctx context.Context, q quote.Quote) error {
	bill, err := json.Marshal(q.Bill)
	if err != nil {
		return fmt.Errorf("failed to marshal quote bill: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO quotes (id, configuration_id, user_id, bill, status, valid_until, created_at, notes)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		q.ID, q.ConfigurationID, q.UserID, bill, string(q.Status), q.ValidUntil, q.CreatedAt, q.Notes)
	if err != nil {
		return fmt.Errorf("failed to save quote %s: %w", q.ID, err)
	}
	return nil
}

// GetQuote fetches one quote. A missing row returns (nil, nil).
func (s *PostgresStore) GetQuote(ctx context.Context, id string) (*quote.Quote, error) {
	var q quote.Quote
	var bill []byte
	var status string
	row := s.db.QueryRowxContext(ctx,
		`SELECT id, configuration_id, user_id, bill, status, valid_until, created_at, notes
         FROM quotes WHERE id = $1`, id)
	err := row.Scan(&q.ID, &q.ConfigurationID, &q.UserID, &bill, &status, &q.ValidUntil, &q.CreatedAt, &q.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load quote %s: %w", id, err)
	}
	q.Status = quote.Status(status)
	if err := json.Unmarshal(bill, &q.Bill); err != nil {
		return nil, fmt.Errorf("failed to decode quote bill: %w", err)
	}
	return &q, nil
}

// ListQuotesForUser returns the user's quotes, newest first.
func (s *PostgresStore) ListQuotesForUser(ctx context.Context, userID string) ([]quote.Quote, error) {
	rows, err := s.db.QueryxContext(ctx,
		`SELECT id, configuration_id, user_id, bill, status, valid_until, created_at, notes
         FROM quotes WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	defer rows.Close()

	var out []quote.Quote
	for rows.Next() {
		var q quote.Quote
		var bill []byte
		var status string
		if err := rows.Scan(&q.ID, &q.ConfigurationID, &q.UserID, &bill, &status, &q.ValidUntil, &q.CreatedAt, &q.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		q.Status = quote.Status(status)
		if err := json.Unmarshal(bill, &q.Bill); err != nil {
			return nil, fmt.Errorf("failed to decode quote bill: %w", err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}
