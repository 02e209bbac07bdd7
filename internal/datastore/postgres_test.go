package datastore

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"assembly-config-poc/internal/quote"
	"assembly-config-poc/internal/selection"

	"github.com/shopspring/decimal"
)

func newTestStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPostgresStoreWithDB(db), mock
}

func TestLoadCatalog_PreservesRuleOrder(t *testing.T) {
	s, mock := newTestStore(t)

	componentRows := sqlmock.NewRows([]string{
		"id", "name", "category", "description", "base_price", "specs", "compatibility_tags", "required_tags",
	}).AddRow("base-001", "Standard Rail Platform", "base", "desc", "1250.00",
		[]byte(`{"width_mm":"600"}`), []byte("{din,rail}"), []byte("{}"))

	compatRows := sqlmock.NewRows([]string{
		"id", "source_component_id", "target_category", "required_tags", "excluded_tags", "position",
	}).AddRow("compat-001", "base-001", "mounting", []byte("{din}"), []byte("{}"), 0)

	pricingRows := sqlmock.NewRows([]string{
		"id", "name", "rule_type", "condition", "adjustment", "position",
	}).
		AddRow("price-002", "Second", "discount",
			[]byte(`{"requires_all":false}`), []byte(`{"type":"percentage","value":"-10"}`), 1).
		AddRow("price-001", "First", "surcharge",
			[]byte(`{"component_ids":["base-001"],"requires_all":false}`),
			[]byte(`{"type":"fixed_amount","value":"500"}`), 0)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, category, description, base_price, specs, compatibility_tags, required_tags
         FROM components ORDER BY id`)).WillReturnRows(componentRows)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, source_component_id, target_category, required_tags, excluded_tags, position
         FROM compatibility_rules ORDER BY position`)).WillReturnRows(compatRows)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, rule_type, condition, adjustment, position
         FROM pricing_rules ORDER BY position`)).WillReturnRows(pricingRows)

	cat, err := s.LoadCatalog(context.Background())
	if err != nil {
		t.Fatalf("LoadCatalog returned error: %v", err)
	}

	comp, ok := cat.ComponentByID("base-001")
	if !ok {
		t.Fatal("component not loaded")
	}
	if !comp.BasePrice.Equal(decimal.RequireFromString("1250.00")) {
		t.Errorf("unexpected price: %s", comp.BasePrice)
	}
	if !comp.CompatibilityTags.Contains("din") || !comp.CompatibilityTags.Contains("rail") {
		t.Errorf("tags not decoded: %v", comp.CompatibilityTags.Sorted())
	}

	rules := cat.PricingRules()
	if len(rules) != 2 {
		t.Fatalf("expected 2 pricing rules, got %d", len(rules))
	}
	// The rows arrive already ordered by position; declaration order must
	// survive into the catalog.
	if rules[0].ID != "price-002" || rules[1].ID != "price-001" {
		t.Errorf("rule order not preserved: %s, %s", rules[0].ID, rules[1].ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet sqlmock expectations: %v", err)
	}
}

func TestGetSelection_MissingRowIsNotAnError(t *testing.T) {
	s, mock := newTestStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, components, created_at, updated_at FROM selections WHERE id = $1`)).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "components", "created_at", "updated_at"}))

	rec, err := s.GetSelection(context.Background(), "nope")
	if err != nil {
		t.Fatalf("expected nil error for missing row, got %v", err)
	}
	if rec != nil {
		t.Errorf("expected nil record, got %+v", rec)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet sqlmock expectations: %v", err)
	}
}

func TestSaveSelection_Upserts(t *testing.T) {
	s, mock := newTestStore(t)

	rec := selection.Record{
		ID:         "sel-1",
		Name:       "bench rig",
		Components: map[string]string{"base": "base-001"},
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO selections (id, name, components, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5)
         ON CONFLICT (id) DO UPDATE SET name = $2, components = $3, updated_at = $5`)).
		WithArgs(rec.ID, rec.Name, sqlmock.AnyArg(), rec.CreatedAt, rec.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.SaveSelection(context.Background(), rec); err != nil {
		t.Fatalf("SaveSelection returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet sqlmock expectations: %v", err)
	}
}

func TestGetQuote_DecodesBill(t *testing.T) {
	s, mock := newTestStore(t)

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	bill := []byte(`{"subtotal":"1570","total":"2070","items":[{"id":"base-001","componentName":"Standard Rail Platform","quantity":1,"unitPrice":"1250","totalPrice":"1250"}]}`)

	rows := sqlmock.NewRows([]string{
		"id", "configuration_id", "user_id", "bill", "status", "valid_until", "created_at", "notes",
	}).AddRow("q-1", "sel-1", "alice", bill, "draft", created.AddDate(0, 0, 30), created, "")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, configuration_id, user_id, bill, status, valid_until, created_at, notes
         FROM quotes WHERE id = $1`)).
		WithArgs("q-1").
		WillReturnRows(rows)

	q, err := s.GetQuote(context.Background(), "q-1")
	if err != nil {
		t.Fatalf("GetQuote returned error: %v", err)
	}
	if q == nil {
		t.Fatal("expected quote, got nil")
	}
	if q.Status != quote.StatusDraft {
		t.Errorf("unexpected status: %s", q.Status)
	}
	if len(q.Bill.Items) != 1 || q.Bill.Items[0].ComponentName != "Standard Rail Platform" {
		t.Errorf("bill not decoded: %+v", q.Bill)
	}
	if !q.Bill.Total.Equal(decimal.RequireFromString("2070")) {
		t.Errorf("unexpected total: %s", q.Bill.Total)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet sqlmock expectations: %v", err)
	}
}
