package selection

import (
	"time"

	"assembly-config-poc/internal/catalog"
)

// Record is the persisted shape of a selection: component ids keyed by
// category, decoupled from live catalog objects. The datastore owns
// serialization of this shape.
type Record struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Components map[string]string `json:"components"` // category -> component id
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// ToRecord snapshots the selection for persistence.
func (s *Selection) ToRecord() Record {
	comps := make(map[string]string, len(s.slots))
	for cat, comp := range s.slots {
		comps[string(cat)] = comp.ID
	}
	return Record{
		ID:         s.ID,
		Name:       s.Name,
		Components: comps,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// FromRecord rehydrates a selection against the catalog. Component ids that
// no longer resolve are skipped rather than failing: a stale saved selection
// degrades to a smaller one.
func FromRecord(rec Record, cat *catalog.Catalog) *Selection {
	s := &Selection{
		ID:        rec.ID,
		Name:      rec.Name,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
		slots:     make(map[catalog.Category]catalog.Component, len(rec.Components)),
	}
	for _, id := range rec.Components {
		if comp, ok := cat.ComponentByID(id); ok {
			s.slots[comp.Category] = comp
		}
	}
	return s
}
