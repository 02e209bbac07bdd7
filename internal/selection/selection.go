// Package selection holds the user's in-progress choice of at most one
// component per category.
//
// A Selection is the one mutable object in the configurator. The resolver
// reads and writes its category slots; pricing and quoting only read it.
// Callers must serialize access to a given Selection: the package provides
// no internal locking.
package selection

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"assembly-config-poc/internal/catalog"
)

// Selection maps each category to at most one chosen component.
type Selection struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time

	slots map[catalog.Category]catalog.Component
}

// New creates an empty named selection.
func New(name string) *Selection {
	now := time.Now()
	return &Selection{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
		slots:     make(map[catalog.Category]catalog.Component),
	}
}

// Select places the component in its category slot, replacing any prior
// occupant. A category never holds two components.
func (s *Selection) Select(comp catalog.Component) {
	s.slots[comp.Category] = comp
	s.UpdatedAt = time.Now()
}

// Remove clears the slot for the category. Removing an empty slot is a no-op.
func (s *Selection) Remove(cat catalog.Category) {
	if _, ok := s.slots[cat]; !ok {
		return
	}
	delete(s.slots, cat)
	s.UpdatedAt = time.Now()
}

// Clear empties every slot.
func (s *Selection) Clear() {
	s.slots = make(map[catalog.Category]catalog.Component)
	s.UpdatedAt = time.Now()
}

// Component returns the occupant of the category slot, if any.
func (s *Selection) Component(cat catalog.Category) (catalog.Component, bool) {
	comp, ok := s.slots[cat]
	return comp, ok
}

// Has reports whether the category slot is occupied.
func (s *Selection) Has(cat catalog.Category) bool {
	_, ok := s.slots[cat]
	return ok
}

// HasBase reports whether a base component has been chosen. Nothing else may
// be selected before a base exists.
func (s *Selection) HasBase() bool {
	return s.Has(catalog.CategoryBase)
}

// Count returns the number of occupied slots.
func (s *Selection) Count() int {
	return len(s.slots)
}

// IsEmpty reports whether no component has been selected.
func (s *Selection) IsEmpty() bool {
	return len(s.slots) == 0
}

// Components returns the selected components ordered by category step order.
func (s *Selection) Components() []catalog.Component {
	out := make([]catalog.Component, 0, len(s.slots))
	for _, comp := range s.slots {
		out = append(out, comp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Category.StepOrder() < out[j].Category.StepOrder()
	})
	return out
}

// ComponentIDs returns the selected component ids in step order.
func (s *Selection) ComponentIDs() []string {
	comps := s.Components()
	out := make([]string, 0, len(comps))
	for _, comp := range comps {
		out = append(out, comp.ID)
	}
	return out
}

// Categories returns the occupied categories in step order.
func (s *Selection) Categories() []catalog.Category {
	comps := s.Components()
	out := make([]catalog.Category, 0, len(comps))
	for _, comp := range comps {
		out = append(out, comp.Category)
	}
	return out
}
