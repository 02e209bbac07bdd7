package catalog

import (
	"encoding/json"
	"sort"
)

// TagSet is an unordered set of compatibility tag strings.
type TagSet map[string]struct{}

// NewTagSet builds a set from the given tags.
func NewTagSet(tags ...string) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// Contains reports whether tag is a member of the set.
func (s TagSet) Contains(tag string) bool {
	_, ok := s[tag]
	return ok
}

// SubsetOf reports whether every member of s is also in other.
// The empty set is a subset of everything.
func (s TagSet) SubsetOf(other TagSet) bool {
	for t := range s {
		if !other.Contains(t) {
			return false
		}
	}
	return true
}

// DisjointWith reports whether s and other share no members.
func (s TagSet) DisjointWith(other TagSet) bool {
	// Iterate the smaller side.
	a, b := s, other
	if len(b) < len(a) {
		a, b = b, a
	}
	for t := range a {
		if b.Contains(t) {
			return false
		}
	}
	return true
}

// Len returns the number of tags in the set.
func (s TagSet) Len() int {
	return len(s)
}

// Sorted returns the tags in ascending order, for stable output.
func (s TagSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON encodes the set as a sorted string array.
func (s TagSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes a string array into the set.
func (s *TagSet) UnmarshalJSON(data []byte) error {
	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return err
	}
	*s = NewTagSet(tags...)
	return nil
}
