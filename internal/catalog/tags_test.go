package catalog

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestTagSet_SubsetOf(t *testing.T) {
	if !NewTagSet().SubsetOf(NewTagSet("a")) {
		t.Error("empty set should be a subset of everything")
	}
	if !NewTagSet("a", "b").SubsetOf(NewTagSet("a", "b", "c")) {
		t.Error("expected subset")
	}
	if NewTagSet("a", "d").SubsetOf(NewTagSet("a", "b", "c")) {
		t.Error("expected not a subset")
	}
}

func TestTagSet_DisjointWith(t *testing.T) {
	if !NewTagSet("a").DisjointWith(NewTagSet("b", "c")) {
		t.Error("expected disjoint")
	}
	if NewTagSet("a", "b").DisjointWith(NewTagSet("b")) {
		t.Error("expected overlap")
	}
	if !NewTagSet().DisjointWith(NewTagSet("a")) {
		t.Error("empty set is disjoint with everything")
	}
}

func TestTagSet_JSONRoundTrip(t *testing.T) {
	original := NewTagSet("din", "rail", "indoor")

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `["din","indoor","rail"]` {
		t.Errorf("expected sorted array encoding, got %s", data)
	}

	var decoded TagSet
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(original, decoded) {
		t.Errorf("round trip mismatch: %v vs %v", original, decoded)
	}
}

func TestCategoryStepOrderIsStrictlyIncreasing(t *testing.T) {
	cats := AllCategories()
	for i := 1; i < len(cats); i++ {
		if cats[i-1].StepOrder() >= cats[i].StepOrder() {
			t.Errorf("step order not increasing between %s and %s", cats[i-1], cats[i])
		}
	}
}

func TestParseCategory(t *testing.T) {
	cases := map[string]Category{
		"base":    CategoryBase,
		"Housing": CategoryHousing,
		"SENSOR":  CategorySensor,
	}
	for input, want := range cases {
		got, ok := ParseCategory(input)
		if !ok || got != want {
			t.Errorf("ParseCategory(%q) = %q, %v; want %q", input, got, ok, want)
		}
	}
	if _, ok := ParseCategory("warp-drive"); ok {
		t.Error("unknown category should not parse")
	}
}
