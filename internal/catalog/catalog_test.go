package catalog

import (
	"strings"
	"testing"
)

func TestAll_Count(t *testing.T) {
	all := All()
	if len(all) != 6 {
		t.Fatalf("got %d modules, want 6", len(all))
	}
	for i, m := range all {
		if m.Order != i+1 {
			t.Errorf("module %s at index %d has order %d", m.ID, i, m.Order)
		}
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	all[0].Title = "changed"
	if Title("module-1") != "Understanding Your Legacy" {
		t.Error("All() exposed the internal slice")
	}
}

func TestGet(t *testing.T) {
	m, err := Get("module-4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Title != "Financial Accounts & Assets" {
		t.Errorf("title = %q", m.Title)
	}
	if m.Lessons != 7 {
		t.Errorf("lessons = %d, want 7", m.Lessons)
	}

	if _, err := Get("module-99"); err == nil {
		t.Error("expected error for unknown module")
	}
}

func TestTitle_PassesThroughUnknown(t *testing.T) {
	if got := Title("module-99"); got != "module-99" {
		t.Errorf("Title(module-99) = %q, want passthrough", got)
	}
}

func TestLookupAndMissing(t *testing.T) {
	ids := []string{"module-3", "bogus", "module-1"}
	got := Lookup(ids)
	if len(got) != 2 || got[0].ID != "module-3" || got[1].ID != "module-1" {
		t.Errorf("Lookup = %v", got)
	}
	missing := Missing(ids)
	if len(missing) != 1 || missing[0] != "bogus" {
		t.Errorf("Missing = %v, want [bogus]", missing)
	}
}

func TestRequiredAndCategory(t *testing.T) {
	if n := len(Required()); n != 4 {
		t.Errorf("required = %d, want 4", n)
	}
	for _, cat := range AllCategories() {
		if len(ByCategory(cat)) != 1 {
			t.Errorf("category %s: want exactly one module", cat)
		}
		if CategoryDisplayName(cat) == string(cat) {
			t.Errorf("category %s has no display name", cat)
		}
	}
}

func TestTotalHours(t *testing.T) {
	if got := TotalHours(All()); got != 4.5 {
		t.Errorf("total hours = %v, want 4.5", got)
	}
}

func TestEstimatedTime(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0.5, "30 minutes"},
		{0.75, "45 minutes"},
		{1.0, "1 hour"},
		{2.0, "2 hours"},
		{1.5, "1h 30m"},
	}
	for _, tt := range tests {
		if got := (Module{EstimatedHours: tt.hours}).EstimatedTime(); got != tt.want {
			t.Errorf("EstimatedTime(%v) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}

func TestValidate_SeedPasses(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("seed catalog validation failed: %v", err)
	}
}

func TestValidateModules_DetectsProblems(t *testing.T) {
	modules := []Module{
		{ID: "a", Slug: "a", Order: 1, Lessons: 1, EstimatedHours: 1, Category: CategoryDigital},
		{ID: "a", Slug: "a", Order: 1, Lessons: 0, EstimatedHours: 0, Category: "astrology"},
	}
	err := validateModules(modules)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"duplicate module ID", "duplicate module slug", "duplicate order", "lessons must be", "estimated hours", "unknown category"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %q, got: %v", want, err)
		}
	}
}
