package catalog

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// catalog holds the module list with precomputed indices.
type catalog struct {
	modules []Module
	byID    map[string]*Module
}

// c is the package-level catalog, set by init() in seed.go.
var c *catalog

func buildCatalog(modules []Module) *catalog {
	sorted := slices.Clone(modules)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	cat := &catalog{
		modules: sorted,
		byID:    make(map[string]*Module, len(sorted)),
	}
	for i := range cat.modules {
		cat.byID[cat.modules[i].ID] = &cat.modules[i]
	}
	return cat
}

// All returns every module in display order.
func All() []Module {
	return slices.Clone(c.modules)
}

// Get returns the module with the given ID.
func Get(id string) (Module, error) {
	m, ok := c.byID[id]
	if !ok {
		return Module{}, fmt.Errorf("module %q not found", id)
	}
	return *m, nil
}

// Title returns the module title, or the ID itself for unknown modules.
func Title(id string) string {
	if m, ok := c.byID[id]; ok {
		return m.Title
	}
	return id
}

// Lookup resolves ids to modules in the given order, skipping unknown IDs.
func Lookup(ids []string) []Module {
	out := make([]Module, 0, len(ids))
	for _, id := range ids {
		if m, ok := c.byID[id]; ok {
			out = append(out, *m)
		}
	}
	return out
}

// Missing returns the IDs not present in the catalog.
func Missing(ids []string) []string {
	var out []string
	for _, id := range ids {
		if _, ok := c.byID[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

// Required returns the modules flagged as required, in display order.
func Required() []Module {
	var out []Module
	for _, m := range c.modules {
		if m.Required {
			out = append(out, m)
		}
	}
	return out
}

// ByCategory returns the modules in a category.
func ByCategory(cat Category) []Module {
	var out []Module
	for _, m := range c.modules {
		if m.Category == cat {
			out = append(out, m)
		}
	}
	return out
}

// TotalHours sums the estimated hours of the given modules.
func TotalHours(modules []Module) float64 {
	var h float64
	for _, m := range modules {
		h += m.EstimatedHours
	}
	return h
}

// Validate checks the built-in catalog.
func Validate() error {
	return validateModules(c.modules)
}

func validateModules(modules []Module) error {
	var errs []string

	ids := make(map[string]bool, len(modules))
	slugs := make(map[string]bool, len(modules))
	orders := make(map[int]bool, len(modules))
	for _, m := range modules {
		if m.ID == "" {
			errs = append(errs, "module with empty ID")
		}
		if ids[m.ID] {
			errs = append(errs, fmt.Sprintf("duplicate module ID: %q", m.ID))
		}
		ids[m.ID] = true
		if slugs[m.Slug] {
			errs = append(errs, fmt.Sprintf("duplicate module slug: %q", m.Slug))
		}
		slugs[m.Slug] = true
		if orders[m.Order] {
			errs = append(errs, fmt.Sprintf("module %q: duplicate order %d", m.ID, m.Order))
		}
		orders[m.Order] = true
		if m.Lessons <= 0 {
			errs = append(errs, fmt.Sprintf("module %q: lessons must be > 0, got %d", m.ID, m.Lessons))
		}
		if m.EstimatedHours <= 0 {
			errs = append(errs, fmt.Sprintf("module %q: estimated hours must be > 0", m.ID))
		}
		if !slices.Contains(AllCategories(), m.Category) {
			errs = append(errs, fmt.Sprintf("module %q: unknown category %q", m.ID, m.Category))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("module catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
