package catalog

import "fmt"

// Category groups modules by subject area.
type Category string

const (
	CategoryFoundation    Category = "foundation"
	CategoryDocumentation Category = "documentation"
	CategoryDigital       Category = "digital"
	CategoryFinancial     Category = "financial"
	CategoryHealthcare    Category = "healthcare"
	CategoryCommunication Category = "communication"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryFoundation,
		CategoryDocumentation,
		CategoryDigital,
		CategoryFinancial,
		CategoryHealthcare,
		CategoryCommunication,
	}
}

// CategoryDisplayName returns a human-readable name for a category.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategoryFoundation:
		return "Foundation"
	case CategoryDocumentation:
		return "Documentation"
	case CategoryDigital:
		return "Digital"
	case CategoryFinancial:
		return "Financial"
	case CategoryHealthcare:
		return "Healthcare"
	case CategoryCommunication:
		return "Communication"
	default:
		return string(c)
	}
}

// Module is a self-contained learning unit.
type Module struct {
	ID             string
	Title          string
	Description    string
	Slug           string
	Order          int
	EstimatedHours float64
	Required       bool
	Category       Category
	Lessons        int
	Competency     string
}

// EstimatedTime renders EstimatedHours the way the dashboard shows it.
func (m Module) EstimatedTime() string {
	mins := int(m.EstimatedHours*60 + 0.5)
	switch {
	case mins < 60:
		return fmt.Sprintf("%d minutes", mins)
	case mins == 60:
		return "1 hour"
	case mins%60 == 0:
		return fmt.Sprintf("%d hours", mins/60)
	default:
		return fmt.Sprintf("%dh %dm", mins/60, mins%60)
	}
}
