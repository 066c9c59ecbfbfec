package domain

import (
	"errors"
	"fmt"
)

// Category identifies an appointment type with a fixed duration.
type Category string

const (
	CategoryGeneralConsultation    Category = "general_consultation"
	CategoryFollowUp               Category = "follow_up"
	CategoryPhysicalExam           Category = "physical_exam"
	CategorySpecialistConsultation Category = "specialist_consultation"
)

// ErrUnknownCategory is returned when a category string is not one of the
// four recognized appointment types.
var ErrUnknownCategory = errors.New("domain: unknown appointment category")

// CategoryInfo holds the static configuration of one appointment type.
type CategoryInfo struct {
	Category        Category
	DurationMinutes int
	Description     string
}

// Catalog is the immutable mapping of appointment categories to durations.
// It is built once at process start and is the single source of truth for
// slot length used by both availability and booking.
type Catalog struct {
	entries map[Category]CategoryInfo
	order   []Category
}

// DefaultCategoryInfos are the canonical appointment types of the clinic.
var DefaultCategoryInfos = []CategoryInfo{
	{
		Category:        CategoryGeneralConsultation,
		DurationMinutes: 30,
		Description:     "Standard consultation for new health concerns, chronic condition management, or general check-ups",
	},
	{
		Category:        CategoryFollowUp,
		DurationMinutes: 15,
		Description:     "Brief follow-up for ongoing treatment, test result review, or medication adjustment",
	},
	{
		Category:        CategoryPhysicalExam,
		DurationMinutes: 45,
		Description:     "Comprehensive annual physical examination including health screening and preventive care",
	},
	{
		Category:        CategorySpecialistConsultation,
		DurationMinutes: 60,
		Description:     "Extended consultation for complex conditions requiring specialist expertise",
	},
}

// NewCatalog builds a catalog from the given category infos.
// Entries with non-positive durations are rejected.
func NewCatalog(infos []CategoryInfo) (*Catalog, error) {
	if len(infos) == 0 {
		infos = DefaultCategoryInfos
	}

	c := &Catalog{
		entries: make(map[Category]CategoryInfo, len(infos)),
		order:   make([]Category, 0, len(infos)),
	}
	for _, info := range infos {
		if info.DurationMinutes <= 0 {
			return nil, fmt.Errorf("domain: category %q has non-positive duration %d", info.Category, info.DurationMinutes)
		}
		if _, exists := c.entries[info.Category]; exists {
			return nil, fmt.Errorf("domain: duplicate category %q", info.Category)
		}
		c.entries[info.Category] = info
		c.order = append(c.order, info.Category)
	}
	return c, nil
}

// MustDefaultCatalog returns the canonical catalog. Panics are impossible
// here because DefaultCategoryInfos is statically valid.
func MustDefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultCategoryInfos)
	if err != nil {
		panic(err)
	}
	return c
}

// DurationOf returns the fixed duration in minutes for a category.
func (c *Catalog) DurationOf(category Category) (int, error) {
	info, ok := c.entries[category]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return info.DurationMinutes, nil
}

// Info returns the full configuration of a category.
func (c *Catalog) Info(category Category) (CategoryInfo, error) {
	info, ok := c.entries[category]
	if !ok {
		return CategoryInfo{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return info, nil
}

// List returns all categories in their configured order.
func (c *Catalog) List() []CategoryInfo {
	infos := make([]CategoryInfo, 0, len(c.order))
	for _, cat := range c.order {
		infos = append(infos, c.entries[cat])
	}
	return infos
}

// ParseCategory validates a raw category string against the catalog.
func (c *Catalog) ParseCategory(s string) (Category, error) {
	cat := Category(s)
	if _, ok := c.entries[cat]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return cat, nil
}
