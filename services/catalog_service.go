package services

import (
	"fmt"
	"strings"

	"ticket-booking/models"
)

// Empty-result reasons. The filter logic is identical for both; only the
// user-facing messaging differs.
const (
	EmptyReasonNoMatches     = "no_matches"
	EmptyReasonEmptyCategory = "empty_category"
)

// CatalogService serves the static event catalog and the filter predicate
// of the browse stage. It never mutates its events.
type CatalogService struct {
	events []models.Event
}

func NewCatalogService(events []models.Event) *CatalogService {
	return &CatalogService{events: events}
}

func (s *CatalogService) Events() []models.Event {
	return append([]models.Event(nil), s.events...)
}

func (s *CatalogService) EventByID(id string) (*models.Event, error) {
	for i := range s.events {
		if s.events[i].ID == id {
			event := s.events[i]
			return &event, nil
		}
	}
	return nil, fmt.Errorf("event %q: %w", id, models.ErrEventNotFound)
}

// Filter returns the events satisfying all of: the free-text query (case
// insensitive substring over title, description, venue and location), the
// quick-category selector, and the structured filters.
func (s *CatalogService) Filter(query, selectedCategory string, filters models.SearchFilters) []models.Event {
	q := strings.ToLower(query)

	matched := make([]models.Event, 0, len(s.events))
	for _, event := range s.events {
		if !matchesQuery(event, q) {
			continue
		}
		if selectedCategory != models.CategoryAll && string(event.Category) != selectedCategory {
			continue
		}
		if filters.Category != nil && event.Category != *filters.Category {
			continue
		}
		if filters.PriceRange != nil &&
			(event.Price.Min < filters.PriceRange.Min || event.Price.Max > filters.PriceRange.Max) {
			continue
		}
		if filters.Location != "" && event.Location != filters.Location {
			continue
		}
		matched = append(matched, event)
	}
	return matched
}

// ApplyFilters returns the quick-category selector after a structured
// filter is applied: a category filter overwrites the selector to keep the
// two in sync.
func (s *CatalogService) ApplyFilters(filters models.SearchFilters, selectedCategory string) string {
	if filters.Category != nil {
		return string(*filters.Category)
	}
	return selectedCategory
}

// EmptyReason distinguishes the two empty-result states: a query with no
// matches, or a category with no events at all.
func (s *CatalogService) EmptyReason(query string) string {
	if query != "" {
		return EmptyReasonNoMatches
	}
	return EmptyReasonEmptyCategory
}

func matchesQuery(event models.Event, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(event.Title), q) ||
		strings.Contains(strings.ToLower(event.Description), q) ||
		strings.Contains(strings.ToLower(event.Venue), q) ||
		strings.Contains(strings.ToLower(event.Location), q)
}
