package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"ticket-booking/models"
	"ticket-booking/services"
)

type CatalogHandler struct {
	catalog *services.CatalogService
	pricing *services.PricingService
}

func NewCatalogHandler(catalog *services.CatalogService, pricing *services.PricingService) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		pricing: pricing,
	}
}

// ListEvents applies the free-text query, the quick-category selector and
// the structured filters from query params. Applying a category filter
// also syncs the quick-category selector in the response.
func (h *CatalogHandler) ListEvents(c echo.Context) error {
	query := c.QueryParam("q")
	selectedCategory := c.QueryParam("category")
	if selectedCategory == "" {
		selectedCategory = models.CategoryAll
	}

	filters := parseFilters(c)
	selectedCategory = h.catalog.ApplyFilters(filters, selectedCategory)
	events := h.catalog.Filter(query, selectedCategory, filters)

	resp := map[string]any{
		"events":   events,
		"count":    len(events),
		"category": selectedCategory,
	}
	if len(events) == 0 {
		resp["empty_reason"] = h.catalog.EmptyReason(query)
		resp["recovery"] = "clear_filters"
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) GetEvent(c echo.Context) error {
	event, err := h.catalog.EventByID(c.Param("eventId"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, event)
}

// GetTicketTypes returns the three static tiers priced off the event.
func (h *CatalogHandler) GetTicketTypes(c echo.Context) error {
	event, err := h.catalog.EventByID(c.Param("eventId"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"event_id":     event.ID,
		"ticket_types": h.pricing.TicketTypes(event),
	})
}

func parseFilters(c echo.Context) models.SearchFilters {
	var filters models.SearchFilters

	if raw := c.QueryParam("filter_category"); raw != "" {
		category := models.EventCategory(raw)
		if category.Valid() {
			filters.Category = &category
		}
	}

	minRaw, maxRaw := c.QueryParam("price_min"), c.QueryParam("price_max")
	if minRaw != "" || maxRaw != "" {
		min, errMin := strconv.ParseFloat(minRaw, 64)
		max, errMax := strconv.ParseFloat(maxRaw, 64)
		if errMin == nil && errMax == nil {
			filters.PriceRange = &models.PriceRange{Min: min, Max: max}
		}
	}

	filters.Location = c.QueryParam("location")
	return filters
}
