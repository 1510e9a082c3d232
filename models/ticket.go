package models

// TicketType is a pricing/feature tier multiplying the event's base price.
// The three tiers are static per event and recomputed from event.Price.Min.
type TicketType struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Color       string   `json:"color"`
}
