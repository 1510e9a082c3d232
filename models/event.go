package models

type EventCategory string

const (
	CategoryConcert    EventCategory = "concert"
	CategorySports     EventCategory = "sports"
	CategoryTheater    EventCategory = "theater"
	CategoryComedy     EventCategory = "comedy"
	CategoryConference EventCategory = "conference"
	CategoryFestival   EventCategory = "festival"
)

// CategoryAll is the quick-category selector value matching every event.
// It is not a valid Event.Category.
const CategoryAll = "all"

func (c EventCategory) Valid() bool {
	switch c {
	case CategoryConcert, CategorySports, CategoryTheater, CategoryComedy, CategoryConference, CategoryFestival:
		return true
	}
	return false
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type Event struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Date           string        `json:"date"`
	Time           string        `json:"time"`
	Venue          string        `json:"venue"`
	Location       string        `json:"location"`
	Image          string        `json:"image"`
	Category       EventCategory `json:"category"`
	Price          PriceRange    `json:"price"`
	AvailableSeats int           `json:"available_seats"`
	TotalSeats     int           `json:"total_seats"`
}

// SearchFilters is the structured filter applied on top of the free-text
// query and the quick-category selector. Nil/empty fields mean "not set".
type SearchFilters struct {
	Category   *EventCategory `json:"category,omitempty"`
	PriceRange *PriceRange    `json:"price_range,omitempty"`
	Location   string         `json:"location,omitempty"`
}
