// Package data holds the static event catalog. The catalog is read-only;
// no pipeline stage mutates it.
package data

import (
	"ticket-booking/models"
)

func Events() []models.Event {
	return []models.Event{
		{
			ID:             "1",
			Title:          "Midnight Jazz Session",
			Description:    "An intimate late-night jazz experience featuring the city's finest quartet.",
			Date:           "2026-10-03",
			Time:           "21:00",
			Venue:          "Blue Note Hall",
			Location:       "New York",
			Image:          "https://images.example.com/events/midnight-jazz.jpg",
			Category:       models.CategoryConcert,
			Price:          models.PriceRange{Min: 100, Max: 250},
			AvailableSeats: 180,
			TotalSeats:     220,
		},
		{
			ID:             "2",
			Title:          "Summer Electronic Festival",
			Description:    "Three stages, forty artists, one unforgettable weekend of electronic music.",
			Date:           "2026-07-18",
			Time:           "14:00",
			Venue:          "Riverside Park",
			Location:       "Austin",
			Image:          "https://images.example.com/events/summer-electronic.jpg",
			Category:       models.CategoryFestival,
			Price:          models.PriceRange{Min: 150, Max: 400},
			AvailableSeats: 4200,
			TotalSeats:     5000,
		},
		{
			ID:             "3",
			Title:          "City Derby Finals",
			Description:    "The two local rivals meet for the championship decider.",
			Date:           "2026-09-12",
			Time:           "19:30",
			Venue:          "Metropolitan Stadium",
			Location:       "Chicago",
			Image:          "https://images.example.com/events/city-derby.jpg",
			Category:       models.CategorySports,
			Price:          models.PriceRange{Min: 75, Max: 300},
			AvailableSeats: 12500,
			TotalSeats:     40000,
		},
		{
			ID:             "4",
			Title:          "Hamlet Reimagined",
			Description:    "A bold modern staging of Shakespeare's classic tragedy.",
			Date:           "2026-11-05",
			Time:           "19:00",
			Venue:          "Grand Theater",
			Location:       "Boston",
			Image:          "https://images.example.com/events/hamlet.jpg",
			Category:       models.CategoryTheater,
			Price:          models.PriceRange{Min: 60, Max: 180},
			AvailableSeats: 310,
			TotalSeats:     450,
		},
		{
			ID:             "5",
			Title:          "Stand-Up Night Live",
			Description:    "Five headline comedians, one stage, zero mercy.",
			Date:           "2026-08-22",
			Time:           "20:30",
			Venue:          "The Laugh Factory",
			Location:       "Los Angeles",
			Image:          "https://images.example.com/events/standup-night.jpg",
			Category:       models.CategoryComedy,
			Price:          models.PriceRange{Min: 45, Max: 120},
			AvailableSeats: 95,
			TotalSeats:     150,
		},
		{
			ID:             "6",
			Title:          "Future of Tech Summit",
			Description:    "Two days of talks and workshops on AI, cloud, and product engineering.",
			Date:           "2026-10-20",
			Time:           "09:00",
			Venue:          "Convention Center",
			Location:       "San Francisco",
			Image:          "https://images.example.com/events/tech-summit.jpg",
			Category:       models.CategoryConference,
			Price:          models.PriceRange{Min: 200, Max: 600},
			AvailableSeats: 800,
			TotalSeats:     1200,
		},
		{
			ID:             "7",
			Title:          "Symphony Under the Stars",
			Description:    "The philharmonic orchestra performs an open-air program of film scores.",
			Date:           "2026-06-27",
			Time:           "20:00",
			Venue:          "Amphitheater Gardens",
			Location:       "Denver",
			Image:          "https://images.example.com/events/symphony-stars.jpg",
			Category:       models.CategoryConcert,
			Price:          models.PriceRange{Min: 80, Max: 220},
			AvailableSeats: 950,
			TotalSeats:     1400,
		},
		{
			ID:             "8",
			Title:          "Harvest Food & Music Festival",
			Description:    "Local bands and food trucks take over the old harbor for the weekend. Expect funk, folk and a little jazz.",
			Date:           "2026-09-26",
			Time:           "12:00",
			Venue:          "Harbor Grounds",
			Location:       "Portland",
			Image:          "https://images.example.com/events/harvest-festival.jpg",
			Category:       models.CategoryFestival,
			Price:          models.PriceRange{Min: 35, Max: 90},
			AvailableSeats: 2100,
			TotalSeats:     3000,
		},
	}
}
