package models

type SeatType string

const (
	SeatTypePremium  SeatType = "premium"
	SeatTypeStandard SeatType = "standard"
	SeatTypeEconomy  SeatType = "economy"
	SeatTypeVIP      SeatType = "vip"
)

type Seat struct {
	ID          string   `json:"id"` // row + number, e.g. "C7"
	Row         string   `json:"row"`
	Number      int      `json:"number"`
	Type        SeatType `json:"type"`
	Price       float64  `json:"price"`
	IsAvailable bool     `json:"is_available"`
	IsSelected  bool     `json:"is_selected"`
}

// SeatTypeForRow maps a row letter to its seat tier: rows A-C are premium,
// D-F standard, everything after that economy.
func SeatTypeForRow(row string) SeatType {
	switch {
	case row <= "C":
		return SeatTypePremium
	case row <= "F":
		return SeatTypeStandard
	default:
		return SeatTypeEconomy
	}
}
