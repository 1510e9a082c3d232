package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"ticket-booking/config"
	"ticket-booking/models"
)

// defaultBasePrice stands in when an event carries no minimum price.
const defaultBasePrice = 100

var seatTypeMultipliers = map[models.SeatType]decimal.Decimal{
	models.SeatTypePremium:  decimal.NewFromFloat(1.5),
	models.SeatTypeStandard: decimal.NewFromInt(1),
	models.SeatTypeEconomy:  decimal.NewFromFloat(0.7),
}

var ticketTierMultipliers = []struct {
	id          string
	name        string
	multiplier  decimal.Decimal
	description string
	features    []string
	color       string
}{
	{
		id:          "1",
		name:        "General Admission",
		multiplier:  decimal.NewFromInt(1),
		description: "Standard event access",
		features:    []string{"Event access", "Digital ticket"},
		color:       "#3B82F6",
	},
	{
		id:          "2",
		name:        "VIP Experience",
		multiplier:  decimal.NewFromFloat(1.8),
		description: "Premium experience with perks",
		features:    []string{"Priority entry", "Welcome drink", "VIP lounge access", "Premium seating"},
		color:       "#F59E0B",
	},
	{
		id:          "3",
		name:        "Backstage Pass",
		multiplier:  decimal.NewFromFloat(2.5),
		description: "Ultimate fan experience",
		features:    []string{"All VIP benefits", "Meet & greet", "Backstage tour", "Exclusive merchandise"},
		color:       "#8B5CF6",
	},
}

// PricingService computes all derived prices in the pipeline. Every method
// is a pure function of its inputs; rounding is half away from zero and
// applied at each derived quantity independently.
type PricingService struct {
	serviceFeeRate decimal.Decimal
	taxRate        decimal.Decimal
}

func NewPricingService(cfg *config.Config) *PricingService {
	return &PricingService{
		serviceFeeRate: decimal.NewFromFloat(cfg.ServiceFeeRate),
		taxRate:        decimal.NewFromFloat(cfg.TaxRate),
	}
}

// SeatPrice derives a seat's price from the event base price and the
// seat's row tier.
func (s *PricingService) SeatPrice(basePrice float64, seatType models.SeatType) float64 {
	multiplier, ok := seatTypeMultipliers[seatType]
	if !ok {
		multiplier = decimal.NewFromInt(1)
	}

	price, _ := decimal.NewFromFloat(normalizeBase(basePrice)).Mul(multiplier).Round(0).Float64()
	return price
}

// TicketTypes builds the three static ticket tiers for an event, priced
// off the event's minimum price. Tier prices are not rounded.
func (s *PricingService) TicketTypes(event *models.Event) []models.TicketType {
	base := decimal.NewFromFloat(normalizeBase(event.Price.Min))

	tiers := make([]models.TicketType, 0, len(ticketTierMultipliers))
	for _, t := range ticketTierMultipliers {
		price, _ := base.Mul(t.multiplier).Float64()
		tiers = append(tiers, models.TicketType{
			ID:          t.id,
			Name:        t.name,
			Price:       price,
			Description: t.description,
			Features:    append([]string(nil), t.features...),
			Color:       t.color,
		})
	}
	return tiers
}

func (s *PricingService) TicketTypeByID(event *models.Event, id string) (models.TicketType, error) {
	if id == "" {
		return models.TicketType{}, models.ErrNoTicketType
	}
	for _, tier := range s.TicketTypes(event) {
		if tier.ID == id {
			return tier, nil
		}
	}
	return models.TicketType{}, fmt.Errorf("ticket type %q: %w", id, models.ErrTicketTypeNotFound)
}

// SelectionTotal prices a seat selection under a ticket tier:
// round(sum(seat prices) * tierPrice / basePrice). Seat-tier and
// ticket-tier pricing multiply off the same baseline rather than stacking.
func (s *PricingService) SelectionTotal(seats []models.Seat, tier models.TicketType, basePrice float64) float64 {
	sum := decimal.Zero
	for _, seat := range seats {
		sum = sum.Add(decimal.NewFromFloat(seat.Price))
	}

	multiplier := decimal.NewFromFloat(tier.Price).Div(decimal.NewFromFloat(normalizeBase(basePrice)))
	total, _ := sum.Mul(multiplier).Round(0).Float64()
	return total
}

// Breakdown computes the review-stage price breakdown. Service fee and
// taxes are each rounded before summation, so the total carries no
// deferred rounding.
func (s *PricingService) Breakdown(seatCount int, tierPrice float64) models.PriceBreakdown {
	subtotal := decimal.NewFromFloat(tierPrice).Mul(decimal.NewFromInt(int64(seatCount)))
	serviceFee := subtotal.Mul(s.serviceFeeRate).Round(0)
	taxes := subtotal.Mul(s.taxRate).Round(0)
	total := subtotal.Add(serviceFee).Add(taxes)

	sub, _ := subtotal.Float64()
	fee, _ := serviceFee.Float64()
	tax, _ := taxes.Float64()
	tot, _ := total.Float64()

	return models.PriceBreakdown{
		Subtotal:   sub,
		ServiceFee: fee,
		Taxes:      tax,
		Total:      tot,
	}
}

func normalizeBase(basePrice float64) float64 {
	if basePrice <= 0 {
		return defaultBasePrice
	}
	return basePrice
}
