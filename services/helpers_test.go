package services

import (
	"log/slog"
	"time"

	"ticket-booking/config"
	"ticket-booking/data"
	"ticket-booking/logger"
	"ticket-booking/models"
	"ticket-booking/monitoring"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:                   "0",
		Environment:            "test",
		SplashDelay:            20 * time.Millisecond,
		PaymentProcessingDelay: 20 * time.Millisecond,
		SeatRows:               "ABCDEFGH",
		SeatsPerRow:            10,
		SeatAvailabilityRate:   1.0,
		MaxSeatsPerBooking:     6,
		ServiceFeeRate:         0.10,
		TaxRate:                0.08,
	}
}

func newTestStack(cfg *config.Config) (*CatalogService, *PricingService, *SeatService, *BookingService, *PaymentService) {
	log := logger.Discard()
	monitor := monitoring.NewMonitor()

	catalog := NewCatalogService(data.Events())
	pricing := NewPricingService(cfg)
	seats := NewSeatService(catalog, pricing, cfg, monitor, log)
	booking := NewBookingService(catalog, pricing, &LogIntegrations{Logger: log}, monitor, log)
	payments := NewPaymentService(booking, cfg, monitor, log)

	return catalog, pricing, seats, booking, payments
}

func newTestStackLogger() *slog.Logger {
	return logger.Discard()
}

func newTestStackMonitor() *monitoring.Monitor {
	return monitoring.NewMonitor()
}

func validContact() models.ContactInfo {
	return models.ContactInfo{
		Name:  "Alice Example",
		Email: "alice@example.com",
		Phone: "555-0100",
	}
}
