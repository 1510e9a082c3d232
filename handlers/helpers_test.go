package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"ticket-booking/config"
	"ticket-booking/data"
	"ticket-booking/logger"
	"ticket-booking/monitoring"
	"ticket-booking/services"
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

type testHandlers struct {
	catalog *CatalogHandler
	seats   *SeatHandler
	booking *BookingHandler
	payment *PaymentHandler
	session *SessionHandler
}

func newTestHandlers(cfg *config.Config) *testHandlers {
	log := logger.Discard()
	monitor := monitoring.NewMonitor()

	catalogService := services.NewCatalogService(data.Events())
	pricingService := services.NewPricingService(cfg)
	seatService := services.NewSeatService(catalogService, pricingService, cfg, monitor, log)
	bookingService := services.NewBookingService(catalogService, pricingService, &services.LogIntegrations{Logger: log}, monitor, log)
	paymentService := services.NewPaymentService(bookingService, cfg, monitor, log)
	sessionService := services.NewSessionService(cfg, log)

	return &testHandlers{
		catalog: NewCatalogHandler(catalogService, pricingService),
		seats:   NewSeatHandler(seatService),
		booking: NewBookingHandler(bookingService),
		payment: NewPaymentHandler(paymentService),
		session: NewSessionHandler(sessionService),
	}
}

// newTestContext builds an echo context for a handler call. Path params are
// given as alternating name/value pairs.
func newTestContext(method, target, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	c := echo.New().NewContext(req, rec)
	names := make([]string, 0, len(params)/2)
	values := make([]string, 0, len(params)/2)
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c, rec
}

func httpStatus(err error) int {
	if httpErr, ok := err.(*echo.HTTPError); ok {
		return httpErr.Code
	}
	return http.StatusOK
}
