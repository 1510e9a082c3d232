package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ticket-booking/config"
	"ticket-booking/data"
	"ticket-booking/handlers"
	"ticket-booking/logger"
	"ticket-booking/monitoring"
	"ticket-booking/services"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Environment)
	monitor := monitoring.NewMonitor()

	// Services
	catalogService := services.NewCatalogService(data.Events())
	pricingService := services.NewPricingService(cfg)
	seatService := services.NewSeatService(catalogService, pricingService, cfg, monitor, log)
	bookingService := services.NewBookingService(catalogService, pricingService, &services.LogIntegrations{Logger: log}, monitor, log)
	paymentService := services.NewPaymentService(bookingService, cfg, monitor, log)
	sessionService := services.NewSessionService(cfg, log)

	// Handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService, pricingService)
	seatHandler := handlers.NewSeatHandler(seatService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	sessionHandler := handlers.NewSessionHandler(sessionService)

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMw.Recover())
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	}))

	// App sessions
	e.POST("/api/sessions", sessionHandler.Start)
	e.GET("/api/sessions/:sessionId", sessionHandler.GetSession)
	e.POST("/api/sessions/:sessionId/advance", sessionHandler.Advance)
	e.DELETE("/api/sessions/:sessionId", sessionHandler.Close)

	// Catalog
	e.GET("/api/events", catalogHandler.ListEvents)
	e.GET("/api/events/:eventId", catalogHandler.GetEvent)
	e.GET("/api/events/:eventId/ticket-types", catalogHandler.GetTicketTypes)

	// Seat map
	e.POST("/api/events/:eventId/seat-sessions", seatHandler.CreateSession)
	e.GET("/api/seat-sessions/:sessionId", seatHandler.GetSession)
	e.POST("/api/seat-sessions/:sessionId/toggle", seatHandler.ToggleSeat)
	e.POST("/api/seat-sessions/:sessionId/review", seatHandler.Review)
	e.DELETE("/api/seat-sessions/:sessionId", seatHandler.CloseSession)

	// Booking review & confirmation records
	e.POST("/api/bookings/review", bookingHandler.Review)
	e.GET("/api/bookings", bookingHandler.ListBookings)
	e.GET("/api/bookings/:bookingId", bookingHandler.GetBooking)
	e.POST("/api/bookings/:bookingId/download", bookingHandler.DownloadTickets)
	e.POST("/api/bookings/:bookingId/calendar", bookingHandler.AddToCalendar)
	e.POST("/api/bookings/:bookingId/share", bookingHandler.ShareBooking)

	// Payment
	e.GET("/api/payment-methods", paymentHandler.ListMethods)
	e.POST("/api/payments", paymentHandler.CreateSession)
	e.GET("/api/payments/:sessionId", paymentHandler.GetSession)
	e.POST("/api/payments/:sessionId/method", paymentHandler.SelectMethod)
	e.POST("/api/payments/:sessionId/card", paymentHandler.SetCardDetails)
	e.POST("/api/payments/:sessionId/submit", paymentHandler.Submit)
	e.DELETE("/api/payments/:sessionId", paymentHandler.CloseSession)

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	if cfg.EnableMetrics {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	// Start server
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()
	log.Info("server started", "port", cfg.Port, "environment", cfg.Environment)

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	log.Info("shutdown signal received, cleaning up")

	paymentService.Close()
	sessionService.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", "error", err)
	}
}
