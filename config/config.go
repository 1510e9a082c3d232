package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server configuration
	Port        string
	Environment string

	// Pipeline timing
	SplashDelay            time.Duration
	PaymentProcessingDelay time.Duration

	// Seat map configuration
	SeatRows             string
	SeatsPerRow          int
	SeatAvailabilityRate float64
	MaxSeatsPerBooking   int

	// Pricing configuration
	ServiceFeeRate float64
	TaxRate        float64

	// Monitoring
	EnableMetrics bool
}

func Load() *Config {
	// Missing .env is fine; the defaults below cover local runs.
	_ = godotenv.Load()

	return &Config{
		// Server
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		// Timing
		SplashDelay:            getEnvAsDuration("SPLASH_DELAY", "2500ms"),
		PaymentProcessingDelay: getEnvAsDuration("PAYMENT_PROCESSING_DELAY", "3s"),

		// Seat map
		SeatRows:             getEnv("SEAT_ROWS", "ABCDEFGH"),
		SeatsPerRow:          getEnvAsInt("SEATS_PER_ROW", 10),
		SeatAvailabilityRate: getEnvAsFloat("SEAT_AVAILABILITY_RATE", 0.7),
		MaxSeatsPerBooking:   getEnvAsInt("MAX_SEATS_PER_BOOKING", 6),

		// Pricing
		ServiceFeeRate: getEnvAsFloat("SERVICE_FEE_RATE", 0.10),
		TaxRate:        getEnvAsFloat("TAX_RATE", 0.08),

		// Monitoring
		EnableMetrics: getEnvAsBool("ENABLE_METRICS", true),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	// If parsing fails, fall back to the default value
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
