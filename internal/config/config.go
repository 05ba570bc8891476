package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	FulfillmentBaseURL string
	FulfillmentTimeout time.Duration
	JWTSecret          string
	AllowedOrigin      string
	CheckoutRateLimit  int
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		FulfillmentBaseURL: getEnvOrDefault("FULFILLMENT_BASE_URL", "http://localhost:9000"),
		FulfillmentTimeout: getDurationEnv("FULFILLMENT_TIMEOUT", 15, time.Second),
		JWTSecret:          getEnvOrDefault("JWT_SECRET", ""),
		AllowedOrigin:      getEnvOrDefault("ALLOWED_ORIGIN", "*"),
		CheckoutRateLimit:  getIntEnv("CHECKOUT_RATE_LIMIT", 5),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
