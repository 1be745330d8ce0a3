package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultApiBaseUrl     = "http://localhost:8000"
	DefaultWebUrl         = "http://localhost:5173"
	DefaultRequestTimeout = 30 * time.Second
	DefaultRedirectDelay  = 1500 * time.Millisecond
)

type Config struct {
	ApiBaseUrl     string
	WebUrl         string
	Env            string
	RequestTimeout time.Duration
	RedirectDelay  time.Duration
	Debug          bool
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// LoadConfig reads an optional .env file from the working directory and then
// the process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Println("Warning: failed to load .env file", err)
	}

	return &Config{
		ApiBaseUrl:     strings.TrimRight(getEnv("SOCIALCAL_API_BASE_URL", DefaultApiBaseUrl), "/"),
		WebUrl:         strings.TrimRight(getEnv("SOCIALCAL_WEB_URL", DefaultWebUrl), "/"),
		Env:            getEnv("SOCIALCAL_ENV", "production"),
		RequestTimeout: getDurationEnv("SOCIALCAL_REQUEST_TIMEOUT", DefaultRequestTimeout),
		RedirectDelay:  getDurationEnv("SOCIALCAL_REDIRECT_DELAY", DefaultRedirectDelay),
		Debug:          getBoolEnv("SOCIALCAL_DEBUG", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid duration for %s: %q, using %s\n", key, value, defaultValue)
		return defaultValue
	}
	return d
}

func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Warning: invalid bool for %s: %q, using %v\n", key, value, defaultValue)
		return defaultValue
	}
	return b
}
