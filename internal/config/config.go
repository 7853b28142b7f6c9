package config

import (
	"os"
	"strconv"

	"github.com/Ayushgupta-MERN/trading-bots/internal/signal"
)

// Config carries the environment-level settings for a signal engine run.
// Engine parameters have flag-level overrides; environment values act as
// the baseline.
type Config struct {
	Environment string
	LogLevel    string

	Market struct {
		Symbol   string
		Interval string
	}

	Engine signal.Config

	Monitoring struct {
		Enabled        bool
		PrometheusPort int
		HealthPort     int
	}
}

// Load reads configuration from the environment with documented defaults
func Load() *Config {
	cfg := &Config{
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Engine: signal.Config{
			ATRPeriod:           getEnvInt("ATR_PERIOD", 10),
			ATRMultiplier:       getEnvFloat("ATR_MULTIPLIER", 3.0),
			UseDualConfirmation: getEnvBool("DUAL_CONFIRMATION", true),
		},
	}

	cfg.Market.Symbol = getEnv("SYMBOL", "BTCUSDT")
	cfg.Market.Interval = getEnv("INTERVAL", "1d")

	cfg.Monitoring.Enabled = getEnvBool("MONITORING_ENABLED", false)
	cfg.Monitoring.PrometheusPort = getEnvInt("PROMETHEUS_PORT", 8080)
	cfg.Monitoring.HealthPort = getEnvInt("HEALTH_PORT", 8081)

	return cfg
}

// Validate checks the engine parameters eagerly so a bad environment
// fails before any data is loaded
func (c *Config) Validate() error {
	return c.Engine.Validate()
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}
