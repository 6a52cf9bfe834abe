// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DataDir           string  // Base directory for the catalog database and cache (always absolute)
	Port              int     // HTTP server port
	LogLevel          string  // debug, info, warn, error
	DevMode           bool    // Enables pretty logging and verbose diagnostics
	RiskFreeRate      float64 // Annual risk-free rate used by Sharpe calculations
	RandomSeed        int64   // Base seed for all stochastic components
	CatalogMaxAgeDays int     // Catalog statistics older than this are regenerated
	CatalogCSVPath    string  // Optional CSV file to import the asset universe from
	SimWorkers        int     // Monte Carlo worker count (0 = NumCPU)
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	dataDir := getEnv("ETFOPT_DATA_DIR", "")
	if dataDir == "" {
		dataDir = "./data"
	}

	absDataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}

	if err := os.MkdirAll(absDataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg := &Config{
		DataDir:           absDataDir,
		Port:              getEnvAsInt("ETFOPT_PORT", 8080),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		DevMode:           getEnvAsBool("DEV_MODE", false),
		RiskFreeRate:      getEnvAsFloat("ETFOPT_RISK_FREE_RATE", 0.03),
		RandomSeed:        int64(getEnvAsInt("ETFOPT_RANDOM_SEED", 42)),
		CatalogMaxAgeDays: getEnvAsInt("ETFOPT_CATALOG_MAX_AGE_DAYS", 7),
		CatalogCSVPath:    getEnv("ETFOPT_CATALOG_CSV", ""),
		SimWorkers:        getEnvAsInt("ETFOPT_SIM_WORKERS", 0),
	}

	if cfg.RiskFreeRate < 0 || cfg.RiskFreeRate >= 1 {
		return nil, fmt.Errorf("invalid risk-free rate %.4f: must be in [0, 1)", cfg.RiskFreeRate)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvAsInt retrieves an environment variable as an integer or returns a fallback
func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getEnvAsFloat retrieves an environment variable as a float or returns a fallback
func getEnvAsFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return fallback
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a fallback
func getEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}
