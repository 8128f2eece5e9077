package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"freightquote/internal/logging"
)

type Config struct {
	RateSheetPath string
	RateCardName  string
	StrictRates   bool

	LogLevel  string
	LogFormat string
	LogOutput string

	OutputDir        string
	ReprocessWorkers int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		RateSheetPath: getEnv("RATE_SHEET_PATH", ""),
		RateCardName:  getEnv("RATE_CARD_NAME", ""),
		StrictRates:   getEnvBool("STRICT_RATES", false),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
		LogOutput: getEnv("LOG_OUTPUT", "stderr"),

		OutputDir:        getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),
		ReprocessWorkers: getEnvInt("REPROCESS_WORKERS", 4),
	}
	if cfg.ReprocessWorkers < 1 {
		cfg.ReprocessWorkers = 1
	}
	return cfg, nil
}

func (c Config) Logging() logging.Config {
	return logging.Config{Level: c.LogLevel, Format: c.LogFormat, Output: c.LogOutput}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}
