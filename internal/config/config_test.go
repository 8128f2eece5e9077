package config

import "testing"

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RATE_SHEET_PATH", "/etc/rates.json")
	t.Setenv("STRICT_RATES", "yes")
	t.Setenv("REPROCESS_WORKERS", "0")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RateSheetPath != "/etc/rates.json" || !cfg.StrictRates {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.ReprocessWorkers != 1 {
		t.Fatalf("workers=%d", cfg.ReprocessWorkers)
	}
	if cfg.Logging().Format != "json" {
		t.Fatalf("logging=%+v", cfg.Logging())
	}
}

func TestEnvFallbacks(t *testing.T) {
	t.Setenv("REPROCESS_WORKERS", "many")
	t.Setenv("STRICT_RATES", "perhaps")
	if got := getEnvInt("REPROCESS_WORKERS", 4); got != 4 {
		t.Fatalf("int fallback=%d", got)
	}
	if getEnvBool("STRICT_RATES", false) {
		t.Fatalf("bool fallback should be false")
	}
}
