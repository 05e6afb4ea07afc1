package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, `
sheet_id: abc123
tickers:
  - 2330.TW
  - 2317.TW
output:
  backend: noop
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SheetID != "abc123" {
		t.Errorf("expected sheet id abc123, got %q", cfg.SheetID)
	}
	if len(cfg.Tickers) != 2 || cfg.Tickers[0] != "2330.TW" {
		t.Errorf("unexpected tickers: %v", cfg.Tickers)
	}
	if cfg.Data.Source != "yahoo" || cfg.Data.Period != "1y" || cfg.Data.Interval != "1d" {
		t.Errorf("unexpected data defaults: %+v", cfg.Data)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
sheet_id: from-file
tickers: [AAPL]
`)
	t.Setenv("SHEET_ID", "from-env")
	t.Setenv("TICKERS", " MSFT , GOOG ,")
	t.Setenv("DATA_SOURCE", "stooq")
	t.Setenv("OUTPUT_BACKEND", "excel")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SheetID != "from-env" {
		t.Errorf("expected env override, got %q", cfg.SheetID)
	}
	if len(cfg.Tickers) != 2 || cfg.Tickers[0] != "MSFT" || cfg.Tickers[1] != "GOOG" {
		t.Errorf("unexpected tickers: %v", cfg.Tickers)
	}
	if cfg.Data.Source != "stooq" {
		t.Errorf("expected stooq source, got %q", cfg.Data.Source)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	t.Setenv("TICKERS", "AAPL")
	t.Setenv("OUTPUT_BACKEND", "noop")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no tickers", func(c *Config) { c.Tickers = nil }},
		{"bad source", func(c *Config) { c.Data.Source = "carrier-pigeon" }},
		{"bad backend", func(c *Config) { c.Output.Backend = "fax" }},
		{"sheets without id", func(c *Config) {
			c.Output.Backend = "sheets"
			c.SheetID = ""
			c.CredentialsJSON = []byte("{}")
		}},
		{"sheets without credentials", func(c *Config) {
			c.Output.Backend = "sheets"
			c.SheetID = "abc"
			c.CredentialsJSON = nil
		}},
	}
	for _, tt := range tests {
		cfg := &Config{
			SheetID: "abc",
			Tickers: []string{"AAPL"},
		}
		cfg.Data.Source = "yahoo"
		cfg.Output.Backend = "noop"
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}
