package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	SheetID string   `yaml:"sheet_id"`
	Tickers []string `yaml:"tickers"`
	Data    struct {
		Source   string `yaml:"source"`   // yahoo | stooq | mock
		Period   string `yaml:"period"`   // e.g. 1y
		Interval string `yaml:"interval"` // e.g. 1d
	} `yaml:"data"`
	Output struct {
		Backend    string `yaml:"backend"` // sheets | excel | noop
		ExportPath string `yaml:"export_path"`
	} `yaml:"output"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`

	// CredentialsJSON is the service-account payload. Environment only,
	// never read from the YAML file.
	CredentialsJSON []byte `yaml:"-"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A .env file is honored when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SHEET_ID"); v != "" {
		cfg.SheetID = v
	}
	if v := os.Getenv("TICKERS"); v != "" {
		cfg.Tickers = splitTickers(v)
	}
	if v := os.Getenv("DATA_SOURCE"); v != "" {
		cfg.Data.Source = v
	}
	if v := os.Getenv("DATA_PERIOD"); v != "" {
		cfg.Data.Period = v
	}
	if v := os.Getenv("DATA_INTERVAL"); v != "" {
		cfg.Data.Interval = v
	}
	if v := os.Getenv("OUTPUT_BACKEND"); v != "" {
		cfg.Output.Backend = v
	}
	if v := os.Getenv("EXPORT_PATH"); v != "" {
		cfg.Output.ExportPath = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"); v != "" {
		cfg.CredentialsJSON = []byte(v)
	}

	// Defaults
	if cfg.Data.Source == "" {
		cfg.Data.Source = "yahoo"
	}
	if cfg.Data.Period == "" {
		cfg.Data.Period = "1y"
	}
	if cfg.Data.Interval == "" {
		cfg.Data.Interval = "1d"
	}
	if cfg.Output.Backend == "" {
		cfg.Output.Backend = "sheets"
	}
	if cfg.Output.ExportPath == "" {
		cfg.Output.ExportPath = "report.xlsx"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if len(c.Tickers) == 0 {
		return fmt.Errorf("tickers list is required")
	}
	switch c.Data.Source {
	case "yahoo", "stooq", "mock":
	default:
		return fmt.Errorf("unknown data source %q", c.Data.Source)
	}
	switch c.Output.Backend {
	case "sheets":
		if c.SheetID == "" {
			return fmt.Errorf("sheet_id is required for the sheets backend")
		}
		if len(c.CredentialsJSON) == 0 {
			return fmt.Errorf("GOOGLE_SERVICE_ACCOUNT_JSON is required for the sheets backend")
		}
	case "excel", "noop":
	default:
		return fmt.Errorf("unknown output backend %q", c.Output.Backend)
	}
	return nil
}

func splitTickers(v string) []string {
	var tickers []string
	for _, t := range strings.Split(v, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tickers = append(tickers, t)
		}
	}
	return tickers
}
