// Package config loads the pft configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/etnz/folio/quote"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	Files      FilesConfig      `toml:"files"`
	Currency   string           `toml:"currency"` // reporting currency
	Display    DisplayConfig    `toml:"display"`
	Projection ProjectionConfig `toml:"projection"`
	Quotes     QuotesConfig     `toml:"quotes"`
	Logging    LoggingConfig    `toml:"logging"`
}

// FilesConfig locates the persisted state.
type FilesConfig struct {
	Ledger string `toml:"ledger"` // JSONL transactions
	Quotes string `toml:"quotes"` // JSON ticker snapshot
}

// DisplayConfig holds the presentation toggles.
type DisplayConfig struct {
	Privacy bool `toml:"privacy"`
	Symbol  bool `toml:"symbol"`
}

// ProjectionConfig holds the forecast assumptions.
type ProjectionConfig struct {
	Years          int     `toml:"years"`
	Monthly        float64 `toml:"monthly"` // monthly contribution
	InflationRate  float64 `toml:"inflation_rate"`
	FallbackReturn float64 `toml:"fallback_return"`
}

// QuotesConfig configures the quote endpoint.
type QuotesConfig struct {
	URL   string      `toml:"url"`   // %s is replaced by the symbol
	Paths quote.Paths `toml:"paths"` // JSONPath expression of each ticker field
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
// A missing file is not an error.
func LoadFromFile(path string) (*Config, error) {
	config := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	applyEnvOverrides(config)

	return config, config.Validate()
}

// Validate checks the values that cannot be repaired.
func (c *Config) Validate() error {
	var errs []error
	if c.Currency == "" {
		errs = append(errs, errors.New("currency is empty"))
	}
	if c.Projection.Years <= 0 {
		errs = append(errs, fmt.Errorf("projection years must be positive: %d", c.Projection.Years))
	}
	if c.Projection.InflationRate <= -1 {
		errs = append(errs, fmt.Errorf("inflation rate must be greater than -1: %v", c.Projection.InflationRate))
	}
	if c.Projection.FallbackReturn <= -1 {
		errs = append(errs, fmt.Errorf("fallback return must be greater than -1: %v", c.Projection.FallbackReturn))
	}
	return errors.Join(errs...)
}

// Encode writes the configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

// applyEnvOverrides applies FOLIO_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("FOLIO_LEDGER"); v != "" {
		config.Files.Ledger = v
	}
	if v := os.Getenv("FOLIO_QUOTES"); v != "" {
		config.Files.Quotes = v
	}
	if v := os.Getenv("FOLIO_CURRENCY"); v != "" {
		config.Currency = v
	}
	if v := os.Getenv("FOLIO_PRIVACY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.Display.Privacy = b
		}
	}
	if v := os.Getenv("FOLIO_SYMBOL"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.Display.Symbol = b
		}
	}
	if v := os.Getenv("FOLIO_YEARS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Projection.Years = n
		}
	}
	if v := os.Getenv("FOLIO_MONTHLY"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			config.Projection.Monthly = f
		}
	}
	if v := os.Getenv("FOLIO_INFLATION_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			config.Projection.InflationRate = f
		}
	}
	if v := os.Getenv("FOLIO_FALLBACK_RETURN"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			config.Projection.FallbackReturn = f
		}
	}
	if v := os.Getenv("FOLIO_QUOTES_URL"); v != "" {
		config.Quotes.URL = v
	}
	if v := os.Getenv("FOLIO_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
}

// Overrides holds command-line values; zero values leave the config as is.
type Overrides struct {
	Ledger   string
	Quotes   string
	Currency string
	Privacy  bool
	Symbol   bool
	LogLevel string
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, o Overrides) {
	if o.Ledger != "" {
		config.Files.Ledger = o.Ledger
	}
	if o.Quotes != "" {
		config.Files.Quotes = o.Quotes
	}
	if o.Currency != "" {
		config.Currency = o.Currency
	}
	if o.Privacy {
		config.Display.Privacy = true
	}
	if o.Symbol {
		config.Display.Symbol = true
	}
	if o.LogLevel != "" {
		config.Logging.Level = o.LogLevel
	}
}
