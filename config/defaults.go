package config

import (
	"github.com/etnz/folio"
	"github.com/etnz/folio/quote"
)

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Files: FilesConfig{
			Ledger: "transactions.jsonl",
			Quotes: "quotes.json",
		},
		Currency: "INR",
		Display: DisplayConfig{
			Symbol: true,
		},
		Projection: ProjectionConfig{
			Years:          10,
			InflationRate:  folio.DefaultInflationRate,
			FallbackReturn: folio.DefaultFallbackReturn,
		},
		Quotes: QuotesConfig{
			Paths: quote.DefaultPaths,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}
