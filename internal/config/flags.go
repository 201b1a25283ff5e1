package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/phumgame/internal/flagx"
)

var knownFlags = []string{
	"-data", "-driver", "-dsn", "-catalog", "-fetch-timeout", "-locale",
	"-tax-rate", "-shipping", "-log-level", "-log-format", "-session-ttl",
}

// parseFlags populates cfg from the flags in args it knows about (see the
// package doc). Unknown flags are filtered out before parsing so other
// layers can own them. Parse errors panic.
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "data", cfg.DataDir, "directory for the local database")
	fs.StringVar(&cfg.StoreDriver, "driver", cfg.StoreDriver, "store driver: memory, sqlite or postgres")
	fs.StringVar(&cfg.DatabaseDSN, "dsn", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.CatalogSource, "catalog", cfg.CatalogSource, "catalog source (path, URL or s3://bucket/key)")
	fs.DurationVar(&cfg.FetchTimeout, "fetch-timeout", cfg.FetchTimeout, "timeout for remote catalog sources")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for product name ordering")
	fs.Float64Var(&cfg.TaxRate, "tax-rate", cfg.TaxRate, "tax rate applied to the subtotal")
	fs.Float64Var(&cfg.ShippingFee, "shipping", cfg.ShippingFee, "flat shipping fee")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log backend: slog or zap")
	ttl := fs.Int("session-ttl", int(cfg.SessionTTL.Minutes()), "session lifetime (in minutes)")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "session-ttl" {
			cfg.SessionTTL = time.Duration(*ttl) * time.Minute
		}
	})
}
