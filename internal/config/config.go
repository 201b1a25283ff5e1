package config

import (
	"os"
	"time"
)

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds runtime settings for the storefront.
//
// Money values (TaxRate, ShippingFee) use the catalog's currency units.
type Config struct {
	DataDir     string `env:"PHUM_DATA_DIR"`
	StoreDriver string `env:"PHUM_STORE_DRIVER"`
	DatabaseDSN string `env:"PHUM_DATABASE_DSN"`

	CatalogSource  string        `env:"PHUM_CATALOG_SOURCE"`
	FetchTimeout   time.Duration `env:"PHUM_FETCH_TIMEOUT"`
	S3Region       string        `env:"PHUM_S3_REGION"`
	S3BaseEndpoint string        `env:"PHUM_S3_BASE_ENDPOINT"`
	S3AccessKey    string        `env:"PHUM_S3_ACCESS_KEY"`
	S3SecretKey    string        `env:"PHUM_S3_SECRET_KEY"`

	SessionSecret string        `env:"PHUM_SESSION_SECRET"`
	SessionTTL    time.Duration `env:"PHUM_SESSION_TTL"`

	TaxRate     float64 `env:"PHUM_TAX_RATE"`
	ShippingFee float64 `env:"PHUM_SHIPPING_FEE"`
	Locale      string  `env:"PHUM_LOCALE"`

	LogLevel  string `env:"PHUM_LOG_LEVEL"`
	LogFormat string `env:"PHUM_LOG_FORMAT"`
}

// LoadDefaults populates c with development defaults. SessionSecret stays
// empty so the accounts service generates a per-process secret.
func (c *Config) LoadDefaults() {
	c.DataDir = "data"
	c.StoreDriver = DriverSQLite
	c.DatabaseDSN = "storefront.db"
	c.CatalogSource = "products.json"
	c.FetchTimeout = 10 * time.Second
	c.S3Region = "us-east-1"
	c.SessionTTL = 24 * time.Hour
	c.TaxRate = 0.1
	c.ShippingFee = 5
	c.Locale = "en"
	c.LogLevel = "info"
	c.LogFormat = "slog"
}

// Load builds a Config from defaults, the JSON file named in args, the
// environment and finally the flags in args. It panics on malformed input.
func Load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}

// LoadConfig is Load over os.Args.
func LoadConfig() *Config {
	return Load(os.Args[1:])
}
