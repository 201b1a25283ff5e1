package config

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/dmitrijs2005/phumgame/internal/flagx"
)

// Duration unmarshals from either a Go duration string ("3s") or an integer
// number of nanoseconds.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return errors.New("invalid duration")
	}
}

// JsonConfig is the on-disk shape of the config file. Pointer fields tell
// "absent" apart from zero values so only present keys override.
type JsonConfig struct {
	DataDir        *string   `json:"data_dir"`
	StoreDriver    *string   `json:"store_driver"`
	DatabaseDSN    *string   `json:"database_dsn"`
	CatalogSource  *string   `json:"catalog_source"`
	FetchTimeout   *Duration `json:"fetch_timeout"`
	S3Region       *string   `json:"s3_region"`
	S3BaseEndpoint *string   `json:"s3_base_endpoint"`
	S3AccessKey    *string   `json:"s3_access_key"`
	S3SecretKey    *string   `json:"s3_secret_key"`
	SessionSecret  *string   `json:"session_secret"`
	SessionTTL     *Duration `json:"session_ttl"`
	TaxRate        *float64  `json:"tax_rate"`
	ShippingFee    *float64  `json:"shipping_fee"`
	Locale         *string   `json:"locale"`
	LogLevel       *string   `json:"log_level"`
	LogFormat      *string   `json:"log_format"`
}

// parseJson overlays cfg with the JSON file named by -c/-config in args.
// Without such a flag it does nothing. Read or decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.DataDir, jc.DataDir)
	setString(&cfg.StoreDriver, jc.StoreDriver)
	setString(&cfg.DatabaseDSN, jc.DatabaseDSN)
	setString(&cfg.CatalogSource, jc.CatalogSource)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)
	setString(&cfg.SessionSecret, jc.SessionSecret)
	setString(&cfg.Locale, jc.Locale)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)

	if jc.FetchTimeout != nil {
		cfg.FetchTimeout = jc.FetchTimeout.Duration
	}
	if jc.SessionTTL != nil {
		cfg.SessionTTL = jc.SessionTTL.Duration
	}
	if jc.TaxRate != nil {
		cfg.TaxRate = *jc.TaxRate
	}
	if jc.ShippingFee != nil {
		cfg.ShippingFee = *jc.ShippingFee
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
