// Package config loads runtime configuration for the storefront.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables prefixed with PHUM_.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-data string            directory for the local database
//	-driver string          store driver: memory, sqlite or postgres
//	-dsn string             database DSN (sqlite file name or postgres URL)
//	-catalog string         catalog source: file path, http(s) URL or s3://bucket/key
//	-fetch-timeout duration timeout for http(s) and S3 catalog sources
//	-locale string          locale used to order product names
//	-tax-rate float         tax rate applied to the cart subtotal
//	-shipping float         flat shipping fee for a non-empty cart
//	-log-level string       debug, info, warn or error
//	-log-format string      slog or zap
//	-session-ttl int        session lifetime in minutes
//
// Every flag may also be written with two dashes. S3 credentials and the
// session secret are not accepted as flags so they stay out of process
// listings; use the JSON file or PHUM_* variables. With no session secret a
// random one is generated per process, so sessions do not survive a restart.
//
// # JSON schema
//
// Durations are strings such as "30s" or integer nanoseconds:
//
//	{
//	  "store_driver": "sqlite",
//	  "catalog_source": "products.json",
//	  "session_ttl": "24h",
//	  "tax_rate": 0.1
//	}
package config
