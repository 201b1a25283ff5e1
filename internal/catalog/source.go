package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/dmitrijs2005/phumgame/internal/config"
	"github.com/dmitrijs2005/phumgame/internal/models"
	"gopkg.in/yaml.v3"
)

// Source yields the raw product list. Implementations do not validate.
type Source interface {
	Load(ctx context.Context) ([]models.Product, error)
}

// Format is the encoding of a catalog document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf picks the format from the file extension of name; anything that
// is not .yaml or .yml is JSON.
func FormatOf(name string) Format {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses a catalog document.
func Decode(data []byte, f Format) ([]models.Product, error) {
	var products []models.Product

	switch f {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &products); err != nil {
			return nil, fmt.Errorf("decode yaml catalog: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &products); err != nil {
			return nil, fmt.Errorf("decode json catalog: %w", err)
		}
	}
	return products, nil
}

// NewSource builds the Source named by cfg.CatalogSource:
//
//	http://... or https://...  HTTPSource
//	s3://bucket/key            S3Source
//	anything else              FileSource
func NewSource(ctx context.Context, cfg *config.Config) (Source, error) {
	raw := cfg.CatalogSource
	if raw == "" {
		return nil, fmt.Errorf("catalog source is not configured")
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		// plain or windows drive path
		return &FileSource{Path: raw}, nil
	}

	switch u.Scheme {
	case "http", "https":
		return NewHTTPSource(raw, timeoutOr(cfg.FetchTimeout)), nil
	case "s3":
		key := strings.TrimPrefix(u.Path, "/")
		if u.Host == "" || key == "" {
			return nil, fmt.Errorf("invalid s3 catalog location %q", raw)
		}
		client, err := NewS3Client(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &S3Source{Bucket: u.Host, Key: key, Client: client}, nil
	case "file":
		return &FileSource{Path: u.Path}, nil
	default:
		return nil, fmt.Errorf("unsupported catalog scheme %q", u.Scheme)
	}
}

func timeoutOr(d time.Duration) time.Duration {
	if d <= 0 {
		return 10 * time.Second
	}
	return d
}
