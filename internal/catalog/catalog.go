// Package catalog loads the product list and holds it for the session.
//
// A Catalog fetches its Source once. A failed load leaves the catalog empty
// and records the error; nothing retries automatically and a partially
// valid document is rejected as a whole.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/phumgame/internal/logging"
	"github.com/dmitrijs2005/phumgame/internal/models"
)

// ErrLoadFailed wraps every catalog load failure.
var ErrLoadFailed = errors.New("failed to load products")

// ErrNotLoaded is returned by lookups before a successful Load.
var ErrNotLoaded = errors.New("catalog not loaded")

// Catalog is the in-memory product list.
type Catalog struct {
	src    Source
	logger logging.Logger

	products []models.Product
	index    map[int]int
	loaded   bool
	err      error
}

func New(src Source, logger logging.Logger) *Catalog {
	return &Catalog{src: src, logger: logger}
}

// Load fetches and validates the product list. After a success further
// calls do nothing. After a failure the catalog stays empty and Err
// reports the cause until the caller decides to Load again.
func (c *Catalog) Load(ctx context.Context) error {
	if c.loaded {
		return nil
	}

	products, err := c.src.Load(ctx)
	if err == nil {
		err = Validate(products)
	}
	if err != nil {
		c.err = fmt.Errorf("%w: %v", ErrLoadFailed, err)
		c.products, c.index = nil, nil
		c.logger.Error(ctx, "catalog load failed", "error", err)
		return c.err
	}

	c.index = make(map[int]int, len(products))
	for i, p := range products {
		c.index[p.ID] = i
	}
	c.products = products
	c.loaded = true
	c.err = nil

	c.logger.Info(ctx, "catalog loaded", "products", len(products))
	return nil
}

// Loaded reports whether a Load has succeeded.
func (c *Catalog) Loaded() bool { return c.loaded }

// Err returns the last load error, if any.
func (c *Catalog) Err() error { return c.err }

// Products returns a copy of the full product list in source order.
func (c *Catalog) Products() []models.Product {
	return slices.Clone(c.products)
}

// Find looks a product up by id.
func (c *Catalog) Find(id int) (models.Product, error) {
	if !c.loaded {
		return models.Product{}, ErrNotLoaded
	}
	i, ok := c.index[id]
	if !ok {
		return models.Product{}, fmt.Errorf("product %d: %w", id, ErrProductNotFound)
	}
	return c.products[i], nil
}

// ErrProductNotFound is returned by Find for unknown ids.
var ErrProductNotFound = errors.New("product not found")

// Categories returns the distinct categories, sorted.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range c.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	slices.Sort(out)
	return out
}
