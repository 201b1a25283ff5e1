// Package search is the product filter/sort pipeline.
//
// Every function here is pure: inputs are never mutated and the result is
// always a fresh slice. Search and category filtering commute; sorting is
// applied last.
package search

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dmitrijs2005/phumgame/internal/models"
)

// SortMode selects the ordering of a product view.
type SortMode string

const (
	SortDefault   SortMode = ""
	SortPriceLow  SortMode = "price-low"
	SortPriceHigh SortMode = "price-high"
	SortName      SortMode = "name"
)

// CategoryAll disables category filtering.
const CategoryAll = "all"

// Criteria is the full description of a product view.
type Criteria struct {
	Search   string
	Category string
	Sort     SortMode
}

// ParseSortMode maps user input to a SortMode. Unknown values fall back to
// SortDefault.
func ParseSortMode(s string) SortMode {
	switch m := SortMode(strings.ToLower(strings.TrimSpace(s))); m {
	case SortPriceLow, SortPriceHigh, SortName:
		return m
	default:
		return SortDefault
	}
}

// Search keeps products whose name, description or category contains term,
// ignoring case. A blank term keeps everything.
func Search(products []models.Product, term string) []models.Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return slices.Clone(products)
	}

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) ||
			strings.Contains(strings.ToLower(p.Category), term) {
			out = append(out, p)
		}
	}
	return out
}

// FilterByCategory keeps products whose category equals category exactly.
// CategoryAll and the empty string keep everything.
func FilterByCategory(products []models.Product, category string) []models.Product {
	if category == "" || category == CategoryAll {
		return slices.Clone(products)
	}

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// SortProducts returns a stably sorted copy. Name ordering follows the
// collation rules of lang.
func SortProducts(products []models.Product, mode SortMode, lang language.Tag) []models.Product {
	out := slices.Clone(products)

	switch mode {
	case SortPriceLow:
		slices.SortStableFunc(out, func(a, b models.Product) int { return cmp.Compare(a.Price, b.Price) })
	case SortPriceHigh:
		slices.SortStableFunc(out, func(a, b models.Product) int { return cmp.Compare(b.Price, a.Price) })
	case SortName:
		col := collate.New(lang)
		slices.SortStableFunc(out, func(a, b models.Product) int { return col.CompareString(a.Name, b.Name) })
	default:
		slices.SortStableFunc(out, func(a, b models.Product) int { return cmp.Compare(a.ID, b.ID) })
	}
	return out
}

// Apply runs the whole pipeline over the full catalog.
func Apply(products []models.Product, c Criteria, lang language.Tag) []models.Product {
	view := Search(products, c.Search)
	view = FilterByCategory(view, c.Category)
	return SortProducts(view, c.Sort, lang)
}
