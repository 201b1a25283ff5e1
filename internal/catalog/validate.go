package catalog

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/phumgame/internal/models"
)

// Validate checks catalog-wide invariants: unique ids, a non-empty name,
// non-negative price and stock. The first violation is returned.
func Validate(products []models.Product) error {
	seen := make(map[int]struct{}, len(products))

	for i, p := range products {
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("product #%d: duplicate id %d", i, p.ID)
		}
		seen[p.ID] = struct{}{}

		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("product %d: empty name", p.ID)
		}
		if p.Price < 0 {
			return fmt.Errorf("product %d: negative price", p.ID)
		}
		if p.Stock < 0 {
			return fmt.Errorf("product %d: negative stock", p.ID)
		}
	}
	return nil
}
