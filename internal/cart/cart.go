// Package cart keeps the shopping cart in the persistence store.
//
// The stored collection is the only state: every operation reads it, and
// every mutation writes the whole collection back before the item count is
// recomputed and published to the CountObserver.
package cart

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/phumgame/internal/common"
	"github.com/dmitrijs2005/phumgame/internal/logging"
	"github.com/dmitrijs2005/phumgame/internal/models"
	"github.com/dmitrijs2005/phumgame/internal/storage"
)

// CountObserver receives the total item count after each mutation.
type CountObserver func(count int)

// Service defines cart operations.
//
// Contract:
//   - AddItem: add one unit of a product, creating its line if needed.
//   - RemoveItem: drop the line for a product id; unknown ids are a no-op.
//   - UpdateQuantity: set a line's quantity; q <= 0 removes the line and
//     unknown ids are a no-op.
//   - Clear: empty the cart.
//   - Lines, Count, CalculateTotal: read the stored cart.
//   - Sync: publish the stored count after another component rewrote the
//     cart key (checkout empties it in its own batch).
type Service interface {
	AddItem(ctx context.Context, p models.Product) error
	RemoveItem(ctx context.Context, productID int) error
	UpdateQuantity(ctx context.Context, productID, quantity int) error
	Clear(ctx context.Context) error

	Lines(ctx context.Context) ([]models.CartLine, error)
	Count(ctx context.Context) (int, error)
	CalculateTotal(ctx context.Context) (float64, error)
	Sync(ctx context.Context) error
}

type cartService struct {
	store    storage.Store
	logger   logging.Logger
	observer CountObserver
}

// NewService returns a cart Service over store. observer may be nil.
func NewService(store storage.Store, logger logging.Logger, observer CountObserver) Service {
	return &cartService{store: store, logger: logger, observer: observer}
}

func (c *cartService) Lines(ctx context.Context) ([]models.CartLine, error) {
	lines, err := storage.GetJSON[[]models.CartLine](ctx, c.store, common.KeyCart)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return lines, nil
}

func (c *cartService) AddItem(ctx context.Context, p models.Product) error {
	lines, err := c.Lines(ctx)
	if err != nil {
		return err
	}

	if i := indexOf(lines, p.ID); i >= 0 {
		lines[i].Quantity++
	} else {
		lines = append(lines, models.CartLine{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Category: p.Category,
			Quantity: 1,
		})
	}

	c.logger.Debug(ctx, "cart item added", "product", p.ID)
	return c.save(ctx, lines)
}

func (c *cartService) RemoveItem(ctx context.Context, productID int) error {
	lines, err := c.Lines(ctx)
	if err != nil {
		return err
	}

	i := indexOf(lines, productID)
	if i < 0 {
		return nil
	}
	lines = append(lines[:i], lines[i+1:]...)

	c.logger.Debug(ctx, "cart item removed", "product", productID)
	return c.save(ctx, lines)
}

func (c *cartService) UpdateQuantity(ctx context.Context, productID, quantity int) error {
	lines, err := c.Lines(ctx)
	if err != nil {
		return err
	}

	i := indexOf(lines, productID)
	if i < 0 {
		return nil
	}
	if quantity <= 0 {
		return c.RemoveItem(ctx, productID)
	}
	lines[i].Quantity = quantity

	c.logger.Debug(ctx, "cart quantity updated", "product", productID, "quantity", quantity)
	return c.save(ctx, lines)
}

func (c *cartService) Clear(ctx context.Context) error {
	return c.save(ctx, []models.CartLine{})
}

func (c *cartService) Count(ctx context.Context) (int, error) {
	lines, err := c.Lines(ctx)
	if err != nil {
		return 0, err
	}
	return Count(lines), nil
}

func (c *cartService) CalculateTotal(ctx context.Context) (float64, error) {
	lines, err := c.Lines(ctx)
	if err != nil {
		return 0, err
	}
	return Subtotal(lines), nil
}

func (c *cartService) Sync(ctx context.Context) error {
	lines, err := c.Lines(ctx)
	if err != nil {
		return err
	}
	c.notify(lines)
	return nil
}

func (c *cartService) notify(lines []models.CartLine) {
	if c.observer != nil {
		c.observer(Count(lines))
	}
}

func (c *cartService) save(ctx context.Context, lines []models.CartLine) error {
	if lines == nil {
		lines = []models.CartLine{}
	}
	if err := storage.SetJSON(ctx, c.store, common.KeyCart, lines); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	c.notify(lines)
	return nil
}

func indexOf(lines []models.CartLine, productID int) int {
	for i, l := range lines {
		if l.ID == productID {
			return i
		}
	}
	return -1
}
