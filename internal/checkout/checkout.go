// Package checkout turns the cart into a confirmed order.
//
// Payment is simulated: the card number is only shape-checked and is never
// stored. Placing an order appends it to the "orders" log and empties the
// cart in a single store batch.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/phumgame/internal/cart"
	"github.com/dmitrijs2005/phumgame/internal/common"
	"github.com/dmitrijs2005/phumgame/internal/logging"
	"github.com/dmitrijs2005/phumgame/internal/models"
	"github.com/dmitrijs2005/phumgame/internal/storage"
)

const minCardDigits = 13

var (
	ErrMissingFields = errors.New("Please fill in all fields")
	ErrInvalidCard   = errors.New("Please enter a valid card number")
	ErrEmptyCart     = errors.New("Your cart is empty. Please add games before purchasing.")
)

// CustomerInfo is the checkout form.
type CustomerInfo struct {
	Name    string
	Email   string
	Address string
	Phone   string
	Card    string
}

// Validate checks that every field is filled in and that the card has
// enough digits once whitespace is removed.
func (c CustomerInfo) Validate() error {
	for _, v := range []string{c.Name, c.Email, c.Address, c.Phone, c.Card} {
		if strings.TrimSpace(v) == "" {
			return ErrMissingFields
		}
	}

	digits := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, c.Card)
	if len(digits) < minCardDigits {
		return ErrInvalidCard
	}
	return nil
}

// Options are the pricing rules applied to an order.
type Options struct {
	TaxRate  float64
	Shipping float64
	Now      func() time.Time
}

// Service defines checkout operations.
type Service interface {
	// PlaceOrder validates info, records an order for the current cart and
	// empties the cart.
	PlaceOrder(ctx context.Context, info CustomerInfo) (*models.Order, error)
	// BuyNow empties a non-empty cart without recording an order.
	BuyNow(ctx context.Context) error
	// Orders returns the order log, oldest first.
	Orders(ctx context.Context) ([]models.Order, error)
}

type checkoutService struct {
	store  storage.Store
	cart   cart.Service
	logger logging.Logger
	opts   Options
}

func NewService(store storage.Store, c cart.Service, logger logging.Logger, opts Options) Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &checkoutService{store: store, cart: c, logger: logger, opts: opts}
}

func (s *checkoutService) PlaceOrder(ctx context.Context, info CustomerInfo) (*models.Order, error) {
	if err := info.Validate(); err != nil {
		return nil, err
	}

	lines, err := s.cart.Lines(ctx)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	orders, err := s.Orders(ctx)
	if err != nil {
		return nil, err
	}

	sum := cart.Summarize(lines, s.opts.TaxRate, s.opts.Shipping)
	order := models.Order{
		OrderID: "ORD-" + uuid.NewString(),
		Customer: models.Customer{
			Name:    strings.TrimSpace(info.Name),
			Email:   strings.TrimSpace(info.Email),
			Address: strings.TrimSpace(info.Address),
			Phone:   strings.TrimSpace(info.Phone),
		},
		Items:     lines,
		Subtotal:  sum.Subtotal,
		Tax:       sum.Tax,
		Shipping:  sum.Shipping,
		Total:     sum.Total,
		OrderDate: s.opts.Now().UTC(),
		Status:    models.OrderStatusConfirmed,
	}

	ordersJSON, err := storage.Encode(append(orders, order))
	if err != nil {
		return nil, fmt.Errorf("encode orders: %w", err)
	}
	cartJSON, err := storage.Encode([]models.CartLine{})
	if err != nil {
		return nil, fmt.Errorf("encode cart: %w", err)
	}

	if err := storage.SetAll(ctx, s.store, map[string]string{
		common.KeyOrders: ordersJSON,
		common.KeyCart:   cartJSON,
	}); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}
	// The order is committed; a failed count refresh only leaves the badge stale.
	if err := s.cart.Sync(ctx); err != nil {
		s.logger.Warn(ctx, "cart count refresh", "error", err)
	}

	s.logger.Info(ctx, "order placed", "order_id", order.OrderID, "items", sum.Items, "total", order.Total)
	return &order, nil
}

func (s *checkoutService) BuyNow(ctx context.Context) error {
	n, err := s.cart.Count(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrEmptyCart
	}
	if err := s.cart.Clear(ctx); err != nil {
		return err
	}

	s.logger.Info(ctx, "quick purchase completed", "items", n)
	return nil
}

func (s *checkoutService) Orders(ctx context.Context) ([]models.Order, error) {
	orders, err := storage.GetJSON[[]models.Order](ctx, s.store, common.KeyOrders)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	return orders, nil
}
