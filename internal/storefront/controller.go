// Package storefront is the session-scoped controller behind the user
// interface. It owns the catalog, the current product view and the cart,
// account and checkout services, and turns every user event into a Result.
//
// A Controller is not safe for concurrent use; events are expected to
// arrive one at a time.
package storefront

import (
	"context"
	"fmt"

	"golang.org/x/text/language"

	"github.com/dmitrijs2005/phumgame/internal/accounts"
	"github.com/dmitrijs2005/phumgame/internal/cart"
	"github.com/dmitrijs2005/phumgame/internal/catalog"
	"github.com/dmitrijs2005/phumgame/internal/checkout"
	"github.com/dmitrijs2005/phumgame/internal/config"
	"github.com/dmitrijs2005/phumgame/internal/logging"
	"github.com/dmitrijs2005/phumgame/internal/models"
	"github.com/dmitrijs2005/phumgame/internal/search"
	"github.com/dmitrijs2005/phumgame/internal/storage"
)

// Options configure a Controller.
type Options struct {
	Locale   string
	TaxRate  float64
	Shipping float64
	Accounts accounts.Options
}

// OptionsFromConfig maps runtime configuration onto controller options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Locale:   cfg.Locale,
		TaxRate:  cfg.TaxRate,
		Shipping: cfg.ShippingFee,
		Accounts: accounts.Options{
			SessionSecret: []byte(cfg.SessionSecret),
			SessionTTL:    cfg.SessionTTL,
		},
	}
}

type Controller struct {
	catalog  *catalog.Catalog
	cart     cart.Service
	accounts accounts.Service
	checkout checkout.Service
	logger   logging.Logger
	opts     Options

	view      View
	cartCount int
}

// New wires the services over store. The catalog is not loaded until Init.
func New(store storage.Store, cat *catalog.Catalog, logger logging.Logger, opts Options) *Controller {
	c := &Controller{catalog: cat, logger: logger, opts: opts}

	c.cart = cart.NewService(store, logger.With("component", "cart"), func(n int) { c.cartCount = n })
	c.accounts = accounts.NewService(store, logger.With("component", "accounts"), opts.Accounts)
	c.checkout = checkout.NewService(store, c.cart, logger.With("component", "checkout"), checkout.Options{
		TaxRate:  opts.TaxRate,
		Shipping: opts.Shipping,
	})
	c.view = View{Criteria: search.Criteria{Category: search.CategoryAll}, Lang: parseLocale(opts.Locale)}
	return c
}

func parseLocale(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return language.English
	}
	return tag
}

// Init loads the catalog and the stored cart count. A failed catalog load
// is reported but leaves the rest of the storefront usable.
func (c *Controller) Init(ctx context.Context) Result {
	if err := c.refreshCount(ctx); err != nil {
		c.logger.Error(ctx, "cart count", "error", err)
	}

	if err := c.catalog.Load(ctx); err != nil {
		c.view = View{Criteria: c.view.Criteria, Lang: c.view.Lang}
		return fail(err)
	}
	c.view = NewView(c.catalog.Products(), c.view.Lang)
	return ok(fmt.Sprintf("%d products loaded", len(c.view.Products)))
}

func (c *Controller) refreshCount(ctx context.Context) error {
	n, err := c.cart.Count(ctx)
	if err != nil {
		return err
	}
	c.cartCount = n
	return nil
}

// View returns the current product view.
func (c *Controller) View() View { return c.view }

// CartCount is the item count shown next to the cart.
func (c *Controller) CartCount() int { return c.cartCount }

// CatalogError is the terminal catalog load error, if any.
func (c *Controller) CatalogError() error { return c.catalog.Err() }

func (c *Controller) Categories() []string { return c.catalog.Categories() }

func (c *Controller) viewResult() Result {
	if err := c.catalog.Err(); err != nil {
		return fail(err)
	}
	if c.view.Empty() {
		return Result{Message: MsgNoResults}
	}
	return ok(fmt.Sprintf("%d products", len(c.view.Products)))
}

func (c *Controller) Search(term string) Result {
	c.view = c.view.WithSearch(c.catalog.Products(), term)
	return c.viewResult()
}

func (c *Controller) FilterCategory(category string) Result {
	c.view = c.view.WithCategory(c.catalog.Products(), category)
	return c.viewResult()
}

func (c *Controller) Sort(mode string) Result {
	c.view = c.view.WithSort(c.catalog.Products(), search.ParseSortMode(mode))
	return c.viewResult()
}

func (c *Controller) AddToCart(ctx context.Context, productID int) Result {
	p, err := c.catalog.Find(productID)
	if err != nil {
		return fail(err)
	}
	if err := c.cart.AddItem(ctx, p); err != nil {
		return c.unexpected(ctx, "add to cart", err)
	}
	return ok(fmt.Sprintf("%s added to cart!", p.Name))
}

func (c *Controller) RemoveFromCart(ctx context.Context, productID int) Result {
	if err := c.cart.RemoveItem(ctx, productID); err != nil {
		return c.unexpected(ctx, "remove from cart", err)
	}
	return ok("Item removed from cart")
}

func (c *Controller) UpdateQuantity(ctx context.Context, productID, quantity int) Result {
	if err := c.cart.UpdateQuantity(ctx, productID, quantity); err != nil {
		return c.unexpected(ctx, "update quantity", err)
	}
	return ok("Cart updated")
}

// Cart returns the cart lines with their priced summary.
func (c *Controller) Cart(ctx context.Context) ([]models.CartLine, cart.Summary, error) {
	lines, err := c.cart.Lines(ctx)
	if err != nil {
		return nil, cart.Summary{}, err
	}
	return lines, cart.Summarize(lines, c.opts.TaxRate, c.opts.Shipping), nil
}

func (c *Controller) Register(ctx context.Context, name, email, password, confirm string) Result {
	if _, err := c.accounts.RegisterWithConfirmation(ctx, name, email, password, confirm); err != nil {
		return c.userError(ctx, "register", err)
	}
	return ok(MsgRegistered)
}

func (c *Controller) Login(ctx context.Context, email, password string) Result {
	if _, err := c.accounts.Login(ctx, email, password); err != nil {
		return c.userError(ctx, "login", err)
	}
	return ok(MsgLoggedIn)
}

func (c *Controller) Logout(ctx context.Context) Result {
	if err := c.accounts.Logout(ctx); err != nil {
		return c.unexpected(ctx, "logout", err)
	}
	return ok(MsgLoggedOut)
}

// CurrentUser returns the verified session, or nil with a Result explaining
// why nobody is logged in.
func (c *Controller) CurrentUser(ctx context.Context) (*models.Session, Result) {
	sess, err := c.accounts.VerifySession(ctx)
	if err != nil {
		return nil, fail(err)
	}
	return sess, ok(fmt.Sprintf("Logged in as %s (%s)", sess.Name, sess.Email))
}

func (c *Controller) IsLoggedIn(ctx context.Context) bool {
	logged, err := c.accounts.IsLoggedIn(ctx)
	if err != nil {
		c.logger.Error(ctx, "session lookup", "error", err)
		return false
	}
	return logged
}

func (c *Controller) Checkout(ctx context.Context, info checkout.CustomerInfo) (*models.Order, Result) {
	order, err := c.checkout.PlaceOrder(ctx, info)
	if err != nil {
		return nil, c.userError(ctx, "checkout", err)
	}
	return order, ok(fmt.Sprintf("Order placed successfully! Order ID: %s", order.OrderID))
}

func (c *Controller) BuyNow(ctx context.Context) Result {
	if err := c.checkout.BuyNow(ctx); err != nil {
		return c.userError(ctx, "buy now", err)
	}
	return ok(MsgBought)
}

func (c *Controller) Orders(ctx context.Context) ([]models.Order, error) {
	return c.checkout.Orders(ctx)
}

// userError turns an expected failure into a Result and logs anything that
// falls through to the generic message.
func (c *Controller) userError(ctx context.Context, op string, err error) Result {
	r := fail(err)
	if r.Message == MsgUnexpected {
		c.logger.Error(ctx, op+" failed", "error", err)
	}
	return r
}

func (c *Controller) unexpected(ctx context.Context, op string, err error) Result {
	c.logger.Error(ctx, op+" failed", "error", err)
	return Result{Message: MsgUnexpected}
}
