package storefront

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/phumgame/internal/accounts"
	"github.com/dmitrijs2005/phumgame/internal/catalog"
	"github.com/dmitrijs2005/phumgame/internal/checkout"
	"github.com/dmitrijs2005/phumgame/internal/config"
	"github.com/dmitrijs2005/phumgame/internal/cryptox"
	"github.com/dmitrijs2005/phumgame/internal/logging"
	"github.com/dmitrijs2005/phumgame/internal/models"
	"github.com/dmitrijs2005/phumgame/internal/storage"
)

type fixedSource struct {
	products []models.Product
	err      error
}

func (f fixedSource) Load(context.Context) ([]models.Product, error) { return f.products, f.err }

func testOptions() Options {
	return Options{
		Locale:   "en",
		TaxRate:  0.1,
		Shipping: 5,
		Accounts: accounts.Options{
			SessionSecret: []byte("secret"),
			SessionTTL:    time.Hour,
			HashParams:    cryptox.Params{Memory: 1024, Time: 1, Threads: 1, SaltLen: 8, KeyLen: 16},
		},
	}
}

func newController(t *testing.T, src catalog.Source) *Controller {
	t.Helper()
	c := New(storage.NewMemoryStore(), catalog.New(src, logging.Nop()), logging.Nop(), testOptions())
	return c
}

var card = checkout.CustomerInfo{
	Name: "Ada", Email: "ada@example.com", Address: "1 Main St", Phone: "555", Card: "4111111111111",
}

func TestController_BrowseAndBuy(t *testing.T) {
	ctx := context.Background()
	c := newController(t, fixedSource{products: catalogFixture})

	r := c.Init(ctx)
	require.True(t, r.Success, r.Message)
	assert.Len(t, c.View().Products, 3)
	assert.Equal(t, []string{"Action", "RPG"}, c.Categories())

	r = c.FilterCategory("RPG")
	assert.True(t, r.Success)
	r = c.Sort("price-low")
	assert.True(t, r.Success)
	assert.Equal(t, []int{1}, viewIDs(c.View()))

	r = c.Search("zzz")
	assert.False(t, r.Success)
	assert.Equal(t, MsgNoResults, r.Message)

	r = c.AddToCart(ctx, 2)
	assert.True(t, r.Success)
	assert.Equal(t, "Blitz added to cart!", r.Message)
	r = c.AddToCart(ctx, 2)
	assert.True(t, r.Success)
	assert.Equal(t, 2, c.CartCount())

	lines, sum, err := c.Cart(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 39.98, sum.Subtotal)
	assert.Equal(t, 48.98, sum.Total)

	order, r := c.Checkout(ctx, card)
	require.True(t, r.Success, r.Message)
	assert.Contains(t, r.Message, order.OrderID)
	assert.Zero(t, c.CartCount())

	orders, err := c.Orders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestController_AddUnknownProduct(t *testing.T) {
	ctx := context.Background()
	c := newController(t, fixedSource{products: catalogFixture})
	c.Init(ctx)

	r := c.AddToCart(ctx, 99)
	assert.False(t, r.Success)
	assert.Equal(t, MsgProductNotFound, r.Message)
}

func TestController_CatalogFailure(t *testing.T) {
	ctx := context.Background()
	c := newController(t, fixedSource{err: errors.New("404")})

	r := c.Init(ctx)
	assert.False(t, r.Success)
	assert.Equal(t, MsgLoadFailed, r.Message)
	assert.ErrorIs(t, c.CatalogError(), catalog.ErrLoadFailed)
	assert.Empty(t, c.View().Products)

	r = c.Search("anything")
	assert.Equal(t, MsgLoadFailed, r.Message)

	// accounts keep working without a catalog
	r = c.Register(ctx, "Ada", "ada@example.com", "abc123", "abc123")
	assert.True(t, r.Success)
}

func TestController_AccountFlow(t *testing.T) {
	ctx := context.Background()
	c := newController(t, fixedSource{products: catalogFixture})

	r := c.Register(ctx, "Ada", "ada@example.com", "abc123", "abc12")
	assert.False(t, r.Success)
	assert.Equal(t, "Passwords do not match", r.Message)

	r = c.Register(ctx, "Ada", "ada@example.com", "abc123", "abc123")
	assert.Equal(t, Result{Success: true, Message: MsgRegistered}, r)

	r = c.Register(ctx, "Ada", "ADA@example.com", "abc123", "abc123")
	assert.Equal(t, "An account with this email already exists", r.Message)

	r = c.Login(ctx, "ada@example.com", "wrong1")
	assert.Equal(t, Result{Message: "Invalid email or password"}, r)
	assert.False(t, c.IsLoggedIn(ctx))

	r = c.Login(ctx, "ada@example.com", "abc123")
	assert.Equal(t, Result{Success: true, Message: MsgLoggedIn}, r)
	assert.True(t, c.IsLoggedIn(ctx))

	sess, r := c.CurrentUser(ctx)
	require.NotNil(t, sess)
	assert.True(t, r.Success)
	assert.Equal(t, "Ada", sess.Name)

	r = c.Logout(ctx)
	assert.Equal(t, Result{Success: true, Message: MsgLoggedOut}, r)

	sess, r = c.CurrentUser(ctx)
	assert.Nil(t, sess)
	assert.Equal(t, MsgNotLoggedIn, r.Message)
}

func TestController_BuyNow(t *testing.T) {
	ctx := context.Background()
	c := newController(t, fixedSource{products: catalogFixture})
	c.Init(ctx)

	r := c.BuyNow(ctx)
	assert.False(t, r.Success)
	assert.Equal(t, "Your cart is empty. Please add games before purchasing.", r.Message)

	c.AddToCart(ctx, 1)
	r = c.BuyNow(ctx)
	assert.Equal(t, Result{Success: true, Message: MsgBought}, r)
	assert.Zero(t, c.CartCount())
}

func TestController_UpdateAndRemove(t *testing.T) {
	ctx := context.Background()
	c := newController(t, fixedSource{products: catalogFixture})
	c.Init(ctx)

	c.AddToCart(ctx, 1)
	c.AddToCart(ctx, 2)

	assert.True(t, c.UpdateQuantity(ctx, 1, 4).Success)
	assert.Equal(t, 5, c.CartCount())

	assert.True(t, c.UpdateQuantity(ctx, 1, 0).Success)
	assert.Equal(t, 1, c.CartCount())

	assert.True(t, c.RemoveFromCart(ctx, 2).Success)
	assert.Zero(t, c.CartCount())
}

func TestController_InitRestoresStoredCartCount(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	cat := catalog.New(fixedSource{products: catalogFixture}, logging.Nop())

	first := New(store, cat, logging.Nop(), testOptions())
	first.Init(ctx)
	first.AddToCart(ctx, 1)
	first.AddToCart(ctx, 1)

	second := New(store, catalog.New(fixedSource{products: catalogFixture}, logging.Nop()), logging.Nop(), testOptions())
	second.Init(ctx)
	assert.Equal(t, 2, second.CartCount())
}

func TestMessage(t *testing.T) {
	assert.Empty(t, Message(nil))
	assert.Equal(t, "Please enter a valid email address",
		Message(&accounts.ValidationError{Field: "email", Message: "Please enter a valid email address"}))
	assert.Equal(t, "Please enter a valid card number", Message(checkout.ErrInvalidCard))
	assert.Equal(t, MsgLoadFailed, Message(errors.Join(catalog.ErrLoadFailed, errors.New("x"))))
	assert.Equal(t, MsgUnexpected, Message(errors.New("disk on fire")))
}

func TestController_DefaultConfigUsesGeneratedSecret(t *testing.T) {
	ctx := context.Background()
	var cfg config.Config
	cfg.LoadDefaults()

	opts := OptionsFromConfig(&cfg)
	assert.Empty(t, opts.Accounts.SessionSecret)
	opts.Accounts.HashParams = testOptions().Accounts.HashParams

	c := New(storage.NewMemoryStore(), catalog.New(fixedSource{}, logging.Nop()), logging.Nop(), opts)
	r := c.Register(ctx, "Ada", "ada@example.com", "Secret1", "Secret1")
	require.True(t, r.Success, r.Message)
	r = c.Login(ctx, "ada@example.com", "Secret1")
	require.True(t, r.Success, r.Message)

	sess, r := c.CurrentUser(ctx)
	require.True(t, r.Success, r.Message)
	assert.Equal(t, "ada@example.com", sess.Email)
}
