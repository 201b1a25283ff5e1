package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/phumgame/internal/accounts"
	"github.com/dmitrijs2005/phumgame/internal/catalog"
	"github.com/dmitrijs2005/phumgame/internal/cryptox"
	"github.com/dmitrijs2005/phumgame/internal/logging"
	"github.com/dmitrijs2005/phumgame/internal/models"
	"github.com/dmitrijs2005/phumgame/internal/storefront"
	"github.com/dmitrijs2005/phumgame/internal/storage"
)

type staticSource []models.Product

func (s staticSource) Load(context.Context) ([]models.Product, error) { return s, nil }

func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()
	stubTerminal(t, false, nil)

	src := staticSource{
		{ID: 1, Name: "Chrono", Description: "time rpg", Category: "RPG", Price: 59.99, Stock: 4},
		{ID: 2, Name: "Blitz", Description: "arcade", Category: "Action", Price: 19.99, Stock: 9},
	}
	ctrl := storefront.New(storage.NewMemoryStore(), catalog.New(src, logging.Nop()), logging.Nop(), storefront.Options{
		Locale:   "en",
		TaxRate:  0.1,
		Shipping: 5,
		Accounts: accounts.Options{
			SessionSecret: []byte("secret"),
			SessionTTL:    time.Hour,
			HashParams:    cryptox.Params{Memory: 1024, Time: 1, Threads: 1, SaltLen: 8, KeyLen: 16},
		},
	})

	var out bytes.Buffer
	return NewApp(ctrl, strings.NewReader(input), &out), &out
}

func TestApp_ShoppingSession(t *testing.T) {
	script := strings.Join([]string{
		"register", "Ada", "ada@example.com", "abc123", "abc123",
		"login", "ada@example.com", "abc123",
		"whoami",
		"category RPG",
		"search bli",
		"category all",
		"add 2",
		"add 2",
		"qty 2 3",
		"cart",
		"checkout", "Ada", "ada@example.com", "1 Main St", "555-0100", "4111 1111 1111 1111",
		"orders",
		"logout",
		"exit",
	}, "\n") + "\n"

	app, out := newTestApp(t, script)
	app.Run(context.Background())

	got := out.String()
	assert.Contains(t, got, "2 products loaded")
	assert.Contains(t, got, "Account created successfully!")
	assert.Contains(t, got, "Login successful!")
	assert.Contains(t, got, "Logged in as Ada (ada@example.com)")
	assert.Contains(t, got, "No products found matching your criteria.")
	assert.Contains(t, got, "Blitz added to cart!")
	assert.Contains(t, got, "$59.97")
	assert.Contains(t, got, "Order placed successfully! Order ID: ORD-")
	assert.Contains(t, got, "Confirmed")
	assert.Contains(t, got, "Logged out successfully")
	assert.Contains(t, got, "Bye!")
}

func TestApp_UsageErrors(t *testing.T) {
	app, out := newTestApp(t, "add\nadd x\nqty 1\nsort\ncategory\nexit\n")
	app.Run(context.Background())

	got := out.String()
	assert.Contains(t, got, "Usage: add <id>")
	assert.Contains(t, got, "Usage: qty <id> <n>")
	assert.Contains(t, got, "Usage: sort")
	assert.Contains(t, got, "Usage: category <name|all>")
}

func TestApp_BuyNowAndEmptyCart(t *testing.T) {
	app, out := newTestApp(t, "buy\ncart\nadd 1\nbuy\norders\nexit\n")
	app.Run(context.Background())

	got := out.String()
	assert.Contains(t, got, "Your cart is empty. Please add games before purchasing.")
	assert.Contains(t, got, "Your cart is empty.")
	assert.Contains(t, got, "Successfully Bought!")
	assert.Contains(t, got, "No orders yet.")
}

func TestApp_LoginFailure(t *testing.T) {
	app, out := newTestApp(t, "login\nnobody@example.com\nabc123\nlogin\nbad-email\nabc123\nexit\n")
	app.Run(context.Background())

	got := out.String()
	assert.Contains(t, got, "Invalid email or password")
	assert.Contains(t, got, "Please enter a valid email address")
}
