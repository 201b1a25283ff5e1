package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/phumgame/internal/checkout"
	"github.com/dmitrijs2005/phumgame/internal/storefront"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

func (a *App) usage(text string) error {
	fmt.Fprintln(a.out, "Usage:", text)
	return errUsage
}

// Register prompts for name, email, password and its confirmation.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}

	a.print(a.ctrl.Register(ctx, name, email, password, confirm))
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}

	a.print(a.ctrl.Login(ctx, email, password))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.print(a.ctrl.Logout(ctx))
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	_, r := a.ctrl.CurrentUser(ctx)
	a.print(r)
	return nil
}

func (a *App) Products(_ context.Context) error {
	if err := a.ctrl.CatalogError(); err != nil {
		a.print(storefront.Result{Message: storefront.Message(err)})
		return nil
	}
	v := a.ctrl.View()
	if v.Empty() {
		fmt.Fprintln(a.out, a.styles.Muted.Render(storefront.MsgNoResults))
		return nil
	}
	renderProducts(a.out, a.styles, v)
	return nil
}

func (a *App) Categories(_ context.Context) error {
	cats := a.ctrl.Categories()
	if len(cats) == 0 {
		fmt.Fprintln(a.out, a.styles.Muted.Render("No categories."))
		return nil
	}
	fmt.Fprintln(a.out, "all, "+strings.Join(cats, ", "))
	return nil
}

// Search filters by the rest of the line; no arguments clears the search.
func (a *App) Search(ctx context.Context, args []string) error {
	r := a.ctrl.Search(strings.Join(args, " "))
	a.print(r)
	if r.Success {
		return a.Products(ctx)
	}
	return nil
}

func (a *App) Category(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.usage("category <name|all>")
	}
	r := a.ctrl.FilterCategory(strings.Join(args, " "))
	a.print(r)
	if r.Success {
		return a.Products(ctx)
	}
	return nil
}

func (a *App) Sort(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("sort <price-low|price-high|name|default>")
	}
	r := a.ctrl.Sort(args[0])
	a.print(r)
	if r.Success {
		return a.Products(ctx)
	}
	return nil
}

func parseInts(args []string) ([]int, bool) {
	out := make([]int, len(args))
	for i, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

func (a *App) Add(ctx context.Context, args []string) error {
	ids, ok := parseInts(args)
	if !ok || len(ids) != 1 {
		return a.usage("add <id>")
	}
	a.print(a.ctrl.AddToCart(ctx, ids[0]))
	return nil
}

func (a *App) Remove(ctx context.Context, args []string) error {
	ids, ok := parseInts(args)
	if !ok || len(ids) != 1 {
		return a.usage("remove <id>")
	}
	a.print(a.ctrl.RemoveFromCart(ctx, ids[0]))
	return nil
}

func (a *App) Qty(ctx context.Context, args []string) error {
	n, ok := parseInts(args)
	if !ok || len(n) != 2 {
		return a.usage("qty <id> <n>")
	}
	a.print(a.ctrl.UpdateQuantity(ctx, n[0], n[1]))
	return nil
}

func (a *App) Cart(ctx context.Context) error {
	lines, sum, err := a.ctrl.Cart(ctx)
	if err != nil {
		return err
	}
	renderCart(a.out, a.styles, lines, sum)
	return nil
}

// Checkout prompts for the delivery form and the card number.
func (a *App) Checkout(ctx context.Context) error {
	var info checkout.CustomerInfo

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Full name", &info.Name},
		{"Email", &info.Email},
		{"Address", &info.Address},
		{"Phone", &info.Phone},
		{"Card number", &info.Card},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	_, r := a.ctrl.Checkout(ctx, info)
	a.print(r)
	return nil
}

func (a *App) Buy(ctx context.Context) error {
	a.print(a.ctrl.BuyNow(ctx))
	return nil
}

func (a *App) Orders(ctx context.Context) error {
	orders, err := a.ctrl.Orders(ctx)
	if err != nil {
		return err
	}
	renderOrders(a.out, a.styles, orders)
	return nil
}
