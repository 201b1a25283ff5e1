package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Products(ctx context.Context) error
	Categories(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	Category(ctx context.Context, args []string) error
	Sort(ctx context.Context, args []string) error

	Add(ctx context.Context, args []string) error
	Remove(ctx context.Context, args []string) error
	Qty(ctx context.Context, args []string) error
	Cart(ctx context.Context) error

	Checkout(ctx context.Context) error
	Buy(ctx context.Context) error
	Orders(ctx context.Context) error
}

const (
	helpGuest = "Available commands: register, login, products, categories, search <term>, " +
		"category <name|all>, sort <price-low|price-high|name|default>, add <id>, remove <id>, " +
		"qty <id> <n>, cart, checkout, buy, orders, exit"
	helpUser = "Available commands: whoami, logout, products, categories, search <term>, " +
		"category <name|all>, sort <price-low|price-high|name|default>, add <id>, remove <id>, " +
		"qty <id> <n>, cart, checkout, buy, orders, exit"
)

// errUsage is returned by handlers that got malformed arguments.
var errUsage = errors.New("usage")

// runREPL reads commands from reader until EOF or "exit"/"quit".
//
// The first field of a line is the command, the rest are its arguments.
// Handlers report user-facing failures themselves; an error they return is
// either a usage error, the end of input, or an internal failure that is
// printed as is.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Fprintf(w, "phum%s> ", statusFn())
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !(errors.Is(readErr, io.EOF) && line != "") {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				fmt.Fprintln(w, helpUser)
			} else {
				fmt.Fprintln(w, helpGuest)
			}

		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "whoami":
			err = a.WhoAmI(ctx)

		case "products", "p", "list":
			err = a.Products(ctx)
		case "categories":
			err = a.Categories(ctx)
		case "search":
			err = a.Search(ctx, args)
		case "category":
			err = a.Category(ctx, args)
		case "sort":
			err = a.Sort(ctx, args)

		case "add":
			err = a.Add(ctx, args)
		case "remove":
			err = a.Remove(ctx, args)
		case "qty":
			err = a.Qty(ctx, args)
		case "cart":
			err = a.Cart(ctx)

		case "checkout":
			err = a.Checkout(ctx)
		case "buy":
			err = a.Buy(ctx)
		case "orders":
			err = a.Orders(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		switch {
		case err == nil, errors.Is(err, errUsage):
		case errors.Is(err, io.EOF):
			return
		default:
			fmt.Fprintln(w, "error:", err)
		}
	}
}
