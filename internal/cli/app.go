package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/phumgame/internal/storefront"
)

type App struct {
	ctrl   *storefront.Controller
	reader *bufio.Reader
	out    io.Writer
	styles styles
}

func NewApp(ctrl *storefront.Controller, in io.Reader, out io.Writer) *App {
	return &App{ctrl: ctrl, reader: bufio.NewReader(in), out: out, styles: defaultStyles()}
}

// Run loads the catalog and serves commands until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, a.styles.Title.Render("Welcome to PhumGame!")+" (type 'help' for commands)")
	a.print(a.ctrl.Init(ctx))

	runREPL(ctx, a, func() string { return a.status(ctx) }, a.reader, a.out)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.ctrl.IsLoggedIn(ctx)
}

// status is the prompt decoration: the logged in user and the cart count.
func (a *App) status(ctx context.Context) string {
	s := fmt.Sprintf("cart:%d", a.ctrl.CartCount())
	if sess, r := a.ctrl.CurrentUser(ctx); r.Success {
		s = sess.Name + " " + s
	}
	return fmt.Sprintf(" (%s)", s)
}

func (a *App) print(r storefront.Result) {
	if r.Message == "" {
		return
	}
	fmt.Fprintln(a.out, a.styles.result(r))
}
