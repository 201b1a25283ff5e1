// Package cli provides the interactive PhumGame storefront shell.
//
// It is the rendering boundary over storefront.Controller: every command
// reads its input, forwards one event to the controller and prints the
// returned Result. Typical flow: the catalog is loaded on start, then the
// user browses, fills the cart and checks out.
//
// Key features:
//   - Register / Login / Logout / Whoami
//   - Products with search, category filter and sorting
//   - Cart editing with a priced summary
//   - Checkout, quick buy and the order history
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
