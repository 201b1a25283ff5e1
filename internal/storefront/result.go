package storefront

import (
	"errors"

	"github.com/dmitrijs2005/phumgame/internal/accounts"
	"github.com/dmitrijs2005/phumgame/internal/catalog"
	"github.com/dmitrijs2005/phumgame/internal/checkout"
	"github.com/dmitrijs2005/phumgame/internal/common"
)

// Messages shown for events that do not carry their own.
const (
	MsgNoResults       = "No products found matching your criteria."
	MsgLoadFailed      = "Failed to load products. Please refresh the page."
	MsgNotLoaded       = "Products are not available yet."
	MsgProductNotFound = "Product not found."
	MsgNotLoggedIn     = "You are not logged in."
	MsgSessionExpired  = "Your session has expired. Please log in again."
	MsgUnexpected      = "Something went wrong. Please try again."

	MsgRegistered = "Account created successfully!"
	MsgLoggedIn   = "Login successful!"
	MsgLoggedOut  = "Logged out successfully"
	MsgBought     = "Successfully Bought!"
)

// Result is the outcome of a user event as the rendering layer sees it.
type Result struct {
	Success bool
	Message string
}

func ok(msg string) Result { return Result{Success: true, Message: msg} }

func fail(err error) Result { return Result{Message: Message(err)} }

// Message converts err into the text shown to the user.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var ve *accounts.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}

	for _, known := range []error{
		accounts.ErrAccountExists,
		accounts.ErrInvalidCredentials,
		checkout.ErrMissingFields,
		checkout.ErrInvalidCard,
		checkout.ErrEmptyCart,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	switch {
	case errors.Is(err, catalog.ErrLoadFailed):
		return MsgLoadFailed
	case errors.Is(err, catalog.ErrNotLoaded):
		return MsgNotLoaded
	case errors.Is(err, catalog.ErrProductNotFound):
		return MsgProductNotFound
	case errors.Is(err, common.ErrorUnauthorized):
		return MsgNotLoggedIn
	case errors.Is(err, common.ErrTokenExpired), errors.Is(err, common.ErrInvalidToken):
		return MsgSessionExpired
	default:
		return MsgUnexpected
	}
}
