package checkout

import "errors"

var (
	// ErrEmptyCart is returned when checkout is attempted with no cart lines.
	// This is a local precondition failure; the sales API is never contacted.
	ErrEmptyCart = errors.New("checkout: cart is empty")
	// ErrCheckoutInFlight is returned when a checkout is already in progress.
	ErrCheckoutInFlight = errors.New("checkout: another checkout is in progress")
)
