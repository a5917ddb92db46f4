// Package checkout turns the current cart into a submitted sale.
//
// The orchestrator composes the cart (source of line items) with an external
// sales collaborator. Only product IDs and quantities are transmitted; the
// backend owns pricing. On success the cart is cleared unconditionally, on
// failure it is preserved byte for byte so the user can retry.
//
//	orch := checkout.New(cartEngine, salesClient, checkout.WithLogger(log))
//
//	confirmation, err := orch.Checkout(ctx, "deliver after 6pm")
//	switch {
//	case errors.Is(err, checkout.ErrEmptyCart):
//		// nothing to buy
//	case errors.Is(err, checkout.ErrCheckoutInFlight):
//		// a previous attempt is still running
//	case err != nil:
//		// collaborator error, shown to the user verbatim
//	}
//
// The in-flight gate makes double submission (for example a double-clicked
// buy button) impossible at the component level. Sequential repeats are not
// deduplicated.
package checkout
