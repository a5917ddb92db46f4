// Package cart maintains the in-progress selection of purchasable items and
// its derived totals.
//
// A cart is an ordered list of lines, one per product. Re-adding a product
// increments its quantity instead of duplicating the line, and the display
// fields (name, unit price) stay as captured at first add. Quantity mutations
// that would drop a line to zero or below remove the line, so a stored line
// always has quantity >= 1.
//
// Monetary values use shopspring/decimal so totals stay exact:
//
//	c := cart.New()
//	c.Add(cart.CatalogItem{ProductID: 1, Name: "Coffee", UnitPrice: decimal.RequireFromString("10.00")})
//	c.Add(cart.CatalogItem{ProductID: 2, Name: "Beans", UnitPrice: decimal.RequireFromString("5.50")})
//	c.Add(cart.CatalogItem{ProductID: 2, Name: "Beans", UnitPrice: decimal.RequireFromString("5.50")})
//
//	c.TotalItems() // 3
//	c.TotalPrice() // 21.00
//
// The cart is memory-only by design: it lives exactly as long as the process
// and is cleared wholesale on successful checkout.
package cart
