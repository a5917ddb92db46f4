package cart

import (
	"sync"

	"github.com/shopspring/decimal"
)

// CatalogItem is the minimal product shape required to add a line.
type CatalogItem struct {
	ProductID int64
	Name      string
	UnitPrice decimal.Decimal
}

// Line is one selected catalog item with its chosen quantity.
// Name and UnitPrice are captured when the line is first added and stay fixed
// for the line's lifetime, even if the catalog entry changes server-side.
type Line struct {
	ProductID int64
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Subtotal returns UnitPrice multiplied by Quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart holds the in-progress selection of purchasable items.
// Lines keep insertion order and are unique per ProductID. Every operation is
// total: there is no invalid cart state. The zero number of lines is the only
// starting and post-Clear state.
//
// Cart is memory-only; it is not persisted across process restarts.
type Cart struct {
	mu    sync.RWMutex
	lines []Line
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add puts the catalog item into the cart. If a line for the item's ProductID
// already exists, its quantity is incremented by one and the denormalized
// display fields are left as captured at first add. Otherwise a new line with
// quantity 1 is appended.
func (c *Cart) Add(item CatalogItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.index(item.ProductID); i >= 0 {
		c.lines[i].Quantity++
		return
	}

	c.lines = append(c.lines, Line{
		ProductID: item.ProductID,
		Name:      item.Name,
		UnitPrice: item.UnitPrice,
		Quantity:  1,
	})
}

// Remove deletes the line with the given ProductID. Removing an absent
// product is a no-op.
func (c *Cart) Remove(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(productID)
}

// SetQuantity sets the quantity of an existing line. A quantity of zero or
// below removes the line. Setting quantity for an absent product is a no-op.
func (c *Cart) SetQuantity(productID int64, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.remove(productID)
		return
	}

	if i := c.index(productID); i >= 0 {
		c.lines[i].Quantity = quantity
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return c.Len() == 0
}

// TotalItems returns the sum of quantities across all lines.
func (c *Cart) TotalItems() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice returns the sum of line subtotals using the unit prices captured
// at add time. Decimal arithmetic keeps currency totals exact regardless of
// insertion order.
func (c *Cart) TotalPrice() decimal.Decimal {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// index returns the position of the line with productID, or -1.
// Callers must hold the lock.
func (c *Cart) index(productID int64) int {
	for i, line := range c.lines {
		if line.ProductID == productID {
			return i
		}
	}
	return -1
}

// remove deletes the line with productID preserving order of the rest.
// Callers must hold the lock.
func (c *Cart) remove(productID int64) {
	if i := c.index(productID); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}
