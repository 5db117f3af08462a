package domain

import "github.com/shopspring/decimal"

// CartItem is one cart line: a shared product reference plus the requested
// quantity. The quantity is fixed at add-time and independent of how much
// stock remains after later checkouts.
type CartItem struct {
	product  Product
	quantity int
}

func (it CartItem) Product() Product { return it.product }
func (it CartItem) Quantity() int    { return it.quantity }

// TotalPrice is the line subtotal at the product's current price.
func (it CartItem) TotalPrice() decimal.Decimal {
	return it.product.Price().Mul(decimal.NewFromInt(int64(it.quantity)))
}

// Cart keeps lines in insertion order; duplicate additions of the same
// product append separate lines rather than merging.
type Cart struct {
	items []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add validates against the product's live quantity at call time. Stock is
// untouched here; only checkout decrements it, so two lines for the same
// product are each validated against the original stock level.
func (c *Cart) Add(p Product, quantity int) error {
	if quantity > p.Quantity() {
		return &CartError{Product: p.Name(), Err: ErrInsufficientStock}
	}
	if p.Expired() {
		return &CartError{Product: p.Name(), Err: ErrExpiredProduct}
	}
	c.items = append(c.items, CartItem{product: p, quantity: quantity})
	return nil
}

func (c *Cart) Items() []CartItem {
	return c.items
}

func (c *Cart) Empty() bool {
	return len(c.items) == 0
}

// Subtotal sums line totals at current prices, not prices snapshotted at
// add-time.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.TotalPrice())
	}
	return total
}

// ShippableUnits flattens shippable lines into one reference per physical
// unit, in line order, for per-unit weight aggregation.
func (c *Cart) ShippableUnits() []Shippable {
	var units []Shippable
	for _, it := range c.items {
		if !it.product.RequiresShipping() {
			continue
		}
		s, ok := it.product.(Shippable)
		if !ok {
			continue
		}
		for i := 0; i < it.quantity; i++ {
			units = append(units, s)
		}
	}
	return units
}
