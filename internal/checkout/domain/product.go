package domain

import "github.com/shopspring/decimal"

// Product is the catalog entity shared by carts and shipments. The catalog
// owns the value; everything else holds the same reference, so stock
// mutation through ReduceQuantity is visible to every holder.
type Product interface {
	Name() string
	Price() decimal.Decimal
	Quantity() int
	// ReduceQuantity assumes the caller already validated n <= Quantity().
	ReduceQuantity(n int)
	Expired() bool
	RequiresShipping() bool
}

// Shippable is the capability carried by products that need physical
// shipment. Weight is in grams.
type Shippable interface {
	Name() string
	Weight() decimal.Decimal
}

type productBase struct {
	name     string
	price    decimal.Decimal
	quantity int
}

func (p *productBase) Name() string           { return p.name }
func (p *productBase) Price() decimal.Decimal { return p.price }
func (p *productBase) Quantity() int          { return p.quantity }
func (p *productBase) ReduceQuantity(n int)   { p.quantity -= n }

// PerishableProduct expires and ships (groceries). The expiry flag is fixed
// at construction; there is no clock in this model.
type PerishableProduct struct {
	productBase
	expired bool
	weight  decimal.Decimal
}

func NewPerishable(name string, price decimal.Decimal, quantity int, expired bool, weightGrams decimal.Decimal) *PerishableProduct {
	return &PerishableProduct{
		productBase: productBase{name: name, price: price, quantity: quantity},
		expired:     expired,
		weight:      weightGrams,
	}
}

func (p *PerishableProduct) Expired() bool           { return p.expired }
func (p *PerishableProduct) RequiresShipping() bool  { return true }
func (p *PerishableProduct) Weight() decimal.Decimal { return p.weight }

// DurableProduct never expires but still ships (electronics).
type DurableProduct struct {
	productBase
	weight decimal.Decimal
}

func NewDurable(name string, price decimal.Decimal, quantity int, weightGrams decimal.Decimal) *DurableProduct {
	return &DurableProduct{
		productBase: productBase{name: name, price: price, quantity: quantity},
		weight:      weightGrams,
	}
}

func (p *DurableProduct) Expired() bool           { return false }
func (p *DurableProduct) RequiresShipping() bool  { return true }
func (p *DurableProduct) Weight() decimal.Decimal { return p.weight }

// DigitalProduct neither expires nor ships (vouchers, scratch cards). It
// has no weight and never satisfies Shippable.
type DigitalProduct struct {
	productBase
}

func NewDigital(name string, price decimal.Decimal, quantity int) *DigitalProduct {
	return &DigitalProduct{productBase: productBase{name: name, price: price, quantity: quantity}}
}

func (p *DigitalProduct) Expired() bool          { return false }
func (p *DigitalProduct) RequiresShipping() bool { return false }
