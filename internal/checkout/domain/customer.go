package domain

import "github.com/shopspring/decimal"

// Customer holds a display name and a mutable balance. Deduct applies
// unconditionally; checkout is responsible for checking sufficiency first.
type Customer struct {
	name    string
	balance decimal.Decimal
}

func NewCustomer(name string, balance decimal.Decimal) *Customer {
	return &Customer{name: name, balance: balance}
}

func (c *Customer) Name() string             { return c.name }
func (c *Customer) Balance() decimal.Decimal { return c.balance }

func (c *Customer) Deduct(amount decimal.Decimal) {
	c.balance = c.balance.Sub(amount)
}
