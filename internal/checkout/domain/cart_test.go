package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testCheese() *PerishableProduct {
	return NewPerishable("Cheese", decimal.NewFromInt(100), 5, false, decimal.NewFromInt(200))
}

func testBiscuits() *PerishableProduct {
	return NewPerishable("Biscuits", decimal.NewFromInt(150), 3, false, decimal.NewFromInt(700))
}

func TestAddRejectsInsufficientStock(t *testing.T) {
	cart := NewCart()
	biscuits := testBiscuits()

	err := cart.Add(biscuits, 4)

	require.ErrorIs(t, err, ErrInsufficientStock)
	var cerr *CartError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, "Biscuits", cerr.Product)

	require.True(t, cart.Empty())
	require.Equal(t, 3, biscuits.Quantity())
}

func TestAddRejectsExpiredProduct(t *testing.T) {
	cart := NewCart()
	milk := NewPerishable("Milk", decimal.NewFromInt(60), 4, true, decimal.NewFromInt(1000))

	err := cart.Add(milk, 1)

	require.ErrorIs(t, err, ErrExpiredProduct)
	var cerr *CartError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, "Milk", cerr.Product)
	require.True(t, cart.Empty())
}

func TestAddAppendsSeparateLinesForSameProduct(t *testing.T) {
	cart := NewCart()
	cheese := testCheese()

	require.NoError(t, cart.Add(cheese, 3))
	// Stock is only decremented at checkout, so the second add is still
	// validated against the original quantity and both lines pass even
	// though they jointly exceed it.
	require.NoError(t, cart.Add(cheese, 3))

	items := cart.Items()
	require.Len(t, items, 2)
	require.Equal(t, 3, items[0].Quantity())
	require.Equal(t, 3, items[1].Quantity())
}

func TestSubtotal(t *testing.T) {
	cart := NewCart()
	card := NewDigital("Scratch Card", decimal.NewFromInt(50), 10)

	require.NoError(t, cart.Add(testCheese(), 2))
	require.NoError(t, cart.Add(testBiscuits(), 1))
	require.NoError(t, cart.Add(card, 1))

	// 2x100 + 150 + 50.
	require.True(t, cart.Subtotal().Equal(decimal.NewFromInt(400)))
}

func TestShippableUnitsFlattenInLineOrder(t *testing.T) {
	cart := NewCart()
	card := NewDigital("Scratch Card", decimal.NewFromInt(50), 10)

	require.NoError(t, cart.Add(testCheese(), 2))
	require.NoError(t, cart.Add(testBiscuits(), 1))
	require.NoError(t, cart.Add(card, 1))

	units := cart.ShippableUnits()
	require.Len(t, units, 3)
	require.Equal(t, "Cheese", units[0].Name())
	require.Equal(t, "Cheese", units[1].Name())
	require.Equal(t, "Biscuits", units[2].Name())
}

func TestAccessorsAreIdempotent(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add(testCheese(), 2))
	require.NoError(t, cart.Add(testBiscuits(), 1))

	first := cart.Subtotal()
	second := cart.Subtotal()
	require.True(t, first.Equal(second))

	require.Equal(t, len(cart.ShippableUnits()), len(cart.ShippableUnits()))
	require.Len(t, cart.Items(), 2)
	require.Len(t, cart.Items(), 2)
}

func TestEmpty(t *testing.T) {
	cart := NewCart()
	require.True(t, cart.Empty())
	require.NoError(t, cart.Add(testCheese(), 1))
	require.False(t, cart.Empty())
}

func TestCartErrorMessageCarriesProductName(t *testing.T) {
	err := &CartError{Product: "Biscuits", Err: ErrInsufficientStock}
	require.Equal(t, "insufficient stock for Biscuits", err.Error())
	require.True(t, errors.Is(err, ErrInsufficientStock))
}
