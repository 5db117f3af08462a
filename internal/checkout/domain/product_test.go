package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestVariantPredicates(t *testing.T) {
	fresh := NewPerishable("Cheese", decimal.NewFromInt(100), 5, false, decimal.NewFromInt(200))
	stale := NewPerishable("Milk", decimal.NewFromInt(60), 4, true, decimal.NewFromInt(1000))
	tv := NewDurable("TV", decimal.NewFromInt(300), 5, decimal.NewFromInt(10000))
	card := NewDigital("Scratch Card", decimal.NewFromInt(50), 10)

	require.False(t, fresh.Expired())
	require.True(t, stale.Expired())
	require.False(t, tv.Expired())
	require.False(t, card.Expired())

	require.True(t, fresh.RequiresShipping())
	require.True(t, tv.RequiresShipping())
	require.False(t, card.RequiresShipping())
}

func TestShippableCapability(t *testing.T) {
	var cheese Product = NewPerishable("Cheese", decimal.NewFromInt(100), 5, false, decimal.NewFromInt(200))
	var tv Product = NewDurable("TV", decimal.NewFromInt(300), 5, decimal.NewFromInt(10000))
	var card Product = NewDigital("Scratch Card", decimal.NewFromInt(50), 10)

	s, ok := cheese.(Shippable)
	require.True(t, ok)
	require.True(t, s.Weight().Equal(decimal.NewFromInt(200)))

	_, ok = tv.(Shippable)
	require.True(t, ok)

	// A product without the capability must not report a weight at all.
	_, ok = card.(Shippable)
	require.False(t, ok)
}

func TestReduceQuantityVisibleThroughSharedReference(t *testing.T) {
	cheese := NewPerishable("Cheese", decimal.NewFromInt(100), 5, false, decimal.NewFromInt(200))

	var a Product = cheese
	var b Product = cheese
	a.ReduceQuantity(2)

	require.Equal(t, 3, b.Quantity())
	require.Equal(t, 3, cheese.Quantity())
}
