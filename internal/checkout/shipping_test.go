package checkout

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/nazeru/retail-checkout-go/internal/checkout/domain"
)

func referenceUnits(t *testing.T) []domain.Shippable {
	t.Helper()
	cart := domain.NewCart()
	cheese := domain.NewPerishable("Cheese", decimal.NewFromInt(100), 5, false, decimal.NewFromInt(200))
	biscuits := domain.NewPerishable("Biscuits", decimal.NewFromInt(150), 3, false, decimal.NewFromInt(700))
	require.NoError(t, cart.Add(cheese, 2))
	require.NoError(t, cart.Add(biscuits, 1))
	return cart.ShippableUnits()
}

func TestShipEmptyProducesNoOutput(t *testing.T) {
	out := &bytes.Buffer{}
	NewShippingService(out).Ship(nil)
	require.Empty(t, out.String())
}

func TestShipHistoricalGroupWeights(t *testing.T) {
	out := &bytes.Buffer{}
	NewShippingService(out).Ship(referenceUnits(t))

	// Each group line uses the first unit's weight (200g) times the group
	// count, so the Biscuits line reads 200.0g rather than 700.0g. The
	// package total still sums true unit weights.
	want := "** Shipment notice **\n" +
		"2x Cheese 400.0g\n" +
		"1x Biscuits 200.0g\n" +
		"Total package weight 1.1kg\n"
	require.Equal(t, want, out.String())
}

func TestShipPerGroupWeights(t *testing.T) {
	out := &bytes.Buffer{}
	svc := NewShippingService(out)
	svc.PerGroupWeights = true
	svc.Ship(referenceUnits(t))

	want := "** Shipment notice **\n" +
		"2x Cheese 400.0g\n" +
		"1x Biscuits 700.0g\n" +
		"Total package weight 1.1kg\n"
	require.Equal(t, want, out.String())
}

func TestShipSingleGroup(t *testing.T) {
	out := &bytes.Buffer{}
	tv := domain.NewDurable("TV", decimal.NewFromInt(300), 5, decimal.NewFromInt(10000))
	NewShippingService(out).Ship([]domain.Shippable{tv})

	want := "** Shipment notice **\n" +
		"1x TV 10000.0g\n" +
		"Total package weight 10.0kg\n"
	require.Equal(t, want, out.String())
}
