package checkout

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nazeru/retail-checkout-go/internal/checkout/domain"
	"github.com/nazeru/retail-checkout-go/pkg/contracts"
	"github.com/nazeru/retail-checkout-go/pkg/logging"
	"github.com/nazeru/retail-checkout-go/pkg/metrics"
)

type Status string

const (
	StatusCompleted           Status = "COMPLETED"
	StatusEmptyCart           Status = "EMPTY_CART"
	StatusInsufficientBalance Status = "INSUFFICIENT_BALANCE"
)

// DefaultShippingFee is the flat fee added to every non-empty checkout.
var DefaultShippingFee = decimal.NewFromInt(30)

// Service runs one checkout transaction: validate, commit stock, ship,
// print the receipt, settle the balance. All console output goes to Out.
// Metrics and Journal are optional collaborators.
type Service struct {
	Out      io.Writer
	Shipping *ShippingService
	Fee      decimal.Decimal
	Metrics  *metrics.CheckoutMetrics
	Journal  *contracts.Journal
}

func NewService(out io.Writer, shipping *ShippingService) *Service {
	return &Service{Out: out, Shipping: shipping, Fee: DefaultShippingFee}
}

// Checkout is linear and has no rollback: once the empty-cart and balance
// checks pass, every remaining step succeeds by construction. Failed checks
// terminate the transaction without touching stock or balance.
func (s *Service) Checkout(customer *domain.Customer, cart *domain.Cart) Status {
	start := time.Now()
	checkoutID := uuid.NewString()

	status := s.run(checkoutID, customer, cart)

	logging.Log(logging.Fields{
		Service:    "checkout",
		CheckoutID: checkoutID,
		Customer:   customer.Name(),
		Step:       "checkout",
		Status:     string(status),
		DurationMS: time.Since(start).Milliseconds(),
	})
	if s.Metrics != nil {
		s.Metrics.Checkouts.WithLabelValues(string(status)).Inc()
		s.Metrics.DurationMS.WithLabelValues(string(status)).Observe(float64(time.Since(start).Milliseconds()))
	}
	return status
}

func (s *Service) run(checkoutID string, customer *domain.Customer, cart *domain.Cart) Status {
	if cart.Empty() {
		fmt.Fprintln(s.Out, "Error: Cart is empty")
		s.record(contracts.EventCheckoutEmptyCart, checkoutID, nil)
		return StatusEmptyCart
	}

	subtotal := cart.Subtotal()
	total := subtotal.Add(s.Fee)

	if customer.Balance().LessThan(total) {
		fmt.Fprintln(s.Out, "Error: Insufficient balance")
		s.record(contracts.EventCheckoutInsufficientBalance, checkoutID, map[string]any{
			"amount":  total.StringFixed(1),
			"balance": customer.Balance().StringFixed(1),
		})
		return StatusInsufficientBalance
	}

	for _, it := range cart.Items() {
		it.Product().ReduceQuantity(it.Quantity())
	}

	units := cart.ShippableUnits()
	s.Shipping.Ship(units)
	if len(units) > 0 {
		s.record(contracts.EventShipmentCreated, checkoutID, map[string]any{"units": len(units)})
	}

	fmt.Fprintln(s.Out, "** Checkout receipt **")
	for _, it := range cart.Items() {
		fmt.Fprintf(s.Out, "%dx %s %s\n", it.Quantity(), it.Product().Name(), it.TotalPrice().StringFixed(1))
	}
	fmt.Fprintln(s.Out, "----------------------")
	fmt.Fprintf(s.Out, "Subtotal %s\n", subtotal.StringFixed(1))
	fmt.Fprintf(s.Out, "Shipping %s\n", s.Fee.StringFixed(1))
	fmt.Fprintf(s.Out, "Amount %s\n", total.StringFixed(1))

	customer.Deduct(total)
	fmt.Fprintf(s.Out, "Remaining Balance %s\n", customer.Balance().StringFixed(1))

	s.record(contracts.EventCheckoutCompleted, checkoutID, map[string]any{
		"customer": customer.Name(),
		"amount":   total.StringFixed(1),
	})
	return StatusCompleted
}

func (s *Service) record(eventType, checkoutID string, payload map[string]any) {
	if s.Journal == nil {
		return
	}
	s.Journal.Record(eventType, checkoutID, payload)
}
