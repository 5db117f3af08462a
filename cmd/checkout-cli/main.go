package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/nazeru/retail-checkout-go/internal/checkout"
	"github.com/nazeru/retail-checkout-go/internal/checkout/domain"
	"github.com/nazeru/retail-checkout-go/pkg/contracts"
	"github.com/nazeru/retail-checkout-go/pkg/logging"
	"github.com/nazeru/retail-checkout-go/pkg/metrics"
)

type scenario struct {
	Name        string
	Description string
}

type model struct {
	scenarios []scenario
	selected  int
	status    string
	output    string
	busy      bool

	catalog *domain.Catalog
	fee     decimal.Decimal
	metrics *metrics.CheckoutMetrics
	journal *contracts.Journal
}

func initialModel(fee decimal.Decimal, m *metrics.CheckoutMetrics, j *contracts.Journal) model {
	return model{
		catalog: seedCatalog(),
		scenarios: []scenario{
			{"success", "Checkout the reference cart"},
			{"empty", "Checkout with an empty cart"},
			{"balance", "Checkout with insufficient balance"},
			{"expired", "Add an expired product to the cart"},
			{"stock", "Request more units than in stock"},
		},
		status:  "Ready",
		fee:     fee,
		metrics: m,
		journal: j,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up":
			if m.selected > 0 {
				m.selected--
			}
		case "down":
			if m.selected < len(m.scenarios)-1 {
				m.selected++
			}
		case "enter":
			if m.busy {
				return m, nil
			}
			m.busy = true
			m.status = "Running..."
			name := m.scenarios[m.selected].Name
			fee, mt, j := m.fee, m.metrics, m.journal
			return m, func() tea.Msg {
				out, err := runScenario(name, fee, mt, j)
				if err != nil {
					return scenarioResult{status: fmt.Sprintf("Rejected: %v", err), output: out}
				}
				return scenarioResult{status: "Done", output: out}
			}
		}
	case scenarioResult:
		m.busy = false
		m.status = msg.status
		m.output = msg.output
	}
	return m, nil
}

func (m model) View() string {
	b := &strings.Builder{}
	fmt.Fprintln(b, "retail-checkout-go CLI")
	fmt.Fprintln(b, "")
	fmt.Fprintln(b, "Catalog:")
	for _, p := range m.catalog.List() {
		fmt.Fprintf(b, "  %s %s (%d in stock)\n", p.Name(), p.Price().StringFixed(1), p.Quantity())
	}
	fmt.Fprintln(b, "")
	fmt.Fprintln(b, "Scenarios:")
	for i, scn := range m.scenarios {
		marker := " "
		if i == m.selected {
			marker = ">"
		}
		fmt.Fprintf(b, " %s %s - %s\n", marker, scn.Name, scn.Description)
	}
	fmt.Fprintln(b, "")
	fmt.Fprintf(b, "Status: %s\n", m.status)
	if m.output != "" {
		fmt.Fprintln(b, "")
		fmt.Fprint(b, m.output)
	}
	fmt.Fprintln(b, "\nControls: up/down select scenario, enter to run, q to quit")
	return b.String()
}

type scenarioResult struct {
	status string
	output string
}

func seedCatalog() *domain.Catalog {
	c := domain.NewCatalog()
	c.Register(domain.NewPerishable("Cheese", decimal.NewFromInt(100), 5, false, decimal.NewFromInt(200)))
	c.Register(domain.NewPerishable("Biscuits", decimal.NewFromInt(150), 3, false, decimal.NewFromInt(700)))
	c.Register(domain.NewDurable("TV", decimal.NewFromInt(300), 5, decimal.NewFromInt(10000)))
	c.Register(domain.NewDigital("Scratch Card", decimal.NewFromInt(50), 10))
	return c
}

// runScenario builds a fresh catalog and customer, drives one of the seeded
// flows, and returns whatever the checkout printed. A non-nil error means
// the cart rejected an addition before checkout ran.
func runScenario(name string, fee decimal.Decimal, m *metrics.CheckoutMetrics, j *contracts.Journal) (string, error) {
	catalog := seedCatalog()
	customer := domain.NewCustomer("Nada", decimal.NewFromInt(50000))
	cart := domain.NewCart()
	out := &bytes.Buffer{}

	svc := checkout.NewService(out, checkout.NewShippingService(out))
	svc.Fee = fee
	svc.Metrics = m
	svc.Journal = j

	add := func(productName string, qty int) error {
		p, ok := catalog.Get(productName)
		if !ok {
			return fmt.Errorf("unknown product %q", productName)
		}
		if err := cart.Add(p, qty); err != nil {
			reason := "unknown"
			switch {
			case errors.Is(err, domain.ErrInsufficientStock):
				reason = "insufficient_stock"
			case errors.Is(err, domain.ErrExpiredProduct):
				reason = "expired"
			}
			if m != nil {
				m.CartRejections.WithLabelValues(reason).Inc()
			}
			if j != nil {
				j.Record(contracts.EventCartRejected, "", map[string]any{"product": productName, "reason": reason})
			}
			logging.Log(logging.Fields{Service: "checkout-cli", Product: productName, Step: "cart_add", Status: "rejected", Message: err.Error()})
			return err
		}
		return nil
	}

	switch name {
	case "success":
		for _, line := range []struct {
			product string
			qty     int
		}{{"Cheese", 2}, {"Biscuits", 1}, {"Scratch Card", 1}} {
			if err := add(line.product, line.qty); err != nil {
				return out.String(), err
			}
		}
		svc.Checkout(customer, cart)
	case "empty":
		svc.Checkout(customer, cart)
	case "balance":
		broke := domain.NewCustomer("Nada", decimal.NewFromInt(100))
		if err := add("TV", 1); err != nil {
			return out.String(), err
		}
		svc.Checkout(broke, cart)
	case "expired":
		catalog.Register(domain.NewPerishable("Milk", decimal.NewFromInt(60), 4, true, decimal.NewFromInt(1000)))
		if err := add("Milk", 1); err != nil {
			return out.String(), err
		}
		svc.Checkout(customer, cart)
	case "stock":
		if err := add("Biscuits", 4); err != nil {
			return out.String(), err
		}
		svc.Checkout(customer, cart)
	default:
		return "", fmt.Errorf("unknown scenario %q", name)
	}
	return out.String(), nil
}

func main() {
	runCmd := flag.String("run", "", "run scenario: success|empty|balance|expired|stock")
	flag.Parse()

	fee := checkout.DefaultShippingFee
	if v := getenv("SHIPPING_FEE", ""); v != "" {
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			log.Fatalf("invalid SHIPPING_FEE: %v", err)
		}
		fee = parsed
	}

	m := metrics.NewCheckoutMetrics(nil)
	journal := contracts.NewJournal()

	if addr := getenv("METRICS_ADDR", ""); addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			log.Printf("metrics listening on %s", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("metrics server error: %v", err)
			}
		}()
	}

	if *runCmd != "" {
		out, err := runScenario(*runCmd, fee, m, journal)
		fmt.Print(out)
		if err != nil {
			fmt.Println("Cart rejected:", err)
			os.Exit(1)
		}
		return
	}

	p := tea.NewProgram(initialModel(fee, m, journal))
	if _, err := p.Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func getenv(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}
