package checkout

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/nazeru/retail-checkout-go/internal/checkout/domain"
)

var gramsPerKilogram = decimal.NewFromInt(1000)

// ShippingService renders a shipment notice for the flattened shippable
// units of a cart. It is a side-effecting reporter writing to Out, not a
// query.
type ShippingService struct {
	Out io.Writer

	// PerGroupWeights makes every group line use its own unit weight.
	// When false (the default), group lines reproduce the historical
	// aggregation: the weight of the first unit in the overall list
	// multiplied by the group count. Downstream compatibility checks pin
	// the historical output, so flipping this changes observable behavior.
	PerGroupWeights bool
}

func NewShippingService(out io.Writer) *ShippingService {
	return &ShippingService{Out: out}
}

// Ship groups units by product name in first-appearance order and prints
// one line per distinct name plus the package total. Empty input produces
// no output at all.
func (s *ShippingService) Ship(units []domain.Shippable) {
	if len(units) == 0 {
		return
	}

	fmt.Fprintln(s.Out, "** Shipment notice **")

	var names []string
	counts := make(map[string]int)
	unitWeights := make(map[string]decimal.Decimal)
	totalWeight := decimal.Zero
	for _, u := range units {
		totalWeight = totalWeight.Add(u.Weight())
		if _, ok := counts[u.Name()]; !ok {
			names = append(names, u.Name())
			unitWeights[u.Name()] = u.Weight()
		}
		counts[u.Name()]++
	}

	for _, name := range names {
		unit := units[0].Weight()
		if s.PerGroupWeights {
			unit = unitWeights[name]
		}
		groupWeight := unit.Mul(decimal.NewFromInt(int64(counts[name])))
		fmt.Fprintf(s.Out, "%dx %s %sg\n", counts[name], name, groupWeight.StringFixed(1))
	}

	fmt.Fprintf(s.Out, "Total package weight %skg\n", totalWeight.Div(gramsPerKilogram).StringFixed(1))
}
