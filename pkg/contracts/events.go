package contracts

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	EventID    string         `json:"event_id"`
	CheckoutID string         `json:"checkout_id,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	Type       string         `json:"type"`
	Payload    map[string]any `json:"payload,omitempty"`
}

const (
	EventCartRejected                = "cart.rejected"
	EventCheckoutCompleted           = "checkout.completed"
	EventCheckoutEmptyCart           = "checkout.empty_cart"
	EventCheckoutInsufficientBalance = "checkout.insufficient_balance"
	EventShipmentCreated             = "shipping.created"
)

// Journal is an in-memory, append-only event record. There is no broker
// behind it; consumers read the slice back within the same process.
type Journal struct {
	events []Event
}

func NewJournal() *Journal {
	return &Journal{}
}

func (j *Journal) Record(eventType, checkoutID string, payload map[string]any) Event {
	ev := Event{
		EventID:    uuid.NewString(),
		CheckoutID: checkoutID,
		CreatedAt:  time.Now().UTC(),
		Type:       eventType,
		Payload:    payload,
	}
	j.events = append(j.events, ev)
	return ev
}

func (j *Journal) Events() []Event {
	return j.events
}
