package entities

import "time"

// Gateway event types consumed by the webhook processor. Anything else is parsed as
// UnknownGatewayEvent and acknowledged without touching an order.
const (
	EventTypeCheckoutSessionCompleted   = "checkout.session.completed"
	EventTypePaymentIntentSucceeded     = "payment_intent.succeeded"
	EventTypePaymentIntentPaymentFailed = "payment_intent.payment_failed"
)

// PaymentCorrelation is the metadata round-tripped through the gateway so events can
// be matched back to an order.
type PaymentCorrelation struct {
	OrderID   string
	InvoiceID string
	CompanyID string
}

// EventEnvelope holds the fields shared by every verified gateway event.
type EventEnvelope struct {
	ID          string
	Type        string
	Provider    string
	Correlation PaymentCorrelation
	CreatedAt   time.Time
}

// Envelope makes every variant embedding EventEnvelope a GatewayEvent.
func (e EventEnvelope) Envelope() EventEnvelope { return e }

// GatewayEvent is a verified, parsed event. Concrete variants:
//   - CheckoutSessionCompleted
//   - PaymentIntentSucceeded
//   - PaymentIntentFailed
//   - UnknownGatewayEvent
type GatewayEvent interface {
	Envelope() EventEnvelope
}

type CheckoutSessionCompleted struct {
	EventEnvelope
	SessionID       string
	PaymentIntentID string
	PaymentStatus   string
	AmountTotal     float64
	PaymentMethod   string
}

// Settled reports whether the session carries money. Sessions paid with delayed
// methods complete as "unpaid" and settle later through payment_intent.succeeded.
func (e CheckoutSessionCompleted) Settled() bool {
	switch e.PaymentStatus {
	case "", "paid", "no_payment_required":
		return true
	}
	return false
}

type PaymentIntentSucceeded struct {
	EventEnvelope
	PaymentIntentID string
	Amount          float64
	PaymentMethod   string
}

type PaymentIntentFailed struct {
	EventEnvelope
	PaymentIntentID string
	FailureMessage  string
}

type UnknownGatewayEvent struct {
	EventEnvelope
}

// WebhookDelivery is an inbound webhook request as received, before verification.
//
// RequestID and ResourceID are only used by providers that sign more than the body.
type WebhookDelivery struct {
	Payload    []byte
	Signature  string
	RequestID  string
	ResourceID string
}

// WebhookAction describes what the processor did with a verified event.
type WebhookAction string

const (
	WebhookActionIgnored         WebhookAction = "ignored"
	WebhookActionDuplicate       WebhookAction = "duplicate"
	WebhookActionUncorrelated    WebhookAction = "uncorrelated"
	WebhookActionPaid            WebhookAction = "paid"
	WebhookActionAlreadyPaid     WebhookAction = "already_paid"
	WebhookActionFailureRecorded WebhookAction = "failure_recorded"
	WebhookActionNoop            WebhookAction = "noop"
	WebhookActionError           WebhookAction = "error"
)

// WebhookOutcome is returned to the HTTP layer for logging; it never changes the
// response status once verification has passed.
type WebhookOutcome struct {
	EventID     string             `json:"event_id"`
	EventType   string             `json:"event_type"`
	OrderID     string             `json:"order_id,omitempty"`
	Action      WebhookAction      `json:"action"`
	Fulfillment *FulfillmentReport `json:"fulfillment,omitempty"`
}
