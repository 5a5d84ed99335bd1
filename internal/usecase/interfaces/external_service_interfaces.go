package interfaces

import (
	"context"
	"errors"

	"commerce_engine/internal/domain/entities"
)

var (
	// ErrMalformedWebhookEvent is returned by VerifyWebhookSignature when the signature
	// is valid but the event cannot be decoded.
	ErrMalformedWebhookEvent = errors.New("malformed webhook event")
	// ErrGatewayUnavailable is returned when a verified event needs a gateway API call
	// that failed.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)

// IPaymentGateway abstracts external payment providers (Stripe, Mercado Pago).
type IPaymentGateway interface {
	Provider() string
	// CreatePaymentLink returns ok=false when the gateway is not configured or the call
	// failed; callers treat that as "link unavailable, retry later".
	CreatePaymentLink(ctx context.Context, order entities.Order) (link entities.PaymentLink, ok bool)
	// VerifyWebhookSignature is the trust boundary for inbound events. Nothing in the
	// delivery is read before the signature checks out.
	VerifyWebhookSignature(ctx context.Context, delivery entities.WebhookDelivery) (entities.GatewayEvent, error)
}

// InvoiceRequest is the payload sent to the billing service on order creation.
type InvoiceRequest struct {
	OrderID   string
	CompanyID string
	Package   string
	Amount    float64
	Notes     string
}

// PaymentRecordRequest is the payload sent to the billing service for a payment.
type PaymentRecordRequest struct {
	InvoiceID     string
	OrderID       string
	Amount        float64
	Method        string
	TransactionID string
}

// IBillingServiceClient is the external invoicing service. Calls are safe to retry.
type IBillingServiceClient interface {
	CreateInvoice(ctx context.Context, req InvoiceRequest) (entities.Invoice, error)
	SendInvoice(ctx context.Context, invoiceID string) error
	RecordPayment(ctx context.Context, req PaymentRecordRequest) error
}

// INotifier sends transactional email. Errors are logged by callers, never propagated
// into the workflow.
type INotifier interface {
	SendEmail(ctx context.Context, msg entities.EmailMessage) error
}

// ITeamNotifier announces new paid projects to the internal team.
type ITeamNotifier interface {
	NotifyNewPaidProject(ctx context.Context, notice entities.NewPaidProjectNotice) error
}

// IKickoffScheduler requests a kickoff call for a paid order.
type IKickoffScheduler interface {
	RequestKickoff(ctx context.Context, order entities.Order) error
}
