package interfaces

import (
	"context"
	"errors"
	"time"

	"commerce_engine/internal/domain/entities"
)

// ErrStaleTransition is returned by conditional writes when the stored state is not
// the expected "from" state. The caller lost the race or the transition is invalid.
var ErrStaleTransition = errors.New("stale state transition")

// ErrAlreadyExists is returned by create-once writes when the record is present.
var ErrAlreadyExists = errors.New("record already exists")

// IProposalRepository abstracts persistence for Proposal.
//
// Not-found is reported as a zero-value Proposal with a nil error.
type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	ListByLeadID(ctx context.Context, leadID string) ([]entities.Proposal, error)
	UpdateDraft(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	DeleteDraft(ctx context.Context, id string) error
	// TransitionStatus moves status from -> to atomically. It returns
	// ErrStaleTransition (with the current proposal) when the stored status is not from.
	TransitionStatus(ctx context.Context, id string, from, to entities.ProposalStatus, at time.Time) (entities.Proposal, error)
	AttachOrder(ctx context.Context, id string, orderID string) error
}

// IOrderRepository abstracts persistence for Order.
//
// Every mutating method is a single conditional write so concurrent webhook
// deliveries are serialized per order id by the store itself.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByInvoiceID(ctx context.Context, invoiceID string) (entities.Order, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]entities.Order, error)

	AttachInvoice(ctx context.Context, id string, invoice entities.Invoice) (entities.Order, error)
	AttachPaymentLink(ctx context.Context, id string, url string) (entities.Order, error)
	// AdvanceInvoiceStatus moves invoice_status forward from -> to.
	AdvanceInvoiceStatus(ctx context.Context, id string, from, to entities.InvoiceStatus) (entities.Order, error)
	// TransitionPayment is the compare-and-swap on payment_status. Moving to paid also
	// writes the payment details and marks the invoice paid.
	TransitionPayment(ctx context.Context, id string, from, to entities.PaymentStatus, details entities.PaymentDetails) (entities.Order, error)
	// RecordPaymentFailure stores diagnostics only while payment_status is pending.
	RecordPaymentFailure(ctx context.Context, id string, failure entities.PaymentFailure) (entities.Order, error)
	TransitionStatus(ctx context.Context, id string, from, to entities.OrderStatus, at time.Time) (entities.Order, error)
}

// IProjectBriefRepository persists fulfillment briefs. Create returns ErrAlreadyExists
// when a brief for the same id is present.
type IProjectBriefRepository interface {
	Create(ctx context.Context, b entities.ProjectBrief) (entities.ProjectBrief, error)
	GetByOrderID(ctx context.Context, orderID string) (entities.ProjectBrief, error)
}

// IProjectRepository persists delivery projects.
type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByOrderID(ctx context.Context, orderID string) (entities.Project, error)
}

// ILeadDirectory reads CRM leads. The CRM owns them; this service never writes.
type ILeadDirectory interface {
	GetByID(ctx context.Context, id string) (entities.Lead, error)
}

// IWebhookEventLedger remembers processed gateway event ids to skip redeliveries.
type IWebhookEventLedger interface {
	Seen(ctx context.Context, provider, eventID string) (bool, error)
	Remember(ctx context.Context, provider, eventID string) error
}
