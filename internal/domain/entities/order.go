package entities

import "time"

type OrderStatus string

const (
	OrderStatusDraft      OrderStatus = "draft"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
)

// InvoiceStatus only advances draft -> sent -> paid.
type InvoiceStatus string

const (
	InvoiceStatusDraft InvoiceStatus = "draft"
	InvoiceStatusSent  InvoiceStatus = "sent"
	InvoiceStatusPaid  InvoiceStatus = "paid"
)

// Rank orders invoice statuses so callers can refuse regressions.
func (s InvoiceStatus) Rank() int {
	switch s {
	case InvoiceStatusDraft:
		return 1
	case InvoiceStatusSent:
		return 2
	case InvoiceStatusPaid:
		return 3
	}
	return 0
}

// PaymentStatus is monotonic toward paid: once paid, no event moves it back.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Canonical package names. Anything else is resolved through the catalog aliases.
const (
	PackageStarter      = "starter"
	PackageGrowth       = "growth"
	PackageProfessional = "professional"
	PackageCustom       = "custom"
)

// CustomItem is a free-form priced line on an Order.
type CustomItem struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Order is a billable unit of work tied to a company.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id
//   - GSI2 (invoice_id-index): invoice_id
//
// Total is fixed at creation. PaymentStatus and InvoiceStatus are only changed through
// conditional transitions in the repository.
type Order struct {
	ID         string      `json:"id"`
	CompanyID  string      `json:"company_id"`
	ProposalID string      `json:"proposal_id,omitempty"`
	Status     OrderStatus `json:"status"`

	Package     string       `json:"package"`
	Addons      []string     `json:"addons,omitempty"`
	CustomItems []CustomItem `json:"custom_items,omitempty"`
	Subtotal    float64      `json:"subtotal"`
	Tax         float64      `json:"tax"`
	Total       float64      `json:"total"`

	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
	Notes         string `json:"notes,omitempty"`

	InvoiceID     string        `json:"invoice_id,omitempty"`
	InvoiceStatus InvoiceStatus `json:"invoice_status"`

	PaymentStatus         PaymentStatus `json:"payment_status"`
	StripePaymentLinkURL  string        `json:"stripe_payment_link_url,omitempty"`
	StripePaymentIntentID string        `json:"stripe_payment_intent_id,omitempty"`
	PaymentDate           *time.Time    `json:"payment_date,omitempty"`
	PaymentMethod         string        `json:"payment_method,omitempty"`
	AmountPaid            float64       `json:"amount_paid,omitempty"`

	LastPaymentFailure   string     `json:"last_payment_failure,omitempty"`
	LastPaymentFailureAt *time.Time `json:"last_payment_failure_at,omitempty"`
	FulfilledAt          *time.Time `json:"fulfilled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsPaid reports whether the paid transition already happened.
func (o Order) IsPaid() bool {
	return o.PaymentStatus == PaymentStatusPaid
}

// OrderRequest is the input to order creation.
type OrderRequest struct {
	Package       string       `json:"package"`
	Addons        []string     `json:"addons"`
	CustomItems   []CustomItem `json:"custom_items"`
	ProposalID    string       `json:"proposal_id,omitempty"`
	CustomerName  string       `json:"customer_name,omitempty"`
	CustomerEmail string       `json:"customer_email,omitempty"`
	Notes         string       `json:"notes,omitempty"`
}

// PaymentDetails are written together with the pending -> paid transition.
type PaymentDetails struct {
	Amount        float64
	Method        string
	TransactionID string
	PaidAt        time.Time
}

// PaymentFailure is recorded on a still-pending order for diagnostics.
type PaymentFailure struct {
	TransactionID string
	Reason        string
	FailedAt      time.Time
}

// PaymentTransition reports what a payment event did to an order.
//
// Transitioned is true only for the single caller that moved the order from pending
// to paid; only that caller ran the receipt email and the fulfillment pipeline.
type PaymentTransition struct {
	Order        Order
	Transitioned bool
	Fulfillment  *FulfillmentReport
}

// Invoice is the billing-service view of an invoice attached to an order.
type Invoice struct {
	ID     string        `json:"invoice_id"`
	Status InvoiceStatus `json:"status"`
}

// PaymentLink is a hosted checkout URL created by the payment gateway.
type PaymentLink struct {
	ID  string
	URL string
}
