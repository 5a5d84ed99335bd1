package response

import (
	"time"

	"commerce_engine/internal/domain/entities"
)

type CustomItemResponse struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type OrderResponse struct {
	ID                   string               `json:"id"`
	CompanyID            string               `json:"company_id"`
	ProposalID           string               `json:"proposal_id,omitempty"`
	Status               string               `json:"status"`
	Package              string               `json:"package"`
	Addons               []string             `json:"addons"`
	CustomItems          []CustomItemResponse `json:"custom_items"`
	Subtotal             float64              `json:"subtotal"`
	Tax                  float64              `json:"tax"`
	Total                float64              `json:"total"`
	CustomerName         string               `json:"customer_name,omitempty"`
	CustomerEmail        string               `json:"customer_email,omitempty"`
	InvoiceID            string               `json:"invoice_id,omitempty"`
	InvoiceStatus        string               `json:"invoice_status"`
	PaymentStatus        string               `json:"payment_status"`
	PaymentLinkURL       string               `json:"stripe_payment_link_url,omitempty"`
	PaymentIntentID      string               `json:"stripe_payment_intent_id,omitempty"`
	PaymentDate          *time.Time           `json:"payment_date,omitempty"`
	PaymentMethod        string               `json:"payment_method,omitempty"`
	AmountPaid           float64              `json:"amount_paid,omitempty"`
	LastPaymentFailure   string               `json:"last_payment_failure,omitempty"`
	LastPaymentFailureAt *time.Time           `json:"last_payment_failure_at,omitempty"`
	FulfilledAt          *time.Time           `json:"fulfilled_at,omitempty"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            time.Time            `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	addons := o.Addons
	if addons == nil {
		addons = []string{}
	}
	items := make([]CustomItemResponse, 0, len(o.CustomItems))
	for _, it := range o.CustomItems {
		items = append(items, CustomItemResponse{Description: it.Description, Price: it.Price})
	}
	return OrderResponse{
		ID:                   o.ID,
		CompanyID:            o.CompanyID,
		ProposalID:           o.ProposalID,
		Status:               string(o.Status),
		Package:              o.Package,
		Addons:               addons,
		CustomItems:          items,
		Subtotal:             o.Subtotal,
		Tax:                  o.Tax,
		Total:                o.Total,
		CustomerName:         o.CustomerName,
		CustomerEmail:        o.CustomerEmail,
		InvoiceID:            o.InvoiceID,
		InvoiceStatus:        string(o.InvoiceStatus),
		PaymentStatus:        string(o.PaymentStatus),
		PaymentLinkURL:       o.StripePaymentLinkURL,
		PaymentIntentID:      o.StripePaymentIntentID,
		PaymentDate:          o.PaymentDate,
		PaymentMethod:        o.PaymentMethod,
		AmountPaid:           o.AmountPaid,
		LastPaymentFailure:   o.LastPaymentFailure,
		LastPaymentFailureAt: o.LastPaymentFailureAt,
		FulfilledAt:          o.FulfilledAt,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}

func FromOrders(os []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(os))
	for _, o := range os {
		out = append(out, FromOrder(o))
	}
	return out
}

type PaymentTransitionResponse struct {
	Order        OrderResponse               `json:"order"`
	Transitioned bool                        `json:"transitioned"`
	Fulfillment  *entities.FulfillmentReport `json:"fulfillment,omitempty"`
}

func FromPaymentTransition(t entities.PaymentTransition) PaymentTransitionResponse {
	return PaymentTransitionResponse{
		Order:        FromOrder(t.Order),
		Transitioned: t.Transitioned,
		Fulfillment:  t.Fulfillment,
	}
}

// WebhookAckResponse is returned for every verified delivery, whatever the outcome.
type WebhookAckResponse struct {
	Received bool                    `json:"received"`
	Outcome  entities.WebhookOutcome `json:"outcome"`
}
