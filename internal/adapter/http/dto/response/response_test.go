package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"commerce_engine/internal/domain/entities"
)

func TestFromProposal(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Proposal{
		ID:          "prop-1",
		LeadID:      "lead-1",
		Status:      entities.ProposalStatusAccepted,
		LineItems:   []entities.LineItem{{Description: "Website", Quantity: 1, UnitPrice: 2500, Total: 2500}},
		TotalAmount: 2500,
		OrderID:     "ord-1",
		DecidedAt:   &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res := FromProposal(p)
	if res.ID != "prop-1" || res.Status != "accepted" || res.OrderID != "ord-1" || res.TotalAmount != 2500 {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if len(res.LineItems) != 1 || res.LineItems[0].UnitPrice != 2500 {
		t.Fatalf("unexpected line items: %+v", res.LineItems)
	}
	if res.DecidedAt == nil || !res.DecidedAt.Equal(now) {
		t.Fatalf("unexpected decided_at: %+v", res.DecidedAt)
	}
	if got := FromProposals([]entities.Proposal{p, p}); len(got) != 2 {
		t.Fatalf("expected 2 proposals, got %d", len(got))
	}
}

func TestFromProposalValidation(t *testing.T) {
	res := FromProposalValidation(entities.ProposalValidation{Valid: true})
	raw, _ := json.Marshal(res)
	if !strings.Contains(string(raw), `"errors":[]`) {
		t.Fatalf("expected empty errors array, got %s", raw)
	}
}

func TestFromOrder(t *testing.T) {
	paidAt := time.Now().UTC()
	o := entities.Order{
		ID:                   "ord-1",
		CompanyID:            "cmp-1",
		Status:               entities.OrderStatusInProgress,
		Package:              "starter",
		CustomItems:          []entities.CustomItem{{Description: "Logo", Price: 500}},
		Subtotal:             1694,
		Total:                1694,
		InvoiceID:            "inv-1",
		InvoiceStatus:        entities.InvoiceStatusPaid,
		PaymentStatus:        entities.PaymentStatusPaid,
		StripePaymentLinkURL: "https://pay.test/1",
		PaymentDate:          &paidAt,
	}

	res := FromOrder(o)
	if res.Status != "in_progress" || res.PaymentStatus != "paid" || res.InvoiceStatus != "paid" {
		t.Fatalf("unexpected statuses: %+v", res)
	}
	if res.PaymentLinkURL != "https://pay.test/1" || len(res.CustomItems) != 1 || res.Addons == nil {
		t.Fatalf("unexpected fields: %+v", res)
	}

	tr := FromPaymentTransition(entities.PaymentTransition{Order: o, Transitioned: true, Fulfillment: &entities.FulfillmentReport{OrderID: "ord-1"}})
	if !tr.Transitioned || tr.Order.ID != "ord-1" || tr.Fulfillment.OrderID != "ord-1" {
		t.Fatalf("unexpected transition: %+v", tr)
	}
}
