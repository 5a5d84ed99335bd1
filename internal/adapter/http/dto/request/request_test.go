package request

import "testing"

func TestProposalRequest_ToInput(t *testing.T) {
	r := ProposalRequest{
		LeadID:      " lead-1 ",
		LineItems:   []LineItemRequest{{Description: "Website", Quantity: 1, UnitPrice: 2500}},
		TotalAmount: 2500,
		Notes:       "rush",
	}
	in := r.ToInput()
	if in.LeadID != "lead-1" || len(in.LineItems) != 1 || in.LineItems[0].UnitPrice != 2500 || in.TotalAmount != 2500 {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestCreateOrderRequest_ToOrderRequest(t *testing.T) {
	r := CreateOrderRequest{
		CompanyID:   " cmp-1 ",
		Package:     " basic ",
		Addons:      []string{"contact_forms", " ", "seo_optimization"},
		CustomItems: []CustomItemRequest{{Description: " Logo ", Price: 500}},
	}
	if got := r.ResolveCompanyID(); got != "cmp-1" {
		t.Fatalf("expected cmp-1, got %q", got)
	}
	req := r.ToOrderRequest()
	if req.Package != "basic" || len(req.Addons) != 2 || req.CustomItems[0].Description != "Logo" {
		t.Fatalf("unexpected order request: %+v", req)
	}
}

func TestRecordPaymentRequest_ToInput(t *testing.T) {
	in := RecordPaymentRequest{Amount: 10, Method: " pix ", TransactionID: " tx "}.ToInput()
	if in.Amount != 10 || in.Method != "pix" || in.TransactionID != "tx" {
		t.Fatalf("unexpected input: %+v", in)
	}
}
