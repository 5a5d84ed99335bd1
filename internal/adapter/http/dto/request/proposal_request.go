package request

import (
	"strings"

	"commerce_engine/internal/domain/entities"
	"commerce_engine/internal/usecase"
)

type LineItemRequest struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	// Total is computed from quantity and unit price when omitted.
	Total float64 `json:"total"`
}

// ProposalRequest is the body of proposal create and update. lead_id may be omitted on
// update to keep the current lead.
type ProposalRequest struct {
	LeadID      string            `json:"lead_id"`
	LineItems   []LineItemRequest `json:"line_items"`
	TotalAmount float64           `json:"total_amount"`
	Notes       string            `json:"notes"`
}

func (r ProposalRequest) ResolveLeadID() string {
	return strings.TrimSpace(r.LeadID)
}

func (r ProposalRequest) ToInput() usecase.ProposalInput {
	items := make([]entities.LineItem, 0, len(r.LineItems))
	for _, it := range r.LineItems {
		items = append(items, entities.LineItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return usecase.ProposalInput{
		LeadID:      r.ResolveLeadID(),
		LineItems:   items,
		TotalAmount: r.TotalAmount,
		Notes:       r.Notes,
	}
}
