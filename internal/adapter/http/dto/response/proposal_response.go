package response

import (
	"time"

	"commerce_engine/internal/domain/entities"
)

type LineItemResponse struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

type ProposalResponse struct {
	ID          string             `json:"id"`
	LeadID      string             `json:"lead_id"`
	Status      string             `json:"status"`
	LineItems   []LineItemResponse `json:"line_items"`
	TotalAmount float64            `json:"total_amount"`
	Notes       string             `json:"notes,omitempty"`
	OrderID     string             `json:"order_id,omitempty"`
	SentAt      *time.Time         `json:"sent_at,omitempty"`
	DecidedAt   *time.Time         `json:"decided_at,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	items := make([]LineItemResponse, 0, len(p.LineItems))
	for _, it := range p.LineItems {
		items = append(items, LineItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return ProposalResponse{
		ID:          p.ID,
		LeadID:      p.LeadID,
		Status:      string(p.Status),
		LineItems:   items,
		TotalAmount: p.TotalAmount,
		Notes:       p.Notes,
		OrderID:     p.OrderID,
		SentAt:      p.SentAt,
		DecidedAt:   p.DecidedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromProposals(ps []entities.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProposal(p))
	}
	return out
}

type ProposalValidationResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

func FromProposalValidation(v entities.ProposalValidation) ProposalValidationResponse {
	errs := v.Errors
	if errs == nil {
		errs = []string{}
	}
	return ProposalValidationResponse{Valid: v.Valid, Errors: errs}
}

type AcceptProposalResponse struct {
	Proposal ProposalResponse `json:"proposal"`
	Order    OrderResponse    `json:"order"`
}
