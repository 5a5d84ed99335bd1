package entities

import "time"

// ProposalStatus represents the lifecycle of a sales proposal.
//
// Domain notes:
//   - draft is the only editable state.
//   - accepted and rejected are terminal; accepted spawns exactly one Order.
type ProposalStatus string

const (
	ProposalStatusDraft    ProposalStatus = "draft"
	ProposalStatusSent     ProposalStatus = "sent"
	ProposalStatusAccepted ProposalStatus = "accepted"
	ProposalStatusRejected ProposalStatus = "rejected"
)

// LineItem is a priced component of a Proposal.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// Proposal is a priced offer sent to a CRM lead.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (lead_id-index): lead_id
type Proposal struct {
	ID          string         `json:"id"`
	LeadID      string         `json:"lead_id"`
	Status      ProposalStatus `json:"status"`
	LineItems   []LineItem     `json:"line_items"`
	TotalAmount float64        `json:"total_amount"`
	Notes       string         `json:"notes"`
	OrderID     string         `json:"order_id,omitempty"`
	SentAt      *time.Time     `json:"sent_at,omitempty"`
	DecidedAt   *time.Time     `json:"decided_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ProposalValidation is the outcome of checking a proposal before it is sent.
type ProposalValidation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Lead is the subset of a CRM lead the commerce workflow reads.
type Lead struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CompanyID string `json:"company_id"`
}
