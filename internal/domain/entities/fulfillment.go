package entities

import "time"

type ProjectBriefStatus string

const (
	ProjectBriefStatusAwaitingAdmin ProjectBriefStatus = "awaiting_admin"
	ProjectBriefStatusInReview      ProjectBriefStatus = "in_review"
	ProjectBriefStatusCompleted     ProjectBriefStatus = "completed"
)

// ProjectBrief is the placeholder an admin completes after a paid order.
//
// The id is derived from the order id, so a second create for the same order is
// rejected by the store instead of producing a duplicate.
type ProjectBrief struct {
	ID        string             `json:"id"`
	OrderID   string             `json:"order_id"`
	CompanyID string             `json:"company_id"`
	Package   string             `json:"package"`
	Status    ProjectBriefStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type ProjectStatus string

const ProjectStatusPlanning ProjectStatus = "planning"

// Project is the delivery record linking a company to a paid order.
type Project struct {
	ID        string        `json:"id"`
	CompanyID string        `json:"company_id"`
	OrderID   string        `json:"order_id"`
	Name      string        `json:"name"`
	Package   string        `json:"package"`
	Status    ProjectStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// Fulfillment step names, in execution order.
const (
	StepWelcomeEmail    = "welcome_email"
	StepProjectBrief    = "project_brief"
	StepProject         = "project"
	StepTeamNotice      = "team_notification"
	StepKickoffSchedule = "kickoff_scheduling"
)

// StepResult is the outcome of one isolated fulfillment step.
type StepResult struct {
	Name  string `json:"name"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// FulfillmentReport collects every step result of a pipeline run.
type FulfillmentReport struct {
	OrderID    string       `json:"order_id"`
	Steps      []StepResult `json:"steps"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
}

// Failed returns the steps that did not complete.
func (r FulfillmentReport) Failed() []StepResult {
	var out []StepResult
	for _, s := range r.Steps {
		if !s.OK {
			out = append(out, s)
		}
	}
	return out
}

// NewPaidProjectNotice is the structured message sent to the internal team.
type NewPaidProjectNotice struct {
	OrderID       string
	CompanyID     string
	Package       string
	Total         float64
	CustomerName  string
	CustomerEmail string
	ProjectID     string
	BriefID       string
	PaidAt        time.Time
}

// EmailKind tags transactional emails for logging and filtering.
type EmailKind string

const (
	EmailKindProposal    EmailKind = "proposal"
	EmailKindReceipt     EmailKind = "receipt"
	EmailKindWelcome     EmailKind = "welcome"
	EmailKindPaymentLink EmailKind = "payment_link"
	EmailKindAdminAlert  EmailKind = "admin_alert"
	EmailKindKickoff     EmailKind = "kickoff"
)

// EmailMessage is a rendered transactional email.
type EmailMessage struct {
	Kind    EmailKind
	To      string
	Subject string
	Text    string
	HTML    string
}
