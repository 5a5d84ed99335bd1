package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"commerce_engine/internal/domain/entities"
	"commerce_engine/internal/usecase/interfaces"
	"commerce_engine/internal/usecase/messages"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrProposalNotFound        = errors.New("proposal not found")
	ErrInvalidProposalID       = errors.New("invalid proposal id")
	ErrInvalidLeadID           = errors.New("invalid lead id")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrMissingLineItems        = errors.New("proposal has no line items")
	ErrInvalidTotal            = errors.New("proposal total must be greater than zero")
	ErrInvalidProposal         = errors.New("proposal failed validation")
	ErrMissingEmail            = errors.New("lead has no email address")
	ErrOrderCreationFailed     = errors.New("order creation failed")
)

// ProposalInput is the editable part of a proposal.
type ProposalInput struct {
	LeadID      string
	LineItems   []entities.LineItem
	TotalAmount float64
	Notes       string
}

// IProposalUseCase exposes the proposal lifecycle:
//   - CRUD while the proposal is a draft
//   - draft -> sent (SendProposal), sent -> accepted (AcceptProposal, spawns the order),
//     sent -> rejected (RejectProposal)
type IProposalUseCase interface {
	CreateProposal(ctx context.Context, in ProposalInput) (entities.Proposal, error)
	UpdateProposal(ctx context.Context, id string, in ProposalInput) (entities.Proposal, error)
	DeleteProposal(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	ListByLeadID(ctx context.Context, leadID string) ([]entities.Proposal, error)
	Validate(ctx context.Context, id string) (entities.ProposalValidation, error)
	SendProposal(ctx context.Context, id string) (entities.Proposal, error)
	AcceptProposal(ctx context.Context, id string) (entities.Proposal, entities.Order, error)
	RejectProposal(ctx context.Context, id string) (entities.Proposal, error)
}

type ProposalUseCase struct {
	repo     interfaces.IProposalRepository
	leads    interfaces.ILeadDirectory
	orders   interfaces.IOrderService
	notifier interfaces.INotifier
	messages *messages.Composer
	now      func() time.Time
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(
	repo interfaces.IProposalRepository,
	leads interfaces.ILeadDirectory,
	orders interfaces.IOrderService,
	notifier interfaces.INotifier,
	composer *messages.Composer,
) *ProposalUseCase {
	if composer == nil {
		composer = messages.NewComposer(nil, "", "")
	}
	return &ProposalUseCase{
		repo:     repo,
		leads:    leads,
		orders:   orders,
		notifier: notifier,
		messages: composer,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *ProposalUseCase) CreateProposal(ctx context.Context, in ProposalInput) (entities.Proposal, error) {
	leadID := strings.TrimSpace(in.LeadID)
	if leadID == "" {
		return entities.Proposal{}, ErrInvalidLeadID
	}

	items := normalizeLineItems(in.LineItems)
	total := in.TotalAmount
	if total == 0 {
		total = sumLineItems(items)
	}

	now := u.now()
	p := entities.Proposal{
		ID:          uuid.NewString(),
		LeadID:      leadID,
		Status:      entities.ProposalStatusDraft,
		LineItems:   items,
		TotalAmount: total,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[proposal][usecase] create failed lead_id=%s err=%v", leadID, err)
		return entities.Proposal{}, err
	}
	log.Printf("[proposal][usecase] created proposal_id=%s lead_id=%s total=%.2f items=%d", created.ID, leadID, created.TotalAmount, len(created.LineItems))
	return created, nil
}

func (u *ProposalUseCase) UpdateProposal(ctx context.Context, id string, in ProposalInput) (entities.Proposal, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if current.Status != entities.ProposalStatusDraft {
		return entities.Proposal{}, ErrInvalidStatusTransition
	}

	if v := strings.TrimSpace(in.LeadID); v != "" {
		current.LeadID = v
	}
	current.LineItems = normalizeLineItems(in.LineItems)
	current.TotalAmount = in.TotalAmount
	if current.TotalAmount == 0 {
		current.TotalAmount = sumLineItems(current.LineItems)
	}
	current.Notes = strings.TrimSpace(in.Notes)
	current.UpdatedAt = u.now()

	updated, err := u.repo.UpdateDraft(ctx, current)
	if errors.Is(err, interfaces.ErrStaleTransition) {
		return entities.Proposal{}, ErrInvalidStatusTransition
	}
	if err != nil {
		return entities.Proposal{}, err
	}
	if updated.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return updated, nil
}

func (u *ProposalUseCase) DeleteProposal(ctx context.Context, id string) error {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.Status != entities.ProposalStatusDraft {
		return ErrInvalidStatusTransition
	}
	if err := u.repo.DeleteDraft(ctx, current.ID); err != nil {
		if errors.Is(err, interfaces.ErrStaleTransition) {
			return ErrInvalidStatusTransition
		}
		return err
	}
	log.Printf("[proposal][usecase] deleted draft proposal_id=%s", current.ID)
	return nil
}

func (u *ProposalUseCase) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

func (u *ProposalUseCase) ListByLeadID(ctx context.Context, leadID string) ([]entities.Proposal, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return nil, ErrInvalidLeadID
	}
	return u.repo.ListByLeadID(ctx, leadID)
}

func (u *ProposalUseCase) Validate(ctx context.Context, id string) (entities.ProposalValidation, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ProposalValidation{}, err
	}
	return ValidateProposalForSending(p), nil
}

// SendProposal moves a valid draft to sent and emails the lead. The email is best
// effort: a delivery failure does not roll the transition back.
func (u *ProposalUseCase) SendProposal(ctx context.Context, id string) (entities.Proposal, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	log.Printf("[proposal][usecase] send start proposal_id=%s status=%s", p.ID, p.Status)
	if p.Status != entities.ProposalStatusDraft {
		return entities.Proposal{}, ErrInvalidStatusTransition
	}

	validation := ValidateProposalForSending(p)
	if len(p.LineItems) == 0 {
		return entities.Proposal{}, &ProposalValidationError{Reason: ErrMissingLineItems, Problems: validation.Errors}
	}
	if p.TotalAmount <= 0 {
		return entities.Proposal{}, &ProposalValidationError{Reason: ErrInvalidTotal, Problems: validation.Errors}
	}
	if !validation.Valid {
		log.Printf("[proposal][usecase] send rejected proposal_id=%s problems=%d", p.ID, len(validation.Errors))
		return entities.Proposal{}, &ProposalValidationError{Reason: ErrInvalidProposal, Problems: validation.Errors}
	}

	lead, err := u.lookupLead(ctx, p.LeadID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if strings.TrimSpace(lead.Email) == "" {
		return entities.Proposal{}, ErrMissingEmail
	}

	sent, err := u.transition(ctx, p.ID, entities.ProposalStatusDraft, entities.ProposalStatusSent)
	if err != nil {
		return entities.Proposal{}, err
	}

	if u.notifier != nil {
		if err := u.notifier.SendEmail(ctx, u.messages.ProposalSent(sent, lead)); err != nil {
			log.Printf("[proposal][usecase] proposal email failed proposal_id=%s to=%s err=%v", sent.ID, lead.Email, err)
		}
	}
	log.Printf("[proposal][usecase] send success proposal_id=%s lead_id=%s", sent.ID, sent.LeadID)
	return sent, nil
}

// AcceptProposal moves a sent proposal to accepted and creates its order. When the
// order cannot be created the proposal is moved back to sent, so the pair looks
// atomic to the caller.
func (u *ProposalUseCase) AcceptProposal(ctx context.Context, id string) (entities.Proposal, entities.Order, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, entities.Order{}, err
	}
	log.Printf("[proposal][usecase] accept start proposal_id=%s status=%s", p.ID, p.Status)
	if p.Status != entities.ProposalStatusSent {
		return entities.Proposal{}, entities.Order{}, ErrInvalidStatusTransition
	}
	if u.orders == nil {
		return entities.Proposal{}, entities.Order{}, errors.New("order service not configured")
	}

	accepted, err := u.transition(ctx, p.ID, entities.ProposalStatusSent, entities.ProposalStatusAccepted)
	if err != nil {
		return entities.Proposal{}, entities.Order{}, err
	}

	companyID := accepted.LeadID
	var lead entities.Lead
	if u.leads != nil {
		l, lerr := u.leads.GetByID(ctx, accepted.LeadID)
		if lerr != nil {
			log.Printf("[proposal][usecase] lead lookup failed proposal_id=%s lead_id=%s err=%v", accepted.ID, accepted.LeadID, lerr)
		} else {
			lead = l
			if strings.TrimSpace(l.CompanyID) != "" {
				companyID = l.CompanyID
			}
		}
	}

	order, err := u.orders.CreateOrder(ctx, companyID, orderRequestFromProposal(accepted, lead))
	if err != nil {
		log.Printf("[proposal][usecase] order creation failed; reverting proposal_id=%s err=%v", accepted.ID, err)
		if _, rerr := u.repo.TransitionStatus(ctx, accepted.ID, entities.ProposalStatusAccepted, entities.ProposalStatusSent, u.now()); rerr != nil {
			log.Printf("[proposal][usecase] revert to sent failed proposal_id=%s err=%v", accepted.ID, rerr)
		}
		return entities.Proposal{}, entities.Order{}, fmt.Errorf("%w: %v", ErrOrderCreationFailed, err)
	}

	if err := u.repo.AttachOrder(ctx, accepted.ID, order.ID); err != nil {
		log.Printf("[proposal][usecase] attach order failed proposal_id=%s order_id=%s err=%v", accepted.ID, order.ID, err)
	}
	accepted.OrderID = order.ID
	log.Printf("[proposal][usecase] accept success proposal_id=%s order_id=%s total=%.2f", accepted.ID, order.ID, order.Total)
	return accepted, order, nil
}

func (u *ProposalUseCase) RejectProposal(ctx context.Context, id string) (entities.Proposal, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.Status != entities.ProposalStatusSent {
		return entities.Proposal{}, ErrInvalidStatusTransition
	}
	rejected, err := u.transition(ctx, p.ID, entities.ProposalStatusSent, entities.ProposalStatusRejected)
	if err != nil {
		return entities.Proposal{}, err
	}
	log.Printf("[proposal][usecase] rejected proposal_id=%s", rejected.ID)
	return rejected, nil
}

func (u *ProposalUseCase) transition(ctx context.Context, id string, from, to entities.ProposalStatus) (entities.Proposal, error) {
	updated, err := u.repo.TransitionStatus(ctx, id, from, to, u.now())
	if errors.Is(err, interfaces.ErrStaleTransition) {
		log.Printf("[proposal][usecase] stale transition proposal_id=%s from=%s to=%s current=%s", id, from, to, updated.Status)
		return entities.Proposal{}, ErrInvalidStatusTransition
	}
	if err != nil {
		return entities.Proposal{}, err
	}
	if updated.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return updated, nil
}

func (u *ProposalUseCase) lookupLead(ctx context.Context, leadID string) (entities.Lead, error) {
	if u.leads == nil {
		return entities.Lead{}, ErrMissingEmail
	}
	lead, err := u.leads.GetByID(ctx, leadID)
	if err != nil {
		log.Printf("[proposal][usecase] lead lookup failed lead_id=%s err=%v", leadID, err)
		return entities.Lead{}, fmt.Errorf("lookup lead %s: %w", leadID, err)
	}
	return lead, nil
}

func orderRequestFromProposal(p entities.Proposal, lead entities.Lead) entities.OrderRequest {
	items := make([]entities.CustomItem, 0, len(p.LineItems))
	sum := decimal.Zero
	for _, it := range p.LineItems {
		items = append(items, entities.CustomItem{Description: it.Description, Price: it.Total})
		sum = sum.Add(decimal.NewFromFloat(it.Total))
	}
	// Line totals may drift from totalAmount by a cent; the order total follows totalAmount.
	if n := len(items); n > 0 {
		diff := decimal.NewFromFloat(p.TotalAmount).Sub(sum).Round(2)
		if !diff.IsZero() {
			items[n-1].Price = decimal.NewFromFloat(items[n-1].Price).Add(diff).Round(2).InexactFloat64()
		}
	}
	return entities.OrderRequest{
		Package:       entities.PackageCustom,
		CustomItems:   items,
		ProposalID:    p.ID,
		CustomerName:  lead.Name,
		CustomerEmail: lead.Email,
		Notes:         p.Notes,
	}
}
