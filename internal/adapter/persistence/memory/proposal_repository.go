package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"commerce_engine/internal/domain/entities"
	"commerce_engine/internal/usecase/interfaces"
)

// ProposalRepository is a process-local IProposalRepository. Every method holds the
// mutex for its whole read-modify-write, which gives the same conditional semantics
// as the DynamoDB implementation.
type ProposalRepository struct {
	mu    sync.Mutex
	items map[string]entities.Proposal
}

var _ interfaces.IProposalRepository = (*ProposalRepository)(nil)

func NewProposalRepository() *ProposalRepository {
	return &ProposalRepository{items: make(map[string]entities.Proposal)}
}

func (r *ProposalRepository) Create(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; ok {
		return entities.Proposal{}, interfaces.ErrAlreadyExists
	}
	r.items[p.ID] = cloneProposal(p)
	return cloneProposal(p), nil
}

func (r *ProposalRepository) GetByID(_ context.Context, id string) (entities.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneProposal(r.items[id]), nil
}

func (r *ProposalRepository) ListByLeadID(_ context.Context, leadID string) ([]entities.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Proposal, 0)
	for _, p := range r.items {
		if p.LeadID == leadID {
			out = append(out, cloneProposal(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *ProposalRepository) UpdateDraft(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.items[p.ID]
	if !ok {
		return entities.Proposal{}, nil
	}
	if cur.Status != entities.ProposalStatusDraft {
		return cloneProposal(cur), interfaces.ErrStaleTransition
	}
	p.Status = cur.Status
	p.CreatedAt = cur.CreatedAt
	r.items[p.ID] = cloneProposal(p)
	return cloneProposal(p), nil
}

func (r *ProposalRepository) DeleteDraft(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.items[id]
	if !ok {
		return nil
	}
	if cur.Status != entities.ProposalStatusDraft {
		return interfaces.ErrStaleTransition
	}
	delete(r.items, id)
	return nil
}

func (r *ProposalRepository) TransitionStatus(_ context.Context, id string, from, to entities.ProposalStatus, at time.Time) (entities.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.items[id]
	if !ok {
		return entities.Proposal{}, nil
	}
	if cur.Status != from {
		return cloneProposal(cur), interfaces.ErrStaleTransition
	}
	cur.Status = to
	cur.UpdatedAt = at
	switch to {
	case entities.ProposalStatusSent:
		cur.SentAt = &at
		cur.DecidedAt = nil
	case entities.ProposalStatusAccepted, entities.ProposalStatusRejected:
		cur.DecidedAt = &at
	}
	r.items[id] = cur
	return cloneProposal(cur), nil
}

func (r *ProposalRepository) AttachOrder(_ context.Context, id string, orderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.items[id]
	if !ok {
		return nil
	}
	cur.OrderID = orderID
	r.items[id] = cur
	return nil
}

func cloneProposal(p entities.Proposal) entities.Proposal {
	if p.LineItems != nil {
		p.LineItems = append([]entities.LineItem(nil), p.LineItems...)
	}
	return p
}
