package memory

import (
	"context"
	"strings"
	"sync"

	"commerce_engine/internal/domain/entities"
	"commerce_engine/internal/usecase/interfaces"
)

type ProjectBriefRepository struct {
	mu    sync.Mutex
	items map[string]entities.ProjectBrief
}

var _ interfaces.IProjectBriefRepository = (*ProjectBriefRepository)(nil)

func NewProjectBriefRepository() *ProjectBriefRepository {
	return &ProjectBriefRepository{items: make(map[string]entities.ProjectBrief)}
}

func (r *ProjectBriefRepository) Create(_ context.Context, b entities.ProjectBrief) (entities.ProjectBrief, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[b.ID]; ok {
		return entities.ProjectBrief{}, interfaces.ErrAlreadyExists
	}
	r.items[b.ID] = b
	return b, nil
}

func (r *ProjectBriefRepository) GetByOrderID(_ context.Context, orderID string) (entities.ProjectBrief, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.items {
		if b.OrderID == orderID {
			return b, nil
		}
	}
	return entities.ProjectBrief{}, nil
}

// Count is used by tests asserting create-once behavior.
func (r *ProjectBriefRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

type ProjectRepository struct {
	mu    sync.Mutex
	items map[string]entities.Project
}

var _ interfaces.IProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{items: make(map[string]entities.Project)}
}

func (r *ProjectRepository) Create(_ context.Context, p entities.Project) (entities.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; ok {
		return entities.Project{}, interfaces.ErrAlreadyExists
	}
	r.items[p.ID] = p
	return p, nil
}

func (r *ProjectRepository) GetByOrderID(_ context.Context, orderID string) (entities.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.items {
		if p.OrderID == orderID {
			return p, nil
		}
	}
	return entities.Project{}, nil
}

// LeadDirectory is a static ILeadDirectory seeded at startup.
type LeadDirectory struct {
	mu    sync.RWMutex
	leads map[string]entities.Lead
}

var _ interfaces.ILeadDirectory = (*LeadDirectory)(nil)

func NewLeadDirectory(leads ...entities.Lead) *LeadDirectory {
	d := &LeadDirectory{leads: make(map[string]entities.Lead, len(leads))}
	for _, l := range leads {
		d.Put(l)
	}
	return d
}

func (d *LeadDirectory) Put(l entities.Lead) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.leads[strings.TrimSpace(l.ID)] = l
}

func (d *LeadDirectory) GetByID(_ context.Context, id string) (entities.Lead, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.leads[strings.TrimSpace(id)], nil
}
