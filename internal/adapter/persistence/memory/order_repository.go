package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"commerce_engine/internal/domain/entities"
	"commerce_engine/internal/usecase/interfaces"
)

// OrderRepository is a process-local IOrderRepository.
type OrderRepository struct {
	mu    sync.Mutex
	items map[string]entities.Order
}

var _ interfaces.IOrderRepository = (*OrderRepository)(nil)

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{items: make(map[string]entities.Order)}
}

func (r *OrderRepository) Create(_ context.Context, o entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[o.ID]; ok {
		return entities.Order{}, interfaces.ErrAlreadyExists
	}
	r.items[o.ID] = cloneOrder(o)
	return cloneOrder(o), nil
}

func (r *OrderRepository) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneOrder(r.items[id]), nil
}

func (r *OrderRepository) GetByInvoiceID(_ context.Context, invoiceID string) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.items {
		if invoiceID != "" && o.InvoiceID == invoiceID {
			return cloneOrder(o), nil
		}
	}
	return entities.Order{}, nil
}

func (r *OrderRepository) ListByCompanyID(_ context.Context, companyID string) ([]entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Order, 0)
	for _, o := range r.items {
		if o.CompanyID == companyID {
			out = append(out, cloneOrder(o))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *OrderRepository) AttachInvoice(_ context.Context, id string, invoice entities.Invoice) (entities.Order, error) {
	return r.mutate(id, func(o *entities.Order) error {
		o.InvoiceID = invoice.ID
		if invoice.Status.Rank() > o.InvoiceStatus.Rank() {
			o.InvoiceStatus = invoice.Status
		}
		return nil
	})
}

func (r *OrderRepository) AttachPaymentLink(_ context.Context, id string, url string) (entities.Order, error) {
	return r.mutate(id, func(o *entities.Order) error {
		o.StripePaymentLinkURL = url
		return nil
	})
}

func (r *OrderRepository) AdvanceInvoiceStatus(_ context.Context, id string, from, to entities.InvoiceStatus) (entities.Order, error) {
	return r.mutate(id, func(o *entities.Order) error {
		if o.InvoiceStatus != from || to.Rank() <= from.Rank() {
			return interfaces.ErrStaleTransition
		}
		o.InvoiceStatus = to
		return nil
	})
}

func (r *OrderRepository) TransitionPayment(_ context.Context, id string, from, to entities.PaymentStatus, details entities.PaymentDetails) (entities.Order, error) {
	return r.mutate(id, func(o *entities.Order) error {
		if o.PaymentStatus != from {
			return interfaces.ErrStaleTransition
		}
		o.PaymentStatus = to
		if to == entities.PaymentStatusPaid {
			paidAt := details.PaidAt
			o.InvoiceStatus = entities.InvoiceStatusPaid
			o.PaymentDate = &paidAt
			o.PaymentMethod = details.Method
			o.StripePaymentIntentID = details.TransactionID
			o.AmountPaid = details.Amount
		}
		return nil
	})
}

func (r *OrderRepository) RecordPaymentFailure(_ context.Context, id string, failure entities.PaymentFailure) (entities.Order, error) {
	return r.mutate(id, func(o *entities.Order) error {
		if o.PaymentStatus != entities.PaymentStatusPending {
			return interfaces.ErrStaleTransition
		}
		failedAt := failure.FailedAt
		o.StripePaymentIntentID = failure.TransactionID
		o.LastPaymentFailure = failure.Reason
		o.LastPaymentFailureAt = &failedAt
		return nil
	})
}

func (r *OrderRepository) TransitionStatus(_ context.Context, id string, from, to entities.OrderStatus, at time.Time) (entities.Order, error) {
	return r.mutate(id, func(o *entities.Order) error {
		if o.Status != from {
			return interfaces.ErrStaleTransition
		}
		o.Status = to
		if to == entities.OrderStatusInProgress {
			o.FulfilledAt = &at
		}
		return nil
	})
}

// mutate applies fn under the lock. A rejected fn leaves the stored order untouched
// and returns it alongside the error.
func (r *OrderRepository) mutate(id string, fn func(o *entities.Order) error) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.items[id]
	if !ok {
		return entities.Order{}, nil
	}
	next := cloneOrder(cur)
	if err := fn(&next); err != nil {
		return cloneOrder(cur), err
	}
	next.UpdatedAt = time.Now().UTC()
	r.items[id] = next
	return cloneOrder(next), nil
}

func cloneOrder(o entities.Order) entities.Order {
	if o.Addons != nil {
		o.Addons = append([]string(nil), o.Addons...)
	}
	if o.CustomItems != nil {
		o.CustomItems = append([]entities.CustomItem(nil), o.CustomItems...)
	}
	return o
}
