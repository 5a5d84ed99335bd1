package memory

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"commerce_engine/internal/domain/entities"
	"commerce_engine/internal/usecase/interfaces"
)

func seedOrder(t *testing.T, r *OrderRepository) entities.Order {
	t.Helper()
	o, err := r.Create(context.Background(), entities.Order{
		ID:            "ord_1",
		CompanyID:     "co-1",
		Status:        entities.OrderStatusDraft,
		Total:         1194,
		InvoiceStatus: entities.InvoiceStatusDraft,
		PaymentStatus: entities.PaymentStatusPending,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return o
}

func TestOrderRepository_TransitionPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("pending to paid writes details", func(t *testing.T) {
		r := NewOrderRepository()
		seedOrder(t, r)
		at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

		o, err := r.TransitionPayment(ctx, "ord_1", entities.PaymentStatusPending, entities.PaymentStatusPaid, entities.PaymentDetails{
			Amount: 1194, Method: "card", TransactionID: "pi_1", PaidAt: at,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !o.IsPaid() || o.InvoiceStatus != entities.InvoiceStatusPaid || o.StripePaymentIntentID != "pi_1" || o.PaymentDate == nil || !o.PaymentDate.Equal(at) {
			t.Fatalf("unexpected order: %+v", o)
		}
	})

	t.Run("second transition is stale", func(t *testing.T) {
		r := NewOrderRepository()
		seedOrder(t, r)
		_, _ = r.TransitionPayment(ctx, "ord_1", entities.PaymentStatusPending, entities.PaymentStatusPaid, entities.PaymentDetails{TransactionID: "pi_1"})

		o, err := r.TransitionPayment(ctx, "ord_1", entities.PaymentStatusPending, entities.PaymentStatusPaid, entities.PaymentDetails{TransactionID: "pi_2"})
		if !errors.Is(err, interfaces.ErrStaleTransition) {
			t.Fatalf("expected ErrStaleTransition, got %v", err)
		}
		if o.StripePaymentIntentID != "pi_1" {
			t.Fatalf("stale write must not change the order, got %s", o.StripePaymentIntentID)
		}
	})

	t.Run("missing order", func(t *testing.T) {
		r := NewOrderRepository()
		o, err := r.TransitionPayment(ctx, "nope", entities.PaymentStatusPending, entities.PaymentStatusPaid, entities.PaymentDetails{})
		if err != nil || o.ID != "" {
			t.Fatalf("expected zero order and nil error, got %+v %v", o, err)
		}
	})

	t.Run("concurrent transitions have a single winner", func(t *testing.T) {
		r := NewOrderRepository()
		seedOrder(t, r)

		var wins int32
		var wg sync.WaitGroup
		for i := 0; i < 32; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := r.TransitionPayment(ctx, "ord_1", entities.PaymentStatusPending, entities.PaymentStatusPaid, entities.PaymentDetails{}); err == nil {
					atomic.AddInt32(&wins, 1)
				}
			}()
		}
		wg.Wait()
		if wins != 1 {
			t.Fatalf("expected exactly one winner, got %d", wins)
		}
	})
}

func TestOrderRepository_RecordPaymentFailure(t *testing.T) {
	ctx := context.Background()
	r := NewOrderRepository()
	seedOrder(t, r)

	o, err := r.RecordPaymentFailure(ctx, "ord_1", entities.PaymentFailure{TransactionID: "pi_f", Reason: "card_declined", FailedAt: time.Now()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.PaymentStatus != entities.PaymentStatusPending || o.StripePaymentIntentID != "pi_f" || o.LastPaymentFailure != "card_declined" {
		t.Fatalf("unexpected order: %+v", o)
	}

	_, _ = r.TransitionPayment(ctx, "ord_1", entities.PaymentStatusPending, entities.PaymentStatusPaid, entities.PaymentDetails{TransactionID: "pi_ok"})
	o, err = r.RecordPaymentFailure(ctx, "ord_1", entities.PaymentFailure{TransactionID: "pi_late"})
	if !errors.Is(err, interfaces.ErrStaleTransition) {
		t.Fatalf("expected ErrStaleTransition, got %v", err)
	}
	if !o.IsPaid() || o.StripePaymentIntentID != "pi_ok" {
		t.Fatalf("paid order must not change: %+v", o)
	}
}

func TestOrderRepository_InvoiceAndQueries(t *testing.T) {
	ctx := context.Background()
	r := NewOrderRepository()
	seedOrder(t, r)

	if _, err := r.AttachInvoice(ctx, "ord_1", entities.Invoice{ID: "inv_1", Status: entities.InvoiceStatusDraft}); err != nil {
		t.Fatalf("attach: %v", err)
	}
	o, err := r.GetByInvoiceID(ctx, "inv_1")
	if err != nil || o.ID != "ord_1" {
		t.Fatalf("expected ord_1 by invoice, got %+v %v", o, err)
	}

	if _, err := r.AdvanceInvoiceStatus(ctx, "ord_1", entities.InvoiceStatusDraft, entities.InvoiceStatusSent); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if _, err := r.AdvanceInvoiceStatus(ctx, "ord_1", entities.InvoiceStatusDraft, entities.InvoiceStatusSent); !errors.Is(err, interfaces.ErrStaleTransition) {
		t.Fatalf("expected stale on repeat, got %v", err)
	}

	list, err := r.ListByCompanyID(ctx, "co-1")
	if err != nil || len(list) != 1 {
		t.Fatalf("expected one order, got %d %v", len(list), err)
	}
	if _, err := r.Create(ctx, entities.Order{ID: "ord_1"}); !errors.Is(err, interfaces.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestProposalRepository_TransitionStatus(t *testing.T) {
	ctx := context.Background()
	r := NewProposalRepository()
	_, _ = r.Create(ctx, entities.Proposal{ID: "p1", LeadID: "l1", Status: entities.ProposalStatusDraft})

	now := time.Now().UTC()
	p, err := r.TransitionStatus(ctx, "p1", entities.ProposalStatusDraft, entities.ProposalStatusSent, now)
	if err != nil || p.Status != entities.ProposalStatusSent || p.SentAt == nil {
		t.Fatalf("unexpected: %+v %v", p, err)
	}
	if _, err := r.UpdateDraft(ctx, entities.Proposal{ID: "p1"}); !errors.Is(err, interfaces.ErrStaleTransition) {
		t.Fatalf("expected stale update on sent proposal, got %v", err)
	}
	if err := r.DeleteDraft(ctx, "p1"); !errors.Is(err, interfaces.ErrStaleTransition) {
		t.Fatalf("expected stale delete on sent proposal, got %v", err)
	}
	p, err = r.TransitionStatus(ctx, "p1", entities.ProposalStatusDraft, entities.ProposalStatusSent, now)
	if !errors.Is(err, interfaces.ErrStaleTransition) || p.Status != entities.ProposalStatusSent {
		t.Fatalf("expected stale transition with current proposal, got %+v %v", p, err)
	}
}
