package usecase

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"commerce_engine/internal/adapter/persistence/memory"
	"commerce_engine/internal/domain/entities"
	"commerce_engine/internal/usecase/interfaces"
	mock_interfaces "commerce_engine/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type orderFixture struct {
	uc          *OrderUseCase
	repo        *memory.OrderRepository
	billing     *mock_interfaces.MockIBillingServiceClient
	gateway     *mock_interfaces.MockIPaymentGateway
	notifier    *mock_interfaces.MockINotifier
	fulfillment *mock_interfaces.MockIFulfillmentPipeline
}

func newOrderFixture(t *testing.T) orderFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := orderFixture{
		repo:        memory.NewOrderRepository(),
		billing:     mock_interfaces.NewMockIBillingServiceClient(ctrl),
		gateway:     mock_interfaces.NewMockIPaymentGateway(ctrl),
		notifier:    mock_interfaces.NewMockINotifier(ctrl),
		fulfillment: mock_interfaces.NewMockIFulfillmentPipeline(ctrl),
	}
	f.gateway.EXPECT().Provider().Return("stripe").AnyTimes()
	f.uc = NewOrderUseCase(OrderDependencies{
		Repo:        f.repo,
		Billing:     f.billing,
		Gateway:     f.gateway,
		Notifier:    f.notifier,
		Fulfillment: f.fulfillment,
	})
	return f
}

// seed stores a pending order with an invoice directly, bypassing creation side effects.
func (f orderFixture) seed(t *testing.T, email string) entities.Order {
	t.Helper()
	o, err := f.repo.Create(context.Background(), entities.Order{
		ID:            NewOrderID(time.Now()),
		CompanyID:     "cmp-1",
		Status:        entities.OrderStatusDraft,
		Package:       "starter",
		Total:         1194,
		CustomerEmail: email,
		InvoiceStatus: entities.InvoiceStatusDraft,
		PaymentStatus: entities.PaymentStatusPending,
	})
	if err != nil {
		t.Fatalf("seed order: %v", err)
	}
	o, err = f.repo.AttachInvoice(context.Background(), o.ID, entities.Invoice{ID: "inv-" + o.ID, Status: entities.InvoiceStatusDraft})
	if err != nil {
		t.Fatalf("seed invoice: %v", err)
	}
	return o
}

func TestNewOrderID(t *testing.T) {
	id := NewOrderID(time.UnixMilli(1700000000123))
	if !regexp.MustCompile(`^ord_1700000000123_[0-9a-f]{8}$`).MatchString(id) {
		t.Fatalf("unexpected id format: %s", id)
	}
	if id == NewOrderID(time.UnixMilli(1700000000123)) {
		t.Fatal("expected unique suffix")
	}
}

func TestOrderUseCase_CreateOrder(t *testing.T) {
	t.Run("prices package and addons, attaches invoice and link", func(t *testing.T) {
		f := newOrderFixture(t)
		f.billing.EXPECT().
			CreateInvoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req interfaces.InvoiceRequest) (entities.Invoice, error) {
				if req.Amount != 1194 || req.Package != "starter" || req.CompanyID != "cmp-1" {
					t.Errorf("unexpected invoice request: %+v", req)
				}
				return entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusDraft}, nil
			})
		f.gateway.EXPECT().
			CreatePaymentLink(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o entities.Order) (entities.PaymentLink, bool) {
				if o.InvoiceID != "inv-1" {
					t.Errorf("expected invoice attached before link, got %+v", o)
				}
				return entities.PaymentLink{ID: "plink_1", URL: "https://pay.test/plink_1"}, true
			})

		o, err := f.uc.CreateOrder(context.Background(), "cmp-1", entities.OrderRequest{Package: "basic", Addons: []string{"contact_forms"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Package != "starter" || o.Subtotal != 1194 || o.Tax != 0 || o.Total != 1194 {
			t.Fatalf("unexpected pricing: %+v", o)
		}
		if o.Status != entities.OrderStatusDraft || o.PaymentStatus != entities.PaymentStatusPending {
			t.Fatalf("unexpected statuses: %+v", o)
		}
		if o.InvoiceID != "inv-1" || o.StripePaymentLinkURL != "https://pay.test/plink_1" {
			t.Fatalf("unexpected attachments: %+v", o)
		}
	})

	t.Run("billing and gateway failures do not fail creation", func(t *testing.T) {
		f := newOrderFixture(t)
		f.billing.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, errors.New("billing down"))
		f.gateway.EXPECT().CreatePaymentLink(gomock.Any(), gomock.Any()).Return(entities.PaymentLink{}, false)

		o, err := f.uc.CreateOrder(context.Background(), "cmp-1", entities.OrderRequest{Package: "growth"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.ID == "" || o.InvoiceID != "" || o.StripePaymentLinkURL != "" || o.Total != 2497 {
			t.Fatalf("unexpected order: %+v", o)
		}
		stored, _ := f.uc.GetByID(context.Background(), o.ID)
		if stored.ID != o.ID {
			t.Fatalf("expected order persisted, got %+v", stored)
		}
	})

	t.Run("custom items", func(t *testing.T) {
		f := newOrderFixture(t)
		f.billing.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(entities.Invoice{ID: "inv-2"}, nil)
		f.gateway.EXPECT().CreatePaymentLink(gomock.Any(), gomock.Any()).Return(entities.PaymentLink{}, false)

		o, err := f.uc.CreateOrder(context.Background(), "cmp-1", entities.OrderRequest{
			Package:     entities.PackageCustom,
			CustomItems: []entities.CustomItem{{Description: "Website", Price: 2500}, {Description: "Logo", Price: 500}},
		})
		if err != nil || o.Total != 3000 {
			t.Fatalf("expected total 3000, got %+v err=%v", o, err)
		}
	})

	cases := []struct {
		name      string
		companyID string
		req       entities.OrderRequest
		want      error
	}{
		{"blank company", " ", entities.OrderRequest{Package: "basic"}, ErrInvalidCompanyID},
		{"unknown package", "cmp-1", entities.OrderRequest{Package: "platinum"}, ErrInvalidPackage},
		{"bad custom item", "cmp-1", entities.OrderRequest{Package: entities.PackageCustom, CustomItems: []entities.CustomItem{{Description: "x", Price: 0}}}, ErrInvalidCustomItem},
		{"empty custom order", "cmp-1", entities.OrderRequest{Package: entities.PackageCustom}, ErrInvalidOrderTotal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newOrderFixture(t)
			if _, err := f.uc.CreateOrder(context.Background(), tc.companyID, tc.req); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestOrderUseCase_SendInvoice(t *testing.T) {
	t.Run("no invoice", func(t *testing.T) {
		f := newOrderFixture(t)
		o, _ := f.repo.Create(context.Background(), entities.Order{ID: "ord-x", CompanyID: "cmp-1", PaymentStatus: entities.PaymentStatusPending})
		if _, err := f.uc.SendInvoice(context.Background(), o.ID); !errors.Is(err, ErrNoInvoice) {
			t.Fatalf("expected ErrNoInvoice, got %v", err)
		}
	})

	t.Run("marks sent and emails payment link", func(t *testing.T) {
		f := newOrderFixture(t)
		o := f.seed(t, "client@example.com")
		if _, err := f.repo.AttachPaymentLink(context.Background(), o.ID, "https://pay.test/1"); err != nil {
			t.Fatalf("attach link: %v", err)
		}

		f.billing.EXPECT().SendInvoice(gomock.Any(), o.InvoiceID).Return(nil)
		f.notifier.EXPECT().
			SendEmail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg entities.EmailMessage) error {
				if msg.Kind != entities.EmailKindPaymentLink || msg.To != "client@example.com" {
					t.Errorf("unexpected email: %+v", msg)
				}
				return nil
			})

		sent, err := f.uc.SendInvoice(context.Background(), o.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sent.InvoiceStatus != entities.InvoiceStatusSent {
			t.Fatalf("expected invoice sent, got %s", sent.InvoiceStatus)
		}
	})

	t.Run("billing failure", func(t *testing.T) {
		f := newOrderFixture(t)
		o := f.seed(t, "")
		f.billing.EXPECT().SendInvoice(gomock.Any(), gomock.Any()).Return(errors.New("502"))
		if _, err := f.uc.SendInvoice(context.Background(), o.ID); !errors.Is(err, ErrBillingServiceFailed) {
			t.Fatalf("expected ErrBillingServiceFailed, got %v", err)
		}
	})
}

func TestOrderUseCase_RecordPayment(t *testing.T) {
	t.Run("first record transitions, second does not", func(t *testing.T) {
		f := newOrderFixture(t)
		o := f.seed(t, "client@example.com")

		f.billing.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		f.notifier.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return(nil).Times(1)
		f.fulfillment.EXPECT().Run(gomock.Any(), gomock.Any()).Return(entities.FulfillmentReport{OrderID: o.ID}).Times(1)

		first, err := f.uc.RecordPayment(context.Background(), o.ID, RecordPaymentInput{Amount: 1194, TransactionID: "tx-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !first.Transitioned || !first.Order.IsPaid() || first.Order.PaymentMethod != "manual" || first.Order.Status != entities.OrderStatusInProgress {
			t.Fatalf("unexpected first transition: %+v", first)
		}
		if first.Order.InvoiceStatus != entities.InvoiceStatusPaid || first.Order.PaymentDate == nil {
			t.Fatalf("expected invoice paid and payment date set: %+v", first.Order)
		}

		second, err := f.uc.RecordPayment(context.Background(), o.ID, RecordPaymentInput{Amount: 1194, TransactionID: "tx-2"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.Transitioned || !second.Order.IsPaid() {
			t.Fatalf("expected no second transition: %+v", second)
		}
	})

	t.Run("validations", func(t *testing.T) {
		f := newOrderFixture(t)
		if _, err := f.uc.RecordPayment(context.Background(), "ord-1", RecordPaymentInput{Amount: 0}); !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
		if _, err := f.uc.RecordPayment(context.Background(), "missing", RecordPaymentInput{Amount: 10}); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("billing failure leaves order pending", func(t *testing.T) {
		f := newOrderFixture(t)
		o := f.seed(t, "")
		f.billing.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).Return(errors.New("timeout"))

		if _, err := f.uc.RecordPayment(context.Background(), o.ID, RecordPaymentInput{Amount: 1194}); !errors.Is(err, ErrBillingServiceFailed) {
			t.Fatalf("expected ErrBillingServiceFailed, got %v", err)
		}
		stored, _ := f.uc.GetByID(context.Background(), o.ID)
		if stored.IsPaid() {
			t.Fatal("expected order to remain pending")
		}
	})
}

func TestOrderUseCase_ApplyPaymentSuccess_Concurrent(t *testing.T) {
	f := newOrderFixture(t)
	o := f.seed(t, "client@example.com")

	var receipts, runs int32
	f.notifier.EXPECT().
		SendEmail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg entities.EmailMessage) error {
			if msg.Kind == entities.EmailKindReceipt {
				atomic.AddInt32(&receipts, 1)
			}
			return nil
		}).AnyTimes()
	f.fulfillment.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, paid entities.Order) entities.FulfillmentReport {
			atomic.AddInt32(&runs, 1)
			return entities.FulfillmentReport{OrderID: paid.ID}
		}).AnyTimes()

	const callers = 16
	var wg sync.WaitGroup
	var transitioned int32
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := f.uc.ApplyPaymentSuccess(context.Background(), o.ID, entities.PaymentDetails{Amount: 1194, Method: "card", TransactionID: "pi_1"})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if !res.Order.IsPaid() {
				t.Errorf("expected paid order in every result, got %+v", res.Order)
			}
			if res.Transitioned {
				atomic.AddInt32(&transitioned, 1)
				if res.Fulfillment == nil {
					t.Error("expected fulfillment report for the winner")
				}
			}
		}()
	}
	wg.Wait()

	if transitioned != 1 || receipts != 1 || runs != 1 {
		t.Fatalf("expected exactly one winner, got transitioned=%d receipts=%d runs=%d", transitioned, receipts, runs)
	}
}

func TestOrderUseCase_ApplyPaymentFailure(t *testing.T) {
	t.Run("recorded on pending order", func(t *testing.T) {
		f := newOrderFixture(t)
		o := f.seed(t, "")
		res, err := f.uc.ApplyPaymentFailure(context.Background(), o.ID, entities.PaymentFailure{TransactionID: "pi_1", Reason: "card declined"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Order.IsPaid() || res.Order.LastPaymentFailure != "card declined" || res.Order.LastPaymentFailureAt == nil {
			t.Fatalf("unexpected order: %+v", res.Order)
		}
	})

	t.Run("ignored on paid order", func(t *testing.T) {
		f := newOrderFixture(t)
		o := f.seed(t, "")
		f.fulfillment.EXPECT().Run(gomock.Any(), gomock.Any()).Return(entities.FulfillmentReport{})
		if _, err := f.uc.ApplyPaymentSuccess(context.Background(), o.ID, entities.PaymentDetails{Amount: 1194}); err != nil {
			t.Fatalf("pay: %v", err)
		}

		res, err := f.uc.ApplyPaymentFailure(context.Background(), o.ID, entities.PaymentFailure{Reason: "late failure"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Order.IsPaid() || res.Order.LastPaymentFailure != "" {
			t.Fatalf("expected paid order untouched, got %+v", res.Order)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		f := newOrderFixture(t)
		if _, err := f.uc.ApplyPaymentFailure(context.Background(), "missing", entities.PaymentFailure{}); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestOrderUseCase_RefreshPaymentLink(t *testing.T) {
	t.Run("retries missing link", func(t *testing.T) {
		f := newOrderFixture(t)
		o := f.seed(t, "")
		f.gateway.EXPECT().CreatePaymentLink(gomock.Any(), gomock.Any()).Return(entities.PaymentLink{ID: "l1", URL: "https://pay.test/l1"}, true)

		got, err := f.uc.RefreshPaymentLink(context.Background(), o.ID)
		if err != nil || got.StripePaymentLinkURL != "https://pay.test/l1" {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})

	t.Run("paid order", func(t *testing.T) {
		f := newOrderFixture(t)
		o := f.seed(t, "")
		f.fulfillment.EXPECT().Run(gomock.Any(), gomock.Any()).Return(entities.FulfillmentReport{})
		if _, err := f.uc.ApplyPaymentSuccess(context.Background(), o.ID, entities.PaymentDetails{Amount: 1}); err != nil {
			t.Fatalf("pay: %v", err)
		}
		if _, err := f.uc.RefreshPaymentLink(context.Background(), o.ID); !errors.Is(err, ErrOrderAlreadyPaid) {
			t.Fatalf("expected ErrOrderAlreadyPaid, got %v", err)
		}
	})
}
