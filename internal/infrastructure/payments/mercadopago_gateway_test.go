package payments

import (
	"context"
	"errors"
	"testing"

	"commerce_engine/internal/domain/entities"
	"commerce_engine/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

type fakePaymentGetter struct {
	resp *payment.Response
	err  error
	ids  []int
}

func (f *fakePaymentGetter) Get(_ context.Context, id int) (*payment.Response, error) {
	f.ids = append(f.ids, id)
	return f.resp, f.err
}

type fakePreferenceCreator struct {
	req  preference.Request
	resp *preference.Response
	err  error
}

func (f *fakePreferenceCreator) Create(_ context.Context, req preference.Request) (*preference.Response, error) {
	f.req = req
	return f.resp, f.err
}

func signedMercadoPagoDelivery(secret, dataID, requestID string) entities.WebhookDelivery {
	ts := "1700000000"
	return entities.WebhookDelivery{
		Payload:    []byte(`{"id":12345,"type":"payment","action":"payment.updated","data":{"id":"` + dataID + `"}}`),
		Signature:  "ts=" + ts + ",v1=" + mercadoPagoSignature(secret, dataID, requestID, ts),
		RequestID:  requestID,
		ResourceID: dataID,
	}
}

func TestMercadoPagoGateway_VerifyWebhookSignature(t *testing.T) {
	const secret = "mp_secret"

	t.Run("approved payment", func(t *testing.T) {
		getter := &fakePaymentGetter{resp: &payment.Response{
			ID:                987,
			Status:            "approved",
			TransactionAmount: 1194,
			PaymentMethodID:   "pix",
			ExternalReference: "ord_1",
		}}
		g := &MercadoPagoGateway{webhookSecret: secret, payments: getter}

		evt, err := g.VerifyWebhookSignature(context.Background(), signedMercadoPagoDelivery(secret, "987", "req-1"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, ok := evt.(entities.PaymentIntentSucceeded)
		if !ok {
			t.Fatalf("expected PaymentIntentSucceeded, got %T", evt)
		}
		if got.ID != "12345" || got.Correlation.OrderID != "ord_1" || got.Amount != 1194 || got.PaymentMethod != "pix" {
			t.Fatalf("unexpected event: %+v", got)
		}
		if len(getter.ids) != 1 || getter.ids[0] != 987 {
			t.Fatalf("expected payment 987 fetched, got %v", getter.ids)
		}
	})

	t.Run("rejected payment prefers metadata", func(t *testing.T) {
		getter := &fakePaymentGetter{resp: &payment.Response{
			ID:                55,
			Status:            "rejected",
			StatusDetail:      "cc_rejected_insufficient_amount",
			ExternalReference: "ord_other",
			Metadata:          map[string]any{"order_id": "ord_2", "invoice_id": "inv_2"},
		}}
		g := &MercadoPagoGateway{webhookSecret: secret, payments: getter}

		evt, err := g.VerifyWebhookSignature(context.Background(), signedMercadoPagoDelivery(secret, "55", "req-2"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, ok := evt.(entities.PaymentIntentFailed)
		if !ok {
			t.Fatalf("expected PaymentIntentFailed, got %T", evt)
		}
		if got.Correlation.OrderID != "ord_2" || got.Correlation.InvoiceID != "inv_2" || got.FailureMessage != "cc_rejected_insufficient_amount" {
			t.Fatalf("unexpected event: %+v", got)
		}
	})

	t.Run("pending payment is unknown", func(t *testing.T) {
		getter := &fakePaymentGetter{resp: &payment.Response{ID: 7, Status: "in_process"}}
		g := &MercadoPagoGateway{webhookSecret: secret, payments: getter}

		evt, err := g.VerifyWebhookSignature(context.Background(), signedMercadoPagoDelivery(secret, "7", "req-3"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := evt.(entities.UnknownGatewayEvent); !ok {
			t.Fatalf("expected UnknownGatewayEvent, got %T", evt)
		}
	})

	t.Run("signature mismatch never fetches", func(t *testing.T) {
		getter := &fakePaymentGetter{}
		g := &MercadoPagoGateway{webhookSecret: secret, payments: getter}

		d := signedMercadoPagoDelivery("other_secret", "987", "req-1")
		if _, err := g.VerifyWebhookSignature(context.Background(), d); !errors.Is(err, ErrSignatureMismatch) {
			t.Fatalf("expected ErrSignatureMismatch, got %v", err)
		}
		if len(getter.ids) != 0 {
			t.Fatalf("expected no payment fetch, got %v", getter.ids)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		g := &MercadoPagoGateway{webhookSecret: secret}
		d := entities.WebhookDelivery{Payload: []byte(`{}`), Signature: "v1=abc"}
		if _, err := g.VerifyWebhookSignature(context.Background(), d); !errors.Is(err, ErrMissingSignature) {
			t.Fatalf("expected ErrMissingSignature, got %v", err)
		}
	})

	t.Run("signed query id wins over body id", func(t *testing.T) {
		getter := &fakePaymentGetter{resp: &payment.Response{ID: 987, Status: "in_process"}}
		g := &MercadoPagoGateway{webhookSecret: secret, payments: getter}

		d := signedMercadoPagoDelivery(secret, "987", "req-4")
		d.Payload = []byte(`{"id":12345,"type":"payment","data":{"id":"666"}}`)
		if _, err := g.VerifyWebhookSignature(context.Background(), d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(getter.ids) != 1 || getter.ids[0] != 987 {
			t.Fatalf("expected payment 987 fetched, got %v", getter.ids)
		}
	})

	t.Run("body id used when query id is absent", func(t *testing.T) {
		getter := &fakePaymentGetter{resp: &payment.Response{ID: 42, Status: "in_process"}}
		g := &MercadoPagoGateway{webhookSecret: secret, payments: getter}

		d := signedMercadoPagoDelivery(secret, "", "req-5")
		d.Payload = []byte(`{"id":12345,"type":"payment","data":{"id":"42"}}`)
		if _, err := g.VerifyWebhookSignature(context.Background(), d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(getter.ids) != 1 || getter.ids[0] != 42 {
			t.Fatalf("expected payment 42 fetched, got %v", getter.ids)
		}
	})

	t.Run("malformed body after valid signature", func(t *testing.T) {
		g := &MercadoPagoGateway{webhookSecret: secret, payments: &fakePaymentGetter{}}
		d := signedMercadoPagoDelivery(secret, "1", "req-6")
		d.Payload = []byte(`{not json`)
		if _, err := g.VerifyWebhookSignature(context.Background(), d); !errors.Is(err, interfaces.ErrMalformedWebhookEvent) {
			t.Fatalf("expected ErrMalformedWebhookEvent, got %v", err)
		}
	})

	t.Run("fetch failure", func(t *testing.T) {
		g := &MercadoPagoGateway{webhookSecret: secret, payments: &fakePaymentGetter{err: errors.New("timeout")}}
		_, err := g.VerifyWebhookSignature(context.Background(), signedMercadoPagoDelivery(secret, "1", "req"))
		if !errors.Is(err, interfaces.ErrGatewayUnavailable) {
			t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
		}
	})
}

func TestMercadoPagoGateway_CreatePaymentLink(t *testing.T) {
	order := entities.Order{ID: "ord_1", CompanyID: "cmp_1", Package: "basic", Total: 1194}

	t.Run("creates preference", func(t *testing.T) {
		creator := &fakePreferenceCreator{resp: &preference.Response{ID: "pref_1", InitPoint: "https://mp.test/init/pref_1"}}
		g := &MercadoPagoGateway{preferences: creator, currency: "BRL", baseURL: "http://app.test"}

		link, ok := g.CreatePaymentLink(context.Background(), order)
		if !ok || link.ID != "pref_1" || link.URL != "https://mp.test/init/pref_1" {
			t.Fatalf("unexpected link: %+v ok=%v", link, ok)
		}
		if creator.req.ExternalReference != "ord_1" || creator.req.Items[0].UnitPrice != 1194 {
			t.Fatalf("unexpected request: %+v", creator.req)
		}
		if creator.req.BackURLs == nil || creator.req.BackURLs.Success != "http://app.test/orders/ord_1/thank-you?order_id=ord_1" {
			t.Fatalf("unexpected back urls: %+v", creator.req.BackURLs)
		}
	})

	t.Run("create failure", func(t *testing.T) {
		g := &MercadoPagoGateway{preferences: &fakePreferenceCreator{err: errors.New("boom")}}
		if _, ok := g.CreatePaymentLink(context.Background(), order); ok {
			t.Fatal("expected no link")
		}
	})

	t.Run("mock mode", func(t *testing.T) {
		g, err := NewMercadoPagoGateway(MercadoPagoConfig{Mock: true, BaseURL: "http://app.test"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		link, ok := g.CreatePaymentLink(context.Background(), order)
		if !ok || link.ID != "mock_mercadopago_ord_1" {
			t.Fatalf("unexpected link: %+v", link)
		}
	})
}
