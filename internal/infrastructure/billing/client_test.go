package billing

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"commerce_engine/internal/domain/entities"
	"commerce_engine/internal/usecase/interfaces"
)

func TestClient(t *testing.T) {
	type captured struct {
		method, path, auth string
		body               map[string]any
	}

	newServer := func(t *testing.T, status int, response string, got *captured) *httptest.Server {
		t.Helper()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got.method = r.Method
			got.path = r.URL.Path
			got.auth = r.Header.Get("Authorization")
			if r.ContentLength > 0 {
				_ = json.NewDecoder(r.Body).Decode(&got.body)
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(response))
		}))
		t.Cleanup(srv.Close)
		return srv
	}

	t.Run("create invoice", func(t *testing.T) {
		var got captured
		srv := newServer(t, http.StatusCreated, `{"invoice_id":"inv_1","status":"draft"}`, &got)
		c := NewClient(Config{BaseURL: srv.URL + "/", Token: "secret"})

		inv, err := c.CreateInvoice(context.Background(), interfaces.InvoiceRequest{OrderID: "ord_1", CompanyID: "cmp_1", Package: "basic", Amount: 999})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.ID != "inv_1" || inv.Status != entities.InvoiceStatusDraft {
			t.Fatalf("unexpected invoice: %+v", inv)
		}
		if got.method != http.MethodPost || got.path != "/invoices" || got.auth != "Bearer secret" {
			t.Fatalf("unexpected request: %+v", got)
		}
		if got.body["order_id"] != "ord_1" || got.body["amount"] != float64(999) {
			t.Fatalf("unexpected body: %v", got.body)
		}
	})

	t.Run("create invoice without id", func(t *testing.T) {
		var got captured
		srv := newServer(t, http.StatusOK, `{}`, &got)
		if _, err := NewClient(Config{BaseURL: srv.URL}).CreateInvoice(context.Background(), interfaces.InvoiceRequest{OrderID: "ord_1"}); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("send invoice", func(t *testing.T) {
		var got captured
		srv := newServer(t, http.StatusOK, `{}`, &got)
		if err := NewClient(Config{BaseURL: srv.URL}).SendInvoice(context.Background(), "inv_1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.path != "/invoices/inv_1/send" || got.auth != "" {
			t.Fatalf("unexpected request: %+v", got)
		}
	})

	t.Run("record payment", func(t *testing.T) {
		var got captured
		srv := newServer(t, http.StatusNoContent, ``, &got)
		err := NewClient(Config{BaseURL: srv.URL}).RecordPayment(context.Background(), interfaces.PaymentRecordRequest{
			InvoiceID: "inv_1", OrderID: "ord_1", Amount: 1194, Method: "card", TransactionID: "tx_1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.path != "/payments" || got.body["transaction_id"] != "tx_1" {
			t.Fatalf("unexpected request: %+v", got)
		}
	})

	t.Run("non 2xx", func(t *testing.T) {
		var got captured
		srv := newServer(t, http.StatusBadGateway, `{"error":"down"}`, &got)
		err := NewClient(Config{BaseURL: srv.URL}).SendInvoice(context.Background(), "inv_1")
		if !errors.Is(err, ErrUnexpectedStatus) {
			t.Fatalf("expected ErrUnexpectedStatus, got %v", err)
		}
	})
}
