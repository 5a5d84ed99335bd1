package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"commerce_engine/internal/domain/entities"
	"commerce_engine/internal/usecase/interfaces"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var ErrUnexpectedStatus = errors.New("billing service returned unexpected status")

type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Client talks to the external invoicing service over JSON/HTTP.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

var _ interfaces.IBillingServiceClient = (*Client)(nil)

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type createInvoiceRequest struct {
	OrderID   string  `json:"order_id"`
	CompanyID string  `json:"company_id"`
	Package   string  `json:"package"`
	Amount    float64 `json:"amount"`
	Notes     string  `json:"notes,omitempty"`
}

type recordPaymentRequest struct {
	InvoiceID     string  `json:"invoice_id"`
	OrderID       string  `json:"order_id"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method,omitempty"`
	TransactionID string  `json:"transaction_id,omitempty"`
}

func (c *Client) CreateInvoice(ctx context.Context, req interfaces.InvoiceRequest) (entities.Invoice, error) {
	body := createInvoiceRequest{
		OrderID:   req.OrderID,
		CompanyID: req.CompanyID,
		Package:   req.Package,
		Amount:    req.Amount,
		Notes:     req.Notes,
	}
	var inv entities.Invoice
	if err := c.do(ctx, http.MethodPost, "/invoices", body, &inv); err != nil {
		log.Printf("[billing][client] create invoice failed order_id=%s err=%v", req.OrderID, err)
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, fmt.Errorf("create invoice: empty invoice_id in response")
	}
	if inv.Status == "" {
		inv.Status = entities.InvoiceStatusDraft
	}
	log.Printf("[billing][client] invoice created order_id=%s invoice_id=%s", req.OrderID, inv.ID)
	return inv, nil
}

func (c *Client) SendInvoice(ctx context.Context, invoiceID string) error {
	if err := c.do(ctx, http.MethodPost, "/invoices/"+url.PathEscape(invoiceID)+"/send", nil, nil); err != nil {
		log.Printf("[billing][client] send invoice failed invoice_id=%s err=%v", invoiceID, err)
		return err
	}
	return nil
}

func (c *Client) RecordPayment(ctx context.Context, req interfaces.PaymentRecordRequest) error {
	body := recordPaymentRequest{
		InvoiceID:     req.InvoiceID,
		OrderID:       req.OrderID,
		Amount:        req.Amount,
		Method:        req.Method,
		TransactionID: req.TransactionID,
	}
	if err := c.do(ctx, http.MethodPost, "/payments", body, nil); err != nil {
		log.Printf("[billing][client] record payment failed invoice_id=%s err=%v", req.InvoiceID, err)
		return err
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var reader io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s %s status=%d body=%s", ErrUnexpectedStatus, method, path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
