package payments

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"commerce_engine/internal/domain/entities"
	"commerce_engine/internal/usecase/interfaces"
)

var (
	ErrWebhookSecretNotConfigured = errors.New("webhook secret not configured")
	ErrMissingSignature           = errors.New("missing webhook signature")
	ErrSignatureMismatch          = errors.New("webhook signature mismatch")
	ErrMalformedEvent             = interfaces.ErrMalformedWebhookEvent
)

// Metadata keys round-tripped through the gateway for correlation.
const (
	MetadataOrderID   = "order_id"
	MetadataInvoiceID = "invoice_id"
	MetadataCompanyID = "company_id"
)

func correlationMetadata(o entities.Order) map[string]string {
	md := map[string]string{
		MetadataOrderID:   o.ID,
		MetadataCompanyID: o.CompanyID,
	}
	if o.InvoiceID != "" {
		md[MetadataInvoiceID] = o.InvoiceID
	}
	return md
}

func correlationFromMetadata(md map[string]string) entities.PaymentCorrelation {
	return entities.PaymentCorrelation{
		OrderID:   strings.TrimSpace(md[MetadataOrderID]),
		InvoiceID: strings.TrimSpace(md[MetadataInvoiceID]),
		CompanyID: strings.TrimSpace(md[MetadataCompanyID]),
	}
}

// successURL is where the customer lands after paying; it carries the order id.
func successURL(baseURL, orderID string) string {
	return fmt.Sprintf("%s/orders/%s/thank-you?order_id=%s", strings.TrimRight(baseURL, "/"), url.PathEscape(orderID), url.QueryEscape(orderID))
}

// mockPaymentLink is what every gateway returns in PAYMENT_GATEWAY_MOCK mode.
func mockPaymentLink(provider, baseURL string, o entities.Order) entities.PaymentLink {
	return entities.PaymentLink{
		ID:  fmt.Sprintf("mock_%s_%s", provider, o.ID),
		URL: fmt.Sprintf("%s/mock-checkout/%s?provider=%s", strings.TrimRight(baseURL, "/"), url.PathEscape(o.ID), provider),
	}
}
