package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"commerce_engine/internal/domain/entities"
	"commerce_engine/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

const ProviderMercadoPago = "mercadopago"

type MercadoPagoConfig struct {
	AccessToken   string
	WebhookSecret string
	Currency      string
	BaseURL       string
	Mock          bool
}

// paymentGetter is the slice of payment.Client the gateway needs after a
// notification is verified.
type paymentGetter interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
}

type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

// MercadoPagoGateway creates checkout preferences and verifies x-signature headers.
// Notifications only carry the payment id, so the payment itself is fetched from the
// API once the signature checks out.
type MercadoPagoGateway struct {
	payments      paymentGetter
	preferences   preferenceCreator
	webhookSecret string
	currency      string
	baseURL       string
	mock          bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg MercadoPagoConfig) (*MercadoPagoGateway, error) {
	g := &MercadoPagoGateway{
		webhookSecret: cfg.WebhookSecret,
		currency:      strings.ToUpper(firstNonEmpty(cfg.Currency, "BRL")),
		baseURL:       cfg.BaseURL,
		mock:          cfg.Mock,
	}
	if cfg.Mock {
		log.Printf("[payment][mercadopago] mock mode enabled")
		return g, nil
	}
	if cfg.AccessToken == "" {
		log.Printf("[payment][mercadopago] missing MERCADOPAGO_ACCESS_TOKEN; payment links unavailable")
		return g, nil
	}

	sdkCfg, err := config.New(cfg.AccessToken)
	if err != nil {
		log.Printf("[payment][mercadopago] failed creating sdk config err=%v", err)
		return nil, err
	}
	g.payments = payment.NewClient(sdkCfg)
	g.preferences = preference.NewClient(sdkCfg)
	log.Printf("[payment][mercadopago] client initialized currency=%s", g.currency)
	return g, nil
}

func (g *MercadoPagoGateway) Provider() string { return ProviderMercadoPago }

func (g *MercadoPagoGateway) CreatePaymentLink(ctx context.Context, order entities.Order) (entities.PaymentLink, bool) {
	if g.mock {
		return mockPaymentLink(ProviderMercadoPago, g.baseURL, order), true
	}
	if g.preferences == nil {
		return entities.PaymentLink{}, false
	}
	if order.Total <= 0 {
		return entities.PaymentLink{}, false
	}

	md := make(map[string]any)
	for k, v := range correlationMetadata(order) {
		md[k] = v
	}
	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:         order.ID,
				Title:      fmt.Sprintf("Order %s (%s)", order.ID, order.Package),
				Quantity:   1,
				UnitPrice:  order.Total,
				CurrencyID: g.currency,
			},
		},
		ExternalReference: order.ID,
		Metadata:          md,
		BackURLs: &preference.BackURLsRequest{
			Success: successURL(g.baseURL, order.ID),
		},
		AutoReturn: "approved",
	}

	resp, err := g.preferences.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][mercadopago] preference create failed order_id=%s err=%v", order.ID, err)
		return entities.PaymentLink{}, false
	}
	log.Printf("[payment][mercadopago] preference created order_id=%s preference_id=%s", order.ID, resp.ID)
	return entities.PaymentLink{ID: resp.ID, URL: resp.InitPoint}, true
}

type mpNotification struct {
	ID     json.Number `json:"id"`
	Type   string      `json:"type"`
	Action string      `json:"action"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}

// VerifyWebhookSignature validates x-signature ("ts=<ts>,v1=<hex>") as an HMAC-SHA256
// of "id:<data.id>;request-id:<x-request-id>;ts:<ts>;" keyed by the webhook secret.
func (g *MercadoPagoGateway) VerifyWebhookSignature(ctx context.Context, delivery entities.WebhookDelivery) (entities.GatewayEvent, error) {
	if g.webhookSecret == "" {
		return nil, ErrWebhookSecretNotConfigured
	}
	ts, v1 := parseMercadoPagoSignature(delivery.Signature)
	if ts == "" || v1 == "" {
		return nil, ErrMissingSignature
	}
	dataID := strings.ToLower(strings.TrimSpace(delivery.ResourceID))
	if !hmac.Equal([]byte(mercadoPagoSignature(g.webhookSecret, dataID, delivery.RequestID, ts)), []byte(strings.ToLower(v1))) {
		return nil, ErrSignatureMismatch
	}

	var n mpNotification
	if err := json.Unmarshal(delivery.Payload, &n); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	env := entities.EventEnvelope{
		ID:        n.ID.String(),
		Type:      n.Type,
		Provider:  ProviderMercadoPago,
		CreatedAt: time.Now().UTC(),
	}
	if n.Type != "payment" || g.payments == nil {
		return entities.UnknownGatewayEvent{EventEnvelope: env}, nil
	}

	// data.id from the query string is covered by the signature; the body is not.
	rawID := firstNonEmpty(strings.TrimSpace(delivery.ResourceID), n.Data.ID)
	paymentID, err := strconv.Atoi(rawID)
	if err != nil {
		return nil, fmt.Errorf("%w: payment id %q", ErrMalformedEvent, rawID)
	}
	p, err := g.payments.Get(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch payment %d: %v", interfaces.ErrGatewayUnavailable, paymentID, err)
	}
	return mapMercadoPagoPayment(env, p), nil
}

func mapMercadoPagoPayment(env entities.EventEnvelope, p *payment.Response) entities.GatewayEvent {
	md := make(map[string]string, len(p.Metadata))
	for k, v := range p.Metadata {
		if s, ok := v.(string); ok {
			md[k] = s
		}
	}
	env.Correlation = correlationFromMetadata(md)
	if env.Correlation.OrderID == "" {
		env.Correlation.OrderID = strings.TrimSpace(p.ExternalReference)
	}
	id := strconv.Itoa(p.ID)
	// Several notifications arrive per payment; the status keeps their ids apart.
	if env.ID == "" {
		env.ID = "payment:" + id + ":" + p.Status
	}

	switch p.Status {
	case "approved":
		env.Type = entities.EventTypePaymentIntentSucceeded
		return entities.PaymentIntentSucceeded{
			EventEnvelope:   env,
			PaymentIntentID: id,
			Amount:          p.TransactionAmount,
			PaymentMethod:   p.PaymentMethodID,
		}
	case "rejected", "cancelled":
		env.Type = entities.EventTypePaymentIntentPaymentFailed
		return entities.PaymentIntentFailed{
			EventEnvelope:   env,
			PaymentIntentID: id,
			FailureMessage:  firstNonEmpty(p.StatusDetail, p.Status),
		}
	}
	env.Type = "payment." + p.Status
	return entities.UnknownGatewayEvent{EventEnvelope: env}
}

func parseMercadoPagoSignature(header string) (ts, v1 string) {
	for _, part := range strings.Split(header, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(k) {
		case "ts":
			ts = strings.TrimSpace(v)
		case "v1":
			v1 = strings.TrimSpace(v)
		}
	}
	return ts, v1
}

func mercadoPagoSignature(secret, dataID, requestID, ts string) string {
	var manifest strings.Builder
	if dataID != "" {
		manifest.WriteString("id:" + dataID + ";")
	}
	if requestID != "" {
		manifest.WriteString("request-id:" + requestID + ";")
	}
	manifest.WriteString("ts:" + ts + ";")

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest.String()))
	return hex.EncodeToString(mac.Sum(nil))
}
