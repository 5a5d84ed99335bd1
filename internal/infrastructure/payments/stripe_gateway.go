package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"commerce_engine/internal/domain/entities"
	"commerce_engine/internal/domain/pricing"
	"commerce_engine/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const ProviderStripe = "stripe"

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	Currency      string
	BaseURL       string
	Mock          bool
	// Backends overrides the Stripe API endpoint (tests, stripe-mock).
	Backends *stripe.Backends
}

// StripeGateway creates payment links through Products/Prices/PaymentLinks and
// verifies Stripe-Signature headers on inbound events.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
	currency      string
	baseURL       string
	mock          bool
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(cfg StripeConfig) *StripeGateway {
	g := &StripeGateway{
		webhookSecret: cfg.WebhookSecret,
		currency:      strings.ToLower(firstNonEmpty(cfg.Currency, string(stripe.CurrencyUSD))),
		baseURL:       cfg.BaseURL,
		mock:          cfg.Mock,
	}
	switch {
	case cfg.Mock:
		log.Printf("[payment][stripe] mock mode enabled")
	case cfg.SecretKey == "":
		log.Printf("[payment][stripe] missing STRIPE_SECRET_KEY; payment links unavailable")
	default:
		g.api = client.New(cfg.SecretKey, cfg.Backends)
		log.Printf("[payment][stripe] client initialized currency=%s", g.currency)
	}
	if cfg.WebhookSecret == "" {
		log.Printf("[payment][stripe] missing STRIPE_WEBHOOK_SECRET; webhooks will be rejected")
	}
	return g
}

func (g *StripeGateway) Provider() string { return ProviderStripe }

func (g *StripeGateway) CreatePaymentLink(ctx context.Context, order entities.Order) (entities.PaymentLink, bool) {
	if g.mock {
		return mockPaymentLink(ProviderStripe, g.baseURL, order), true
	}
	if g.api == nil {
		return entities.PaymentLink{}, false
	}
	amount := pricing.ToMinorUnits(order.Total)
	if amount <= 0 {
		log.Printf("[payment][stripe] refusing non-positive amount order_id=%s total=%.2f", order.ID, order.Total)
		return entities.PaymentLink{}, false
	}
	md := correlationMetadata(order)

	productParams := &stripe.ProductParams{
		Name: stripe.String(fmt.Sprintf("Order %s (%s)", order.ID, order.Package)),
	}
	productParams.Context = ctx
	addMetadata(&productParams.Params, md)
	product, err := g.api.Products.New(productParams)
	if err != nil {
		log.Printf("[payment][stripe] product create failed order_id=%s err=%v", order.ID, err)
		return entities.PaymentLink{}, false
	}

	priceParams := &stripe.PriceParams{
		Product:    stripe.String(product.ID),
		UnitAmount: stripe.Int64(amount),
		Currency:   stripe.String(g.currency),
	}
	priceParams.Context = ctx
	addMetadata(&priceParams.Params, md)
	price, err := g.api.Prices.New(priceParams)
	if err != nil {
		log.Printf("[payment][stripe] price create failed order_id=%s err=%v", order.ID, err)
		return entities.PaymentLink{}, false
	}

	linkParams := &stripe.PaymentLinkParams{
		LineItems: []*stripe.PaymentLinkLineItemParams{
			{Price: stripe.String(price.ID), Quantity: stripe.Int64(1)},
		},
		AfterCompletion: &stripe.PaymentLinkAfterCompletionParams{
			Type: stripe.String(string(stripe.PaymentLinkAfterCompletionTypeRedirect)),
			Redirect: &stripe.PaymentLinkAfterCompletionRedirectParams{
				URL: stripe.String(successURL(g.baseURL, order.ID)),
			},
		},
		PaymentIntentData: &stripe.PaymentLinkPaymentIntentDataParams{
			Metadata: md,
		},
	}
	linkParams.Context = ctx
	addMetadata(&linkParams.Params, md)
	link, err := g.api.PaymentLinks.New(linkParams)
	if err != nil {
		log.Printf("[payment][stripe] payment link create failed order_id=%s err=%v", order.ID, err)
		return entities.PaymentLink{}, false
	}

	log.Printf("[payment][stripe] payment link created order_id=%s link_id=%s amount=%d", order.ID, link.ID, amount)
	return entities.PaymentLink{ID: link.ID, URL: link.URL}, true
}

// VerifyWebhookSignature checks the Stripe-Signature header against the raw body and
// only then decodes the event.
func (g *StripeGateway) VerifyWebhookSignature(_ context.Context, delivery entities.WebhookDelivery) (entities.GatewayEvent, error) {
	if g.webhookSecret == "" {
		return nil, ErrWebhookSecretNotConfigured
	}
	if strings.TrimSpace(delivery.Signature) == "" {
		return nil, ErrMissingSignature
	}

	evt, err := webhook.ConstructEventWithOptions(delivery.Payload, delivery.Signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSignatureMismatch, err)
	}
	return parseStripeEvent(evt)
}

func parseStripeEvent(evt stripe.Event) (entities.GatewayEvent, error) {
	env := entities.EventEnvelope{
		ID:        evt.ID,
		Type:      string(evt.Type),
		Provider:  ProviderStripe,
		CreatedAt: time.Unix(evt.Created, 0).UTC(),
	}
	if evt.Data == nil {
		return entities.UnknownGatewayEvent{EventEnvelope: env}, nil
	}

	switch env.Type {
	case entities.EventTypeCheckoutSessionCompleted:
		var s stripe.CheckoutSession
		if err := json.Unmarshal(evt.Data.Raw, &s); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
		}
		env.Correlation = correlationFromMetadata(s.Metadata)
		if env.Correlation.OrderID == "" {
			env.Correlation.OrderID = strings.TrimSpace(s.ClientReferenceID)
		}
		intentID := ""
		if s.PaymentIntent != nil {
			intentID = s.PaymentIntent.ID
		}
		return entities.CheckoutSessionCompleted{
			EventEnvelope:   env,
			SessionID:       s.ID,
			PaymentIntentID: intentID,
			PaymentStatus:   string(s.PaymentStatus),
			AmountTotal:     pricing.FromMinorUnits(s.AmountTotal),
			PaymentMethod:   firstOf(s.PaymentMethodTypes),
		}, nil

	case entities.EventTypePaymentIntentSucceeded:
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(evt.Data.Raw, &pi); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
		}
		env.Correlation = correlationFromMetadata(pi.Metadata)
		amount := pi.AmountReceived
		if amount == 0 {
			amount = pi.Amount
		}
		return entities.PaymentIntentSucceeded{
			EventEnvelope:   env,
			PaymentIntentID: pi.ID,
			Amount:          pricing.FromMinorUnits(amount),
			PaymentMethod:   firstOf(pi.PaymentMethodTypes),
		}, nil

	case entities.EventTypePaymentIntentPaymentFailed:
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(evt.Data.Raw, &pi); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
		}
		env.Correlation = correlationFromMetadata(pi.Metadata)
		reason := "payment failed"
		if pi.LastPaymentError != nil && pi.LastPaymentError.Msg != "" {
			reason = pi.LastPaymentError.Msg
		}
		return entities.PaymentIntentFailed{
			EventEnvelope:   env,
			PaymentIntentID: pi.ID,
			FailureMessage:  reason,
		}, nil
	}

	return entities.UnknownGatewayEvent{EventEnvelope: env}, nil
}

func addMetadata(p *stripe.Params, md map[string]string) {
	for k, v := range md {
		p.AddMetadata(k, v)
	}
}

func firstOf(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
