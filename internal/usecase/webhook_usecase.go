package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"commerce_engine/internal/domain/entities"
	"commerce_engine/internal/usecase/interfaces"

	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrUnknownGatewayProvider  = errors.New("unknown payment gateway provider")
	ErrInvalidWebhookSignature = errors.New("invalid webhook signature")
	ErrMalformedWebhookEvent   = errors.New("malformed webhook event")
	ErrGatewayUnavailable      = errors.New("payment gateway unavailable")
)

// IWebhookUseCase processes inbound gateway deliveries.
//
// Only verification and provider errors are returned. Once an event is verified every
// downstream problem is folded into the outcome, so the HTTP layer can acknowledge it.
type IWebhookUseCase interface {
	HandleDelivery(ctx context.Context, provider string, delivery entities.WebhookDelivery) (entities.WebhookOutcome, error)
}

type WebhookUseCase struct {
	gateways map[string]interfaces.IPaymentGateway
	orders   interfaces.IOrderService
	ledger   interfaces.IWebhookEventLedger
	now      func() time.Time
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

// NewWebhookUseCase registers gateways by their Provider() name. ledger may be nil.
func NewWebhookUseCase(orders interfaces.IOrderService, ledger interfaces.IWebhookEventLedger, gateways ...interfaces.IPaymentGateway) *WebhookUseCase {
	byName := make(map[string]interfaces.IPaymentGateway, len(gateways))
	for _, g := range gateways {
		if g == nil {
			continue
		}
		byName[strings.ToLower(g.Provider())] = g
	}
	return &WebhookUseCase{
		gateways: byName,
		orders:   orders,
		ledger:   ledger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *WebhookUseCase) HandleDelivery(ctx context.Context, provider string, delivery entities.WebhookDelivery) (out entities.WebhookOutcome, err error) {
	ctx, span := startSpan(ctx, "webhook.handle", attribute.String("provider", provider))
	defer func() {
		span.SetAttributes(attribute.String("action", string(out.Action)))
		endSpan(span, err)
	}()

	provider = strings.ToLower(strings.TrimSpace(provider))
	gateway, ok := u.gateways[provider]
	if !ok {
		return entities.WebhookOutcome{}, fmt.Errorf("%w: %q", ErrUnknownGatewayProvider, provider)
	}

	event, err := gateway.VerifyWebhookSignature(ctx, delivery)
	if err != nil {
		return entities.WebhookOutcome{}, verificationError(provider, delivery, err)
	}

	env := event.Envelope()
	out = entities.WebhookOutcome{EventID: env.ID, EventType: env.Type}
	span.SetAttributes(attribute.String("event_id", env.ID), attribute.String("event_type", env.Type))
	log.Printf("[webhook][usecase] verified provider=%s event_id=%s type=%s", provider, env.ID, env.Type)

	if _, unknown := event.(entities.UnknownGatewayEvent); unknown {
		out.Action = entities.WebhookActionIgnored
		return out, nil
	}

	if u.seen(ctx, provider, env.ID) {
		log.Printf("[webhook][usecase] duplicate delivery provider=%s event_id=%s", provider, env.ID)
		out.Action = entities.WebhookActionDuplicate
		return out, nil
	}

	order, found := u.correlate(ctx, env.Correlation)
	if !found {
		log.Printf("[webhook][usecase] uncorrelated event event_id=%s order_id=%q invoice_id=%q", env.ID, env.Correlation.OrderID, env.Correlation.InvoiceID)
		out.Action = entities.WebhookActionUncorrelated
		return out, nil
	}
	out.OrderID = order.ID

	out.Action, out.Fulfillment = u.apply(ctx, event, order)
	if out.Action != entities.WebhookActionError {
		u.remember(ctx, provider, env.ID)
	}
	log.Printf("[webhook][usecase] processed event_id=%s order_id=%s action=%s", env.ID, order.ID, out.Action)
	return out, nil
}

func (u *WebhookUseCase) apply(ctx context.Context, event entities.GatewayEvent, order entities.Order) (entities.WebhookAction, *entities.FulfillmentReport) {
	env := event.Envelope()
	paidAt := env.CreatedAt
	if paidAt.IsZero() {
		paidAt = u.now()
	}

	var details entities.PaymentDetails
	switch e := event.(type) {
	case entities.CheckoutSessionCompleted:
		if !e.Settled() {
			log.Printf("[webhook][usecase] checkout completed but not settled order_id=%s payment_status=%s", order.ID, e.PaymentStatus)
			return entities.WebhookActionNoop, nil
		}
		details = entities.PaymentDetails{
			Amount:        amountOr(e.AmountTotal, order.Total),
			Method:        firstNonBlank(e.PaymentMethod, "card"),
			TransactionID: firstNonBlank(e.PaymentIntentID, e.SessionID),
			PaidAt:        paidAt,
		}
	case entities.PaymentIntentSucceeded:
		details = entities.PaymentDetails{
			Amount:        amountOr(e.Amount, order.Total),
			Method:        firstNonBlank(e.PaymentMethod, "card"),
			TransactionID: e.PaymentIntentID,
			PaidAt:        paidAt,
		}
	case entities.PaymentIntentFailed:
		tr, err := u.orders.ApplyPaymentFailure(ctx, order.ID, entities.PaymentFailure{
			TransactionID: e.PaymentIntentID,
			Reason:        e.FailureMessage,
			FailedAt:      paidAt,
		})
		if err != nil {
			log.Printf("[webhook][usecase] apply failure errored order_id=%s err=%v", order.ID, err)
			return entities.WebhookActionError, nil
		}
		if tr.Order.IsPaid() {
			return entities.WebhookActionNoop, nil
		}
		return entities.WebhookActionFailureRecorded, nil
	default:
		return entities.WebhookActionIgnored, nil
	}

	tr, err := u.orders.ApplyPaymentSuccess(ctx, order.ID, details)
	if err != nil {
		log.Printf("[webhook][usecase] apply success errored order_id=%s err=%v", order.ID, err)
		return entities.WebhookActionError, nil
	}
	if !tr.Transitioned {
		return entities.WebhookActionAlreadyPaid, nil
	}
	return entities.WebhookActionPaid, tr.Fulfillment
}

// correlate resolves metadata.order_id first and falls back to the invoice id.
func (u *WebhookUseCase) correlate(ctx context.Context, c entities.PaymentCorrelation) (entities.Order, bool) {
	if u.orders == nil {
		return entities.Order{}, false
	}
	if id := strings.TrimSpace(c.OrderID); id != "" {
		o, err := u.orders.GetByID(ctx, id)
		if err == nil && o.ID != "" {
			return o, true
		}
		if err != nil && !errors.Is(err, ErrOrderNotFound) {
			log.Printf("[webhook][usecase] order lookup failed order_id=%s err=%v", id, err)
		}
	}
	if inv := strings.TrimSpace(c.InvoiceID); inv != "" {
		o, err := u.orders.FindByInvoiceID(ctx, inv)
		if err == nil && o.ID != "" {
			return o, true
		}
		if err != nil && !errors.Is(err, ErrOrderNotFound) {
			log.Printf("[webhook][usecase] invoice lookup failed invoice_id=%s err=%v", inv, err)
		}
	}
	return entities.Order{}, false
}

func (u *WebhookUseCase) seen(ctx context.Context, provider, eventID string) bool {
	if u.ledger == nil || eventID == "" {
		return false
	}
	ok, err := u.ledger.Seen(ctx, provider, eventID)
	if err != nil {
		log.Printf("[webhook][usecase] ledger lookup failed event_id=%s err=%v", eventID, err)
		return false
	}
	return ok
}

func (u *WebhookUseCase) remember(ctx context.Context, provider, eventID string) {
	if u.ledger == nil || eventID == "" {
		return
	}
	if err := u.ledger.Remember(ctx, provider, eventID); err != nil {
		log.Printf("[webhook][usecase] ledger write failed event_id=%s err=%v", eventID, err)
	}
}

func amountOr(v, fallback float64) float64 {
	if v > 0 {
		return v
	}
	return fallback
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func verificationError(provider string, delivery entities.WebhookDelivery, err error) error {
	switch {
	case errors.Is(err, interfaces.ErrMalformedWebhookEvent):
		log.Printf("[webhook][usecase] malformed event provider=%s payload_len=%d err=%v", provider, len(delivery.Payload), err)
		return fmt.Errorf("%w: %v", ErrMalformedWebhookEvent, err)
	case errors.Is(err, interfaces.ErrGatewayUnavailable):
		log.Printf("[webhook][usecase] gateway unavailable provider=%s err=%v", provider, err)
		return fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	default:
		log.Printf("[webhook][usecase] signature rejected provider=%s payload_len=%d err=%v", provider, len(delivery.Payload), err)
		return fmt.Errorf("%w: %v", ErrInvalidWebhookSignature, err)
	}
}
