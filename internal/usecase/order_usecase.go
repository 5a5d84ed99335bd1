package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"commerce_engine/internal/domain/entities"
	"commerce_engine/internal/domain/pricing"
	"commerce_engine/internal/usecase/interfaces"
	"commerce_engine/internal/usecase/messages"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidCompanyID     = errors.New("invalid company id")
	ErrInvalidPackage       = errors.New("invalid package")
	ErrInvalidCustomItem    = errors.New("custom items need a description and a positive price")
	ErrInvalidOrderTotal    = errors.New("order total must be greater than zero")
	ErrNoInvoice            = errors.New("order has no invoice")
	ErrInvalidPaymentAmount = errors.New("payment amount must be greater than zero")
	ErrBillingServiceFailed = errors.New("billing service request failed")
	ErrOrderAlreadyPaid     = errors.New("order already paid")
)

// RecordPaymentInput is a manual (non-webhook) payment registration.
type RecordPaymentInput struct {
	Amount        float64
	Method        string
	TransactionID string
}

// IOrderUseCase is the admin-facing order API.
type IOrderUseCase interface {
	CreateOrder(ctx context.Context, companyID string, req entities.OrderRequest) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]entities.Order, error)
	SendInvoice(ctx context.Context, orderID string) (entities.Order, error)
	RecordPayment(ctx context.Context, orderID string, in RecordPaymentInput) (entities.PaymentTransition, error)
	RefreshPaymentLink(ctx context.Context, orderID string) (entities.Order, error)
}

// OrderDependencies groups the collaborators of OrderUseCase. Billing, Gateway,
// Notifier and Fulfillment may be nil; the matching side effect is then skipped.
type OrderDependencies struct {
	Repo        interfaces.IOrderRepository
	Catalog     *pricing.Catalog
	Billing     interfaces.IBillingServiceClient
	Gateway     interfaces.IPaymentGateway
	Notifier    interfaces.INotifier
	Messages    *messages.Composer
	Fulfillment interfaces.IFulfillmentPipeline
}

type OrderUseCase struct {
	repo        interfaces.IOrderRepository
	catalog     *pricing.Catalog
	billing     interfaces.IBillingServiceClient
	gateway     interfaces.IPaymentGateway
	notifier    interfaces.INotifier
	messages    *messages.Composer
	fulfillment interfaces.IFulfillmentPipeline
	now         func() time.Time
}

var (
	_ IOrderUseCase            = (*OrderUseCase)(nil)
	_ interfaces.IOrderService = (*OrderUseCase)(nil)
)

func NewOrderUseCase(deps OrderDependencies) *OrderUseCase {
	catalog := deps.Catalog
	if catalog == nil {
		catalog = pricing.Default()
	}
	composer := deps.Messages
	if composer == nil {
		composer = messages.NewComposer(catalog, "", "")
	}
	return &OrderUseCase{
		repo:        deps.Repo,
		catalog:     catalog,
		billing:     deps.Billing,
		gateway:     deps.Gateway,
		notifier:    deps.Notifier,
		messages:    composer,
		fulfillment: deps.Fulfillment,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// NewOrderID returns "ord_<unix millis>_<8 hex chars>".
func NewOrderID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("ord_%d_%s", now.UnixMilli(), suffix)
}

// CreateOrder prices and persists the order, then tries to attach an invoice and a
// payment link. Neither attachment can fail the creation.
func (u *OrderUseCase) CreateOrder(ctx context.Context, companyID string, req entities.OrderRequest) (order entities.Order, err error) {
	ctx, span := startSpan(ctx, "order.create", attribute.String("company_id", companyID), attribute.String("package", req.Package))
	defer func() { endSpan(span, err) }()

	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return entities.Order{}, ErrInvalidCompanyID
	}
	for _, it := range req.CustomItems {
		if strings.TrimSpace(it.Description) == "" || it.Price <= 0 {
			return entities.Order{}, ErrInvalidCustomItem
		}
	}

	quote, err := u.catalog.Price(req.Package, req.Addons, req.CustomItems)
	if errors.Is(err, pricing.ErrUnknownPackage) {
		log.Printf("[order][usecase] unknown package company_id=%s package=%q", companyID, req.Package)
		return entities.Order{}, fmt.Errorf("%w: %q", ErrInvalidPackage, req.Package)
	}
	if err != nil {
		return entities.Order{}, err
	}
	if !quote.Total.IsPositive() {
		return entities.Order{}, ErrInvalidOrderTotal
	}
	if len(quote.IgnoredAddons) > 0 {
		log.Printf("[order][usecase] ignoring unknown addons company_id=%s addons=%v", companyID, quote.IgnoredAddons)
	}

	now := u.now()
	o := entities.Order{
		ID:            NewOrderID(now),
		CompanyID:     companyID,
		ProposalID:    strings.TrimSpace(req.ProposalID),
		Status:        entities.OrderStatusDraft,
		Package:       quote.Package,
		Addons:        quote.KnownAddons,
		CustomItems:   req.CustomItems,
		Subtotal:      quote.Subtotal.InexactFloat64(),
		Tax:           quote.Tax.InexactFloat64(),
		Total:         quote.Total.InexactFloat64(),
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		Notes:         strings.TrimSpace(req.Notes),
		InvoiceStatus: entities.InvoiceStatusDraft,
		PaymentStatus: entities.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		log.Printf("[order][usecase] create failed company_id=%s err=%v", companyID, err)
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] created order_id=%s company_id=%s package=%s total=%.2f", created.ID, companyID, created.Package, created.Total)

	created = u.attachInvoice(ctx, created)
	created = u.attachPaymentLink(ctx, created)
	return created, nil
}

func (u *OrderUseCase) attachInvoice(ctx context.Context, o entities.Order) entities.Order {
	if u.billing == nil {
		return o
	}
	inv, err := u.billing.CreateInvoice(ctx, interfaces.InvoiceRequest{
		OrderID:   o.ID,
		CompanyID: o.CompanyID,
		Package:   o.Package,
		Amount:    o.Total,
		Notes:     o.Notes,
	})
	if err != nil || strings.TrimSpace(inv.ID) == "" {
		log.Printf("[order][usecase] invoice creation failed; continuing order_id=%s err=%v", o.ID, err)
		return o
	}
	updated, err := u.repo.AttachInvoice(ctx, o.ID, inv)
	if err != nil {
		log.Printf("[order][usecase] attach invoice failed order_id=%s invoice_id=%s err=%v", o.ID, inv.ID, err)
		return o
	}
	log.Printf("[order][usecase] invoice attached order_id=%s invoice_id=%s status=%s", o.ID, inv.ID, updated.InvoiceStatus)
	return updated
}

func (u *OrderUseCase) attachPaymentLink(ctx context.Context, o entities.Order) entities.Order {
	if u.gateway == nil {
		return o
	}
	link, ok := u.gateway.CreatePaymentLink(ctx, o)
	if !ok || strings.TrimSpace(link.URL) == "" {
		log.Printf("[order][usecase] payment link unavailable; retry later order_id=%s provider=%s", o.ID, u.gateway.Provider())
		return o
	}
	updated, err := u.repo.AttachPaymentLink(ctx, o.ID, link.URL)
	if err != nil {
		log.Printf("[order][usecase] attach payment link failed order_id=%s err=%v", o.ID, err)
		return o
	}
	log.Printf("[order][usecase] payment link attached order_id=%s link_id=%s", o.ID, link.ID)
	return updated
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) FindByInvoiceID(ctx context.Context, invoiceID string) (entities.Order, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	o, err := u.repo.GetByInvoiceID(ctx, invoiceID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) ListByCompanyID(ctx context.Context, companyID string) ([]entities.Order, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}
	return u.repo.ListByCompanyID(ctx, companyID)
}

// SendInvoice asks the billing service to deliver the invoice and, when the order has
// a payment link, emails it to the customer.
func (u *OrderUseCase) SendInvoice(ctx context.Context, orderID string) (order entities.Order, err error) {
	ctx, span := startSpan(ctx, "order.send_invoice", attribute.String("order_id", orderID))
	defer func() { endSpan(span, err) }()

	o, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if strings.TrimSpace(o.InvoiceID) == "" {
		return entities.Order{}, ErrNoInvoice
	}
	if u.billing == nil {
		return entities.Order{}, fmt.Errorf("%w: billing service not configured", ErrBillingServiceFailed)
	}
	if err := u.billing.SendInvoice(ctx, o.InvoiceID); err != nil {
		log.Printf("[order][usecase] send invoice failed order_id=%s invoice_id=%s err=%v", o.ID, o.InvoiceID, err)
		return entities.Order{}, fmt.Errorf("%w: %v", ErrBillingServiceFailed, err)
	}

	if o.InvoiceStatus.Rank() < entities.InvoiceStatusSent.Rank() {
		updated, terr := u.repo.AdvanceInvoiceStatus(ctx, o.ID, entities.InvoiceStatusDraft, entities.InvoiceStatusSent)
		switch {
		case errors.Is(terr, interfaces.ErrStaleTransition):
			log.Printf("[order][usecase] invoice status already advanced order_id=%s current=%s", o.ID, updated.InvoiceStatus)
		case terr != nil:
			return entities.Order{}, terr
		}
		if updated.ID != "" {
			o = updated
		}
	}

	if o.StripePaymentLinkURL != "" && o.CustomerEmail != "" && u.notifier != nil {
		if err := u.notifier.SendEmail(ctx, u.messages.PaymentLink(o)); err != nil {
			log.Printf("[order][usecase] payment link email failed order_id=%s err=%v", o.ID, err)
		}
	}
	log.Printf("[order][usecase] invoice sent order_id=%s invoice_id=%s", o.ID, o.InvoiceID)
	return o, nil
}

// RecordPayment registers a payment with the billing service and then applies the
// paid transition. Recording again on a paid order only repeats the billing call.
func (u *OrderUseCase) RecordPayment(ctx context.Context, orderID string, in RecordPaymentInput) (res entities.PaymentTransition, err error) {
	ctx, span := startSpan(ctx, "order.record_payment", attribute.String("order_id", orderID))
	defer func() { endSpan(span, err) }()

	if in.Amount <= 0 {
		return entities.PaymentTransition{}, ErrInvalidPaymentAmount
	}
	o, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.PaymentTransition{}, err
	}
	if strings.TrimSpace(o.InvoiceID) == "" {
		return entities.PaymentTransition{}, ErrNoInvoice
	}
	if u.billing == nil {
		return entities.PaymentTransition{}, fmt.Errorf("%w: billing service not configured", ErrBillingServiceFailed)
	}

	method := strings.TrimSpace(in.Method)
	if method == "" {
		method = "manual"
	}
	if err := u.billing.RecordPayment(ctx, interfaces.PaymentRecordRequest{
		InvoiceID:     o.InvoiceID,
		OrderID:       o.ID,
		Amount:        in.Amount,
		Method:        method,
		TransactionID: in.TransactionID,
	}); err != nil {
		log.Printf("[order][usecase] billing record payment failed order_id=%s err=%v", o.ID, err)
		return entities.PaymentTransition{}, fmt.Errorf("%w: %v", ErrBillingServiceFailed, err)
	}

	return u.ApplyPaymentSuccess(ctx, o.ID, entities.PaymentDetails{
		Amount:        in.Amount,
		Method:        method,
		TransactionID: in.TransactionID,
		PaidAt:        u.now(),
	})
}

// ApplyPaymentSuccess is the pending -> paid compare-and-swap. Only the caller whose
// write wins sends the receipt and runs fulfillment; everyone else gets
// Transitioned=false and the current order.
func (u *OrderUseCase) ApplyPaymentSuccess(ctx context.Context, orderID string, details entities.PaymentDetails) (res entities.PaymentTransition, err error) {
	ctx, span := startSpan(ctx, "order.apply_payment_success", attribute.String("order_id", orderID))
	defer func() { endSpan(span, err) }()

	if details.PaidAt.IsZero() {
		details.PaidAt = u.now()
	}
	paid, err := u.repo.TransitionPayment(ctx, orderID, entities.PaymentStatusPending, entities.PaymentStatusPaid, details)
	if errors.Is(err, interfaces.ErrStaleTransition) {
		log.Printf("[order][usecase] payment already applied order_id=%s status=%s", orderID, paid.PaymentStatus)
		span.SetAttributes(attribute.Bool("transitioned", false))
		return entities.PaymentTransition{Order: paid, Transitioned: false}, nil
	}
	if err != nil {
		log.Printf("[order][usecase] payment transition failed order_id=%s err=%v", orderID, err)
		return entities.PaymentTransition{}, err
	}
	if paid.ID == "" {
		return entities.PaymentTransition{}, ErrOrderNotFound
	}
	span.SetAttributes(attribute.Bool("transitioned", true))
	log.Printf("[order][usecase] order paid order_id=%s amount=%.2f method=%s txn=%s", paid.ID, details.Amount, details.Method, details.TransactionID)

	// Side effects run after the write above has committed.
	if u.notifier != nil && paid.CustomerEmail != "" {
		if err := u.notifier.SendEmail(ctx, u.messages.Receipt(paid)); err != nil {
			log.Printf("[order][usecase] receipt email failed order_id=%s err=%v", paid.ID, err)
		}
	}

	var report *entities.FulfillmentReport
	if u.fulfillment != nil {
		r := u.fulfillment.Run(ctx, paid)
		report = &r
		if failed := r.Failed(); len(failed) > 0 {
			log.Printf("[order][usecase] fulfillment finished with failures order_id=%s failed=%d", paid.ID, len(failed))
		}
	}

	advanced, err := u.repo.TransitionStatus(ctx, paid.ID, entities.OrderStatusDraft, entities.OrderStatusInProgress, u.now())
	switch {
	case errors.Is(err, interfaces.ErrStaleTransition):
		log.Printf("[order][usecase] order status not draft; leaving as is order_id=%s status=%s", paid.ID, advanced.Status)
	case err != nil:
		log.Printf("[order][usecase] advance to in_progress failed order_id=%s err=%v", paid.ID, err)
	default:
		if advanced.ID != "" {
			paid = advanced
		}
	}

	return entities.PaymentTransition{Order: paid, Transitioned: true, Fulfillment: report}, nil
}

// ApplyPaymentFailure records a failed attempt on a pending order. A paid order is
// never downgraded; the failure is dropped.
func (u *OrderUseCase) ApplyPaymentFailure(ctx context.Context, orderID string, failure entities.PaymentFailure) (res entities.PaymentTransition, err error) {
	ctx, span := startSpan(ctx, "order.apply_payment_failure", attribute.String("order_id", orderID))
	defer func() { endSpan(span, err) }()

	if failure.FailedAt.IsZero() {
		failure.FailedAt = u.now()
	}
	o, err := u.repo.RecordPaymentFailure(ctx, orderID, failure)
	if errors.Is(err, interfaces.ErrStaleTransition) {
		log.Printf("[order][usecase] failure event on paid order ignored order_id=%s txn=%s", orderID, failure.TransactionID)
		return entities.PaymentTransition{Order: o}, nil
	}
	if err != nil {
		return entities.PaymentTransition{}, err
	}
	if o.ID == "" {
		return entities.PaymentTransition{}, ErrOrderNotFound
	}
	log.Printf("[order][usecase] payment failure recorded order_id=%s txn=%s reason=%q", o.ID, failure.TransactionID, failure.Reason)
	return entities.PaymentTransition{Order: o}, nil
}

// RefreshPaymentLink retries link creation for a pending order that has none.
func (u *OrderUseCase) RefreshPaymentLink(ctx context.Context, orderID string) (entities.Order, error) {
	o, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.IsPaid() {
		return entities.Order{}, ErrOrderAlreadyPaid
	}
	if o.StripePaymentLinkURL != "" {
		return o, nil
	}
	return u.attachPaymentLink(ctx, o), nil
}
