package interfaces

import (
	"context"

	"commerce_engine/internal/domain/entities"
)

// IOrderService is the order transition API other workflow components depend on.
// Nothing outside the order use case writes Order fields.
type IOrderService interface {
	CreateOrder(ctx context.Context, companyID string, req entities.OrderRequest) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	FindByInvoiceID(ctx context.Context, invoiceID string) (entities.Order, error)
	ApplyPaymentSuccess(ctx context.Context, orderID string, details entities.PaymentDetails) (entities.PaymentTransition, error)
	ApplyPaymentFailure(ctx context.Context, orderID string, failure entities.PaymentFailure) (entities.PaymentTransition, error)
}

// IFulfillmentPipeline runs the post-payment steps for an order that just became paid.
type IFulfillmentPipeline interface {
	Run(ctx context.Context, order entities.Order) entities.FulfillmentReport
}
