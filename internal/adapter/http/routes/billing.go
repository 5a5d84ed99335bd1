package routes

import (
	"commerce_engine/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders   = "/orders"
	PathWebhooks = "/webhooks"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.POST("/:id/invoice/send", orderHandler.SendInvoice)
		orders.POST("/:id/payments", orderHandler.RecordPayment)
		orders.POST("/:id/payment-link", orderHandler.RefreshPaymentLink)
	}
}

func addWebhookRoutes(rg *gin.RouterGroup, webhookHandler *handlers.WebhookHandler) {
	webhooks := rg.Group(PathWebhooks)
	{
		// Raw body is read by the handler; no JSON binding middleware here.
		webhooks.POST("/stripe", webhookHandler.StripeWebhook)
		webhooks.POST("/mercadopago", webhookHandler.MercadoPagoWebhook)
	}
}
