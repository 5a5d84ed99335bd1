package handlers

import (
	"errors"
	"log"
	"net/http"

	response "commerce_engine/internal/adapter/http/dto/response"
	"commerce_engine/internal/domain/entities"
	"commerce_engine/internal/infrastructure/payments"
	"commerce_engine/internal/usecase"
	"commerce_engine/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidWebhookSignature = pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Webhook signature verification failed", http.StatusBadRequest)
	errUnknownWebhookProvider  = pkg.NewDomainErrorSimple("UNKNOWN_PROVIDER", "Payment provider not configured", http.StatusNotFound)
	errMalformedWebhookEvent   = pkg.NewDomainErrorSimple("MALFORMED_EVENT", "Webhook event could not be decoded", http.StatusBadRequest)
	errUnreadableWebhookBody   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Could not read request body", http.StatusBadRequest)
)

// WebhookHandler receives payment gateway callbacks. Once the signature is verified
// the response is always 200, whatever the processing outcome.
type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// StripeWebhook godoc
// @Summary      Stripe webhook
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        Stripe-Signature header string true "Stripe signature"
// @Success      200 {object} response.WebhookAckResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /v1/webhooks/stripe [post]
func (h *WebhookHandler) StripeWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(errUnreadableWebhookBody.HTTPStatus, errUnreadableWebhookBody.ToHTTPError())
		return
	}
	h.handle(c, payments.ProviderStripe, entities.WebhookDelivery{
		Payload:   payload,
		Signature: c.GetHeader("Stripe-Signature"),
	})
}

// MercadoPagoWebhook godoc
// @Summary      Mercado Pago webhook
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        x-signature header string true "Mercado Pago signature"
// @Param        x-request-id header string false "Mercado Pago request id"
// @Param        data.id query string false "Notified resource id"
// @Success      200 {object} response.WebhookAckResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      502 {object} pkg.HTTPError
// @Router       /v1/webhooks/mercadopago [post]
func (h *WebhookHandler) MercadoPagoWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(errUnreadableWebhookBody.HTTPStatus, errUnreadableWebhookBody.ToHTTPError())
		return
	}
	h.handle(c, payments.ProviderMercadoPago, entities.WebhookDelivery{
		Payload:    payload,
		Signature:  c.GetHeader("x-signature"),
		RequestID:  c.GetHeader("x-request-id"),
		ResourceID: c.Query("data.id"),
	})
}

func (h *WebhookHandler) handle(c *gin.Context, provider string, delivery entities.WebhookDelivery) {
	outcome, err := h.usecase.HandleDelivery(c.Request.Context(), provider, delivery)
	if err != nil {
		log.Printf("[webhook][handler] rejected provider=%s err=%v", provider, err)
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[webhook][handler] accepted provider=%s event_id=%s action=%s", provider, outcome.EventID, outcome.Action)
	c.JSON(http.StatusOK, response.WebhookAckResponse{Received: true, Outcome: outcome})
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWebhookSignature):
		return errInvalidWebhookSignature
	case errors.Is(err, usecase.ErrUnknownGatewayProvider):
		return errUnknownWebhookProvider
	case errors.Is(err, usecase.ErrMalformedWebhookEvent):
		return errMalformedWebhookEvent
	case errors.Is(err, usecase.ErrGatewayUnavailable):
		return pkg.NewDomainError("GATEWAY_UNAVAILABLE", "Payment gateway request failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
