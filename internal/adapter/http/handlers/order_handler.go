package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "commerce_engine/internal/adapter/http/dto/request"
	response "commerce_engine/internal/adapter/http/dto/response"
	"commerce_engine/internal/usecase"
	"commerce_engine/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload   = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
)

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder godoc
// @Summary      Create an order from a package
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        payload body request.CreateOrderRequest true "Order"
// @Success      201 {object} response.OrderResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /v1/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	companyID := payload.ResolveCompanyID()
	log.Printf("[order][handler] create start company_id=%s package=%s", companyID, payload.Package)

	created, err := h.usecase.CreateOrder(c.Request.Context(), companyID, payload.ToOrderRequest())
	if err != nil {
		log.Printf("[order][handler] create failed company_id=%s err=%v", companyID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[order][handler] create success order_id=%s total=%.2f", created.ID, created.Total)
	c.JSON(http.StatusCreated, response.FromOrder(created))
}

// GetOrder godoc
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} response.OrderResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /v1/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// ListOrders godoc
// @Summary      List orders of a company
// @Tags         orders
// @Produce      json
// @Param        company_id query string true "Company ID"
// @Success      200 {array} response.OrderResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /v1/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	companyID := strings.TrimSpace(c.Query("company_id"))
	if companyID == "" {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.WithDetails("company_id is required").ToHTTPError())
		return
	}

	items, err := h.usecase.ListByCompanyID(c.Request.Context(), companyID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(items))
}

// SendInvoice godoc
// @Summary      Send the order invoice through the billing service
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} response.OrderResponse
// @Failure      409 {object} pkg.HTTPError
// @Failure      502 {object} pkg.HTTPError
// @Router       /v1/orders/{id}/invoice/send [post]
func (h *OrderHandler) SendInvoice(c *gin.Context) {
	id := c.Param("id")
	o, err := h.usecase.SendInvoice(c.Request.Context(), id)
	if err != nil {
		log.Printf("[order][handler] send-invoice failed order_id=%s err=%v", id, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// RecordPayment godoc
// @Summary      Record a manual payment
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Order ID"
// @Param        payload body request.RecordPaymentRequest true "Payment"
// @Success      200 {object} response.PaymentTransitionResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Failure      502 {object} pkg.HTTPError
// @Router       /v1/orders/{id}/payments [post]
func (h *OrderHandler) RecordPayment(c *gin.Context) {
	var payload request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	id := c.Param("id")
	log.Printf("[order][handler] record-payment start order_id=%s amount=%.2f", id, payload.Amount)

	tr, err := h.usecase.RecordPayment(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		log.Printf("[order][handler] record-payment failed order_id=%s err=%v", id, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[order][handler] record-payment success order_id=%s transitioned=%t", id, tr.Transitioned)
	c.JSON(http.StatusOK, response.FromPaymentTransition(tr))
}

// RefreshPaymentLink godoc
// @Summary      Create the checkout link of a pending order when it has none
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} response.OrderResponse
// @Failure      409 {object} pkg.HTTPError
// @Router       /v1/orders/{id}/payment-link [post]
func (h *OrderHandler) RefreshPaymentLink(c *gin.Context) {
	o, err := h.usecase.RefreshPaymentLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidCompanyID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidCustomItem), errors.Is(err, usecase.ErrInvalidOrderTotal):
		return pkg.NewDomainErrorSimple("INVALID_ORDER", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidPackage):
		return pkg.NewDomainErrorSimple("INVALID_PACKAGE", "Unknown package", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoInvoice):
		return pkg.NewDomainErrorSimple("NO_INVOICE", "Order has no invoice", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillingServiceFailed):
		return pkg.NewDomainError("BILLING_SERVICE_FAILED", "Billing service request failed", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrOrderAlreadyPaid):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_PAID", "Order already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidPaymentAmount):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_AMOUNT", "Payment amount must be greater than zero", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
