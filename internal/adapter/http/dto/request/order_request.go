package request

import (
	"strings"

	"commerce_engine/internal/domain/entities"
	"commerce_engine/internal/usecase"
)

type CustomItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
}

type CreateOrderRequest struct {
	CompanyID     string              `json:"company_id" binding:"required"`
	Package       string              `json:"package" binding:"required"`
	Addons        []string            `json:"addons"`
	CustomItems   []CustomItemRequest `json:"custom_items" binding:"dive"`
	CustomerName  string              `json:"customer_name"`
	CustomerEmail string              `json:"customer_email" binding:"omitempty,email"`
	Notes         string              `json:"notes"`
}

func (r CreateOrderRequest) ResolveCompanyID() string {
	return strings.TrimSpace(r.CompanyID)
}

func (r CreateOrderRequest) ToOrderRequest() entities.OrderRequest {
	items := make([]entities.CustomItem, 0, len(r.CustomItems))
	for _, it := range r.CustomItems {
		items = append(items, entities.CustomItem{Description: strings.TrimSpace(it.Description), Price: it.Price})
	}
	addons := make([]string, 0, len(r.Addons))
	for _, a := range r.Addons {
		if v := strings.TrimSpace(a); v != "" {
			addons = append(addons, v)
		}
	}
	return entities.OrderRequest{
		Package:       strings.TrimSpace(r.Package),
		Addons:        addons,
		CustomItems:   items,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		Notes:         r.Notes,
	}
}

type RecordPaymentRequest struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Method        string  `json:"method"`
	TransactionID string  `json:"transaction_id"`
}

func (r RecordPaymentRequest) ToInput() usecase.RecordPaymentInput {
	return usecase.RecordPaymentInput{
		Amount:        r.Amount,
		Method:        strings.TrimSpace(r.Method),
		TransactionID: strings.TrimSpace(r.TransactionID),
	}
}
