package http

import (
	"time"

	"fastfood/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the JSON error payload for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SubmitOrderRequest is the intake payload. The idempotency key is optional;
// when blank the server assigns one and echoes it back.
type SubmitOrderRequest struct {
	CustomerID     string                   `json:"customerId"`
	DeliveryType   string                   `json:"deliveryType"`
	Items          []SubmitOrderRequestItem `json:"items"`
	IdempotencyKey string                   `json:"idempotencyKey"`
}

// SubmitOrderRequestItem is one requested order line.
type SubmitOrderRequestItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// SubmitOrderResponse acknowledges an enqueued order creation request. The
// key is the client's handle for retrying the same order safely.
type SubmitOrderResponse struct {
	IdempotencyKey string `json:"idempotencyKey"`
}

// CancelOrderRequest carries the mandatory cancellation reason.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// OrderSummaryResponse is one order on the pending feed.
type OrderSummaryResponse struct {
	ID           string              `json:"id"`
	CustomerID   string              `json:"customerId"`
	CreationDate time.Time           `json:"creationDate"`
	DeliveryType string              `json:"deliveryType"`
	Total        decimal.Decimal     `json:"total"`
	Items        []OrderItemResponse `json:"items"`
}

// OrderDetailResponse is the full order view.
type OrderDetailResponse struct {
	ID                 string              `json:"id"`
	CustomerID         string              `json:"customerId"`
	CreationDate       time.Time           `json:"creationDate"`
	Status             string              `json:"status"`
	DeliveryType       string              `json:"deliveryType"`
	CancellationReason string              `json:"cancellationReason,omitempty"`
	Total              decimal.Decimal     `json:"total"`
	Items              []OrderItemResponse `json:"items"`
}

// OrderItemResponse is one order line in a response.
type OrderItemResponse struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
}

func toOrderItemResponses(items []queries.OrderItemResponse) []OrderItemResponse {
	response := make([]OrderItemResponse, len(items))
	for i, item := range items {
		response[i] = OrderItemResponse{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		}
	}
	return response
}

func toOrderSummaryResponse(item queries.GetPendingOrdersQueryResponse) OrderSummaryResponse {
	return OrderSummaryResponse{
		ID:           item.ID.String(),
		CustomerID:   item.CustomerID.String(),
		CreationDate: item.CreationDate,
		DeliveryType: item.DeliveryType,
		Total:        item.Total,
		Items:        toOrderItemResponses(item.Items),
	}
}

func toOrderDetailResponse(detail queries.GetOrderByIDQueryResponse) OrderDetailResponse {
	return OrderDetailResponse{
		ID:                 detail.ID.String(),
		CustomerID:         detail.CustomerID.String(),
		CreationDate:       detail.CreationDate,
		Status:             detail.Status,
		DeliveryType:       detail.DeliveryType,
		CancellationReason: detail.CancellationReason,
		Total:              detail.Total,
		Items:              toOrderItemResponses(detail.Items),
	}
}
