package queries

import (
	"errors"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery retrieves all orders awaiting a kitchen decision.
// This is the kitchen display feed: everything still in Pending status,
// oldest first.
//
// Example:
//
//	query := NewGetPendingOrdersQuery()
//	handler := NewGetPendingOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get pending orders: %w", err)
//	}
//
//	for _, order := range orders {
//	    fmt.Printf("Order %s: %s total\n", order.ID, order.Total)
//	}
type GetPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a query to retrieve pending orders.
// This is a parameterless query.
func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// GetPendingOrdersQueryResponse is one pending order on the kitchen feed.
// Total is recomputed from the item lines at read time; the lines are the
// source of truth.
type GetPendingOrdersQueryResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	CreationDate time.Time
	DeliveryType string
	Total        decimal.Decimal
	Items        []OrderItemResponse
}

// OrderItemResponse is one order line in a query response.
type OrderItemResponse struct {
	ProductID   kernel.UUID
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
}
