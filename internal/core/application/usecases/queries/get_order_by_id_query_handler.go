package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler reads one order with its lines from the database.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single-order queries.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when no order
// exists with the requested id.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (GetOrderByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	var id, customerID uuid.UUID
	var creationDate time.Time
	var status, deliveryType int
	var cancellationReason string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			creation_date,
			status,
			delivery_type,
			cancellation_reason
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&customerID,
		&creationDate,
		&status,
		&deliveryType,
		&cancellationReason,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderByIDQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}
	customerUUID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	response := GetOrderByIDQueryResponse{
		ID:                 orderID,
		CustomerID:         customerUUID,
		CreationDate:       creationDate,
		Status:             order.Status(status).String(),
		DeliveryType:       order.DeliveryType(deliveryType).String(),
		CancellationReason: cancellationReason,
		Total:              decimal.Zero,
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			product_name,
			unit_price,
			quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY product_name
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var productID uuid.UUID
		var productName string
		var unitPrice decimal.Decimal
		var quantity int

		if err = rows.Scan(&productID, &productName, &unitPrice, &quantity); err != nil {
			return GetOrderByIDQueryResponse{}, err
		}

		lineProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return GetOrderByIDQueryResponse{}, idErr
		}

		response.Items = append(response.Items, OrderItemResponse{
			ProductID:   lineProductID,
			ProductName: productName,
			UnitPrice:   unitPrice,
			Quantity:    quantity,
		})
		response.Total = response.Total.Add(unitPrice.Mul(decimal.NewFromInt(int64(quantity))))
	}

	if err = rows.Err(); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	return response, nil
}
