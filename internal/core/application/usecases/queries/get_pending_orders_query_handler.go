package queries

import (
	"context"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetPendingOrdersQueryHandler reads pending orders straight from the
// database, bypassing the aggregate. One joined query brings back the order
// rows with their lines; grouping happens in memory.
type GetPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersQueryHandler creates a handler for pending order queries.
// Requires a GORM database connection for query execution.
func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back oldest first so the kitchen
// works the queue in arrival order.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]GetPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetPendingOrdersQueryResponse, 0)
	indexByID := make(map[kernel.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.creation_date,
			o.delivery_type,
			i.product_id,
			i.product_name,
			i.unit_price,
			i.quantity
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		WHERE o.status = ?
		ORDER BY o.creation_date, o.id
	`, order.Pending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, customerID, productID uuid.UUID
		var creationDate time.Time
		var deliveryType int
		var productName string
		var unitPrice decimal.Decimal
		var quantity int

		err = rows.Scan(
			&id,
			&customerID,
			&creationDate,
			&deliveryType,
			&productID,
			&productName,
			&unitPrice,
			&quantity,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		idx, seen := indexByID[orderID]
		if !seen {
			customerUUID, custErr := kernel.UUIDFromBytes(customerID[:])
			if custErr != nil {
				return nil, custErr
			}

			orders = append(orders, GetPendingOrdersQueryResponse{
				ID:           orderID,
				CustomerID:   customerUUID,
				CreationDate: creationDate,
				DeliveryType: order.DeliveryType(deliveryType).String(),
				Total:        decimal.Zero,
			})
			idx = len(orders) - 1
			indexByID[orderID] = idx
		}

		lineProductID, prodErr := kernel.UUIDFromBytes(productID[:])
		if prodErr != nil {
			return nil, prodErr
		}

		orders[idx].Items = append(orders[idx].Items, OrderItemResponse{
			ProductID:   lineProductID,
			ProductName: productName,
			UnitPrice:   unitPrice,
			Quantity:    quantity,
		})
		lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
		orders[idx].Total = orders[idx].Total.Add(lineTotal)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
