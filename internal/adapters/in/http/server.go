// Package http provides the echo-based HTTP adapter. Order intake returns
// 202 Accepted with the request's idempotency key; the order itself
// materializes asynchronously once the creation queue is drained.
package http

import (
	"context"
	"errors"
	"net/http"

	"fastfood/internal/core/application/usecases/commands"
	"fastfood/internal/core/application/usecases/queries"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/ports"
	"fastfood/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type orderSubmitter interface {
	Handle(ctx context.Context, cmd commands.SubmitOrderCommand) error
}

type orderAccepter interface {
	Handle(ctx context.Context, cmd commands.AcceptOrderCommand) error
}

type orderRejecter interface {
	Handle(ctx context.Context, cmd commands.RejectOrderCommand) error
}

type orderCanceler interface {
	Handle(ctx context.Context, cmd commands.CancelOrderCommand) error
}

type pendingOrdersReader interface {
	Handle(ctx context.Context, query queries.GetPendingOrdersQuery) ([]queries.GetPendingOrdersQueryResponse, error)
}

type orderReader interface {
	Handle(ctx context.Context, query queries.GetOrderByIDQuery) (queries.GetOrderByIDQueryResponse, error)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	submitOrderHandler orderSubmitter
	acceptOrderHandler orderAccepter
	rejectOrderHandler orderRejecter
	cancelOrderHandler orderCanceler

	getPendingOrdersHandler pendingOrdersReader
	getOrderByIDHandler     orderReader
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	submitOrderHandler orderSubmitter,
	acceptOrderHandler orderAccepter,
	rejectOrderHandler orderRejecter,
	cancelOrderHandler orderCanceler,
	getPendingOrdersHandler pendingOrdersReader,
	getOrderByIDHandler orderReader,
) *Server {
	return &Server{
		submitOrderHandler:      submitOrderHandler,
		acceptOrderHandler:      acceptOrderHandler,
		rejectOrderHandler:      rejectOrderHandler,
		cancelOrderHandler:      cancelOrderHandler,
		getPendingOrdersHandler: getPendingOrdersHandler,
		getOrderByIDHandler:     getOrderByIDHandler,
	}
}

// RegisterRoutes attaches all order endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.SubmitOrder)
	api.GET("/orders/pending", s.GetPendingOrders)
	api.GET("/orders/:id", s.GetOrderByID)
	api.PUT("/orders/:id/accept", s.AcceptOrder)
	api.PUT("/orders/:id/reject", s.RejectOrder)
	api.PUT("/orders/:id/cancel", s.CancelOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// SubmitOrder handles POST /api/v1/orders. The request is shape-checked,
// enqueued, and acknowledged with 202; full validation against the catalog
// happens when the queue worker applies it.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var request SubmitOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+request.CustomerID)
	}

	deliveryType, err := order.DeliveryTypeFromString(request.DeliveryType)
	if err != nil {
		return badRequest(ctx, "Invalid delivery type: "+request.DeliveryType)
	}

	lines := make([]commands.OrderLine, 0, len(request.Items))
	for _, item := range request.Items {
		productID, itemErr := kernel.UUIDFromString(item.ProductID)
		if itemErr != nil {
			return badRequest(ctx, "Invalid product id: "+item.ProductID)
		}

		line, itemErr := commands.NewOrderLine(productID, item.Quantity)
		if itemErr != nil {
			return badRequest(ctx, "Invalid order line: "+itemErr.Error())
		}
		lines = append(lines, line)
	}

	cmd, err := commands.NewSubmitOrderCommand(customerID, deliveryType, lines, request.IdempotencyKey)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.submitOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusAccepted, SubmitOrderResponse{
		IdempotencyKey: cmd.IdempotencyKey(),
	})
}

// GetPendingOrders handles GET /api/v1/orders/pending.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	query := queries.NewGetPendingOrdersQuery()

	pending, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]OrderSummaryResponse, len(pending))
	for i, item := range pending {
		response[i] = toOrderSummaryResponse(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderByID handles GET /api/v1/orders/:id.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	detail, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderDetailResponse(detail))
}

// AcceptOrder handles PUT /api/v1/orders/:id/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	if err = s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrder handles PUT /api/v1/orders/:id/reject.
func (s *Server) RejectOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	cmd, err := commands.NewRejectOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	if err = s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles PUT /api/v1/orders/:id/cancel. The body must carry a
// non-blank reason.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	var request CancelOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, request.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation: "+err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// errorResponse maps application errors to HTTP status codes.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return jsonError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrVersionConflict):
		return jsonError(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, order.ErrInvalidTransition):
		return jsonError(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, ports.ErrBrokerUnavailable):
		return jsonError(ctx, http.StatusServiceUnavailable, "Order intake is temporarily unavailable")
	default:
		return jsonError(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return jsonError(ctx, http.StatusBadRequest, message)
}

func jsonError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
