package commands_test

import (
	"context"
	"fmt"
	"testing"

	"fastfood/internal/core/application/usecases/commands"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRequestPublisher struct{ mock.Mock }

func (m *MockOrderRequestPublisher) Publish(ctx context.Context, request ports.OrderCreationRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func TestSubmitOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()
	line, _ := commands.NewOrderLine(productID, 2)
	cmd, _ := commands.NewSubmitOrderCommand(customerID, order.Delivery, []commands.OrderLine{line}, "key-1")

	publisher := new(MockOrderRequestPublisher)
	publisher.On("Publish", ctx, ports.OrderCreationRequest{
		CustomerID:   customerID.String(),
		DeliveryType: "Delivery",
		Items: []ports.OrderCreationRequestItem{
			{ProductID: productID.String(), Quantity: 2},
		},
		IdempotencyKey: "key-1",
	}).Return(nil).Once()

	h := commands.NewSubmitOrderCommandHandler(publisher)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	publisher.AssertExpectations(t)
}

func TestSubmitOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SubmitOrderCommand{} // not constructed properly

	publisher := new(MockOrderRequestPublisher)
	h := commands.NewSubmitOrderCommandHandler(publisher)

	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestSubmitOrderCommandHandler_Handle_BrokerError(t *testing.T) {
	ctx := t.Context()
	line, _ := commands.NewOrderLine(kernel.NewUUID(), 1)
	cmd, _ := commands.NewSubmitOrderCommand(kernel.NewUUID(), order.Counter, []commands.OrderLine{line}, "key-2")

	brokerErr := fmt.Errorf("publish order request: %w", ports.ErrBrokerUnavailable)
	publisher := new(MockOrderRequestPublisher)
	publisher.On("Publish", ctx, mock.AnythingOfType("ports.OrderCreationRequest")).Return(brokerErr).Once()

	h := commands.NewSubmitOrderCommandHandler(publisher)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, ports.ErrBrokerUnavailable)
	publisher.AssertExpectations(t)
}
