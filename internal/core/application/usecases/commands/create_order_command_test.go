package commands_test

import (
	"testing"

	"fastfood/internal/core/application/usecases/commands"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/ports"
	"fastfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() ports.OrderCreationRequest {
	return ports.OrderCreationRequest{
		CustomerID:   kernel.NewUUID().String(),
		DeliveryType: "Delivery",
		Items: []ports.OrderCreationRequestItem{
			{ProductID: kernel.NewUUID().String(), Quantity: 2},
		},
		IdempotencyKey: "key-1",
	}
}

func TestNewCreateOrderCommandFromRequest(t *testing.T) {
	t.Run("should parse valid request", func(t *testing.T) {
		request := validRequest()

		cmd, err := commands.NewCreateOrderCommandFromRequest(request)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, request.CustomerID, cmd.CustomerID().String())
		assert.Equal(t, order.Delivery, cmd.DeliveryType())
		require.Len(t, cmd.Lines(), 1)
		assert.Equal(t, 2, cmd.Lines()[0].Quantity())
		assert.Equal(t, "key-1", cmd.IdempotencyKey())
	})

	t.Run("should fail with malformed customer id", func(t *testing.T) {
		request := validRequest()
		request.CustomerID = "not-a-uuid"

		_, err := commands.NewCreateOrderCommandFromRequest(request)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with unknown delivery type", func(t *testing.T) {
		request := validRequest()
		request.DeliveryType = "Teleport"

		_, err := commands.NewCreateOrderCommandFromRequest(request)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with malformed product id", func(t *testing.T) {
		request := validRequest()
		request.Items[0].ProductID = "??"

		_, err := commands.NewCreateOrderCommandFromRequest(request)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		request := validRequest()
		request.Items[0].Quantity = 0

		_, err := commands.NewCreateOrderCommandFromRequest(request)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with no items", func(t *testing.T) {
		request := validRequest()
		request.Items = nil

		_, err := commands.NewCreateOrderCommandFromRequest(request)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with blank idempotency key", func(t *testing.T) {
		request := validRequest()
		request.IdempotencyKey = ""

		_, err := commands.NewCreateOrderCommandFromRequest(request)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
