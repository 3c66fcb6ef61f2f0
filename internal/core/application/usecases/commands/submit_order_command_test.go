package commands_test

import (
	"testing"

	"fastfood/internal/core/application/usecases/commands"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLines(t *testing.T) []commands.OrderLine {
	t.Helper()
	line, err := commands.NewOrderLine(kernel.NewUUID(), 2)
	require.NoError(t, err)
	return []commands.OrderLine{line}
}

func TestNewSubmitOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		customerID := kernel.NewUUID()

		cmd, err := commands.NewSubmitOrderCommand(customerID, order.Delivery, validLines(t), "client-key")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.CustomerID().IsEqual(customerID))
		assert.Equal(t, order.Delivery, cmd.DeliveryType())
		assert.Len(t, cmd.Lines(), 1)
		assert.Equal(t, "client-key", cmd.IdempotencyKey())
	})

	t.Run("should assign idempotency key when blank", func(t *testing.T) {
		cmd, err := commands.NewSubmitOrderCommand(kernel.NewUUID(), order.Counter, validLines(t), "  ")

		require.NoError(t, err)
		assert.NotEmpty(t, cmd.IdempotencyKey())

		_, parseErr := kernel.UUIDFromString(cmd.IdempotencyKey())
		require.NoError(t, parseErr)
	})

	t.Run("should fail with empty customer id", func(t *testing.T) {
		var emptyID kernel.UUID

		_, err := commands.NewSubmitOrderCommand(emptyID, order.Delivery, validLines(t), "key")

		require.Error(t, err)
	})

	t.Run("should fail with invalid delivery type", func(t *testing.T) {
		_, err := commands.NewSubmitOrderCommand(kernel.NewUUID(), order.DeliveryTypeUnknown, validLines(t), "key")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with no items", func(t *testing.T) {
		_, err := commands.NewSubmitOrderCommand(kernel.NewUUID(), order.Delivery, nil, "key")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with unconstructed line", func(t *testing.T) {
		_, err := commands.NewSubmitOrderCommand(
			kernel.NewUUID(), order.Delivery, []commands.OrderLine{{}}, "key",
		)

		require.Error(t, err)
		assert.Equal(t, commands.ErrOrderLineIsNotConstructed, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.SubmitOrderCommand

		require.Error(t, cmd.Validate())
	})
}

func TestNewOrderLine(t *testing.T) {
	t.Run("should create valid line", func(t *testing.T) {
		productID := kernel.NewUUID()

		line, err := commands.NewOrderLine(productID, 3)

		require.NoError(t, err)
		assert.True(t, line.ProductID().IsEqual(productID))
		assert.Equal(t, 3, line.Quantity())
	})

	t.Run("should fail with empty product id", func(t *testing.T) {
		var emptyID kernel.UUID

		_, err := commands.NewOrderLine(emptyID, 1)

		require.Error(t, err)
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		_, err := commands.NewOrderLine(kernel.NewUUID(), 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
