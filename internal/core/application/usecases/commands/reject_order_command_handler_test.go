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

func TestRejectOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should reject pending order", func(t *testing.T) {
		store := newMemoryOrderStore()
		aggregate := storePendingOrder(t, store)

		cmd, err := commands.NewRejectOrderCommand(aggregate.ID())
		require.NoError(t, err)

		h := commands.NewRejectOrderCommandHandler(store)
		require.NoError(t, h.Handle(t.Context(), cmd))

		assert.Equal(t, order.Rejected, store.status(t, aggregate.ID()))
	})

	t.Run("should return not found for unknown order", func(t *testing.T) {
		store := newMemoryOrderStore()

		cmd, err := commands.NewRejectOrderCommand(kernel.NewUUID())
		require.NoError(t, err)

		h := commands.NewRejectOrderCommandHandler(store)
		err = h.Handle(t.Context(), cmd)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should not reject an accepted order", func(t *testing.T) {
		store := newMemoryOrderStore()
		aggregate := storePendingOrder(t, store)

		acceptCmd, err := commands.NewAcceptOrderCommand(aggregate.ID())
		require.NoError(t, err)
		acceptHandler := commands.NewAcceptOrderCommandHandler(store)
		require.NoError(t, acceptHandler.Handle(t.Context(), acceptCmd))

		cmd, err := commands.NewRejectOrderCommand(aggregate.ID())
		require.NoError(t, err)

		h := commands.NewRejectOrderCommandHandler(store)
		err = h.Handle(t.Context(), cmd)

		assert.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Accepted, store.status(t, aggregate.ID()))
	})

	t.Run("should validate command", func(t *testing.T) {
		h := commands.NewRejectOrderCommandHandler(newMemoryOrderStore())

		err := h.Handle(t.Context(), commands.RejectOrderCommand{})

		assert.ErrorIs(t, err, commands.ErrRejectOrderCommandIsNotConstructed)
	})
}
