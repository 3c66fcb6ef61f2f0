package order_test

import (
	"testing"

	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryTypeFromString(t *testing.T) {
	t.Run("should parse all valid values", func(t *testing.T) {
		cases := map[string]order.DeliveryType{
			"Counter":   order.Counter,
			"DriveThru": order.DriveThru,
			"Delivery":  order.Delivery,
		}

		for raw, want := range cases {
			got, err := order.DeliveryTypeFromString(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, want, got)
		}
	})

	t.Run("should reject unknown values", func(t *testing.T) {
		for _, raw := range []string{"", "Unknown", "counter", "Drive-Thru", "Pickup"} {
			_, err := order.DeliveryTypeFromString(raw)
			require.Error(t, err, raw)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestDeliveryType_Validate(t *testing.T) {
	t.Run("should accept defined delivery types", func(t *testing.T) {
		for _, d := range []order.DeliveryType{order.Counter, order.DriveThru, order.Delivery} {
			require.NoError(t, d.Validate(), d.String())
		}
	})

	t.Run("should reject unknown delivery type", func(t *testing.T) {
		require.Error(t, order.DeliveryTypeUnknown.Validate())
		require.Error(t, order.DeliveryType(9).Validate())
	})
}

func TestDeliveryType_String(t *testing.T) {
	assert.Equal(t, "Counter", order.Counter.String())
	assert.Equal(t, "DriveThru", order.DriveThru.String())
	assert.Equal(t, "Delivery", order.Delivery.String())
	assert.Equal(t, "Unknown", order.DeliveryTypeUnknown.String())
	assert.Equal(t, "Unknown", order.DeliveryType(9).String())
}
