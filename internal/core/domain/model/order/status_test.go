package order_test

import (
	"fmt"
	"testing"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/order"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allValidStatuses() []order.Status {
	return []order.Status{
		order.Pending,
		order.Confirmed,
		order.Picking,
		order.OutForDelivery,
		order.Delivered,
		order.Canceled,
	}
}

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Confirmed))
		assert.Equal(t, 3, int(order.Picking))
		assert.Equal(t, 4, int(order.OutForDelivery))
		assert.Equal(t, 5, int(order.Delivered))
		assert.Equal(t, 6, int(order.Canceled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range allValidStatuses() {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		err := order.Status(42).Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "42 is not a valid status")
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire names", func(t *testing.T) {
		assert.Equal(t, "pending", order.Pending.String())
		assert.Equal(t, "confirmed", order.Confirmed.String())
		assert.Equal(t, "picking", order.Picking.String())
		assert.Equal(t, "out_for_delivery", order.OutForDelivery.String())
		assert.Equal(t, "delivered", order.Delivered.String())
		assert.Equal(t, "canceled", order.Canceled.String())
	})

	t.Run("should return unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Unknown.String())
		assert.Equal(t, "unknown", order.Status(99).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round-trip every valid status", func(t *testing.T) {
		for _, status := range allValidStatuses() {
			parsed, err := order.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unrecognized names", func(t *testing.T) {
		for _, name := range []string{"", "unknown", "PENDING", "shipped"} {
			parsed, err := order.StatusFromString(name)

			require.Error(t, err, "name %q", name)
			assert.Equal(t, order.Unknown, parsed)
		}
	})
}

func TestStatus_Predicates(t *testing.T) {
	t.Run("should mark only Delivered and Canceled as terminal", func(t *testing.T) {
		assert.True(t, order.Delivered.IsTerminal())
		assert.True(t, order.Canceled.IsTerminal())
		assert.False(t, order.Pending.IsTerminal())
		assert.False(t, order.Confirmed.IsTerminal())
		assert.False(t, order.Picking.IsTerminal())
		assert.False(t, order.OutForDelivery.IsTerminal())
	})

	t.Run("should mark only Pending and Confirmed as unbundled", func(t *testing.T) {
		assert.True(t, order.Pending.IsUnbundled())
		assert.True(t, order.Confirmed.IsUnbundled())
		assert.False(t, order.Picking.IsUnbundled())
		assert.False(t, order.OutForDelivery.IsUnbundled())
		assert.False(t, order.Delivered.IsUnbundled())
		assert.False(t, order.Canceled.IsUnbundled())
	})
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("Confirm", func(t *testing.T) {
		next, err := order.Pending.Confirm()
		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, next)

		for _, status := range []order.Status{order.Confirmed, order.Picking, order.OutForDelivery, order.Delivered, order.Canceled} {
			_, err := status.Confirm()
			require.Error(t, err, "status %s", status)
			assert.Contains(t, err.Error(), "is not a valid status to confirm")
		}
	})

	t.Run("StartPicking", func(t *testing.T) {
		next, err := order.Confirmed.StartPicking()
		require.NoError(t, err)
		assert.Equal(t, order.Picking, next)

		_, err = order.Pending.StartPicking()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pending is not a valid status to start picking")
	})

	t.Run("CompletePicking", func(t *testing.T) {
		next, err := order.Picking.CompletePicking()
		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, next)

		_, err = order.Confirmed.CompletePicking()
		require.Error(t, err)
	})

	t.Run("Deliver", func(t *testing.T) {
		next, err := order.OutForDelivery.Deliver()
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, next)

		_, err = order.Picking.Deliver()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "picking is not a valid status to deliver")
	})

	t.Run("Cancel", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Confirmed, order.Picking, order.OutForDelivery} {
			next, err := status.Cancel()
			require.NoError(t, err, "status %s", status)
			assert.Equal(t, order.Canceled, next)
		}

		_, err := order.Delivered.Cancel()
		require.Error(t, err)

		_, err = order.Canceled.Cancel()
		require.Error(t, err)

		_, err = order.Unknown.Cancel()
		require.Error(t, err)
	})
}
