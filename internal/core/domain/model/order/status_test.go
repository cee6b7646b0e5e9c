package order_test

import (
	"fmt"
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Production))
		assert.Equal(t, 3, int(order.Shipped))
		assert.Equal(t, 4, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.Production,
			order.Shipped,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject out-of-range status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Status(-1), order.Status(5), order.Status(100)} {
			require.Error(t, status.Validate())
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire names", func(t *testing.T) {
		assert.Equal(t, "pending", order.Pending.String())
		assert.Equal(t, "production", order.Production.String())
		assert.Equal(t, "shipped", order.Shipped.String())
		assert.Equal(t, "cancelled", order.Cancelled.String())
		assert.Equal(t, "Unknown", order.Unknown.String())
		assert.Equal(t, "Unknown", order.Status(42).String())
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should cancel from any active status", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Production, order.Shipped} {
			newStatus, err := status.Cancel()

			require.NoError(t, err)
			assert.Equal(t, order.Cancelled, newStatus)
		}
	})

	t.Run("should reject cancelling a cancelled order", func(t *testing.T) {
		_, err := order.Cancelled.Cancel()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.Unknown.Cancel()
		require.Error(t, err)
	})
}

func TestUnit(t *testing.T) {
	t.Run("should parse valid unit names", func(t *testing.T) {
		cases := map[string]order.Unit{
			"feet":   order.Feet,
			"meters": order.Meters,
			"pieces": order.Pieces,
		}

		for name, want := range cases {
			unit, err := order.UnitFromString(name)

			require.NoError(t, err)
			assert.Equal(t, want, unit)
			assert.Equal(t, name, unit.String())
		}
	})

	t.Run("should reject unknown unit names", func(t *testing.T) {
		for _, name := range []string{"", "Feet", "yards", "FEET"} {
			_, err := order.UnitFromString(name)

			require.Error(t, err, "name %q", name)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject invalid unit values", func(t *testing.T) {
		require.Error(t, order.UnitUnknown.Validate())
		require.Error(t, order.Unit(9).Validate())
		require.NoError(t, order.Pieces.Validate())
	})
}

func TestItemState_String(t *testing.T) {
	assert.Equal(t, "unshipped", order.Unshipped.String())
	assert.Equal(t, "partially_shipped", order.PartiallyShipped.String())
	assert.Equal(t, "fully_shipped", order.FullyShipped.String())
	assert.Equal(t, "Unknown", order.ItemStateUnknown.String())
}
