package order_test

import (
	"testing"
	"time"

	"retail/internal/core/domain/model/order"
	"retail/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreStatusChange(t *testing.T) {
	at := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

	t.Run("should restore valid record", func(t *testing.T) {
		c, err := order.RestoreStatusChange(4, order.Pending, order.Cancelled, at, order.SystemActor)

		require.NoError(t, err)
		assert.Equal(t, "system", c.Actor())
		assert.Equal(t, order.Cancelled, c.NewStatus())
	})

	t.Run("should report every invalid field", func(t *testing.T) {
		_, err := order.RestoreStatusChange(0, order.Unknown, order.Pending, time.Time{}, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "order_id is invalid")
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "changed_at")
		assert.Contains(t, err.Error(), "actor")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var c order.StatusChange
		require.ErrorIs(t, c.Validate(), order.ErrStatusChangeIsNotConstructed)
	})
}
