package order_test

import (
	"testing"
	"time"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/order"
	"retail/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

func twoItems(t *testing.T) []order.LineItem {
	t.Helper()
	first, err := order.NewLineItem(1, 2, mustMoney(t, "24.99"))
	require.NoError(t, err)
	second, err := order.NewLineItem(2, 1, mustMoney(t, "47.50"))
	require.NoError(t, err)
	return []order.LineItem{first, second}
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending web order with computed total", func(t *testing.T) {
		o, err := order.NewOrder(order.Web, 3, twoItems(t), "PAY-1", createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, int64(0), o.ID())
		assert.Equal(t, order.Web, o.Channel())
		assert.Equal(t, int64(3), o.CustomerRef())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "97.48", o.TotalAmount().String())
		assert.Equal(t, "PAY-1", o.ExternalPaymentRef())
		assert.Len(t, o.LineItems(), 2)
	})

	t.Run("should create in person order without payment reference", func(t *testing.T) {
		o, err := order.NewOrder(order.InPerson, 3, twoItems(t), "", createdAt)

		require.NoError(t, err)
		assert.Empty(t, o.ExternalPaymentRef())
	})

	t.Run("should fail web order without payment reference", func(t *testing.T) {
		o, err := order.NewOrder(order.Web, 3, twoItems(t), "", createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.True(t, errs.IsValidation(err))
		assert.Nil(t, o)
	})

	t.Run("should fail in person order with payment reference", func(t *testing.T) {
		o, err := order.NewOrder(order.InPerson, 3, twoItems(t), "PAY-1", createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o)
	})

	t.Run("should fail without line items", func(t *testing.T) {
		_, err := order.NewOrder(order.InPerson, 3, nil, "", createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "line_items")
	})

	t.Run("should report all invalid fields", func(t *testing.T) {
		_, err := order.NewOrder(order.UnknownChannel, 0, nil, "", time.Time{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "channel is invalid")
		assert.Contains(t, err.Error(), "customer_ref is invalid")
		assert.Contains(t, err.Error(), "created_at")
		assert.Contains(t, err.Error(), "line_items")
	})

	t.Run("line items are copied", func(t *testing.T) {
		items := twoItems(t)
		o, err := order.NewOrder(order.InPerson, 3, items, "", createdAt)
		require.NoError(t, err)

		items[0], _ = order.NewLineItem(99, 1, kernel.ZeroMoney())
		returned := o.LineItems()
		returned[1], _ = order.NewLineItem(98, 1, kernel.ZeroMoney())

		assert.Equal(t, int64(1), o.LineItems()[0].ProductRef())
		assert.Equal(t, int64(2), o.LineItems()[1].ProductRef())
	})
}

func TestOrder_AssignID(t *testing.T) {
	o, err := order.NewOrder(order.InPerson, 3, twoItems(t), "", createdAt)
	require.NoError(t, err)

	require.ErrorIs(t, o.AssignID(0), errs.ErrValueIsInvalid)
	require.NoError(t, o.AssignID(12))
	require.NoError(t, o.AssignID(12))
	require.ErrorIs(t, o.AssignID(13), errs.ErrValueIsInvalid)
	assert.Equal(t, int64(12), o.ID())
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore persisted state", func(t *testing.T) {
		total := mustMoney(t, "100.00")
		o, err := order.RestoreOrder(5, order.Web, 3, createdAt, total, order.Completed, twoItems(t), "PAY-5")

		require.NoError(t, err)
		assert.Equal(t, int64(5), o.ID())
		assert.Equal(t, order.Completed, o.Status())
		assert.Equal(t, "100.00", o.TotalAmount().String())
	})

	t.Run("should reject invalid status and id", func(t *testing.T) {
		_, err := order.RestoreOrder(0, order.Web, 3, createdAt, kernel.ZeroMoney(), order.Unknown, twoItems(t), "PAY-5")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "id is invalid")
		assert.Contains(t, err.Error(), "status is invalid")
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	newWebOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(order.Web, 3, twoItems(t), "PAY-1", createdAt)
		require.NoError(t, err)
		require.NoError(t, o.AssignID(1))
		return o
	}
	at := createdAt.Add(time.Hour)

	t.Run("should apply edge and return change record", func(t *testing.T) {
		o := newWebOrder(t)

		change, err := o.ChangeStatus(order.Processing, "maria", at)

		require.NoError(t, err)
		require.NoError(t, change.Validate())
		assert.Equal(t, order.Processing, o.Status())
		assert.Equal(t, int64(1), change.OrderID())
		assert.Equal(t, order.Pending, change.PreviousStatus())
		assert.Equal(t, order.Processing, change.NewStatus())
		assert.Equal(t, at, change.ChangedAt())
		assert.Equal(t, "maria", change.Actor())
	})

	t.Run("should follow the documented scenario", func(t *testing.T) {
		o := newWebOrder(t)

		_, err := o.ChangeStatus(order.Processing, "maria", at)
		require.NoError(t, err)

		_, err = o.ChangeStatus(order.Delivered, "maria", at)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Processing, o.Status())

		_, err = o.ChangeStatus(order.Completed, "maria", at)
		require.NoError(t, err)
		_, err = o.ChangeStatus(order.Delivered, "maria", at)
		require.NoError(t, err)

		_, err = o.ChangeStatus(order.Cancelled, "maria", at)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("terminal statuses reject every target", func(t *testing.T) {
		for _, terminal := range []order.Status{order.Cancelled, order.Voided} {
			o := newWebOrder(t)
			_, err := o.ChangeStatus(terminal, "maria", at)
			require.NoError(t, err)

			for _, target := range order.Statuses() {
				_, err = o.ChangeStatus(target, "maria", at)
				require.ErrorIs(t, err, errs.ErrInvalidTransition)
				assert.Equal(t, terminal, o.Status())
			}
		}
	})

	t.Run("should require actor", func(t *testing.T) {
		o := newWebOrder(t)

		_, err := o.ChangeStatus(order.Processing, " ", at)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should require persisted order", func(t *testing.T) {
		o, err := order.NewOrder(order.InPerson, 3, twoItems(t), "", createdAt)
		require.NoError(t, err)

		_, err = o.ChangeStatus(order.Processing, "maria", at)

		require.ErrorIs(t, err, order.ErrOrderHasNoID)
	})
}

func TestOrder_ZeroValueIsInvalid(t *testing.T) {
	var o *order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}
