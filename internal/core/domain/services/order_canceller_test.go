package services_test

import (
	"testing"
	"time"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/order"
	"retail/internal/core/domain/services"
	"retail/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var at = time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

func orderIn(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	price, err := kernel.ParseMoney("10.00")
	require.NoError(t, err)
	item, err := order.NewLineItem(1, 1, price)
	require.NoError(t, err)
	o, err := order.RestoreOrder(1, order.InPerson, 2, at, price, status, []order.LineItem{item}, "")
	require.NoError(t, err)
	return o
}

func TestOrderCanceller_TargetFor(t *testing.T) {
	testCases := []struct {
		current  order.Status
		expected order.Status
	}{
		{order.Pending, order.Cancelled},
		{order.Processing, order.Voided},
		{order.Completed, order.Voided},
	}

	canceller := services.NewOrderCanceller()
	for _, tc := range testCases {
		t.Run(tc.current.String(), func(t *testing.T) {
			target, err := canceller.TargetFor(tc.current)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, target)
			assert.True(t, tc.current.CanTransitionTo(target))
		})
	}

	for _, final := range []order.Status{order.Delivered, order.Cancelled, order.Voided, order.Unknown} {
		t.Run(final.String()+" is rejected", func(t *testing.T) {
			_, err := canceller.TargetFor(final)

			require.ErrorIs(t, err, errs.ErrInvalidTransition)
		})
	}
}

func TestOrderCanceller_TargetFor_ReportsStageTarget(t *testing.T) {
	testCases := []struct {
		current   order.Status
		attempted string
	}{
		{order.Cancelled, "CANCELLED"},
		{order.Voided, "VOIDED"},
		{order.Delivered, "VOIDED"},
	}

	canceller := services.NewOrderCanceller()
	for _, tc := range testCases {
		t.Run(tc.current.String(), func(t *testing.T) {
			_, err := canceller.TargetFor(tc.current)

			var transitionErr *errs.InvalidTransitionError
			require.ErrorAs(t, err, &transitionErr)
			assert.Equal(t, tc.current.String(), transitionErr.From)
			assert.Equal(t, tc.attempted, transitionErr.To)
		})
	}
}

func TestOrderCanceller_Withdraw(t *testing.T) {
	t.Run("pending order is cancelled", func(t *testing.T) {
		o := orderIn(t, order.Pending)

		change, err := services.NewOrderCanceller().Withdraw(o, "maria", at)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, order.Pending, change.PreviousStatus())
	})

	t.Run("completed order is voided", func(t *testing.T) {
		o := orderIn(t, order.Completed)

		_, err := services.NewOrderCanceller().Withdraw(o, "maria", at)

		require.NoError(t, err)
		assert.Equal(t, order.Voided, o.Status())
	})

	t.Run("delivered order stays delivered", func(t *testing.T) {
		o := orderIn(t, order.Delivered)

		_, err := services.NewOrderCanceller().Withdraw(o, "maria", at)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("unconstructed order is rejected", func(t *testing.T) {
		_, err := services.NewOrderCanceller().Withdraw(&order.Order{}, "maria", at)

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
