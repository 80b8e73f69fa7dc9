package queries_test

import (
	"context"
	"testing"
	"time"

	"retail/internal/core/domain/model/customer"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/order"
	"retail/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderReader) List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderReader) LatestForCustomer(
	ctx context.Context, customerRef int64, channel order.Channel,
) (*order.Order, error) {
	args := m.Called(ctx, customerRef, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderReader) History(ctx context.Context, orderID int64) ([]order.StatusChange, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.StatusChange), args.Error(1)
}

type MockCustomerFinder struct{ mock.Mock }

func (m *MockCustomerFinder) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerFinder) FindByPhone(ctx context.Context, phone string) (*customer.Customer, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func testOrder(t *testing.T, id int64, channel order.Channel, status order.Status) *order.Order {
	t.Helper()

	price, err := kernel.ParseMoney("12.50")
	require.NoError(t, err)
	item, err := order.NewLineItem(300, 2, price)
	require.NoError(t, err)

	paymentRef := ""
	if channel == order.Web {
		paymentRef = "PAY-9"
	}

	o, err := order.RestoreOrder(id, channel, 8, createdAt, item.Subtotal(), status, []order.LineItem{item}, paymentRef)
	require.NoError(t, err)
	return o
}

func testHistory(t *testing.T, orderID int64) []order.StatusChange {
	t.Helper()

	first, err := order.RestoreStatusChange(orderID, order.Pending, order.Processing, createdAt.Add(time.Minute), "maria")
	require.NoError(t, err)
	second, err := order.RestoreStatusChange(orderID, order.Processing, order.Completed, createdAt.Add(time.Hour), "luis")
	require.NoError(t, err)
	return []order.StatusChange{first, second}
}
