package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"retail/internal/adapters/out/postgres/customerrepo"
	"retail/internal/adapters/out/postgres/orderrepo"
	"retail/internal/adapters/out/postgres/pgtest"
	"retail/internal/core/domain/model/customer"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/order"
	"retail/internal/core/ports"
	"retail/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate any) {
	m.Called(id, aggregate)
}

var baseTime = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

// OrderRepositoryIntegrationTestSuite verifies order persistence against PostgreSQL.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
	customerID int64
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)

	c, err := customer.NewCustomer("Ana Lopez", "ana@example.com", "+34600123456", baseTime)
	suite.Require().NoError(err)
	suite.Require().NoError(customerrepo.NewGormCustomerRepository(suite.db, suite.tracker).Add(context.Background(), c))
	suite.customerID = c.ID()
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_AssignsIDAndPersistsLineItems() {
	ctx := context.Background()
	o := suite.newOrder(order.Web, baseTime)

	err := suite.repository.Add(ctx, o)

	suite.Require().NoError(err)
	suite.Positive(o.ID())
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", o.ID(), o)

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Web, stored.Channel())
	suite.Equal(suite.customerID, stored.CustomerRef())
	suite.Equal(order.Pending, stored.Status())
	suite.Equal("97.48", stored.TotalAmount().String())
	suite.Equal("PAY-1", stored.ExternalPaymentRef())
	suite.True(baseTime.Equal(stored.CreatedAt()))
	suite.Require().Len(stored.LineItems(), 2)
	suite.Equal(int64(1001), stored.LineItems()[0].ProductRef())
	suite.Equal("49.98", stored.LineItems()[0].Subtotal().String())
	suite.Equal(int64(1002), stored.LineItems()[1].ProductRef())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnknownCustomer_IsInvalid() {
	price, err := kernel.ParseMoney("1.00")
	suite.Require().NoError(err)
	item, err := order.NewLineItem(1, 1, price)
	suite.Require().NoError(err)
	o, err := order.NewOrder(order.InPerson, suite.customerID+100, []order.LineItem{item}, "", baseTime)
	suite.Require().NoError(err)

	err = suite.repository.Add(context.Background(), o)

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
	suite.assertOrderCount(0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), 4242)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Nil(retrieved)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestList_FiltersAreCombined() {
	ctx := context.Background()
	webPending := suite.addOrder(order.Web, baseTime)
	webProcessing := suite.addOrder(order.Web, baseTime.Add(time.Minute))
	inPerson := suite.addOrder(order.InPerson, baseTime.Add(2*time.Minute))
	suite.moveTo(webProcessing, order.Processing)

	web := order.Web
	pending := order.Pending
	customerRef := suite.customerID
	other := suite.customerID + 1
	before := baseTime.Add(90 * time.Second)

	testCases := []struct {
		name     string
		filter   ports.OrderFilter
		expected []int64
	}{
		{"no filter", ports.OrderFilter{}, []int64{webPending.ID(), webProcessing.ID(), inPerson.ID()}},
		{"channel", ports.OrderFilter{Channel: &web}, []int64{webPending.ID(), webProcessing.ID()}},
		{"channel and status", ports.OrderFilter{Channel: &web, Status: &pending}, []int64{webPending.ID()}},
		{"status only", ports.OrderFilter{Status: &pending}, []int64{webPending.ID(), inPerson.ID()}},
		{"customer", ports.OrderFilter{CustomerRef: &customerRef}, []int64{webPending.ID(), webProcessing.ID(), inPerson.ID()}},
		{"other customer", ports.OrderFilter{CustomerRef: &other}, []int64{}},
		{"created before", ports.OrderFilter{CreatedBefore: &before}, []int64{webPending.ID(), webProcessing.ID()}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			found, err := suite.repository.List(ctx, tc.filter)
			suite.Require().NoError(err)

			ids := make([]int64, 0, len(found))
			for _, o := range found {
				ids = append(ids, o.ID())
			}
			suite.Equal(tc.expected, ids)
		})
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestLatestForCustomer() {
	ctx := context.Background()
	suite.addOrder(order.Web, baseTime)
	latestWeb := suite.addOrder(order.Web, baseTime.Add(time.Hour))
	suite.addOrder(order.InPerson, baseTime.Add(2*time.Hour))

	found, err := suite.repository.LatestForCustomer(ctx, suite.customerID, order.Web)
	suite.Require().NoError(err)
	suite.Equal(latestWeb.ID(), found.ID())

	_, err = suite.repository.LatestForCustomer(ctx, suite.customerID+1, order.Web)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_CompareAndSwap() {
	ctx := context.Background()
	o := suite.addOrder(order.Web, baseTime)

	_, err := o.ChangeStatus(order.Processing, "maria", baseTime.Add(time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.UpdateStatus(ctx, o, order.Pending))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, stored.Status())

	// A second writer that still believes the order is PENDING loses.
	stale := suite.reload(o.ID())
	_, err = o.ChangeStatus(order.Completed, "luis", baseTime.Add(2*time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.UpdateStatus(ctx, o, order.Processing))

	_, err = stale.ChangeStatus(order.Cancelled, "maria", baseTime.Add(3*time.Minute))
	suite.Require().NoError(err)
	err = suite.repository.UpdateStatus(ctx, stale, order.Processing)
	suite.Require().ErrorIs(err, errs.ErrConcurrencyConflict)

	stored, err = suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Completed, stored.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_MissingOrder() {
	total, err := kernel.ParseMoney("97.48")
	suite.Require().NoError(err)
	ghost, err := order.RestoreOrder(
		9999, order.Web, suite.customerID, baseTime, total, order.Processing, suite.items(), "PAY-1",
	)
	suite.Require().NoError(err)

	err = suite.repository.UpdateStatus(context.Background(), ghost, order.Pending)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestHistory_OrderedByChangedAt() {
	ctx := context.Background()
	o := suite.addOrder(order.Web, baseTime)

	first, err := order.RestoreStatusChange(o.ID(), order.Pending, order.Processing, baseTime.Add(time.Hour), "maria")
	suite.Require().NoError(err)
	second, err := order.RestoreStatusChange(o.ID(), order.Processing, order.Completed, baseTime.Add(2*time.Hour), "luis")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.AppendStatusChange(ctx, second))
	suite.Require().NoError(suite.repository.AppendStatusChange(ctx, first))

	history, err := suite.repository.History(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.Equal(order.Processing, history[0].NewStatus())
	suite.Equal("maria", history[0].Actor())
	suite.Equal(order.Completed, history[1].NewStatus())
	suite.True(baseTime.Add(2 * time.Hour).Equal(history[1].ChangedAt()))

	empty, err := suite.repository.History(ctx, o.ID()+1)
	suite.Require().NoError(err)
	suite.Empty(empty)
}

func (suite *OrderRepositoryIntegrationTestSuite) items() []order.LineItem {
	first, err := kernel.ParseMoney("24.99")
	suite.Require().NoError(err)
	second, err := kernel.ParseMoney("47.50")
	suite.Require().NoError(err)

	a, err := order.NewLineItem(1001, 2, first)
	suite.Require().NoError(err)
	b, err := order.NewLineItem(1002, 1, second)
	suite.Require().NoError(err)
	return []order.LineItem{a, b}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(channel order.Channel, createdAt time.Time) *order.Order {
	paymentRef := ""
	if channel == order.Web {
		paymentRef = "PAY-1"
	}
	o, err := order.NewOrder(channel, suite.customerID, suite.items(), paymentRef, createdAt)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) addOrder(channel order.Channel, createdAt time.Time) *order.Order {
	o := suite.newOrder(channel, createdAt)
	suite.Require().NoError(suite.repository.Add(context.Background(), o))
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) moveTo(o *order.Order, target order.Status) {
	expected := o.Status()
	_, err := o.ChangeStatus(target, "maria", baseTime)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.UpdateStatus(context.Background(), o, expected))
}

func (suite *OrderRepositoryIntegrationTestSuite) reload(id int64) *order.Order {
	o, err := suite.repository.Get(context.Background(), id)
	suite.Require().NoError(err)
	return o
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("needs a PostgreSQL container")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
