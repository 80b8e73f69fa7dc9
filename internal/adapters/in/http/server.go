package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"retail/internal/core/application/usecases/commands"
	"retail/internal/core/application/usecases/queries"
	"retail/internal/core/domain/model/customer"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/order"
	"retail/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

type (
	orderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	statusChanger interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (*order.Order, error)
	}
	orderVoider interface {
		Handle(ctx context.Context, cmd commands.VoidOrderCommand) (*order.Order, error)
	}
	customerCreator interface {
		Handle(ctx context.Context, cmd commands.CreateCustomerCommand) (*customer.Customer, error)
	}
	orderLister interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderResponse, error)
	}
	orderGetter interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderDetailsResponse, error)
	}
	orderTracker interface {
		Handle(ctx context.Context, query queries.TrackOrderQuery) (queries.OrderDetailsResponse, error)
	}
	statsReader interface {
		Handle(ctx context.Context, query queries.GetOrderStatsQuery) (queries.GetOrderStatsQueryResponse, error)
	}
)

// Handlers groups the use cases the HTTP API exposes.
type Handlers struct {
	CreateOrder    orderCreator
	ChangeStatus   statusChanger
	VoidOrder      orderVoider
	CreateCustomer customerCreator
	ListOrders     orderLister
	GetOrder       orderGetter
	TrackOrder     orderTracker
	OrderStats     statsReader
}

// Server translates HTTP requests into commands and queries. Handlers return
// errors and leave the status code to the error handler.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// ListOrders handles GET /api/v1/orders - admin listing with optional filters.
func (s *Server) ListOrders(c echo.Context) error {
	filter, err := bindFilter(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListOrdersQuery(filter)
	if err != nil {
		return err
	}

	orders, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Order, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrder(o))
	}
	return c.JSON(http.StatusOK, response)
}

// GetOrderStats handles GET /api/v1/orders/stats.
func (s *Server) GetOrderStats(c echo.Context) error {
	filter, err := bindFilter(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderStatsQuery(filter)
	if err != nil {
		return err
	}

	stats, err := s.handlers.OrderStats.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderStats(stats))
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := bindOrderID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}

	details, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderDetails(details))
}

// TrackOrder handles GET /api/v1/orders/track - public storefront lookup.
func (s *Server) TrackOrder(c echo.Context) error {
	var key string
	if err := runtime.BindQueryParameter("form", true, true, "key", c.QueryParams(), &key); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter key: %s", err))
	}

	query, err := queries.NewTrackOrderQuery(key)
	if err != nil {
		return err
	}

	details, err := s.handlers.TrackOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderDetails(details))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var body NewOrder
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	channel, err := order.ParseChannel(body.Channel)
	if err != nil {
		return err
	}

	items, err := toLineItems(body.LineItems)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(channel, body.CustomerRef, items, body.ExternalPaymentRef)
	if err != nil {
		return err
	}

	created, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toOrderFromAggregate(created))
}

// ChangeOrderStatus handles PUT /api/v1/orders/{id}/status.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	id, err := bindOrderID(c)
	if err != nil {
		return err
	}

	var body StatusChangeRequest
	if err = c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	target, err := order.ParseStatus(body.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, target, actorFrom(c))
	if err != nil {
		return err
	}

	updated, err := s.handlers.ChangeStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderFromAggregate(updated))
}

// VoidOrder handles POST /api/v1/orders/{id}/void.
func (s *Server) VoidOrder(c echo.Context) error {
	id, err := bindOrderID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewVoidOrderCommand(id, actorFrom(c))
	if err != nil {
		return err
	}

	updated, err := s.handlers.VoidOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderFromAggregate(updated))
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(c echo.Context) error {
	var body NewCustomer
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateCustomerCommand(body.Name, body.Email, body.Phone)
	if err != nil {
		return err
	}

	created, err := s.handlers.CreateCustomer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toCustomer(created))
}

func bindOrderID(c echo.Context) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

// bindFilter reads the channel, status and customer_ref query parameters.
func bindFilter(c echo.Context) (ports.OrderFilter, error) {
	var (
		filter      ports.OrderFilter
		channel     *string
		status      *string
		customerRef *int64
	)

	if err := runtime.BindQueryParameter("form", true, false, "channel", c.QueryParams(), &channel); err != nil {
		return filter, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter channel: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "status", c.QueryParams(), &status); err != nil {
		return filter, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "customer_ref", c.QueryParams(), &customerRef); err != nil {
		return filter, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter customer_ref: %s", err))
	}

	if channel != nil {
		parsed, err := order.ParseChannel(*channel)
		if err != nil {
			return filter, err
		}
		filter.Channel = &parsed
	}
	if status != nil {
		parsed, err := order.ParseStatus(*status)
		if err != nil {
			return filter, err
		}
		filter.Status = &parsed
	}
	filter.CustomerRef = customerRef

	return filter, nil
}

func toLineItems(body []NewLineItem) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(body))
	var errList []error
	for i, item := range body {
		price, err := kernel.NewMoney(item.UnitPrice)
		if err != nil {
			errList = append(errList, fmt.Errorf("line item %d: %w", i, err))
			continue
		}

		li, err := order.NewLineItem(item.ProductRef, item.Quantity, price)
		if err != nil {
			errList = append(errList, fmt.Errorf("line item %d: %w", i, err))
			continue
		}
		items = append(items, li)
	}

	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return items, nil
}
