// Package http exposes the order management REST surface. Handlers parse
// and validate payloads, dispatch to command/query handlers and render
// HAL-flavored representations whose action links follow the order
// lifecycle.
package http

import (
	"context"
	"net/http"
	"strconv"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Use case contracts consumed by the server. Declared here so handler
// tests can substitute mocks without a database.
type (
	// CreateOrderHandler persists a new order.
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}

	// UpdateOrderHandler replaces an existing order's mutable fields.
	UpdateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderCommand) (*order.Order, error)
	}

	// CancelOrderHandler transitions an order to CANCELED.
	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error)
	}

	// CompleteOrderHandler transitions an order to COMPLETED.
	CompleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CompleteOrderCommand) (*order.Order, error)
	}

	// DeleteOrderHandler removes an order with its address and lines.
	DeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}

	// GetOrderHandler loads a single order.
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (*order.Order, error)
	}

	// GetAllOrdersHandler loads the full order collection.
	GetAllOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetAllOrdersQuery) ([]*order.Order, error)
	}
)

// Server wires the REST routes to the application use cases.
type Server struct {
	baseURL   string
	validator *RequestValidator

	createHandler   CreateOrderHandler
	updateHandler   UpdateOrderHandler
	cancelHandler   CancelOrderHandler
	completeHandler CompleteOrderHandler
	deleteHandler   DeleteOrderHandler
	getHandler      GetOrderHandler
	getAllHandler   GetAllOrdersHandler
}

// NewServer creates the HTTP server facade. The base URL is used to build
// absolute hypermedia links and Location headers.
func NewServer(
	baseURL string,
	createHandler CreateOrderHandler,
	updateHandler UpdateOrderHandler,
	cancelHandler CancelOrderHandler,
	completeHandler CompleteOrderHandler,
	deleteHandler DeleteOrderHandler,
	getHandler GetOrderHandler,
	getAllHandler GetAllOrdersHandler,
) *Server {
	return &Server{
		baseURL:         baseURL,
		validator:       NewRequestValidator(),
		createHandler:   createHandler,
		updateHandler:   updateHandler,
		cancelHandler:   cancelHandler,
		completeHandler: completeHandler,
		deleteHandler:   deleteHandler,
		getHandler:      getHandler,
		getAllHandler:   getAllHandler,
	}
}

// RegisterRoutes attaches all order routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/orders", s.ListOrders)
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders/:id", s.ReadOrder)
	e.PUT("/orders/:id", s.UpdateOrder)
	e.DELETE("/orders/:id", s.DeleteOrder)
	e.PUT("/orders/:id/cancel", s.CancelOrder)
	e.PUT("/orders/:id/complete", s.CompleteOrder)
}

// Health reports service liveness.
//
//	@Summary	Service health
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Router		/health [get]
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "UP"})
}

// ListOrders handles GET /orders.
//
//	@Summary	Retrieves all orders
//	@Description	Orders with status PROCESSING carry cancel and complete links.
//	@Produce	json
//	@Success	200	{object}	OrdersResponse
//	@Router		/orders [get]
func (s *Server) ListOrders(c echo.Context) error {
	orders, err := s.getAllHandler.Handle(c.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, assembleOrders(orders, s.baseURL))
}

// CreateOrder handles POST /orders.
//
//	@Summary	Creates an order
//	@Description	All orders are created with status set to PROCESSING.
//	@Accept		json
//	@Produce	json
//	@Param		order	body	OrderRequest	true	"order payload"
//	@Success	201	{object}	OrderResponse
//	@Failure	400	{object}	map[string]string
//	@Router		/orders [post]
func (s *Server) CreateOrder(c echo.Context) error {
	var request OrderRequest
	if err := c.Bind(&request); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", "Invalid request body")
	}

	if report := s.validator.Validate(&request); report != nil {
		return c.JSON(http.StatusBadRequest, report)
	}

	address, lines, err := buildOwned(&request)
	if err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(
		request.FirstName, request.LastName, request.Email, request.Phone,
		address, lines, *request.Tax, *request.Shipping,
	)
	if err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", err.Error())
	}

	created, err := s.createHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, selfLink(s.baseURL, created.ID()))
	return c.JSON(http.StatusCreated, assembleOrder(created, s.baseURL))
}

// ReadOrder handles GET /orders/{id}.
//
//	@Summary	Retrieves the order with the id
//	@Produce	json
//	@Param		id	path	integer	true	"order id"
//	@Success	200	{object}	OrderResponse
//	@Failure	404	{object}	Problem
//	@Router		/orders/{id} [get]
func (s *Server) ReadOrder(c echo.Context) error {
	id, err := orderID(c)
	if err != nil {
		return notFoundProblem(c, c.Param("id"))
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return notFoundProblem(c, id)
	}

	found, err := s.getHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, assembleOrder(found, s.baseURL))
}

// UpdateOrder handles PUT /orders/{id}. Status, name, address and lines
// are replaced by the payload; contact details and charges are kept. The
// supplied status is trusted as-is, unlike creation which forces
// PROCESSING.
//
//	@Summary	Updates the order with the id
//	@Accept		json
//	@Produce	json
//	@Param		id	path	integer	true	"order id"
//	@Param		order	body	OrderRequest	true	"order payload"
//	@Success	201	{object}	OrderResponse
//	@Failure	400	{object}	map[string]string
//	@Failure	404	{object}	Problem
//	@Router		/orders/{id} [put]
func (s *Server) UpdateOrder(c echo.Context) error {
	id, err := orderID(c)
	if err != nil {
		return notFoundProblem(c, c.Param("id"))
	}

	var request OrderRequest
	if err = c.Bind(&request); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", "Invalid request body")
	}

	if report := s.validator.Validate(&request); report != nil {
		return c.JSON(http.StatusBadRequest, report)
	}

	address, lines, err := buildOwned(&request)
	if err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", err.Error())
	}

	status := order.Processing
	if request.Status != "" {
		if status, err = order.ParseStatus(request.Status); err != nil {
			return writeProblem(c, http.StatusBadRequest, "Bad Request", err.Error())
		}
	}

	cmd, err := commands.NewUpdateOrderCommand(id, status, request.FirstName, request.LastName, address, lines)
	if err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", err.Error())
	}

	updated, err := s.updateHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, selfLink(s.baseURL, updated.ID()))
	return c.JSON(http.StatusCreated, assembleOrder(updated, s.baseURL))
}

// DeleteOrder handles DELETE /orders/{id}.
//
//	@Summary	Removes the order with the id
//	@Param		id	path	integer	true	"order id"
//	@Success	204
//	@Failure	404	{object}	Problem
//	@Router		/orders/{id} [delete]
func (s *Server) DeleteOrder(c echo.Context) error {
	id, err := orderID(c)
	if err != nil {
		return notFoundProblem(c, c.Param("id"))
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return notFoundProblem(c, id)
	}

	if err = s.deleteHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeDomainError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CancelOrder handles PUT /orders/{id}/cancel.
//
//	@Summary	Changes the status of the order with the id from PROCESSING to CANCELED
//	@Description	If the status is not PROCESSING, this method is not allowed.
//	@Produce	json
//	@Param		id	path	integer	true	"order id"
//	@Success	200	{object}	OrderResponse
//	@Failure	404	{object}	Problem
//	@Failure	405	{object}	Problem
//	@Router		/orders/{id}/cancel [put]
func (s *Server) CancelOrder(c echo.Context) error {
	id, err := orderID(c)
	if err != nil {
		return notFoundProblem(c, c.Param("id"))
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return notFoundProblem(c, id)
	}

	canceled, err := s.cancelHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, assembleOrder(canceled, s.baseURL))
}

// CompleteOrder handles PUT /orders/{id}/complete.
//
//	@Summary	Changes the status of the order with the id from PROCESSING to COMPLETED
//	@Description	If the status is not PROCESSING, this method is not allowed.
//	@Produce	json
//	@Param		id	path	integer	true	"order id"
//	@Success	200	{object}	OrderResponse
//	@Failure	404	{object}	Problem
//	@Failure	405	{object}	Problem
//	@Router		/orders/{id}/complete [put]
func (s *Server) CompleteOrder(c echo.Context) error {
	id, err := orderID(c)
	if err != nil {
		return notFoundProblem(c, c.Param("id"))
	}

	cmd, err := commands.NewCompleteOrderCommand(id)
	if err != nil {
		return notFoundProblem(c, id)
	}

	completed, err := s.completeHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, assembleOrder(completed, s.baseURL))
}

// orderID parses the :id path parameter. Identifiers are integers; any
// other value is treated as an unknown order.
func orderID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// buildOwned converts the validated payload into the owned domain values.
func buildOwned(request *OrderRequest) (order.Address, []order.OrderLine, error) {
	address, err := order.NewAddress(
		request.Address.Address1, request.Address.Address2,
		request.Address.City, request.Address.State, request.Address.Zip,
	)
	if err != nil {
		return order.Address{}, nil, err
	}

	lines := make([]order.OrderLine, 0, len(request.OrderLines))
	for _, lineRequest := range request.OrderLines {
		line, lineErr := order.NewOrderLine(
			lineRequest.Brand, lineRequest.Model,
			*lineRequest.Cost, *lineRequest.Quantity,
		)
		if lineErr != nil {
			return order.Address{}, nil, lineErr
		}
		lines = append(lines, line)
	}

	return address, lines, nil
}
