// Package http exposes the fulfillment operations over a JSON API.
// It coordinates between HTTP handlers and application use cases; all
// business rules live in the core, this layer only translates.
package http

import (
	"errors"
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// actorHeader carries the identity performing the mutation. Mutating
// requests without it are rejected.
const actorHeader = "X-Actor"

// Server handles HTTP requests for the fulfillment API.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	updateOrderHandler     commands.UpdateOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	startProductionHandler commands.StartProductionCommandHandler
	recordShipmentHandler  commands.RecordShipmentCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	startProductionHandler commands.StartProductionCommandHandler,
	recordShipmentHandler commands.RecordShipmentCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		updateOrderHandler:     updateOrderHandler,
		cancelOrderHandler:     cancelOrderHandler,
		startProductionHandler: startProductionHandler,
		recordShipmentHandler:  recordShipmentHandler,
		getOrderHandler:        getOrderHandler,
		getActiveOrdersHandler: getActiveOrdersHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/:orderID", s.GetOrder)
	api.PATCH("/orders/:orderID", s.UpdateOrder)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)
	api.POST("/orders/:orderID/line-items/:lineItemID/production", s.StartProduction)
	api.POST("/orders/:orderID/line-items/:lineItemID/shipments", s.RecordShipment)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actor := ctx.Request().Header.Get(actorHeader)

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer ID")
	}

	items := make([]commands.LineItemInput, 0, len(req.LineItems))
	for _, itemReq := range req.LineItems {
		item, itemErr := itemReq.toInput()
		if itemErr != nil {
			return badRequest(ctx, "Invalid line item: "+itemErr.Error())
		}
		items = append(items, item)
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return badRequest(ctx, "Invalid due date")
	}
	quotedShipDate, err := parseDate(req.QuotedShipDate)
	if err != nil {
		return badRequest(ctx, "Invalid quoted ship date")
	}

	cmd, err := commands.NewCreateOrderCommand(
		customerID, req.PONumber, dueDate, quotedShipDate, req.Notes, items, actor)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromDomain(created))
}

// UpdateOrder handles PATCH /api/v1/orders/:orderID. Only the fields present
// in the body change.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return badRequest(ctx, "Invalid due date")
	}
	quotedShipDate, err := parseDate(req.QuotedShipDate)
	if err != nil {
		return badRequest(ctx, "Invalid quoted ship date")
	}

	cmd, err := commands.NewUpdateOrderCommand(
		orderID, req.PONumber, dueDate, quotedShipDate, req.Notes,
		ctx.Request().Header.Get(actorHeader))
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, ctx.Request().Header.Get(actorHeader))
	if err != nil {
		return badRequest(ctx, "Invalid cancel request: "+err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartProduction handles
// POST /api/v1/orders/:orderID/line-items/:lineItemID/production.
func (s *Server) StartProduction(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}
	lineItemID, err := kernel.UUIDFromString(ctx.Param("lineItemID"))
	if err != nil {
		return badRequest(ctx, "Invalid line item ID")
	}

	cmd, err := commands.NewStartProductionCommand(
		orderID, lineItemID, ctx.Request().Header.Get(actorHeader))
	if err != nil {
		return badRequest(ctx, "Invalid production request: "+err.Error())
	}

	item, err := s.startProductionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, lineItemFromDomain(item))
}

// RecordShipment handles
// POST /api/v1/orders/:orderID/line-items/:lineItemID/shipments.
func (s *Server) RecordShipment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}
	lineItemID, err := kernel.UUIDFromString(ctx.Param("lineItemID"))
	if err != nil {
		return badRequest(ctx, "Invalid line item ID")
	}

	var req RecordShipmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	quantity, err := kernel.QuantityFromString(req.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid quantity")
	}
	shipDate, err := parseDate(req.ShipDate)
	if err != nil {
		return badRequest(ctx, "Invalid ship date")
	}

	cmd, err := commands.NewRecordShipmentCommand(
		orderID, lineItemID, quantity, shipDate,
		req.TrackingNumber, req.Notes, ctx.Request().Header.Get(actorHeader))
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	result, err := s.recordShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, shipmentResultFromDomain(result))
}

// GetOrder handles GET /api/v1/orders/:orderID.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderDetailFromQuery(resp))
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]ActiveOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = ActiveOrderResponse{
			ID:             o.ID.String(),
			CustomerID:     o.CustomerID.String(),
			PONumber:       o.PONumber,
			DueDate:        formatDate(o.DueDate),
			QuotedShipDate: formatDate(o.QuotedShipDate),
			Status:         o.Status,
			LineItemCount:  o.LineItemCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps core errors to HTTP statuses: not found 404, conflict
// 409, over-shipment 422, validation 400, everything else 500.
func errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrOverShipment):
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func parseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func formatDate(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := value.Format(dateLayout)
	return &formatted
}
