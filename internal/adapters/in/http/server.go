// Package http is the inbound HTTP adapter. It translates the trusted
// actor headers plus request intent into command and query handler calls,
// and maps domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Actor headers. Authentication is an external collaborator's concern;
// the gateway trusts what the upstream proxy injected.
const (
	HeaderActorRole = "X-Actor-Role"
	HeaderActorID   = "X-Actor-Id"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler     commands.CreateOrderCommandHandler
	updateConfigHandler    commands.UpdateOrderConfigCommandHandler
	assignTailorHandler    commands.AssignTailorCommandHandler
	transitionHandler      commands.TransitionOrderCommandHandler
	overrideHandler        commands.OverrideOrderStatusCommandHandler
	createTailorHandler    commands.CreateTailorCommandHandler
	setTailorActiveHandler commands.SetTailorActiveCommandHandler

	getOrderHandler      queries.GetOrderQueryHandler
	listOrdersHandler    queries.ListOrdersQueryHandler
	getAllTailorsHandler queries.GetAllTailorsQueryHandler

	workflowMetrics *metrics.WorkflowMetrics
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateConfigHandler commands.UpdateOrderConfigCommandHandler,
	assignTailorHandler commands.AssignTailorCommandHandler,
	transitionHandler commands.TransitionOrderCommandHandler,
	overrideHandler commands.OverrideOrderStatusCommandHandler,
	createTailorHandler commands.CreateTailorCommandHandler,
	setTailorActiveHandler commands.SetTailorActiveCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getAllTailorsHandler queries.GetAllTailorsQueryHandler,
	workflowMetrics *metrics.WorkflowMetrics,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		updateConfigHandler:    updateConfigHandler,
		assignTailorHandler:    assignTailorHandler,
		transitionHandler:      transitionHandler,
		overrideHandler:        overrideHandler,
		createTailorHandler:    createTailorHandler,
		setTailorActiveHandler: setTailorActiveHandler,
		getOrderHandler:        getOrderHandler,
		listOrdersHandler:      listOrdersHandler,
		getAllTailorsHandler:   getAllTailorsHandler,
		workflowMetrics:        workflowMetrics,
	}
}

// RegisterRoutes mounts the API surface on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id/configuration", s.UpdateConfiguration)
	api.POST("/orders/:id/assignee", s.AssignTailor)
	api.POST("/orders/:id/status", s.ChangeStatus)
	api.POST("/orders/:id/status/override", s.OverrideStatus)

	api.GET("/tailors", s.ListTailors)
	api.POST("/tailors", s.CreateTailor)
	api.PUT("/tailors/:id/active", s.SetTailorActive)
}

// Health reports service liveness.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// actorFromRequest builds the acting principal from the trusted headers.
// An unknown or missing role is Forbidden before any state is touched.
func actorFromRequest(ctx echo.Context) (kernel.Actor, error) {
	role, err := kernel.RoleFromString(ctx.Request().Header.Get(HeaderActorRole))
	if err != nil {
		return kernel.Actor{}, order.ErrForbidden
	}

	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderActorID))
	if err != nil {
		return kernel.Actor{}, order.ErrForbidden
	}

	return kernel.NewActor(role, id)
}

// writeError maps domain errors onto HTTP statuses:
// invalid input 400, denied actors 403, unknown objects 404, states that
// reject the operation 409, unavailable tailors 422.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, order.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrOrderLocked),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrOrderNotAssignable):
		code = http.StatusConflict
	case errors.Is(err, commands.ErrTailorUnavailable):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, order.ErrInvalidConfiguration),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

// configFromRequest converts the configuration body into domain value objects.
func configFromRequest(req ConfigurationRequest) (order.GarmentConfig, error) {
	return order.NewGarmentConfig(
		order.ClothingType(req.ClothingType),
		order.Size(req.Size),
		req.Color,
		req.Quantity,
		req.Notes,
	)
}

// designFromRequest converts the design body into a design spec.
func designFromRequest(req DesignRequest) (order.DesignSpec, error) {
	var selected *order.SelectedDesign
	if req.Selected != nil {
		ref, err := kernel.UUIDFromString(req.Selected.Ref)
		if err != nil {
			return order.DesignSpec{}, order.ErrInvalidConfiguration
		}
		price, err := kernel.NewMoney(req.Selected.Price)
		if err != nil {
			return order.DesignSpec{}, err
		}
		selected = &order.SelectedDesign{
			Ref:            ref,
			Price:          price,
			IsCustomUpload: req.Selected.IsCustomUpload,
		}
	}

	placed := make([]order.PlacedDesign, 0, len(req.Placed))
	for _, p := range req.Placed {
		ref, err := kernel.UUIDFromString(p.Ref)
		if err != nil {
			return order.DesignSpec{}, order.ErrInvalidConfiguration
		}
		price, err := kernel.NewMoney(p.Price)
		if err != nil {
			return order.DesignSpec{}, err
		}
		placement, err := order.NewPlacedDesign(
			ref,
			order.Side(p.Side),
			order.Position{X: p.X, Y: p.Y},
			p.RenderSize,
			price,
			p.IsCustomUpload,
		)
		if err != nil {
			return order.DesignSpec{}, err
		}
		placed = append(placed, placement)
	}

	return order.NewDesignSpec(selected, placed)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	config, err := configFromRequest(req.Configuration)
	if err != nil {
		return writeError(ctx, err)
	}

	design, err := designFromRequest(req.Design)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), actor, config, design)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	s.workflowMetrics.OrdersCreated.WithLabelValues(string(config.ClothingType())).Inc()

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// UpdateConfiguration handles PUT /api/v1/orders/:id/configuration.
func (s *Server) UpdateConfiguration(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req UpdateConfigurationRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	config, err := configFromRequest(req.Configuration)
	if err != nil {
		return writeError(ctx, err)
	}

	design, err := designFromRequest(req.Design)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderConfigCommand(orderID, actor, config, design)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateConfigHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// AssignTailor handles POST /api/v1/orders/:id/assignee.
func (s *Server) AssignTailor(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req AssignTailorRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	tailorID, err := kernel.UUIDFromString(req.TailorID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("tailor_id", err))
	}

	cmd, err := commands.NewAssignTailorCommand(orderID, tailorID, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	assigned, err := s.assignTailorHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(assigned))
}

// ChangeStatus handles POST /api/v1/orders/:id/status.
func (s *Server) ChangeStatus(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	transitioned, err := s.transitionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	s.workflowMetrics.Transitions.WithLabelValues(target.String(), actor.Role().String()).Inc()

	return ctx.JSON(http.StatusOK, orderToResponse(transitioned))
}

// OverrideStatus handles POST /api/v1/orders/:id/status/override.
func (s *Server) OverrideStatus(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewOverrideOrderStatusCommand(orderID, target, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	overridden, err := s.overrideHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	s.workflowMetrics.Overrides.WithLabelValues(target.String()).Inc()

	return ctx.JSON(http.StatusOK, orderToResponse(overridden))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	query, err := queries.NewGetOrderQuery(orderID, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	projection, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, projectionToResponse(projection))
}

// ListOrders handles GET /api/v1/orders. The listing scope follows the
// actor's role; admins may narrow it with the status and tailor_id query
// parameters, tailors may opt cancelled orders back in.
func (s *Server) ListOrders(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := s.buildListQuery(ctx, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	items, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderListItemResponse, 0, len(items))
	for _, item := range items {
		var tailorID *string
		if item.TailorID != nil {
			id := item.TailorID.String()
			tailorID = &id
		}
		response = append(response, OrderListItemResponse{
			ID:           item.ID.String(),
			CustomerID:   item.CustomerID.String(),
			TailorID:     tailorID,
			Status:       item.Status.String(),
			ClothingType: item.ClothingType,
			Quantity:     item.Quantity,
			Price:        item.Price,
			UpdatedAt:    item.UpdatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) buildListQuery(ctx echo.Context, actor kernel.Actor) (queries.ListOrdersQuery, error) {
	switch actor.Role() {
	case kernel.RoleCustomer:
		return queries.NewCustomerOrdersQuery(actor)
	case kernel.RoleTailor:
		includeCancelled := ctx.QueryParam("include_cancelled") == "true"
		return queries.NewTailorQueueQuery(actor, includeCancelled)
	case kernel.RoleAdmin:
		var statusFilter *order.Status
		if raw := ctx.QueryParam("status"); raw != "" {
			status, err := order.StatusFromString(raw)
			if err != nil {
				return queries.ListOrdersQuery{}, err
			}
			statusFilter = &status
		}
		var tailorFilter *kernel.UUID
		if raw := ctx.QueryParam("tailor_id"); raw != "" {
			id, err := kernel.UUIDFromString(raw)
			if err != nil {
				return queries.ListOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("tailor_id", err)
			}
			tailorFilter = &id
		}
		return queries.NewAdminOrdersQuery(actor, statusFilter, tailorFilter)
	default:
		return queries.ListOrdersQuery{}, order.ErrForbidden
	}
}

// ListTailors handles GET /api/v1/tailors.
func (s *Server) ListTailors(ctx echo.Context) error {
	if _, err := actorFromRequest(ctx); err != nil {
		return writeError(ctx, err)
	}

	query := queries.NewGetAllTailorsQuery(ctx.QueryParam("active_only") == "true")

	tailors, err := s.getAllTailorsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]TailorResponse, 0, len(tailors))
	for _, t := range tailors {
		response = append(response, TailorResponse{
			ID:        t.ID.String(),
			Name:      t.Name,
			Phone:     t.Phone,
			Skills:    t.Skills,
			IsActive:  t.IsActive,
			Rating:    t.Rating,
			CreatedAt: t.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateTailor handles POST /api/v1/tailors.
func (s *Server) CreateTailor(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req CreateTailorRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewCreateTailorCommand(kernel.NewUUID(), req.Name, req.Phone, req.Skills, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createTailorHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, tailorToResponse(created))
}

// SetTailorActive handles PUT /api/v1/tailors/:id/active.
func (s *Server) SetTailorActive(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	tailorID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req SetTailorActiveRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewSetTailorActiveCommand(tailorID, req.IsActive, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.setTailorActiveHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tailorToResponse(updated))
}
