package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hostelerp/internal/auth"
	"hostelerp/internal/errors"
	"hostelerp/internal/model"
	"hostelerp/internal/service"
)

// MaintenanceHandler handles maintenance ticket endpoints.
type MaintenanceHandler struct {
	ticketService service.TicketService
	guard         *auth.Guard
}

// NewMaintenanceHandler creates a new maintenance handler.
func NewMaintenanceHandler(ticketService service.TicketService, guard *auth.Guard) *MaintenanceHandler {
	return &MaintenanceHandler{ticketService: ticketService, guard: guard}
}

// CreateTicketRequest represents a new ticket request.
type CreateTicketRequest struct {
	RoomNumber  string `json:"room_number" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// UpdateTicketRequest represents a partial ticket update.
type UpdateTicketRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// CreateTicket godoc
// @Summary Open a maintenance ticket
// @Tags maintenance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTicketRequest true "Ticket data"
// @Success 201 {object} model.MaintenanceTicket
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /maintenance [post]
func (h *MaintenanceHandler) CreateTicket(c echo.Context) error {
	user, err := h.guard.CurrentUser(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req CreateTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ticket, err := h.ticketService.CreateTicket(c.Request().Context(), user, service.CreateTicketInput{
		RoomNumber:  req.RoomNumber,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, ticket)
}

// ListTickets godoc
// @Summary List tickets (all for admin, own for students)
// @Tags maintenance
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.MaintenanceTicket
// @Failure 401 {object} errors.ErrorResponse
// @Router /maintenance [get]
func (h *MaintenanceHandler) ListTickets(c echo.Context) error {
	user, err := h.guard.CurrentUser(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	tickets, err := h.ticketService.ListTickets(c.Request().Context(), user)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, tickets)
}

// ListMyTickets godoc
// @Summary List the caller's own tickets
// @Tags maintenance
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.MaintenanceTicket
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /maintenance/my [get]
func (h *MaintenanceHandler) ListMyTickets(c echo.Context) error {
	user, err := h.guard.CurrentUser(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	tickets, err := h.ticketService.ListMyTickets(c.Request().Context(), user)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, tickets)
}

// UpdateTicket godoc
// @Summary Update a ticket's fields or status
// @Tags maintenance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Param request body UpdateTicketRequest true "Fields to update"
// @Success 200 {object} model.MaintenanceTicket
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /maintenance/{id} [patch]
func (h *MaintenanceHandler) UpdateTicket(c echo.Context) error {
	user, err := h.guard.CurrentUser(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid ticket ID",
			Code:  "INVALID_UUID",
		})
	}

	var req UpdateTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	in := service.UpdateTicketInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := model.TicketStatus(*req.Status)
		in.Status = &status
	}

	ticket, err := h.ticketService.UpdateTicket(c.Request().Context(), user, id, in)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, ticket)
}
