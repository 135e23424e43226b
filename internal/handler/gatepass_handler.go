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

// GatePassHandler handles gate pass endpoints.
type GatePassHandler struct {
	gatePassService service.GatePassService
	guard           *auth.Guard
}

// NewGatePassHandler creates a new gate pass handler.
func NewGatePassHandler(gatePassService service.GatePassService, guard *auth.Guard) *GatePassHandler {
	return &GatePassHandler{gatePassService: gatePassService, guard: guard}
}

// CreateGatePassRequest represents a new gate pass request.
type CreateGatePassRequest struct {
	FromDate string `json:"from_date" validate:"required,datetime=2006-01-02"`
	ToDate   string `json:"to_date" validate:"required,datetime=2006-01-02"`
	Reason   string `json:"reason" validate:"required"`
}

// DecisionRequest represents an admin decision on a gate pass.
type DecisionRequest struct {
	Status string `json:"status" validate:"required"`
}

// Create godoc
// @Summary Request a gate pass
// @Tags gatepass
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateGatePassRequest true "Gate pass data"
// @Success 201 {object} model.GatePass
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /gatepass [post]
func (h *GatePassHandler) Create(c echo.Context) error {
	user, err := h.guard.CurrentUser(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req CreateGatePassRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	fromDate, _ := parseDay(req.FromDate)
	toDate, _ := parseDay(req.ToDate)

	pass, err := h.gatePassService.Create(c.Request().Context(), user, service.CreateGatePassInput{
		FromDate: fromDate,
		ToDate:   toDate,
		Reason:   req.Reason,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, pass)
}

// My godoc
// @Summary List the caller's gate passes
// @Tags gatepass
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.GatePass
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /gatepass/my [get]
func (h *GatePassHandler) My(c echo.Context) error {
	user, err := h.guard.CurrentUser(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	passes, err := h.gatePassService.MyGatePasses(c.Request().Context(), user)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, passes)
}

// ListAll godoc
// @Summary List all gate passes
// @Tags gatepass
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.GatePass
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /gatepass [get]
func (h *GatePassHandler) ListAll(c echo.Context) error {
	user, err := h.guard.CurrentUser(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	passes, err := h.gatePassService.ListAll(c.Request().Context(), user)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, passes)
}

// Decide godoc
// @Summary Approve or reject a gate pass
// @Tags gatepass
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gate pass ID"
// @Param request body DecisionRequest true "Decision"
// @Success 200 {object} model.GatePass
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /gatepass/{id}/decide [post]
func (h *GatePassHandler) Decide(c echo.Context) error {
	user, err := h.guard.CurrentUser(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid gate pass ID",
			Code:  "INVALID_UUID",
		})
	}

	var req DecisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pass, err := h.gatePassService.Decide(c.Request().Context(), user, id, model.GatePassStatus(req.Status))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, pass)
}
