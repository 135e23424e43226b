package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"hostelerp/internal/auth"
	"hostelerp/internal/errors"
	"hostelerp/internal/service"
)

// FeeHandler handles fee endpoints.
type FeeHandler struct {
	feeService service.FeeService
	guard      *auth.Guard
}

// NewFeeHandler creates a new fee handler.
func NewFeeHandler(feeService service.FeeService, guard *auth.Guard) *FeeHandler {
	return &FeeHandler{feeService: feeService, guard: guard}
}

// SetDueRequest represents an admin due write.
type SetDueRequest struct {
	Username string `json:"username" validate:"required"`
	Amount   string `json:"amount" validate:"required"`
}

// PayRequest represents an admin payment record.
type PayRequest struct {
	Username string `json:"username" validate:"required"`
	Amount   string `json:"amount" validate:"required"`
}

// SetDue godoc
// @Summary Set the fee due for a student
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SetDueRequest true "Due data"
// @Success 200 {object} model.FeeRecord
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /fees/set-due [post]
func (h *FeeHandler) SetDue(c echo.Context) error {
	user, err := h.guard.CurrentUser(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req SetDueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid amount",
			Code:  "INVALID_AMOUNT",
		})
	}

	record, err := h.feeService.SetDue(c.Request().Context(), user, req.Username, amount)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, record)
}

// Pay godoc
// @Summary Record a fee payment for a student
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PayRequest true "Payment data"
// @Success 200 {object} model.FeeRecord
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /fees/pay [post]
func (h *FeeHandler) Pay(c echo.Context) error {
	user, err := h.guard.CurrentUser(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req PayRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid amount",
			Code:  "INVALID_AMOUNT",
		})
	}

	record, err := h.feeService.Pay(c.Request().Context(), user, req.Username, amount)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, record)
}

// ListAll godoc
// @Summary List all fee records
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.FeeRecord
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /fees/all [get]
func (h *FeeHandler) ListAll(c echo.Context) error {
	user, err := h.guard.CurrentUser(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	records, err := h.feeService.ListAll(c.Request().Context(), user)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, records)
}

// MyFees godoc
// @Summary Read the caller's fee record
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.FeeRecord
// @Failure 401 {object} errors.ErrorResponse
// @Router /fees/my [get]
func (h *FeeHandler) MyFees(c echo.Context) error {
	user, err := h.guard.CurrentUser(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	record, err := h.feeService.MyFees(c.Request().Context(), user)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, record)
}
