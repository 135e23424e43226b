package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hostelerp/internal/auth"
	"hostelerp/internal/errors"
	"hostelerp/internal/service"
)

// HostelAttendanceHandler handles hostel attendance endpoints.
type HostelAttendanceHandler struct {
	attendanceService service.HostelAttendanceService
	guard             *auth.Guard
}

// NewHostelAttendanceHandler creates a new hostel attendance handler.
func NewHostelAttendanceHandler(attendanceService service.HostelAttendanceService, guard *auth.Guard) *HostelAttendanceHandler {
	return &HostelAttendanceHandler{attendanceService: attendanceService, guard: guard}
}

// MarkAttendanceRequest represents a presence toggle for one student.
type MarkAttendanceRequest struct {
	Day      string `json:"day" validate:"required,datetime=2006-01-02"`
	Username string `json:"username" validate:"required"`
	Present  *bool  `json:"present" validate:"required"`
}

// Mark godoc
// @Summary Toggle a student's presence for a day
// @Tags hostel-attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MarkAttendanceRequest true "Presence toggle"
// @Success 200 {object} model.HostelAttendance
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /hostel-attendance/mark [post]
func (h *HostelAttendanceHandler) Mark(c echo.Context) error {
	user, err := h.guard.CurrentUser(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req MarkAttendanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	day, _ := parseDay(req.Day)

	rec, err := h.attendanceService.Mark(c.Request().Context(), user, day, req.Username, *req.Present)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, rec)
}

// Day godoc
// @Summary Read the present-set for one day
// @Tags hostel-attendance
// @Produce json
// @Security BearerAuth
// @Param day query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} model.HostelAttendance
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /hostel-attendance/day [get]
func (h *HostelAttendanceHandler) Day(c echo.Context) error {
	user, err := h.guard.CurrentUser(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	day, err := parseDay(c.QueryParam("day"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid day",
			Code:  "INVALID_DAY",
		})
	}

	rec, err := h.attendanceService.DayAttendance(c.Request().Context(), user, day)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, rec)
}

// My godoc
// @Summary List the days the caller was present
// @Tags hostel-attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.HostelAttendance
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /hostel-attendance/my [get]
func (h *HostelAttendanceHandler) My(c echo.Context) error {
	user, err := h.guard.CurrentUser(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	rows, err := h.attendanceService.MyAttendance(c.Request().Context(), user)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, rows)
}
