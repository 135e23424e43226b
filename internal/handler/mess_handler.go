package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"hostelerp/internal/auth"
	"hostelerp/internal/errors"
	"hostelerp/internal/service"
)

// MessHandler handles mess menu, attendance and stats endpoints.
type MessHandler struct {
	messService service.MessService
	guard       *auth.Guard
}

// NewMessHandler creates a new mess handler.
func NewMessHandler(messService service.MessService, guard *auth.Guard) *MessHandler {
	return &MessHandler{messService: messService, guard: guard}
}

// SetMenuRequest represents a menu write for one (day, meal).
type SetMenuRequest struct {
	Day   string   `json:"day" validate:"required,datetime=2006-01-02"`
	Meal  string   `json:"meal" validate:"required"`
	Items []string `json:"items" validate:"required"`
}

// AttendanceRequest represents a meal attendance toggle.
type AttendanceRequest struct {
	Day       string `json:"day" validate:"required,datetime=2006-01-02"`
	Meal      string `json:"meal" validate:"required"`
	Attending *bool  `json:"attending" validate:"required"`
}

// SetStatsRequest represents a stats write for one (day, meal).
type SetStatsRequest struct {
	Day            string `json:"day" validate:"required,datetime=2006-01-02"`
	Meal           string `json:"meal" validate:"required"`
	PlatesPrepared int    `json:"plates_prepared" validate:"min=0"`
	PlatesServed   int    `json:"plates_served" validate:"min=0"`
}

// SetMenu godoc
// @Summary Set the menu for a day and meal
// @Tags mess
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SetMenuRequest true "Menu data"
// @Success 200 {object} model.DailyMenu
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /mess/menu [post]
func (h *MessHandler) SetMenu(c echo.Context) error {
	user, err := h.guard.CurrentUser(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req SetMenuRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	day, _ := parseDay(req.Day)

	menu, err := h.messService.SetMenu(c.Request().Context(), user, service.SetMenuInput{
		Day:   day,
		Meal:  req.Meal,
		Items: req.Items,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, menu)
}

// ListMenus godoc
// @Summary List menus, optionally for one day
// @Tags mess
// @Produce json
// @Param day query string false "Day (YYYY-MM-DD)"
// @Success 200 {array} model.DailyMenu
// @Failure 400 {object} errors.ErrorResponse
// @Router /mess/menu [get]
func (h *MessHandler) ListMenus(c echo.Context) error {
	day, err := optionalDay(c.QueryParam("day"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid day",
			Code:  "INVALID_DAY",
		})
	}

	menus, err := h.messService.ListMenus(c.Request().Context(), day)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, menus)
}

// TodayMenu godoc
// @Summary List today's menus
// @Tags mess
// @Produce json
// @Success 200 {array} model.DailyMenu
// @Router /mess/menu/today [get]
func (h *MessHandler) TodayMenu(c echo.Context) error {
	today, _ := parseDay(time.Now().UTC().Format(dayFormat))

	menus, err := h.messService.ListMenus(c.Request().Context(), &today)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, menus)
}

// MarkAttendance godoc
// @Summary Toggle the caller's attendance for a meal
// @Tags mess
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AttendanceRequest true "Attendance toggle"
// @Success 200 {object} model.MealAttendance
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /mess/attendance [post]
func (h *MessHandler) MarkAttendance(c echo.Context) error {
	user, err := h.guard.CurrentUser(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req AttendanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	day, _ := parseDay(req.Day)

	att, err := h.messService.MarkAttendance(c.Request().Context(), user, day, req.Meal, *req.Attending)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, att)
}

// ListMyAttendance godoc
// @Summary List meal attendance rows containing the caller
// @Tags mess
// @Produce json
// @Security BearerAuth
// @Param day query string false "Day (YYYY-MM-DD)"
// @Success 200 {array} model.MealAttendance
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /mess/attendance [get]
func (h *MessHandler) ListMyAttendance(c echo.Context) error {
	user, err := h.guard.CurrentUser(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	day, err := optionalDay(c.QueryParam("day"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid day",
			Code:  "INVALID_DAY",
		})
	}

	rows, err := h.messService.ListMyAttendance(c.Request().Context(), user, day)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, rows)
}

// SetStats godoc
// @Summary Set plate stats for a day and meal
// @Tags mess
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SetStatsRequest true "Stats data"
// @Success 200 {object} model.MealStats
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /mess/stats [post]
func (h *MessHandler) SetStats(c echo.Context) error {
	user, err := h.guard.CurrentUser(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req SetStatsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	day, _ := parseDay(req.Day)

	stats, err := h.messService.SetStats(c.Request().Context(), user, service.SetStatsInput{
		Day:            day,
		Meal:           req.Meal,
		PlatesPrepared: req.PlatesPrepared,
		PlatesServed:   req.PlatesServed,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, stats)
}

// ListStats godoc
// @Summary List plate stats, optionally for one day
// @Tags mess
// @Produce json
// @Security BearerAuth
// @Param day query string false "Day (YYYY-MM-DD)"
// @Success 200 {array} model.MealStats
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /mess/stats [get]
func (h *MessHandler) ListStats(c echo.Context) error {
	user, err := h.guard.CurrentUser(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	day, err := optionalDay(c.QueryParam("day"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid day",
			Code:  "INVALID_DAY",
		})
	}

	rows, err := h.messService.ListStats(c.Request().Context(), user, day)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, rows)
}
