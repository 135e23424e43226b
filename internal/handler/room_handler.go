package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hostelerp/internal/auth"
	"hostelerp/internal/errors"
	"hostelerp/internal/model"
	"hostelerp/internal/service"
)

// RoomHandler handles room endpoints.
type RoomHandler struct {
	roomService service.RoomService
	guard       *auth.Guard
}

// NewRoomHandler creates a new room handler.
func NewRoomHandler(roomService service.RoomService, guard *auth.Guard) *RoomHandler {
	return &RoomHandler{roomService: roomService, guard: guard}
}

// CreateRoomRequest represents a room creation request.
type CreateRoomRequest struct {
	RoomNumber string `json:"room_number" validate:"required"`
	Block      string `json:"block" validate:"required"`
	Capacity   int    `json:"capacity" validate:"required,min=1"`
	RoomType   string `json:"room_type"`
}

// AllocateRequest represents a room allocation request.
type AllocateRequest struct {
	Username   string `json:"username" validate:"required"`
	RoomNumber string `json:"room_number" validate:"required"`
}

// RoomResponse represents a room with computed occupancy.
type RoomResponse struct {
	ID         string   `json:"id"`
	RoomNumber string   `json:"room_number"`
	Block      string   `json:"block"`
	Capacity   int      `json:"capacity"`
	RoomType   string   `json:"room_type"`
	Occupants  []string `json:"occupants"`
	VacantBeds int      `json:"vacant_beds"`
	Status     string   `json:"status"`
}

func toRoomResponse(r *model.Room) RoomResponse {
	status := "vacant"
	if r.VacantBeds() == 0 {
		status = "full"
	}
	return RoomResponse{
		ID:         r.ID.String(),
		RoomNumber: r.RoomNumber,
		Block:      r.Block,
		Capacity:   r.Capacity,
		RoomType:   r.RoomType,
		Occupants:  r.Occupants(),
		VacantBeds: r.VacantBeds(),
		Status:     status,
	}
}

// CreateRoom godoc
// @Summary Create a room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRoomRequest true "Room data"
// @Success 201 {object} RoomResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /rooms [post]
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	user, err := h.guard.CurrentUser(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req CreateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.roomService.CreateRoom(c.Request().Context(), user, service.CreateRoomInput{
		RoomNumber: req.RoomNumber,
		Block:      req.Block,
		Capacity:   req.Capacity,
		RoomType:   req.RoomType,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, toRoomResponse(room))
}

// ListRooms godoc
// @Summary List rooms with occupancy
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {array} RoomResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c echo.Context) error {
	user, err := h.guard.CurrentUser(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	rooms, err := h.roomService.ListRooms(c.Request().Context(), user)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	out := make([]RoomResponse, 0, len(rooms))
	for i := range rooms {
		out = append(out, toRoomResponse(&rooms[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Allocate godoc
// @Summary Allocate a student to a room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AllocateRequest true "Allocation data"
// @Success 200 {object} RoomResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /rooms/allocate [post]
func (h *RoomHandler) Allocate(c echo.Context) error {
	user, err := h.guard.CurrentUser(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req AllocateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.roomService.Allocate(c.Request().Context(), user, req.Username, req.RoomNumber)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, toRoomResponse(room))
}
