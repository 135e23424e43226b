package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"hostelerp/internal/auth"
	"hostelerp/internal/config"
	"hostelerp/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	roomHandler *handler.RoomHandler,
	maintenanceHandler *handler.MaintenanceHandler,
	messHandler *handler.MessHandler,
	hostelAttendanceHandler *handler.HostelAttendanceHandler,
	feeHandler *handler.FeeHandler,
	gatePassHandler *handler.GatePassHandler,
	documentHandler *handler.DocumentHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes: login and the mess menu board
	api.POST("/auth/login", authHandler.Login)
	api.GET("/mess/menu", messHandler.ListMenus)
	api.GET("/mess/menu/today", messHandler.TodayMenu)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	secured.GET("/me", authHandler.Me)

	// Room routes
	secured.POST("/rooms", roomHandler.CreateRoom)
	secured.GET("/rooms", roomHandler.ListRooms)
	secured.POST("/rooms/allocate", roomHandler.Allocate)

	// Maintenance routes
	secured.POST("/maintenance", maintenanceHandler.CreateTicket)
	secured.GET("/maintenance", maintenanceHandler.ListTickets)
	secured.GET("/maintenance/my", maintenanceHandler.ListMyTickets)
	secured.PATCH("/maintenance/:id", maintenanceHandler.UpdateTicket)

	// Mess routes (menu reads are public, everything else is not)
	secured.POST("/mess/menu", messHandler.SetMenu)
	secured.POST("/mess/attendance", messHandler.MarkAttendance)
	secured.GET("/mess/attendance", messHandler.ListMyAttendance)
	secured.POST("/mess/stats", messHandler.SetStats)
	secured.GET("/mess/stats", messHandler.ListStats)

	// Hostel attendance routes
	secured.POST("/hostel-attendance/mark", hostelAttendanceHandler.Mark)
	secured.GET("/hostel-attendance/day", hostelAttendanceHandler.Day)
	secured.GET("/hostel-attendance/my", hostelAttendanceHandler.My)

	// Fee routes
	secured.POST("/fees/set-due", feeHandler.SetDue)
	secured.POST("/fees/pay", feeHandler.Pay)
	secured.GET("/fees/all", feeHandler.ListAll)
	secured.GET("/fees/my", feeHandler.MyFees)

	// Gate pass routes
	secured.POST("/gatepass", gatePassHandler.Create)
	secured.GET("/gatepass/my", gatePassHandler.My)
	secured.GET("/gatepass", gatePassHandler.ListAll)
	secured.POST("/gatepass/:id/decide", gatePassHandler.Decide)

	// Document routes
	secured.POST("/documents", documentHandler.Upload)
	secured.GET("/documents/my", documentHandler.My)
	secured.GET("/documents/by-user/:username", documentHandler.ByUser)
	secured.POST("/documents/:id/verify", documentHandler.Verify)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
