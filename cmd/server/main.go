package main

import (
	"log"
	"net/http"
	"os"

	_ "hostelerp/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"hostelerp/internal/auth"
	"hostelerp/internal/cache"
	"hostelerp/internal/config"
	"hostelerp/internal/db"
	"hostelerp/internal/handler"
	"hostelerp/internal/model"
	"hostelerp/internal/repository"
	"hostelerp/internal/router"
	"hostelerp/internal/service"
)

// @title Hostel ERP API
// @version 1.0
// @description Hostel management backend with rooms, maintenance, mess, fees, gate passes, documents and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.FeePayment{},
			&model.FeeRecord{},
			&model.RoomAllocation{},
			&model.Room{},
			&model.MaintenanceTicket{},
			&model.DailyMenu{},
			&model.MealAttendance{},
			&model.MealStats{},
			&model.HostelAttendance{},
			&model.GatePass{},
			&model.Document{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Room{},
		&model.RoomAllocation{},
		&model.MaintenanceTicket{},
		&model.DailyMenu{},
		&model.MealAttendance{},
		&model.MealStats{},
		&model.HostelAttendance{},
		&model.FeeRecord{},
		&model.FeePayment{},
		&model.GatePass{},
		&model.Document{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	roomRepo := repository.NewRoomRepository(gormDB)
	ticketRepo := repository.NewTicketRepository(gormDB)
	messRepo := repository.NewMessRepository(gormDB)
	hostelAttendanceRepo := repository.NewHostelAttendanceRepository(gormDB)
	feeRepo := repository.NewFeeRepository(gormDB)
	gatePassRepo := repository.NewGatePassRepository(gormDB)
	documentRepo := repository.NewDocumentRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	guard := auth.NewGuard(userRepo)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	roomService := service.NewRoomService(roomRepo, cacheClient)
	ticketService := service.NewTicketService(ticketRepo)
	messService := service.NewMessService(messRepo, cacheClient)
	hostelAttendanceService := service.NewHostelAttendanceService(hostelAttendanceRepo)
	feeService := service.NewFeeService(feeRepo)
	gatePassService := service.NewGatePassService(gatePassRepo)
	documentService := service.NewDocumentService(documentRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, guard)
	roomHandler := handler.NewRoomHandler(roomService, guard)
	maintenanceHandler := handler.NewMaintenanceHandler(ticketService, guard)
	messHandler := handler.NewMessHandler(messService, guard)
	hostelAttendanceHandler := handler.NewHostelAttendanceHandler(hostelAttendanceService, guard)
	feeHandler := handler.NewFeeHandler(feeService, guard)
	gatePassHandler := handler.NewGatePassHandler(gatePassService, guard)
	documentHandler := handler.NewDocumentHandler(documentService, guard)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		roomHandler,
		maintenanceHandler,
		messHandler,
		hostelAttendanceHandler,
		feeHandler,
		gatePassHandler,
		documentHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: http://%s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
