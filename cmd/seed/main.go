package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hostelerp/internal/config"
	"hostelerp/internal/db"
	"hostelerp/internal/model"
	"hostelerp/internal/repository"
)

// seedUser describes one account to provision.
type seedUser struct {
	Username string
	Password string
	FullName string
	Role     string
}

var seedUsers = []seedUser{
	{Username: "admin", Password: "admin123", FullName: "Hostel Admin", Role: model.RoleAdmin},
	{Username: "student1", Password: "stud123", FullName: "Student One", Role: model.RoleStudent},
	{Username: "student2", Password: "stud123", FullName: "Student Two", Role: model.RoleStudent},
}

var seedRooms = []model.Room{
	{RoomNumber: "A-101", Block: "A", Capacity: 2, RoomType: "normal"},
	{RoomNumber: "A-102", Block: "A", Capacity: 3, RoomType: "normal"},
	{RoomNumber: "B-201", Block: "B", Capacity: 1, RoomType: "deluxe"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.User{}, &model.Room{}, &model.RoomAllocation{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	roomRepo := repository.NewRoomRepository(gormDB)

	created, updated, err := upsertUsers(ctx, userRepo, seedUsers)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Printf("Users seeded: %d created, %d updated", created, updated)

	roomsCreated, err := createRooms(ctx, roomRepo, seedRooms)
	if err != nil {
		log.Fatalf("Failed to seed rooms: %v", err)
	}
	log.Printf("Rooms seeded: %d created", roomsCreated)

	log.Println("Seed completed successfully!")
}

// upsertUsers provisions accounts, resetting password and role on re-run.
func upsertUsers(ctx context.Context, repo repository.UserRepository, users []seedUser) (created int, updated int, err error) {
	for _, su := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return created, updated, fmt.Errorf("error hashing password for %s: %w", su.Username, err)
		}

		existing, err := repo.FindByUsername(ctx, su.Username)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, updated, fmt.Errorf("error checking user %s: %w", su.Username, err)
		}

		if existing != nil {
			existing.FullName = su.FullName
			existing.Role = su.Role
			existing.PasswordHash = string(hash)
			if err := repo.Update(ctx, existing); err != nil {
				return created, updated, fmt.Errorf("error updating user %s: %w", su.Username, err)
			}
			updated++
		} else {
			user := &model.User{
				Username:     su.Username,
				FullName:     su.FullName,
				Role:         su.Role,
				PasswordHash: string(hash),
			}
			if err := repo.Create(ctx, user); err != nil {
				return created, updated, fmt.Errorf("error creating user %s: %w", su.Username, err)
			}
			created++
		}
	}

	return created, updated, nil
}

// createRooms creates starter rooms, skipping numbers that already exist.
func createRooms(ctx context.Context, repo repository.RoomRepository, rooms []model.Room) (created int, err error) {
	for _, room := range rooms {
		existing, err := repo.FindByNumber(ctx, room.RoomNumber)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, fmt.Errorf("error checking room %s: %w", room.RoomNumber, err)
		}
		if existing != nil {
			continue
		}

		room := room
		if err := repo.Create(ctx, &room); err != nil {
			return created, fmt.Errorf("error creating room %s: %w", room.RoomNumber, err)
		}
		created++
	}

	return created, nil
}
