package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelerp/internal/model"
)

// RoomRepository defines room and allocation persistence operations.
type RoomRepository interface {
	Create(ctx context.Context, room *model.Room) error
	FindByNumber(ctx context.Context, roomNumber string) (*model.Room, error)
	List(ctx context.Context) ([]model.Room, error)
	CountAllocations(ctx context.Context, roomID uuid.UUID) (int64, error)
	FindAllocationByUsername(ctx context.Context, username string) (*model.RoomAllocation, error)
	CreateAllocation(ctx context.Context, alloc *model.RoomAllocation) error
	// WithTransaction runs fn against a repository bound to one transaction.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo RoomRepository) error) error
}

type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates a new room repository.
func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

// Create creates a new room.
func (r *roomRepository) Create(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

// FindByNumber finds a room by its number, with current allocations.
func (r *roomRepository) FindByNumber(ctx context.Context, roomNumber string) (*model.Room, error) {
	var room model.Room
	if err := r.db.WithContext(ctx).Preload("Allocations").
		Where("room_number = ?", roomNumber).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// List lists all rooms with their allocations.
func (r *roomRepository) List(ctx context.Context) ([]model.Room, error) {
	var rooms []model.Room
	if err := r.db.WithContext(ctx).Preload("Allocations").
		Order("room_number").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// CountAllocations counts current occupants of a room.
func (r *roomRepository) CountAllocations(ctx context.Context, roomID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.RoomAllocation{}).
		Where("room_id = ?", roomID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindAllocationByUsername finds the allocation held by a student, if any.
func (r *roomRepository) FindAllocationByUsername(ctx context.Context, username string) (*model.RoomAllocation, error) {
	var alloc model.RoomAllocation
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&alloc).Error; err != nil {
		return nil, err
	}
	return &alloc, nil
}

// CreateAllocation creates a new room allocation.
func (r *roomRepository) CreateAllocation(ctx context.Context, alloc *model.RoomAllocation) error {
	return r.db.WithContext(ctx).Create(alloc).Error
}

// WithTransaction executes a function within a database transaction.
func (r *roomRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo RoomRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &roomRepository{db: tx})
	})
}
