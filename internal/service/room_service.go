package service

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"hostelerp/internal/auth"
	"hostelerp/internal/cache"
	"hostelerp/internal/errors"
	"hostelerp/internal/model"
	"hostelerp/internal/repository"
)

const (
	roomListCacheKey = "rooms:list"
	roomListCacheTTL = 2 * time.Minute
)

// CreateRoomInput carries the fields for a new room.
type CreateRoomInput struct {
	RoomNumber string
	Block      string
	Capacity   int
	RoomType   string
}

// RoomService handles room and allocation operations.
type RoomService interface {
	CreateRoom(ctx context.Context, actor *model.User, in CreateRoomInput) (*model.Room, error)
	ListRooms(ctx context.Context, actor *model.User) ([]model.Room, error)
	Allocate(ctx context.Context, actor *model.User, username, roomNumber string) (*model.Room, error)
}

type roomService struct {
	rooms repository.RoomRepository
	cache *cache.Client
}

// NewRoomService creates a new room service.
func NewRoomService(rooms repository.RoomRepository, cache *cache.Client) RoomService {
	return &roomService{rooms: rooms, cache: cache}
}

// CreateRoom creates a room. Admin only; duplicate numbers are rejected.
func (s *roomService) CreateRoom(ctx context.Context, actor *model.User, in CreateRoomInput) (*model.Room, error) {
	if err := auth.RequireRole(actor, model.RoleAdmin); err != nil {
		return nil, err
	}

	existing, err := s.rooms.FindByNumber(ctx, in.RoomNumber)
	if err == nil && existing != nil {
		return nil, errors.ErrRoomExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}

	roomType := in.RoomType
	if roomType == "" {
		roomType = "normal"
	}
	room := &model.Room{
		RoomNumber: in.RoomNumber,
		Block:      in.Block,
		Capacity:   in.Capacity,
		RoomType:   roomType,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, roomListCacheKey)

	return room, nil
}

// ListRooms lists all rooms with occupancy. Any authenticated caller.
func (s *roomService) ListRooms(ctx context.Context, actor *model.User) ([]model.Room, error) {
	if data, _ := s.cache.Get(ctx, roomListCacheKey); data != nil {
		var cached []model.Room
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(rooms); err == nil {
		_ = s.cache.Set(ctx, roomListCacheKey, payload, roomListCacheTTL)
	}

	return rooms, nil
}

// Allocate assigns a student to a room. Admin only. Fails when the room is
// at capacity or the student already holds a bed anywhere. The occupancy
// check and the insert run in one transaction.
func (s *roomService) Allocate(ctx context.Context, actor *model.User, username, roomNumber string) (*model.Room, error) {
	if err := auth.RequireRole(actor, model.RoleAdmin); err != nil {
		return nil, err
	}

	var out *model.Room
	err := s.rooms.WithTransaction(ctx, func(ctx context.Context, repo repository.RoomRepository) error {
		room, err := repo.FindByNumber(ctx, roomNumber)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrRoomNotFound
			}
			return err
		}

		if _, err := repo.FindAllocationByUsername(ctx, username); err == nil {
			return errors.ErrAlreadyAllocated
		} else if err != gorm.ErrRecordNotFound {
			return err
		}

		occupied, err := repo.CountAllocations(ctx, room.ID)
		if err != nil {
			return err
		}
		if occupied >= int64(room.Capacity) {
			return errors.ErrRoomAtCapacity
		}

		if err := repo.CreateAllocation(ctx, &model.RoomAllocation{
			RoomID:   room.ID,
			Username: username,
		}); err != nil {
			return err
		}

		out, err = repo.FindByNumber(ctx, roomNumber)
		return err
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, roomListCacheKey)

	return out, nil
}
