package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"hostelerp/internal/errors"
	"hostelerp/internal/model"
	"hostelerp/internal/repository"
)

// MockRoomRepository is a mock implementation of RoomRepository.
type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, room *model.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) FindByNumber(ctx context.Context, roomNumber string) (*model.Room, error) {
	args := m.Called(ctx, roomNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Room), args.Error(1)
}

func (m *MockRoomRepository) List(ctx context.Context) ([]model.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Room), args.Error(1)
}

func (m *MockRoomRepository) CountAllocations(ctx context.Context, roomID uuid.UUID) (int64, error) {
	args := m.Called(ctx, roomID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRoomRepository) FindAllocationByUsername(ctx context.Context, username string) (*model.RoomAllocation, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RoomAllocation), args.Error(1)
}

func (m *MockRoomRepository) CreateAllocation(ctx context.Context, alloc *model.RoomAllocation) error {
	args := m.Called(ctx, alloc)
	return args.Error(0)
}

func (m *MockRoomRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.RoomRepository) error) error {
	args := m.Called(ctx)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx, m)
}

var (
	testAdmin   = &model.User{Username: "admin", Role: model.RoleAdmin}
	testStudent = &model.User{Username: "student1", Role: model.RoleStudent}
)

func TestRoomService_CreateRoom(t *testing.T) {
	tests := []struct {
		name          string
		actor         *model.User
		input         CreateRoomInput
		setupMock     func(m *MockRoomRepository)
		expectedError error
	}{
		{
			name:  "admin creates room",
			actor: testAdmin,
			input: CreateRoomInput{RoomNumber: "A-101", Block: "A", Capacity: 2},
			setupMock: func(m *MockRoomRepository) {
				m.On("FindByNumber", mock.Anything, "A-101").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Room")).Return(nil)
			},
		},
		{
			name:  "duplicate room number",
			actor: testAdmin,
			input: CreateRoomInput{RoomNumber: "A-101", Block: "A", Capacity: 2},
			setupMock: func(m *MockRoomRepository) {
				m.On("FindByNumber", mock.Anything, "A-101").Return(&model.Room{RoomNumber: "A-101"}, nil)
			},
			expectedError: errors.ErrRoomExists,
		},
		{
			name:          "student forbidden",
			actor:         testStudent,
			input:         CreateRoomInput{RoomNumber: "A-101", Block: "A", Capacity: 2},
			setupMock:     func(m *MockRoomRepository) {},
			expectedError: errors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRoomRepository)
			tt.setupMock(mockRepo)

			svc := NewRoomService(mockRepo, nil)
			room, err := svc.CreateRoom(context.Background(), tt.actor, tt.input)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, room)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.input.RoomNumber, room.RoomNumber)
				assert.Equal(t, "normal", room.RoomType)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestRoomService_Allocate(t *testing.T) {
	roomID := uuid.New()
	room := &model.Room{ID: roomID, RoomNumber: "A-101", Capacity: 2}

	tests := []struct {
		name          string
		actor         *model.User
		setupMock     func(m *MockRoomRepository)
		expectedError error
	}{
		{
			name:  "successful allocation",
			actor: testAdmin,
			setupMock: func(m *MockRoomRepository) {
				m.On("WithTransaction", mock.Anything).Return(nil)
				m.On("FindByNumber", mock.Anything, "A-101").Return(room, nil)
				m.On("FindAllocationByUsername", mock.Anything, "student1").Return(nil, gorm.ErrRecordNotFound)
				m.On("CountAllocations", mock.Anything, roomID).Return(int64(1), nil)
				m.On("CreateAllocation", mock.Anything, mock.MatchedBy(func(a *model.RoomAllocation) bool {
					return a.RoomID == roomID && a.Username == "student1"
				})).Return(nil)
			},
		},
		{
			name:  "room not found",
			actor: testAdmin,
			setupMock: func(m *MockRoomRepository) {
				m.On("WithTransaction", mock.Anything).Return(nil)
				m.On("FindByNumber", mock.Anything, "A-101").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrRoomNotFound,
		},
		{
			name:  "student already holds a bed",
			actor: testAdmin,
			setupMock: func(m *MockRoomRepository) {
				m.On("WithTransaction", mock.Anything).Return(nil)
				m.On("FindByNumber", mock.Anything, "A-101").Return(room, nil)
				m.On("FindAllocationByUsername", mock.Anything, "student1").
					Return(&model.RoomAllocation{Username: "student1"}, nil)
			},
			expectedError: errors.ErrAlreadyAllocated,
		},
		{
			name:  "room at capacity",
			actor: testAdmin,
			setupMock: func(m *MockRoomRepository) {
				m.On("WithTransaction", mock.Anything).Return(nil)
				m.On("FindByNumber", mock.Anything, "A-101").Return(room, nil)
				m.On("FindAllocationByUsername", mock.Anything, "student1").Return(nil, gorm.ErrRecordNotFound)
				m.On("CountAllocations", mock.Anything, roomID).Return(int64(2), nil)
			},
			expectedError: errors.ErrRoomAtCapacity,
		},
		{
			name:          "student forbidden",
			actor:         testStudent,
			setupMock:     func(m *MockRoomRepository) {},
			expectedError: errors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRoomRepository)
			tt.setupMock(mockRepo)

			svc := NewRoomService(mockRepo, nil)
			got, err := svc.Allocate(context.Background(), tt.actor, "student1", "A-101")

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "A-101", got.RoomNumber)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
