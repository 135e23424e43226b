package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"hostelerp/internal/errors"
	"hostelerp/internal/model"
)

// MockGatePassRepository is a mock implementation of GatePassRepository.
type MockGatePassRepository struct {
	mock.Mock
}

func (m *MockGatePassRepository) Create(ctx context.Context, pass *model.GatePass) error {
	args := m.Called(ctx, pass)
	return args.Error(0)
}

func (m *MockGatePassRepository) Update(ctx context.Context, pass *model.GatePass) error {
	args := m.Called(ctx, pass)
	return args.Error(0)
}

func (m *MockGatePassRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.GatePass, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GatePass), args.Error(1)
}

func (m *MockGatePassRepository) ListByStudent(ctx context.Context, username string) ([]model.GatePass, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GatePass), args.Error(1)
}

func (m *MockGatePassRepository) ListAll(ctx context.Context) ([]model.GatePass, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GatePass), args.Error(1)
}

func TestGatePassService_Create(t *testing.T) {
	from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC)

	t.Run("student requests pass", func(t *testing.T) {
		mockRepo := new(MockGatePassRepository)
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.GatePass) bool {
			return p.StudentUsername == "student1" && p.Status == model.GatePassStatusPending
		})).Return(nil)

		svc := NewGatePassService(mockRepo)
		pass, err := svc.Create(context.Background(), testStudent, CreateGatePassInput{
			FromDate: from,
			ToDate:   to,
			Reason:   "home visit",
		})
		assert.NoError(t, err)
		assert.Equal(t, model.GatePassStatusPending, pass.Status)
		assert.Nil(t, pass.DecidedAt)
		mockRepo.AssertExpectations(t)
	})

	t.Run("admin cannot request passes", func(t *testing.T) {
		svc := NewGatePassService(new(MockGatePassRepository))
		_, err := svc.Create(context.Background(), testAdmin, CreateGatePassInput{FromDate: from, ToDate: to})
		assert.Equal(t, errors.ErrForbidden, err)
	})
}

func TestGatePassService_Decide(t *testing.T) {
	passID := uuid.New()

	newPass := func() *model.GatePass {
		return &model.GatePass{
			ID:              passID,
			StudentUsername: "student1",
			Status:          model.GatePassStatusPending,
		}
	}

	tests := []struct {
		name          string
		actor         *model.User
		status        model.GatePassStatus
		setupMock     func(m *MockGatePassRepository)
		expectedError error
	}{
		{
			name:   "approve",
			actor:  testAdmin,
			status: model.GatePassStatusApproved,
			setupMock: func(m *MockGatePassRepository) {
				m.On("FindByID", mock.Anything, passID).Return(newPass(), nil)
				m.On("Update", mock.Anything, mock.MatchedBy(func(p *model.GatePass) bool {
					return p.Status == model.GatePassStatusApproved && p.DecidedAt != nil
				})).Return(nil)
			},
		},
		{
			name:   "reject",
			actor:  testAdmin,
			status: model.GatePassStatusRejected,
			setupMock: func(m *MockGatePassRepository) {
				m.On("FindByID", mock.Anything, passID).Return(newPass(), nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.GatePass")).Return(nil)
			},
		},
		{
			name:          "pending is not a decision",
			actor:         testAdmin,
			status:        model.GatePassStatusPending,
			setupMock:     func(m *MockGatePassRepository) {},
			expectedError: errors.ErrInvalidStatus,
		},
		{
			name:   "pass not found",
			actor:  testAdmin,
			status: model.GatePassStatusApproved,
			setupMock: func(m *MockGatePassRepository) {
				m.On("FindByID", mock.Anything, passID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrGatePassNotFound,
		},
		{
			name:          "student forbidden",
			actor:         testStudent,
			status:        model.GatePassStatusApproved,
			setupMock:     func(m *MockGatePassRepository) {},
			expectedError: errors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockGatePassRepository)
			tt.setupMock(mockRepo)

			svc := NewGatePassService(mockRepo)
			pass, err := svc.Decide(context.Background(), tt.actor, passID, tt.status)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, pass)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.status, pass.Status)
				assert.NotNil(t, pass.DecidedAt)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGatePassService_ListAll(t *testing.T) {
	t.Run("student forbidden", func(t *testing.T) {
		svc := NewGatePassService(new(MockGatePassRepository))
		_, err := svc.ListAll(context.Background(), testStudent)
		assert.Equal(t, errors.ErrForbidden, err)
	})
}
