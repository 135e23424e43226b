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
)

// MockTicketRepository is a mock implementation of TicketRepository.
type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) Create(ctx context.Context, ticket *model.MaintenanceTicket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockTicketRepository) Update(ctx context.Context, ticket *model.MaintenanceTicket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockTicketRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.MaintenanceTicket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MaintenanceTicket), args.Error(1)
}

func (m *MockTicketRepository) ListAll(ctx context.Context) ([]model.MaintenanceTicket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MaintenanceTicket), args.Error(1)
}

func (m *MockTicketRepository) ListByAuthor(ctx context.Context, username string) ([]model.MaintenanceTicket, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MaintenanceTicket), args.Error(1)
}

func TestTicketService_CreateTicket(t *testing.T) {
	tests := []struct {
		name          string
		actor         *model.User
		setupMock     func(m *MockTicketRepository)
		expectedError error
	}{
		{
			name:  "student opens ticket",
			actor: testStudent,
			setupMock: func(m *MockTicketRepository) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(tk *model.MaintenanceTicket) bool {
					return tk.CreatedBy == "student1" && tk.Status == model.TicketStatusOpen
				})).Return(nil)
			},
		},
		{
			name:          "admin cannot open tickets",
			actor:         testAdmin,
			setupMock:     func(m *MockTicketRepository) {},
			expectedError: errors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTicketRepository)
			tt.setupMock(mockRepo)

			svc := NewTicketService(mockRepo)
			ticket, err := svc.CreateTicket(context.Background(), tt.actor, CreateTicketInput{
				RoomNumber:  "A-101",
				Title:       "Broken fan",
				Description: "Ceiling fan does not start",
			})

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, ticket)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.TicketStatusOpen, ticket.Status)
				assert.Equal(t, "student1", ticket.CreatedBy)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTicketService_ListTickets(t *testing.T) {
	all := []model.MaintenanceTicket{{Title: "a"}, {Title: "b"}}
	own := []model.MaintenanceTicket{{Title: "a", CreatedBy: "student1"}}

	t.Run("admin sees all tickets", func(t *testing.T) {
		mockRepo := new(MockTicketRepository)
		mockRepo.On("ListAll", mock.Anything).Return(all, nil)

		svc := NewTicketService(mockRepo)
		got, err := svc.ListTickets(context.Background(), testAdmin)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		mockRepo.AssertExpectations(t)
	})

	t.Run("student sees own tickets", func(t *testing.T) {
		mockRepo := new(MockTicketRepository)
		mockRepo.On("ListByAuthor", mock.Anything, "student1").Return(own, nil)

		svc := NewTicketService(mockRepo)
		got, err := svc.ListTickets(context.Background(), testStudent)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		mockRepo.AssertExpectations(t)
	})
}

func TestTicketService_UpdateTicket(t *testing.T) {
	ticketID := uuid.New()
	otherStudent := &model.User{Username: "student2", Role: model.RoleStudent}
	closed := model.TicketStatusClosed
	bogus := model.TicketStatus("fixed")

	newTicket := func() *model.MaintenanceTicket {
		return &model.MaintenanceTicket{
			ID:        ticketID,
			CreatedBy: "student1",
			Title:     "Broken fan",
			Status:    model.TicketStatusOpen,
		}
	}

	tests := []struct {
		name          string
		actor         *model.User
		input         UpdateTicketInput
		setupMock     func(m *MockTicketRepository)
		expectedError error
	}{
		{
			name:  "owner closes own ticket",
			actor: testStudent,
			input: UpdateTicketInput{Status: &closed},
			setupMock: func(m *MockTicketRepository) {
				m.On("FindByID", mock.Anything, ticketID).Return(newTicket(), nil)
				m.On("Update", mock.Anything, mock.MatchedBy(func(tk *model.MaintenanceTicket) bool {
					return tk.Status == model.TicketStatusClosed
				})).Return(nil)
			},
		},
		{
			name:  "admin updates any ticket",
			actor: testAdmin,
			input: UpdateTicketInput{Status: &closed},
			setupMock: func(m *MockTicketRepository) {
				m.On("FindByID", mock.Anything, ticketID).Return(newTicket(), nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.MaintenanceTicket")).Return(nil)
			},
		},
		{
			name:  "non-owner student forbidden",
			actor: otherStudent,
			input: UpdateTicketInput{Status: &closed},
			setupMock: func(m *MockTicketRepository) {
				m.On("FindByID", mock.Anything, ticketID).Return(newTicket(), nil)
			},
			expectedError: errors.ErrForbidden,
		},
		{
			name:  "unknown status rejected",
			actor: testStudent,
			input: UpdateTicketInput{Status: &bogus},
			setupMock: func(m *MockTicketRepository) {
				m.On("FindByID", mock.Anything, ticketID).Return(newTicket(), nil)
			},
			expectedError: errors.ErrInvalidStatus,
		},
		{
			name:  "ticket not found",
			actor: testStudent,
			input: UpdateTicketInput{Status: &closed},
			setupMock: func(m *MockTicketRepository) {
				m.On("FindByID", mock.Anything, ticketID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrTicketNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTicketRepository)
			tt.setupMock(mockRepo)

			svc := NewTicketService(mockRepo)
			ticket, err := svc.UpdateTicket(context.Background(), tt.actor, ticketID, tt.input)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, ticket)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.TicketStatusClosed, ticket.Status)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
