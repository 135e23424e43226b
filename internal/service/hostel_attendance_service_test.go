package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"hostelerp/internal/errors"
	"hostelerp/internal/model"
)

// MockHostelAttendanceRepository is a mock implementation of HostelAttendanceRepository.
type MockHostelAttendanceRepository struct {
	mock.Mock
}

func (m *MockHostelAttendanceRepository) FindByDay(ctx context.Context, day time.Time) (*model.HostelAttendance, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HostelAttendance), args.Error(1)
}

func (m *MockHostelAttendanceRepository) Save(ctx context.Context, rec *model.HostelAttendance) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockHostelAttendanceRepository) ListAll(ctx context.Context) ([]model.HostelAttendance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.HostelAttendance), args.Error(1)
}

func TestHostelAttendanceService_Mark(t *testing.T) {
	t.Run("admin marks student present on new day", func(t *testing.T) {
		mockRepo := new(MockHostelAttendanceRepository)
		mockRepo.On("FindByDay", mock.Anything, testDay).Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.HostelAttendance")).Return(nil)

		svc := NewHostelAttendanceService(mockRepo)
		rec, err := svc.Mark(context.Background(), testAdmin, testDay, "student1", true)
		assert.NoError(t, err)
		assert.Equal(t, []string{"student1"}, rec.PresentUsernames.Sorted())
		mockRepo.AssertExpectations(t)
	})

	t.Run("marking present twice stays idempotent", func(t *testing.T) {
		existing := &model.HostelAttendance{Day: testDay, PresentUsernames: model.NewStringSet("student1")}
		mockRepo := new(MockHostelAttendanceRepository)
		mockRepo.On("FindByDay", mock.Anything, testDay).Return(existing, nil)
		mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.HostelAttendance")).Return(nil)

		svc := NewHostelAttendanceService(mockRepo)
		rec, err := svc.Mark(context.Background(), testAdmin, testDay, "student1", true)
		assert.NoError(t, err)
		assert.Equal(t, []string{"student1"}, rec.PresentUsernames.Sorted())
		mockRepo.AssertExpectations(t)
	})

	t.Run("marking absent removes from set", func(t *testing.T) {
		existing := &model.HostelAttendance{Day: testDay, PresentUsernames: model.NewStringSet("student1", "student2")}
		mockRepo := new(MockHostelAttendanceRepository)
		mockRepo.On("FindByDay", mock.Anything, testDay).Return(existing, nil)
		mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.HostelAttendance")).Return(nil)

		svc := NewHostelAttendanceService(mockRepo)
		rec, err := svc.Mark(context.Background(), testAdmin, testDay, "student1", false)
		assert.NoError(t, err)
		assert.Equal(t, []string{"student2"}, rec.PresentUsernames.Sorted())
		mockRepo.AssertExpectations(t)
	})

	t.Run("student forbidden", func(t *testing.T) {
		svc := NewHostelAttendanceService(new(MockHostelAttendanceRepository))
		_, err := svc.Mark(context.Background(), testStudent, testDay, "student1", true)
		assert.Equal(t, errors.ErrForbidden, err)
	})
}

func TestHostelAttendanceService_DayAttendance(t *testing.T) {
	t.Run("missing day reads as empty set", func(t *testing.T) {
		mockRepo := new(MockHostelAttendanceRepository)
		mockRepo.On("FindByDay", mock.Anything, testDay).Return(nil, gorm.ErrRecordNotFound)

		svc := NewHostelAttendanceService(mockRepo)
		rec, err := svc.DayAttendance(context.Background(), testAdmin, testDay)
		assert.NoError(t, err)
		assert.Empty(t, rec.PresentUsernames.Sorted())
		mockRepo.AssertExpectations(t)
	})

	t.Run("student forbidden", func(t *testing.T) {
		svc := NewHostelAttendanceService(new(MockHostelAttendanceRepository))
		_, err := svc.DayAttendance(context.Background(), testStudent, testDay)
		assert.Equal(t, errors.ErrForbidden, err)
	})
}

func TestHostelAttendanceService_MyAttendance(t *testing.T) {
	otherDay := testDay.AddDate(0, 0, 1)
	rows := []model.HostelAttendance{
		{Day: testDay, PresentUsernames: model.NewStringSet("student1", "student2")},
		{Day: otherDay, PresentUsernames: model.NewStringSet("student2")},
	}
	mockRepo := new(MockHostelAttendanceRepository)
	mockRepo.On("ListAll", mock.Anything).Return(rows, nil)

	svc := NewHostelAttendanceService(mockRepo)
	got, err := svc.MyAttendance(context.Background(), testStudent)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, testDay, got[0].Day)
	mockRepo.AssertExpectations(t)
}
