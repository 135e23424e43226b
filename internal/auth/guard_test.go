package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"hostelerp/internal/errors"
	"hostelerp/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func newEchoContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestGuard_CurrentUser(t *testing.T) {
	tests := []struct {
		name        string
		setupCtx    func(c echo.Context)
		setupMock   func(m *MockUserRepository)
		expectedErr error
		expected    string
	}{
		{
			name: "resolves provisioned user",
			setupCtx: func(c echo.Context) {
				claims := &Claims{
					Role: model.RoleStudent,
					RegisteredClaims: jwt.RegisteredClaims{
						Subject:   "student1",
						ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
					},
				}
				c.Set("user", jwt.NewWithClaims(jwt.SigningMethodHS256, claims))
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "student1").
					Return(&model.User{Username: "student1", Role: model.RoleStudent}, nil)
			},
			expected: "student1",
		},
		{
			name:        "no token on context",
			setupCtx:    func(c echo.Context) {},
			setupMock:   func(m *MockUserRepository) {},
			expectedErr: errors.ErrUnauthenticated,
		},
		{
			name: "token subject not provisioned",
			setupCtx: func(c echo.Context) {
				claims := &Claims{
					RegisteredClaims: jwt.RegisteredClaims{Subject: "ghost"},
				}
				c.Set("user", jwt.NewWithClaims(jwt.SigningMethodHS256, claims))
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "ghost").
					Return(nil, gorm.ErrRecordNotFound)
			},
			expectedErr: errors.ErrUnauthenticated,
		},
		{
			name: "token with empty subject",
			setupCtx: func(c echo.Context) {
				c.Set("user", jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{}))
			},
			setupMock:   func(m *MockUserRepository) {},
			expectedErr: errors.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			c := newEchoContext()
			tt.setupCtx(c)

			guard := NewGuard(mockRepo)
			user, err := guard.CurrentUser(c)

			if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, user.Username)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestRequireRole(t *testing.T) {
	admin := &model.User{Username: "admin", Role: model.RoleAdmin}
	student := &model.User{Username: "student1", Role: model.RoleStudent}

	assert.NoError(t, RequireRole(admin, model.RoleAdmin))
	assert.Equal(t, errors.ErrForbidden, RequireRole(student, model.RoleAdmin))
	assert.NoError(t, RequireRole(student, model.RoleStudent))
	assert.Equal(t, errors.ErrForbidden, RequireRole(admin, model.RoleStudent))
}

func TestRequireOwnerOrRole(t *testing.T) {
	admin := &model.User{Username: "admin", Role: model.RoleAdmin}
	owner := &model.User{Username: "student1", Role: model.RoleStudent}
	other := &model.User{Username: "student2", Role: model.RoleStudent}

	assert.NoError(t, RequireOwnerOrRole(owner, "student1", model.RoleAdmin))
	assert.NoError(t, RequireOwnerOrRole(admin, "student1", model.RoleAdmin))
	assert.Equal(t, errors.ErrForbidden, RequireOwnerOrRole(other, "student1", model.RoleAdmin))
}
