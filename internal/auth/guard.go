package auth

import (
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"hostelerp/internal/errors"
	"hostelerp/internal/model"
	"hostelerp/internal/repository"
)

// Guard resolves the caller's identity from the request token and exposes
// the role/ownership predicates composed by every resource handler. It
// holds no record-specific knowledge.
type Guard struct {
	users repository.UserRepository
}

// NewGuard creates a new access guard backed by the given credential store.
func NewGuard(users repository.UserRepository) *Guard {
	return &Guard{users: users}
}

// CurrentUser resolves the JWT parsed by the echo-jwt middleware into a
// provisioned principal. A well-signed token for a username absent from
// the credential store still fails resolution.
func (g *Guard) CurrentUser(c echo.Context) (*model.User, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, errors.ErrUnauthenticated
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return nil, errors.ErrUnauthenticated
	}

	user, err := g.users.FindByUsername(c.Request().Context(), claims.Subject)
	if err != nil {
		return nil, errors.ErrUnauthenticated
	}
	return user, nil
}

// RequireRole fails with ErrForbidden unless the user holds the expected role.
func RequireRole(user *model.User, role string) error {
	if user.Role != role {
		return errors.ErrForbidden
	}
	return nil
}

// RequireOwnerOrRole succeeds when the user owns the record or holds the
// privileged role.
func RequireOwnerOrRole(user *model.User, owner, role string) error {
	if user.Username == owner || user.Role == role {
		return nil
	}
	return errors.ErrForbidden
}
