package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", 30*time.Minute)

	token, err := svc.GenerateToken("student1", "student")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "student1", claims.Subject)
	assert.Equal(t, "student", claims.Role)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// NewJWTService replaces a non-positive TTL with the default, so build
	// an already-expired issuer directly.
	expired := &JWTService{secret: []byte("test-secret"), ttl: -time.Minute}

	token, err := expired.GenerateToken("student1", "student")
	assert.NoError(t, err)

	svc := NewJWTService("test-secret", time.Minute)
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute)
	other := NewJWTService("other-secret", time.Minute)

	token, err := svc.GenerateToken("admin", "admin")
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute)

	token, err := svc.GenerateToken("student1", "student")
	assert.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.ValidateToken(tampered)
	assert.Error(t, err)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	svc := NewJWTService("test-secret", 0)
	assert.Equal(t, DefaultTokenTTL, svc.ttl)
}
