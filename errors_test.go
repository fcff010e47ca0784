package devconnect_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/goliatone/devconnect"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Run("detects sqlite unique failure", func(t *testing.T) {
		err := errors.New("constraint failed: UNIQUE constraint failed: users.email (2067)")
		assert.True(t, devconnect.IsUniqueViolation(err))
	})

	t.Run("detects postgres unique failure", func(t *testing.T) {
		err := errors.New(`ERROR: duplicate key value violates unique constraint "users_email_key" (SQLSTATE=23505)`)
		assert.True(t, devconnect.IsUniqueViolation(err))
	})

	t.Run("ignores other errors", func(t *testing.T) {
		assert.False(t, devconnect.IsUniqueViolation(errors.New("connection refused")))
	})

	t.Run("ignores nil", func(t *testing.T) {
		assert.False(t, devconnect.IsUniqueViolation(nil))
	})
}

func TestIsTokenExpiredError(t *testing.T) {
	assert.True(t, devconnect.IsTokenExpiredError(fmt.Errorf("token has invalid claims: token is expired")))
	assert.False(t, devconnect.IsTokenExpiredError(fmt.Errorf("token signature is invalid")))
	assert.False(t, devconnect.IsTokenExpiredError(nil))
}

func TestIsMalformedError(t *testing.T) {
	assert.True(t, devconnect.IsMalformedError(fmt.Errorf("token is malformed: could not base64 decode")))
	assert.True(t, devconnect.IsMalformedError(fmt.Errorf("missing or malformed JWT")))
	assert.False(t, devconnect.IsMalformedError(fmt.Errorf("token is expired")))
	assert.False(t, devconnect.IsMalformedError(nil))
}

func TestErrorMessages(t *testing.T) {
	// Clients match on these strings, they are part of the API contract.
	assert.Equal(t, "Invalid credentials", devconnect.ErrIdentityNotFound.Message)
	assert.Equal(t, "Invalid credentials", devconnect.ErrInvalidCredentials.Message)
	assert.Equal(t, "User already exists.", devconnect.ErrUserExists.Message)
	assert.Equal(t, "No token, authorization denied", devconnect.ErrNoToken.Message)
	assert.Equal(t, "User not authorized", devconnect.ErrNotPostOwner.Message)
	assert.Equal(t, "Profile not found.", devconnect.ErrProfileNotFound.Message)
	assert.Equal(t, "There is no profile for this user.", devconnect.ErrNoProfileForUser.Message)
	assert.Equal(t, "Post not found", devconnect.ErrPostNotFound.Message)
	assert.Equal(t, "Token is not valid", devconnect.ErrTokenExpired.Message)
	assert.Equal(t, "Token is not valid", devconnect.ErrTokenMalformed.Message)
}
