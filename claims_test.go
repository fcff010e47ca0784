package devconnect_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/devconnect"
	"github.com/stretchr/testify/assert"
)

func TestJWTClaims(t *testing.T) {
	now := time.Now().Truncate(time.Second)

	t.Run("UserID prefers uid claim", func(t *testing.T) {
		claims := &devconnect.JWTClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "subject-id"},
			UID:              "uid-claim",
		}

		assert.Equal(t, "uid-claim", claims.UserID())
		assert.Equal(t, "subject-id", claims.Subject())
	})

	t.Run("UserID falls back to subject", func(t *testing.T) {
		claims := &devconnect.JWTClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "subject-id"},
		}

		assert.Equal(t, "subject-id", claims.UserID())
	})

	t.Run("Expires and IssuedAt expose claim times", func(t *testing.T) {
		claims := &devconnect.JWTClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		}

		assert.Equal(t, now, claims.IssuedAt())
		assert.Equal(t, now.Add(time.Hour), claims.Expires())
	})

	t.Run("missing claim times read as zero", func(t *testing.T) {
		claims := &devconnect.JWTClaims{}

		assert.True(t, claims.Expires().IsZero())
		assert.True(t, claims.IssuedAt().IsZero())
	})
}
