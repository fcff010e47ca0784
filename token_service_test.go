package devconnect_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/devconnect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockIdentity implements devconnect.Identity for testing
type MockIdentity struct {
	mock.Mock
}

func (m *MockIdentity) ID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockIdentity) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockIdentity) Email() string {
	args := m.Called()
	return args.String(0)
}

// MockLogger implements devconnect.Logger for testing
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Info(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Error(format string, args ...any) {
	m.Called(format, args)
}

func TestNewTokenService(t *testing.T) {
	signingKey := []byte("test-signing-key")
	tokenExpiration := 24
	issuer := "test-issuer"
	audience := jwt.ClaimStrings{"test-audience"}

	t.Run("creates token service with logger", func(t *testing.T) {
		logger := &MockLogger{}

		service := devconnect.NewTokenService(signingKey, tokenExpiration, issuer, audience, logger)

		assert.NotNil(t, service)
	})

	t.Run("creates token service with nil logger", func(t *testing.T) {
		service := devconnect.NewTokenService(signingKey, tokenExpiration, issuer, audience, nil)

		assert.NotNil(t, service)
	})
}

func TestTokenService_Generate(t *testing.T) {
	signingKey := []byte("test-signing-key")
	tokenExpiration := 24
	issuer := "test-issuer"
	audience := jwt.ClaimStrings{"test-audience"}
	logger := &MockLogger{}

	service := devconnect.NewTokenService(signingKey, tokenExpiration, issuer, audience, logger)

	t.Run("generates valid JWT token", func(t *testing.T) {
		identity := &MockIdentity{}
		identity.On("ID").Return("user-123")

		tokenString, err := service.Generate(identity)

		assert.NoError(t, err)
		assert.NotEmpty(t, tokenString)

		token, err := jwt.ParseWithClaims(tokenString, &devconnect.JWTClaims{}, func(token *jwt.Token) (any, error) {
			return signingKey, nil
		})

		assert.NoError(t, err)
		assert.True(t, token.Valid)

		claims, ok := token.Claims.(*devconnect.JWTClaims)
		assert.True(t, ok)
		assert.Equal(t, "user-123", claims.Subject())
		assert.Equal(t, "user-123", claims.UserID())
		assert.Equal(t, issuer, claims.Issuer)
		assert.Equal(t, audience, claims.Audience)
		assert.NotNil(t, claims.RegisteredClaims.IssuedAt)
		assert.NotNil(t, claims.RegisteredClaims.ExpiresAt)
		assert.NotEmpty(t, claims.RegisteredClaims.ID)

		identity.AssertExpectations(t)
	})

	t.Run("sets correct expiration time", func(t *testing.T) {
		identity := &MockIdentity{}
		identity.On("ID").Return("user-123")

		beforeGenerate := time.Now()
		tokenString, err := service.Generate(identity)
		afterGenerate := time.Now()

		assert.NoError(t, err)

		token, err := jwt.ParseWithClaims(tokenString, &devconnect.JWTClaims{}, func(token *jwt.Token) (any, error) {
			return signingKey, nil
		})

		assert.NoError(t, err)
		claims := token.Claims.(*devconnect.JWTClaims)

		expectedExpiry := beforeGenerate.Add(time.Duration(tokenExpiration) * time.Hour)
		actualExpiry := claims.RegisteredClaims.ExpiresAt.Time

		assert.True(t, actualExpiry.After(expectedExpiry.Add(-time.Second)))
		assert.True(t, actualExpiry.Before(afterGenerate.Add(time.Duration(tokenExpiration)*time.Hour+time.Second)))

		identity.AssertExpectations(t)
	})
}

func TestTokenService_Validate(t *testing.T) {
	signingKey := []byte("test-signing-key")
	tokenExpiration := 24
	issuer := "test-issuer"
	audience := jwt.ClaimStrings{"test-audience"}
	logger := &MockLogger{}

	service := devconnect.NewTokenService(signingKey, tokenExpiration, issuer, audience, logger)

	t.Run("validates a token it generated", func(t *testing.T) {
		identity := &MockIdentity{}
		identity.On("ID").Return("user-123")

		tokenString, err := service.Generate(identity)
		assert.NoError(t, err)

		claims, err := service.Validate(tokenString)

		assert.NoError(t, err)
		assert.NotNil(t, claims)
		assert.Equal(t, "user-123", claims.Subject())
		assert.Equal(t, "user-123", claims.UserID())

		identity.AssertExpectations(t)
	})

	t.Run("rejects token signed with a different key", func(t *testing.T) {
		other := devconnect.NewTokenService([]byte("other-key"), tokenExpiration, issuer, audience, logger)

		identity := &MockIdentity{}
		identity.On("ID").Return("user-123")

		tokenString, err := other.Generate(identity)
		assert.NoError(t, err)

		claims, err := service.Validate(tokenString)

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		now := time.Now()
		expired := &devconnect.JWTClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    issuer,
				Subject:   "user-123",
				Audience:  audience,
				IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
				ExpiresAt: jwt.NewNumericDate(now.Add(-1 * time.Hour)),
			},
			UID: "user-123",
		}

		tokenString, err := service.SignClaims(expired)
		assert.NoError(t, err)

		claims, err := service.Validate(tokenString)

		assert.Error(t, err)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, devconnect.ErrTokenExpired)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		logger.On("Error", mock.Anything, mock.Anything).Maybe()

		claims, err := service.Validate("not-a-token")

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("rejects token with wrong issuer", func(t *testing.T) {
		other := devconnect.NewTokenService(signingKey, tokenExpiration, "other-issuer", audience, logger)

		identity := &MockIdentity{}
		identity.On("ID").Return("user-123")

		tokenString, err := other.Generate(identity)
		assert.NoError(t, err)

		claims, err := service.Validate(tokenString)

		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}

func TestTokenService_SignClaims(t *testing.T) {
	service := devconnect.NewTokenService([]byte("test-signing-key"), 24, "test-issuer", nil, nil)

	t.Run("rejects nil claims", func(t *testing.T) {
		tokenString, err := service.SignClaims(nil)

		assert.Error(t, err)
		assert.Empty(t, tokenString)
	})
}
