package devconnect

import (
	"context"

	"github.com/goliatone/go-repository-bun"
)

type Auther struct {
	users           Users
	signingKey      []byte
	tokenExpiration int
	issuer          string
	audience        []string
	logger          Logger
	tokenService    TokenService
}

// NewAuthenticator returns a new Authenticator backed by the users store
func NewAuthenticator(users Users, opts Config) *Auther {
	tokenService := NewTokenService(
		[]byte(opts.GetSigningKey()),
		opts.GetTokenExpiration(),
		opts.GetIssuer(),
		opts.GetAudience(),
		defLogger{},
	)

	return &Auther{
		users:           users,
		signingKey:      []byte(opts.GetSigningKey()),
		tokenExpiration: opts.GetTokenExpiration(),
		audience:        opts.GetAudience(),
		issuer:          opts.GetIssuer(),
		logger:          defLogger{},
		tokenService:    tokenService,
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	s.logger = logger
	// Update the TokenService logger as well
	s.tokenService = NewTokenService(
		s.signingKey,
		s.tokenExpiration,
		s.issuer,
		s.audience,
		logger,
	)
	return s
}

// TokenService returns the TokenService instance used by this Authenticator
func (s *Auther) TokenService() TokenService {
	return s.tokenService
}

// Login verifies the email and password pair and returns a signed token.
// An unknown email and a wrong password fail with different errors so the
// API can keep the original status split between the two.
func (s *Auther) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return "", ErrIdentityNotFound
		}
		s.logger.Error("Login find identity error", "error", err)
		return "", err
	}

	if err := ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		s.logger.Error("Login password mismatch", "email", email)
		return "", ErrInvalidCredentials
	}

	return s.tokenService.Generate(IdentityFromUser(user))
}

// IdentityFromClaims resolves the user behind validated token claims
func (s *Auther) IdentityFromClaims(ctx context.Context, claims AuthClaims) (*User, error) {
	user, err := s.users.GetByID(ctx, claims.UserID())
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, ErrIdentityNotFound
		}
		return nil, err
	}
	return user, nil
}

var _ Authenticator = (*Auther)(nil)
