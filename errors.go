package devconnect

import (
	"strings"

	"github.com/goliatone/go-errors"
)

// Rich errors carry the category that the API error handler maps to a
// status code, and the message the original clients expect verbatim.
var (
	// ErrIdentityNotFound is returned when a login email has no account
	ErrIdentityNotFound = errors.New("Invalid credentials", errors.CategoryNotFound).
				WithCode(errors.CodeNotFound).
				WithTextCode("IDENTITY_NOT_FOUND")

	// ErrInvalidCredentials is returned on a password mismatch
	ErrInvalidCredentials = errors.New("Invalid credentials", errors.CategoryAuth).
				WithCode(errors.CodeUnauthorized).
				WithTextCode("INVALID_CREDENTIALS")

	// ErrUserExists is returned when registering an email already taken
	ErrUserExists = errors.New("User already exists.", errors.CategoryConflict).
			WithCode(errors.CodeBadRequest).
			WithTextCode("USER_EXISTS")

	// ErrTokenExpired is returned for expired bearer tokens
	ErrTokenExpired = errors.New("Token is not valid", errors.CategoryAuth).
			WithCode(errors.CodeUnauthorized).
			WithTextCode("TOKEN_EXPIRED")

	// ErrTokenMalformed is returned for tokens that fail to parse or verify
	ErrTokenMalformed = errors.New("Token is not valid", errors.CategoryAuth).
			WithCode(errors.CodeUnauthorized).
			WithTextCode("TOKEN_MALFORMED")

	// ErrNoToken is returned when a private route gets no bearer token
	ErrNoToken = errors.New("No token, authorization denied", errors.CategoryAuth).
			WithCode(errors.CodeUnauthorized).
			WithTextCode("TOKEN_MISSING")

	// ErrNotPostOwner is returned when a delete comes from a non owner
	ErrNotPostOwner = errors.New("User not authorized", errors.CategoryAuthz).
			WithCode(errors.CodeUnauthorized).
			WithTextCode("NOT_OWNER")

	// ErrProfileNotFound covers missing profiles and malformed user ids alike
	// Clients of the original API expect profile misses as 400, not 404,
	// so these carry an explicit status code.
	ErrProfileNotFound = errors.New("Profile not found.", errors.CategoryNotFound).
				WithCode(errors.CodeBadRequest).
				WithTextCode("PROFILE_NOT_FOUND")

	// ErrNoProfileForUser is the /me response when no profile exists yet
	ErrNoProfileForUser = errors.New("There is no profile for this user.", errors.CategoryNotFound).
				WithCode(errors.CodeBadRequest).
				WithTextCode("NO_PROFILE")

	// ErrExperienceNotFound is returned when removing an unknown experience id.
	// The unknown id never falls through to removing another entry.
	ErrExperienceNotFound = errors.New("Experience not found", errors.CategoryNotFound).
				WithCode(errors.CodeNotFound).
				WithTextCode("EXPERIENCE_NOT_FOUND")

	// ErrEducationNotFound is the education counterpart
	ErrEducationNotFound = errors.New("Education not found", errors.CategoryNotFound).
				WithCode(errors.CodeNotFound).
				WithTextCode("EDUCATION_NOT_FOUND")

	// ErrPostNotFound covers missing posts and malformed post ids alike
	ErrPostNotFound = errors.New("Post not found", errors.CategoryNotFound).
			WithCode(errors.CodeNotFound).
			WithTextCode("POST_NOT_FOUND")

	// ErrNoEmptyString guards hashing empty passwords
	ErrNoEmptyString = errors.New("value must not be empty", errors.CategoryValidation).
				WithTextCode("EMPTY_VALUE")

	// ErrMismatchedHashAndPassword is the bcrypt comparison failure
	ErrMismatchedHashAndPassword = errors.New("password does not match", errors.CategoryAuth).
					WithCode(errors.CodeUnauthorized).
					WithTextCode("PASSWORD_MISMATCH")
)

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "token is expired")
}

// IsMalformedError will check for error message
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "token is malformed") ||
		strings.Contains(err.Error(), "missing or malformed JWT")
}

// IsUniqueViolation detects a unique constraint failure across the sqlite
// and postgres drivers we target. Used as a backstop behind the explicit
// duplicate email pre-check.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
