package devconnect

import (
	"context"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/goliatone/devconnect/middleware/jwtware"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-router"
)

// RouteAuthenticator wires the token service into the HTTP layer: it builds
// the middleware that guards private routes and owns the error handler that
// turns auth failures into the JSON bodies API clients expect.
type RouteAuthenticator struct {
	auth         Authenticator
	cfg          Config
	Logger       Logger
	ErrorHandler func(c router.Context, err error) error
}

func NewHTTPAuthenticator(auther Authenticator, cfg Config) (*RouteAuthenticator, error) {
	a := &RouteAuthenticator{
		cfg:    cfg,
		auth:   auther,
		Logger: defLogger{},
	}

	a.ErrorHandler = RespondError

	return a, nil
}

func (a *RouteAuthenticator) ProtectedRoute(cfg Config, errorHandler func(router.Context, error) error) router.MiddlewareFunc {
	return jwtware.New(jwtware.Config{
		ErrorHandler: errorHandler,
		SigningKey: jwtware.SigningKey{
			Key:    []byte(cfg.GetSigningKey()),
			JWTAlg: cfg.GetSigningMethod(),
		},
		AuthScheme:     cfg.GetAuthScheme(),
		ContextKey:     cfg.GetContextKey(),
		TokenLookup:    cfg.GetTokenLookup(),
		TokenValidator: tokenValidator{a.auth.TokenService()},
		ContextEnricher: func(c context.Context, claims jwtware.AuthClaims) context.Context {
			if ac, ok := claims.(AuthClaims); ok {
				return WithClaimsContext(c, ac)
			}
			return c
		},
	})
}

// MakeAPIAuthErrorHandler maps middleware failures to the fixed 401 bodies.
// With optional set the request proceeds unauthenticated instead.
func (a *RouteAuthenticator) MakeAPIAuthErrorHandler(optional bool) func(router.Context, error) error {
	return func(ctx router.Context, err error) error {
		var richErr *errors.Error

		if err == jwtware.ErrJWTMissingOrMalformed {
			richErr = ErrNoToken
		} else if IsTokenExpiredError(err) {
			richErr = ErrTokenExpired
		} else if IsMalformedError(err) {
			richErr = ErrTokenMalformed
		} else if !errors.As(err, &richErr) {
			richErr = errors.Wrap(err, errors.CategoryAuth, "Token is not valid").
				WithCode(errors.CodeUnauthorized)
		}

		if optional {
			a.Logger.Info("Optional auth failed, proceeding", "error", richErr.Message)
			return ctx.Next()
		}

		return a.ErrorHandler(ctx, richErr)
	}
}

// tokenValidator adapts the TokenService to the middleware contract
type tokenValidator struct {
	ts TokenService
}

func (v tokenValidator) Validate(raw string) (jwtware.AuthClaims, error) {
	claims, err := v.ts.Validate(raw)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// RespondError renders any error as the JSON body the API clients expect.
// Validation and conflict failures carry an errors array, everything else a
// single msg.
func RespondError(c router.Context, err error) error {
	status, body := errorResponseBody(err)
	return c.JSON(status, body)
}

func errorResponseBody(err error) (int, any) {
	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		richErr = errors.Wrap(err, errors.CategoryInternal, "Server Error").
			WithCode(errors.CodeInternal)
	}

	status := richErr.Code
	if status < 400 {
		status = statusFromCategory(richErr.Category)
	}

	switch richErr.Category {
	case errors.CategoryValidation, errors.CategoryBadInput, errors.CategoryConflict:
		return status, map[string]any{
			"errors": []map[string]string{{"msg": richErr.Message}},
		}
	case errors.CategoryInternal:
		return status, map[string]string{"msg": "Server Error"}
	default:
		return status, map[string]string{"msg": richErr.Message}
	}
}

// RespondValidationError renders payload validation failures as a 400 with
// one entry per failing field, sorted so the body is stable.
func RespondValidationError(c router.Context, err error) error {
	fields := FormatValidationErrorToMap(err)

	params := make([]string, 0, len(fields))
	for param := range fields {
		params = append(params, param)
	}
	sort.Strings(params)

	list := make([]map[string]string, 0, len(params))
	for _, param := range params {
		list = append(list, map[string]string{
			"msg":   fields[param],
			"param": param,
		})
	}

	return c.JSON(router.StatusBadRequest, map[string]any{
		"errors": list,
	})
}

// FormatValidationErrorToMap flattens ozzo validation errors into a map of
// field name to message
func FormatValidationErrorToMap(err error) map[string]string {
	out := map[string]string{}
	if err == nil {
		return out
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		for field, ferr := range verrs {
			if ferr != nil {
				out[field] = ferr.Error()
			}
		}
		return out
	}

	out["payload"] = err.Error()
	return out
}

func statusFromCategory(category errors.Category) int {
	switch category {
	case errors.CategoryValidation, errors.CategoryBadInput, errors.CategoryConflict:
		return router.StatusBadRequest
	case errors.CategoryAuth, errors.CategoryAuthz:
		return router.StatusUnauthorized
	case errors.CategoryNotFound:
		return router.StatusNotFound
	default:
		return router.StatusInternalServerError
	}
}
