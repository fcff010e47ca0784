package devconnect

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/goliatone/go-print"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-router"
	"github.com/nyaruka/phonenumbers"
)

// RouteRegistrar captures the router methods used by the controllers.
type RouteRegistrar interface {
	Get(path string, handler router.HandlerFunc, mw ...router.MiddlewareFunc) router.RouteInfo
	Post(path string, handler router.HandlerFunc, mw ...router.MiddlewareFunc) router.RouteInfo
	Put(path string, handler router.HandlerFunc, mw ...router.MiddlewareFunc) router.RouteInfo
	Delete(path string, handler router.HandlerFunc, mw ...router.MiddlewareFunc) router.RouteInfo
}

// AuthController serves registration, login, and the current user lookup.
type AuthController struct {
	Debug      bool
	Logger     Logger
	Repo       RepositoryManager
	Auther     Authenticator
	ContextKey string
	UseHashid  bool
}

type AuthControllerOption func(*AuthController) *AuthController

func NewAuthController(opts ...AuthControllerOption) *AuthController {
	c := &AuthController{
		Logger:     defLogger{},
		ContextKey: "user",
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Repo == nil {
		panic("Missing RepositoryManager in auth controller...")
	}

	if c.Auther == nil {
		panic("Missing Authenticator in auth controller...")
	}

	return c
}

// RegisterRoutes mounts the public auth endpoints and the private current
// user endpoint.
func (a *AuthController) RegisterRoutes(api RouteRegistrar, protected router.MiddlewareFunc) {
	api.Post("/users", a.Register)
	api.Post("/auth/login", a.Login)
	api.Get("/auth", a.CurrentUser, protected)
}

// RegisterPayload is the sign up body
type RegisterPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone_number"`
}

// Validate will run validation rules
func (r RegisterPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("Name is required")),
		validation.Field(&r.Email, validation.Required.Error("Please include a valid email"), is.Email.Error("Please include a valid email")),
		validation.Field(&r.Password, validation.Required.Error("Please enter a password with 6 or more characters"), validation.Length(6, 100).Error("Please enter a password with 6 or more characters")),
		validation.Field(&r.Phone, validation.By(ValidatePhoneNumber)),
	)
}

// LoginPayload is the sign in body
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (r LoginPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required.Error("Please include a valid email"), is.Email.Error("Please include a valid email")),
		validation.Field(&r.Password, validation.Required.Error("Password is required")),
	)
}

func (a *AuthController) Register(ctx router.Context) error {
	payload := new(RegisterPayload)

	if err := ctx.Bind(payload); err != nil {
		a.Logger.Error("register parse payload", "error", err)
		return RespondValidationError(ctx, err)
	}

	if err := payload.Validate(); err != nil {
		return RespondValidationError(ctx, err)
	}

	if a.Debug {
		fmt.Println("======= REGISTER ======")
		fmt.Println(print.MaybePrettyJSON(payload))
		fmt.Println("=======================")
	}

	var user *User
	req := RegisterUserMessage{
		Name:      payload.Name,
		Email:     payload.Email,
		Phone:     payload.Phone,
		Password:  payload.Password,
		UseHashid: a.UseHashid,
		OnResponse: func(u *User) error {
			user = u
			return nil
		},
	}

	registerUser := NewRegisterUserHandler(a.Repo)
	if err := registerUser.Execute(ctx.Context(), req); err != nil {
		a.Logger.Error("register user", "error", err)
		return RespondError(ctx, err)
	}

	token, err := a.Auther.TokenService().Generate(IdentityFromUser(user))
	if err != nil {
		a.Logger.Error("register token", "error", err)
		return RespondError(ctx, err)
	}

	return ctx.JSON(router.StatusOK, map[string]string{
		"token": token,
	})
}

func (a *AuthController) Login(ctx router.Context) error {
	payload := new(LoginPayload)

	if err := ctx.Bind(payload); err != nil {
		a.Logger.Error("login parse payload", "error", err)
		return RespondValidationError(ctx, err)
	}

	if err := payload.Validate(); err != nil {
		return RespondValidationError(ctx, err)
	}

	token, err := a.Auther.Login(ctx.Context(), payload.Email, payload.Password)
	if err != nil {
		a.Logger.Error("login", "email", payload.Email, "error", err)
		return RespondError(ctx, err)
	}

	return ctx.JSON(router.StatusOK, map[string]string{
		"token": token,
	})
}

// CurrentUser returns the account behind the bearer token, password excluded.
func (a *AuthController) CurrentUser(ctx router.Context) error {
	claims, ok := GetRouterClaims(ctx, a.ContextKey)
	if !ok {
		return RespondError(ctx, ErrNoToken)
	}

	user, err := a.Repo.Users().GetByID(ctx.Context(), claims.UserID())
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return RespondError(ctx, ErrIdentityNotFound)
		}
		a.Logger.Error("current user lookup", "error", err)
		return RespondError(ctx, err)
	}

	return ctx.JSON(router.StatusOK, user)
}

// ValidatePhoneNumber accepts empty values and otherwise requires a parseable
// phone number
func ValidatePhoneNumber(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	num, err := phonenumbers.Parse(s, "US")
	if err != nil {
		return fmt.Errorf("Please include a valid phone number")
	}

	if !phonenumbers.IsValidNumber(num) {
		return fmt.Errorf("Please include a valid phone number")
	}

	return nil
}
