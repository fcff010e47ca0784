package devconnect

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/goliatone/go-print"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-router"
)

// PostsController serves the post feed.
type PostsController struct {
	Debug      bool
	Logger     Logger
	Repo       RepositoryManager
	ContextKey string
}

type PostsControllerOption func(*PostsController) *PostsController

func NewPostsController(opts ...PostsControllerOption) *PostsController {
	c := &PostsController{
		Logger:     defLogger{},
		ContextKey: "user",
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Repo == nil {
		panic("Missing RepositoryManager in posts controller...")
	}

	return c
}

// RegisterRoutes mounts the feed endpoints, all behind the token middleware.
func (a *PostsController) RegisterRoutes(api RouteRegistrar, protected router.MiddlewareFunc) {
	api.Post("/posts", a.Create, protected)
	api.Get("/posts", a.List, protected)
	api.Get("/posts/:id", a.Get, protected)
	api.Delete("/posts/:id", a.Delete, protected)
}

// PostPayload is the create body
type PostPayload struct {
	Text string `json:"text"`
}

// Validate will run validation rules
func (r PostPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Required.Error("Text is required")),
	)
}

// Create publishes a post. The author's name and avatar are captured at
// creation time.
func (a *PostsController) Create(ctx router.Context) error {
	claims, ok := GetRouterClaims(ctx, a.ContextKey)
	if !ok {
		return RespondError(ctx, ErrNoToken)
	}

	payload := new(PostPayload)
	if err := ctx.Bind(payload); err != nil {
		a.Logger.Error("post parse payload", "error", err)
		return RespondValidationError(ctx, err)
	}

	if err := payload.Validate(); err != nil {
		return RespondValidationError(ctx, err)
	}

	user, err := a.Repo.Users().GetByID(ctx.Context(), claims.UserID())
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return RespondError(ctx, ErrIdentityNotFound)
		}
		a.Logger.Error("post author lookup", "error", err)
		return RespondError(ctx, err)
	}

	post, err := a.Repo.Posts().Publish(ctx.Context(), &Post{
		UserID: user.ID,
		Text:   payload.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
	})
	if err != nil {
		a.Logger.Error("post create", "error", err)
		return RespondError(ctx, err)
	}

	if a.Debug {
		fmt.Println("======= POST ======")
		fmt.Println(print.MaybePrettyJSON(post))
		fmt.Println("===================")
	}

	return ctx.JSON(router.StatusOK, post)
}

// List returns the feed, newest first
func (a *PostsController) List(ctx router.Context) error {
	records, err := a.Repo.Posts().ListNewestFirst(ctx.Context())
	if err != nil {
		a.Logger.Error("post list", "error", err)
		return RespondError(ctx, err)
	}

	return ctx.JSON(router.StatusOK, records)
}

// Get returns a single post by id
func (a *PostsController) Get(ctx router.Context) error {
	post, err := a.Repo.Posts().GetPost(ctx.Context(), ctx.Param("id"))
	if err != nil {
		return RespondError(ctx, err)
	}

	return ctx.JSON(router.StatusOK, post)
}

// Delete removes a post. Only the author may delete it.
func (a *PostsController) Delete(ctx router.Context) error {
	claims, ok := GetRouterClaims(ctx, a.ContextKey)
	if !ok {
		return RespondError(ctx, ErrNoToken)
	}

	post, err := a.Repo.Posts().GetPost(ctx.Context(), ctx.Param("id"))
	if err != nil {
		return RespondError(ctx, err)
	}

	if !post.OwnedBy(claims.UserID()) {
		return RespondError(ctx, ErrNotPostOwner)
	}

	if err := a.Repo.Posts().Remove(ctx.Context(), post); err != nil {
		a.Logger.Error("post delete", "error", err)
		return RespondError(ctx, err)
	}

	return ctx.JSON(router.StatusOK, map[string]string{
		"msg": "Post removed",
	})
}
