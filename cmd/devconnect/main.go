package main

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/django/v3"
	"github.com/goliatone/devconnect"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-logger/glog"
	"github.com/goliatone/go-persistence-bun"
	"github.com/goliatone/go-router"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

//go:embed views
var viewsFS embed.FS

type App struct {
	config *AppConfig
	bunDB  *bun.DB
	repo   devconnect.RepositoryManager
	auth   devconnect.Authenticator
	auther *devconnect.RouteAuthenticator
	srv    router.Server[*fiber.App]
	logger *glog.BaseLogger
}

func (a *App) GetLogger(name string) glog.Logger {
	return a.logger.GetLogger(name)
}

func main() {
	lgr := glog.NewLogger(
		glog.WithLoggerTypePretty(),
		glog.WithLevel(glog.Info),
		glog.WithName("devconnect"),
		glog.WithAddSource(false),
		glog.WithRichErrorHandler(errors.ToSlogAttributes),
	)

	cfg, err := LoadConfig()
	if err != nil {
		lgr.Error("config load failed", "error", err)
		os.Exit(1)
	}

	app := &App{
		config: cfg,
		logger: lgr,
	}

	ctx := context.Background()

	if err := WithPersistence(ctx, app); err != nil {
		lgr.Error("persistence setup failed", "error", err)
		os.Exit(1)
	}

	if err := WithAuth(app); err != nil {
		lgr.Error("auth setup failed", "error", err)
		os.Exit(1)
	}

	if err := WithHTTPServer(app); err != nil {
		lgr.Error("http setup failed", "error", err)
		os.Exit(1)
	}

	RegisterRoutes(app)

	app.srv.Serve(cfg.Server.Address)

	lgr.Info("server started", "address", cfg.Server.Address)

	WaitExitSignal()
}

func WithPersistence(ctx context.Context, app *App) error {
	db, err := sql.Open(sqliteshim.ShimName, app.config.Persistence.GetDSN())
	if err != nil {
		return err
	}

	persistence.RegisterModel((*devconnect.User)(nil))
	persistence.RegisterModel((*devconnect.Profile)(nil))
	persistence.RegisterModel((*devconnect.Post)(nil))

	client, err := persistence.New(app.config.Persistence, db, sqlitedialect.New())
	if err != nil {
		return err
	}

	client.SetLogger(app.GetLogger("persistence"))

	migrationsFS, err := fs.Sub(devconnect.GetMigrationsFS(), "data/sql/migrations")
	if err != nil {
		return err
	}

	client.RegisterDialectMigrations(
		migrationsFS,
		persistence.WithDialectSourceLabel("data/sql/migrations"),
		persistence.WithValidationTargets("postgres", "sqlite"),
	)

	if err := client.ValidateDialects(ctx); err != nil {
		return err
	}

	if err := client.Migrate(ctx); err != nil {
		return err
	}

	app.bunDB = client.DB()
	app.repo = devconnect.NewRepositoryManager(client.DB())

	return app.repo.Validate()
}

func WithAuth(app *App) error {
	authenticator := devconnect.NewAuthenticator(app.repo.Users(), app.config.Auth)
	authenticator.WithLogger(app.GetLogger("auth"))
	app.auth = authenticator

	auther, err := devconnect.NewHTTPAuthenticator(authenticator, app.config.Auth)
	if err != nil {
		return err
	}
	auther.Logger = app.GetLogger("auth:http")
	app.auther = auther

	return nil
}

func WithHTTPServer(app *App) error {
	templates, err := fs.Sub(viewsFS, "views")
	if err != nil {
		return err
	}

	engine := django.NewFileSystem(http.FS(templates), ".django")

	srv := router.NewFiberAdapter(func(a *fiber.App) *fiber.App {
		return router.DefaultFiberOptions(fiber.New(fiber.Config{
			UnescapePath:      true,
			EnablePrintRoutes: app.config.Server.Debug,
			StrictRouting:     false,
			PassLocalsToViews: true,
			Views:             engine,
		}))
	})

	srv.Router().WithLogger(app.GetLogger("router"))

	srv.Router().Get("/", func(ctx router.Context) error {
		return ctx.Render("index", router.ViewContext{
			"title": "DevConnect API",
		})
	})

	app.srv = srv
	return nil
}

func RegisterRoutes(app *App) {
	cfg := app.config.Auth
	api := app.srv.Router().Group("/api")

	protected := app.auther.ProtectedRoute(cfg, app.auther.MakeAPIAuthErrorHandler(false))

	authController := devconnect.NewAuthController(func(c *devconnect.AuthController) *devconnect.AuthController {
		c.Debug = app.config.Server.Debug
		c.Logger = app.GetLogger("ctrl:auth")
		c.Repo = app.repo
		c.Auther = app.auth
		c.ContextKey = cfg.GetContextKey()
		return c
	})
	authController.RegisterRoutes(api, protected)

	profileController := devconnect.NewProfileController(func(c *devconnect.ProfileController) *devconnect.ProfileController {
		c.Debug = app.config.Server.Debug
		c.Logger = app.GetLogger("ctrl:profile")
		c.Repo = app.repo
		c.ContextKey = cfg.GetContextKey()
		return c
	})
	profileController.RegisterRoutes(api, protected)

	postsController := devconnect.NewPostsController(func(c *devconnect.PostsController) *devconnect.PostsController {
		c.Debug = app.config.Server.Debug
		c.Logger = app.GetLogger("ctrl:posts")
		c.Repo = app.repo
		c.ContextKey = cfg.GetContextKey()
		return c
	})
	postsController.RegisterRoutes(api, protected)
}

func WaitExitSignal() os.Signal {
	ch := make(chan os.Signal, 3)
	signal.Notify(ch,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	return <-ch
}
