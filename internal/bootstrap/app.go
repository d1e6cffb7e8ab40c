package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "legaldraft-backend/internal/auth"
	"legaldraft-backend/internal/chat"
	"legaldraft-backend/internal/generation"
	"legaldraft-backend/internal/redaction"
	"legaldraft-backend/internal/shared/config"
	"legaldraft-backend/internal/shared/server"
	"legaldraft-backend/internal/shared/storage/db"
	"legaldraft-backend/internal/shared/storage/object"
	localstore "legaldraft-backend/internal/shared/storage/object/local"
	s3store "legaldraft-backend/internal/shared/storage/object/s3"
	"legaldraft-backend/internal/summaries"
	"legaldraft-backend/internal/templates"
	"legaldraft-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	TemplateRepo templates.Repo
	MappingRepo  redaction.Repo
	DocumentRepo generation.Repo
	UserRepo     users.Repo
	ChatRepo     chat.Repo
	SummaryRepo  summaries.Repo

	TemplateService *templates.Service
	Generator       *generation.Service
	ChatService     *chat.Service
	SummaryService  *summaries.Service
	UserService     *users.Service

	TemplateHandler  *templates.Handler
	GeneratorHandler *generation.Handler
	ChatHandler      *chat.Handler
	SummaryHandler   *summaries.Handler
	UserHandler      *users.Handler
	GoogleAuth       *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		TemplateHandler:  app.TemplateHandler,
		GeneratorHandler: app.GeneratorHandler,
		ChatHandler:      app.ChatHandler,
		SummaryHandler:   app.SummaryHandler,
		UserHandler:      app.UserHandler,
		GoogleAuth:       app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildServices(app *App) {
	if app.DB != nil {
		app.TemplateRepo = &templates.PGRepo{DB: app.DB}
		app.MappingRepo = &redaction.PGRepo{DB: app.DB}
		app.DocumentRepo = &generation.PGRepo{DB: app.DB}
		app.UserRepo = &users.PGRepo{DB: app.DB}
		app.ChatRepo = &chat.PGRepo{DB: app.DB}
		app.SummaryRepo = &summaries.PGRepo{DB: app.DB}
	} else {
		app.TemplateRepo = templates.NewMemoryRepo()
		app.MappingRepo = redaction.NewMemoryRepo()
		app.DocumentRepo = generation.NewMemoryRepo()
		app.UserRepo = users.NewMemoryRepo()
		app.ChatRepo = chat.NewMemoryRepo()
		app.SummaryRepo = summaries.NewMemoryRepo()
	}

	app.TemplateService = templates.NewService(app.TemplateRepo)
	app.Generator = generation.NewService(
		app.TemplateService,
		redaction.NewEngine(redaction.DefaultCategories()),
		redaction.NewVault(app.MappingRepo),
		app.DocumentRepo,
		app.Store,
	)
	app.ChatService = chat.NewService(app.ChatRepo)
	app.SummaryService = summaries.NewService(app.SummaryRepo)
	app.UserService = users.NewService(app.UserRepo)

	app.TemplateHandler = templates.NewHandler(app.TemplateService)
	app.GeneratorHandler = generation.NewHandler(app.Generator)
	app.ChatHandler = chat.NewHandler(app.ChatService)
	app.SummaryHandler = summaries.NewHandler(app.SummaryService)
	app.UserHandler = users.NewHandler(app.UserService)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		app.UserService,
	)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
