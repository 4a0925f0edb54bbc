package bootstrap

import (
	"context"
	"fmt"

	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/api"
	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/api/handler"
	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/pkg/config"
	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/pkg/logger"
	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/pkg/postgres"
	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/repository"
	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/service"
)

type Application struct {
	Config   *config.Config
	Logger   *logger.Logger
	Postgres *postgres.Connection
	Migrator *postgres.Migrator

	ProjectRepo  repository.ProjectRepository
	MRRepo       repository.MergeRequestRepository
	PipelineRepo repository.PipelineRepository
	ActivityRepo repository.ActivityRepository

	ProjectService  *service.ProjectService
	MRService       *service.MergeRequestService
	PipelineService *service.PipelineService
	ActivityService *service.ActivityService

	ProjectHandler  *handler.ProjectHandler
	MRHandler       *handler.MergeRequestHandler
	PipelineHandler *handler.PipelineHandler
	ActivityHandler *handler.ActivityHandler

	HTTPServer *api.HTTPServer
}

func New() (*Application, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(&logger.Config{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		AddSource: cfg.LogAddSource,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	pg, err := postgres.New(log, &postgres.Config{
		Host:              cfg.DatabaseHost,
		Port:              cfg.DatabasePort,
		Username:          cfg.DatabaseUser,
		Password:          cfg.DatabasePassword,
		Database:          cfg.DatabaseName,
		Schema:            cfg.DatabaseSchema,
		SSLMode:           cfg.DatabaseSSLMode,
		MaxConns:          cfg.DatabaseMaxConns,
		MinConns:          cfg.DatabaseMinConns,
		MaxConnLifetime:   cfg.DatabaseMaxConnLifetime,
		MaxConnIdleTime:   cfg.DatabaseMaxConnIdleTime,
		HealthCheckPeriod: cfg.DatabaseHealthCheckPeriod,
		ConnectTimeout:    cfg.DatabaseConnectTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres connection: %w", err)
	}

	return &Application{
		Config:   cfg,
		Logger:   log,
		Postgres: pg,
	}, nil
}

func (app *Application) Init(ctx context.Context) error {
	app.Logger.Info("initializing application")

	if err := app.Postgres.Connect(ctx); err != nil {
		return fmt.Errorf("postgres connection failed: %w", err)
	}

	app.Migrator = postgres.NewMigrator(app.Postgres.Pool(), &postgres.MigrationConfig{
		Timeout:   app.Config.DatabaseMigrationTimeout,
		TableName: app.Config.DatabaseMigrationTable,
		Enabled:   app.Config.DatabaseMigrationEnabled,
	}, app.Logger)

	if err := app.Migrator.RunMigrations(ctx); err != nil {
		return fmt.Errorf("database migrations failed: %w", err)
	}

	app.ProjectRepo = repository.NewProjectRepo(app.Postgres.Pool(), app.Logger)
	app.MRRepo = repository.NewMergeRequestRepo(app.Postgres.Pool(), app.Logger)
	app.PipelineRepo = repository.NewPipelineRepo(app.Postgres.Pool(), app.Logger)
	app.ActivityRepo = repository.NewActivityRepo(app.Postgres.Pool(), app.Logger)

	app.ProjectService = service.NewProjectService(app.ProjectRepo, app.Config.CloneHost, app.Logger)
	app.MRService = service.NewMergeRequestService(app.MRRepo, app.Logger)
	app.PipelineService = service.NewPipelineService(app.PipelineRepo, app.Logger)
	app.ActivityService = service.NewActivityService(app.ActivityRepo, app.Config.FeedLimit, app.Logger)

	app.ProjectHandler = handler.NewProjectHandler(app.ProjectService, app.Logger)
	app.MRHandler = handler.NewMergeRequestHandler(app.MRService, app.Logger)
	app.PipelineHandler = handler.NewPipelineHandler(app.PipelineService, app.Logger)
	app.ActivityHandler = handler.NewActivityHandler(app.ActivityService, app.Logger)

	serverConfig := &api.ServerConfig{
		Host:         app.Config.ServerHost,
		Port:         app.Config.ServerPort,
		ReadTimeout:  app.Config.ServerReadTimeout,
		WriteTimeout: app.Config.ServerWriteTimeout,
		IdleTimeout:  app.Config.ServerIdleTimeout,
	}

	app.HTTPServer = api.NewHTTPServer(
		serverConfig,
		app.ProjectHandler,
		app.MRHandler,
		app.PipelineHandler,
		app.ActivityHandler,
		app.Logger,
	)

	if err := app.HTTPServer.Start(ctx); err != nil {
		return fmt.Errorf("failed to start http server: %w", err)
	}

	app.Logger.Info("application initialized successfully")
	return nil
}

func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("shutting down application")

	if app.HTTPServer != nil {
		if err := app.HTTPServer.Stop(ctx); err != nil {
			app.Logger.Error("error stopping http server", "error", err)
		}
	}

	app.Postgres.Close()

	app.Logger.Info("application shutdown completed")
	return nil
}

func (app *Application) Health(ctx context.Context) error {
	if err := app.Postgres.Health(ctx); err != nil {
		return fmt.Errorf("postgres health check failed: %w", err)
	}
	if err := app.Migrator.Health(ctx); err != nil {
		return fmt.Errorf("migrator health check failed: %w", err)
	}
	return nil
}
