// Package app wires configuration, the store, state containers and services
// into one process-wide object shared by the HTTP server and the CLI.
package app

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/teacher-planner-api/internal/handler"
	internalmiddleware "github.com/noah-isme/teacher-planner-api/internal/middleware"
	"github.com/noah-isme/teacher-planner-api/internal/models"
	"github.com/noah-isme/teacher-planner-api/internal/service"
	"github.com/noah-isme/teacher-planner-api/internal/state"
	"github.com/noah-isme/teacher-planner-api/pkg/config"
	"github.com/noah-isme/teacher-planner-api/pkg/kvstore"
	"github.com/noah-isme/teacher-planner-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/teacher-planner-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/teacher-planner-api/pkg/middleware/requestid"
)

// App owns every long-lived component.
type App struct {
	Config *config.Config
	Logger *zap.Logger
	Store  kvstore.Store
	State  *state.Containers

	Metrics       *service.MetricsService
	Notifications *service.NotificationService
	Persistence   *service.PersistenceService
	Schedule      *service.ScheduleService
	Classes       *service.ClassService
	Students      *service.StudentService
	Tasks         *service.TaskService
	Settings      *service.SettingsService
	Reports       *service.ReportService
	Exports       *service.ExportService
	Views         *service.ViewService

	closer io.Closer
}

// New opens the configured store and builds the application on top of it.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	store, closer, err := kvstore.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewWithStore(ctx, cfg, log, store, closer), nil
}

// NewWithStore builds the application on an already opened store. State is
// loaded from the store and the persistence synchronizer is started.
func NewWithStore(ctx context.Context, cfg *config.Config, log *zap.Logger, store kvstore.Store, closer io.Closer) *App {
	if log == nil {
		log = zap.NewNop()
	}
	validate := models.NewValidator()
	containers := state.Bootstrap(ctx, store, validate, log.Named("state"))

	metrics := service.NewMetricsService()
	ids := service.NewIDGenerator(nil)
	notes := service.NewNotificationService(cfg.Notifications.TTL, nil, ids, metrics, log.Named("notifications"))
	persistence := service.NewPersistenceService(store, containers, notes, metrics, log.Named("persistence"))
	// Writes outlive the caller's context; each one keeps its own timeout.
	persistence.Start(context.WithoutCancel(ctx))

	svcLog := log.Named("service")
	reports := service.NewReportService(containers.Schedule, containers.Classes, containers.Tasks)

	return &App{
		Config:        cfg,
		Logger:        log,
		Store:         store,
		State:         containers,
		Metrics:       metrics,
		Notifications: notes,
		Persistence:   persistence,
		Schedule:      service.NewScheduleService(containers.Schedule, notes, validate, metrics, svcLog),
		Classes:       service.NewClassService(containers.Classes, notes, ids, validate, metrics, svcLog),
		Students:      service.NewStudentService(containers.Classes, notes, ids, validate, metrics, svcLog),
		Tasks:         service.NewTaskService(containers.Tasks, notes, ids, validate, metrics, svcLog),
		Settings:      service.NewSettingsService(containers.Settings, containers.Theme, validate, metrics, svcLog),
		Reports:       reports,
		Exports: service.NewExportService(containers.Schedule, containers.Classes, reports, service.ExportConfig{
			Enabled:     cfg.Exports.Enabled,
			PDFFontPath: cfg.Exports.PDFFontPath,
		}, svcLog),
		Views:  service.NewViewService(containers, reports),
		closer: closer,
	}
}

// Router builds the gin engine with middleware and every route mounted.
func (a *App) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(a.Logger))
	r.Use(corsmiddleware.New(a.Config.CORS.AllowedOrigins))
	if a.Config.Metrics.Enabled {
		r.Use(internalmiddleware.Metrics(a.Metrics))
	}

	handler.RegisterRoutes(r, a.Config.APIPrefix, handler.Handlers{
		Views:         handler.NewViewHandler(a.Views),
		Schedule:      handler.NewScheduleHandler(a.Schedule),
		Classes:       handler.NewClassHandler(a.Classes),
		Students:      handler.NewStudentHandler(a.Students),
		Tasks:         handler.NewTaskHandler(a.Tasks),
		Settings:      handler.NewSettingsHandler(a.Settings),
		Notifications: handler.NewNotificationHandler(a.Notifications),
		Reports:       handler.NewReportHandler(a.Reports, a.Exports),
		Metrics:       handler.NewMetricsHandler(a.Metrics, a.Store),
	}, a.Config.Metrics.Enabled)

	if a.Config.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	return r
}

// Close detaches persistence, drops pending notifications and releases the store.
func (a *App) Close() error {
	a.Persistence.Stop()
	a.Notifications.Close()
	if a.closer != nil {
		return a.closer.Close()
	}
	return nil
}
