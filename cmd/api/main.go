package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/menro-ph/waste-api/api/swagger"
	"github.com/menro-ph/waste-api/internal/handler"
	"github.com/menro-ph/waste-api/internal/middleware"
	"github.com/menro-ph/waste-api/internal/service"
	"github.com/menro-ph/waste-api/internal/store/memory"
	"github.com/menro-ph/waste-api/internal/store/postgres"
	"github.com/menro-ph/waste-api/pkg/config"
	"github.com/menro-ph/waste-api/pkg/database"
	"github.com/menro-ph/waste-api/pkg/logger"
	corsmiddleware "github.com/menro-ph/waste-api/pkg/middleware/cors"
	reqidmiddleware "github.com/menro-ph/waste-api/pkg/middleware/requestid"
	"github.com/menro-ph/waste-api/pkg/storage"
)

// @title MENRO Waste Management API
// @version 1.0.0
// @description Municipal waste management backend
// @BasePath /api
// @schemes http

// stores groups the per-entity persistence views behind one wiring point so
// main can swap the memory store for Postgres on configuration alone.
type stores struct {
	residents     service.ResidentStore
	reports       service.WasteReportStore
	schedules     service.ScheduleStore
	routes        service.RouteStore
	education     service.EducationStore
	notifications service.NotificationStore
	users         service.UserStore
}

func memoryStores(cfg *config.Config) stores {
	var db *memory.Store
	if cfg.Storage.SeedDemoData {
		db = memory.NewSeeded()
	} else {
		db = memory.New()
	}
	return stores{
		residents:     db.Residents(),
		reports:       db.WasteReports(),
		schedules:     db.Schedules(),
		routes:        db.Routes(),
		education:     db.Education(),
		notifications: db.Notifications(),
		users:         db.Users(),
	}
}

func postgresStores(db *sqlx.DB) stores {
	return stores{
		residents:     postgres.NewResidentRepository(db),
		reports:       postgres.NewWasteReportRepository(db),
		schedules:     postgres.NewScheduleRepository(db),
		routes:        postgres.NewRouteRepository(db),
		education:     postgres.NewEducationRepository(db),
		notifications: postgres.NewNotificationRepository(db),
		users:         postgres.NewUserRepository(db),
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	var st stores
	var db *sqlx.DB
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		db, err = database.NewPostgres(cfg.Database)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
		}
		defer db.Close() //nolint:errcheck
		st = postgresStores(db)
	default:
		st = memoryStores(cfg)
	}

	uploads, err := storage.NewLocalStorage(cfg.Uploads.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init uploads storage", "error", err)
	}

	validate := validator.New()

	residents := service.NewResidentService(st.residents, validate, logr)
	reports := service.NewWasteReportService(st.reports, validate, logr)
	schedules := service.NewScheduleService(st.schedules, validate, logr)
	routes := service.NewRouteService(st.routes, validate, logr)
	education := service.NewEducationService(st.education, validate, logr)
	notifications := service.NewNotificationService(st.notifications, validate, logr)
	dashboard := service.NewDashboardService(st.routes, st.schedules, st.reports, st.residents, cfg.Dashboard, logr)
	exports := service.NewExportService(st.reports, logr)
	metrics := service.NewMetricsService()

	handlers := &handler.Set{
		Residents:     handler.NewResidentHandler(residents),
		WasteReports:  handler.NewWasteReportHandler(reports, uploads, cfg.Uploads.PublicPath),
		Export:        handler.NewExportHandler(exports),
		Schedules:     handler.NewScheduleHandler(schedules),
		Routes:        handler.NewRouteHandler(routes),
		Education:     handler.NewEducationHandler(education),
		Notifications: handler.NewNotificationHandler(notifications),
		Dashboard:     handler.NewDashboardHandler(dashboard),
	}
	metricsHandler := handler.NewMetricsHandler(metrics)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	handlers.Register(r.Group(cfg.APIPrefix))
	r.Static(cfg.Uploads.PublicPath, uploads.Dir())

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if db != nil {
			if err := db.Ping(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Info("server starting",
		zap.String("addr", addr),
		zap.String("env", cfg.Env),
		zap.String("storage", cfg.Storage.Driver))
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
