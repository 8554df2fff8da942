package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/averra-labs/trainhub/internal/middleware"
	"github.com/averra-labs/trainhub/internal/service"
	"github.com/averra-labs/trainhub/pkg/config"
	"github.com/averra-labs/trainhub/pkg/logger"
	corsmiddleware "github.com/averra-labs/trainhub/pkg/middleware/cors"
	reqidmiddleware "github.com/averra-labs/trainhub/pkg/middleware/requestid"
)

// Handlers bundles every route handler the router mounts.
type Handlers struct {
	Students    *StudentHandler
	Courses     *CourseHandler
	Trainers    *TrainerHandler
	Enrollments *EnrollmentHandler
	Capacity    *CapacityHandler
	Imports     *ImportHandler
	Exports     *ExportHandler
	Metrics     *MetricsHandler
}

// NewRouter assembles the gin engine with the shared middleware chain and
// every route group.
func NewRouter(cfg *config.Config, logr *zap.Logger, metricsSvc *service.MetricsService, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)
	r.GET("/system/metrics", h.Metrics.Snapshot)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	students := api.Group("/students")
	students.GET("", h.Students.List)
	students.POST("", h.Students.Create)
	students.GET("/:id", h.Students.Get)
	students.PUT("/:id", h.Students.Update)
	students.DELETE("/:id", h.Students.Deactivate)
	students.PATCH("/:id/activate", h.Students.Activate)
	students.PATCH("/:id/deactivate", h.Students.Deactivate)

	courses := api.Group("/courses")
	courses.GET("", h.Courses.List)
	courses.POST("", h.Courses.Create)
	courses.GET("/:id", h.Courses.Get)
	courses.PUT("/:id", h.Courses.Update)
	courses.DELETE("/:id", h.Courses.Deactivate)
	courses.PATCH("/:id/activate", h.Courses.Activate)
	courses.PATCH("/:id/deactivate", h.Courses.Deactivate)

	trainers := api.Group("/trainers")
	trainers.GET("", h.Trainers.List)
	trainers.POST("", h.Trainers.Create)
	trainers.GET("/:id", h.Trainers.Get)
	trainers.PUT("/:id", h.Trainers.Update)

	enrollments := api.Group("/enrollments")
	enrollments.GET("", h.Enrollments.List)
	enrollments.POST("", h.Enrollments.Create)
	enrollments.GET("/:id", h.Enrollments.Get)
	enrollments.PATCH("/:id/complete", h.Enrollments.Complete)
	enrollments.PATCH("/:id/cancel", h.Enrollments.Cancel)

	capacity := api.Group("/capacity")
	capacity.GET("", h.Capacity.Report)
	capacity.GET("/warnings", h.Capacity.Warnings)
	capacity.GET("/:kind", h.Capacity.Usage)

	imports := api.Group("/imports")
	imports.POST("/students", h.Imports.Students)
	imports.POST("/courses", h.Imports.Courses)

	exports := api.Group("/exports")
	exports.GET("", h.Exports.List)
	exports.POST("", h.Exports.Create)
	exports.GET("/:id", h.Exports.Get)
	exports.GET("/:id/download", h.Exports.Download)

	return r
}
