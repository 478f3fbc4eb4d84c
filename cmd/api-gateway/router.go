package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/training-enrollment-api/internal/handler"
	"github.com/noah-isme/training-enrollment-api/internal/middleware"
	"github.com/noah-isme/training-enrollment-api/pkg/config"
	"github.com/noah-isme/training-enrollment-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/training-enrollment-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/training-enrollment-api/pkg/middleware/requestid"
)

type routes struct {
	requests *handler.TraineeRequestHandler
	roster   *handler.RosterHandler
	trainers *handler.TrainerHandler
	signups  *handler.SignupHandler
	metrics  *handler.MetricsHandler
	tokens   middleware.TokenValidator
	observer middleware.RequestObserver
}

func newRouter(cfg *config.Config, logr *zap.Logger, h routes) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(h.observer))

	r.GET("/health", h.metrics.Health)
	r.GET("/ready", h.metrics.Ready)
	r.GET("/metrics", h.metrics.Prometheus)
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.POST("/request-trainee", h.requests.Submit)
	r.POST("/signup", h.signups.Signup)

	operator := r.Group("/")
	operator.Use(middleware.Optional(cfg.JWT.ProtectOperatorRoutes, h.tokens))

	operator.GET("/trainee-requests", h.requests.ListPending)
	operator.PUT("/approve-trainee/:id", h.requests.Decide)

	operator.GET("/get-trainee", h.roster.List)
	operator.GET("/get-trainee/:id", h.roster.Get)
	operator.PUT("/edit-trainee/:id", h.roster.Update)
	operator.DELETE("/delete-trainee/:id", h.roster.Delete)
	operator.GET("/attendance", h.roster.Attendance)
	operator.GET("/attendance/export", h.roster.Export)

	operator.GET("/get-trainer", h.trainers.List)
	operator.GET("/get-trainer/:id", h.trainers.Get)
	operator.POST("/add-trainer", h.trainers.Create)
	operator.PUT("/edit-trainer/:id", h.trainers.Update)
	operator.DELETE("/delete-trainer/:id", h.trainers.Delete)

	operator.GET("/trainees", h.signups.List)

	return r
}
