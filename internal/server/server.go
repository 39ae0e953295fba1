package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/smallbiznis/docpress/internal/config"
	documentdomain "github.com/smallbiznis/docpress/internal/document/domain"
	"github.com/smallbiznis/docpress/internal/observability/logger"
	"github.com/smallbiznis/docpress/internal/observability/metrics"
	templatedomain "github.com/smallbiznis/docpress/internal/template/domain"
)

// Module wires the HTTP layer.
var Module = fx.Module("server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server, r *gin.Engine) {
		s.RegisterRoutes(r)
	}),
	fx.Invoke(RunHTTP),
)

// Server exposes template CRUD and document generation over HTTP.
type Server struct {
	cfg         config.Config
	log         *zap.Logger
	db          *gorm.DB
	templateSvc templatedomain.Service
	documentSvc documentdomain.Service
}

type Params struct {
	fx.In

	Cfg         config.Config
	Log         *zap.Logger
	DB          *gorm.DB
	TemplateSvc templatedomain.Service
	DocumentSvc documentdomain.Service
}

func NewServer(p Params) *Server {
	return &Server{
		cfg:         p.Cfg,
		log:         p.Log,
		db:          p.DB,
		templateSvc: p.TemplateSvc,
		documentSvc: p.DocumentSvc,
	}
}

// NewEngine builds the gin engine with recovery, request logging and HTTP
// metrics middleware.
func NewEngine(cfg config.Config, httpMetrics *metrics.HTTPMetrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logger.GinMiddleware(logger.MiddlewareConfig{
		SkipPaths: []string{"/healthz", "/metrics"},
	}))
	engine.Use(metrics.GinMiddleware(httpMetrics))
	return engine
}

// RegisterRoutes attaches every API route.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", s.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		templates := api.Group("/templates")
		templates.POST("", s.CreateTemplate)
		templates.GET("", s.ListTemplates)
		templates.GET("/:id", s.GetTemplateByID)
		templates.PATCH("/:id", s.UpdateTemplate)
		templates.DELETE("/:id", s.DeleteTemplate)
		templates.POST("/:id/default", s.SetDefaultTemplate)
		templates.POST("/:id/elements", s.AddTemplateElement)
		templates.PATCH("/:id/elements/:elementId", s.UpdateTemplateElement)
		templates.DELETE("/:id/elements/:elementId", s.RemoveTemplateElement)

		documents := api.Group("/documents")
		documents.POST("/invoice", s.GenerateInvoice)
		documents.POST("/quote", s.GenerateQuote)
		documents.POST("/statement", s.GenerateStatement)
		documents.POST("/:kind/render", s.RenderDocument)
	}
}

// Healthz reports liveness and database reachability.
func (s *Server) Healthz(c *gin.Context) {
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RunHTTP starts the HTTP listener under the fx lifecycle.
func RunHTTP(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("http server shutting down")
			return srv.Shutdown(ctx)
		},
	})
}
