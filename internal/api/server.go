// Package api exposes the analysis engine over HTTP.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/tradecast/internal/analysis"
	"github.com/yourusername/tradecast/internal/config"
	"github.com/yourusername/tradecast/internal/metrics"
)

// Server wires the HTTP routes to the analysis engine.
type Server struct {
	cfg      *config.Config
	logger   *logrus.Logger
	analyzer *analysis.Analyzer
	cache    *analysis.ResultCache
	server   *http.Server
}

// NewServer creates the API server. The result cache is only constructed
// when enabled in config.
func NewServer(cfg *config.Config, logger *logrus.Logger, analyzer *analysis.Analyzer) *Server {
	var resultCache *analysis.ResultCache
	if cfg.Analysis.CacheEnabled {
		resultCache = analysis.NewResultCache(cfg.CacheTTL())
	}
	return &Server{
		cfg:      cfg,
		logger:   logger,
		analyzer: analyzer,
		cache:    resultCache,
	}
}

// Router builds the gin engine with all routes and middleware.
func (s *Server) Router() *gin.Engine {
	if s.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.corsMiddleware())
	router.Use(s.requestLogger())
	router.Use(s.rateLimiter())
	router.Use(instrument())

	router.GET("/health", s.health)
	router.POST("/upload", s.upload)
	router.POST("/analyze", s.analyze)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	return router
}

// Start runs the HTTP server until the context is cancelled, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Server.Port),
		Handler:      s.Router(),
		ReadTimeout:  time.Duration(s.cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(s.cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithFields(logrus.Fields{
			"port":    s.cfg.Server.Port,
			"service": s.cfg.App.Name,
		}).Info("API server starting")

		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return s.Shutdown()
	}
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown() error {
	if s.server == nil {
		return nil
	}

	s.logger.Info("API server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(s.cfg.Server.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

func (s *Server) corsMiddleware() gin.HandlerFunc {
	origins := s.cfg.Server.CORSAllowedOrigins
	if len(origins) == 0 {
		// The browser client may be served from anywhere.
		return cors.Default()
	}
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = origins
	return cors.New(corsCfg)
}

func returnErrorJSON(c *gin.Context, code int, err error) {
	c.AbortWithStatusJSON(code, gin.H{"error": err.Error()})
}
