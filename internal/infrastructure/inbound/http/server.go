package http_server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	blog_service "blog-service/internal/domain/ports/input/blog"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/config"
	blog_http "blog-service/internal/infrastructure/inbound/http/blog"
	"blog-service/internal/infrastructure/inbound/http/middleware"
)

type Server struct {
	server *http.Server
	log    ports.Logger
}

func NewServer(cfg config.HTTPServer, blogService blog_service.Service, log ports.Logger, metrics ports.MetricsProvider) *Server {
	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Address, cfg.Port),
			Handler:      NewRouter(blogService, log, metrics),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		log: log,
	}
}

// NewRouter builds the engine with the full middleware chain. Recovery sits
// inside the logger so panics are logged with their final status.
//
// Routes match on the escaped path so an encoded slash stays inside a single
// path parameter; parameters are unescaped before handlers see them.
func NewRouter(blogService blog_service.Service, log ports.Logger, metrics ports.MetricsProvider) *gin.Engine {
	r := gin.New()
	r.UseRawPath = true
	r.UnescapePathValues = true
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.Metrics(metrics),
		middleware.Recovery(log),
		middleware.ErrorHandler(log),
	)

	blog_http.NewBlogAPI(blogService, log).Register(r)
	return r
}

func (s *Server) Run() error {
	s.log.Info("Starting HTTP server", slog.String("address", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
