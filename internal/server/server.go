package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/orgball2608/mindlink/internal/bookmark"
	"github.com/orgball2608/mindlink/internal/instagram"
	"github.com/orgball2608/mindlink/internal/ratelimit"
	"github.com/orgball2608/mindlink/pkg/config"
	"github.com/orgball2608/mindlink/pkg/logger"
	"go.uber.org/fx"
)

const (
	readTimeout  = 30 * time.Second
	writeTimeout = 60 * time.Second
	idleTimeout  = 120 * time.Second
)

type Opts struct {
	fx.In

	LC        fx.Lifecycle
	Config    *config.Config
	Logger    logger.Logger
	Instagram instagram.Client
	Bookmark  bookmark.Client
	Limiter   ratelimit.Limiter
}

type Server struct {
	server          *http.Server
	addr            string
	logger          logger.Logger
	shutdownTimeout time.Duration
}

func New(opts Opts) *Server {
	if opts.Config.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	log := opts.Logger.WithComponent("HTTPServer")
	handler := NewHandler(opts.Instagram, opts.Bookmark, opts.Logger, opts.Config.IsDevelopment())

	s := &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf(":%d", opts.Config.App.Port),
			Handler:      NewRouter(handler, opts.Limiter, log),
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
		logger:          log,
		shutdownTimeout: opts.Config.App.ShutdownTimeout,
	}

	opts.LC.Append(fx.Hook{
		OnStart: s.Start,
		OnStop:  s.Shutdown,
	})

	return s
}

// Start binds the listening socket and serves in the background.
// Bind errors are returned to the caller.
func (s *Server) Start(context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.server.Addr, err)
	}
	s.addr = ln.Addr().String()

	s.logger.Info("Starting HTTP server", "address", s.addr)
	go s.serve(ln)

	return nil
}

func (s *Server) serve(ln net.Listener) {
	if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("HTTP server failed", "error", err)
	}
}

// Addr is the bound address once Start has returned.
func (s *Server) Addr() string {
	return s.addr
}

// Shutdown waits for in-flight requests up to the configured timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server", "timeout", s.shutdownTimeout)

	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
	}

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.logger.Info("HTTP server stopped gracefully")
	return nil
}
