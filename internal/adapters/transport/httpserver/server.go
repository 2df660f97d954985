package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/bnema/todo/internal/application"
	"github.com/bnema/todo/internal/domain"
	"github.com/gin-gonic/gin"
)

const readHeaderTimeout = 10 * time.Second

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// TaskService is the slice of the application the HTTP layer drives.
type TaskService interface {
	AddTask(ctx context.Context, cmd application.AddTaskCommand) error
	ListTasks(ctx context.Context) ([]domain.Task, error)
}

type Options struct {
	Addr            string
	StaticDir       string
	ShutdownTimeout time.Duration
	CORSOrigins     []string
}

type Server struct {
	tasks  TaskService
	opts   Options
	logger *slog.Logger
	engine *gin.Engine
}

func New(tasks TaskService, opts Options, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}

	s := &Server{
		tasks:  tasks,
		opts:   opts,
		logger: logger,
	}
	s.engine = s.newEngine()

	return s
}

func (s *Server) newEngine() *gin.Engine {
	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	engine.Use(requestID(), requestLogger(s.logger), recovery(s.logger))
	if corsMiddleware := newCORS(s.opts.CORSOrigins); corsMiddleware != nil {
		engine.Use(corsMiddleware)
	}

	engine.GET("/tasks", s.listTasks)
	engine.POST("/tasks", s.addTask)

	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	})
	engine.NoRoute(staticFiles(s.opts.StaticDir))

	return engine
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.opts.Addr, err)
	}

	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is cancelled, then drains
// in-flight requests for at most the shutdown timeout.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()

	s.logger.Info("server listening",
		slog.String("addr", listener.Addr().String()),
		slog.String("static_dir", s.opts.StaticDir),
	)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()

	s.logger.Info("server shutting down")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve http: %w", err)
	}

	return nil
}
