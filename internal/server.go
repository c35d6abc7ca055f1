package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cristiannav/swapstyle-backend/internal/config"
	"github.com/cristiannav/swapstyle-backend/internal/datastore/postgres"
	redisClient "github.com/cristiannav/swapstyle-backend/internal/datastore/redis"
	"github.com/cristiannav/swapstyle-backend/internal/logger"
	"github.com/cristiannav/swapstyle-backend/internal/middleware"
	"github.com/cristiannav/swapstyle-backend/internal/notifier"
	"github.com/cristiannav/swapstyle-backend/internal/realtime"
	chatRepo "github.com/cristiannav/swapstyle-backend/internal/repository/chat"
	eventRepo "github.com/cristiannav/swapstyle-backend/internal/repository/event"
	garmentRepo "github.com/cristiannav/swapstyle-backend/internal/repository/garment"
	matchRepo "github.com/cristiannav/swapstyle-backend/internal/repository/match"
	notificationRepo "github.com/cristiannav/swapstyle-backend/internal/repository/notification"
	superlikeRepo "github.com/cristiannav/swapstyle-backend/internal/repository/superlike"
	swipeRepo "github.com/cristiannav/swapstyle-backend/internal/repository/swipe"
	userRepo "github.com/cristiannav/swapstyle-backend/internal/repository/user"
	routesV1 "github.com/cristiannav/swapstyle-backend/internal/routes/v1"
	authUseCase "github.com/cristiannav/swapstyle-backend/internal/usecase/auth"
	"github.com/cristiannav/swapstyle-backend/internal/usecase/chat"
	"github.com/cristiannav/swapstyle-backend/internal/usecase/event"
	"github.com/cristiannav/swapstyle-backend/internal/usecase/garment"
	"github.com/cristiannav/swapstyle-backend/internal/usecase/match"
	"github.com/cristiannav/swapstyle-backend/internal/usecase/notification"
	"github.com/cristiannav/swapstyle-backend/internal/usecase/superlike"
	"github.com/cristiannav/swapstyle-backend/internal/usecase/swipe"
	"github.com/cristiannav/swapstyle-backend/pkg/jwt"
	"github.com/labstack/echo"
	"gorm.io/gorm"
)

const (
	swipeRequestsPerMinute = 60
	swipeBurst             = 10
	shutdownTimeout        = 10 * time.Second
)

type Server struct {
	writer     io.Writer
	httpServer *http.Server
	database   *gorm.DB
	hub        *realtime.Hub
	dispatcher *notifier.Dispatcher
	limiter    *middleware.RateLimiter
}

func NewServer(ctx context.Context, w io.Writer, cfg config.IConfig) (*Server, error) {
	database, err := postgres.InitializeDB(
		cfg.Get("POSTGRES_USER"),
		cfg.Get("POSTGRES_PASSWORD"),
		cfg.Get("POSTGRES_DB_NAME"),
		cfg.Get("POSTGRES_HOST"),
		cfg.Get("POSTGRES_PORT"),
	)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	redis := redisClient.NewRedis(cfg.Get("REDIS_HOST") + ":" + cfg.Get("REDIS_PORT"))
	if err := redis.Ping(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	jwt.SetSecret(cfg.Get("JWT_SECRET"))

	hub := realtime.NewHub()

	users := userRepo.New(database)
	garments := garmentRepo.New(database)
	swipes := swipeRepo.New(database)
	matches := matchRepo.New(database)
	superLikes := superlikeRepo.New(database, redis.Client)
	notifications := notificationRepo.New(database, redis.Client)
	chats := chatRepo.New(database)
	events := eventRepo.New(database)

	dispatcher := notifier.NewDispatcher(notifications, hub)

	useCases := routesV1.UseCases{
		Auth:         authUseCase.New(users),
		Garment:      garment.New(garments),
		Swipe:        swipe.New(garments, swipes, matches, dispatcher),
		SuperLike:    superlike.New(garments, superLikes, dispatcher),
		Match:        match.New(matches, garments, dispatcher),
		Chat:         chat.New(chats, matches, dispatcher),
		Notification: notification.New(notifications),
		Event:        event.New(events),
	}

	limiter := middleware.NewRateLimiter(swipeRequestsPerMinute, swipeBurst)

	e := echo.New()
	e.Use(middleware.RequestID())

	server := &Server{
		writer: w,
		httpServer: &http.Server{
			Addr:    ":" + cfg.Get("PORT"),
			Handler: e,
		},
		database:   database,
		hub:        hub,
		dispatcher: dispatcher,
		limiter:    limiter,
	}

	server.RegisterRoutes(e, useCases)
	return server, nil
}

func (s *Server) RegisterRoutes(e *echo.Echo, useCases routesV1.UseCases) {
	e.GET("/healthz", s.handleHealthCheck)
	routesV1.InitV1Routes(e, useCases, s.hub, s.limiter)
}

func (s *Server) StartServer() error {
	fmt.Fprintf(s.writer, "Server starting on %s\n", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)

	s.hub.Close()
	s.limiter.Stop()
	if dispatchErr := s.dispatcher.Shutdown(ctx); dispatchErr != nil && err == nil {
		err = dispatchErr
	}

	return err
}

func (s *Server) handleHealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// Run wires configuration, storage and the HTTP surface together and blocks
// until the context is cancelled or a termination signal arrives.
func Run(ctx context.Context, w io.Writer, args []string) error {
	env := "dev"
	if len(args) > 1 && args[1] != "" {
		env = args[1]
	}

	cfg, err := config.NewConfig(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(logger.Config{
		Level:     cfg.Get("LOG_LEVEL"),
		Format:    cfg.Get("LOG_FORMAT"),
		Component: "swapstyle",
	})

	server, err := NewServer(ctx, w, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := server.StartServer(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
