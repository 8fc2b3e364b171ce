package http

import (
	"context"
	"errors"
	"fmt"
	stdhttp "net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"blogapi/internal/config"
	"blogapi/internal/database"
	"blogapi/internal/handler"
	"blogapi/internal/metrics"
	"blogapi/internal/redis"
	"blogapi/internal/repository"
	"blogapi/internal/service"
	authmw "blogapi/internal/transport/http/middleware"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

// Repositories is the storage the HTTP layer runs against.
type Repositories struct {
	Users   repository.UserRepository
	Posts   repository.PostRepository
	Replies repository.ReplyRepository
	Follows repository.FollowRepository
}

func NewSQLRepositories(db *sqlx.DB) Repositories {
	return Repositories{
		Users:   repository.NewUserRepository(db),
		Posts:   repository.NewPostRepository(db),
		Replies: repository.NewReplyRepository(db),
		Follows: repository.NewFollowRepository(db),
	}
}

// NewHandler builds services and handlers on top of repos and returns the
// routed application. limiter and m may be nil.
func NewHandler(cfg *config.Config, repos Repositories, limiter authmw.Limiter, m *metrics.Metrics, logger *zap.Logger) stdhttp.Handler {
	authService := service.NewAuthService(repos.Users, cfg, logger)
	userService := service.NewUserService(repos.Users, logger)
	postService := service.NewPostService(repos.Posts, repos.Users, logger)
	replyService := service.NewReplyService(repos.Replies, repos.Posts, repos.Users, logger)
	followService := service.NewFollowService(repos.Follows, repos.Users, logger)
	feedService := service.NewFeedService(repos.Posts)

	return NewRouter(RouterConfig{
		AuthHandler:   handler.NewAuthHandler(authService, m, logger),
		UserHandler:   handler.NewUserHandler(userService, logger),
		PostHandler:   handler.NewPostHandler(postService, logger),
		ReplyHandler:  handler.NewReplyHandler(replyService, logger),
		FollowHandler: handler.NewFollowHandler(followService, logger),
		FeedHandler:   handler.NewFeedHandler(feedService, logger),
		TokenResolver: authService,
		LoginLimiter:  limiter,
		Metrics:       m,
		Logger:        logger,
	})
}

// Run connects to the database (and Redis when configured), serves HTTP and
// shuts down gracefully once ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	db, err := database.Connect(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	var limiter authmw.Limiter
	if cfg.RedisURL != "" {
		rdb, err := redis.NewClient(cfg.RedisURL)
		if err != nil {
			return err
		}
		defer rdb.Close()

		if err := rdb.Ping(ctx); err != nil {
			return err
		}
		limiter = redis.NewFixedWindowLimiter(rdb.Client, "login", cfg.LoginRateLimit, cfg.LoginRateWindow())
		logger.Info("login throttling enabled",
			zap.Int("limit", cfg.LoginRateLimit),
			zap.Duration("window", cfg.LoginRateWindow()),
		)
	} else {
		logger.Warn("REDIS_URL not set, login throttling disabled")
	}

	srv := &stdhttp.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           NewHandler(cfg, NewSQLRepositories(db), limiter, metrics.New(), logger),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("server exited")
	return nil
}
