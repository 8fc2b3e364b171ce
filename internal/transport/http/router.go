package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"blogapi/internal/handler"
	"blogapi/internal/httputil"
	"blogapi/internal/metrics"
	authmw "blogapi/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	AuthHandler   *handler.AuthHandler
	UserHandler   *handler.UserHandler
	PostHandler   *handler.PostHandler
	ReplyHandler  *handler.ReplyHandler
	FollowHandler *handler.FollowHandler
	FeedHandler   *handler.FeedHandler

	TokenResolver authmw.TokenResolver
	// LoginLimiter throttles POST /token. Nil disables throttling.
	LoginLimiter authmw.Limiter
	Metrics      *metrics.Metrics
	Logger       *zap.Logger
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(authmw.RequestLogger(cfg.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(httputil.MaxBodyBytes))
	if cfg.Metrics != nil {
		r.Use(authmw.Metrics(cfg.Metrics))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteNotFound(w, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics.Handler())
	}

	requireAuth := authmw.AuthMiddleware(cfg.TokenResolver, cfg.Logger)

	r.Group(func(r chi.Router) {
		if cfg.LoginLimiter != nil {
			r.Use(authmw.RateLimit(cfg.LoginLimiter, loginRejectedCounter(cfg.Metrics), cfg.Logger))
		}
		r.Post("/token", cfg.AuthHandler.Token)
	})

	r.Route("/user", func(r chi.Router) {
		r.Post("/", cfg.UserHandler.Register)

		r.With(requireAuth).Get("/me", cfg.UserHandler.Me)
		r.With(requireAuth).Delete("/me", cfg.UserHandler.DeleteMe)

		r.With(requireAuth).Post("/follow/{id}", cfg.FollowHandler.Follow)
		r.With(requireAuth).Delete("/follow/{id}", cfg.FollowHandler.Unfollow)

		r.Get("/{id}", cfg.UserHandler.GetByID)
		r.Get("/{id}/posts", cfg.PostHandler.ListByUser)
		r.Get("/{id}/replies", cfg.ReplyHandler.ListByUser)
		r.Get("/{id}/followers", cfg.FollowHandler.GetFollowers)
		r.Get("/{id}/following", cfg.FollowHandler.GetFollowing)
	})

	r.Route("/post", func(r chi.Router) {
		r.With(requireAuth).Post("/", cfg.PostHandler.Create)

		r.Get("/{id}", cfg.PostHandler.GetByID)
		r.With(requireAuth).Put("/{id}", cfg.PostHandler.Update)
		r.With(requireAuth).Delete("/{id}", cfg.PostHandler.Delete)

		r.With(requireAuth).Post("/{id}/reply", cfg.ReplyHandler.Create)
		r.Get("/{id}/replies", cfg.ReplyHandler.ListByPost)
	})

	r.Route("/reply", func(r chi.Router) {
		r.Get("/{id}", cfg.ReplyHandler.GetByID)
		r.With(requireAuth).Put("/{id}", cfg.ReplyHandler.Update)
		r.With(requireAuth).Delete("/{id}", cfg.ReplyHandler.Delete)
	})

	r.Route("/posts", func(r chi.Router) {
		r.Get("/recent", cfg.FeedHandler.Recent)
		r.With(requireAuth).Get("/following", cfg.FeedHandler.Following)
	})

	return r
}

// loginRejectedCounter returns nil when metrics are disabled.
func loginRejectedCounter(m *metrics.Metrics) prometheus.Counter {
	if m == nil {
		return nil
	}
	return m.LoginAttempts.WithLabelValues(metrics.LoginThrottled)
}
