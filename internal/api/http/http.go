// Package httpapi exposes the auth, frontend and admin handlers over a
// chi router.
package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"

	"github.com/tavolaworks/trattoria-manager/internal/apisrv/admin"
	"github.com/tavolaworks/trattoria-manager/internal/apisrv/auth"
	"github.com/tavolaworks/trattoria-manager/internal/apisrv/frontend"
	"github.com/tavolaworks/trattoria-manager/internal/ratelimit"
)

// Config is the configuration for the http server
type Config struct {
	Port           string   `mapstructure:"port"`
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Server is the http server
type Server struct {
	hs   *http.Server
	c    *Config
	done chan struct{}
}

// New creates a new server
func New(config *Config) *Server {
	return &Server{
		c:    config,
		done: make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Start builds the router and serves it in the background.
func (s *Server) Start(ctx context.Context, authSrv *auth.Server, adminSrv *admin.Server, frontendSrv *frontend.Server, limiter *ratelimit.MultiKeyLimiter) error {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.c.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodOptions,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	h := &handlers{
		auth:     authSrv,
		admin:    adminSrv,
		frontend: frontendSrv,
		limiter:  limiter,
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Mount("/api/auth", h.authRoutes())
	r.Mount("/api/frontend", h.frontendRoutes())
	r.Mount("/api/admin", authSrv.WithAuth(h.adminRoutes()))

	s.hs = &http.Server{
		Addr:    fmt.Sprintf("%s:%s", s.c.Address, s.c.Port),
		Handler: r,
	}

	go func() {
		defer close(s.done)
		slog.Default().InfoContext(ctx, "http server listening",
			slog.String("addr", s.hs.Addr),
		)
		if err := s.hs.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Default().ErrorContext(ctx, "http server exited",
				slog.String("err", err.Error()),
			)
		}
	}()

	return nil
}

// Stop drains in-flight requests and shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	return s.hs.Shutdown(ctx)
}
