// Package app wires the store, auth, notification worker and http server
// together.
package app

import (
	"context"

	"log/slog"

	"github.com/tavolaworks/trattoria-manager/config"
	httpapi "github.com/tavolaworks/trattoria-manager/internal/api/http"
	"github.com/tavolaworks/trattoria-manager/internal/apisrv/admin"
	"github.com/tavolaworks/trattoria-manager/internal/apisrv/auth"
	"github.com/tavolaworks/trattoria-manager/internal/apisrv/frontend"
	"github.com/tavolaworks/trattoria-manager/internal/dependency"
	"github.com/tavolaworks/trattoria-manager/internal/notify"
	"github.com/tavolaworks/trattoria-manager/internal/ratelimit"
	"github.com/tavolaworks/trattoria-manager/internal/store"
)

// App is the main application
type App struct {
	hs       *httpapi.Server
	db       dependency.Repository
	notifier dependency.Notifier
	c        *config.Config
	done     chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting trattoria manager")

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql",
			slog.String("err", err.Error()),
		)
		return err
	}

	authS, err := auth.New(&a.c.Auth, a.db.Admin())
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed to create auth server",
			slog.String("err", err.Error()),
		)
		return err
	}

	adminS := admin.New(a.db)
	frontendS := frontend.New(a.db)

	sender, err := notify.NewSender(&a.c.Notify.Sender)
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed to create message sender",
			slog.String("err", err.Error()),
		)
		return err
	}
	a.notifier, err = notify.New(&a.c.Notify, a.db.Notifications(), sender)
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed to create notification worker",
			slog.String("err", err.Error()),
		)
		return err
	}
	if err := a.notifier.Start(ctx); err != nil {
		return err
	}

	a.hs = httpapi.New(&a.c.HTTP)
	if err := a.hs.Start(ctx, authS, adminS, frontendS, ratelimit.NewMultiKeyLimiter()); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		return err
	}

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.notifier != nil {
		if err := a.notifier.Stop(); err != nil {
			slog.Default().ErrorContext(ctx, "can't stop notification worker",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "can't stop http server",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.db != nil {
		a.db.Close()
	}
	close(a.done)
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
