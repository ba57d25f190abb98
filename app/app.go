package app

import (
	"context"

	"log/slog"

	"github.com/jekabolt/grbpwr-community/config"
	httpapi "github.com/jekabolt/grbpwr-community/internal/api/http"
	"github.com/jekabolt/grbpwr-community/internal/dependency"
	"github.com/jekabolt/grbpwr-community/internal/mail"
	"github.com/jekabolt/grbpwr-community/internal/store"
)

// App is the main application
type App struct {
	hs     *httpapi.Server
	rep    dependency.Records
	mailer dependency.Mailer
	c      *config.Config
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c: c,
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting community signup service")

	a.rep, err = store.New(&a.c.Records)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't open record book",
			slog.String("err", err.Error()),
		)
		return err
	}

	a.mailer, err = mail.New(&a.c.Mailer)
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed to create mailer",
			slog.String("err", err.Error()),
		)
		return err
	}

	// start API server
	a.hs = httpapi.New(&a.c.HTTP, a.rep, a.mailer)
	if err = a.hs.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		return err
	}

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		_ = a.hs.Stop(ctx)
	}
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() <-chan struct{} {
	return a.hs.Done()
}
