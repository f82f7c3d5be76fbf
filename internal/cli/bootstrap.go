package cli

import (
	"fmt"
	"log/slog"

	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/bond"
	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/config"
	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/engine"
	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/state"
	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/templates"
)

// Bootstrap builds an App from cfg. With persistence on it opens the
// database, restores the last committed vector and replays template
// additions. The returned close func releases the database.
func Bootstrap(cfg config.Config, logger *slog.Logger) (*App, func() error, error) {
	app := &App{Config: cfg, Logger: logger}
	noop := func() error { return nil }

	if !cfg.Persist {
		app.Engine = engine.New(engine.Options{Logger: logger})
		return app, noop, nil
	}

	store, err := state.NewStore(cfg.DBPath)
	if err != nil {
		return nil, noop, fmt.Errorf("opening database: %w", err)
	}
	repo, err := templates.NewRepo(store.DB())
	if err != nil {
		store.Close()
		return nil, noop, err
	}
	bonds, err := bond.NewStore(store.DB())
	if err != nil {
		store.Close()
		return nil, noop, err
	}

	e := engine.New(engine.Options{
		History:   store,
		Additions: repo,
		Bonds:     bonds,
		Logger:    logger,
	})

	rec, found, err := store.GetCurrent()
	if err != nil {
		logger.Warn("restore state failed", "error", err)
	} else if found {
		e.Seed(rec.Vector)
		logger.Debug("state restored", "version", rec.VersionID, "derived_at", rec.Vector.DerivedAt)
	}

	adds, err := repo.All()
	if err != nil {
		logger.Warn("load template additions failed", "error", err)
	}
	if n := e.Replay(adds); n > 0 {
		logger.Debug("template additions replayed", "count", n)
	}

	app.Engine = e
	app.History = store
	return app, store.Close, nil
}
