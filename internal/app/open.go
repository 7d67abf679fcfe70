package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/idilsaglam/todomvc/internal/config"
	"github.com/idilsaglam/todomvc/internal/store"
	"github.com/idilsaglam/todomvc/internal/store/diskvstore"
	"github.com/idilsaglam/todomvc/internal/store/jsonstore"
	"github.com/idilsaglam/todomvc/internal/store/memstore"
	"github.com/idilsaglam/todomvc/internal/store/sqlitestore"
)

// OpenBackend builds the backend named by cfg.Backend.
func OpenBackend(ctx context.Context, cfg config.Config, log *slog.Logger) (store.Backend, error) {
	switch cfg.Backend {
	case config.BackendDiskv:
		return diskvstore.Open(cfg.Path)
	case config.BackendJSON:
		return jsonstore.Open(cfg.Path, jsonstore.WithLogger(log))
	case config.BackendSQLite:
		return sqlitestore.Open(ctx, cfg.Path)
	case config.BackendMemory:
		return memstore.New(), nil
	}
	return nil, fmt.Errorf("%w: unknown backend %q", config.ErrInvalid, cfg.Backend)
}

// Open wires the configured backend, the slot and the service together. The
// returned close function releases the backend.
func Open(ctx context.Context, cfg config.Config, log *slog.Logger) (*Service, func() error, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	log = log.With("backend", cfg.Backend)
	b, err := OpenBackend(ctx, cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s backend: %w", cfg.Backend, err)
	}
	svc := New(ctx, store.NewSlot(b, cfg.Key, log), log)
	return svc, b.Close, nil
}
