package commands

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/campuscal/planner/internal/config"
	"github.com/campuscal/planner/internal/logger"
	"github.com/campuscal/planner/internal/planner"
	"github.com/campuscal/planner/internal/storage"
)

// app wires config, logger, gateway, and repositories for one command run.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	gateway storage.Gateway
	planner *planner.Planner
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.DebugMode)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	gateway, err := storage.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	return &app{
		cfg:     cfg,
		log:     log,
		gateway: gateway,
		planner: planner.New(gateway, log),
	}, nil
}

func (a *app) close() {
	if err := a.gateway.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close storage: %v\n", err)
	}
	_ = logger.Sync(a.log)
}

// ctx returns a context bounded by the configured storage timeout.
func (a *app) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), a.cfg.StorageTimeout)
}
