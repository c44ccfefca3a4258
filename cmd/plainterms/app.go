package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/plainterms/plainterms/internal/config"
	"github.com/plainterms/plainterms/internal/logging"
	"github.com/plainterms/plainterms/internal/render"
	"github.com/plainterms/plainterms/internal/store"
)

// app holds the wired dependencies shared by every subcommand.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	db     *store.DB
	render *render.Renderer
}

// newApp loads config, builds the logger, connects the store and parses the
// templates. The returned cleanup must run before exit.
func newApp(ctx context.Context) (*app, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	log, err := logging.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		return nil, nil, err
	}

	db, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		_ = log.Sync()
		return nil, nil, err
	}

	var renderer *render.Renderer
	if cfg.Dev() && cfg.TemplateDir != "" {
		renderer, err = render.NewFromDir(cfg.Chrome, cfg.TemplateDir)
	} else {
		renderer, err = render.New(cfg.Chrome)
	}
	if err != nil {
		db.Close()
		_ = log.Sync()
		return nil, nil, err
	}

	cleanup := func() {
		db.Close()
		_ = log.Sync()
	}
	return &app{cfg: cfg, log: log, db: db, render: renderer}, cleanup, nil
}
