package service

import (
	"context"
	"fmt"

	"github.com/jebin2/hfsync/internal/client"
	"github.com/jebin2/hfsync/internal/config"
	"github.com/jebin2/hfsync/internal/db"
	"github.com/jebin2/hfsync/internal/hub"
	"github.com/jebin2/hfsync/internal/logging"
)

// Service wires the sync client, the hub API and the transfer history behind
// the CLI commands. Every failure is logged exactly once, here.
type Service struct {
	cfg    config.Config
	client *client.Client
	db     *db.Database
}

func New(ctx context.Context) (*Service, error) {
	cfg, err := config.Get()
	if err != nil {
		logging.Error("Initialization failed", err)
		return nil, err
	}

	api := hub.NewClient(cfg.Endpoint, cfg.RepoID, cfg.Token)
	c, err := client.New(cfg, api)
	if err != nil {
		logging.Error("Initialization failed", err)
		return nil, err
	}

	d, err := db.New(ctx)
	if err != nil {
		logging.Error("Initialization failed", err)
		return nil, fmt.Errorf("could not open transfer history: %w", err)
	}

	logging.Infof("hfsync initialized using repo: %s", cfg.RepoID)
	return &Service{cfg: cfg, client: c, db: d}, nil
}

func (s *Service) Close() error {
	return s.db.Close()
}
