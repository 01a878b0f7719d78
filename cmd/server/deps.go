package main

import (
	"fmt"

	"github.com/questkeep/hero-api/internal/config"
	"github.com/questkeep/hero-api/internal/orchestrators/equipment"
	"github.com/questkeep/hero-api/internal/redis"
	"github.com/questkeep/hero-api/internal/repositories/catalog"
	"github.com/questkeep/hero-api/internal/repositories/equipped"
	"github.com/questkeep/hero-api/internal/repositories/inventory"
)

// deps holds the wired service graph for a command invocation
type deps struct {
	cfg         *config.Config
	client      redis.Client
	catalogRepo catalog.Repository
	service     equipment.Service
}

func (d *deps) Close() error {
	return d.client.Close()
}

// buildDeps loads configuration and wires the repositories and the
// equipment orchestrator onto a shared Redis client
func buildDeps() (*deps, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	client, err := redis.NewClient(cfg.Redis.Addr(), &redis.Options{
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	catalogRepo, err := catalog.NewRedis(&catalog.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog repository: %w", err)
	}

	equippedStore, err := equipped.NewRedis(&equipped.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create equipped store: %w", err)
	}

	inventoryRepo, err := inventory.NewRedis(&inventory.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory repository: %w", err)
	}

	service, err := equipment.NewOrchestrator(&equipment.Config{
		CatalogRepo:   catalogRepo,
		EquippedStore: equippedStore,
		InventoryRepo: inventoryRepo,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create equipment orchestrator: %w", err)
	}

	return &deps{
		cfg:         cfg,
		client:      client,
		catalogRepo: catalogRepo,
		service:     service,
	}, nil
}
