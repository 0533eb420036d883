package container

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"petshop/catalog/internal/client"
	"petshop/catalog/internal/config"
	"petshop/catalog/internal/journal"
	"petshop/catalog/internal/service"
	"petshop/catalog/internal/state"
	"petshop/catalog/internal/store"
	"petshop/catalog/internal/validation"
)

// Container holds all initialized components
type Container struct {
	Config       *config.Config
	Gateway      client.Gateway
	Journal      journal.Journal
	StateManager state.StateManager

	Service *service.Service

	redis *redis.Client
}

// New creates a new container with all dependencies initialized. Redis is
// optional; without it there is no view resume and no journal.
func New(ctx context.Context, cfg *config.Config, confirmer store.Confirmer) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	gateway := client.NewGateway(cfg.API)
	container.Gateway = gateway

	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})

		// Test connection
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Debug("✅ Connected to Redis successfully")

		container.redis = rdb
		container.Journal = journal.NewRedisJournal(rdb, cfg.Redis)
		container.StateManager = state.NewRedisStateManager(rdb, cfg.Redis.KeyPrefix)
	}

	container.Service = service.NewService(
		client.NewCategoryAPI(gateway),
		client.NewSizeAPI(gateway),
		validation.New(),
		container.StateManager,
		container.Journal,
		confirmer,
		cfg.List.PageSize,
	)

	return container, nil
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	if c.redis == nil {
		return nil
	}
	if err := c.redis.Close(); err != nil {
		return fmt.Errorf("failed to close Redis client: %w", err)
	}
	return nil
}
