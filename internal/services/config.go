package services

import (
	"context"
	"strconv"

	"github.com/samber/do"
	"github.com/uptrace/bun"

	"poolup/internal/datastore"
	"poolup/internal/models"
	"poolup/internal/pkg/caching"
)

type ServiceConfig struct {
	container     *do.Injector
	postgresDB    *bun.DB
	cache         caching.Cache
	readonlyCache caching.ReadOnlyCache
}

func NewServiceConfig(container *do.Injector) (*ServiceConfig, error) {
	postgresDB, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	cache, err := do.Invoke[caching.Cache](container)
	if err != nil {
		return nil, err
	}

	readonlyCache, err := do.Invoke[caching.ReadOnlyCache](container)
	if err != nil {
		return nil, err
	}

	return &ServiceConfig{container, postgresDB, cache, readonlyCache}, nil
}

func (service *ServiceConfig) GetConfig(ctx context.Context, key string) (*models.Config, error) {
	callback := func() (*models.Config, error) {
		return datastore.GetConfigByKey(ctx, service.postgresDB, key)
	}
	return caching.UseCacheWithRO(ctx, service.readonlyCache, service.cache, DBKeyConfig(key), CACHE_TTL_5_MINS, callback)
}

func (service *ServiceConfig) GetIntConfig(ctx context.Context, key string, fallback int) (int, error) {
	config, err := service.GetConfig(ctx, key)
	if err != nil || config == nil {
		return fallback, err
	}

	v, err := strconv.Atoi(config.Value)
	if err != nil {
		return fallback, err
	}
	return v, nil
}

func (service *ServiceConfig) GetStringConfig(ctx context.Context, key string, fallback string) (string, error) {
	config, err := service.GetConfig(ctx, key)
	if err != nil || config == nil || config.Value == "" {
		return fallback, err
	}
	return config.Value, nil
}
