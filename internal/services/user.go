package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/samber/do"
	"github.com/uptrace/bun"

	"poolup/internal/datastore"
	"poolup/internal/models"
	"poolup/internal/pkg/caching"
)

type ServiceUser struct {
	container     *do.Injector
	postgresDB    *bun.DB
	cache         caching.Cache
	readonlyCache caching.ReadOnlyCache
}

func NewServiceUser(container *do.Injector) (*ServiceUser, error) {
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

	return &ServiceUser{container, postgresDB, cache, readonlyCache}, nil
}

func (service *ServiceUser) FindOrCreateUser(ctx context.Context, username, firstName, lastName string) (*models.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, errors.New("username is empty")
	}

	user, err := datastore.FindUserByUsername(ctx, service.postgresDB, username)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	now := time.Now()
	return datastore.CreateUser(ctx, service.postgresDB, &models.User{
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (service *ServiceUser) FindUserByID(ctx context.Context, userID int64) (*models.User, error) {
	callback := func() (*models.User, error) {
		user, err := datastore.FindUserByID(ctx, service.postgresDB, userID)
		if err != nil {
			return nil, storeError(err, ErrUserNotFound)
		}
		user.Level = user.ComputeLevel()
		return user, nil
	}
	return caching.UseCacheWithRO(ctx, service.readonlyCache, service.cache, DBKeyUser(userID), CACHE_TTL_5_MINS, callback)
}

// Profile is the user plus their badge shelf.
func (service *ServiceUser) Profile(ctx context.Context, userID int64) (*models.User, error) {
	user, err := service.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	serviceBadge, err := do.Invoke[*ServiceBadge](service.container)
	if err != nil {
		return nil, err
	}

	badges, err := serviceBadge.ListBadgesByUser(ctx, userID)
	if err == nil {
		user.Badges = badges
	}
	return user, nil
}

func (service *ServiceUser) ClearUserCache(ctx context.Context, userID int64) error {
	return service.cache.Delete(ctx, DBKeyUser(userID))
}
