package handler

import (
	"fmt"
	"strconv"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"

	"poolup/internal/models"
	"poolup/internal/services"
)

func paramID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errorx.Wrap(fmt.Errorf("invalid %s id", name), errorx.Invalid)
	}
	return id, nil
}

type groupPool struct {
	container *do.Injector
}

type createPoolRequest struct {
	Name          string `json:"name"`
	Destination   string `json:"destination"`
	PoolType      string `json:"pool_type"`
	GoalCents     int64  `json:"goal_cents"`
	CreatorUserID int64  `json:"creator_user_id"`
}

func (gr *groupPool) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req createPoolRequest
	if err := c.Bind(&req); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
	}

	servicePool, err := do.Invoke[*services.ServicePool](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	pool, err := servicePool.CreatePool(ctx, &models.Pool{
		Name:        req.Name,
		Destination: req.Destination,
		PoolType:    req.PoolType,
		GoalCents:   req.GoalCents,
	}, req.CreatorUserID)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, pool, nil)
}

type joinPoolRequest struct {
	UserID int64 `json:"user_id"`
}

func (gr *groupPool) Join(c echo.Context) error {
	ctx := c.Request().Context()

	poolID, err := paramID(c, "pool")
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	var req joinPoolRequest
	if err := c.Bind(&req); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
	}

	servicePool, err := do.Invoke[*services.ServicePool](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	membership, err := servicePool.JoinPool(ctx, poolID, req.UserID)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, membership, nil)
}

func (gr *groupPool) Show(c echo.Context) error {
	ctx := c.Request().Context()

	poolID, err := paramID(c, "pool")
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	servicePool, err := do.Invoke[*services.ServicePool](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	pool, err := servicePool.FindPool(ctx, poolID)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, pool, nil)
}
