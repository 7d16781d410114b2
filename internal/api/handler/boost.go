package handler

import (
	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"

	"poolup/internal/services"
)

type groupBoost struct {
	container *do.Injector
}

type peerBoostRequest struct {
	BoosterUserID int64 `json:"booster_user_id"`
	TargetUserID  int64 `json:"target_user_id"`
	AmountCents   int64 `json:"amount_cents"`
}

func (gr *groupBoost) PeerBoost(c echo.Context) error {
	ctx := c.Request().Context()

	poolID, err := paramID(c, "pool")
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	var req peerBoostRequest
	if err := c.Bind(&req); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
	}

	serviceBoost, err := do.Invoke[*services.ServiceBoost](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	result, err := serviceBoost.PeerBoost(ctx, poolID, req.BoosterUserID, req.TargetUserID, req.AmountCents)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, result, nil)
}

type forfeitRequest struct {
	UserID      int64  `json:"user_id"`
	Reason      string `json:"reason"`
	AmountCents int64  `json:"amount_cents"`
}

func (gr *groupBoost) Forfeit(c echo.Context) error {
	ctx := c.Request().Context()

	poolID, err := paramID(c, "pool")
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	var req forfeitRequest
	if err := c.Bind(&req); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
	}

	serviceBoost, err := do.Invoke[*services.ServiceBoost](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	forfeit, err := serviceBoost.Forfeit(ctx, poolID, req.UserID, req.Reason, req.AmountCents)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, map[string]any{"forfeit_id": forfeit.ID}, nil)
}
