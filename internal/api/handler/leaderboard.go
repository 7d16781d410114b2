package handler

import (
	"strconv"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"

	"poolup/internal/models"
	"poolup/internal/services"
)

type groupLeaderboard struct {
	container *do.Injector
}

func (gr *groupLeaderboard) GetPoolLeaderboard(c echo.Context) error {
	ctx := c.Request().Context()

	poolID, err := paramID(c, "pool")
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	serviceLeaderboard, err := do.Invoke[*services.ServiceLeaderboard](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	var user *models.User
	if userParam := c.QueryParam("userId"); userParam != "" {
		userID, err := strconv.ParseInt(userParam, 10, 64)
		if err == nil {
			serviceUser, err := do.Invoke[*services.ServiceUser](gr.container)
			if err == nil {
				user, _ = serviceUser.FindUserByID(ctx, userID)
			}
		}
	}

	response, err := serviceLeaderboard.GetPoolLeaderboard(ctx, poolID, user)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, response, nil)
}
