package handler

import (
	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"

	"poolup/internal/models"
	"poolup/internal/services"
)

type groupContribution struct {
	container *do.Injector
}

type recordContributionRequest struct {
	UserID        int64  `json:"user_id"`
	AmountCents   int64  `json:"amount_cents"`
	PaymentMethod string `json:"payment_method"`
	Early         *bool  `json:"early"`
}

func (gr *groupContribution) Record(c echo.Context) error {
	ctx := c.Request().Context()

	poolID, err := paramID(c, "pool")
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	var req recordContributionRequest
	if err := c.Bind(&req); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = models.PaymentMethodManual
	}

	serviceContribution, err := do.Invoke[*services.ServiceContribution](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	result, err := serviceContribution.Record(ctx, poolID, req.UserID, req.AmountCents, req.PaymentMethod, req.Early)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, result, nil)
}
