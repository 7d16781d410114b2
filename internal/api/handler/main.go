package handler

import (
	"net/http"

	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/samber/do"
)

type Config struct {
	Container *do.Injector
	Mode      string
	Origins   []string
}

func New(cfg *Config) (http.Handler, error) {
	r := echo.New()
	r.Pre(middleware.RemoveTrailingSlash())
	if cfg.Mode == "debug" {
		r.Debug = true
		pprof.Register(r)
	}

	r.JSONSerializer = httpx.SegmentJSONSerializer{}
	r.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339}\t${method}\t${uri}\t${status}\t${latency_human}\n",
	}))
	r.Use(middleware.Recover())

	r.GET("", func(c echo.Context) error {
		return c.String(http.StatusOK, "🐷")
	})

	routesAPIv1 := r.Group("/api/v1")
	{
		cors := middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     cfg.Origins,
			AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
			AllowCredentials: true,
			MaxAge:           60 * 60,
		})
		routesAPIv1.Use(cors)

		p := groupPool{cfg.Container}
		routesAPIv1.POST("/pools", p.Create)
		routesAPIv1.GET("/pools/:pool", p.Show)
		routesAPIv1.POST("/pools/:pool/join", p.Join)

		cn := groupContribution{cfg.Container}
		routesAPIv1.POST("/pools/:pool/contributions", cn.Record)

		b := groupBoost{cfg.Container}
		routesAPIv1.POST("/pools/:pool/boosts", b.PeerBoost)
		routesAPIv1.POST("/pools/:pool/forfeits", b.Forfeit)

		l := groupLeaderboard{cfg.Container}
		routesAPIv1.GET("/pools/:pool/leaderboard", l.GetPoolLeaderboard)

		u := groupUser{cfg.Container}
		routesAPIv1.POST("/users", u.Create)
		routesAPIv1.GET("/users/:user", u.Profile)
		routesAPIv1.POST("/users/:user/interest", u.Accrue)
	}

	return r, nil
}
