package handler

import (
	"net/http"

	"github.com/vfg2006/slack-hot-channels/internal/api/handler/router"
	"github.com/vfg2006/slack-hot-channels/internal/usecases/authenticating"
	"github.com/vfg2006/slack-hot-channels/internal/usecases/ranking"
	"github.com/vfg2006/slack-hot-channels/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(metricsHandler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metricsHandler,
		},
	}
}

func Ranking(service ranking.RankingService, authenticator authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ranking",
			Method:      http.MethodGet,
			Handler:     GetLatestRanking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminAuth(authenticator)},
		},
	}
}

func CronJobs(service CronService, authenticator authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminAuth(authenticator)},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminAuth(authenticator)},
		},
	}
}
