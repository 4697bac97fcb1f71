package handler

import (
	"net/http"

	"github.com/fernando-m-vale/superseller-ia-sub001/internal/api/handler/router"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/usecases/benchmarking"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/usecases/hacking"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/usecases/scoring"
	"github.com/fernando-m-vale/superseller-ia-sub001/pkg/middleware"
)

// APIPrefix agrupa as rotas autenticadas; o healthcheck fica fora dele
const APIPrefix = "/v1"

// APIMiddlewares valem para todas as rotas de APIPrefix
func APIMiddlewares() []router.Middleware {
	return []router.Middleware{middleware.AllRoles()}
}

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db, utcNow),
		},
	}
}

func Scoring(service scoring.Scorer, defaultPeriodDays int) []router.Route {
	return []router.Route{
		{
			Path:    "/listings/:id/score",
			Method:  http.MethodGet,
			Handler: GetListingScore(service, defaultPeriodDays, utcNow),
		},
		{
			Path:    "/listings/:id/action-plan",
			Method:  http.MethodGet,
			Handler: GetListingActionPlan(service, defaultPeriodDays, utcNow),
		},
		{
			Path:    "/listings/:id/explanation",
			Method:  http.MethodGet,
			Handler: GetListingExplanation(service, defaultPeriodDays, utcNow),
		},
	}
}

func Benchmark(service benchmarking.Benchmarker) []router.Route {
	return []router.Route{
		{
			Path:    "/listings/:id/benchmark",
			Method:  http.MethodGet,
			Handler: GetListingBenchmark(service, utcNow),
		},
	}
}

func Hacks(service hacking.Hacker) []router.Route {
	return []router.Route{
		{
			Path:    "/listings/:id/hacks",
			Method:  http.MethodGet,
			Handler: GetListingHacks(service, utcNow),
		},
		{
			Path:    "/listings/:id/hacks/:hack_id/feedback",
			Method:  http.MethodPost,
			Handler: SubmitHackFeedback(service, utcNow),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []router.Middleware{middleware.AdminOnly()},
		},
		{
			Path:        "/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []router.Middleware{middleware.AdminOnly()},
		},
	}
}
