package handler

import (
	"net/http"

	"github.com/vfg2006/arizon-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/arizon-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/arizon-dashboard-api/internal/usecases/classifying"
	"github.com/vfg2006/arizon-dashboard-api/internal/usecases/recording"
	"github.com/vfg2006/arizon-dashboard-api/pkg/middleware"
)

const (
	maxJSONBodySize   = 1 << 20
	maxBackupBodySize = 10 << 20
)

func limitBody(limit int64) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{middleware.MaxBodySize(limit)}
}

func Healthcheck(recorder recording.Recorder) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(recorder),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/login",
			Method:      http.MethodPost,
			Handler:     Login(service),
			Middlewares: limitBody(maxJSONBodySize),
		},
	}
}

func Months(service recording.Recorder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/months",
			Method:  http.MethodGet,
			Handler: ListMonths(service),
		},
		{
			Path:    "/v1/months/:month",
			Method:  http.MethodGet,
			Handler: GetMonth(service),
		},
		{
			Path:    "/v1/months/:month/consolidated",
			Method:  http.MethodGet,
			Handler: GetMonthConsolidated(service),
		},
		{
			Path:        "/v1/months/:month/meta",
			Method:      http.MethodPut,
			Handler:     UpdateMonthMeta(service),
			Middlewares: limitBody(maxJSONBodySize),
		},
		{
			Path:    "/v1/year/consolidated",
			Method:  http.MethodGet,
			Handler: GetYearConsolidated(service),
		},
	}
}

func Weeks(service recording.Recorder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/validate",
			Method:      http.MethodPost,
			Handler:     ValidateWeek(service),
			Middlewares: limitBody(maxJSONBodySize),
		},
		{
			Path:        "/v1/months/:month/weeks/:week",
			Method:      http.MethodPut,
			Handler:     SubmitWeek(service),
			Middlewares: limitBody(maxJSONBodySize),
		},
		{
			Path:        "/v1/months/:month/weeks/:week/duplicate",
			Method:      http.MethodPost,
			Handler:     DuplicateWeek(service),
			Middlewares: limitBody(maxJSONBodySize),
		},
		{
			Path:    "/v1/weeks",
			Method:  http.MethodGet,
			Handler: ListWeeks(service),
		},
		{
			Path:    "/v1/progress",
			Method:  http.MethodGet,
			Handler: GetProgress(service),
		},
	}
}

func UndoRoutes(service recording.Recorder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/undo",
			Method:  http.MethodPost,
			Handler: Undo(service),
		},
		{
			Path:    "/v1/undo",
			Method:  http.MethodGet,
			Handler: GetUndoStatus(service),
		},
	}
}

func KPIs(recorder recording.Recorder, classifier classifying.Classifier) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/kpis",
			Method:  http.MethodGet,
			Handler: GetKPIBoard(recorder, classifier),
		},
		{
			Path:    "/v1/kpis/:name/status",
			Method:  http.MethodGet,
			Handler: GetKPIStatus(classifier),
		},
	}
}

func Backup(service recording.Recorder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/backup/export",
			Method:  http.MethodGet,
			Handler: ExportBackup(service),
		},
		{
			Path:        "/v1/backup/import",
			Method:      http.MethodPost,
			Handler:     ImportBackup(service),
			Middlewares: limitBody(maxBackupBodySize),
		},
	}
}

func CronJobs(jobs CronJobRegistry) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/run/:type",
			Method:  http.MethodPost,
			Handler: RunCronJob(jobs),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(jobs),
		},
	}
}
