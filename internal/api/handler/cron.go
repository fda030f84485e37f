package handler

import (
	"net/http"
	"sort"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/arizon-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/arizon-dashboard-api/pkg/log"
)

const CronJobTypeBackup = "backup"

// CronJob é uma rotina agendada que também pode ser disparada pela API
type CronJob interface {
	TriggerManualRun() bool
	GetStatus() map[string]any
}

// CronJobRegistry indexa as rotinas pelo tipo usado na rota
type CronJobRegistry map[string]CronJob

func (reg CronJobRegistry) types() string {
	types := make([]string, 0, len(reg))
	for name := range reg {
		types = append(types, name)
	}
	sort.Strings(types)
	return strings.Join(types, ", ")
}

func RunCronJob(jobs CronJobRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		job, ok := jobs[cronType]
		if !ok || job == nil {
			apiErrors.WriteError(w, apiErrors.ErrUnknownCronType, "Tipo de cron job inválido", map[string]string{
				"accepted": jobs.types(),
			})
			return
		}

		if !job.TriggerManualRun() {
			apiErrors.WriteError(w, apiErrors.ErrSyncRunning, "Cron job já está em execução", map[string]string{
				"type": cronType,
			})
			return
		}

		log.ForContext(r.Context()).WithField("sync_type", cronType).Info("RunCronJob: execução manual iniciada")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

func GetCronStatus(jobs CronJobRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(jobs))
		for name, job := range jobs {
			if job != nil {
				status[name] = job.GetStatus()
			}
		}

		writeJSON(w, http.StatusOK, status)
	}
}
