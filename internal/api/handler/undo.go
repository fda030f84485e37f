package handler

import (
	"net/http"

	"github.com/vfg2006/arizon-dashboard-api/internal/usecases/recording"
	"github.com/vfg2006/arizon-dashboard-api/pkg/log"
)

func Undo(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slot, record, err := service.Undo(r.Context())
		if err != nil {
			handleServiceError(w, err, "Erro ao desfazer alteração")
			return
		}

		auditLog(r).WithFields(log.Fields{"month": slot.Month, "week": slot.Week}).Info("Undo: semana restaurada")

		writeJSON(w, http.StatusOK, weekResponse(service, slot.Month, slot.Week, record))
	}
}

func GetUndoStatus(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.UndoStatus())
	}
}
