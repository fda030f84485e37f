package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/arizon-dashboard-api/internal/domain"
	"github.com/vfg2006/arizon-dashboard-api/internal/usecases/recording"
)

type ProgressResponse struct {
	domain.DataProgress
	PendingWeeks int        `json:"pendingWeeks"`
	LastBackupAt *time.Time `json:"lastBackupAt,omitempty"`
}

func GetProgress(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := ProgressResponse{
			DataProgress: service.Progress(),
			PendingWeeks: service.PendingWeeks(),
		}

		last, err := service.LastBackupAt(r.Context())
		if err != nil {
			handleServiceError(w, err, "Erro ao consultar último backup")
			return
		}
		resp.LastBackupAt = last

		writeJSON(w, http.StatusOK, resp)
	}
}
