package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/arizon-dashboard-api/internal/usecases/recording"
)

type HealthcheckResponse struct {
	Status      string `json:"status"`
	Time        string `json:"time"`
	LoadedWeeks int    `json:"loadedWeeks"`
}

// HealthcheckHandler responde sem autenticação com o total de semanas carregadas
func HealthcheckHandler(recorder recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := HealthcheckResponse{
			Status:      "ok",
			Time:        time.Now().UTC().Format(time.RFC3339),
			LoadedWeeks: recorder.Progress().Loaded,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logrus.WithError(err).Warn("erro ao responder o healthcheck")
		}
	})
}
