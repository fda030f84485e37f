package handler

import (
	"net/http"

	"github.com/vfg2006/arizon-dashboard-api/internal/domain"
	"github.com/vfg2006/arizon-dashboard-api/internal/usecases/recording"
	"github.com/vfg2006/arizon-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/arizon-dashboard-api/pkg/log"
)

// MonthResponse é o mês com seu rótulo, já que o bucket não serializa o nome
type MonthResponse struct {
	Month string `json:"month"`
	*domain.MonthBucket
}

func ListMonths(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		months := service.Months()

		resp := make([]MonthResponse, 0, len(months))
		for _, bucket := range months {
			resp = append(resp, MonthResponse{Month: bucket.Name, MonthBucket: bucket})
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func GetMonth(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bucket, err := service.Month(monthParam(r))
		if err != nil {
			handleServiceError(w, err, "Erro ao obter mês")
			return
		}

		writeJSON(w, http.StatusOK, MonthResponse{Month: bucket.Name, MonthBucket: bucket})
	}
}

func GetMonthConsolidated(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		consolidated, err := service.Consolidated(monthParam(r))
		if err != nil {
			handleServiceError(w, err, "Erro ao obter consolidado do mês")
			return
		}

		writeJSON(w, http.StatusOK, consolidated)
	}
}

func GetYearConsolidated(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Year())
	}
}

func UpdateMonthMeta(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month := monthParam(r)

		var meta domain.MonthMeta
		if err := json.NewDecoder(r.Body).Decode(&meta); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("UpdateMonthMeta: corpo inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		bucket, err := service.UpdateMeta(r.Context(), month, meta)
		if err != nil {
			handleServiceError(w, err, "Erro ao atualizar meta do mês")
			return
		}

		writeJSON(w, http.StatusOK, MonthResponse{Month: bucket.Name, MonthBucket: bucket})
	}
}
