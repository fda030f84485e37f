package handler

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/arizon-dashboard-api/internal/domain"
	"github.com/vfg2006/arizon-dashboard-api/internal/usecases/recording"
	"github.com/vfg2006/arizon-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/arizon-dashboard-api/pkg/log"
)

type ValidateResponse struct {
	Valid  bool                     `json:"valid"`
	Issues []domain.ValidationIssue `json:"issues"`
}

type WeekResponse struct {
	Month        string               `json:"month"`
	Week         int                  `json:"week"`
	Record       *domain.WeekRecord   `json:"record"`
	Consolidated *domain.Consolidated `json:"consolidated,omitempty"`
}

type DuplicateRequest struct {
	TargetMonth string `json:"targetMonth"`
	TargetWeek  *int   `json:"targetWeek"`
	Overwrite   bool   `json:"overwrite"`
}

func ValidateWeek(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var candidate domain.Candidate
		if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		issues := service.Validate(candidate)
		if issues == nil {
			issues = []domain.ValidationIssue{}
		}

		writeJSON(w, http.StatusOK, ValidateResponse{
			Valid:  len(issues) == 0,
			Issues: issues,
		})
	}
}

// SubmitWeek valida e grava a semana. Inconsistências retornam 422 com a lista de problemas.
func SubmitWeek(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month := monthParam(r)
		week, err := weekParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidWeek, err.Error(), nil)
			return
		}

		var candidate domain.Candidate
		if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		record, issues, err := service.SubmitWeek(r.Context(), month, week, candidate)
		if errors.Is(err, recording.ErrValidationFailed) {
			apiErrors.WriteError(w, apiErrors.ErrValidationFailed, err.Error(), map[string]any{
				"issues": issues,
			})
			return
		}
		if err != nil {
			handleServiceError(w, err, "Erro ao gravar semana")
			return
		}

		auditLog(r).WithFields(log.Fields{"month": month, "week": week}).Info("SubmitWeek: semana gravada")
		writeJSON(w, http.StatusOK, weekResponse(service, month, week, record))
	}
}

func DuplicateWeek(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month := monthParam(r)
		week, err := weekParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidWeek, err.Error(), nil)
			return
		}

		var req DuplicateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		if req.TargetMonth == "" || req.TargetWeek == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "targetMonth e targetWeek são obrigatórios", nil)
			return
		}

		source := domain.WeekSlot{Month: month, Week: week}
		target := domain.WeekSlot{Month: req.TargetMonth, Week: *req.TargetWeek}

		record, err := service.DuplicateWeek(r.Context(), source, target, req.Overwrite)
		if err != nil {
			handleServiceError(w, err, "Erro ao duplicar semana")
			return
		}

		writeJSON(w, http.StatusOK, weekResponse(service, target.Month, target.Week, record))
	}
}

func ListWeeks(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filter := domain.WeekFilter{
			Month:        query.Get("month"),
			Completeness: query.Get("completeness"),
			Search:       query.Get("search"),
		}
		if raw := query.Get("week"); raw != "" {
			week, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Semana inválida", nil)
				return
			}
			filter.Week = &week
		}

		summaries, err := service.WeekSummaries(filter)
		if err != nil {
			handleServiceError(w, err, "Erro ao listar semanas")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"month":   filter.Month,
			"results": len(summaries),
		}).Debug("ListWeeks: semanas filtradas")

		writeJSON(w, http.StatusOK, summaries)
	}
}

func weekResponse(service recording.Recorder, month string, week int, record *domain.WeekRecord) WeekResponse {
	resp := WeekResponse{Month: month, Week: week, Record: record}
	if consolidated, err := service.Consolidated(month); err == nil {
		resp.Consolidated = consolidated
	}
	return resp
}
