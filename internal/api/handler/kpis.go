package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/arizon-dashboard-api/internal/domain"
	"github.com/vfg2006/arizon-dashboard-api/internal/usecases/classifying"
	"github.com/vfg2006/arizon-dashboard-api/internal/usecases/recording"
	"github.com/vfg2006/arizon-dashboard-api/pkg/apiErrors"
)

// GetKPIBoard monta os indicadores de um mês ou da visão anual. Sem period usa a visão anual.
func GetKPIBoard(recorder recording.Recorder, classifier classifying.Classifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period := r.URL.Query().Get("period")
		if period == "" {
			period = domain.YearViewLabel
		}

		var (
			board *domain.KPIBoard
			err   error
		)
		if period == domain.YearViewLabel {
			board, err = classifier.Board(domain.YearView, recorder.Year(), nil)
		} else {
			board, err = monthBoard(recorder, classifier, period)
		}
		if err != nil {
			handleServiceError(w, err, "Erro ao montar indicadores")
			return
		}

		writeJSON(w, http.StatusOK, board)
	}
}

func monthBoard(recorder recording.Recorder, classifier classifying.Classifier, month string) (*domain.KPIBoard, error) {
	current, err := recorder.Consolidated(month)
	if err != nil {
		return nil, err
	}

	var previous *domain.Consolidated
	if i := domain.MonthIndex(month); i > 0 {
		previous, err = recorder.Consolidated(domain.MonthLabels[i-1])
		if err != nil {
			return nil, err
		}
	}

	return classifier.Board(domain.MonthView, current, previous)
}

// GetKPIStatus classifica um valor avulso de um KPI
func GetKPIStatus(classifier classifying.Classifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("name")

		raw := r.URL.Query().Get("value")
		if raw == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro value é obrigatório", nil)
			return
		}
		value, ok := domain.ParseNumber(raw)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro value deve ser numérico", nil)
			return
		}

		writeJSON(w, http.StatusOK, classifier.Classify(name, value))
	}
}
