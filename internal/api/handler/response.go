package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/arizon-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/arizon-dashboard-api/internal/usecases/recording"
	"github.com/vfg2006/arizon-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/arizon-dashboard-api/pkg/log"
	"github.com/vfg2006/arizon-dashboard-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// handleServiceError converte os erros tipados dos serviços na resposta padronizada
func handleServiceError(w http.ResponseWriter, err error, fallback string) {
	var recErr *recording.RecordError
	if errors.As(err, &recErr) {
		details := map[string]any{}
		if recErr.Month != "" {
			details["month"] = recErr.Month
		}
		if recErr.Week != nil {
			details["week"] = *recErr.Week
		}
		if len(details) == 0 {
			details = nil
		}
		apiErrors.WriteError(w, recErr.Code, recErr.Error(), details)
		return
	}

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		var details map[string]any
		if authErr.Email != "" {
			details = map[string]any{"email": authErr.Email}
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), details)
		return
	}

	logrus.WithError(err).Error(fallback)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}

func monthParam(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("month")
}

func weekParam(r *http.Request) (int, error) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("week")
	week, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "semana inválida %q", raw)
	}
	return week, nil
}

// auditLog identifica o operador autenticado nas alterações do painel
func auditLog(r *http.Request) log.Logger {
	logger := log.ForContext(r.Context())
	if operator, ok := middleware.OperatorFromContext(r.Context()); ok {
		logger = logger.WithField("user_email", operator.OperatorEmail)
	}
	return logger
}
