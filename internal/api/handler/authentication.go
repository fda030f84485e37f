package handler

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/arizon-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/arizon-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/arizon-dashboard-api/pkg/log"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string     `json:"token"`
	TokenType string     `json:"tokenType"`
	Operator  string     `json:"operator"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			handleLoginError(w, r, err)
			return
		}

		resp := LoginResponse{
			Token:     token,
			TokenType: "Bearer",
		}

		// As claims do token recém emitido preenchem operador e expiração
		if claims, err := service.ValidateToken(token); err == nil {
			resp.Operator = claims.OperatorEmail
			if claims.ExpiresAt != nil {
				expiresAt := claims.ExpiresAt.Time
				resp.ExpiresAt = &expiresAt
			}
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func handleLoginError(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithError(err).Warn("Login: falha na autenticação")

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
}
