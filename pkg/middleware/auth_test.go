package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/arizon-dashboard-api/internal/domain"
	"github.com/vfg2006/arizon-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/arizon-dashboard-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/arizon-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	claims := &domain.Claims{OperatorEmail: "operador@arizon.com"}

	tests := []struct {
		name       string
		method     string
		path       string
		header     string
		setupMocks func(auth *mocks.MockAuthenticator)
		wantStatus int
		wantCode   string
		wantEmail  string
	}{
		{
			name:       "Rota pública sem token",
			method:     http.MethodPost,
			path:       "/v1/login",
			setupMocks: func(auth *mocks.MockAuthenticator) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Preflight OPTIONS sem token",
			method:     http.MethodOptions,
			path:       "/v1/months",
			setupMocks: func(auth *mocks.MockAuthenticator) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Sem cabeçalho Authorization",
			method:     http.MethodGet,
			path:       "/v1/months",
			setupMocks: func(auth *mocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:       "Cabeçalho sem Bearer",
			method:     http.MethodGet,
			path:       "/v1/months",
			header:     "Basic abc",
			setupMocks: func(auth *mocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:   "Token expirado",
			method: http.MethodGet,
			path:   "/v1/months",
			header: "Bearer velho",
			setupMocks: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("velho").Return(nil, errors.Wrap(authenticating.ErrExpiredToken, "validando"))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrExpiredToken,
		},
		{
			name:   "Token inválido",
			method: http.MethodGet,
			path:   "/v1/months",
			header: "Bearer lixo",
			setupMocks: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("lixo").Return(nil, authenticating.ErrInvalidToken)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:   "Token válido injeta o operador",
			method: http.MethodGet,
			path:   "/v1/months",
			header: "Bearer bom",
			setupMocks: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("bom").Return(claims, nil)
			},
			wantStatus: http.StatusOK,
			wantEmail:  "operador@arizon.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			auth := mocks.NewMockAuthenticator(ctrl)
			tt.setupMocks(auth)

			var gotEmail string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if operator, ok := OperatorFromContext(r.Context()); ok {
					gotEmail = operator.OperatorEmail
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantEmail, gotEmail)

			if tt.wantCode != "" {
				var apiErr apiErrors.APIError
				require.NoError(t, jsoniter.NewDecoder(rec.Body).Decode(&apiErr))
				assert.Equal(t, tt.wantCode, apiErr.Code)
			}
		})
	}
}
