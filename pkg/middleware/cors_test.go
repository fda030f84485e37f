package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCors(t *testing.T) {
	tests := []struct {
		name           string
		allowed        []string
		origin         string
		method         string
		wantAllowed    string
		wantStatus     int
		wantNextCalled bool
	}{
		{
			name:           "Origem permitida",
			allowed:        []string{"http://localhost:5173"},
			origin:         "http://localhost:5173",
			method:         http.MethodGet,
			wantAllowed:    "http://localhost:5173",
			wantStatus:     http.StatusTeapot,
			wantNextCalled: true,
		},
		{
			name:           "Curinga libera qualquer origem",
			allowed:        []string{"*"},
			origin:         "https://painel.arizon.com",
			method:         http.MethodGet,
			wantAllowed:    "https://painel.arizon.com",
			wantStatus:     http.StatusTeapot,
			wantNextCalled: true,
		},
		{
			name:           "Barra final na configuração é ignorada",
			allowed:        []string{" http://localhost:5173/ "},
			origin:         "http://localhost:5173",
			method:         http.MethodGet,
			wantAllowed:    "http://localhost:5173",
			wantStatus:     http.StatusTeapot,
			wantNextCalled: true,
		},
		{
			name:           "Origem não permitida",
			allowed:        []string{"http://localhost:5173"},
			origin:         "https://outro.site",
			method:         http.MethodGet,
			wantStatus:     http.StatusTeapot,
			wantNextCalled: true,
		},
		{
			name:        "Preflight responde sem chamar o próximo",
			allowed:     []string{"http://localhost:5173"},
			origin:      "http://localhost:5173",
			method:      http.MethodOptions,
			wantAllowed: "http://localhost:5173",
			wantStatus:  http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(tt.method, "/v1/months", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.allowed)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNextCalled, nextCalled)
			assert.Equal(t, tt.wantAllowed, rec.Header().Get("Access-Control-Allow-Origin"))
			if tt.wantAllowed != "" {
				assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
			}
		})
	}
}
