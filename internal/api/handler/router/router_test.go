package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(
		WithRoutes(Route{
			Path:   "/v1/months/:month",
			Method: http.MethodGet,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, "handler")
				_, _ = w.Write([]byte(httprouter.ParamsFromContext(r.Context()).ByName("month")))
			}),
			Middlewares: []func(http.Handler) http.Handler{tag("primeiro"), tag("segundo")},
		}),
		WithNotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})),
		WithMethodNotAllowed(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		})),
	)

	t.Run("Middlewares na ordem declarada", func(t *testing.T) {
		order = nil
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/months/Marzo", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Marzo", rec.Body.String())
		assert.Equal(t, []string{"primeiro", "segundo", "handler"}, order)
	})

	t.Run("Caminho sem rota", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/anos", nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("Método não registrado", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/months/Marzo", nil))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Rotas registradas", func(t *testing.T) {
		routes := rt.Routes()
		assert.Len(t, routes, 1)
		routes[0].Path = "alterado"
		assert.Equal(t, "/v1/months/:month", rt.Routes()[0].Path)
	})
}
