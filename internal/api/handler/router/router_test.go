package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernando-m-vale/superseller-ia-sub001/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// trace registra no cabeçalho a ordem em que os middlewares rodaram
func trace(name string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Header.Add("X-Trace", name)
			next.ServeHTTP(w, r)
		})
	}
}

var traceHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte(strings.Join(r.Header.Values("X-Trace"), ",")))
})

func TestRouter(t *testing.T) {
	rt := New(
		WithRoutes(Route{Path: "/healthcheck", Method: http.MethodGet, Handler: traceHandler}),
		WithGroup("/v1", []Middleware{trace("grupo")},
			Route{Path: "/listings/:id/score", Method: http.MethodGet, Handler: traceHandler},
			Route{Path: "/cron/status", Method: http.MethodGet, Handler: traceHandler, Middlewares: []Middleware{trace("rota")}},
		),
	)

	tests := []struct {
		name     string
		method   string
		path     string
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Rota na raiz - sem middlewares de grupo",
			method: http.MethodGet,
			path:   "/healthcheck",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Empty(t, rec.Body.String())
			},
		},
		{
			name:   "Rota do grupo - prefixo aplicado",
			method: http.MethodGet,
			path:   "/v1/listings/L1/score",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "grupo", rec.Body.String())
			},
		},
		{
			name:   "Middlewares do grupo antes dos da rota",
			method: http.MethodGet,
			path:   "/v1/cron/status",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "grupo,rota", rec.Body.String())
			},
		},
		{
			name:   "Sem prefixo - rota inexistente RTE_001",
			method: http.MethodGet,
			path:   "/listings/L1/score",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, rec.Code)
				var apiErr apiErrors.APIError
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
				assert.Equal(t, apiErrors.ErrRouteNotFound, apiErr.Code)
			},
		},
		{
			name:   "Método errado - RTE_002",
			method: http.MethodPost,
			path:   "/v1/listings/L1/score",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
				var apiErr apiErrors.APIError
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
				assert.Equal(t, apiErrors.ErrMethodNotAllowed, apiErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			tt.validate(t, rec)
		})
	}
}
