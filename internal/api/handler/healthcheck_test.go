package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error { return f.err }

func TestHealthcheckHandler(t *testing.T) {
	tests := []struct {
		name     string
		pinger   fakePinger
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Banco disponível - 200",
			pinger: fakePinger{},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				var response HealthcheckResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
				assert.Equal(t, HealthcheckResponse{Status: "ok", Database: "up", Time: "2026-01-31T12:00:00Z"}, response)
			},
		},
		{
			name:   "Banco indisponível - 503",
			pinger: fakePinger{err: errors.New("connection refused")},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
				var response HealthcheckResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
				assert.Equal(t, "unavailable", response.Status)
				assert.Equal(t, "down", response.Database)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HealthcheckHandler(tt.pinger, fixedClock).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
			tt.validate(t, rec)
		})
	}
}
