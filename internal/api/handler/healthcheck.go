package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/fernando-m-vale/superseller-ia-sub001/pkg/log"
)

const healthcheckTimeout = 2 * time.Second

// Pinger é satisfeito por *postgres.Connection
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthcheckResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Time     string `json:"time"`
}

// HealthcheckHandler responde 503 quando o banco não responde dentro do timeout
func HealthcheckHandler(db Pinger, clock Clock) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
		defer cancel()

		response := HealthcheckResponse{
			Status:   "ok",
			Database: "up",
			Time:     clock().UTC().Format(time.RFC3339),
		}

		if err := db.Ping(ctx); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("healthcheck: banco de dados indisponível")
			response.Status = "unavailable"
			response.Database = "down"
			writeJSON(w, r, http.StatusServiceUnavailable, response)
			return
		}

		writeJSON(w, r, http.StatusOK, response)
	})
}
