package handler

import (
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/fernando-m-vale/superseller-ia-sub001/internal/usecases/benchmarking"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/usecases/hacking"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/usecases/scoring"
	"github.com/fernando-m-vale/superseller-ia-sub001/pkg/apiErrors"
	"github.com/fernando-m-vale/superseller-ia-sub001/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Clock devolve o instante de referência da requisição
type Clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}

// FeedbackRequest é o corpo do feedback de um hack
type FeedbackRequest struct {
	Status string `json:"status"`
}

// periodDays lê o parâmetro period_days; ausente usa o padrão configurado
func periodDays(r *http.Request, defaultDays int) (int, bool) {
	raw := r.URL.Query().Get("period_days")
	if raw == "" {
		return defaultDays, true
	}

	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return days, true
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

func GetListingScore(service scoring.Scorer, defaultPeriodDays int, clock Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listingID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		days, ok := periodDays(r, defaultPeriodDays)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "period_days deve ser um número inteiro", nil)
			return
		}

		result, err := service.CalculateScore(r.Context(), listingID, days, clock())
		if err != nil {
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer, "Erro ao calcular score do anúncio")
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}

func GetListingActionPlan(service scoring.Scorer, defaultPeriodDays int, clock Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listingID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		days, ok := periodDays(r, defaultPeriodDays)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "period_days deve ser um número inteiro", nil)
			return
		}

		plan, err := service.GetActionPlan(r.Context(), listingID, days, clock())
		if err != nil {
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer, "Erro ao gerar plano de ação")
			return
		}

		writeJSON(w, r, http.StatusOK, plan)
	}
}

func GetListingExplanation(service scoring.Scorer, defaultPeriodDays int, clock Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listingID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		days, ok := periodDays(r, defaultPeriodDays)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "period_days deve ser um número inteiro", nil)
			return
		}

		explanations, err := service.GetExplanation(r.Context(), listingID, days, clock())
		if err != nil {
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer, "Erro ao gerar explicação do score")
			return
		}

		writeJSON(w, r, http.StatusOK, explanations)
	}
}

func GetListingBenchmark(service benchmarking.Benchmarker, clock Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listingID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		insights, err := service.GetBenchmarkInsights(r.Context(), listingID, clock())
		if err != nil {
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer, "Erro ao calcular benchmark do anúncio")
			return
		}

		writeJSON(w, r, http.StatusOK, insights)
	}
}

func GetListingHacks(service hacking.Hacker, clock Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listingID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		result, err := service.GetHacks(r.Context(), listingID, clock())
		if err != nil {
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer, "Erro ao gerar hacks do anúncio")
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}

// SubmitHackFeedback registra a confirmação ou o descarte de um hack
func SubmitHackFeedback(service hacking.Hacker, clock Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		listingID := params.ByName("id")
		hackID := params.ByName("hack_id")

		var req FeedbackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.WithError(err).Warn("Corpo de feedback inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
			return
		}

		entry, err := service.SubmitFeedback(r.Context(), listingID, hackID, req.Status, clock())
		if err != nil {
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer, "Erro ao registrar feedback do hack")
			return
		}

		writeJSON(w, r, http.StatusCreated, entry)
	}
}
