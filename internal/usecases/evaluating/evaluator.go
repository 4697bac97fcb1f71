// Package evaluating executa todas as etapas do motor sobre uma fotografia já materializada,
// sem banco nem marketplace. Usado pelo avaliador offline.
package evaluating

import (
	"time"

	"github.com/fernando-m-vale/superseller-ia-sub001/internal/domain"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/usecases/benchmarking"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/usecases/hacking"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/usecases/scoring"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/usecases/signaling"
)

// Snapshot é o arquivo de entrada do avaliador
type Snapshot struct {
	Listing          domain.Listing            `json:"listing"`
	Pricing          *domain.ListingPricing    `json:"pricing"`
	Shipping         *domain.ListingShipping   `json:"shipping"`
	PeriodDays       int                       `json:"period_days"`
	DailyMetrics     []domain.DailyMetric      `json:"daily_metrics"`
	AggregateMetrics *domain.MetricsAggregate  `json:"aggregate_metrics"`
	Competitors      []domain.Competitor       `json:"competitors"`
	CategorySample   *domain.CategoryAggregate `json:"category_sample"`
	HackHistory      []domain.HackHistoryEntry `json:"hack_history"`
	NowUTC           *time.Time                `json:"now_utc"`
}

// Report reúne a saída de cada etapa
type Report struct {
	EvaluatedAt  time.Time                `json:"evaluated_at"`
	Score        *domain.ScoreResult      `json:"score"`
	ActionPlan   []domain.ActionPlanItem  `json:"action_plan"`
	Explanations []string                 `json:"explanations"`
	Benchmark    domain.BenchmarkInsights `json:"benchmark"`
	Hacks        domain.HackResult        `json:"hacks"`
	Signals      domain.Signals           `json:"signals"`
}

// Evaluate é determinística: a mesma fotografia e o mesmo now produzem o mesmo relatório
func Evaluate(snapshot Snapshot, now time.Time) Report {
	now = now.UTC()

	periodDays := snapshot.PeriodDays
	if periodDays <= 0 {
		periodDays = scoring.DefaultPeriodDays
	}

	metrics := loadMetrics(snapshot, periodDays, now)
	score := scoring.ComputeScore(scoring.ScoreInput{
		Listing:    snapshot.Listing,
		Metrics:    metrics,
		PeriodDays: periodDays,
	})

	media := &domain.MediaInfo{
		PicturesCount: snapshot.Listing.PicturesCount,
		HasClips:      snapshot.Listing.HasClips,
	}

	categoryID := ""
	if snapshot.Listing.CategoryID != nil {
		categoryID = *snapshot.Listing.CategoryID
	}

	var competitors []domain.Competitor
	sample := domain.CategoryAggregate{}
	if categoryID != "" {
		competitors = snapshot.Competitors
		if snapshot.CategorySample != nil {
			sample = *snapshot.CategorySample
		}
	}

	stats := benchmarking.CalculateBenchmarkStats(competitors)
	baseline := benchmarking.BaselineFromSample(categoryID, sample)

	// os hacks e as lacunas usam sempre a janela de 30 dias
	metrics30d := loadMetrics(snapshot, hacking.HackPeriodDays, now)

	signals := signaling.Build(
		snapshot.Listing,
		snapshot.Pricing,
		snapshot.Shipping,
		&metrics30d,
		benchmarking.CategoryBenchmarkFrom(stats, baseline),
	)

	history := snapshot.HackHistory
	if history == nil {
		history = []domain.HackHistoryEntry{}
	}

	return Report{
		EvaluatedAt:  now,
		Score:        score,
		ActionPlan:   scoring.GenerateActionPlan(score.Breakdown, score.DataQuality, &score.PotentialGain, media),
		Explanations: scoring.ExplainScore(score.Breakdown, score.DataQuality, media),
		Benchmark: domain.BenchmarkInsights{
			Stats:        stats,
			Baseline:     baseline,
			CriticalGaps: benchmarking.RankGaps(snapshot.Listing, signaling.ResolvePricing(snapshot.Listing, snapshot.Pricing), stats, &baseline, &metrics30d),
		},
		Hacks: hacking.GenerateHacks(domain.HackInput{
			Signals: signals,
			History: history,
			NowUTC:  now,
		}),
		Signals: signals,
	}
}

// loadMetrics aplica a mesma janela [início, fim) usada pelo repositório
func loadMetrics(snapshot Snapshot, periodDays int, now time.Time) domain.MetricsAggregate {
	start, end := scoring.MetricsWindow(now, periodDays)

	days := make([]domain.DailyMetric, 0, len(snapshot.DailyMetrics))
	for _, day := range snapshot.DailyMetrics {
		if day.Date.Before(start) || !day.Date.Before(end) {
			continue
		}
		days = append(days, day)
	}

	return scoring.AggregateDailyMetrics(days, snapshot.AggregateMetrics, periodDays)
}
