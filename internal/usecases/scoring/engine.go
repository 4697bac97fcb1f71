// Package scoring calcula o score de qualidade do anúncio, o plano de ação e as explicações
package scoring

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fernando-m-vale/superseller-ia-sub001/internal/domain"
)

const (
	DefaultPeriodDays = 30

	minTitleLength       = 10
	minDescriptionLength = 200

	picturesForFullScore    = 6
	picturesForPartialScore = 3

	// conversão de referência da dimensão de performance
	baselineConversionRate = 0.02
	ctrReference           = 0.02

	seoSemanticPlaceholder     = 10
	competitividadePlaceholder = 5
	completenessDescription    = 30
	completenessMedia          = 30
	completenessDailyMetrics   = 40
	completenessAggregatesOnly = 20
)

// ScoreInput reúne os dados já materializados de uma avaliação
type ScoreInput struct {
	Listing    domain.Listing
	Metrics    domain.MetricsAggregate
	PeriodDays int
}

// ComputeScore calcula o breakdown de 5 dimensões, o ganho potencial e a qualidade dos dados
func ComputeScore(in ScoreInput) *domain.ScoreResult {
	periodDays := in.PeriodDays
	if periodDays <= 0 {
		periodDays = DefaultPeriodDays
	}

	verdict := domain.NewMediaVerdict(in.Listing.HasClips, in.Listing.PicturesCount)

	breakdown := domain.ScoreBreakdown{
		Cadastro:        cadastroScore(in.Listing),
		Midia:           midiaScore(in.Listing, verdict),
		Performance:     performanceScore(in.Metrics),
		SEO:             seoScore(in.Metrics),
		Competitividade: competitividadeScore(),
	}.Clamped()

	dataQuality := buildDataQuality(in.Listing, in.Metrics, periodDays)

	metrics := in.Metrics
	metrics.PeriodDays = periodDays

	return &domain.ScoreResult{
		ListingID:     in.Listing.ID,
		PeriodDays:    periodDays,
		Breakdown:     breakdown,
		Final:         breakdown.Final(),
		PotentialGain: potentialGain(in.Listing, in.Metrics, breakdown, dataQuality, verdict),
		Metrics30d:    metrics,
		DataQuality:   dataQuality,
		MediaVerdict:  verdict,
	}
}

func cadastroScore(listing domain.Listing) int {
	score := 0
	if utf8.RuneCountInString(strings.TrimSpace(listing.Title)) > minTitleLength {
		score += 5
	}
	if utf8.RuneCountInString(strings.TrimSpace(listing.Description)) > minDescriptionLength {
		score += 5
	}
	if listing.CategoryID != nil && strings.TrimSpace(*listing.CategoryID) != "" {
		score += 5
	}
	if listing.Status == domain.ListingStatusActive {
		score += 5
	}
	return score
}

func picturesScore(picturesCount *int) int {
	if picturesCount == nil {
		return 0
	}
	switch {
	case *picturesCount >= picturesForFullScore:
		return 10
	case *picturesCount >= picturesForPartialScore:
		return 5
	}
	return 0
}

// midiaScore só credita o clip com presença confirmada; desconhecido nunca pontua
func midiaScore(listing domain.Listing, verdict domain.MediaVerdict) int {
	score := picturesScore(listing.PicturesCount)
	if verdict.HasClipDetected.IsTrue() {
		score += 10
	}
	return score
}

func performanceScore(metrics domain.MetricsAggregate) int {
	score := 0
	if metrics.Visits != nil && *metrics.Visits > 0 {
		score += 10
	}
	if metrics.Orders != nil && *metrics.Orders > 0 {
		score += 10
	}
	score += rateTier(metrics.ConversionRate, baselineConversionRate)
	return score
}

func seoScore(metrics domain.MetricsAggregate) int {
	return rateTier(metrics.CTR, ctrReference) + seoSemanticPlaceholder
}

// competitividadeScore é fixo até a integração com o benchmark da categoria
func competitividadeScore() int {
	return competitividadePlaceholder
}

// rateTier: >= referência 10, >= metade 5, > 0 2
func rateTier(rate *float64, reference float64) int {
	if rate == nil {
		return 0
	}
	switch {
	case *rate >= reference:
		return 10
	case *rate >= reference/2:
		return 5
	case *rate > 0:
		return 2
	}
	return 0
}

func buildDataQuality(listing domain.Listing, metrics domain.MetricsAggregate, periodDays int) domain.DataQuality {
	hasAggregates := metrics.HasAggregates()

	dq := domain.DataQuality{
		PerformanceAvailable: metrics.HasDailyMetrics || hasAggregates,
		HasDailyMetrics:      metrics.HasDailyMetrics,
		HasAggregates:        hasAggregates,
		VisitsCoverage: domain.VisitsCoverage{
			FilledDays: metrics.FilledVisitDays,
			TotalDays:  periodDays,
		},
		MissingFields: []string{},
	}

	if strings.TrimSpace(listing.Description) != "" {
		dq.CompletenessScore += completenessDescription
	} else {
		dq.MissingFields = append(dq.MissingFields, "description")
	}

	if listing.PicturesCount != nil && *listing.PicturesCount > 0 {
		dq.CompletenessScore += completenessMedia
	} else {
		dq.MissingFields = append(dq.MissingFields, "pictures")
	}

	switch {
	case metrics.HasDailyMetrics:
		dq.CompletenessScore += completenessDailyMetrics
	case hasAggregates:
		dq.CompletenessScore += completenessAggregatesOnly
		dq.MissingFields = append(dq.MissingFields, "daily_metrics")
	default:
		dq.MissingFields = append(dq.MissingFields, "metrics")
	}

	if metrics.Visits == nil {
		dq.MissingFields = append(dq.MissingFields, "visits")
	}

	return dq
}

func potentialGain(
	listing domain.Listing,
	metrics domain.MetricsAggregate,
	breakdown domain.ScoreBreakdown,
	dq domain.DataQuality,
	verdict domain.MediaVerdict,
) domain.PotentialGain {
	gain := domain.PotentialGain{}

	gain.Cadastro = gainHint(domain.DimensionCadastro.Max() - breakdown.Cadastro)

	// ganho de mídia: fotos quando a contagem é conhecida, clip apenas se puder ser sugerido
	midiaGain := 0
	if listing.PicturesCount != nil {
		midiaGain += 10 - picturesScore(listing.PicturesCount)
	}
	if verdict.CanSuggestClip {
		midiaGain += 10
	}
	gain.Midia = gainHint(midiaGain)

	if dq.PerformanceAvailable {
		gain.Performance = gainHint(domain.DimensionPerformance.Max() - breakdown.Performance)
	}

	if metrics.CTR != nil {
		gain.SEO = gainHint(10 - rateTier(metrics.CTR, ctrReference))
	}

	return gain
}

func gainHint(points int) *string {
	if points <= 0 {
		return nil
	}
	hint := fmt.Sprintf("+%d", points)
	return &hint
}
