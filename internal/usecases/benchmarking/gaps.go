package benchmarking

import (
	"fmt"
	"math"
	"sort"

	"github.com/fernando-m-vale/superseller-ia-sub001/internal/domain"
	"github.com/fernando-m-vale/superseller-ia-sub001/pkg/utils"
)

const (
	MaxCriticalGaps = 3

	highConfidenceSampleSize = 10
	videoAdoptionThreshold   = 50.0
	titleDeviationThreshold  = 0.20
	promoDiscountThreshold   = 30.0
	promoMinVisits           = 150
)

const (
	GapImagesID            = "gap_images"
	GapVideoID             = "gap_video"
	GapTitleShortID        = "gap_title_short"
	GapTitleLongID         = "gap_title_long"
	GapConversionVsPromoID = "gap_conversion_vs_promo"
)

// RankGaps gera as lacunas candidatas, ordena por impacto (desc), esforço (asc) e
// confiança (desc), e mantém no máximo 3. pricing deve vir de signaling.ResolvePricing,
// a mesma origem de preço e desconto usada nos sinais.
func RankGaps(
	listing domain.Listing,
	pricing domain.ListingPricing,
	stats domain.BenchmarkStats,
	baseline *domain.BaselineConversion,
	metrics30d *domain.MetricsAggregate,
) []domain.CriticalGap {
	candidates := make([]domain.CriticalGap, 0, 4)

	if gap, ok := imagesGap(listing, stats); ok {
		candidates = append(candidates, gap)
	}
	if gap, ok := videoGap(listing, stats); ok {
		candidates = append(candidates, gap)
	}
	if gap, ok := titleGap(listing, stats); ok {
		candidates = append(candidates, gap)
	}
	if gap, ok := conversionVsPromoGap(pricing, baseline, metrics30d); ok {
		candidates = append(candidates, gap)
	}

	SortGaps(candidates)

	if len(candidates) > MaxCriticalGaps {
		candidates = candidates[:MaxCriticalGaps]
	}

	return candidates
}

// SortGaps aplica a ordenação canônica das lacunas
func SortGaps(gaps []domain.CriticalGap) {
	sort.SliceStable(gaps, func(i, j int) bool {
		a, b := gaps[i], gaps[j]
		if a.Impact.Rank() != b.Impact.Rank() {
			return a.Impact.Rank() > b.Impact.Rank()
		}
		// menor esforço primeiro
		if a.Effort.Rank() != b.Effort.Rank() {
			return a.Effort.Rank() < b.Effort.Rank()
		}
		return a.Confidence.Rank() > b.Confidence.Rank()
	})
}

func sampleConfidence(sampleSize int) domain.Level {
	if sampleSize >= highConfidenceSampleSize {
		return domain.LevelHigh
	}
	return domain.LevelMedium
}

func imagesGap(listing domain.Listing, stats domain.BenchmarkStats) (domain.CriticalGap, bool) {
	if listing.PicturesCount == nil || stats.MedianPicturesCount <= 0 {
		return domain.CriticalGap{}, false
	}

	pictures := *listing.PicturesCount
	if float64(pictures) >= stats.MedianPicturesCount {
		return domain.CriticalGap{}, false
	}

	return domain.CriticalGap{
		ID:        GapImagesID,
		Dimension: domain.GapDimensionImages,
		Title:     "Menos imagens que a concorrência",
		WhyItMatters: fmt.Sprintf("Seu anúncio tem %d imagens e a mediana da categoria é %.0f. Galerias completas aumentam a confiança e a conversão.",
			pictures, stats.MedianPicturesCount),
		Impact:     domain.LevelHigh,
		Effort:     domain.LevelLow,
		Confidence: sampleConfidence(stats.SampleSize),
		Metrics: map[string]float64{
			"pictures_count":        float64(pictures),
			"median_pictures_count": stats.MedianPicturesCount,
			"sample_size":           float64(stats.SampleSize),
		},
	}, true
}

// videoGap segue o tri-state de clip: desconhecido vira "verificar", nunca "sem vídeo"
func videoGap(listing domain.Listing, stats domain.BenchmarkStats) (domain.CriticalGap, bool) {
	if stats.PercentageWithVideo <= videoAdoptionThreshold {
		return domain.CriticalGap{}, false
	}

	metrics := map[string]float64{
		"percentage_with_video":  stats.PercentageWithVideo,
		"video_detectable_count": float64(stats.VideoDetectableCount),
	}

	switch listing.HasClips {
	case domain.TriStateTrue:
		return domain.CriticalGap{}, false
	case domain.TriStateFalse:
		return domain.CriticalGap{
			ID:        GapVideoID,
			Dimension: domain.GapDimensionVideo,
			Title:     "Concorrentes usam clip e seu anúncio não",
			WhyItMatters: fmt.Sprintf("%.0f%% dos concorrentes com vídeo detectável usam clip. O clip aumenta o tempo de permanência e a conversão.",
				stats.PercentageWithVideo),
			Impact:     domain.LevelHigh,
			Effort:     domain.LevelMedium,
			Confidence: sampleConfidence(stats.VideoDetectableCount),
			Metrics:    metrics,
		}, true
	default:
		return domain.CriticalGap{
			ID:        GapVideoID,
			Dimension: domain.GapDimensionVideo,
			Title:     "Verifique se o anúncio possui clip",
			WhyItMatters: fmt.Sprintf("%.0f%% dos concorrentes com vídeo detectável usam clip. Não foi possível confirmar o clip do seu anúncio via API; verifique no painel do Mercado Livre.",
				stats.PercentageWithVideo),
			Impact:     domain.LevelMedium,
			Effort:     domain.LevelLow,
			Confidence: domain.LevelLow,
			Metrics:    metrics,
		}, true
	}
}

func titleGap(listing domain.Listing, stats domain.BenchmarkStats) (domain.CriticalGap, bool) {
	if stats.MedianTitleLength <= 0 {
		return domain.CriticalGap{}, false
	}

	length := float64(titleLength(listing.Title))
	deviation := (length - stats.MedianTitleLength) / stats.MedianTitleLength
	if math.Abs(deviation) <= titleDeviationThreshold {
		return domain.CriticalGap{}, false
	}

	metrics := map[string]float64{
		"title_length":        length,
		"median_title_length": stats.MedianTitleLength,
		"deviation_percent":   utils.RoundTo(deviation*100, 2),
	}

	if deviation < 0 {
		return domain.CriticalGap{
			ID:        GapTitleShortID,
			Dimension: domain.GapDimensionTitle,
			Title:     "Título mais curto que a concorrência",
			WhyItMatters: fmt.Sprintf("Seu título tem %.0f caracteres contra a mediana de %.0f. Inclua marca, modelo e atributos buscados pelos compradores.",
				length, stats.MedianTitleLength),
			Impact:     domain.LevelMedium,
			Effort:     domain.LevelLow,
			Confidence: domain.LevelMedium,
			Metrics:    metrics,
		}, true
	}

	return domain.CriticalGap{
		ID:        GapTitleLongID,
		Dimension: domain.GapDimensionTitle,
		Title:     "Título mais longo que a concorrência",
		WhyItMatters: fmt.Sprintf("Seu título tem %.0f caracteres contra a mediana de %.0f. Títulos objetivos facilitam a leitura nos resultados de busca.",
			length, stats.MedianTitleLength),
		Impact:     domain.LevelLow,
		Effort:     domain.LevelLow,
		Confidence: domain.LevelMedium,
		Metrics:    metrics,
	}, true
}

// conversionVsPromoGap exige baseline disponível; sem ela nunca compara conversões
func conversionVsPromoGap(
	pricing domain.ListingPricing,
	baseline *domain.BaselineConversion,
	metrics30d *domain.MetricsAggregate,
) (domain.CriticalGap, bool) {
	if !pricing.HasPromotion || pricing.DiscountPercent == nil || *pricing.DiscountPercent < promoDiscountThreshold {
		return domain.CriticalGap{}, false
	}
	if !baseline.Available() {
		return domain.CriticalGap{}, false
	}
	if metrics30d == nil || metrics30d.Visits == nil || *metrics30d.Visits < promoMinVisits || metrics30d.ConversionRate == nil {
		return domain.CriticalGap{}, false
	}

	conversion := *metrics30d.ConversionRate
	baselineRate := *baseline.ConversionRate
	if conversion >= baselineRate {
		return domain.CriticalGap{}, false
	}

	return domain.CriticalGap{
		ID:        GapConversionVsPromoID,
		Dimension: domain.GapDimensionPrice,
		Title:     "Promoção forte sem conversão equivalente",
		WhyItMatters: fmt.Sprintf("Mesmo com %.0f%% de desconto, a conversão de %.2f%% está abaixo da referência de %.2f%% dos seus anúncios na categoria. O problema provavelmente não é preço.",
			*pricing.DiscountPercent, conversion*100, baselineRate*100),
		Impact:     domain.LevelHigh,
		Effort:     domain.LevelMedium,
		Confidence: domain.Level(baseline.Confidence),
		Metrics: map[string]float64{
			"discount_percent":         *pricing.DiscountPercent,
			"conversion_rate":          conversion,
			"baseline_conversion_rate": baselineRate,
			"visits":                   float64(*metrics30d.Visits),
		},
	}, true
}
