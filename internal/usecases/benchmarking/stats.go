// Package benchmarking agrega a amostra de concorrentes, calcula a conversão de referência
// do tenant e ranqueia as lacunas competitivas do anúncio
package benchmarking

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fernando-m-vale/superseller-ia-sub001/internal/domain"
)

const (
	minBaselineListings      = 30
	minBaselineVisits        = 1000
	highConfidenceListings   = 50
	highConfidenceVisits     = 5000
	mediumConfidenceListings = minBaselineListings
	mediumConfidenceVisits   = minBaselineVisits
)

// CalculateBenchmarkStats resume a amostra de concorrentes. Amostra vazia devolve tudo zerado.
func CalculateBenchmarkStats(competitors []domain.Competitor) domain.BenchmarkStats {
	stats := domain.BenchmarkStats{SampleSize: len(competitors)}
	if len(competitors) == 0 {
		return stats
	}

	pictures := make([]float64, 0, len(competitors))
	prices := make([]float64, 0, len(competitors))
	titleLengths := make([]float64, 0, len(competitors))
	withVideo := 0

	for _, competitor := range competitors {
		pictures = append(pictures, float64(competitor.PicturesCount))
		titleLengths = append(titleLengths, float64(titleLength(competitor.Title)))

		if competitor.Price > 0 {
			prices = append(prices, competitor.Price)
		}

		// apenas concorrentes com vídeo detectável entram no percentual
		if !competitor.HasVideo.IsUnknown() {
			stats.VideoDetectableCount++
			if competitor.HasVideo.IsTrue() {
				withVideo++
			}
		}
	}

	stats.MedianPicturesCount = median(pictures)
	stats.MedianTitleLength = median(titleLengths)
	stats.MedianPrice = median(prices)
	stats.P25Price = percentile(prices, 0.25)
	stats.P75Price = percentile(prices, 0.75)

	if stats.VideoDetectableCount > 0 {
		stats.PercentageWithVideo = float64(withVideo) / float64(stats.VideoDetectableCount) * 100
	}

	return stats
}

// BaselineFromSample calcula a conversão de referência a partir dos agregados do tenant.
// Amostra insuficiente devolve ConversionRate nil e confiança "unavailable".
func BaselineFromSample(categoryID string, sample domain.CategoryAggregate) domain.BaselineConversion {
	baseline := domain.BaselineConversion{
		CategoryID:  categoryID,
		Confidence:  domain.ConfidenceUnavailable,
		SampleSize:  sample.ListingsCount,
		TotalVisits: sample.Visits,
		TotalOrders: sample.Orders,
	}

	if sample.ListingsCount < minBaselineListings || sample.Visits < minBaselineVisits {
		return baseline
	}

	rate := float64(sample.Orders) / float64(sample.Visits)
	baseline.ConversionRate = &rate

	switch {
	case sample.ListingsCount >= highConfidenceListings && sample.Visits >= highConfidenceVisits:
		baseline.Confidence = domain.ConfidenceHigh
	case sample.ListingsCount >= mediumConfidenceListings && sample.Visits >= mediumConfidenceVisits:
		baseline.Confidence = domain.ConfidenceMedium
	default:
		baseline.Confidence = domain.ConfidenceLow
	}

	return baseline
}

// CategoryBenchmarkFrom monta o benchmark de categoria anexado aos sinais
func CategoryBenchmarkFrom(stats domain.BenchmarkStats, baseline domain.BaselineConversion) *domain.CategoryBenchmark {
	benchmark := &domain.CategoryBenchmark{
		BaselineConversionRate: baseline.ConversionRate,
		BaselineConfidence:     baseline.Confidence,
		BaselineSampleSize:     baseline.SampleSize,
	}

	if stats.MedianPrice > 0 {
		medianPrice, p25, p75 := stats.MedianPrice, stats.P25Price, stats.P75Price
		benchmark.MedianPrice = &medianPrice
		benchmark.P25Price = &p25
		benchmark.P75Price = &p75
	}

	return benchmark
}

func titleLength(title string) int {
	return utf8.RuneCountInString(strings.TrimSpace(title))
}

func median(values []float64) float64 {
	return percentile(values, 0.5)
}

// percentile usa interpolação linear entre as posições ordenadas
func percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}

	pos := p * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}

	weight := pos - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
