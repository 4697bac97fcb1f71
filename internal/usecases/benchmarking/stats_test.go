package benchmarking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernando-m-vale/superseller-ia-sub001/internal/domain"
)

func sampleCompetitors() []domain.Competitor {
	return []domain.Competitor{
		{ID: "MLB1", Title: strings.Repeat("a", 10), Price: 100, PicturesCount: 6, HasVideo: domain.TriStateTrue},
		{ID: "MLB2", Title: strings.Repeat("b", 20), Price: 0, PicturesCount: 8, HasVideo: domain.TriStateFalse},
		{ID: "MLB3", Title: strings.Repeat("c", 30), Price: 200, PicturesCount: 10, HasVideo: domain.TriStateUnknown},
		{ID: "MLB4", Title: strings.Repeat("d", 40), Price: 300, PicturesCount: 12, HasVideo: domain.TriStateTrue},
	}
}

func TestCalculateBenchmarkStats(t *testing.T) {
	tests := []struct {
		name        string
		competitors []domain.Competitor
		validate    func(t *testing.T, stats domain.BenchmarkStats)
	}{
		{
			name:        "Amostra vazia - tudo zerado",
			competitors: nil,
			validate: func(t *testing.T, stats domain.BenchmarkStats) {
				assert.Equal(t, domain.BenchmarkStats{}, stats)
			},
		},
		{
			name:        "Amostra mista - vídeo só entre detectáveis e preço só positivo",
			competitors: sampleCompetitors(),
			validate: func(t *testing.T, stats domain.BenchmarkStats) {
				assert.Equal(t, 4, stats.SampleSize)
				assert.Equal(t, 3, stats.VideoDetectableCount)
				assert.InDelta(t, 66.67, stats.PercentageWithVideo, 0.01)
				assert.InDelta(t, 9.0, stats.MedianPicturesCount, 0.0001)
				assert.InDelta(t, 25.0, stats.MedianTitleLength, 0.0001)
				assert.InDelta(t, 200.0, stats.MedianPrice, 0.0001)
				assert.InDelta(t, 150.0, stats.P25Price, 0.0001)
				assert.InDelta(t, 250.0, stats.P75Price, 0.0001)
			},
		},
		{
			name: "Nenhum vídeo detectável - percentual zero",
			competitors: []domain.Competitor{
				{ID: "MLB1", Title: "Panela", Price: 50, PicturesCount: 3},
			},
			validate: func(t *testing.T, stats domain.BenchmarkStats) {
				assert.Equal(t, 0, stats.VideoDetectableCount)
				assert.Equal(t, 0.0, stats.PercentageWithVideo)
				assert.Equal(t, 50.0, stats.MedianPrice)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, CalculateBenchmarkStats(tt.competitors))
		})
	}
}

func TestBaselineFromSample(t *testing.T) {
	tests := []struct {
		name       string
		sample     domain.CategoryAggregate
		confidence domain.BaselineConfidence
		rate       *float64
	}{
		{
			name:       "Poucos anúncios - indisponível",
			sample:     domain.CategoryAggregate{ListingsCount: 29, Visits: 5000, Orders: 100},
			confidence: domain.ConfidenceUnavailable,
		},
		{
			name:       "Poucas visitas - indisponível",
			sample:     domain.CategoryAggregate{ListingsCount: 30, Visits: 999, Orders: 10},
			confidence: domain.ConfidenceUnavailable,
		},
		{
			name:       "No limite mínimo - média",
			sample:     domain.CategoryAggregate{ListingsCount: 30, Visits: 1000, Orders: 20},
			confidence: domain.ConfidenceMedium,
			rate:       floatPtr(0.02),
		},
		{
			name:       "Muitos anúncios com poucas visitas - média",
			sample:     domain.CategoryAggregate{ListingsCount: 80, Visits: 2000, Orders: 20},
			confidence: domain.ConfidenceMedium,
			rate:       floatPtr(0.01),
		},
		{
			name:       "Amostra robusta - alta",
			sample:     domain.CategoryAggregate{ListingsCount: 50, Visits: 5000, Orders: 150},
			confidence: domain.ConfidenceHigh,
			rate:       floatPtr(0.03),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseline := BaselineFromSample("MLB1000", tt.sample)

			assert.Equal(t, "MLB1000", baseline.CategoryID)
			assert.Equal(t, tt.confidence, baseline.Confidence)
			assert.Equal(t, tt.sample.ListingsCount, baseline.SampleSize)
			if tt.rate == nil {
				assert.Nil(t, baseline.ConversionRate)
				assert.False(t, baseline.Available())
				return
			}
			require.NotNil(t, baseline.ConversionRate)
			assert.InDelta(t, *tt.rate, *baseline.ConversionRate, 0.0001)
			assert.True(t, baseline.Available())
		})
	}
}

func TestCategoryBenchmarkFrom(t *testing.T) {
	stats := CalculateBenchmarkStats(sampleCompetitors())
	baseline := BaselineFromSample("MLB1000", domain.CategoryAggregate{ListingsCount: 50, Visits: 5000, Orders: 150})

	benchmark := CategoryBenchmarkFrom(stats, baseline)

	require.NotNil(t, benchmark.MedianPrice)
	assert.InDelta(t, 200.0, *benchmark.MedianPrice, 0.0001)
	assert.InDelta(t, 150.0, *benchmark.P25Price, 0.0001)
	assert.Equal(t, domain.ConfidenceHigh, benchmark.BaselineConfidence)
	assert.Equal(t, 50, benchmark.BaselineSampleSize)

	empty := CategoryBenchmarkFrom(domain.BenchmarkStats{}, BaselineFromSample("MLB1000", domain.CategoryAggregate{}))
	assert.Nil(t, empty.MedianPrice)
	assert.Nil(t, empty.BaselineConversionRate)
	assert.Equal(t, domain.ConfidenceUnavailable, empty.BaselineConfidence)
}
