package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernando-m-vale/superseller-ia-sub001/internal/domain"
)

func day(offset int, visits *int, orders int, revenue float64, impressions, clicks *int) domain.DailyMetric {
	return domain.DailyMetric{
		ListingID:   "L1",
		Date:        time.Date(2026, 1, 1+offset, 0, 0, 0, 0, time.UTC),
		Visits:      visits,
		Orders:      orders,
		Revenue:     revenue,
		Impressions: impressions,
		Clicks:      clicks,
	}
}

func TestAggregateDailyMetrics(t *testing.T) {
	tests := []struct {
		name     string
		days     []domain.DailyMetric
		fallback *domain.MetricsAggregate
		validate func(t *testing.T, m domain.MetricsAggregate)
	}{
		{
			name: "Série diária - soma e conta dias com visitas",
			days: []domain.DailyMetric{
				day(0, intPtr(100), 2, 50, intPtr(1000), intPtr(20)),
				day(1, nil, 1, 25, nil, nil),
				day(2, intPtr(100), 1, 0, intPtr(1000), intPtr(30)),
			},
			validate: func(t *testing.T, m domain.MetricsAggregate) {
				assert.True(t, m.HasDailyMetrics)
				assert.Equal(t, 2, m.FilledVisitDays)
				require.NotNil(t, m.Visits)
				assert.Equal(t, 200, *m.Visits)
				assert.Equal(t, 4, *m.Orders)
				assert.InDelta(t, 75.0, *m.Revenue, 0.0001)
				require.NotNil(t, m.ConversionRate)
				assert.InDelta(t, 0.02, *m.ConversionRate, 0.0001)
				require.NotNil(t, m.CTR)
				assert.InDelta(t, 0.025, *m.CTR, 0.0001)
			},
		},
		{
			name: "Série sem visitas - visitas e conversão desconhecidas",
			days: []domain.DailyMetric{
				day(0, nil, 3, 90, nil, nil),
			},
			validate: func(t *testing.T, m domain.MetricsAggregate) {
				assert.True(t, m.HasDailyMetrics)
				assert.Nil(t, m.Visits)
				assert.Nil(t, m.ConversionRate)
				assert.Nil(t, m.CTR)
				assert.Equal(t, 3, *m.Orders)
			},
		},
		{
			name: "Sem série e sem agregado - tudo desconhecido",
			validate: func(t *testing.T, m domain.MetricsAggregate) {
				assert.Equal(t, domain.MetricsAggregate{PeriodDays: 30}, m)
			},
		},
		{
			name:     "Sem série com agregado - usa o agregado",
			fallback: &domain.MetricsAggregate{PeriodDays: 7, Visits: intPtr(500), Orders: intPtr(10), HasDailyMetrics: true},
			validate: func(t *testing.T, m domain.MetricsAggregate) {
				assert.False(t, m.HasDailyMetrics)
				assert.Equal(t, 30, m.PeriodDays)
				require.NotNil(t, m.ConversionRate)
				assert.InDelta(t, 0.02, *m.ConversionRate, 0.0001)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, AggregateDailyMetrics(tt.days, tt.fallback, 30))
		})
	}
}

func TestMetricsWindow(t *testing.T) {
	now := time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)

	start, end := MetricsWindow(now, 30)

	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), end)
}
