package domain

import "time"

// DailyMetric é uma linha da série diária de métricas do anúncio
type DailyMetric struct {
	ListingID   string    `json:"listing_id"`
	Date        time.Time `json:"date"`
	Visits      *int      `json:"visits"`
	Orders      int       `json:"orders"`
	Revenue     float64   `json:"revenue"`
	Impressions *int      `json:"impressions"`
	Clicks      *int      `json:"clicks"`
}

// MetricsAggregate consolida a janela de métricas; campos nil significam desconhecido
type MetricsAggregate struct {
	PeriodDays      int      `json:"period_days"`
	Visits          *int     `json:"visits"`
	Orders          *int     `json:"orders"`
	Revenue         *float64 `json:"revenue"`
	Impressions     *int     `json:"impressions"`
	Clicks          *int     `json:"clicks"`
	CTR             *float64 `json:"ctr"`
	ConversionRate  *float64 `json:"conversion_rate"`
	FilledVisitDays int      `json:"filled_visit_days"`
	HasDailyMetrics bool     `json:"has_daily_metrics"`
}

// HasAggregates indica se a janela traz algum número utilizável
func (m *MetricsAggregate) HasAggregates() bool {
	if m == nil {
		return false
	}
	return (m.Visits != nil && *m.Visits > 0) || (m.Orders != nil && *m.Orders > 0) ||
		(m.Revenue != nil && *m.Revenue > 0) || (m.Impressions != nil && *m.Impressions > 0)
}

// CategoryAggregate é a soma de visitas/pedidos dos anúncios do tenant numa categoria
type CategoryAggregate struct {
	ListingsCount int `json:"listings_count"`
	Visits        int `json:"visits"`
	Orders        int `json:"orders"`
}
