package scoring

import "github.com/fernando-m-vale/superseller-ia-sub001/internal/domain"

// AggregateDailyMetrics consolida a série diária da janela. Sem linhas diárias, usa o
// agregado pré-calculado (fallback) quando existir.
func AggregateDailyMetrics(days []domain.DailyMetric, fallback *domain.MetricsAggregate, periodDays int) domain.MetricsAggregate {
	if len(days) == 0 {
		if fallback == nil {
			return domain.MetricsAggregate{PeriodDays: periodDays}
		}

		aggregate := *fallback
		aggregate.PeriodDays = periodDays
		aggregate.HasDailyMetrics = false
		aggregate.FilledVisitDays = 0
		fillRates(&aggregate)
		return aggregate
	}

	var (
		visits, orders, impressions, clicks  int
		revenue                              float64
		hasVisits, hasImpressions, hasClicks bool
		filledVisitDays                      int
	)

	for _, day := range days {
		if day.Visits != nil {
			visits += *day.Visits
			hasVisits = true
			filledVisitDays++
		}
		if day.Impressions != nil {
			impressions += *day.Impressions
			hasImpressions = true
		}
		if day.Clicks != nil {
			clicks += *day.Clicks
			hasClicks = true
		}
		orders += day.Orders
		revenue += day.Revenue
	}

	aggregate := domain.MetricsAggregate{
		PeriodDays:      periodDays,
		Orders:          &orders,
		Revenue:         &revenue,
		FilledVisitDays: filledVisitDays,
		HasDailyMetrics: true,
	}
	if hasVisits {
		aggregate.Visits = &visits
	}
	if hasImpressions {
		aggregate.Impressions = &impressions
	}
	if hasClicks {
		aggregate.Clicks = &clicks
	}

	fillRates(&aggregate)

	return aggregate
}

// fillRates deriva conversão e CTR apenas quando o denominador é conhecido e positivo
func fillRates(m *domain.MetricsAggregate) {
	if m.ConversionRate == nil && m.Visits != nil && *m.Visits > 0 && m.Orders != nil {
		rate := float64(*m.Orders) / float64(*m.Visits)
		m.ConversionRate = &rate
	}

	if m.CTR == nil && m.Impressions != nil && *m.Impressions > 0 && m.Clicks != nil {
		ctr := float64(*m.Clicks) / float64(*m.Impressions)
		m.CTR = &ctr
	}
}
