package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/fernando-m-vale/superseller-ia-sub001/infrastructure/database/postgres"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/domain"
	"github.com/fernando-m-vale/superseller-ia-sub001/pkg/utils"
)

const (
	metricsDailyTable     = "listing_metrics_daily d"
	metricsAggregateTable = "listing_metrics_aggregate a"
)

type ListingMetricsRepository interface {
	// GetDailyByRange devolve a série diária no intervalo [start, end)
	GetDailyByRange(ctx context.Context, listingID string, start, end time.Time) ([]domain.DailyMetric, error)
	GetAggregate(ctx context.Context, listingID string, periodDays int) (*domain.MetricsAggregate, error)
	GetCategoryAggregate(ctx context.Context, tenantID, categoryID string, start, end time.Time) (*domain.CategoryAggregate, error)
}

type listingMetricsRepository struct {
	conn postgres.Queryer
}

func NewListingMetricsRepository(conn postgres.Queryer) ListingMetricsRepository {
	return &listingMetricsRepository{
		conn: conn,
	}
}

func (r *listingMetricsRepository) GetDailyByRange(ctx context.Context, listingID string, start, end time.Time) ([]domain.DailyMetric, error) {
	query, args, err := squirrel.
		Select("d.listing_id", "d.date", "d.visits", "d.orders", "d.revenue", "d.impressions", "d.clicks").
		From(metricsDailyTable).
		Where(squirrel.Eq{"d.listing_id": listingID}).
		Where(squirrel.GtOrEq{"d.date": start.Format(utils.DateLayout)}).
		Where(squirrel.Lt{"d.date": end.Format(utils.DateLayout)}).
		OrderBy("d.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	days := make([]domain.DailyMetric, 0)
	for rows.Next() {
		var (
			day         domain.DailyMetric
			visits      sql.NullInt64
			impressions sql.NullInt64
			clicks      sql.NullInt64
		)

		if err := rows.Scan(&day.ListingID, &day.Date, &visits, &day.Orders, &day.Revenue, &impressions, &clicks); err != nil {
			return nil, fmt.Errorf("erro ao escanear métrica diária: %w", err)
		}

		day.Visits = nullIntPtr(visits)
		day.Impressions = nullIntPtr(impressions)
		day.Clicks = nullIntPtr(clicks)
		days = append(days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar métricas diárias: %w", err)
	}

	return days, nil
}

func (r *listingMetricsRepository) GetAggregate(ctx context.Context, listingID string, periodDays int) (*domain.MetricsAggregate, error) {
	query, args, err := squirrel.
		Select("a.visits", "a.orders", "a.revenue", "a.impressions", "a.clicks").
		From(metricsAggregateTable).
		Where(squirrel.Eq{"a.listing_id": listingID, "a.period_days": periodDays}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		visits      sql.NullInt64
		orders      sql.NullInt64
		revenue     sql.NullFloat64
		impressions sql.NullInt64
		clicks      sql.NullInt64
	)

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&visits, &orders, &revenue, &impressions, &clicks)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear agregado de métricas: %w", err)
	}

	return &domain.MetricsAggregate{
		PeriodDays:  periodDays,
		Visits:      nullIntPtr(visits),
		Orders:      nullIntPtr(orders),
		Revenue:     nullFloatPtr(revenue),
		Impressions: nullIntPtr(impressions),
		Clicks:      nullIntPtr(clicks),
	}, nil
}

// GetCategoryAggregate soma visitas e pedidos dos anúncios do tenant na categoria.
// A contagem parte de listings: anúncios sem métricas na janela também entram na amostra.
func (r *listingMetricsRepository) GetCategoryAggregate(ctx context.Context, tenantID, categoryID string, start, end time.Time) (*domain.CategoryAggregate, error) {
	query, args, err := categoryAggregateQuery(tenantID, categoryID, start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var aggregate domain.CategoryAggregate
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&aggregate.ListingsCount, &aggregate.Visits, &aggregate.Orders)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear agregado da categoria: %w", err)
	}

	return &aggregate, nil
}

func categoryAggregateQuery(tenantID, categoryID string, start, end time.Time) (string, []interface{}, error) {
	return squirrel.
		Select(
			"COUNT(DISTINCT l.id)",
			"COALESCE(SUM(d.visits), 0)",
			"COALESCE(SUM(d.orders), 0)",
		).
		From(listingsTable).
		LeftJoin(metricsDailyTable+" ON d.listing_id = l.id AND d.date >= ? AND d.date < ?",
			start.Format(utils.DateLayout), end.Format(utils.DateLayout)).
		Where(squirrel.Eq{"l.tenant_id": tenantID}).
		Where(squirrel.Eq{"l.category_id": categoryID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
