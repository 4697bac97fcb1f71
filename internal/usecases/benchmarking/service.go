package benchmarking

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/fernando-m-vale/superseller-ia-sub001/infrastructure/integrator/mercadolivre"
	"github.com/fernando-m-vale/superseller-ia-sub001/infrastructure/repository"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/domain"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/usecases/scoring"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/usecases/signaling"
	"github.com/fernando-m-vale/superseller-ia-sub001/pkg/apiErrors"
	"github.com/fernando-m-vale/superseller-ia-sub001/pkg/log"
)

// BaselinePeriodDays é a janela usada tanto no baseline quanto nas métricas do anúncio
const BaselinePeriodDays = 30

// MetricsLoader é satisfeito por scoring.Service
type MetricsLoader interface {
	LoadMetrics(ctx context.Context, listingID string, periodDays int, now time.Time) (domain.MetricsAggregate, error)
}

type Benchmarker interface {
	CalculateBaselineConversion(ctx context.Context, tenantID, categoryID string, now time.Time) (domain.BaselineConversion, error)
	GetBenchmarkInsights(ctx context.Context, listingID string, now time.Time) (*domain.BenchmarkInsights, error)
	GetCategoryBenchmark(ctx context.Context, listing *domain.Listing, now time.Time) (*domain.CategoryBenchmark, error)
}

type Service struct {
	listingRepo repository.ListingRepository
	metricsRepo repository.ListingMetricsRepository
	integrator  mercadolivre.Integrator
	metrics     MetricsLoader
}

func NewService(
	listingRepo repository.ListingRepository,
	metricsRepo repository.ListingMetricsRepository,
	integrator mercadolivre.Integrator,
	metrics MetricsLoader,
) Benchmarker {
	return &Service{
		listingRepo: listingRepo,
		metricsRepo: metricsRepo,
		integrator:  integrator,
		metrics:     metrics,
	}
}

// CalculateBaselineConversion consolida os últimos 30 dias do tenant na categoria.
// Sem categoria o baseline é "unavailable".
func (s *Service) CalculateBaselineConversion(ctx context.Context, tenantID, categoryID string, now time.Time) (domain.BaselineConversion, error) {
	if categoryID == "" {
		return BaselineFromSample(categoryID, domain.CategoryAggregate{}), nil
	}

	start, end := scoring.MetricsWindow(now, BaselinePeriodDays)

	sample, err := s.metricsRepo.GetCategoryAggregate(ctx, tenantID, categoryID, start, end)
	if err != nil {
		return domain.BaselineConversion{}, errors.Wrapf(err, "erro ao agregar métricas da categoria %s", categoryID)
	}

	if sample == nil {
		sample = &domain.CategoryAggregate{}
	}

	return BaselineFromSample(categoryID, *sample), nil
}

// GetCategoryBenchmark monta o benchmark anexado aos sinais dos hacks
func (s *Service) GetCategoryBenchmark(ctx context.Context, listing *domain.Listing, now time.Time) (*domain.CategoryBenchmark, error) {
	stats, baseline, err := s.sample(ctx, listing, now)
	if err != nil {
		return nil, err
	}

	return CategoryBenchmarkFrom(stats, baseline), nil
}

func (s *Service) GetBenchmarkInsights(ctx context.Context, listingID string, now time.Time) (*domain.BenchmarkInsights, error) {
	listing, err := scoring.GetListing(ctx, s.listingRepo, listingID)
	if err != nil {
		return nil, err
	}

	stats, baseline, err := s.sample(ctx, listing, now)
	if err != nil {
		return nil, err
	}

	metrics, err := s.metrics.LoadMetrics(ctx, listingID, BaselinePeriodDays, now)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("listing_id", listingID).Error("benchmarking: falha ao carregar métricas")
		return nil, domain.NewListingError(err, apiErrors.ErrDatabaseOperation, listingID, "Falha ao buscar métricas do anúncio")
	}

	return &domain.BenchmarkInsights{
		Stats:        stats,
		Baseline:     baseline,
		CriticalGaps: RankGaps(*listing, signaling.ResolvePricing(*listing, nil), stats, &baseline, &metrics),
	}, nil
}

func (s *Service) sample(ctx context.Context, listing *domain.Listing, now time.Time) (domain.BenchmarkStats, domain.BaselineConversion, error) {
	categoryID := ""
	if listing.CategoryID != nil {
		categoryID = *listing.CategoryID
	}

	stats := CalculateBenchmarkStats(s.competitors(ctx, listing, categoryID))

	baseline, err := s.CalculateBaselineConversion(ctx, listing.TenantID, categoryID, now)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("listing_id", listing.ID).Error("benchmarking: falha ao calcular baseline")
		return domain.BenchmarkStats{}, domain.BaselineConversion{}, domain.NewListingError(err, apiErrors.ErrDatabaseOperation, listing.ID, "Falha ao calcular a conversão de referência")
	}

	return stats, baseline, nil
}

// competitors degrada para amostra vazia quando o marketplace falha
func (s *Service) competitors(ctx context.Context, listing *domain.Listing, categoryID string) []domain.Competitor {
	if categoryID == "" {
		return nil
	}

	competitors, err := s.integrator.GetCategoryCompetitors(ctx, categoryID, listing.ExternalID)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"listing_id":  listing.ID,
			"category_id": categoryID,
			"error":       err.Error(),
		}).Warn("benchmarking: concorrentes indisponíveis, seguindo com amostra vazia")
		return nil
	}

	return competitors
}
