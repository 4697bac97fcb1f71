package scoring

import (
	"context"
	"fmt"
	"time"

	"github.com/fernando-m-vale/superseller-ia-sub001/infrastructure/repository"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/config"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/domain"
	"github.com/fernando-m-vale/superseller-ia-sub001/pkg/apiErrors"
	"github.com/fernando-m-vale/superseller-ia-sub001/pkg/log"
	"github.com/fernando-m-vale/superseller-ia-sub001/pkg/middleware"
	"github.com/fernando-m-vale/superseller-ia-sub001/pkg/utils"
	"github.com/pkg/errors"
)

type Scorer interface {
	CalculateScore(ctx context.Context, listingID string, periodDays int, now time.Time) (*domain.ScoreResult, error)
	GetActionPlan(ctx context.Context, listingID string, periodDays int, now time.Time) ([]domain.ActionPlanItem, error)
	GetExplanation(ctx context.Context, listingID string, periodDays int, now time.Time) ([]string, error)
	LoadMetrics(ctx context.Context, listingID string, periodDays int, now time.Time) (domain.MetricsAggregate, error)
}

type Service struct {
	listingRepo   repository.ListingRepository
	metricsRepo   repository.ListingMetricsRepository
	maxPeriodDays int
}

func NewService(
	listingRepo repository.ListingRepository,
	metricsRepo repository.ListingMetricsRepository,
	cfg *config.Config,
) Scorer {
	return &Service{
		listingRepo:   listingRepo,
		metricsRepo:   metricsRepo,
		maxPeriodDays: cfg.Scoring.MaxPeriodDays,
	}
}

func (s *Service) CalculateScore(ctx context.Context, listingID string, periodDays int, now time.Time) (*domain.ScoreResult, error) {
	_, result, err := s.evaluate(ctx, listingID, periodDays, now)
	return result, err
}

func (s *Service) GetActionPlan(ctx context.Context, listingID string, periodDays int, now time.Time) ([]domain.ActionPlanItem, error) {
	listing, result, err := s.evaluate(ctx, listingID, periodDays, now)
	if err != nil {
		return nil, err
	}

	return GenerateActionPlan(result.Breakdown, result.DataQuality, &result.PotentialGain, mediaInfoOf(listing)), nil
}

func (s *Service) GetExplanation(ctx context.Context, listingID string, periodDays int, now time.Time) ([]string, error) {
	listing, result, err := s.evaluate(ctx, listingID, periodDays, now)
	if err != nil {
		return nil, err
	}

	return ExplainScore(result.Breakdown, result.DataQuality, mediaInfoOf(listing)), nil
}

func (s *Service) evaluate(ctx context.Context, listingID string, periodDays int, now time.Time) (*domain.Listing, *domain.ScoreResult, error) {
	if err := s.validatePeriod(periodDays); err != nil {
		return nil, nil, err
	}

	listing, err := GetListing(ctx, s.listingRepo, listingID)
	if err != nil {
		return nil, nil, err
	}

	metrics, err := s.LoadMetrics(ctx, listingID, periodDays, now)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("listing_id", listingID).Error("scoring: falha ao carregar métricas")
		return nil, nil, domain.NewListingError(err, apiErrors.ErrDatabaseOperation, listingID, "Falha ao buscar métricas do anúncio")
	}

	result := ComputeScore(ScoreInput{
		Listing:    *listing,
		Metrics:    metrics,
		PeriodDays: periodDays,
	})

	log.ForContext(ctx).WithFields(log.Fields{
		"listing_id": listingID,
		"score":      result.Final,
	}).Debug("scoring: score calculado")

	return listing, result, nil
}

// LoadMetrics consolida a janela [hoje-periodDays, hoje) em UTC, caindo para o agregado
// pré-calculado quando não existe série diária
func (s *Service) LoadMetrics(ctx context.Context, listingID string, periodDays int, now time.Time) (domain.MetricsAggregate, error) {
	start, end := MetricsWindow(now, periodDays)

	days, err := s.metricsRepo.GetDailyByRange(ctx, listingID, start, end)
	if err != nil {
		return domain.MetricsAggregate{}, errors.Wrap(err, "erro ao buscar métricas diárias")
	}

	var fallback *domain.MetricsAggregate
	if len(days) == 0 {
		fallback, err = s.metricsRepo.GetAggregate(ctx, listingID, periodDays)
		if err != nil {
			return domain.MetricsAggregate{}, errors.Wrap(err, "erro ao buscar agregado de métricas")
		}
	}

	return AggregateDailyMetrics(days, fallback, periodDays), nil
}

func (s *Service) validatePeriod(periodDays int) error {
	if periodDays < 1 || periodDays > s.maxPeriodDays {
		return domain.NewListingError(domain.ErrInvalidPeriod, apiErrors.ErrInvalidRequest, "",
			fmt.Sprintf("period_days deve estar entre 1 e %d", s.maxPeriodDays))
	}
	return nil
}

// MetricsWindow devolve a janela de dias completos que termina no início do dia de now
func MetricsWindow(now time.Time, periodDays int) (time.Time, time.Time) {
	end := utils.StartOfDayUTC(now)
	return end.AddDate(0, 0, -periodDays), end
}

// GetListing carrega o anúncio e traduz a ausência para ListingError
func GetListing(ctx context.Context, listingRepo repository.ListingRepository, listingID string) (*domain.Listing, error) {
	if listingID == "" {
		return nil, domain.NewListingError(domain.ErrListingIDRequired, apiErrors.ErrMissingRequiredData, listingID, "ID do anúncio é obrigatório")
	}

	listing, err := listingRepo.GetByID(ctx, listingID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("listing_id", listingID).Error("scoring: falha ao buscar anúncio")
		return nil, domain.NewListingError(errors.Wrap(err, domain.ErrDatabaseOperation.Error()), apiErrors.ErrDatabaseOperation, listingID, "Falha ao buscar anúncio no banco de dados")
	}

	if listing == nil {
		return nil, domain.NewListingError(domain.ErrListingNotFound, apiErrors.ErrListingNotFound, listingID, "Anúncio não encontrado")
	}

	if tenantID, ok := middleware.TenantFromContext(ctx); ok && listing.TenantID != tenantID {
		return nil, domain.NewListingError(domain.ErrListingNotFound, apiErrors.ErrListingForbidden, listingID, "Anúncio não encontrado")
	}

	return listing, nil
}

func mediaInfoOf(listing *domain.Listing) *domain.MediaInfo {
	return &domain.MediaInfo{
		PicturesCount: listing.PicturesCount,
		HasClips:      listing.HasClips,
	}
}
