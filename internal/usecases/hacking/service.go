package hacking

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/fernando-m-vale/superseller-ia-sub001/infrastructure/repository"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/domain"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/usecases/benchmarking"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/usecases/scoring"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/usecases/signaling"
	"github.com/fernando-m-vale/superseller-ia-sub001/pkg/apiErrors"
	"github.com/fernando-m-vale/superseller-ia-sub001/pkg/log"
)

// HackPeriodDays é a janela de métricas que alimenta as regras
const HackPeriodDays = 30

type Hacker interface {
	GetHacks(ctx context.Context, listingID string, now time.Time) (*domain.HackResult, error)
	SubmitFeedback(ctx context.Context, listingID, hackID, status string, now time.Time) (*domain.HackHistoryEntry, error)
}

// CategoryBenchmarker é satisfeito por benchmarking.Service
type CategoryBenchmarker interface {
	GetCategoryBenchmark(ctx context.Context, listing *domain.Listing, now time.Time) (*domain.CategoryBenchmark, error)
}

type Service struct {
	listingRepo repository.ListingRepository
	historyRepo repository.HackHistoryRepository
	metrics     benchmarking.MetricsLoader
	benchmarker CategoryBenchmarker
}

func NewService(
	listingRepo repository.ListingRepository,
	historyRepo repository.HackHistoryRepository,
	metrics benchmarking.MetricsLoader,
	benchmarker CategoryBenchmarker,
) Hacker {
	return &Service{
		listingRepo: listingRepo,
		historyRepo: historyRepo,
		metrics:     metrics,
		benchmarker: benchmarker,
	}
}

// GetHacks materializa os sinais do anúncio e avalia as regras com o histórico de feedback
func (s *Service) GetHacks(ctx context.Context, listingID string, now time.Time) (*domain.HackResult, error) {
	logger := log.ForContext(ctx).WithField("listing_id", listingID)

	listing, err := scoring.GetListing(ctx, s.listingRepo, listingID)
	if err != nil {
		return nil, err
	}

	shipping, err := s.listingRepo.GetShipping(ctx, listingID)
	if err != nil {
		logger.WithError(err).Error("hacking: falha ao buscar frete")
		return nil, databaseError(err, listingID, "Falha ao buscar dados de frete do anúncio")
	}

	metrics, err := s.metrics.LoadMetrics(ctx, listingID, HackPeriodDays, now)
	if err != nil {
		logger.WithError(err).Error("hacking: falha ao carregar métricas")
		return nil, databaseError(err, listingID, "Falha ao buscar métricas do anúncio")
	}

	benchmark, err := s.benchmarker.GetCategoryBenchmark(ctx, listing, now)
	if err != nil {
		return nil, err
	}

	history, err := s.historyRepo.ListByListing(ctx, listingID)
	if err != nil {
		logger.WithError(err).Error("hacking: falha ao buscar histórico")
		return nil, databaseError(err, listingID, "Falha ao buscar histórico de hacks")
	}

	result := GenerateHacks(domain.HackInput{
		Signals: signaling.Build(*listing, nil, shipping, &metrics, benchmark),
		History: history,
		NowUTC:  now.UTC(),
	})

	logger.WithFields(log.Fields{
		"hacks_triggered": result.Meta.RulesTriggered,
		"hacks_history":   result.Meta.SkippedByHistory,
	}).Debug("hacking: hacks gerados")

	return &result, nil
}

// SubmitFeedback registra confirmação ou descarte; o instante vem do chamador
func (s *Service) SubmitFeedback(ctx context.Context, listingID, hackID, status string, now time.Time) (*domain.HackHistoryEntry, error) {
	id := domain.HackID(hackID)
	if !id.Valid() {
		return nil, domain.NewListingError(domain.ErrInvalidHackID, apiErrors.ErrUnknownHack, listingID, "Hack desconhecido: "+hackID)
	}

	hackStatus := domain.HackStatus(status)
	if !hackStatus.Valid() {
		return nil, domain.NewListingError(domain.ErrInvalidFeedbackStatus, apiErrors.ErrInvalidRequest, listingID, "status deve ser confirmed ou dismissed")
	}

	if _, err := scoring.GetListing(ctx, s.listingRepo, listingID); err != nil {
		return nil, err
	}

	at := now.UTC()
	entry := &domain.HackHistoryEntry{
		ListingID: listingID,
		HackID:    id,
		Status:    hackStatus,
	}
	if hackStatus == domain.HackStatusDismissed {
		entry.DismissedAt = &at
	} else {
		entry.ConfirmedAt = &at
	}

	if err := s.historyRepo.Save(ctx, entry); err != nil {
		log.ForContext(ctx).WithError(err).WithField("listing_id", listingID).Error("hacking: falha ao salvar feedback")
		return nil, databaseError(err, listingID, "Falha ao salvar feedback do hack")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"listing_id":  listingID,
		"hack_id":     hackID,
		"hack_status": status,
	}).Info("hacking: feedback registrado")

	return entry, nil
}

func databaseError(err error, listingID, details string) error {
	return domain.NewListingError(errors.Wrap(err, domain.ErrDatabaseOperation.Error()), apiErrors.ErrDatabaseOperation, listingID, details)
}
