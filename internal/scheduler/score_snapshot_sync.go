// Package scheduler contém os serviços de agendamento para rotinas periódicas
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/fernando-m-vale/superseller-ia-sub001/infrastructure/repository"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/config"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/domain"
	"github.com/fernando-m-vale/superseller-ia-sub001/pkg/middleware"
	"github.com/fernando-m-vale/superseller-ia-sub001/pkg/utils"
)

// ScoreCalculator é o recorte do serviço de score usado pelo agendador
type ScoreCalculator interface {
	CalculateScore(ctx context.Context, listingID string, periodDays int, now time.Time) (*domain.ScoreResult, error)
}

type ScoreSnapshotSyncConfig struct {
	CronSchedule      string
	PeriodDays        int
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// SyncSummary resume uma execução da fotografia diária
type SyncSummary struct {
	Date      time.Time `json:"date"`
	Processed int       `json:"processed"`
	Saved     int       `json:"saved"`
	Failed    int       `json:"failed"`
	Skipped   bool      `json:"skipped"`
	Cancelled bool      `json:"cancelled"`
}

// ScoreSnapshotSyncService grava diariamente o score de cada anúncio ativo
type ScoreSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              ScoreSnapshotSyncConfig
	listingRepo         repository.ListingRepository
	snapshotRepo        repository.ScoreSnapshotRepository
	scorer              ScoreCalculator
	clock               func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         *SyncSummary
}

func NewScoreSnapshotSyncService(
	listingRepo repository.ListingRepository,
	snapshotRepo repository.ScoreSnapshotRepository,
	scorer ScoreCalculator,
	cfg *config.Config,
) *ScoreSnapshotSyncService {
	syncConfig := ScoreSnapshotSyncConfig{
		CronSchedule:      cfg.ScoreSnapshotSync.CronSchedule,
		PeriodDays:        cfg.ScoreSnapshotSync.PeriodDays,
		MaxConcurrentJobs: cfg.ScoreSnapshotSync.MaxConcurrentJobs,
		SyncEnabled:       cfg.ScoreSnapshotSync.Enabled,
	}
	if syncConfig.MaxConcurrentJobs <= 0 {
		syncConfig.MaxConcurrentJobs = 1
	}
	if syncConfig.PeriodDays <= 0 {
		syncConfig.PeriodDays = cfg.Scoring.PeriodDays
	}

	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"period_days":         syncConfig.PeriodDays,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de fotografias de score carregada")

	return &ScoreSnapshotSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		listingRepo:  listingRepo,
		snapshotRepo: snapshotRepo,
		scorer:       scorer,
		clock:        time.Now,
	}
}

func (s *ScoreSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de fotografias de score desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de fotografias de score")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.SyncSnapshots(ctx, s.clock()); err != nil {
			logrus.WithError(err).Error("Erro na gravação das fotografias de score")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar fotografias de score: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de fotografias de score")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncSnapshots calcula e grava a fotografia do dia de now para todos os anúncios ativos.
// Falhas individuais são registradas e não interrompem os demais anúncios. Com o contexto
// cancelado nenhum anúncio novo é iniciado; os já iniciados terminam.
func (s *ScoreSnapshotSyncService) SyncSnapshots(ctx context.Context, now time.Time) (*SyncSummary, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Gravação de fotografias de score já está em execução")
		return &SyncSummary{Date: utils.StartOfDayUTC(now), Skipped: true}, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	summary := &SyncSummary{Date: utils.StartOfDayUTC(now)}
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.lastSummary = summary
		s.syncMutex.Unlock()
	}()

	listings, err := s.listingRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar anúncios ativos: %w", err)
	}

	if len(listings) == 0 {
		logrus.Info("Nenhum anúncio ativo para fotografar")
		return summary, nil
	}

	var saved, failed int64
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, listing := range listings {
		if listing == nil {
			continue
		}

		if !acquire(ctx, semaphore) {
			summary.Cancelled = true
			break
		}

		wg.Add(1)
		go func(l *domain.Listing) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			if err := s.snapshotListing(ctx, l, now, summary.Date); err != nil {
				atomic.AddInt64(&failed, 1)
				logrus.WithError(err).WithField("listing_id", l.ID).Error("Erro ao gravar fotografia de score")
				return
			}
			atomic.AddInt64(&saved, 1)
		}(listing)
	}

	wg.Wait()

	summary.Saved = int(saved)
	summary.Failed = int(failed)
	summary.Processed = summary.Saved + summary.Failed

	if summary.Cancelled {
		logrus.WithFields(logrus.Fields{
			"date":      summary.Date.Format(utils.DateLayout),
			"processed": summary.Processed,
			"pending":   len(listings) - summary.Processed,
		}).Warn("Gravação de fotografias de score interrompida")
		return summary, fmt.Errorf("gravação de fotografias interrompida: %w", ctx.Err())
	}

	logrus.WithFields(logrus.Fields{
		"date":      summary.Date.Format(utils.DateLayout),
		"processed": summary.Processed,
		"saved":     summary.Saved,
		"failed":    summary.Failed,
	}).Info("Gravação de fotografias de score concluída")

	return summary, nil
}

// acquire reserva uma vaga no semáforo; falso quando o contexto foi cancelado
func acquire(ctx context.Context, semaphore chan struct{}) bool {
	select {
	case <-ctx.Done():
		return false
	case semaphore <- struct{}{}:
	}

	if ctx.Err() != nil {
		<-semaphore
		return false
	}
	return true
}

func (s *ScoreSnapshotSyncService) snapshotListing(ctx context.Context, listing *domain.Listing, now, date time.Time) error {
	tenantCtx := middleware.WithTenant(ctx, listing.TenantID)

	result, err := s.scorer.CalculateScore(tenantCtx, listing.ID, s.config.PeriodDays, now)
	if err != nil {
		return err
	}

	return s.snapshotRepo.SaveOrUpdate(tenantCtx, &domain.ScoreSnapshot{
		ListingID:         listing.ID,
		Date:              date,
		Score:             result.Final,
		Breakdown:         result.Breakdown,
		CompletenessScore: result.DataQuality.CompletenessScore,
	})
}

// TriggerManualSync inicia manualmente a gravação das fotografias
func (s *ScoreSnapshotSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Gravação de fotografias já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando gravação manual de fotografias de score")
	go func() {
		if _, err := s.SyncSnapshots(context.Background(), s.clock()); err != nil {
			logrus.WithError(err).Error("Erro na gravação manual das fotografias de score")
		}
	}()
	return true
}

// GetStatus retorna o status atual do agendador
func (s *ScoreSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_period_days":       s.config.PeriodDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_summary":           s.lastSummary,
	}
}
