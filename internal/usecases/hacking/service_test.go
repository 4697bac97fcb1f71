package hacking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fernando-m-vale/superseller-ia-sub001/infrastructure/repository/mocks"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/domain"
	"github.com/fernando-m-vale/superseller-ia-sub001/pkg/apiErrors"
)

type fakeMetrics struct {
	metrics domain.MetricsAggregate
	err     error
}

func (f fakeMetrics) LoadMetrics(context.Context, string, int, time.Time) (domain.MetricsAggregate, error) {
	return f.metrics, f.err
}

type fakeBenchmarker struct {
	benchmark *domain.CategoryBenchmark
}

func (f fakeBenchmarker) GetCategoryBenchmark(context.Context, *domain.Listing, time.Time) (*domain.CategoryBenchmark, error) {
	return f.benchmark, nil
}

// hackListing materializa os mesmos sinais de baseSignals
func hackListing() *domain.Listing {
	return &domain.Listing{
		ID:                "L1",
		TenantID:          "tenant-1",
		ExternalID:        "MLB100",
		Title:             "Panela Inox 24cm",
		CategoryID:        stringPtr("MLB1000"),
		CategoryPath:      []string{"Casa", "Cozinha"},
		Price:             67.00,
		AvailableQuantity: intPtr(15),
		Status:            domain.ListingStatusActive,
		PicturesCount:     intPtr(4),
		HasClips:          domain.TriStateUnknown,
	}
}

func hackMetrics() domain.MetricsAggregate {
	return domain.MetricsAggregate{Visits: intPtr(250), Orders: intPtr(2), ConversionRate: floatPtr(0.008)}
}

func requireListingError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var listingErr *domain.ListingError
	require.True(t, errors.As(err, &listingErr), "esperado ListingError, obtido %v", err)
	assert.Equal(t, code, listingErr.Code)
}

func TestService_GetHacks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockListingRepo := mocks.NewMockListingRepository(ctrl)
	mockHistoryRepo := mocks.NewMockHackHistoryRepository(ctrl)

	service := NewService(mockListingRepo, mockHistoryRepo, fakeMetrics{metrics: hackMetrics()}, fakeBenchmarker{})

	me2 := &domain.ListingShipping{Mode: domain.ShippingModeME2, IsFullEligible: domain.TriStateUnknown}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, result *domain.HackResult, err error)
	}{
		{
			name: "Sem histórico - avalia as cinco regras",
			setup: func() {
				mockListingRepo.EXPECT().GetByID(gomock.Any(), "L1").Return(hackListing(), nil)
				mockListingRepo.EXPECT().GetShipping(gomock.Any(), "L1").Return(me2, nil)
				mockHistoryRepo.EXPECT().ListByListing(gomock.Any(), "L1").Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.HackResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, []domain.HackID{
					domain.HackPsychologicalPrice,
					domain.HackSmartVariations,
					domain.HackFullShipping,
					domain.HackBundleKit,
					domain.HackCategoryAdjustment,
				}, hackIDs(result.Hacks))
				assert.Equal(t, domain.HackMeta{RulesEvaluated: 5, RulesTriggered: 5}, result.Meta)
			},
		},
		{
			name: "Descarte recente - suprime o hack",
			setup: func() {
				dismissedAt := fixedNow.AddDate(0, 0, -10)
				mockListingRepo.EXPECT().GetByID(gomock.Any(), "L1").Return(hackListing(), nil)
				mockListingRepo.EXPECT().GetShipping(gomock.Any(), "L1").Return(me2, nil)
				mockHistoryRepo.EXPECT().ListByListing(gomock.Any(), "L1").Return([]domain.HackHistoryEntry{
					{HackID: domain.HackPsychologicalPrice, Status: domain.HackStatusDismissed, DismissedAt: &dismissedAt},
				}, nil)
			},
			validate: func(t *testing.T, result *domain.HackResult, err error) {
				require.NoError(t, err)
				assert.NotContains(t, hackIDs(result.Hacks), domain.HackPsychologicalPrice)
				assert.Equal(t, domain.HackMeta{RulesEvaluated: 4, RulesTriggered: 4, SkippedByHistory: 1}, result.Meta)
			},
		},
		{
			name: "Frete Full - omite o hack de Full",
			setup: func() {
				full := &domain.ListingShipping{Mode: domain.ShippingModeFull, IsFullEligible: domain.TriStateTrue}
				mockListingRepo.EXPECT().GetByID(gomock.Any(), "L1").Return(hackListing(), nil)
				mockListingRepo.EXPECT().GetShipping(gomock.Any(), "L1").Return(full, nil)
				mockHistoryRepo.EXPECT().ListByListing(gomock.Any(), "L1").Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.HackResult, err error) {
				require.NoError(t, err)
				assert.NotContains(t, hackIDs(result.Hacks), domain.HackFullShipping)
				assert.Equal(t, 1, result.Meta.SkippedByRequirements)
			},
		},
		{
			name: "Anúncio inexistente - LST_001",
			setup: func() {
				mockListingRepo.EXPECT().GetByID(gomock.Any(), "L1").Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.HackResult, err error) {
				requireListingError(t, err, apiErrors.ErrListingNotFound)
				assert.Nil(t, result)
			},
		},
		{
			name: "Falha ao buscar frete - SRV_002",
			setup: func() {
				mockListingRepo.EXPECT().GetByID(gomock.Any(), "L1").Return(hackListing(), nil)
				mockListingRepo.EXPECT().GetShipping(gomock.Any(), "L1").Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, result *domain.HackResult, err error) {
				requireListingError(t, err, apiErrors.ErrDatabaseOperation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			result, err := service.GetHacks(context.Background(), "L1", fixedNow)
			tt.validate(t, result, err)
		})
	}
}

func TestService_SubmitFeedback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockListingRepo := mocks.NewMockListingRepository(ctrl)
	mockHistoryRepo := mocks.NewMockHackHistoryRepository(ctrl)

	service := NewService(mockListingRepo, mockHistoryRepo, fakeMetrics{}, fakeBenchmarker{})

	tests := []struct {
		name     string
		hackID   string
		status   string
		setup    func()
		validate func(t *testing.T, entry *domain.HackHistoryEntry, err error)
	}{
		{
			name:   "Descarte - registra dismissed_at com o instante informado",
			hackID: "ml_full_shipping",
			status: "dismissed",
			setup: func() {
				mockListingRepo.EXPECT().GetByID(gomock.Any(), "L1").Return(hackListing(), nil)
				mockHistoryRepo.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, entry *domain.HackHistoryEntry) error {
						entry.ID = "abc123def456"
						return nil
					})
			},
			validate: func(t *testing.T, entry *domain.HackHistoryEntry, err error) {
				require.NoError(t, err)
				assert.Equal(t, "abc123def456", entry.ID)
				assert.Equal(t, domain.HackFullShipping, entry.HackID)
				assert.Equal(t, domain.HackStatusDismissed, entry.Status)
				require.NotNil(t, entry.DismissedAt)
				assert.Equal(t, fixedNow, *entry.DismissedAt)
				assert.Nil(t, entry.ConfirmedAt)
			},
		},
		{
			name:   "Confirmação - registra confirmed_at",
			hackID: "ml_bundle_kit",
			status: "confirmed",
			setup: func() {
				mockListingRepo.EXPECT().GetByID(gomock.Any(), "L1").Return(hackListing(), nil)
				mockHistoryRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, entry *domain.HackHistoryEntry, err error) {
				require.NoError(t, err)
				require.NotNil(t, entry.ConfirmedAt)
				assert.Nil(t, entry.DismissedAt)
			},
		},
		{
			name:   "Hack desconhecido - LST_002 sem acessar o banco",
			hackID: "ml_frete_gratis",
			status: "dismissed",
			setup:  func() {},
			validate: func(t *testing.T, entry *domain.HackHistoryEntry, err error) {
				requireListingError(t, err, apiErrors.ErrUnknownHack)
				assert.True(t, errors.Is(err, domain.ErrInvalidHackID))
			},
		},
		{
			name:   "Status inválido - VAL_001",
			hackID: "ml_full_shipping",
			status: "ignored",
			setup:  func() {},
			validate: func(t *testing.T, entry *domain.HackHistoryEntry, err error) {
				requireListingError(t, err, apiErrors.ErrInvalidRequest)
				assert.Nil(t, entry)
			},
		},
		{
			name:   "Falha ao salvar - SRV_002",
			hackID: "ml_full_shipping",
			status: "dismissed",
			setup: func() {
				mockListingRepo.EXPECT().GetByID(gomock.Any(), "L1").Return(hackListing(), nil)
				mockHistoryRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("duplicate key"))
			},
			validate: func(t *testing.T, entry *domain.HackHistoryEntry, err error) {
				requireListingError(t, err, apiErrors.ErrDatabaseOperation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			entry, err := service.SubmitFeedback(context.Background(), "L1", tt.hackID, tt.status, fixedNow)
			tt.validate(t, entry, err)
		})
	}
}
