package hacking

import (
	"testing"
	"time"

	"github.com/fernando-m-vale/superseller-ia-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func stringPtr(v string) *string { return &v }

func timePtr(v time.Time) *time.Time { return &v }

var fixedNow = time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)

// baseSignals dispara os cinco hacks: psych 80, smart 75, full 65, bundle 50, category 40
func baseSignals() domain.Signals {
	return domain.Signals{
		ListingID:         "MLB100",
		Status:            domain.ListingStatusActive,
		CategoryID:        stringPtr("MLB1000"),
		CategoryPath:      []string{"Casa", "Cozinha"},
		Price:             67.00,
		ShippingMode:      domain.ShippingModeME2,
		IsFullEligible:    domain.TriStateUnknown,
		PicturesCount:     intPtr(4),
		HasClips:          domain.TriStateUnknown,
		AvailableQuantity: intPtr(15),
		Visits:            intPtr(250),
		Orders:            intPtr(2),
		ConversionRate:    floatPtr(0.008),
	}
}

func hackIDs(hacks []domain.HackSuggestion) []domain.HackID {
	ids := make([]domain.HackID, 0, len(hacks))
	for _, hack := range hacks {
		ids = append(ids, hack.ID)
	}
	return ids
}

func findHack(hacks []domain.HackSuggestion, id domain.HackID) *domain.HackSuggestion {
	for i := range hacks {
		if hacks[i].ID == id {
			return &hacks[i]
		}
	}
	return nil
}

func TestGenerateHacks_SemHistorico(t *testing.T) {
	result := GenerateHacks(domain.HackInput{Signals: baseSignals(), NowUTC: fixedNow})

	assert.Equal(t, []domain.HackID{
		domain.HackPsychologicalPrice,
		domain.HackSmartVariations,
		domain.HackFullShipping,
		domain.HackBundleKit,
		domain.HackCategoryAdjustment,
	}, hackIDs(result.Hacks))
	assert.Equal(t, domain.HackMeta{RulesEvaluated: 5, RulesTriggered: 5}, result.Meta)

	expected := map[domain.HackID]struct {
		confidence int
		level      domain.Level
		impact     domain.Level
	}{
		domain.HackPsychologicalPrice: {80, domain.LevelHigh, domain.LevelMedium},
		domain.HackSmartVariations:    {75, domain.LevelHigh, domain.LevelMedium},
		domain.HackFullShipping:       {65, domain.LevelMedium, domain.LevelHigh},
		domain.HackBundleKit:          {50, domain.LevelMedium, domain.LevelMedium},
		domain.HackCategoryAdjustment: {40, domain.LevelMedium, domain.LevelMedium},
	}
	for id, want := range expected {
		hack := findHack(result.Hacks, id)
		require.NotNil(t, hack, id)
		assert.Equal(t, want.confidence, hack.Confidence, id)
		assert.Equal(t, want.level, hack.ConfidenceLevel, id)
		assert.Equal(t, want.impact, hack.Impact, id)
		assert.NotEmpty(t, hack.Title, id)
		assert.NotEmpty(t, hack.Summary, id)
	}

	psych := findHack(result.Hacks, domain.HackPsychologicalPrice)
	assert.Contains(t, psych.Evidence, "Preço sugerido: R$ 66,90")
	assert.Contains(t, psych.Summary, "R$ 66,90")
}

func TestGenerateHacks_Historico(t *testing.T) {
	tests := []struct {
		name      string
		history   []domain.HackHistoryEntry
		expected  []domain.HackID
		skipped   int
		evaluated int
	}{
		{
			name: "confirmado nunca volta",
			history: []domain.HackHistoryEntry{
				{HackID: domain.HackPsychologicalPrice, Status: domain.HackStatusConfirmed, ConfirmedAt: timePtr(fixedNow.AddDate(-1, 0, 0))},
			},
			expected: []domain.HackID{
				domain.HackSmartVariations,
				domain.HackFullShipping,
				domain.HackBundleKit,
				domain.HackCategoryAdjustment,
			},
			skipped:   1,
			evaluated: 4,
		},
		{
			name: "confirmado vence dispensa antiga",
			history: []domain.HackHistoryEntry{
				{HackID: domain.HackFullShipping, Status: domain.HackStatusDismissed, DismissedAt: timePtr(fixedNow.AddDate(0, 0, -90))},
				{HackID: domain.HackFullShipping, Status: domain.HackStatusConfirmed},
			},
			expected: []domain.HackID{
				domain.HackPsychologicalPrice,
				domain.HackSmartVariations,
				domain.HackBundleKit,
				domain.HackCategoryAdjustment,
			},
			skipped:   1,
			evaluated: 4,
		},
		{
			name: "dispensado há 10 dias fica suprimido",
			history: []domain.HackHistoryEntry{
				{HackID: domain.HackFullShipping, Status: domain.HackStatusDismissed, DismissedAt: timePtr(fixedNow.AddDate(0, 0, -10))},
			},
			expected: []domain.HackID{
				domain.HackPsychologicalPrice,
				domain.HackSmartVariations,
				domain.HackBundleKit,
				domain.HackCategoryAdjustment,
			},
			skipped:   1,
			evaluated: 4,
		},
		{
			name: "dispensado há exatamente 30 dias volta a ser sugerido",
			history: []domain.HackHistoryEntry{
				{HackID: domain.HackBundleKit, Status: domain.HackStatusDismissed, DismissedAt: timePtr(fixedNow.Add(-CooldownWindow))},
			},
			expected: []domain.HackID{
				domain.HackPsychologicalPrice,
				domain.HackSmartVariations,
				domain.HackFullShipping,
				domain.HackBundleKit,
				domain.HackCategoryAdjustment,
			},
			skipped:   0,
			evaluated: 5,
		},
		{
			name: "vale a dispensa mais recente",
			history: []domain.HackHistoryEntry{
				{HackID: domain.HackBundleKit, Status: domain.HackStatusDismissed, DismissedAt: timePtr(fixedNow.AddDate(0, 0, -5))},
				{HackID: domain.HackBundleKit, Status: domain.HackStatusDismissed, DismissedAt: timePtr(fixedNow.AddDate(0, 0, -60))},
			},
			expected: []domain.HackID{
				domain.HackPsychologicalPrice,
				domain.HackSmartVariations,
				domain.HackFullShipping,
				domain.HackCategoryAdjustment,
			},
			skipped:   1,
			evaluated: 4,
		},
		{
			name: "dispensa sem data não suprime",
			history: []domain.HackHistoryEntry{
				{HackID: domain.HackSmartVariations, Status: domain.HackStatusDismissed},
			},
			expected: []domain.HackID{
				domain.HackPsychologicalPrice,
				domain.HackSmartVariations,
				domain.HackFullShipping,
				domain.HackBundleKit,
				domain.HackCategoryAdjustment,
			},
			skipped:   0,
			evaluated: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GenerateHacks(domain.HackInput{Signals: baseSignals(), History: tt.history, NowUTC: fixedNow})

			assert.Equal(t, tt.expected, hackIDs(result.Hacks))
			assert.Equal(t, tt.skipped, result.Meta.SkippedByHistory)
			assert.Equal(t, tt.evaluated, result.Meta.RulesEvaluated)
			assert.Equal(t, len(tt.expected), result.Meta.RulesTriggered)
		})
	}
}

func TestPsychologicalPricing_Gate(t *testing.T) {
	tests := []struct {
		name      string
		price     float64
		triggered bool
		suggested float64
	}{
		{name: "final ,90 é omitido", price: 66.90, triggered: false},
		{name: "final ,99 é omitido", price: 66.99, triggered: false},
		{name: "final ,89 é omitido", price: 149.89, triggered: false},
		{name: "abaixo de 20 é omitido", price: 19.50, triggered: false},
		{name: "final ,93 é sugerido", price: 66.93, triggered: true, suggested: 66.90},
		{name: "preço redondo é sugerido", price: 67.00, triggered: true, suggested: 66.90},
		{name: "final ,95 desce para ,90", price: 99.95, triggered: true, suggested: 99.90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signals := baseSignals()
			signals.Price = tt.price

			suggestion, ok := psychologicalPricingRule.evaluate(&signals)
			assert.Equal(t, tt.triggered, ok)
			if tt.triggered {
				assert.Equal(t, domain.HackPsychologicalPrice, suggestion.ID)
				assert.InDelta(t, tt.suggested, psychologicalPrice(tt.price), 0.0001)
			}
		})
	}
}

func TestGenerateHacks_PortoesDeRequisito(t *testing.T) {
	t.Run("full omitido quando já usa Full", func(t *testing.T) {
		signals := baseSignals()
		signals.ShippingMode = domain.ShippingModeFull

		result := GenerateHacks(domain.HackInput{Signals: signals, NowUTC: fixedNow})

		assert.Nil(t, findHack(result.Hacks, domain.HackFullShipping))
		assert.Equal(t, 1, result.Meta.SkippedByRequirements)
		assert.Equal(t, 5, result.Meta.RulesEvaluated)
		assert.Equal(t, 4, result.Meta.RulesTriggered)
	})

	t.Run("kit omitido quando o título já é kit", func(t *testing.T) {
		signals := baseSignals()
		signals.IsKitHeuristic = true

		result := GenerateHacks(domain.HackInput{Signals: signals, NowUTC: fixedNow})

		assert.Nil(t, findHack(result.Hacks, domain.HackBundleKit))
		assert.Equal(t, 1, result.Meta.SkippedByRequirements)
	})

	t.Run("full limitado a 35 quando não elegível", func(t *testing.T) {
		signals := baseSignals()
		signals.IsFullEligible = domain.TriStateFalse

		result := GenerateHacks(domain.HackInput{Signals: signals, NowUTC: fixedNow})

		hack := findHack(result.Hacks, domain.HackFullShipping)
		require.NotNil(t, hack)
		assert.Equal(t, 35, hack.Confidence)
		assert.Equal(t, domain.LevelLow, hack.ConfidenceLevel)
		assert.Equal(t, domain.LevelHigh, hack.Impact)
		assert.Contains(t, hack.Why, "Anúncio ainda não é elegível ao Full; verifique os requisitos.")
	})

	t.Run("categoria limitada a 40 quando ausente", func(t *testing.T) {
		signals := baseSignals()
		signals.CategoryID = nil
		signals.CategoryPath = nil
		signals.Visits = intPtr(300)
		signals.Orders = intPtr(0)
		signals.ConversionRate = floatPtr(0)

		result := GenerateHacks(domain.HackInput{Signals: signals, NowUTC: fixedNow})

		hack := findHack(result.Hacks, domain.HackCategoryAdjustment)
		require.NotNil(t, hack)
		assert.Equal(t, 40, hack.Confidence)
		assert.Equal(t, domain.LevelMedium, hack.ConfidenceLevel)
	})
}

func TestGenerateHacks_ClampEmZero(t *testing.T) {
	signals := baseSignals()
	signals.Visits = intPtr(10)
	signals.AvailableQuantity = intPtr(1)
	signals.Price = 15
	signals.IsFreeShipping = true
	signals.ShippingMode = domain.ShippingModeUnknown
	signals.ConversionRate = nil

	result := GenerateHacks(domain.HackInput{Signals: signals, NowUTC: fixedNow})

	hack := findHack(result.Hacks, domain.HackFullShipping)
	require.NotNil(t, hack)
	assert.Equal(t, 0, hack.Confidence)
	assert.Equal(t, domain.LevelLow, hack.ConfidenceLevel)
	assert.Nil(t, findHack(result.Hacks, domain.HackPsychologicalPrice))
}

func TestGenerateHacks_EmpateMantemOrdemDasRegras(t *testing.T) {
	fixed := func(id domain.HackID) rule {
		return rule{
			id:      id,
			title:   string(id),
			summary: func(*domain.Signals) string { return "" },
			gate:    noGate,
			score:   func(*domain.Signals) *scorecard { return newScorecard(50) },
			impact:  fixedImpact(domain.LevelLow),
		}
	}

	result := generate(domain.HackInput{NowUTC: fixedNow}, []rule{
		fixed(domain.HackCategoryAdjustment),
		fixed(domain.HackBundleKit),
		fixed(domain.HackFullShipping),
	})

	assert.Equal(t, []domain.HackID{
		domain.HackCategoryAdjustment,
		domain.HackBundleKit,
		domain.HackFullShipping,
	}, hackIDs(result.Hacks))
}

func TestGenerateHacks_Deterministico(t *testing.T) {
	input := domain.HackInput{
		Signals: baseSignals(),
		History: []domain.HackHistoryEntry{
			{HackID: domain.HackBundleKit, Status: domain.HackStatusDismissed, DismissedAt: timePtr(fixedNow.AddDate(0, 0, -3))},
		},
		NowUTC: fixedNow,
	}

	first := GenerateHacks(input)
	second := GenerateHacks(input)

	assert.Equal(t, first, second)
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 66,90", formatBRL(66.9))
	assert.Equal(t, "R$ 1500,00", formatBRL(1500))
	assert.Equal(t, "0,80%", formatPercent(0.008))
}
