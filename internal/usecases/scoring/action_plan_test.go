package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernando-m-vale/superseller-ia-sub001/internal/domain"
)

func dimensionsOf(items []domain.ActionPlanItem) []domain.ScoreDimension {
	dimensions := make([]domain.ScoreDimension, 0, len(items))
	for _, item := range items {
		dimensions = append(dimensions, item.Dimension)
	}
	return dimensions
}

func findItem(items []domain.ActionPlanItem, dimension domain.ScoreDimension) *domain.ActionPlanItem {
	for i := range items {
		if items[i].Dimension == dimension {
			return &items[i]
		}
	}
	return nil
}

func TestGenerateActionPlan(t *testing.T) {
	partial := domain.ScoreBreakdown{Cadastro: 10, Midia: 5, Performance: 0, SEO: 10, Competitividade: 5}

	tests := []struct {
		name          string
		breakdown     domain.ScoreBreakdown
		dataQuality   domain.DataQuality
		potentialGain *domain.PotentialGain
		mediaInfo     *domain.MediaInfo
		validate      func(t *testing.T, items []domain.ActionPlanItem)
	}{
		{
			name:        "Ordena por pontos perdidos e omite performance indisponível",
			breakdown:   partial,
			dataQuality: domain.DataQuality{PerformanceAvailable: false},
			mediaInfo:   &domain.MediaInfo{PicturesCount: intPtr(4), HasClips: domain.TriStateFalse},
			validate: func(t *testing.T, items []domain.ActionPlanItem) {
				assert.Equal(t, []domain.ScoreDimension{
					domain.DimensionMidia,
					domain.DimensionCadastro,
					domain.DimensionSEO,
					domain.DimensionCompetitividade,
				}, dimensionsOf(items))

				assert.Equal(t, 15, items[0].LostPoints)
				assert.Equal(t, domain.PriorityHigh, items[0].Priority)
				assert.Equal(t, 20, items[0].ExpectedScoreAfterFix)
				assert.Contains(t, items[0].WhyThisMatters, "Adicione um clip")

				competitividade := findItem(items, domain.DimensionCompetitividade)
				require.NotNil(t, competitividade)
				assert.Equal(t, domain.PriorityMedium, competitividade.Priority)
				assert.Equal(t, 10, competitividade.ExpectedScoreAfterFix)
			},
		},
		{
			name:        "Clip desconhecido - nunca sugere adicionar clip",
			breakdown:   partial,
			dataQuality: domain.DataQuality{PerformanceAvailable: false},
			mediaInfo:   &domain.MediaInfo{PicturesCount: intPtr(4), HasClips: domain.TriStateUnknown},
			validate: func(t *testing.T, items []domain.ActionPlanItem) {
				midia := findItem(items, domain.DimensionMidia)
				require.NotNil(t, midia)
				assert.NotContains(t, midia.WhyThisMatters, "Adicione um clip")
				assert.Contains(t, midia.WhyThisMatters, "verificar o clip")
			},
		},
		{
			name:        "Mídia completa sem clip sugerível e 8 imagens - omite mídia",
			breakdown:   domain.ScoreBreakdown{Cadastro: 20, Midia: 10, Performance: 30, SEO: 20, Competitividade: 5},
			dataQuality: domain.DataQuality{PerformanceAvailable: true},
			mediaInfo:   &domain.MediaInfo{PicturesCount: intPtr(8), HasClips: domain.TriStateUnknown},
			validate: func(t *testing.T, items []domain.ActionPlanItem) {
				assert.Equal(t, []domain.ScoreDimension{domain.DimensionCompetitividade}, dimensionsOf(items))
			},
		},
		{
			name:        "Clip confirmado e 6 imagens - omite mídia",
			breakdown:   domain.ScoreBreakdown{Cadastro: 20, Midia: 15, Performance: 30, SEO: 20, Competitividade: 10},
			dataQuality: domain.DataQuality{PerformanceAvailable: true},
			mediaInfo:   &domain.MediaInfo{PicturesCount: intPtr(6), HasClips: domain.TriStateTrue},
			validate: func(t *testing.T, items []domain.ActionPlanItem) {
				assert.Empty(t, items)
			},
		},
		{
			name:      "Performance com baixa cobertura - cita cobertura e ganho potencial",
			breakdown: domain.ScoreBreakdown{Cadastro: 20, Midia: 20, Performance: 0, SEO: 20, Competitividade: 10},
			dataQuality: domain.DataQuality{
				PerformanceAvailable: true,
				VisitsCoverage:       domain.VisitsCoverage{FilledDays: 10, TotalDays: 30},
			},
			potentialGain: &domain.PotentialGain{Performance: stringPtr("+30")},
			mediaInfo:     &domain.MediaInfo{PicturesCount: intPtr(8), HasClips: domain.TriStateTrue},
			validate: func(t *testing.T, items []domain.ActionPlanItem) {
				require.Len(t, items, 1)
				assert.Equal(t, domain.DimensionPerformance, items[0].Dimension)
				assert.Equal(t, 30, items[0].LostPoints)
				assert.Contains(t, items[0].WhyThisMatters, "Cobertura de dados: 33%.")
				assert.Contains(t, items[0].WhyThisMatters, "Ganho potencial: +30 pontos.")
			},
		},
		{
			name:        "MediaInfo ausente - trata o clip como desconhecido",
			breakdown:   domain.ScoreBreakdown{Cadastro: 20, Midia: 0, Performance: 30, SEO: 20, Competitividade: 10},
			dataQuality: domain.DataQuality{PerformanceAvailable: true},
			mediaInfo:   nil,
			validate: func(t *testing.T, items []domain.ActionPlanItem) {
				require.Len(t, items, 1)
				assert.NotContains(t, items[0].WhyThisMatters, "Adicione um clip")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := GenerateActionPlan(tt.breakdown, tt.dataQuality, tt.potentialGain, tt.mediaInfo)
			tt.validate(t, items)
		})
	}
}

func TestGenerateActionPlan_Deterministico(t *testing.T) {
	breakdown := domain.ScoreBreakdown{Cadastro: 15, Midia: 5, Performance: 10, SEO: 12, Competitividade: 5}
	dq := domain.DataQuality{PerformanceAvailable: true, VisitsCoverage: domain.VisitsCoverage{FilledDays: 30, TotalDays: 30}}
	media := &domain.MediaInfo{PicturesCount: intPtr(3), HasClips: domain.TriStateFalse}

	assert.Equal(t,
		GenerateActionPlan(breakdown, dq, nil, media),
		GenerateActionPlan(breakdown, dq, nil, media),
	)
}
