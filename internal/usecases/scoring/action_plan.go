package scoring

import (
	"fmt"
	"sort"

	"github.com/fernando-m-vale/superseller-ia-sub001/internal/domain"
)

const (
	highPriorityLostPoints   = 10
	mediumPriorityLostPoints = 5

	// abaixo desta cobertura de visitas o plano sinaliza a cobertura dos dados
	lowCoveragePercent = 50
)

// GenerateActionPlan transforma o breakdown em ações priorizadas, omitindo ações que a
// qualidade dos dados ou o veredito de mídia não sustentam
func GenerateActionPlan(
	breakdown domain.ScoreBreakdown,
	dataQuality domain.DataQuality,
	potentialGain *domain.PotentialGain,
	mediaInfo *domain.MediaInfo,
) []domain.ActionPlanItem {
	verdict := mediaInfo.Verdict()
	pictures := mediaInfo.Pictures()

	items := make([]domain.ActionPlanItem, 0, len(domain.ScoreDimensions))
	for _, dimension := range domain.ScoreDimensions {
		current := breakdown.Get(dimension)
		maxPoints := dimension.Max()
		lost := maxPoints - current
		if lost <= 0 {
			continue
		}

		if dimension == domain.DimensionPerformance && !dataQuality.PerformanceAvailable {
			continue
		}

		if dimension == domain.DimensionMidia && mediaComplete(verdict, pictures) {
			continue
		}

		expected := current + lost
		if expected > maxPoints {
			expected = maxPoints
		}

		items = append(items, domain.ActionPlanItem{
			Dimension:             dimension,
			LostPoints:            lost,
			WhyThisMatters:        whyThisMatters(dimension, dataQuality, potentialGain, verdict, pictures),
			ExpectedScoreAfterFix: expected,
			Priority:              priorityFor(lost),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].LostPoints != items[j].LostPoints {
			return items[i].LostPoints > items[j].LostPoints
		}
		return items[i].Priority.Rank() > items[j].Priority.Rank()
	})

	return items
}

// mediaComplete: sem clip sugerível e 8+ imagens, ou clip confirmado e 6+ imagens
func mediaComplete(verdict domain.MediaVerdict, pictures int) bool {
	if !verdict.CanSuggestClip && pictures >= 8 {
		return true
	}
	return verdict.HasClipDetected.IsTrue() && pictures >= 6
}

func priorityFor(lost int) domain.ActionPriority {
	switch {
	case lost >= highPriorityLostPoints:
		return domain.PriorityHigh
	case lost >= mediumPriorityLostPoints:
		return domain.PriorityMedium
	}
	return domain.PriorityLow
}

func whyThisMatters(
	dimension domain.ScoreDimension,
	dq domain.DataQuality,
	potentialGain *domain.PotentialGain,
	verdict domain.MediaVerdict,
	pictures int,
) string {
	var text string

	switch dimension {
	case domain.DimensionCadastro:
		text = "Título descritivo, descrição completa, categoria correta e anúncio ativo melhoram a relevância na busca e a confiança do comprador."
	case domain.DimensionMidia:
		text = midiaWhy(verdict, pictures)
	case domain.DimensionPerformance:
		text = "Visitas e vendas recentes mostram a tração do anúncio; melhorar a conversão recupera posições no ranking."
		if coverage := dq.VisitsCoverage.Percent(); coverage < lowCoveragePercent {
			text = fmt.Sprintf("%s Cobertura de dados: %d%%.", text, coverage)
		}
	case domain.DimensionSEO:
		text = "A taxa de cliques (CTR) indica se título e imagem principal atraem o comprador nos resultados de busca."
	case domain.DimensionCompetitividade:
		text = "Preço e condições alinhados à categoria aumentam a competitividade do anúncio."
	}

	if gain := potentialGain.Get(dimension); gain != nil {
		text = fmt.Sprintf("%s Ganho potencial: %s pontos.", text, *gain)
	}

	return text
}

// midiaWhy deriva o texto de mídia exclusivamente do veredito de mídia
func midiaWhy(verdict domain.MediaVerdict, pictures int) string {
	switch {
	case verdict.CanSuggestClip:
		return "Imagens de qualidade e um clip aumentam o engajamento e a conversão. " + verdict.Message
	case verdict.HasClipDetected.IsTrue():
		return fmt.Sprintf("O clip já está presente; complete a galeria de imagens (atualmente %d). %s", pictures, verdict.Message)
	default:
		return "Imagens de qualidade aumentam o engajamento. " + verdict.Message
	}
}
