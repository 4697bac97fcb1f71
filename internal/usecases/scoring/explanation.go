package scoring

import (
	"fmt"

	"github.com/fernando-m-vale/superseller-ia-sub001/internal/domain"
)

const performanceUnavailableExplanation = "Performance: não avaliada por indisponibilidade de dados da API."

// ExplainScore produz uma frase determinística por dimensão, na ordem canônica
func ExplainScore(breakdown domain.ScoreBreakdown, dataQuality domain.DataQuality, mediaInfo *domain.MediaInfo) []string {
	verdict := mediaInfo.Verdict()

	explanations := make([]string, 0, len(domain.ScoreDimensions))
	for _, dimension := range domain.ScoreDimensions {
		explanations = append(explanations, explainDimension(dimension, breakdown, dataQuality, verdict))
	}

	return explanations
}

func explainDimension(
	dimension domain.ScoreDimension,
	breakdown domain.ScoreBreakdown,
	dq domain.DataQuality,
	verdict domain.MediaVerdict,
) string {
	current := breakdown.Get(dimension)
	maxPoints := dimension.Max()

	switch dimension {
	case domain.DimensionCadastro:
		if current >= maxPoints {
			return fmt.Sprintf("Cadastro: %d/%d. Título, descrição, categoria e status estão completos.", current, maxPoints)
		}
		return fmt.Sprintf("Cadastro: %d/%d. Revise título (mais de %d caracteres), descrição (mais de %d caracteres), categoria e status ativo.",
			current, maxPoints, minTitleLength, minDescriptionLength)

	case domain.DimensionMidia:
		return fmt.Sprintf("Mídia: %d/%d. %s", current, maxPoints, verdict.Message)

	case domain.DimensionPerformance:
		if !dq.PerformanceAvailable {
			return performanceUnavailableExplanation
		}
		text := fmt.Sprintf("Performance: %d/%d. Considera visitas, pedidos e conversão frente à referência de %.0f%%.",
			current, maxPoints, baselineConversionRate*100)
		if coverage := dq.VisitsCoverage.Percent(); coverage < lowCoveragePercent {
			text = fmt.Sprintf("%s Cobertura de dados: %d%%.", text, coverage)
		}
		return text

	case domain.DimensionSEO:
		return fmt.Sprintf("SEO: %d/%d. Considera a taxa de cliques (CTR) frente à referência de %.0f%% e a qualidade semântica do título.",
			current, maxPoints, ctrReference*100)

	case domain.DimensionCompetitividade:
		return fmt.Sprintf("Competitividade: %d/%d. Avaliação provisória até a integração com o benchmark da categoria.", current, maxPoints)
	}

	return ""
}
