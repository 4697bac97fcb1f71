// Package hacking gera sugestões de hacks a partir dos sinais do anúncio.
// A geração é determinística: mesma entrada, mesma saída.
package hacking

import (
	"sort"

	"github.com/fernando-m-vale/superseller-ia-sub001/internal/domain"
)

const (
	highConfidenceScore   = 70
	mediumConfidenceScore = 40
)

// GenerateHacks avalia as regras na ordem fixa e devolve as sugestões ordenadas por confiança
func GenerateHacks(input domain.HackInput) domain.HackResult {
	return generate(input, defaultRules)
}

func generate(input domain.HackInput, rules []rule) domain.HackResult {
	history := newHistoryIndex(input.History)
	nowUTC := input.NowUTC.UTC()

	result := domain.HackResult{Hacks: []domain.HackSuggestion{}}
	for _, r := range rules {
		if history.suppressed(r.id, nowUTC) {
			result.Meta.SkippedByHistory++
			continue
		}

		result.Meta.RulesEvaluated++
		suggestion, ok := r.evaluate(&input.Signals)
		if !ok {
			result.Meta.SkippedByRequirements++
			continue
		}

		result.Meta.RulesTriggered++
		result.Hacks = append(result.Hacks, suggestion)
	}

	sort.SliceStable(result.Hacks, func(i, j int) bool {
		return result.Hacks[i].Confidence > result.Hacks[j].Confidence
	})

	return result
}

// evaluate aplica portão, pontuação, clamp e teto; false quando o portão omite o hack
func (r rule) evaluate(signals *domain.Signals) (domain.HackSuggestion, bool) {
	decision := r.gate(signals)
	if decision.omit {
		return domain.HackSuggestion{}, false
	}

	card := r.score(signals)
	score := clampScore(card.points)
	if decision.capAt > 0 && score > decision.capAt {
		score = decision.capAt
	}

	why := card.why
	if decision.reason != "" {
		why = append(why, decision.reason)
	}

	return domain.HackSuggestion{
		ID:              r.id,
		Title:           r.title,
		Summary:         r.summary(signals),
		Why:             why,
		Impact:          r.impact(score),
		Confidence:      score,
		ConfidenceLevel: confidenceLevel(score),
		Evidence:        card.evidence,
	}, true
}

func confidenceLevel(score int) domain.Level {
	switch {
	case score >= highConfidenceScore:
		return domain.LevelHigh
	case score >= mediumConfidenceScore:
		return domain.LevelMedium
	default:
		return domain.LevelLow
	}
}
