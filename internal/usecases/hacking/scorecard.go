package hacking

import (
	"fmt"
	"math"
	"strings"
)

// scorecard acumula pontos, motivos e evidências de uma regra
type scorecard struct {
	points   int
	why      []string
	evidence []string
}

func newScorecard(base int) *scorecard {
	return &scorecard{points: base, why: []string{}, evidence: []string{}}
}

func (c *scorecard) add(points int, reason string) {
	c.points += points
	if reason != "" {
		c.why = append(c.why, reason)
	}
}

func (c *scorecard) note(format string, args ...any) {
	c.evidence = append(c.evidence, fmt.Sprintf(format, args...))
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// formatBRL formata valores monetários no padrão brasileiro simplificado (R$ 66,90)
func formatBRL(value float64) string {
	return "R$ " + strings.Replace(fmt.Sprintf("%.2f", value), ".", ",", 1)
}

func formatPercent(rate float64) string {
	return strings.Replace(fmt.Sprintf("%.2f%%", rate*100), ".", ",", 1)
}

// priceCents devolve os centavos do preço, arredondados ao centavo mais próximo
func priceCents(price float64) int {
	return int(math.Round(price*100)) % 100
}

// psychologicalPrice sugere o maior preço terminado em ,90 que não supera o atual
func psychologicalPrice(price float64) float64 {
	candidate := math.Floor(price) + 0.90
	if candidate > price+0.0001 {
		candidate--
	}
	return math.Round(candidate*100) / 100
}
