package domain

import "time"

type ScoreDimension string

const (
	DimensionCadastro        ScoreDimension = "cadastro"
	DimensionMidia           ScoreDimension = "midia"
	DimensionPerformance     ScoreDimension = "performance"
	DimensionSEO             ScoreDimension = "seo"
	DimensionCompetitividade ScoreDimension = "competitividade"
)

// ScoreDimensions mantém a ordem canônica das dimensões
var ScoreDimensions = []ScoreDimension{
	DimensionCadastro,
	DimensionMidia,
	DimensionPerformance,
	DimensionSEO,
	DimensionCompetitividade,
}

var dimensionMax = map[ScoreDimension]int{
	DimensionCadastro:        20,
	DimensionMidia:           20,
	DimensionPerformance:     30,
	DimensionSEO:             20,
	DimensionCompetitividade: 10,
}

// Max devolve a pontuação máxima de uma dimensão
func (d ScoreDimension) Max() int {
	return dimensionMax[d]
}

const MaxScore = 100

type ScoreBreakdown struct {
	Cadastro        int `json:"cadastro"`
	Midia           int `json:"midia"`
	Performance     int `json:"performance"`
	SEO             int `json:"seo"`
	Competitividade int `json:"competitividade"`
}

// Get devolve o valor atual da dimensão
func (b ScoreBreakdown) Get(d ScoreDimension) int {
	switch d {
	case DimensionCadastro:
		return b.Cadastro
	case DimensionMidia:
		return b.Midia
	case DimensionPerformance:
		return b.Performance
	case DimensionSEO:
		return b.SEO
	case DimensionCompetitividade:
		return b.Competitividade
	}
	return 0
}

// Clamped garante cada dimensão em [0, máximo]
func (b ScoreBreakdown) Clamped() ScoreBreakdown {
	return ScoreBreakdown{
		Cadastro:        clampInt(b.Cadastro, 0, DimensionCadastro.Max()),
		Midia:           clampInt(b.Midia, 0, DimensionMidia.Max()),
		Performance:     clampInt(b.Performance, 0, DimensionPerformance.Max()),
		SEO:             clampInt(b.SEO, 0, DimensionSEO.Max()),
		Competitividade: clampInt(b.Competitividade, 0, DimensionCompetitividade.Max()),
	}
}

// Final soma as dimensões já limitadas, limitada a 100
func (b ScoreBreakdown) Final() int {
	c := b.Clamped()
	return clampInt(c.Cadastro+c.Midia+c.Performance+c.SEO+c.Competitividade, 0, MaxScore)
}

// PotentialGain traz dicas textuais "+N" por dimensão; nil quando não há ganho evidenciado
type PotentialGain struct {
	Cadastro        *string `json:"cadastro,omitempty"`
	Midia           *string `json:"midia,omitempty"`
	Performance     *string `json:"performance,omitempty"`
	SEO             *string `json:"seo,omitempty"`
	Competitividade *string `json:"competitividade,omitempty"`
}

func (p *PotentialGain) Get(d ScoreDimension) *string {
	if p == nil {
		return nil
	}
	switch d {
	case DimensionCadastro:
		return p.Cadastro
	case DimensionMidia:
		return p.Midia
	case DimensionPerformance:
		return p.Performance
	case DimensionSEO:
		return p.SEO
	case DimensionCompetitividade:
		return p.Competitividade
	}
	return nil
}

type VisitsCoverage struct {
	FilledDays int `json:"filled_days"`
	TotalDays  int `json:"total_days"`
}

// Percent devolve a cobertura de visitas em pontos percentuais inteiros
func (v VisitsCoverage) Percent() int {
	if v.TotalDays <= 0 {
		return 0
	}
	pct := v.FilledDays * 100 / v.TotalDays
	return clampInt(pct, 0, 100)
}

type DataQuality struct {
	PerformanceAvailable bool           `json:"performance_available"`
	HasDailyMetrics      bool           `json:"has_daily_metrics"`
	HasAggregates        bool           `json:"has_aggregates"`
	VisitsCoverage       VisitsCoverage `json:"visits_coverage"`
	CompletenessScore    int            `json:"completeness_score"`
	MissingFields        []string       `json:"missing_fields"`
}

type ScoreResult struct {
	ListingID     string           `json:"listing_id"`
	PeriodDays    int              `json:"period_days"`
	Breakdown     ScoreBreakdown   `json:"breakdown"`
	Final         int              `json:"score"`
	PotentialGain PotentialGain    `json:"potential_gain"`
	Metrics30d    MetricsAggregate `json:"metrics_30d"`
	DataQuality   DataQuality      `json:"data_quality"`
	MediaVerdict  MediaVerdict     `json:"media_verdict"`
}

type ActionPriority string

const (
	PriorityHigh   ActionPriority = "high"
	PriorityMedium ActionPriority = "medium"
	PriorityLow    ActionPriority = "low"
)

// Rank ordena prioridades (maior é mais urgente)
func (p ActionPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

type ActionPlanItem struct {
	Dimension             ScoreDimension `json:"dimension"`
	LostPoints            int            `json:"lost_points"`
	WhyThisMatters        string         `json:"why_this_matters"`
	ExpectedScoreAfterFix int            `json:"expected_score_after_fix"`
	Priority              ActionPriority `json:"priority"`
}

// ScoreSnapshot é a fotografia diária persistida pelo agendador
type ScoreSnapshot struct {
	ID                string         `json:"id"`
	ListingID         string         `json:"listing_id"`
	Date              time.Time      `json:"date"`
	Score             int            `json:"score"`
	Breakdown         ScoreBreakdown `json:"breakdown"`
	CompletenessScore int            `json:"completeness_score"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
