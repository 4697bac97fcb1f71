package domain

// Competitor é um item da amostra de concorrentes da categoria
type Competitor struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Price         float64  `json:"price"`
	PicturesCount int      `json:"pictures_count"`
	HasVideo      TriState `json:"has_video"`
	CategoryID    string   `json:"category_id"`
}

type BenchmarkStats struct {
	SampleSize           int     `json:"sample_size"`
	VideoDetectableCount int     `json:"video_detectable_count"`
	MedianPicturesCount  float64 `json:"median_pictures_count"`
	PercentageWithVideo  float64 `json:"percentage_with_video"`
	MedianPrice          float64 `json:"median_price"`
	P25Price             float64 `json:"p25_price"`
	P75Price             float64 `json:"p75_price"`
	MedianTitleLength    float64 `json:"median_title_length"`
}

type BaselineConfidence string

const (
	ConfidenceHigh        BaselineConfidence = "high"
	ConfidenceMedium      BaselineConfidence = "medium"
	ConfidenceLow         BaselineConfidence = "low"
	ConfidenceUnavailable BaselineConfidence = "unavailable"
)

// Rank ordena níveis de confiança (maior é mais confiável)
func (c BaselineConfidence) Rank() int {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	case ConfidenceLow:
		return 1
	}
	return 0
}

// BaselineConversion é a conversão interna do tenant na categoria. ConversionRate é nil
// quando a amostra não sustenta o número.
type BaselineConversion struct {
	CategoryID     string             `json:"category_id"`
	ConversionRate *float64           `json:"conversion_rate"`
	Confidence     BaselineConfidence `json:"confidence"`
	SampleSize     int                `json:"sample_size"`
	TotalVisits    int                `json:"total_visits"`
	TotalOrders    int                `json:"total_orders"`
}

func (b *BaselineConversion) Available() bool {
	return b != nil && b.Confidence != ConfidenceUnavailable && b.Confidence != "" && b.ConversionRate != nil
}

type GapDimension string

const (
	GapDimensionPrice       GapDimension = "price"
	GapDimensionTitle       GapDimension = "title"
	GapDimensionImages      GapDimension = "images"
	GapDimensionVideo       GapDimension = "video"
	GapDimensionDescription GapDimension = "description"
)

// Level é usado para impacto, esforço e confiança das lacunas
type Level string

const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
)

func (l Level) Rank() int {
	switch l {
	case LevelHigh:
		return 3
	case LevelMedium:
		return 2
	case LevelLow:
		return 1
	}
	return 0
}

type CriticalGap struct {
	ID           string             `json:"id"`
	Dimension    GapDimension       `json:"dimension"`
	Title        string             `json:"title"`
	WhyItMatters string             `json:"why_it_matters"`
	Impact       Level              `json:"impact"`
	Effort       Level              `json:"effort"`
	Confidence   Level              `json:"confidence"`
	Metrics      map[string]float64 `json:"metrics"`
}

// BenchmarkInsights agrega o que é devolvido ao chamador pelo endpoint de benchmark
type BenchmarkInsights struct {
	Stats        BenchmarkStats     `json:"stats"`
	Baseline     BaselineConversion `json:"baseline"`
	CriticalGaps []CriticalGap      `json:"critical_gaps"`
}
