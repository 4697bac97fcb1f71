package domain

// CategoryBenchmark é o benchmark opcional da categoria anexado aos sinais
type CategoryBenchmark struct {
	MedianPrice            *float64           `json:"median_price"`
	P25Price               *float64           `json:"p25_price"`
	P75Price               *float64           `json:"p75_price"`
	BaselineConversionRate *float64           `json:"baseline_conversion_rate"`
	BaselineConfidence     BaselineConfidence `json:"baseline_confidence"`
	BaselineSampleSize     int                `json:"baseline_sample_size"`
}

// Signals é o registro plano e tipado de uma avaliação. Construído uma vez e nunca alterado.
type Signals struct {
	ListingID    string        `json:"listing_id"`
	Status       ListingStatus `json:"status"`
	CategoryID   *string       `json:"category_id"`
	CategoryPath []string      `json:"category_path"`

	Price           float64  `json:"price"`
	OriginalPrice   *float64 `json:"original_price"`
	HasPromotion    bool     `json:"has_promotion"`
	DiscountPercent *float64 `json:"discount_percent"`

	AvailableQuantity *int `json:"available_quantity"`

	ShippingMode   ShippingMode `json:"shipping_mode"`
	IsFreeShipping bool         `json:"is_free_shipping"`
	IsFullEligible TriState     `json:"is_full_eligible"`

	PicturesCount   *int     `json:"pictures_count"`
	HasClips        TriState `json:"has_clips"`
	VariationsCount int      `json:"variations_count"`
	IsKitHeuristic  bool     `json:"is_kit_heuristic"`
	IsCatalog       bool     `json:"is_catalog"`

	Visits         *int     `json:"visits"`
	Orders         *int     `json:"orders"`
	Revenue        *float64 `json:"revenue"`
	ConversionRate *float64 `json:"conversion_rate"`

	Benchmark *CategoryBenchmark `json:"benchmark,omitempty"`
}

func (s *Signals) HasCategory() bool {
	return s.CategoryID != nil && *s.CategoryID != ""
}

// Pictures devolve a contagem de imagens, 0 quando desconhecida
func (s *Signals) Pictures() int {
	if s.PicturesCount == nil {
		return 0
	}
	return *s.PicturesCount
}
