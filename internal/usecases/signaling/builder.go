// Package signaling normaliza o anúncio e seus dados auxiliares em Signals
package signaling

import (
	"strings"
	"unicode"

	"github.com/fernando-m-vale/superseller-ia-sub001/internal/domain"
)

var (
	kitKeywords       = []string{"kit", "combo", "conjunto"}
	multiItemKeywords = []string{"e", "com", "pack", "pacote", "lote"}
)

const minVariationsForConnector = 2

// Build monta os sinais de uma avaliação. Entradas opcionais ausentes viram nil/false,
// nunca valores inventados.
func Build(
	listing domain.Listing,
	pricing *domain.ListingPricing,
	shipping *domain.ListingShipping,
	metrics *domain.MetricsAggregate,
	benchmark *domain.CategoryBenchmark,
) domain.Signals {
	signals := domain.Signals{
		ListingID:      listing.ID,
		Status:         domain.ParseListingStatus(string(listing.Status)),
		CategoryID:     copyString(listing.CategoryID),
		CategoryPath:   append([]string(nil), listing.CategoryPath...),
		ShippingMode:   domain.ShippingModeUnknown,
		IsFullEligible: domain.TriStateUnknown,
		PicturesCount:  copyInt(listing.PicturesCount),
		HasClips:       listing.HasClips,
		IsCatalog:      listing.IsCatalog,
	}

	resolved := ResolvePricing(listing, pricing)
	signals.Price = resolved.Price
	signals.OriginalPrice = resolved.OriginalPrice
	signals.HasPromotion = resolved.HasPromotion
	signals.DiscountPercent = resolved.DiscountPercent

	if listing.AvailableQuantity != nil {
		signals.AvailableQuantity = copyInt(listing.AvailableQuantity)
	}

	if listing.VariationsCount != nil && *listing.VariationsCount > 0 {
		signals.VariationsCount = *listing.VariationsCount
	}

	if shipping != nil {
		signals.ShippingMode = domain.ParseShippingMode(string(shipping.Mode))
		signals.IsFreeShipping = shipping.IsFreeShipping
		signals.IsFullEligible = shipping.IsFullEligible
	}

	if metrics != nil {
		signals.Visits = copyInt(metrics.Visits)
		signals.Orders = copyInt(metrics.Orders)
		signals.Revenue = copyFloat(metrics.Revenue)
		signals.ConversionRate = copyFloat(metrics.ConversionRate)

		if signals.ConversionRate == nil && signals.Visits != nil && *signals.Visits > 0 && signals.Orders != nil {
			rate := float64(*signals.Orders) / float64(*signals.Visits)
			signals.ConversionRate = &rate
		}
	}

	if benchmark != nil {
		signals.Benchmark = &domain.CategoryBenchmark{
			MedianPrice:            copyFloat(benchmark.MedianPrice),
			P25Price:               copyFloat(benchmark.P25Price),
			P75Price:               copyFloat(benchmark.P75Price),
			BaselineConversionRate: copyFloat(benchmark.BaselineConversionRate),
			BaselineConfidence:     benchmark.BaselineConfidence,
			BaselineSampleSize:     benchmark.BaselineSampleSize,
		}
	}

	signals.IsKitHeuristic = IsKitHeuristic(listing, &signals.VariationsCount)

	return signals
}

// ResolvePricing escolhe a fonte de preço (registro de pricing quando existe, senão o anúncio)
// e deriva o desconto do preço original quando ele não vem informado. Sinais e lacunas
// usam sempre este mesmo resultado.
func ResolvePricing(listing domain.Listing, pricing *domain.ListingPricing) domain.ListingPricing {
	resolved := domain.ListingPricing{
		Price:           listing.Price,
		OriginalPrice:   copyFloat(listing.OriginalPrice),
		HasPromotion:    listing.HasPromotion,
		DiscountPercent: copyFloat(listing.DiscountPercent),
	}

	if pricing != nil {
		resolved = domain.ListingPricing{
			Price:           pricing.Price,
			OriginalPrice:   copyFloat(pricing.OriginalPrice),
			HasPromotion:    pricing.HasPromotion,
			DiscountPercent: copyFloat(pricing.DiscountPercent),
		}
	}

	if resolved.DiscountPercent == nil && resolved.HasPromotion && resolved.OriginalPrice != nil &&
		*resolved.OriginalPrice > 0 && resolved.Price > 0 && resolved.Price < *resolved.OriginalPrice {
		original := *resolved.OriginalPrice
		discount := (1 - resolved.Price/original) * 100
		resolved.DiscountPercent = &discount
	}

	return resolved
}

// IsKitHeuristic indica se o anúncio já parece um kit/combo. Verdadeiro quando o título traz
// uma palavra de kit, ou quando há 2+ variações e o título tem um conector de múltiplos itens.
func IsKitHeuristic(listing domain.Listing, variationsCount *int) bool {
	title := strings.ToLower(listing.Title)
	tokens := tokenize(title)

	for _, token := range tokens {
		if strings.HasPrefix(token, "c/") {
			return true
		}
		for _, keyword := range kitKeywords {
			if token == keyword || token == keyword+"s" {
				return true
			}
		}
	}

	if variationsCount == nil || *variationsCount < minVariationsForConnector {
		return false
	}

	if strings.Contains(title, "+") {
		return true
	}

	for _, token := range tokens {
		for _, keyword := range multiItemKeywords {
			if token == keyword {
				return true
			}
		}
	}

	return false
}

// tokenize quebra o título em palavras preservando "/" e "+"
func tokenize(title string) []string {
	return strings.FieldsFunc(title, func(r rune) bool {
		if r == '/' || r == '+' {
			return false
		}
		return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
