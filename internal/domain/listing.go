// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

type ListingStatus string

const (
	ListingStatusActive  ListingStatus = "active"
	ListingStatusPaused  ListingStatus = "paused"
	ListingStatusClosed  ListingStatus = "closed"
	ListingStatusUnknown ListingStatus = "unknown"
)

// ParseListingStatus normaliza o status vindo do marketplace
func ParseListingStatus(s string) ListingStatus {
	switch ListingStatus(s) {
	case ListingStatusActive, ListingStatusPaused, ListingStatusClosed:
		return ListingStatus(s)
	default:
		return ListingStatusUnknown
	}
}

type ShippingMode string

const (
	ShippingModeFull    ShippingMode = "full"
	ShippingModeFlex    ShippingMode = "flex"
	ShippingModeME2     ShippingMode = "me2"
	ShippingModeUnknown ShippingMode = "unknown"
)

func ParseShippingMode(s string) ShippingMode {
	switch ShippingMode(s) {
	case ShippingModeFull, ShippingModeFlex, ShippingModeME2:
		return ShippingMode(s)
	default:
		return ShippingModeUnknown
	}
}

// Listing é o registro do anúncio como materializado pelo repositório
type Listing struct {
	ID                string        `json:"id"`
	TenantID          string        `json:"tenant_id"`
	ExternalID        string        `json:"external_id"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	CategoryID        *string       `json:"category_id"`
	CategoryPath      []string      `json:"category_path"`
	Price             float64       `json:"price"`
	AvailableQuantity *int          `json:"available_quantity"`
	Status            ListingStatus `json:"status"`
	PicturesCount     *int          `json:"pictures_count"`
	HasClips          TriState      `json:"has_clips"`
	VariationsCount   *int          `json:"variations_count"`
	IsCatalog         bool          `json:"is_catalog"`
	OriginalPrice     *float64      `json:"original_price"`
	HasPromotion      bool          `json:"has_promotion"`
	DiscountPercent   *float64      `json:"discount_percent"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// ListingPricing traz os dados de preço/promoção quando obtidos separadamente
type ListingPricing struct {
	Price           float64  `json:"price"`
	OriginalPrice   *float64 `json:"original_price"`
	HasPromotion    bool     `json:"has_promotion"`
	DiscountPercent *float64 `json:"discount_percent"`
}

type ListingShipping struct {
	Mode           ShippingMode `json:"mode"`
	IsFreeShipping bool         `json:"is_free_shipping"`
	IsFullEligible TriState     `json:"is_full_eligible"`
}
