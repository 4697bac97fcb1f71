package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/fernando-m-vale/superseller-ia-sub001/infrastructure/database/postgres"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/domain"
	"github.com/lib/pq"
)

const (
	listingsTable = "listings l"
)

var listingColumns = []string{
	"l.id",
	"l.tenant_id",
	"l.external_id",
	"l.title",
	"l.description",
	"l.category_id",
	"l.category_path",
	"l.price",
	"l.original_price",
	"l.has_promotion",
	"l.discount_percent",
	"l.available_quantity",
	"l.status",
	"l.pictures_count",
	"l.has_clips",
	"l.variations_count",
	"l.is_catalog",
	"l.created_at",
	"l.updated_at",
}

type ListingRepository interface {
	GetByID(ctx context.Context, listingID string) (*domain.Listing, error)
	GetShipping(ctx context.Context, listingID string) (*domain.ListingShipping, error)
	ListActive(ctx context.Context) ([]*domain.Listing, error)
}

type listingRepository struct {
	conn postgres.Queryer
}

func NewListingRepository(conn postgres.Queryer) ListingRepository {
	return &listingRepository{
		conn: conn,
	}
}

func (r *listingRepository) GetByID(ctx context.Context, listingID string) (*domain.Listing, error) {
	query, args, err := squirrel.
		Select(listingColumns...).
		From(listingsTable).
		Where(squirrel.Eq{"l.id": listingID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	listing, err := scanListing(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear anúncio: %w", err)
	}

	return listing, nil
}

func (r *listingRepository) GetShipping(ctx context.Context, listingID string) (*domain.ListingShipping, error) {
	query, args, err := squirrel.
		Select("l.shipping_mode", "l.is_free_shipping", "l.is_full_eligible").
		From(listingsTable).
		Where(squirrel.Eq{"l.id": listingID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		mode         sql.NullString
		shipping     domain.ListingShipping
		fullEligible sql.NullBool
	)

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&mode, &shipping.IsFreeShipping, &fullEligible)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear frete: %w", err)
	}

	shipping.Mode = domain.ParseShippingMode(mode.String)
	shipping.IsFullEligible = nullTriState(fullEligible)

	return &shipping, nil
}

func (r *listingRepository) ListActive(ctx context.Context) ([]*domain.Listing, error) {
	query, args, err := squirrel.
		Select(listingColumns...).
		From(listingsTable).
		Where(squirrel.Eq{"l.status": string(domain.ListingStatusActive)}).
		OrderBy("l.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	listings := make([]*domain.Listing, 0)
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear anúncio: %w", err)
		}
		listings = append(listings, listing)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar anúncios: %w", err)
	}

	return listings, nil
}

func scanListing(row rowScanner) (*domain.Listing, error) {
	var (
		listing       domain.Listing
		description   sql.NullString
		categoryID    sql.NullString
		categoryPath  pq.StringArray
		originalPrice sql.NullFloat64
		discount      sql.NullFloat64
		quantity      sql.NullInt64
		status        string
		pictures      sql.NullInt64
		hasClips      sql.NullBool
		variations    sql.NullInt64
	)

	err := row.Scan(
		&listing.ID,
		&listing.TenantID,
		&listing.ExternalID,
		&listing.Title,
		&description,
		&categoryID,
		&categoryPath,
		&listing.Price,
		&originalPrice,
		&listing.HasPromotion,
		&discount,
		&quantity,
		&status,
		&pictures,
		&hasClips,
		&variations,
		&listing.IsCatalog,
		&listing.CreatedAt,
		&listing.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	listing.Description = description.String
	listing.CategoryID = nullStringPtr(categoryID)
	if len(categoryPath) > 0 {
		listing.CategoryPath = []string(categoryPath)
	}
	listing.OriginalPrice = nullFloatPtr(originalPrice)
	listing.DiscountPercent = nullFloatPtr(discount)
	listing.AvailableQuantity = nullIntPtr(quantity)
	listing.Status = domain.ParseListingStatus(status)
	listing.PicturesCount = nullIntPtr(pictures)
	listing.HasClips = nullTriState(hasClips)
	listing.VariationsCount = nullIntPtr(variations)

	return &listing, nil
}
