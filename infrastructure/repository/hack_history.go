package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/fernando-m-vale/superseller-ia-sub001/infrastructure/database/postgres"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/domain"
	"github.com/fernando-m-vale/superseller-ia-sub001/pkg/utils"
	"github.com/lib/pq"
)

const (
	hackHistoryTable = "hack_history h"
)

type HackHistoryRepository interface {
	ListByListing(ctx context.Context, listingID string) ([]domain.HackHistoryEntry, error)
	Save(ctx context.Context, entry *domain.HackHistoryEntry) error
}

type hackHistoryRepository struct {
	conn postgres.Queryer
}

func NewHackHistoryRepository(conn postgres.Queryer) HackHistoryRepository {
	return &hackHistoryRepository{
		conn: conn,
	}
}

func (r *hackHistoryRepository) ListByListing(ctx context.Context, listingID string) ([]domain.HackHistoryEntry, error) {
	query, args, err := squirrel.
		Select("h.id", "h.listing_id", "h.hack_id", "h.status", "h.dismissed_at", "h.confirmed_at").
		From(hackHistoryTable).
		Where(squirrel.Eq{"h.listing_id": listingID}).
		OrderBy("h.created_at ASC", "h.id ASC").
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

	entries := make([]domain.HackHistoryEntry, 0)
	for rows.Next() {
		var (
			entry       domain.HackHistoryEntry
			hackID      string
			status      string
			dismissedAt sql.NullTime
			confirmedAt sql.NullTime
		)

		if err := rows.Scan(&entry.ID, &entry.ListingID, &hackID, &status, &dismissedAt, &confirmedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear histórico de hack: %w", err)
		}

		entry.HackID = domain.HackID(hackID)
		entry.Status = domain.HackStatus(status)
		entry.DismissedAt = nullTimePtr(dismissedAt)
		entry.ConfirmedAt = nullTimePtr(confirmedAt)
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar histórico de hacks: %w", err)
	}

	return entries, nil
}

// Save insere um novo registro de feedback; o histórico nunca é sobrescrito
func (r *hackHistoryRepository) Save(ctx context.Context, entry *domain.HackHistoryEntry) error {
	if entry.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id do histórico: %w", err)
		}
		entry.ID = id
	}

	query, args, err := squirrel.
		Insert("hack_history").
		Columns("id", "listing_id", "hack_id", "status", "dismissed_at", "confirmed_at").
		Values(entry.ID, entry.ListingID, string(entry.HackID), string(entry.Status), entry.DismissedAt, entry.ConfirmedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
