package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/fernando-m-vale/superseller-ia-sub001/infrastructure/database/postgres"
	"github.com/fernando-m-vale/superseller-ia-sub001/internal/domain"
	"github.com/fernando-m-vale/superseller-ia-sub001/pkg/utils"
	"github.com/lib/pq"
)

type ScoreSnapshotRepository interface {
	SaveOrUpdate(ctx context.Context, snapshot *domain.ScoreSnapshot) error
}

type scoreSnapshotRepository struct {
	conn postgres.Queryer
}

func NewScoreSnapshotRepository(conn postgres.Queryer) ScoreSnapshotRepository {
	return &scoreSnapshotRepository{
		conn: conn,
	}
}

// SaveOrUpdate grava uma fotografia por anúncio e dia; reexecuções no mesmo dia sobrescrevem
func (r *scoreSnapshotRepository) SaveOrUpdate(ctx context.Context, snapshot *domain.ScoreSnapshot) error {
	breakdownJSON, err := json.Marshal(snapshot.Breakdown)
	if err != nil {
		return fmt.Errorf("erro ao serializar breakdown para JSON: %w", err)
	}

	if snapshot.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id da fotografia: %w", err)
		}
		snapshot.ID = id
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("score_snapshots").
		Columns("id", "listing_id", "date", "score", "breakdown", "completeness_score").
		Values(
			snapshot.ID,
			snapshot.ListingID,
			snapshot.Date.Format(utils.DateLayout),
			snapshot.Score,
			breakdownJSON,
			snapshot.CompletenessScore,
		).
		Suffix(`
			ON CONFLICT (listing_id, date) DO UPDATE SET
				score = EXCLUDED.score,
				breakdown = EXCLUDED.breakdown,
				completeness_score = EXCLUDED.completeness_score,
				updated_at = NOW()
		`).
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
