package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStatements cria as tabelas lidas e escritas pelos repositórios; idempotente
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS listings (
		id                 TEXT PRIMARY KEY,
		tenant_id          TEXT NOT NULL,
		external_id        TEXT NOT NULL,
		title              TEXT NOT NULL,
		description        TEXT,
		category_id        TEXT,
		category_path      TEXT[],
		price              NUMERIC(12,2) NOT NULL DEFAULT 0,
		original_price     NUMERIC(12,2),
		has_promotion      BOOLEAN NOT NULL DEFAULT FALSE,
		discount_percent   NUMERIC(5,2),
		available_quantity INTEGER,
		status             TEXT NOT NULL DEFAULT 'active',
		pictures_count     INTEGER,
		has_clips          BOOLEAN,
		variations_count   INTEGER,
		is_catalog         BOOLEAN NOT NULL DEFAULT FALSE,
		shipping_mode      TEXT,
		is_free_shipping   BOOLEAN NOT NULL DEFAULT FALSE,
		is_full_eligible   BOOLEAN,
		created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_listings_tenant_category ON listings (tenant_id, category_id)`,
	`CREATE TABLE IF NOT EXISTS listing_metrics_daily (
		listing_id  TEXT NOT NULL REFERENCES listings (id),
		date        DATE NOT NULL,
		visits      INTEGER,
		orders      INTEGER NOT NULL DEFAULT 0,
		revenue     NUMERIC(14,2) NOT NULL DEFAULT 0,
		impressions INTEGER,
		clicks      INTEGER,
		PRIMARY KEY (listing_id, date)
	)`,
	`CREATE TABLE IF NOT EXISTS listing_metrics_aggregate (
		listing_id  TEXT NOT NULL REFERENCES listings (id),
		period_days INTEGER NOT NULL,
		visits      INTEGER,
		orders      INTEGER,
		revenue     NUMERIC(14,2),
		impressions INTEGER,
		clicks      INTEGER,
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (listing_id, period_days)
	)`,
	`CREATE TABLE IF NOT EXISTS hack_history (
		id           TEXT PRIMARY KEY,
		listing_id   TEXT NOT NULL REFERENCES listings (id),
		hack_id      TEXT NOT NULL,
		status       TEXT NOT NULL,
		dismissed_at TIMESTAMPTZ,
		confirmed_at TIMESTAMPTZ,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_hack_history_listing ON hack_history (listing_id)`,
	`CREATE TABLE IF NOT EXISTS score_snapshots (
		id                 TEXT PRIMARY KEY,
		listing_id         TEXT NOT NULL REFERENCES listings (id),
		date               DATE NOT NULL,
		score              INTEGER NOT NULL,
		breakdown          JSONB NOT NULL,
		completeness_score INTEGER NOT NULL,
		created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (listing_id, date)
	)`,
}

// ApplySchema executa a criação das tabelas numa única transação
func (c *Connection) ApplySchema(ctx context.Context) error {
	return c.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, statement := range schemaStatements {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				return fmt.Errorf("erro ao aplicar o schema (instrução %d): %w", i+1, err)
			}
		}
		return nil
	})
}
