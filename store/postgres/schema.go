package postgres

import (
	"context"
	"database/sql"
)

// schema is applied on startup. All statements are idempotent so repeated
// runs against an existing database are safe.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id          BIGSERIAL PRIMARY KEY,
		name        TEXT NOT NULL,
		slug        TEXT NOT NULL UNIQUE,
		icon        TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS articles (
		id           BIGSERIAL PRIMARY KEY,
		title        TEXT NOT NULL,
		title_en     TEXT NOT NULL DEFAULT '',
		slug         TEXT NOT NULL UNIQUE,
		summary      TEXT NOT NULL DEFAULT '',
		summary_en   TEXT NOT NULL DEFAULT '',
		content      TEXT NOT NULL,
		content_en   TEXT NOT NULL DEFAULT '',
		category_id  BIGINT REFERENCES categories(id),
		source_url   TEXT NOT NULL UNIQUE,
		source_name  TEXT NOT NULL DEFAULT '',
		credibility  INTEGER NOT NULL DEFAULT 0,
		image_url    TEXT NOT NULL DEFAULT '',
		ai_generated BOOLEAN NOT NULL DEFAULT TRUE,
		created_at   TIMESTAMPTZ NOT NULL,
		updated_at   TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS glossary_terms (
		banned    TEXT PRIMARY KEY,
		preferred TEXT NOT NULL
	)`,
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
