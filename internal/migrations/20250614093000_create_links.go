package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateLinks, downCreateLinks)
}

func upCreateLinks(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE links (
		id           UUID PRIMARY KEY,
		user_id      VARCHAR NOT NULL,
		url          TEXT NOT NULL,
		title        TEXT NOT NULL DEFAULT '',
		description  TEXT NOT NULL DEFAULT '',
		category     VARCHAR NOT NULL DEFAULT 'Uncategorized',
		tags         TEXT[] NOT NULL DEFAULT '{}',
		notes        TEXT NOT NULL DEFAULT '',
		image_url    TEXT NOT NULL DEFAULT '',
		content_type VARCHAR NOT NULL DEFAULT 'link',
		source       VARCHAR NOT NULL DEFAULT 'manual',
		is_processed BOOLEAN NOT NULL DEFAULT FALSE,
		is_pinned    BOOLEAN NOT NULL DEFAULT FALSE,
		is_read      BOOLEAN NOT NULL DEFAULT FALSE,
		created_at   TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		updated_at   TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);
	CREATE INDEX idx_links_user_created ON links (user_id, created_at DESC);
	`)
	if err != nil {
		return err
	}
	return nil
}

func downCreateLinks(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	DROP TABLE links;
	`)
	if err != nil {
		return err
	}
	return nil
}
