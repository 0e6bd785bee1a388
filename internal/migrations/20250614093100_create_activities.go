package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateActivities, downCreateActivities)
}

func upCreateActivities(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE activities (
		id         UUID PRIMARY KEY,
		user_id    VARCHAR NOT NULL,
		type       VARCHAR NOT NULL,
		link_id    VARCHAR NOT NULL DEFAULT '',
		link_title TEXT NOT NULL DEFAULT '',
		message    TEXT NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);
	CREATE INDEX idx_activities_user_created ON activities (user_id, created_at DESC);
	CREATE INDEX idx_activities_created ON activities (created_at);
	`)
	if err != nil {
		return err
	}
	return nil
}

func downCreateActivities(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	DROP TABLE activities;
	`)
	if err != nil {
		return err
	}
	return nil
}
