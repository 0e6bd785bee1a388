package link

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/mindlink/internal/domain"
	"github.com/orgball2608/mindlink/internal/repositories"
	"github.com/orgball2608/mindlink/pkg/logger"
)

const table = "links"

var columns = []string{
	"id", "user_id", "url", "title", "description", "category", "tags", "notes",
	"image_url", "content_type", "source", "is_processed", "is_pinned", "is_read",
	"created_at", "updated_at",
}

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("LinkRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

func (p *Pgx) Create(ctx context.Context, link domain.Link) (*domain.Link, error) {
	now := time.Now().UTC()
	link.ID = uuid.NewString()
	link.CreatedAt = now
	link.UpdatedAt = now
	if link.Tags == nil {
		link.Tags = []string{}
	}

	query, args, err := repositories.SqBuilder.
		Insert(table).
		Columns(columns...).
		Values(
			link.ID, link.UserID, link.URL, link.Title, link.Description, link.Category, link.Tags, link.Notes,
			link.ImageURL, link.ContentType, link.Source, link.IsProcessed, link.IsPinned, link.IsRead,
			link.CreatedAt, link.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	if _, err := p.pg.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == repositories.UniqueViolation {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	p.logger.Debug("Link created", "id", link.ID, "user_id", link.UserID)
	return &link, nil
}

func (p *Pgx) GetByID(ctx context.Context, userID, id string) (*domain.Link, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	query, args, err := repositories.SqBuilder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	link, err := scanLink(p.pg.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return link, nil
}

func (p *Pgx) ListByUser(ctx context.Context, userID string) ([]*domain.Link, error) {
	query, args, err := repositories.SqBuilder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := make([]*domain.Link, 0)
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return links, nil
}

func (p *Pgx) Update(ctx context.Context, userID, id string, update domain.LinkUpdate) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	query, args, err := updateQuery(userID, id, update, time.Now().UTC())
	if err != nil {
		return repositories.ErrBadQuery
	}

	result, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (p *Pgx) Delete(ctx context.Context, userID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	query, args, err := repositories.SqBuilder.
		Delete(table).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	result, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func updateQuery(userID, id string, update domain.LinkUpdate, now time.Time) (string, []interface{}, error) {
	return repositories.SqBuilder.
		Update(table).
		SetMap(updateColumns(update)).
		Set("updated_at", now).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

func updateColumns(u domain.LinkUpdate) map[string]interface{} {
	set := make(map[string]interface{})
	if u.Title != nil {
		set["title"] = *u.Title
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Category != nil {
		set["category"] = *u.Category
	}
	if u.Tags != nil {
		tags := *u.Tags
		if tags == nil {
			tags = []string{}
		}
		set["tags"] = tags
	}
	if u.Notes != nil {
		set["notes"] = *u.Notes
	}
	if u.IsPinned != nil {
		set["is_pinned"] = *u.IsPinned
	}
	if u.IsRead != nil {
		set["is_read"] = *u.IsRead
	}
	if u.ImageURL != nil {
		set["image_url"] = *u.ImageURL
	}
	if u.ContentType != nil {
		set["content_type"] = *u.ContentType
	}
	if u.IsProcessed != nil {
		set["is_processed"] = *u.IsProcessed
	}
	return set
}

func scanLink(row pgx.Row) (*domain.Link, error) {
	var link domain.Link
	err := row.Scan(
		&link.ID, &link.UserID, &link.URL, &link.Title, &link.Description, &link.Category, &link.Tags, &link.Notes,
		&link.ImageURL, &link.ContentType, &link.Source, &link.IsProcessed, &link.IsPinned, &link.IsRead,
		&link.CreatedAt, &link.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &link, nil
}
