package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jibli-app/jibli-backend/internal/core/domain"
)

var broadcastColumns = []string{
	"id", "title", "body", "image_url", "category", "target_audience",
	"is_active", "sent_count", "failed_count",
	"created_at", "scheduled_at", "expires_at", "sent_at",
}

func scanBroadcast(row pgx.Row) (*domain.Broadcast, error) {
	b := domain.Broadcast{}
	err := row.Scan(
		&b.ID, &b.Title, &b.Body, &b.ImageURL, &b.Category, &b.TargetAudience,
		&b.IsActive, &b.SentCount, &b.FailedCount,
		&b.CreatedAt, &b.ScheduledAt, &b.ExpiresAt, &b.SentAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) CreateBroadcast(ctx context.Context, b *domain.Broadcast) (*domain.Broadcast, error) {
	statement := r.db.QueryBuilder.Insert("broadcasts").
		Columns("title", "body", "image_url", "category", "target_audience",
			"is_active", "scheduled_at", "expires_at").
		Values(b.Title, b.Body, b.ImageURL, b.Category, b.TargetAudience,
			b.IsActive, b.ScheduledAt, b.ExpiresAt).
		Suffix("RETURNING id, created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *Repository) UpdateBroadcast(ctx context.Context, b *domain.Broadcast) (*domain.Broadcast, error) {
	statement := r.db.QueryBuilder.Update("broadcasts").
		Set("title", b.Title).
		Set("body", b.Body).
		Set("image_url", b.ImageURL).
		Set("category", b.Category).
		Set("target_audience", b.TargetAudience).
		Set("is_active", b.IsActive).
		Set("sent_count", b.SentCount).
		Set("failed_count", b.FailedCount).
		Set("scheduled_at", b.ScheduledAt).
		Set("expires_at", b.ExpiresAt).
		Set("sent_at", b.SentAt).
		Where(sq.Eq{"id": b.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrDataNotFound
	}
	return b, nil
}

func (r *Repository) ReadBroadcast(ctx context.Context, broadcastID uint64) (*domain.Broadcast, error) {
	statement := r.db.QueryBuilder.
		Select(broadcastColumns...).
		From("broadcasts").
		Where(sq.Eq{"id": broadcastID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	b, err := scanBroadcast(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *Repository) listBroadcasts(ctx context.Context, statement sq.SelectBuilder) ([]*domain.Broadcast, error) {
	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Broadcast, 0)
	for rows.Next() {
		b, err := scanBroadcast(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repository) ListBroadcasts(ctx context.Context) ([]*domain.Broadcast, error) {
	return r.listBroadcasts(ctx, r.db.QueryBuilder.
		Select(broadcastColumns...).
		From("broadcasts").
		OrderBy("created_at DESC"))
}

// ListDueBroadcasts returns scheduled broadcasts whose time has come and
// which were never delivered nor expired.
func (r *Repository) ListDueBroadcasts(ctx context.Context) ([]*domain.Broadcast, error) {
	return r.listBroadcasts(ctx, r.db.QueryBuilder.
		Select(broadcastColumns...).
		From("broadcasts").
		Where(sq.Eq{"is_active": true}).
		Where("scheduled_at IS NOT NULL").
		Where("scheduled_at <= now()").
		Where("sent_at IS NULL").
		Where("(expires_at IS NULL OR expires_at > now())").
		OrderBy("scheduled_at"))
}
