package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/screenline/console-api/internal/models"
)

type AttemptRepository interface {
	Create(ctx context.Context, attempt *models.IngestionAttempt) (int64, error)
	ListByMediaID(ctx context.Context, mediaID string) ([]*models.IngestionAttempt, error)
	PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type attemptRepository struct {
	db *sql.DB
}

func NewAttemptRepository(db *sql.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(ctx context.Context, attempt *models.IngestionAttempt) (int64, error) {
	query := `
		INSERT INTO ingestion_attempts (media_id, mode, group_ids, category, capacity_kind, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		attempt.MediaID, attempt.Mode, attempt.GroupIDs,
		attempt.Category, attempt.CapacityKind, attempt.Message).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *attemptRepository) ListByMediaID(ctx context.Context, mediaID string) ([]*models.IngestionAttempt, error) {
	query := `
		SELECT id, media_id, mode, group_ids, category, capacity_kind, message, created_at
		FROM ingestion_attempts
		WHERE media_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, mediaID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var attempts []*models.IngestionAttempt
	for rows.Next() {
		var a models.IngestionAttempt
		err := rows.Scan(&a.ID, &a.MediaID, &a.Mode, &a.GroupIDs, &a.Category, &a.CapacityKind, &a.Message, &a.CreatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		attempts = append(attempts, &a)
	}
	return attempts, rows.Err()
}

func (r *attemptRepository) PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM ingestion_attempts WHERE created_at < $1`

	res, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return res.RowsAffected()
}
