package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/screenline/console-api/internal/models"
)

type UploadArchiveRepository interface {
	Create(ctx context.Context, archive *models.UploadArchive) (int64, error)
	GetByMediaID(ctx context.Context, mediaID string) (*models.UploadArchive, error)
}

type uploadArchiveRepository struct {
	db *sql.DB
}

func NewUploadArchiveRepository(db *sql.DB) UploadArchiveRepository {
	return &uploadArchiveRepository{db: db}
}

func (r *uploadArchiveRepository) Create(ctx context.Context, archive *models.UploadArchive) (int64, error) {
	query := `
		INSERT INTO upload_archives (object_key, media_id, name, group_ids, content_type, file_size)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		archive.ObjectKey, archive.MediaID, archive.Name,
		archive.GroupIDs, archive.ContentType, archive.FileSize).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *uploadArchiveRepository) GetByMediaID(ctx context.Context, mediaID string) (*models.UploadArchive, error) {
	query := `
		SELECT id, object_key, media_id, name, group_ids, content_type, file_size, created_at
		FROM upload_archives
		WHERE media_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var a models.UploadArchive
	err := r.db.QueryRowContext(ctx, query, mediaID).Scan(
		&a.ID, &a.ObjectKey, &a.MediaID, &a.Name, &a.GroupIDs, &a.ContentType, &a.FileSize, &a.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return &a, nil
}
