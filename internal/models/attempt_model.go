package models

import "time"

// IngestionAttempt is one row of the console-side audit trail: every
// submission that reached the repository, plus status transitions seen
// by the background probe.
type IngestionAttempt struct {
	ID           int64     `db:"id" json:"id"`
	MediaID      string    `db:"media_id" json:"media_id"`
	Mode         string    `db:"mode" json:"mode"`
	GroupIDs     string    `db:"group_ids" json:"group_ids"`
	Category     string    `db:"category" json:"category"`
	CapacityKind string    `db:"capacity_kind" json:"capacity_kind"`
	Message      string    `db:"message" json:"message"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

const (
	AttemptModeUpload = "upload"
	AttemptModeURL    = "url"
	AttemptModeEdit   = "edit"
	AttemptModeRetry  = "retry"
	AttemptModeProbe  = "probe"
)

// UploadArchive indexes a copy of an accepted upload payload kept in the
// object store, so a FAILED item can be re-submitted without asking the
// operator for the original file again.
type UploadArchive struct {
	ID          int64     `db:"id"`
	ObjectKey   string    `db:"object_key"`
	MediaID     string    `db:"media_id"`
	Name        string    `db:"name"`
	GroupIDs    string    `db:"group_ids"`
	ContentType string    `db:"content_type"`
	FileSize    int64     `db:"file_size"`
	CreatedAt   time.Time `db:"created_at"`
}
