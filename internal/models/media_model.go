package models

import "time"

// MediaItem is a content record owned by the remote media repository.
// URL is null while an uploaded file is still being processed; a READY
// item always carries a resolved distribution URL.
type MediaItem struct {
	ID              string    `json:"id"`
	GroupID         string    `json:"groupId,omitempty"` // legacy single-group records
	GroupIDs        []string  `json:"groupIds,omitempty"`
	URL             *string   `json:"url"`
	Name            *string   `json:"name"`
	Status          string    `json:"status"`
	ProcessingError *string   `json:"processingError,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

const (
	MediaStatusPending = "PENDING"
	MediaStatusReady   = "READY"
	MediaStatusFailed  = "FAILED"
)

// AssignedGroups normalizes the two group representations the repository
// may return: a groupIds array on current records, a single groupId on
// records written before multi-group assignment existed.
func (m *MediaItem) AssignedGroups() []string {
	if len(m.GroupIDs) > 0 {
		return m.GroupIDs
	}
	if m.GroupID != "" {
		return []string{m.GroupID}
	}
	return nil
}

// Terminal reports whether processing has finished, in either direction.
// The repository never moves an item out of READY or FAILED; recovery is
// always a fresh submission.
func (m *MediaItem) Terminal() bool {
	return m.Status == MediaStatusReady || m.Status == MediaStatusFailed
}
