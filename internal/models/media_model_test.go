package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaItem_AssignedGroups(t *testing.T) {
	legacy := &MediaItem{GroupID: "g1"}
	assert.Equal(t, []string{"g1"}, legacy.AssignedGroups())

	modern := &MediaItem{GroupIDs: []string{"g1", "g2"}}
	assert.Equal(t, []string{"g1", "g2"}, modern.AssignedGroups())

	assert.Nil(t, (&MediaItem{}).AssignedGroups())
}

func TestMediaItem_Terminal(t *testing.T) {
	assert.False(t, (&MediaItem{Status: MediaStatusPending}).Terminal())
	assert.True(t, (&MediaItem{Status: MediaStatusReady}).Terminal())
	assert.True(t, (&MediaItem{Status: MediaStatusFailed}).Terminal())
}

func TestMediaItem_DecodesLegacyRecord(t *testing.T) {
	raw := `{"id":"m1","groupId":"g1","url":null,"name":null,"status":"PENDING","createdAt":"2024-01-01T00:00:00Z","updatedAt":"2024-01-01T00:00:00Z"}`

	var item MediaItem
	require.NoError(t, json.Unmarshal([]byte(raw), &item))

	assert.Equal(t, "m1", item.ID)
	assert.Equal(t, []string{"g1"}, item.AssignedGroups())
	assert.Nil(t, item.URL)
	assert.Equal(t, MediaStatusPending, item.Status)
}
