package queue

import (
	"github.com/hibiken/asynq"
	"github.com/screenline/console-api/internal/repository"
	"github.com/screenline/console-api/internal/service"
)

// Queue owns the background status probe: after the repository accepts
// an upload (202), the item sits in PENDING until the out-of-band
// processing pipeline finishes. The operator surface stays pull-based;
// the probe only records the observed transition in the attempt trail.
type Queue struct {
	m         service.MediaService
	ar        repository.AttemptRepository
	client    *asynq.Client
	interval  int // seconds between probes
	maxChecks int
}

func NewQueue(
	m service.MediaService,
	ar repository.AttemptRepository,
	client *asynq.Client,
	intervalSeconds, maxChecks int) *Queue {
	return &Queue{
		m:         m,
		ar:        ar,
		client:    client,
		interval:  intervalSeconds,
		maxChecks: maxChecks,
	}
}

const TaskTypeStatusProbe = "media:status_probe"

type StatusProbePayload struct {
	MediaID   string `json:"media_id"`
	SessionID string `json:"session_id"`
	Probe     int    `json:"probe"`
}
