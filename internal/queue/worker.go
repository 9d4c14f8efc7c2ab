package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"github.com/screenline/console-api/internal/models"
	"github.com/screenline/console-api/internal/remote"
)

func (q *Queue) HandleStatusProbeTask(ctx context.Context, task *asynq.Task) error {
	var payload StatusProbePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	q.probe(ctx, payload)
	return nil
}

func (q *Queue) probe(ctx context.Context, payload StatusProbePayload) {
	ctx = remote.WithSession(ctx, payload.SessionID)

	items, err := q.m.List(ctx)
	if err != nil {
		// Session expired or repository unreachable; the probe has no
		// credential of its own, so give up quietly.
		slog.Info("status probe stopped", "media_id", payload.MediaID, "error", err)
		return
	}

	var item *models.MediaItem
	for _, it := range items {
		if it.ID == payload.MediaID {
			item = it
			break
		}
	}
	if item == nil {
		slog.Info("probed media no longer listed", "media_id", payload.MediaID)
		return
	}

	if !item.Terminal() {
		if payload.Probe+1 >= q.maxChecks {
			slog.Info("status probe budget exhausted", "media_id", payload.MediaID)
			return
		}
		payload.Probe++
		if err := EnqueueStatusProbe(q.client, payload, time.Duration(q.interval)*time.Second); err != nil {
			slog.Info(err.Error())
		}
		return
	}

	message := ""
	if item.ProcessingError != nil {
		message = *item.ProcessingError
	}
	_, err = q.ar.Create(ctx, &models.IngestionAttempt{
		MediaID:  item.ID,
		Mode:     models.AttemptModeProbe,
		Category: item.Status,
		Message:  message,
	})
	if err != nil {
		slog.Info(err.Error())
	}
}
