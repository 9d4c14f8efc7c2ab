package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/screenline/console-api/internal/remote"
	"github.com/screenline/console-api/internal/repository"
)

// MaintenanceJob runs the periodic console housekeeping: dropping
// expired session credentials and pruning old attempt-trail rows.
type MaintenanceJob struct {
	creds     *remote.CredentialStore
	ar        repository.AttemptRepository
	retention time.Duration
}

func NewMaintenanceJob(creds *remote.CredentialStore, ar repository.AttemptRepository, retention time.Duration) *MaintenanceJob {
	return &MaintenanceJob{
		creds:     creds,
		ar:        ar,
		retention: retention,
	}
}

func (j *MaintenanceJob) SweepSessions() {
	if removed := j.creds.Sweep(); removed > 0 {
		slog.Info("expired sessions swept", "count", removed)
	}
}

func (j *MaintenanceJob) PruneAttempts() {
	ctx := context.Background()

	cutoff := time.Now().Add(-j.retention)
	removed, err := j.ar.PruneOlderThan(ctx, cutoff)
	if err != nil {
		slog.Info(err.Error())
		return
	}
	if removed > 0 {
		slog.Info("old ingestion attempts pruned", "count", removed)
	}
}
