package cleanup

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultInterval = 1 * time.Hour

type DecisionPruner interface {
	CleanupOldDecisions(ctx context.Context, retention time.Duration) (int64, error)
}

type Worker struct {
	Decisions DecisionPruner
	Retention time.Duration
	Interval  time.Duration
}

func NewWorker(decisions DecisionPruner, retentionDays int) *Worker {
	return &Worker{
		Decisions: decisions,
		Retention: time.Duration(retentionDays) * 24 * time.Hour,
		Interval:  defaultInterval,
	}
}

// Start runs one cleanup right away, then every Interval until ctx is done.
func (w *Worker) Start(ctx context.Context) {
	log.Info().Str("component", "cleanup").Dur("interval", w.Interval).Msg("cleanup-worker-started")

	w.runCleanup(ctx)

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info().Str("component", "cleanup").Msg("cleanup-worker-stopped")
			return
		case <-ticker.C:
			w.runCleanup(ctx)
		}
	}
}

func (w *Worker) runCleanup(ctx context.Context) {
	if w.Retention <= 0 {
		return
	}

	deleted, err := w.Decisions.CleanupOldDecisions(ctx, w.Retention)
	if err != nil {
		log.Error().Err(err).Str("component", "cleanup").Msg("decision-cleanup-failed")
		return
	}
	if deleted > 0 {
		log.Info().Str("component", "cleanup").Int64("deleted", deleted).Msg("old-decisions-removed")
	}
}
