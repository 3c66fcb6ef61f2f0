package jobs

import (
	"context"
	"log/slog"
	"time"

	"fastfood/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// pendingOrdersReader reads the current kitchen backlog.
type pendingOrdersReader interface {
	Handle(ctx context.Context, query queries.GetPendingOrdersQuery) ([]queries.GetPendingOrdersQueryResponse, error)
}

// PendingOrdersMonitorJob periodically logs the pending-order backlog. A
// growing backlog or an old head-of-queue order is the operational signal
// that the kitchen has stopped deciding or the creation worker has stalled.
type PendingOrdersMonitorJob struct {
	handler pendingOrdersReader
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingOrdersMonitorJob creates the backlog monitor. It observes
// through the same query handler the kitchen feed uses.
func NewPendingOrdersMonitorJob(handler pendingOrdersReader, logger *slog.Logger) *PendingOrdersMonitorJob {
	return &PendingOrdersMonitorJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pending_orders_monitor_job"),
	}
}

// Start begins the monitor, running once a minute.
func (j *PendingOrdersMonitorJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		pending, err := j.handler.Handle(ctx, queries.NewGetPendingOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending orders monitor failed", "error", err)
			return
		}

		if len(pending) == 0 {
			j.logger.InfoContext(ctx, "No pending orders")
			return
		}

		oldest := pending[0].CreationDate
		for _, item := range pending[1:] {
			if item.CreationDate.Before(oldest) {
				oldest = item.CreationDate
			}
		}

		j.logger.InfoContext(ctx, "Pending orders backlog",
			"count", len(pending),
			"oldest_age", time.Since(oldest).Round(time.Second).String(),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending orders monitor started (running every minute)")
	return nil
}

// Stop stops the monitor.
func (j *PendingOrdersMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending orders monitor stopped")
}
