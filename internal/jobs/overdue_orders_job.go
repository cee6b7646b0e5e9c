package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueOrdersJob scans active orders once a day and logs the ones whose
// due date has passed without the order shipping. Read-only: it never
// mutates order state, it only surfaces the backlog.
type OverdueOrdersJob struct {
	handler queries.GetActiveOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
	now     func() time.Time
}

// NewOverdueOrdersJob creates a job that reports overdue orders daily.
func NewOverdueOrdersJob(handler queries.GetActiveOrdersQueryHandler, logger *slog.Logger) *OverdueOrdersJob {
	return &OverdueOrdersJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_orders_job"),
		now:     time.Now,
	}
}

// Start schedules the job to run daily at 06:00.
func (j *OverdueOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 6 * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue orders job started (running daily at 06:00)")
	return nil
}

// Stop stops the overdue orders job.
func (j *OverdueOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue orders job stopped")
}

func (j *OverdueOrdersJob) run() {
	ctx := context.Background()
	query := queries.NewGetActiveOrdersQuery()

	orders, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue orders job failed", "error", err)
		return
	}

	today := j.now().UTC().Truncate(24 * time.Hour)
	overdue := 0
	for _, o := range orders {
		if o.DueDate == nil || !o.DueDate.Before(today) {
			continue
		}
		overdue++
		j.logger.WarnContext(ctx, "Order is overdue",
			"order_id", o.ID.String(),
			"po_number", o.PONumber,
			"due_date", o.DueDate.Format("2006-01-02"),
			"status", o.Status,
		)
	}

	if overdue == 0 {
		j.logger.InfoContext(ctx, "No overdue orders")
	}
}
