package jobs

import (
	"context"
	"log/slog"

	"orders/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderStatsJob periodically logs order counts per lifecycle status.
// Runs every minute to give operators a cheap view of order flow without
// querying the database by hand.
type OrderStatsJob struct {
	handler queries.GetOrderStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderStatsJob creates a new job for periodic order statistics.
// Uses GetOrderStatsQueryHandler to count orders by status every minute.
func NewOrderStatsJob(handler queries.GetOrderStatsQueryHandler, logger *slog.Logger) *OrderStatsJob {
	return &OrderStatsJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "order_stats_job"),
	}
}

// Start begins the order stats job to run every minute.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		stats, statsErr := j.handler.Handle(ctx, queries.NewGetOrderStatsQuery())
		if statsErr != nil {
			j.logger.ErrorContext(ctx, "Order stats job failed", "error", statsErr)
			return
		}

		j.logger.InfoContext(ctx, "Order stats",
			"processing", stats.Processing,
			"completed", stats.Completed,
			"canceled", stats.Canceled,
			"total", stats.Total(),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order stats job started (running every minute)")
	return nil
}

// Stop stops the order stats job.
func (j *OrderStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}
