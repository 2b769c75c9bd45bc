package jobs

import (
	"context"
	"time"

	"hotelinfo/commands"
	"hotelinfo/metrics"
	"hotelinfo/services/logger"

	"github.com/robfig/cron/v3"
)

// CompletionSchedule is how often finished stays are swept.
const CompletionSchedule = "@every 1h"

// InitCronJobs registers the background jobs on c and starts it.
func InitCronJobs(c *cron.Cron, bookings commands.BookingCompleter, log logger.Logger) error {
	_, err := c.AddFunc(CompletionSchedule, func() {
		CompleteFinishedStays(context.Background(), bookings, log, time.Now())
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Info("cron jobs initialized")
	return nil
}

// CompleteFinishedStays runs one sweep as of now.
func CompleteFinishedStays(ctx context.Context, bookings commands.BookingCompleter, log logger.Logger, now time.Time) int64 {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	cmd := commands.NewCompleteBookingsCommand(now, bookings)
	if err := cmd.Execute(ctx); err != nil {
		log.Error("complete finished stays: %v", err)
		return 0
	}
	n := cmd.Completed
	if n > 0 {
		metrics.BookingsCompleted.Add(float64(n))
		log.Info("marked %d bookings completed", n)
	}
	return n
}
