package jobs

import (
	"context"
	"log/slog"

	"freightmatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OfferSweepJob manages the scheduled cleanup of stale pending offers.
// A pending offer is stale when its shipment has already been accepted.
type OfferSweepJob struct {
	handler  commands.SweepStaleOffersCommandHandler
	cronSpec string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOfferSweepJob creates a new job for sweeping stale offers on the given
// six-field cron schedule.
func NewOfferSweepJob(
	handler commands.SweepStaleOffersCommandHandler,
	cronSpec string,
	logger *slog.Logger,
) *OfferSweepJob {
	return &OfferSweepJob{
		handler:  handler,
		cronSpec: cronSpec,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "offer_sweep_job"),
	}
}

// Start begins the offer sweep job on its configured schedule.
func (j *OfferSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.cronSpec, func() {
		ctx := context.Background()

		cmd := commands.NewSweepStaleOffersCommand()

		swept, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Offer sweep job failed", "error", err)
			return
		}

		if swept > 0 {
			j.logger.InfoContext(ctx, "Swept stale offers", "count", swept)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Offer sweep job started", "spec", j.cronSpec)
	return nil
}

// Stop stops the offer sweep job.
func (j *OfferSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Offer sweep job stopped")
}
