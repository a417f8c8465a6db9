package jobs

import (
	"context"
	"log/slog"

	"procurement/internal/core/ports"
	"procurement/internal/pkg/clock"

	"github.com/robfig/cron/v3"
)

// OutboxRelayJob drains the notification outbox. Every second it lists a batch
// of pending messages, publishes each to the event bus and marks it published.
// Messages that fail to publish stay pending and are retried on the next run.
type OutboxRelayJob struct {
	outbox    ports.OutboxRepository
	publisher ports.EventPublisher
	clock     clock.Clock
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxRelayJob creates a relay job over the given outbox and publisher.
func NewOutboxRelayJob(
	outbox ports.OutboxRepository,
	publisher ports.EventPublisher,
	clk clock.Clock,
	batchSize int,
	logger *slog.Logger,
) *OutboxRelayJob {
	return &OutboxRelayJob{
		outbox:    outbox,
		publisher: publisher,
		clock:     clk,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// Start begins the relay job to run every second.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.relayOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)")
	return nil
}

// Stop stops the relay job.
func (j *OutboxRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

func (j *OutboxRelayJob) relayOnce(ctx context.Context) {
	pending, err := j.outbox.ListPending(ctx, j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list pending notifications", "error", err)
		return
	}

	for _, message := range pending {
		if err = j.publisher.Publish(ctx, message.Topic, message.Payload); err != nil {
			j.logger.ErrorContext(ctx, "Failed to publish notification",
				"id", message.ID, "topic", message.Topic, "error", err)
			continue
		}

		if err = j.outbox.MarkPublished(ctx, message.ID, j.clock.Now()); err != nil {
			// The message will be published again next run; consumers
			// deduplicate by id.
			j.logger.ErrorContext(ctx, "Failed to mark notification published",
				"id", message.ID, "topic", message.Topic, "error", err)
		}
	}
}
