// Package jobs provides scheduled background tasks for the procurement
// service, implemented with github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every second to publish pending outbox
// notifications to the event bus.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(relayJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed publish leaves the message pending; the next run retries it.
// Delivery is therefore at-least-once and consumers must deduplicate by
// message id.
package jobs
