// Package jobs provides scheduled background tasks for the allocation
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OfferSweepJob - Periodically deletes pending offers that belong to
// shipments which were already accepted. The acceptance path deliberately
// runs its two post-lock mutations without a transaction, so a crash between
// them can leave such offers behind; the sweep removes them.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sweepHandler, cfg.OfferSweepSpec, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep schedule is configurable (OFFER_SWEEP_SPEC, six-field cron
// expression with seconds). The sweep never changes the outcome of any
// acceptance race, it only removes rows that lost one.
package jobs
