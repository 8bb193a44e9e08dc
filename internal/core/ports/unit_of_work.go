package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request or
// command, ensuring isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the three
// repositories. Transaction use is deliberately optional: repositories
// obtained before Begin run each statement on the shared pool in autocommit
// mode. The acceptance protocol relies on that: its mutations must NOT be
// wrapped in one transaction, because the single-row conditional update is
// the unit of atomicity, and the post-lock pair of mutations is allowed to
// partially fail (see the resolve_offer command).
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ShipmentRepository returns a ShipmentRepository bound to the current
	// transaction, or to the shared pool if none is active.
	ShipmentRepository() ShipmentRepository

	// DriverRepository returns a DriverRepository bound to the current
	// transaction, or to the shared pool if none is active.
	DriverRepository() DriverRepository

	// OfferRepository returns an OfferRepository bound to the current
	// transaction, or to the shared pool if none is active.
	OfferRepository() OfferRepository
}
