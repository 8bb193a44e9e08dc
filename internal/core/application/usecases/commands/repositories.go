// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: constructor
// validation, then a handler that coordinates repositories.
package commands

import (
	"context"

	"freightmatch/internal/core/ports"
)

// Unit of Work interfaces scope each command handler to the repositories it
// actually needs.
type (
	// TxManager handles database transaction lifecycle. Handlers that rely
	// on autocommit statement atomicity (the allocation protocol) simply
	// never call Begin.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// DriverRepoFactory provides access to the driver repository.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// OfferRepoFactory provides access to the offer repository.
	OfferRepoFactory interface {
		OfferRepository() ports.OfferRepository
	}

	// DriverUoW manages driver registration.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// AllocationUoW spans shipment creation and offer fan-out: the shipment
	// insert, the eligible-driver selection, and the offer batch insert.
	AllocationUoW interface {
		TxManager
		ShipmentRepoFactory
		DriverRepoFactory
		OfferRepoFactory
	}

	// AllocationUoWFactory creates new allocation unit of work instances.
	AllocationUoWFactory interface {
		Create() AllocationUoW
	}

	// ResolutionUoW spans the accept/pass state machine: the offer lookup,
	// the conditional shipment lock, and the offer mutations.
	ResolutionUoW interface {
		TxManager
		ShipmentRepoFactory
		OfferRepoFactory
	}

	// ResolutionUoWFactory creates new resolution unit of work instances.
	ResolutionUoWFactory interface {
		Create() ResolutionUoW
	}

	// SweepUoW scopes the stale-offer sweep to the offer repository.
	SweepUoW interface {
		TxManager
		OfferRepoFactory
	}

	// SweepUoWFactory creates new sweep unit of work instances.
	SweepUoWFactory interface {
		Create() SweepUoW
	}
)
