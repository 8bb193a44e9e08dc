// Package ports defines the persistence contracts between the application
// core and infrastructure adapters, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// TryAccept atomically flips the shipment's accepted flag from false to
	// true with a single conditional update:
	//
	//	UPDATE shipment SET accepted = true WHERE id = ? AND accepted = false
	//
	// It returns true when the row was updated (the caller won the
	// acceptance race) and false when zero rows were affected (another
	// offer already won, or the shipment does not exist). This is the only
	// point where concurrent ACCEPT attempts on the same shipment are
	// serialized; implementations must keep the zero-rows-means-lost
	// semantics exact and must not substitute a read-then-write check.
	TryAccept(ctx context.Context, id kernel.UUID) (bool, error)
}
