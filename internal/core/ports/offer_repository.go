package ports

import (
	"context"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/offer"
)

// OfferRepository defines the persistence contract for offer rows.
type OfferRepository interface {
	// AddBatch inserts all given offers in a single batch statement.
	// Used by shipment fan-out; an empty slice is a no-op.
	AddBatch(ctx context.Context, offers []*offer.Offer) error

	// Get retrieves an offer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error)

	// Accept marks the offer accepted. Callers must hold the shipment-level
	// lock (ShipmentRepository.TryAccept) before calling this.
	Accept(ctx context.Context, id kernel.UUID) error

	// CullSiblings deletes every pending offer of the shipment other than
	// the kept (accepted) one.
	CullSiblings(ctx context.Context, shipmentID, keptOfferID kernel.UUID) error

	// DeletePending deletes the offer if it is still pending. Returns false
	// when zero rows were affected: the offer was already resolved, already
	// culled, or never existed. An accepted offer is never deleted.
	DeletePending(ctx context.Context, id kernel.UUID) (bool, error)

	// DeleteStale deletes pending offers whose shipment is already
	// accepted. These rows can linger when a sibling cull fails after the
	// acceptance lock was won; the sweep job calls this to repair them.
	// Returns the number of rows deleted.
	DeleteStale(ctx context.Context) (int64, error)
}
