package commands

import (
	"context"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/offer"
	"freightmatch/internal/core/domain/model/shipment"
)

// OfferAssignment pairs a generated offer with its candidate driver.
type OfferAssignment struct {
	OfferID  kernel.UUID
	DriverID kernel.UUID
}

// CreateShipmentCommandHandler posts a shipment and fans out one pending
// offer per eligible driver.
//
// The shipment insert and the offer batch insert are intentionally NOT one
// transaction. If the batch insert fails, the shipment row remains with no
// offers. The sweep job and the shipment read model both tolerate such
// shipments.
type CreateShipmentCommandHandler struct {
	uowFactory AllocationUoWFactory
	maxOffers  int
}

// NewCreateShipmentCommandHandler creates a handler for shipment fan-out.
// maxOffers caps how many candidate offers one shipment generates.
func NewCreateShipmentCommandHandler(uowFactory AllocationUoWFactory, maxOffers int) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		maxOffers:  maxOffers,
	}
}

// Handle posts the shipment, selects eligible drivers (least outstanding
// offers first, ties by driver id), and batch-inserts one pending offer per
// driver. An empty eligible set is not an error: the shipment is created
// with zero offers.
func (h *CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
) ([]OfferAssignment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()

	s, err := shipment.NewShipment(cmd.ShipmentID(), cmd.Capacity())
	if err != nil {
		return nil, err
	}

	// Fatal to the whole operation: no shipment row, no offers.
	if err = uow.ShipmentRepository().Add(ctx, s); err != nil {
		return nil, err
	}

	drivers, err := uow.DriverRepository().GetEligible(ctx, s.Capacity(), h.maxOffers)
	if err != nil {
		return nil, err
	}

	offers := make([]*offer.Offer, 0, len(drivers))
	for _, d := range drivers {
		o, offerErr := offer.NewOffer(kernel.NewUUID(), s.ID(), d.ID())
		if offerErr != nil {
			return nil, offerErr
		}
		offers = append(offers, o)
	}

	// The shipment row stays even if this fails.
	if err = uow.OfferRepository().AddBatch(ctx, offers); err != nil {
		return nil, err
	}

	assignments := make([]OfferAssignment, 0, len(offers))
	for _, o := range offers {
		assignments = append(assignments, OfferAssignment{
			OfferID:  o.ID(),
			DriverID: o.DriverID(),
		})
	}

	return assignments, nil
}
