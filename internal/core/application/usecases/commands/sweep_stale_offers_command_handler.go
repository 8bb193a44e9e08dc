package commands

import (
	"context"
)

// SweepStaleOffersCommandHandler repairs the acceptance protocol's known
// consistency gap: when the sibling cull fails after the shipment lock was
// won, pending offers of an already-accepted shipment linger. The sweep
// deletes them. The request path itself stays non-transactional; this
// handler only cleans up after it.
type SweepStaleOffersCommandHandler struct {
	uowFactory SweepUoWFactory
}

// NewSweepStaleOffersCommandHandler creates a handler for the stale-offer
// sweep.
func NewSweepStaleOffersCommandHandler(uowFactory SweepUoWFactory) SweepStaleOffersCommandHandler {
	return SweepStaleOffersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes stale pending offers and returns how many were removed.
func (h *SweepStaleOffersCommandHandler) Handle(ctx context.Context, cmd SweepStaleOffersCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	return uow.OfferRepository().DeleteStale(ctx)
}
