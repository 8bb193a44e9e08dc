package commands

import (
	"context"
	"errors"

	"freightmatch/internal/core/domain/model/offer"
	"freightmatch/internal/pkg/errs"
)

// ResolveOfferCommandHandler runs the accept/pass state machine for one
// offer.
//
// There is no application-level locking anywhere in this path. All mutual
// exclusion between competing ACCEPTs is delegated to the storage engine's
// row-level atomicity on one conditional update (ShipmentRepository.
// TryAccept). The handler therefore never wraps its statements in a
// transaction: the lock update is atomic on its own, and the two post-lock
// mutations are allowed to partially fail, leaving the shipment bound and
// possibly some stale siblings behind (repaired later by the sweep job).
type ResolveOfferCommandHandler struct {
	uowFactory ResolutionUoWFactory
}

// NewResolveOfferCommandHandler creates a handler for offer resolution.
func NewResolveOfferCommandHandler(uowFactory ResolutionUoWFactory) ResolveOfferCommandHandler {
	return ResolveOfferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the offer.
//
// PASS deletes the offer while it is still pending; zero rows affected means
// the offer is no longer active.
//
// ACCEPT:
//  1. Load the offer; absent means not active.
//  2. Acquire the shipment lock with the conditional update. Losing the race
//     short-circuits here; no offer write is ever issued by a loser.
//  3. Dispatch both post-lock mutations concurrently (mark this offer
//     accepted; cull pending siblings), wait for both, and report the
//     first-dispatched failure if any.
func (h *ResolveOfferCommandHandler) Handle(ctx context.Context, cmd ResolveOfferCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	offerRepo := uow.OfferRepository()

	switch cmd.Action() {
	case offer.Pass:
		deleted, err := offerRepo.DeletePending(ctx, cmd.OfferID())
		if err != nil {
			return err
		}
		if !deleted {
			return offer.ErrNotActive
		}
		return nil

	case offer.Accept:
		o, err := offerRepo.Get(ctx, cmd.OfferID())
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return offer.ErrNotActive
			}
			return err
		}

		won, err := uow.ShipmentRepository().TryAccept(ctx, o.ShipmentID())
		if err != nil {
			return err
		}
		if !won {
			return offer.ErrNotActive
		}

		outcomes := JoinMutations(ctx,
			Mutation{
				Name: "accept offer",
				Run: func(ctx context.Context) error {
					return offerRepo.Accept(ctx, o.ID())
				},
			},
			Mutation{
				Name: "cull siblings",
				Run: func(ctx context.Context) error {
					return offerRepo.CullSiblings(ctx, o.ShipmentID(), o.ID())
				},
			},
		)
		return FirstFailure(outcomes)

	default:
		return offer.ErrInvalidStatus
	}
}
