// Package offer contains the Offer entity and the accept/pass action.
//
// An offer is a candidate pairing between one shipment and one driver. Offers
// are created in a batch when a shipment is posted and resolved by the
// acceptance state machine:
//
//	PENDING ──ACCEPT──> ACCEPTED   (offer.accepted=true, shipment.accepted=true)
//	        ──PASS────> REMOVED    (row deleted; also the fate of losing
//	                                siblings after another offer wins)
//
// Both ACCEPTED and REMOVED are terminal. A removed offer row is permanently
// gone; there is no soft delete.
package offer
