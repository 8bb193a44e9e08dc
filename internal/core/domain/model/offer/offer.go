package offer

import (
	"errors"

	"freightmatch/internal/core/domain/model/kernel"
)

var (
	// ErrOfferIsNotConstructed is returned when an Offer instance was not
	// created through NewOffer or RestoreOffer.
	ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer or RestoreOffer")

	// ErrNotActive is the business-rule failure for acting on an offer that
	// is already resolved, already culled, or never existed. Callers cannot
	// distinguish these cases and need not.
	ErrNotActive = errors.New("Not an Active Offer")

	// ErrInvalidStatus is returned for PUT actions other than ACCEPT or PASS.
	ErrInvalidStatus = errors.New(`Status must be "ACCEPT" or "PASS"`)
)

// Offer links one shipment to one candidate driver. It references both by
// identifier only; culling offers never cascades to the driver.
type Offer struct {
	id         kernel.UUID
	shipmentID kernel.UUID
	driverID   kernel.UUID
	accepted   bool

	isConstructed bool
}

// NewOffer creates a pending offer for a shipment/driver pair.
func NewOffer(id, shipmentID, driverID kernel.UUID) (*Offer, error) {
	o := &Offer{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setShipmentID(shipmentID),
		o.setDriverID(driverID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOffer reconstructs an offer from persistence, including its
// accepted flag.
func RestoreOffer(id, shipmentID, driverID kernel.UUID, accepted bool) (*Offer, error) {
	o, err := NewOffer(id, shipmentID, driverID)
	if err != nil {
		return nil, err
	}

	o.accepted = accepted
	return o, nil
}

// Validate ensures the offer was created via a constructor.
func (o *Offer) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOfferIsNotConstructed
	}
	return nil
}

// IsEqual compares two offers by identifier.
func (o *Offer) IsEqual(other *Offer) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the offer's unique identifier.
func (o *Offer) ID() kernel.UUID {
	return o.id
}

// ShipmentID returns the identifier of the shipment this offer belongs to.
func (o *Offer) ShipmentID() kernel.UUID {
	return o.shipmentID
}

// DriverID returns the identifier of the candidate driver.
func (o *Offer) DriverID() kernel.UUID {
	return o.driverID
}

// Accepted reports whether this offer won its shipment.
func (o *Offer) Accepted() bool {
	return o.accepted
}

func (o *Offer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Offer) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.shipmentID = id
	return nil
}

func (o *Offer) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.driverID = id
	return nil
}
