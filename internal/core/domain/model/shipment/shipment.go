package shipment

import (
	"errors"
	"fmt"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

// Shipment is the aggregate root for a freight job. Invariants:
//   - valid unique identifier
//   - capacity is positive
//   - accepted flips from false to true at most once, and agrees with the
//     single accepted offer row for this shipment
type Shipment struct {
	id       kernel.UUID
	capacity int
	accepted bool

	isConstructed bool
}

// NewShipment creates a shipment awaiting offers. Capacity must be positive.
func NewShipment(id kernel.UUID, capacity int) (*Shipment, error) {
	s := &Shipment{isConstructed: true}

	if err := errors.Join(
		s.setID(id),
		s.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence, including its
// accepted flag.
func RestoreShipment(id kernel.UUID, capacity int, accepted bool) (*Shipment, error) {
	s, err := NewShipment(id, capacity)
	if err != nil {
		return nil, err
	}

	s.accepted = accepted
	return s, nil
}

// Validate ensures the shipment was created via a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by identifier.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// Capacity returns the capacity a driver must meet to be eligible.
func (s *Shipment) Capacity() int {
	return s.capacity
}

// Accepted reports whether one of the shipment's offers has been accepted.
func (s *Shipment) Accepted() bool {
	return s.accepted
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity",
			fmt.Errorf("%d is not greater than 0", capacity))
	}
	s.capacity = capacity
	return nil
}
