// Package driver contains the Driver aggregate. Drivers are read-only input
// to offer fan-out: a driver is eligible for a shipment when its capacity is
// at least the shipment's capacity. The allocation protocol never mutates a
// driver.
package driver

import (
	"errors"
	"fmt"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/errs"
)

// ErrDriverIsNotConstructed is returned when a Driver instance was not
// created through NewDriver or RestoreDriver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")

// Driver is a carrier able to haul shipments up to its capacity.
type Driver struct {
	id       kernel.UUID
	capacity int

	isConstructed bool
}

// NewDriver creates a driver. Capacity must be positive.
func NewDriver(id kernel.UUID, capacity int) (*Driver, error) {
	d := &Driver{isConstructed: true}

	if err := errors.Join(
		d.setID(id),
		d.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a driver from persistence.
func RestoreDriver(id kernel.UUID, capacity int) (*Driver, error) {
	return NewDriver(id, capacity)
}

// Validate ensures the driver was created via a constructor.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// IsEqual compares two drivers by identifier.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Capacity returns the maximum shipment capacity the driver can haul.
func (d *Driver) Capacity() int {
	return d.capacity
}

// CanHaul reports whether the driver is eligible for a shipment of the given
// capacity.
func (d *Driver) CanHaul(capacity int) bool {
	return d.capacity >= capacity
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity",
			fmt.Errorf("%d is not greater than 0", capacity))
	}
	d.capacity = capacity
	return nil
}
