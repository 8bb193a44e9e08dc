package queries

import (
	"errors"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/guard"
)

var ErrGetDriverQueryIsNotConstructed = errors.New(
	"GetDriverQuery must be created via NewGetDriverQuery constructor",
)

// GetDriverQuery retrieves one driver with its outstanding offers.
type GetDriverQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverQuery creates a query for the given driver identifier.
func NewGetDriverQuery(driverID kernel.UUID) (GetDriverQuery, error) {
	q := GetDriverQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setDriverID(driverID); err != nil {
		return GetDriverQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverQueryIsNotConstructed)
}

// DriverID returns the identifier of the driver being read.
func (q GetDriverQuery) DriverID() kernel.UUID {
	return q.driverID
}

func (q *GetDriverQuery) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	q.driverID = driverID
	return nil
}

// DriverOfferResponse is one outstanding offer in the driver read model.
type DriverOfferResponse struct {
	OfferID    kernel.UUID
	ShipmentID kernel.UUID
}

// GetDriverQueryResponse is the driver read model: the driver's identifier
// and its outstanding (pending) offers.
type GetDriverQueryResponse struct {
	ID     kernel.UUID
	Offers []DriverOfferResponse
}
