// Package offerrepo provides data transfer objects and mapping functions
// for offer persistence.
package offerrepo

import (
	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/offer"

	"github.com/google/uuid"
)

// OfferDTO maps the offer entity onto the "offer" table. ShipmentID and
// DriverID are associative references only; deleting offers never cascades
// to the driver.
type OfferDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	DriverID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Accepted   bool      `gorm:"type:boolean;not null;default:false"`
}

// TableName overrides GORM's pluralized default with the schema's singular
// table name.
func (OfferDTO) TableName() string {
	return "offer"
}

// fromDomain converts an offer entity to its database representation.
func fromDomain(entity *offer.Offer) OfferDTO {
	return OfferDTO{
		ID:         entity.ID().Bytes(),
		ShipmentID: entity.ShipmentID().Bytes(),
		DriverID:   entity.DriverID().Bytes(),
		Accepted:   entity.Accepted(),
	}
}

// toDomain reconstructs an offer entity from its database row.
func toDomain(dto OfferDTO) (*offer.Offer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	return offer.RestoreOffer(id, shipmentID, driverID, dto.Accepted)
}
