// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence.
package shipmentrepo

import (
	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO maps the shipment aggregate onto the "shipment" table.
// Column names are the snake_case derivations of the domain field names;
// this convention is shared with other consumers of the schema.
type ShipmentDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Capacity int       `gorm:"type:int;not null"`
	Accepted bool      `gorm:"type:boolean;not null;default:false"`
}

// TableName overrides GORM's pluralized default with the schema's singular
// table name.
func (ShipmentDTO) TableName() string {
	return "shipment"
}

// fromDomain converts a shipment aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:       aggregate.ID().Bytes(),
		Capacity: aggregate.Capacity(),
		Accepted: aggregate.Accepted(),
	}
}

// toDomain reconstructs a shipment aggregate from its database row.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(id, dto.Capacity, dto.Accepted)
}
