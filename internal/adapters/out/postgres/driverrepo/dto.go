// Package driverrepo provides data transfer objects and mapping functions
// for driver persistence.
package driverrepo

import (
	"freightmatch/internal/core/domain/model/driver"
	"freightmatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO maps the driver aggregate onto the "driver" table.
type DriverDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Capacity int       `gorm:"type:int;not null"`
}

// TableName overrides GORM's pluralized default with the schema's singular
// table name.
func (DriverDTO) TableName() string {
	return "driver"
}

// fromDomain converts a driver aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:       aggregate.ID().Bytes(),
		Capacity: aggregate.Capacity(),
	}
}

// toDomain reconstructs a driver aggregate from its database row.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Capacity)
}
