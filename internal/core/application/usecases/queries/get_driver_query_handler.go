package queries

import (
	"context"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriverQueryHandler reads one driver and its pending offers straight
// from the database.
type GetDriverQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverQueryHandler creates a handler for driver reads.
func NewGetDriverQueryHandler(db *gorm.DB) GetDriverQueryHandler {
	return GetDriverQueryHandler{db: db}
}

// Handle executes the query. Accepted offers are not listed; a driver sees
// only offers it can still act on.
func (h GetDriverQueryHandler) Handle(
	ctx context.Context,
	query GetDriverQuery,
) (GetDriverQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriverQueryResponse{}, err
	}

	var driverRow struct {
		ID uuid.UUID
	}
	result := h.db.WithContext(ctx).Raw(`
		SELECT id
		FROM driver
		WHERE id = ?
	`, query.DriverID().Bytes()).Scan(&driverRow)
	if result.Error != nil {
		return GetDriverQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetDriverQueryResponse{},
			errs.NewObjectNotFoundError("driver", query.DriverID().String())
	}

	response := GetDriverQueryResponse{
		ID:     query.DriverID(),
		Offers: make([]DriverOfferResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, shipment_id
		FROM offer
		WHERE driver_id = ? AND accepted = false
		ORDER BY id
	`, query.DriverID().Bytes()).Rows()
	if err != nil {
		return GetDriverQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var offerID, shipmentID uuid.UUID
		if err = rows.Scan(&offerID, &shipmentID); err != nil {
			return GetDriverQueryResponse{}, err
		}

		oID, idErr := kernel.UUIDFromBytes(offerID[:])
		if idErr != nil {
			return GetDriverQueryResponse{}, idErr
		}
		sID, idErr := kernel.UUIDFromBytes(shipmentID[:])
		if idErr != nil {
			return GetDriverQueryResponse{}, idErr
		}

		response.Offers = append(response.Offers, DriverOfferResponse{
			OfferID:    oID,
			ShipmentID: sID,
		})
	}

	if err = rows.Err(); err != nil {
		return GetDriverQueryResponse{}, err
	}

	return response, nil
}
