package queries

import (
	"context"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentQueryHandler reads one shipment and its offers straight from
// the database. Every call re-reads current state; no shipment or offer
// state is cached in process, which is what keeps the conditional-update
// race detection in the command path valid.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for shipment reads.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the query. The offer filter matches the shipment's
// accepted flag: an unaccepted shipment lists its pending offers, an
// accepted one returns exactly the winning offer.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	var shipmentRow struct {
		ID       uuid.UUID
		Accepted bool
	}
	result := h.db.WithContext(ctx).Raw(`
		SELECT id, accepted
		FROM shipment
		WHERE id = ?
	`, query.ShipmentID().Bytes()).Scan(&shipmentRow)
	if result.Error != nil {
		return GetShipmentQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetShipmentQueryResponse{},
			errs.NewObjectNotFoundError("shipment", query.ShipmentID().String())
	}

	response := GetShipmentQueryResponse{
		ID:       query.ShipmentID(),
		Accepted: shipmentRow.Accepted,
		Offers:   make([]ShipmentOfferResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, driver_id
		FROM offer
		WHERE shipment_id = ? AND accepted = ?
		ORDER BY id
	`, query.ShipmentID().Bytes(), shipmentRow.Accepted).Rows()
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var offerID, driverID uuid.UUID
		if err = rows.Scan(&offerID, &driverID); err != nil {
			return GetShipmentQueryResponse{}, err
		}

		oID, idErr := kernel.UUIDFromBytes(offerID[:])
		if idErr != nil {
			return GetShipmentQueryResponse{}, idErr
		}
		dID, idErr := kernel.UUIDFromBytes(driverID[:])
		if idErr != nil {
			return GetShipmentQueryResponse{}, idErr
		}

		response.Offers = append(response.Offers, ShipmentOfferResponse{
			OfferID:  oID,
			DriverID: dID,
		})
	}

	if err = rows.Err(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	return response, nil
}
