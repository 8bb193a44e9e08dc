package offerrepo

import (
	"context"
	"errors"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/offer"
	"freightmatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOfferRepository implements OfferRepository using GORM.
type GormOfferRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOfferRepository creates a new GORM offer repository.
func NewGormOfferRepository(db *gorm.DB, tracker aggregateTracker) *GormOfferRepository {
	return &GormOfferRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddBatch inserts all offers in one batch statement. Fan-out uses this so a
// shipment's candidate set appears in a single round trip.
func (r *GormOfferRepository) AddBatch(ctx context.Context, offers []*offer.Offer) error {
	if len(offers) == 0 {
		return nil
	}

	dtos := make([]OfferDTO, 0, len(offers))
	for _, o := range offers {
		if err := o.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(o))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return err
	}

	for _, o := range offers {
		r.tracker.TrackAggregate(o.ID(), o)
	}
	return nil
}

// Get retrieves an offer by ID.
func (r *GormOfferRepository) Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OfferDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("offer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Accept marks the offer accepted. The shipment-level lock must already be
// held, so no condition on the offer row is needed here.
func (r *GormOfferRepository) Accept(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&OfferDTO{}).
		Where("id = ?", id.Bytes()).
		Update("accepted", true).Error
}

// CullSiblings deletes every pending offer of the shipment except the kept
// one.
func (r *GormOfferRepository) CullSiblings(ctx context.Context, shipmentID, keptOfferID kernel.UUID) error {
	if err := errors.Join(shipmentID.Validate(), keptOfferID.Validate()); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("shipment_id = ? AND id <> ? AND accepted = ?",
			shipmentID.Bytes(), keptOfferID.Bytes(), false).
		Delete(&OfferDTO{}).Error
}

// DeletePending deletes the offer only while it is still pending. Zero rows
// affected means the offer was already resolved, culled, or never existed.
func (r *GormOfferRepository) DeletePending(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND accepted = ?", id.Bytes(), false).
		Delete(&OfferDTO{})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// DeleteStale deletes pending offers whose shipment is already accepted.
// These are leftovers of a failed sibling cull.
func (r *GormOfferRepository) DeleteStale(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("accepted = ? AND shipment_id IN (SELECT id FROM shipment WHERE accepted = ?)",
			false, true).
		Delete(&OfferDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
