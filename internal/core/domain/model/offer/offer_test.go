package offer_test

import (
	"testing"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/offer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOffer(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()
		shipmentID := kernel.NewUUID()
		driverID := kernel.NewUUID()

		o, err := offer.NewOffer(id, shipmentID, driverID)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.ShipmentID().IsEqual(shipmentID))
		assert.True(t, o.DriverID().IsEqual(driverID))
		assert.False(t, o.Accepted())
		require.NoError(t, o.Validate())
	})

	t.Run("zero shipment id", func(t *testing.T) {
		_, err := offer.NewOffer(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID())
		require.Error(t, err)
	})

	t.Run("zero driver id", func(t *testing.T) {
		_, err := offer.NewOffer(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{})
		require.Error(t, err)
	})
}

func TestRestoreOffer(t *testing.T) {
	o, err := offer.RestoreOffer(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), true)

	require.NoError(t, err)
	assert.True(t, o.Accepted())
}

func TestOffer_Validate(t *testing.T) {
	var o offer.Offer
	require.ErrorIs(t, o.Validate(), offer.ErrOfferIsNotConstructed)
}
