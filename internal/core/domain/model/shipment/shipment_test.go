package shipment_test

import (
	"testing"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/shipment"
	"freightmatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShipment(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()

		s, err := shipment.NewShipment(id, 12)

		require.NoError(t, err)
		assert.True(t, s.ID().IsEqual(id))
		assert.Equal(t, 12, s.Capacity())
		assert.False(t, s.Accepted())
		require.NoError(t, s.Validate())
	})

	t.Run("zero capacity", func(t *testing.T) {
		_, err := shipment.NewShipment(kernel.NewUUID(), 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative capacity", func(t *testing.T) {
		_, err := shipment.NewShipment(kernel.NewUUID(), -5)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero id", func(t *testing.T) {
		_, err := shipment.NewShipment(kernel.UUID{}, 12)
		require.Error(t, err)
	})
}

func TestRestoreShipment(t *testing.T) {
	id := kernel.NewUUID()

	s, err := shipment.RestoreShipment(id, 7, true)

	require.NoError(t, err)
	assert.True(t, s.Accepted())
	assert.Equal(t, 7, s.Capacity())
}

func TestShipment_Validate(t *testing.T) {
	var s shipment.Shipment
	require.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
}

func TestShipment_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	a, err := shipment.NewShipment(id, 1)
	require.NoError(t, err)
	b, err := shipment.RestoreShipment(id, 2, true)
	require.NoError(t, err)
	c, err := shipment.NewShipment(kernel.NewUUID(), 1)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
