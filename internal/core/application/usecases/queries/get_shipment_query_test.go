package queries_test

import (
	"testing"

	"freightmatch/internal/core/application/usecases/queries"
	"freightmatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetShipmentQuery_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetShipmentQuery(id)
	require.NoError(t, err)
	assert.Equal(t, id, query.ShipmentID())
	require.NoError(t, query.Validate())
}

func TestNewGetShipmentQuery_InvalidShipmentID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := queries.NewGetShipmentQuery(invalidID)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetShipmentQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetShipmentQuery{}
	err := query.Validate()
	require.ErrorIs(t, err, queries.ErrGetShipmentQueryIsNotConstructed)
}
