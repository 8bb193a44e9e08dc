package commands_test

import (
	"testing"

	"freightmatch/internal/core/application/usecases/commands"
	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateShipmentCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(id, 10)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ShipmentID())
	assert.Equal(t, 10, cmd.Capacity())
	require.NoError(t, cmd.Validate())
}

func TestNewCreateShipmentCommand_InvalidShipmentID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateShipmentCommand(invalidID, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateShipmentCommand_InvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		_, err := commands.NewCreateShipmentCommand(kernel.NewUUID(), capacity)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestCreateShipmentCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateShipmentCommand{}
	err := cmd.Validate()
	require.ErrorIs(t, err, commands.ErrCreateShipmentCommandIsNotConstructed)
}
