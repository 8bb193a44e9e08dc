package commands_test

import (
	"testing"

	"freightmatch/internal/core/application/usecases/commands"
	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/offer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResolveOfferCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()

	for _, action := range []offer.Action{offer.Accept, offer.Pass} {
		cmd, err := commands.NewResolveOfferCommand(id, action)
		require.NoError(t, err)
		assert.Equal(t, id, cmd.OfferID())
		assert.Equal(t, action, cmd.Action())
		require.NoError(t, cmd.Validate())
	}
}

func TestNewResolveOfferCommand_InvalidOfferID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := commands.NewResolveOfferCommand(invalidID, offer.Accept)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewResolveOfferCommand_UnknownAction(t *testing.T) {
	_, err := commands.NewResolveOfferCommand(kernel.NewUUID(), offer.UnknownAction)
	require.Error(t, err)
	assert.ErrorIs(t, err, offer.ErrInvalidStatus)
}

func TestResolveOfferCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.ResolveOfferCommand{}
	err := cmd.Validate()
	require.ErrorIs(t, err, commands.ErrResolveOfferCommandIsNotConstructed)
}
