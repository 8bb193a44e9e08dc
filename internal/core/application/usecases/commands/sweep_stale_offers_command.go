package commands

import (
	"errors"

	"freightmatch/internal/pkg/guard"
)

var ErrSweepStaleOffersCommandIsNotConstructed = errors.New(
	"SweepStaleOffersCommand must be created via NewSweepStaleOffersCommand constructor",
)

// SweepStaleOffersCommand requests deletion of pending offers whose shipment
// is already accepted. It carries no parameters.
type SweepStaleOffersCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepStaleOffersCommand creates a sweep command.
func NewSweepStaleOffersCommand() SweepStaleOffersCommand {
	return SweepStaleOffersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c SweepStaleOffersCommand) Validate() error {
	return c.guard.Validate(ErrSweepStaleOffersCommandIsNotConstructed)
}
