package commands

import (
	"errors"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/offer"
	"freightmatch/internal/pkg/guard"
)

var ErrResolveOfferCommandIsNotConstructed = errors.New(
	"ResolveOfferCommand must be created via NewResolveOfferCommand constructor",
)

// ResolveOfferCommand represents a driver's decision on one pending offer:
// accept it or pass on it.
type ResolveOfferCommand struct { //nolint:recvcheck //using for validation
	offerID kernel.UUID
	action  offer.Action

	guard guard.ConstructorGuard
}

// NewResolveOfferCommand creates a command to resolve an offer. The action
// must be offer.Accept or offer.Pass.
func NewResolveOfferCommand(offerID kernel.UUID, action offer.Action) (ResolveOfferCommand, error) {
	cmd := ResolveOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOfferID(offerID),
		cmd.setAction(action),
	); err != nil {
		return ResolveOfferCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveOfferCommand) Validate() error {
	return c.guard.Validate(ErrResolveOfferCommandIsNotConstructed)
}

// OfferID returns the identifier of the offer being resolved.
func (c ResolveOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

// Action returns the requested resolution.
func (c ResolveOfferCommand) Action() offer.Action {
	return c.action
}

func (c *ResolveOfferCommand) setOfferID(offerID kernel.UUID) error {
	if err := offerID.Validate(); err != nil {
		return err
	}

	c.offerID = offerID
	return nil
}

func (c *ResolveOfferCommand) setAction(action offer.Action) error {
	if err := action.Validate(); err != nil {
		return err
	}

	c.action = action
	return nil
}
