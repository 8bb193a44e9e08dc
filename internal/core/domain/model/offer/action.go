package offer

import "strings"

// Action is the resolution requested for a pending offer. It is a value
// object parsed from the "status" field of a PUT request.
type Action int

const (
	// UnknownAction represents an invalid or undefined action.
	// This value (0) helps catch uninitialized Action values.
	UnknownAction Action = iota

	// Accept binds the offer's driver to the shipment, if the shipment is
	// still unaccepted.
	Accept

	// Pass withdraws the pending offer, deleting its row.
	Pass
)

// ActionFromString parses an action case-insensitively. Anything other than
// "ACCEPT" or "PASS" yields ErrInvalidStatus.
func ActionFromString(s string) (Action, error) {
	switch strings.ToUpper(s) {
	case "ACCEPT":
		return Accept, nil
	case "PASS":
		return Pass, nil
	default:
		return UnknownAction, ErrInvalidStatus
	}
}

// Validate checks that the action is one of the two resolutions.
func (a Action) Validate() error {
	if a != Accept && a != Pass {
		return ErrInvalidStatus
	}
	return nil
}

// String returns the canonical upper-case name of the action.
func (a Action) String() string {
	switch a {
	case Accept:
		return "ACCEPT"
	case Pass:
		return "PASS"
	default:
		return "UNKNOWN"
	}
}
