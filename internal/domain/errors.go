package domain

import (
	"errors"
	"fmt"
)

// All invalid-input outcomes are returned as explicit errors. The engine
// never panics on well-typed input; only ErrInvalidPhase indicates a
// programming defect.
var (
	ErrNotYourTurn      = errors.New("not your turn")
	ErrWrongPhase       = errors.New("assignment only allowed during planning")
	ErrInvalidSlot      = errors.New("invalid incident slot")
	ErrAlreadyAssigned  = errors.New("already assigned a vehicle this turn")
	ErrCardNotInHand    = errors.New("card not in hand")
	ErrInsufficientCrew = errors.New("not enough crew")
	ErrUnknownVehicle   = errors.New("vehicle code not in catalog")
	ErrDeckTooSmall     = errors.New("deck too small to deal a starting hand")
	ErrUnknownPlayer    = errors.New("player not part of this match")
	ErrMatchEnded       = errors.New("match has ended")
	ErrInvalidPhase     = errors.New("invalid phase")
)

// InsufficientEnergyError reports a failed assignment together with the
// computed cost, including any pressure surcharge.
type InsufficientEnergyError struct {
	Required int
}

func (e InsufficientEnergyError) Error() string {
	return fmt.Sprintf("not enough energy (need %d)", e.Required)
}
