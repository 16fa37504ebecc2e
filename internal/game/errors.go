package game

import "errors"

// Engine errors. All are recoverable at the call boundary: the offending
// action is rejected, state is left unchanged, and the caller may resubmit.
var (
	// ErrInvalidCutPosition is returned when a cut position is outside 6..26.
	ErrInvalidCutPosition = errors.New("cut position must be between 6 and 26")

	// ErrIllegalNegotiationAction is returned for negotiation actions that
	// violate turn order or the bidding rules.
	ErrIllegalNegotiationAction = errors.New("illegal negotiation action")

	// ErrIllegalPlay is returned for card plays that violate turn order,
	// suit/trump obligations, or name a card the player does not hold.
	ErrIllegalPlay = errors.New("illegal play")

	// ErrMatchAlreadyComplete is returned for any action submitted to a
	// finished match.
	ErrMatchAlreadyComplete = errors.New("match is already complete")

	// ErrWrongPhase is returned when an operation does not apply to the
	// deal's current phase.
	ErrWrongPhase = errors.New("operation not valid in current phase")

	// ErrDealInProgress is returned when StartDeal is called while a deal is
	// still live.
	ErrDealInProgress = errors.New("a deal is already in progress")
)
