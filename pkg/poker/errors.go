package poker

import "errors"

// Protocol violations. These are returned to the caller without mutating
// hand state.
var (
	ErrNotYourTurn      = errors.New("not your turn to act")
	ErrIllegalAction    = errors.New("action not legal at this point")
	ErrInsufficientFund = errors.New("insufficient chips for action")
	ErrInvalidRaiseSize = errors.New("raise below minimum raise size")
	ErrDeckExhausted    = errors.New("deck exhausted")
	ErrNotInDeck        = errors.New("card not in undealt region")
	ErrNotEnoughPlayers = errors.New("not enough players to start hand")
	ErrHandComplete     = errors.New("hand already complete")
	ErrInvalidCard      = errors.New("invalid card")
	ErrInvalidCardCount = errors.New("evaluator requires 5 to 7 cards")
)

// FaultError marks a hand-level fault: the hand is voided, all commitments
// are returned, and the engine transitions directly to COMPLETE.
type FaultError string

func (e FaultError) Error() string { return "hand fault: " + string(e) }

// ErrFault constructs a hand-level fault error.
func ErrFault(msg string) error { return FaultError(msg) }
