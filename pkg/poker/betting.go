package poker

import "fmt"

// ActionKind identifies a player decision.
type ActionKind int

const (
	Fold ActionKind = iota
	Check
	Call
	Bet
	Raise
	AllIn
	Draw
)

func (k ActionKind) String() string {
	switch k {
	case Fold:
		return "FOLD"
	case Check:
		return "CHECK"
	case Call:
		return "CALL"
	case Bet:
		return "BET"
	case Raise:
		return "RAISE"
	case AllIn:
		return "ALL_IN"
	case Draw:
		return "DRAW"
	default:
		return "UNKNOWN"
	}
}

// Action is one decision submitted for a seat. Amount is the total street
// bet being moved to for BET and RAISE, and is ignored for the other
// kinds. DiscardMask is a bit mask of hole-card indices for DRAW.
type Action struct {
	Seat        int
	Kind        ActionKind
	Amount      int64
	DiscardMask uint8
}

// LegalActions describes what the seat whose turn it is may do.
type LegalActions struct {
	Kinds      []ActionKind
	CallAmount int64
	MinBetTo   int64
	MaxBetTo   int64
}

// Allows reports whether kind is in the legal set.
func (la LegalActions) Allows(kind ActionKind) bool {
	for _, k := range la.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// bettingRound drives one street of betting. It owns turn order, the
// current bet level, min-raise tracking and the termination condition.
// The round is over when pending reaches zero: every live seat has had a
// chance to act since the last full raise.
type bettingRound struct {
	seats    []*Seat
	pm       *PotManager
	limit    LimitType
	fixedBet int64

	currentBet    int64
	minRaise      int64
	lastAggressor int
	// raiseLocked is set when a short all-in raises the bet by less than
	// a full raise. No seat may raise again this street.
	raiseLocked bool
	toAct       int
	pending     int
}

// newBettingRound starts a street. firstToAct must be a seat that can
// act; blinds already posted (preflop) are reflected in openBet and
// minRaise.
func newBettingRound(seats []*Seat, pm *PotManager, limit LimitType, fixedBet, openBet, minRaise int64, firstToAct int) *bettingRound {
	br := &bettingRound{
		seats:         seats,
		pm:            pm,
		limit:         limit,
		fixedBet:      fixedBet,
		currentBet:    openBet,
		minRaise:      minRaise,
		lastAggressor: -1,
		toAct:         firstToAct,
	}
	for _, s := range seats {
		if s.CanAct() {
			br.pending++
		}
	}
	return br
}

// done reports whether the street's betting is closed.
func (br *bettingRound) done() bool {
	return br.pending <= 0
}

// advance moves the turn to the next seat that can act.
func (br *bettingRound) advance() {
	n := len(br.seats)
	for off := 1; off <= n; off++ {
		i := (br.toAct + off) % n
		if br.seats[i].CanAct() {
			br.toAct = i
			return
		}
	}
}

// countOtherActors counts seats other than actor that still can act.
func (br *bettingRound) countOtherActors(actor int) int {
	count := 0
	for i, s := range br.seats {
		if i != actor && s.CanAct() {
			count++
		}
	}
	return count
}

// legalActions derives the action set for the seat on turn per the bet
// facing it.
func (br *bettingRound) legalActions(seat int) LegalActions {
	s := br.seats[seat]
	facing := br.currentBet - s.Bet
	la := LegalActions{Kinds: []ActionKind{Fold}}

	if facing <= 0 {
		la.Kinds = append(la.Kinds, Check)
		if s.Stack > 0 && !br.raiseLocked {
			la.Kinds = append(la.Kinds, Bet)
			la.MinBetTo, la.MaxBetTo = br.betBounds(s)
		}
	} else {
		la.Kinds = append(la.Kinds, Call)
		la.CallAmount = facing
		if la.CallAmount > s.Stack {
			la.CallAmount = s.Stack
		}
		if !br.raiseLocked && s.Bet+s.Stack > br.currentBet {
			min, max := br.betBounds(s)
			if s.Bet+s.Stack >= min {
				la.Kinds = append(la.Kinds, Raise)
				la.MinBetTo, la.MaxBetTo = min, max
			}
		}
	}
	if s.Stack > 0 {
		la.Kinds = append(la.Kinds, AllIn)
	}
	return la
}

// betBounds computes the legal total-bet range for a bet or raise by s.
func (br *bettingRound) betBounds(s *Seat) (min, max int64) {
	switch br.limit {
	case FixedLimit:
		min = br.currentBet + br.fixedBet
		max = min
	case PotLimit:
		min = br.currentBet + br.minRaise
		facing := br.currentBet - s.Bet
		max = br.currentBet + br.pm.TotalPot() + facing
	default:
		min = br.currentBet + br.minRaise
		max = s.Bet + s.Stack
	}
	if cap := s.Bet + s.Stack; max > cap {
		max = cap
	}
	return min, max
}

// apply validates and executes a betting action for the seat on turn.
// State is untouched when an error is returned.
func (br *bettingRound) apply(act Action) error {
	s := br.seats[act.Seat]
	facing := br.currentBet - s.Bet

	switch act.Kind {
	case Fold:
		s.State = SeatFolded
		br.pending--

	case Check:
		if facing > 0 {
			return fmt.Errorf("%w: cannot check facing a bet of %d", ErrIllegalAction, facing)
		}
		br.pending--

	case Call:
		if facing <= 0 {
			return fmt.Errorf("%w: nothing to call", ErrIllegalAction)
		}
		paid := s.pay(facing)
		br.pm.AddBet(act.Seat, paid)
		br.pending--

	case Bet:
		if facing > 0 {
			return fmt.Errorf("%w: facing a bet, use raise", ErrIllegalAction)
		}
		return br.applyRaiseTo(act.Seat, act.Amount)

	case Raise:
		if facing <= 0 {
			return fmt.Errorf("%w: no bet to raise, use bet", ErrIllegalAction)
		}
		return br.applyRaiseTo(act.Seat, act.Amount)

	case AllIn:
		br.applyAllIn(act.Seat)

	default:
		return fmt.Errorf("%w: %s is not a betting action", ErrIllegalAction, act.Kind)
	}
	return nil
}

// applyRaiseTo moves the seat's street bet to target, validating limit
// policy and min-raise.
func (br *bettingRound) applyRaiseTo(seat int, target int64) error {
	s := br.seats[seat]
	if br.raiseLocked {
		return fmt.Errorf("%w: betting is capped by an all-in", ErrInvalidRaiseSize)
	}
	min, max := br.betBounds(s)
	if target < min {
		return fmt.Errorf("%w: target %d below minimum %d", ErrInvalidRaiseSize, target, min)
	}
	if target > max {
		if br.limit == NoLimit {
			return fmt.Errorf("%w: target %d exceeds stack", ErrInsufficientFund, target)
		}
		return fmt.Errorf("%w: target %d above maximum %d", ErrInvalidRaiseSize, target, max)
	}
	needed := target - s.Bet
	if needed > s.Stack {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientFund, needed, s.Stack)
	}
	paid := s.pay(needed)
	br.pm.AddBet(seat, paid)
	br.minRaise = target - br.currentBet
	br.currentBet = target
	br.lastAggressor = seat
	br.pending = br.countOtherActors(seat)
	return nil
}

// applyAllIn commits the seat's whole stack. An all-in that raises by a
// full raise reopens action; a short one locks further raising for the
// street while still obligating other seats to match the new level.
func (br *bettingRound) applyAllIn(seat int) {
	s := br.seats[seat]
	target := s.Bet + s.Stack
	paid := s.pay(s.Stack)
	br.pm.AddBet(seat, paid)

	if target <= br.currentBet {
		br.pending--
		return
	}
	increment := target - br.currentBet
	br.currentBet = target
	if increment >= br.minRaise && !br.raiseLocked {
		br.minRaise = increment
		br.lastAggressor = seat
	} else {
		br.raiseLocked = true
	}
	br.pending = br.countOtherActors(seat)
}
