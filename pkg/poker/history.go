package poker

import (
	"fmt"
	"math/rand"
)

// HistoryPlayer is one seat's entry in a hand history. HoleCards are
// present only for seats whose cards were revealed at showdown.
type HistoryPlayer struct {
	Seat       int      `json:"seat"`
	Name       string   `json:"name"`
	Identity   string   `json:"identity"`
	StackStart int64    `json:"stack_start"`
	HoleCards  []string `json:"hole_cards,omitempty"`
}

// HistoryAction is one accepted action.
type HistoryAction struct {
	Seat        int    `json:"seat"`
	Kind        string `json:"kind"`
	Amount      int64  `json:"amount"`
	Street      string `json:"street"`
	DiscardMask uint8  `json:"discard_mask,omitempty"`
}

// HistoryPot is one settled pot.
type HistoryPot struct {
	Amount  int64 `json:"amount"`
	Winners []int `json:"winners"`
}

// HandHistory is the canonical record of a completed hand, serializable
// to JSON for offline analysis. Dealer and Seed carry enough context to
// replay the hand deterministically.
type HandHistory struct {
	HandID   string          `json:"hand_id"`
	Variant  string          `json:"variant"`
	Dealer   int             `json:"dealer"`
	Seed     int64           `json:"seed,omitempty"`
	Stakes   Stakes          `json:"stakes"`
	Players  []HistoryPlayer `json:"players"`
	Actions  []HistoryAction `json:"actions"`
	Pots     []HistoryPot    `json:"pots"`
	PotTotal int64           `json:"pot_total"`
	Outcome  string          `json:"outcome"`
}

// History builds the hand's history record. The hand should be COMPLETE;
// a history taken earlier covers only what has happened so far.
func (h *Hand) History() HandHistory {
	hist := HandHistory{
		HandID:  h.cfg.HandID,
		Variant: h.cfg.Variant.Name,
		Dealer:  h.cfg.Dealer,
		Stakes:  h.cfg.Stakes,
		Actions: append([]HistoryAction{}, h.actions...),
		Outcome: h.outcome,
	}
	for i, s := range h.seats {
		if !s.Occupied() {
			continue
		}
		hp := HistoryPlayer{
			Seat:       i,
			Name:       s.Name,
			Identity:   s.Player,
			StackStart: s.stackAtHandStart,
		}
		if s.Value != nil {
			hp.HoleCards = cardStrings(s.HoleCards())
		}
		hist.Players = append(hist.Players, hp)
	}
	for _, r := range h.results {
		hist.Pots = append(hist.Pots, HistoryPot{Amount: r.Amount, Winners: r.Winners})
		hist.PotTotal += r.Amount
	}
	return hist
}

// VariantByName resolves the variants shipped with the engine.
func VariantByName(name string) (Variant, bool) {
	switch name {
	case "texas-holdem":
		return TexasHoldem(), true
	case "2-7-triple-draw":
		return TripleDraw27(), true
	case "short-deck-holdem":
		return ShortDeck(), true
	case "seven-card-stud":
		return SevenCardStud(), true
	default:
		return Variant{}, false
	}
}

// actionKindFromString parses a history action kind.
func actionKindFromString(s string) (ActionKind, error) {
	for _, k := range []ActionKind{Fold, Check, Call, Bet, Raise, AllIn, Draw} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown action kind %q", ErrIllegalAction, s)
}

// Replay re-runs a hand history's action stream against a fresh engine.
// With the RNG seeded as the original hand's was, the replay reproduces
// the original event stream apart from timestamps. The seat slice is
// rebuilt from the recorded starting stacks.
func Replay(hist HandHistory, rng *rand.Rand, sink Sink) (*Hand, error) {
	variant, ok := VariantByName(hist.Variant)
	if !ok {
		return nil, fmt.Errorf("unknown variant %q", hist.Variant)
	}

	maxSeat := hist.Dealer
	for _, p := range hist.Players {
		if p.Seat > maxSeat {
			maxSeat = p.Seat
		}
	}
	seats := make([]*Seat, maxSeat+1)
	for i := range seats {
		seats[i] = &Seat{Num: i}
	}
	for _, p := range hist.Players {
		seats[p.Seat].Player = p.Identity
		seats[p.Seat].Name = p.Name
		seats[p.Seat].Stack = p.StackStart
		seats[p.Seat].State = SeatActive
	}

	h, err := NewHand(HandConfig{
		HandID:  hist.HandID,
		Variant: variant,
		Stakes:  hist.Stakes,
		Dealer:  hist.Dealer,
		Rng:     rng,
		Sink:    sink,
	}, seats)
	if err != nil {
		return nil, err
	}
	if err := h.Begin(); err != nil {
		return nil, err
	}
	for _, ha := range hist.Actions {
		kind, err := actionKindFromString(ha.Kind)
		if err != nil {
			return nil, err
		}
		err = h.Apply(Action{
			Seat:        ha.Seat,
			Kind:        kind,
			Amount:      ha.Amount,
			DiscardMask: ha.DiscardMask,
		})
		if err != nil {
			return nil, fmt.Errorf("replaying %s by seat %d: %w", ha.Kind, ha.Seat, err)
		}
	}
	return h, nil
}
