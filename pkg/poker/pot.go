package poker

import (
	"sort"

	"github.com/decred/slog"
)

// Pot is a single pot or side pot. Eligible is indexed by seat number and
// marks who can win it. Cap is the per-seat contribution level that closed
// the pot, zero for the uncapped top pot.
type Pot struct {
	Amount   int64
	Eligible []bool
	Cap      int64
}

// PotResult records the outcome of one pot at settlement. Winners are
// listed in order starting from the dealer's left; any odd chip that does
// not divide evenly goes to Winners[0].
type PotResult struct {
	Index      int
	Amount     int64
	Winners    []int
	AmountEach int64
	Remainder  int64
}

// PotManager tracks per-seat contributions and partitions them into side
// pots. It only sees seat numbers and chip amounts, never player state
// beyond the fold flags passed at partition time.
type PotManager struct {
	log        slog.Logger
	streetBets []int64
	totalBets  []int64
	pots       []Pot
}

// NewPotManager creates a pot manager for a table with nSeats seats.
func NewPotManager(nSeats int, log slog.Logger) *PotManager {
	if log == nil {
		log = slog.Disabled
	}
	return &PotManager{
		log:        log,
		streetBets: make([]int64, nSeats),
		totalBets:  make([]int64, nSeats),
	}
}

// AddBet records amount chips put in by seat on the current street.
func (pm *PotManager) AddBet(seat int, amount int64) {
	pm.streetBets[seat] += amount
	pm.totalBets[seat] += amount
}

// StreetBet returns the seat's contribution on the current street.
func (pm *PotManager) StreetBet(seat int) int64 {
	return pm.streetBets[seat]
}

// TotalBet returns the seat's contribution over the whole hand.
func (pm *PotManager) TotalBet(seat int) int64 {
	return pm.totalBets[seat]
}

// TotalPot returns all chips committed so far.
func (pm *PotManager) TotalPot() int64 {
	var total int64
	for _, b := range pm.totalBets {
		total += b
	}
	return total
}

// CloseStreet rebuilds the pot partition from the cumulative totals and
// clears the per-street counters. folded is indexed by seat number.
func (pm *PotManager) CloseStreet(folded []bool) {
	pm.buildPots(folded)
	for i := range pm.streetBets {
		pm.streetBets[i] = 0
	}
}

// Pots returns the current partition. The slice is rebuilt on every
// CloseStreet so callers must not retain it across streets.
func (pm *PotManager) Pots() []Pot {
	return pm.pots
}

// ReturnUncalled refunds the uncalled portion of the highest bet. When
// exactly one seat has committed more than every other live seat could
// match, the difference goes back to its stack before pots are built.
// Returns the seat and amount refunded, or -1 when nothing was uncalled.
func (pm *PotManager) ReturnUncalled(seats []*Seat) (int, int64) {
	hiSeat := -1
	var hi, second int64
	for i, total := range pm.totalBets {
		if total > hi {
			second = hi
			hi = total
			hiSeat = i
		} else if total > second {
			second = total
		}
	}
	if hiSeat < 0 || hi <= second {
		return -1, 0
	}
	refund := hi - second
	pm.totalBets[hiSeat] -= refund
	if pm.streetBets[hiSeat] >= refund {
		pm.streetBets[hiSeat] -= refund
	} else {
		pm.streetBets[hiSeat] = 0
	}
	seats[hiSeat].Stack += refund
	seats[hiSeat].TotalBet -= refund
	pm.log.Debugf("Returning uncalled bet of %d to seat %d", refund, hiSeat)
	return hiSeat, refund
}

// buildPots partitions cumulative contributions into pots by bet level.
// Each distinct all-in level caps a pot; folded seats contribute chips but
// are never eligible. The partition is recomputed from scratch so repeated
// calls are idempotent.
func (pm *PotManager) buildPots(folded []bool) {
	levelSet := make(map[int64]bool)
	for i, total := range pm.totalBets {
		if total > 0 && !folded[i] {
			levelSet[total] = true
		}
	}
	levels := make([]int64, 0, len(levelSet))
	for lvl := range levelSet {
		levels = append(levels, lvl)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })

	pm.pots = pm.pots[:0]
	var prev int64
	for _, lvl := range levels {
		pot := Pot{Eligible: make([]bool, len(pm.totalBets)), Cap: lvl}
		for i, total := range pm.totalBets {
			if total <= prev {
				continue
			}
			slice := total - prev
			if slice > lvl-prev {
				slice = lvl - prev
			}
			pot.Amount += slice
			if !folded[i] && total >= lvl {
				pot.Eligible[i] = true
			}
		}
		if pot.Amount > 0 {
			pm.pots = append(pm.pots, pot)
		}
		prev = lvl
	}

	// Chips above the highest live level can only come from folded seats
	// whose total exceeds it. They join the last pot.
	var overage int64
	for _, total := range pm.totalBets {
		if total > prev {
			overage += total - prev
		}
	}
	if overage > 0 {
		if len(pm.pots) == 0 {
			pm.pots = append(pm.pots, Pot{Eligible: make([]bool, len(pm.totalBets))})
		}
		pm.pots[len(pm.pots)-1].Amount += overage
	}

	// Merge adjacent pots with identical eligibility so capped levels from
	// earlier streets do not fragment the main pot.
	merged := pm.pots[:0]
	for _, pot := range pm.pots {
		if n := len(merged); n > 0 && sameEligibility(merged[n-1].Eligible, pot.Eligible) {
			merged[n-1].Amount += pot.Amount
			merged[n-1].Cap = pot.Cap
			continue
		}
		merged = append(merged, pot)
	}
	pm.pots = merged
}

func sameEligibility(a, b []bool) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Distribute awards every pot to the best eligible hand. Seats must carry
// their showdown Value; seats that folded or were never dealt in are
// skipped. Ties split the pot with any remainder going to the winner
// closest to the dealer's left.
func (pm *PotManager) Distribute(seats []*Seat, dealer int) []PotResult {
	results := make([]PotResult, 0, len(pm.pots))
	for idx, pot := range pm.pots {
		winners := pm.potWinners(pot, seats, dealer)
		if len(winners) == 0 {
			// No live hands remain for this pot. This cannot happen after
			// buildPots ran with correct fold flags.
			pm.log.Errorf("pot %d of %d chips has no eligible winner", idx, pot.Amount)
			continue
		}
		share := pot.Amount / int64(len(winners))
		remainder := pot.Amount % int64(len(winners))
		for wi, w := range winners {
			amt := share
			if wi == 0 {
				amt += remainder
			}
			seats[w].Stack += amt
		}
		results = append(results, PotResult{
			Index:      idx,
			Amount:     pot.Amount,
			Winners:    winners,
			AmountEach: share,
			Remainder:  remainder,
		})
		pm.log.Debugf("Pot %d (%d chips) won by seats %v", idx, pot.Amount, winners)
	}
	return results
}

// potWinners finds the eligible seats holding the best hand, ordered
// clockwise from the dealer's left.
func (pm *PotManager) potWinners(pot Pot, seats []*Seat, dealer int) []int {
	n := len(seats)
	var winners []int
	var best HandValue
	for off := 1; off <= n; off++ {
		i := (dealer + off) % n
		s := seats[i]
		if !pot.Eligible[i] || !s.InHand() || s.Value == nil {
			continue
		}
		switch {
		case len(winners) == 0 || CompareHands(*s.Value, best) > 0:
			winners = winners[:0]
			winners = append(winners, i)
			best = *s.Value
		case CompareHands(*s.Value, best) == 0:
			winners = append(winners, i)
		}
	}
	return winners
}

// AwardAll gives the entire pot to a single seat. Used when a hand ends
// uncontested before showdown.
func (pm *PotManager) AwardAll(seats []*Seat, winner int) []PotResult {
	folded := make([]bool, len(seats))
	for i := range seats {
		folded[i] = i != winner
	}
	pm.buildPots(folded)
	results := make([]PotResult, 0, len(pm.pots))
	for idx, pot := range pm.pots {
		seats[winner].Stack += pot.Amount
		results = append(results, PotResult{
			Index:      idx,
			Amount:     pot.Amount,
			Winners:    []int{winner},
			AmountEach: pot.Amount,
		})
	}
	return results
}
