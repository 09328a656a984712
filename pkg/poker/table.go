package poker

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/decred/slog"

	"github.com/cardroom/engine/pkg/statemachine"
)

// TableStateFn represents a table state function following Rob Pike's pattern
type TableStateFn = statemachine.StateFn[Table]

// TableConfig holds configuration for a new poker table
type TableConfig struct {
	ID         string
	Log        slog.Logger
	Variant    Variant
	Stakes     Stakes
	MaxSeats   int
	MinPlayers int
	Rng        *rand.Rand
	Sink       Sink
}

// Table manages seats across hands and delegates hand logic to Hand. It
// is the caller-facing boundary, so unlike Hand it is safe for
// concurrent use.
type Table struct {
	log    slog.Logger
	config TableConfig
	mu     sync.RWMutex

	seats     []*Seat
	dealer    int
	handNum   int
	hand      *Hand
	sm        *statemachine.StateMachine[Table]
	createdAt time.Time
}

// NewTable creates an empty table.
func NewTable(cfg TableConfig) (*Table, error) {
	if cfg.MaxSeats <= 0 {
		return nil, fmt.Errorf("table needs at least one seat")
	}
	if cfg.MinPlayers < 2 {
		cfg.MinPlayers = 2
	}
	if cfg.Rng == nil {
		return nil, fmt.Errorf("table requires an rng")
	}
	log := cfg.Log
	if log == nil {
		log = slog.Disabled
	}
	t := &Table{
		log:       log,
		config:    cfg,
		seats:     make([]*Seat, cfg.MaxSeats),
		dealer:    -1,
		createdAt: time.Now(),
	}
	for i := range t.seats {
		t.seats[i] = &Seat{Num: i}
	}
	t.sm = statemachine.NewStateMachine(t, tableStateWaiting)
	return t, nil
}

// tableStateWaiting waits for enough funded players to start a hand.
func tableStateWaiting(t *Table) TableStateFn {
	if t.fundedSeats() >= t.config.MinPlayers {
		return tableStateReady
	}
	return tableStateWaiting
}

// tableStateReady can deal a new hand.
func tableStateReady(t *Table) TableStateFn {
	if t.hand != nil && t.hand.Phase() != PhaseComplete {
		return tableStateHandActive
	}
	if t.fundedSeats() < t.config.MinPlayers {
		return tableStateWaiting
	}
	return tableStateReady
}

// tableStateHandActive runs until the current hand completes.
func tableStateHandActive(t *Table) TableStateFn {
	if t.hand == nil || t.hand.Phase() == PhaseComplete {
		return tableStateReady
	}
	return tableStateHandActive
}

// CanStartHand reports whether the table is in a state to deal.
func (t *Table) CanStartHand() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sm.Step()
	return t.readyLocked()
}

func (t *Table) readyLocked() bool {
	if t.hand != nil && t.hand.Phase() != PhaseComplete {
		return false
	}
	return t.fundedSeats() >= t.config.MinPlayers
}

func (t *Table) fundedSeats() int {
	count := 0
	for _, s := range t.seats {
		if s.Occupied() && s.Stack > 0 {
			count++
		}
	}
	return count
}

// Sit places a player in the first empty seat with buyIn chips. The
// player is dealt in from the next hand.
func (t *Table) Sit(playerID, name string, buyIn int64) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if buyIn <= 0 {
		return -1, fmt.Errorf("%w: buy-in must be positive", ErrInsufficientFund)
	}
	for _, s := range t.seats {
		if s.Occupied() && s.Player == playerID {
			return -1, fmt.Errorf("player %s already seated at seat %d", playerID, s.Num)
		}
	}
	for _, s := range t.seats {
		if !s.Occupied() {
			s.Player = playerID
			s.Name = name
			s.Stack = buyIn
			s.State = SeatSittingOut
			t.log.Infof("Player %s sits at seat %d with %d chips", playerID, s.Num, buyIn)
			t.sm.Step()
			return s.Num, nil
		}
	}
	return -1, fmt.Errorf("table %s is full", t.config.ID)
}

// Leave removes the player from the seat and returns the chips they take
// off the table. A seat in a live hand must fold before leaving.
func (t *Table) Leave(seatNum int) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if seatNum < 0 || seatNum >= len(t.seats) {
		return 0, fmt.Errorf("seat %d out of range", seatNum)
	}
	s := t.seats[seatNum]
	if !s.Occupied() {
		return 0, fmt.Errorf("seat %d is empty", seatNum)
	}
	if t.hand != nil && t.hand.Phase() != PhaseComplete && s.InHand() {
		return 0, fmt.Errorf("%w: seat %d is in a hand", ErrIllegalAction, seatNum)
	}
	chips := s.Stack
	*s = Seat{Num: seatNum}
	t.log.Infof("Seat %d leaves with %d chips", seatNum, chips)
	t.sm.Step()
	return chips, nil
}

// StartHand deals the next hand. Every occupied seat with chips is dealt
// in; the button moves to the next funded seat.
func (t *Table) StartHand() (*Hand, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.hand != nil && t.hand.Phase() != PhaseComplete {
		return nil, fmt.Errorf("%w: a hand is already running", ErrIllegalAction)
	}
	for _, s := range t.seats {
		if !s.Occupied() {
			continue
		}
		if s.Stack > 0 {
			s.State = SeatActive
		} else {
			s.State = SeatSittingOut
			t.log.Debugf("Seat %d sits out busted", s.Num)
		}
	}
	if t.fundedSeats() < t.config.MinPlayers {
		return nil, fmt.Errorf("%w: need %d players", ErrNotEnoughPlayers, t.config.MinPlayers)
	}

	t.dealer = t.nextFunded(t.dealer)
	t.handNum++
	hand, err := NewHand(HandConfig{
		HandID:  fmt.Sprintf("%s-%d", t.config.ID, t.handNum),
		Variant: t.config.Variant,
		Stakes:  t.config.Stakes,
		Dealer:  t.dealer,
		Rng:     t.config.Rng,
		Log:     t.log,
		Sink:    t.config.Sink,
	}, t.seats)
	if err != nil {
		return nil, err
	}
	if err := hand.Begin(); err != nil {
		return nil, err
	}
	t.hand = hand
	t.sm.Dispatch(tableStateHandActive)
	t.log.Infof("Hand %s started, dealer seat %d", fmt.Sprintf("%s-%d", t.config.ID, t.handNum), t.dealer)
	return hand, nil
}

// nextFunded returns the next occupied seat with chips after from.
func (t *Table) nextFunded(from int) int {
	n := len(t.seats)
	for off := 1; off <= n; off++ {
		i := ((from+off)%n + n) % n
		if t.seats[i].Occupied() && t.seats[i].Stack > 0 {
			return i
		}
	}
	return 0
}

// Apply forwards an action to the running hand.
func (t *Table) Apply(act Action) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.hand == nil {
		return fmt.Errorf("%w: no hand running", ErrHandComplete)
	}
	err := t.hand.Apply(act)
	if t.hand.Phase() == PhaseComplete {
		t.sm.Step()
	}
	return err
}

// CurrentHand returns the running or most recently completed hand.
func (t *Table) CurrentHand() *Hand {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.hand
}

// HandNum returns how many hands have been dealt.
func (t *Table) HandNum() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.handNum
}

// TableSnapshot is a deep copy of the table's state.
type TableSnapshot struct {
	ID      string
	HandNum int
	Dealer  int
	Seats   []SeatSnapshot
	Hand    *HandSnapshot
}

// Snapshot returns a deep copy of the table and any running hand.
func (t *Table) Snapshot() TableSnapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	snap := TableSnapshot{
		ID:      t.config.ID,
		HandNum: t.handNum,
		Dealer:  t.dealer,
	}
	for _, s := range t.seats {
		ss := SeatSnapshot{
			Num:      s.Num,
			Player:   s.Player,
			Name:     s.Name,
			Stack:    s.Stack,
			State:    s.State,
			Hole:     append([]HoleCard{}, s.Hole...),
			Bet:      s.Bet,
			TotalBet: s.TotalBet,
		}
		snap.Seats = append(snap.Seats, ss)
	}
	if t.hand != nil {
		hs := t.hand.Snapshot()
		snap.Hand = &hs
	}
	return snap
}
