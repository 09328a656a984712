package poker

// SeatState tracks what a seat is doing in the current hand.
type SeatState int

const (
	// SeatEmpty means no player occupies the seat.
	SeatEmpty SeatState = iota
	// SeatSittingOut means a player occupies the seat but is not dealt in.
	SeatSittingOut
	// SeatActive means the seat is dealt in and can still act.
	SeatActive
	// SeatFolded means the seat surrendered its hand.
	SeatFolded
	// SeatAllIn means the seat has committed its entire stack and takes no
	// further actions.
	SeatAllIn
)

func (s SeatState) String() string {
	switch s {
	case SeatEmpty:
		return "EMPTY"
	case SeatSittingOut:
		return "SITTING_OUT"
	case SeatActive:
		return "ACTIVE"
	case SeatFolded:
		return "FOLDED"
	case SeatAllIn:
		return "ALL_IN"
	default:
		return "UNKNOWN"
	}
}

// HoleCard is a card dealt to a seat. FaceUp cards are public, as in stud
// games; hold'em and draw games deal everything face down.
type HoleCard struct {
	Card   Card `json:"card"`
	FaceUp bool `json:"face_up,omitempty"`
}

// Seat is one position at the table. Seats are addressed by index and the
// hand engine works on a fixed slice of them, so relationships between
// players are always seat numbers rather than pointers.
type Seat struct {
	Num      int
	Player   string
	Name     string
	Stack    int64
	State    SeatState
	Hole     []HoleCard
	Bet      int64
	TotalBet int64
	Value    *HandValue

	stackAtHandStart int64
}

// Occupied reports whether a player is in the seat.
func (s *Seat) Occupied() bool {
	return s.State != SeatEmpty
}

// InHand reports whether the seat still holds live cards.
func (s *Seat) InHand() bool {
	return s.State == SeatActive || s.State == SeatAllIn
}

// CanAct reports whether the seat can take a betting action.
func (s *Seat) CanAct() bool {
	return s.State == SeatActive
}

// HoleCards returns the seat's cards without exposure flags.
func (s *Seat) HoleCards() []Card {
	cards := make([]Card, len(s.Hole))
	for i, hc := range s.Hole {
		cards[i] = hc.Card
	}
	return cards
}

// resetForHand prepares the seat for a new hand. Empty and sitting-out
// seats keep their state.
func (s *Seat) resetForHand() {
	s.Hole = nil
	s.Bet = 0
	s.TotalBet = 0
	s.Value = nil
	s.stackAtHandStart = s.Stack
	if s.State == SeatActive || s.State == SeatFolded || s.State == SeatAllIn {
		s.State = SeatActive
	}
}

// pay moves up to amount chips from the stack into the seat's current
// street bet and returns what was actually paid. Paying the whole stack
// puts the seat all in.
func (s *Seat) pay(amount int64) int64 {
	paid := s.payDead(amount)
	s.Bet += paid
	return paid
}

// payDead commits chips that do not count toward the street bet, such as
// antes.
func (s *Seat) payDead(amount int64) int64 {
	if amount > s.Stack {
		amount = s.Stack
	}
	s.Stack -= amount
	s.TotalBet += amount
	if s.Stack == 0 && s.State == SeatActive {
		s.State = SeatAllIn
	}
	return amount
}
