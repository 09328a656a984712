package poker

import (
	"fmt"
	"math/bits"
	"math/rand"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/decred/slog"
)

// Phase is the hand state machine's current stage.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseBlinds
	PhaseDealing
	PhaseBetting
	PhaseDrawing
	PhaseShowdown
	PhaseSettling
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "IDLE"
	case PhaseBlinds:
		return "BLINDS"
	case PhaseDealing:
		return "DEALING"
	case PhaseBetting:
		return "BETTING"
	case PhaseDrawing:
		return "DRAWING"
	case PhaseShowdown:
		return "SHOWDOWN"
	case PhaseSettling:
		return "SETTLING"
	case PhaseComplete:
		return "COMPLETE"
	default:
		return "UNKNOWN"
	}
}

// Stakes are the forced bets for a hand.
type Stakes struct {
	SmallBlind int64 `json:"sb"`
	BigBlind   int64 `json:"bb"`
	Ante       int64 `json:"ante,omitempty"`
	BringIn    int64 `json:"bring_in,omitempty"`
}

// HandConfig parameterizes a single hand. Rng must be seeded once per
// hand for reproducible replay. Deck, when non-nil, overrides the deck
// the hand would otherwise build and shuffle, which deterministic tests
// and replays use.
type HandConfig struct {
	HandID  string
	Variant Variant
	Stakes  Stakes
	Dealer  int
	Rng     *rand.Rand
	Log     slog.Logger
	Sink    Sink
	Deck    *Deck
}

// Hand runs one hand of poker over a fixed seat slice. It is
// single-threaded: the caller applies one action at a time and the hand
// never blocks. Seats are shared with the caller (a Table typically) and
// mutated in place.
type Hand struct {
	cfg   HandConfig
	log   slog.Logger
	sink  Sink
	seats []*Seat
	deck  *Deck
	pm    *PotManager

	phase     Phase
	streetIdx int
	community []Card
	round     *bettingRound
	sbSeat    int
	bbSeat    int

	// draw round bookkeeping
	drawer    int
	drawQueue []int
	muck      []Card

	tableTotal int64
	seq        uint64
	now        func() time.Time
	outcome    string
	results    []PotResult
	actions    []HistoryAction
}

// NewHand prepares a hand over seats with the dealer button at
// cfg.Dealer. At least two occupied seats with chips are required.
func NewHand(cfg HandConfig, seats []*Seat) (*Hand, error) {
	if cfg.Rng == nil && cfg.Deck == nil {
		return nil, fmt.Errorf("hand requires an rng or an explicit deck")
	}
	log := cfg.Log
	if log == nil {
		log = slog.Disabled
	}
	sink := cfg.Sink
	if sink == nil {
		sink = MultiSink()
	}

	funded := 0
	for _, s := range seats {
		if s.State == SeatActive && s.Stack <= 0 {
			s.State = SeatSittingOut
		}
		if s.State == SeatActive || s.State == SeatFolded || s.State == SeatAllIn {
			s.resetForHand()
			funded++
		} else {
			s.resetForHand()
		}
	}
	if funded < 2 {
		return nil, fmt.Errorf("%w: %d seats can play", ErrNotEnoughPlayers, funded)
	}
	if cfg.Dealer < 0 || cfg.Dealer >= len(seats) {
		return nil, fmt.Errorf("dealer seat %d out of range", cfg.Dealer)
	}

	deck := cfg.Deck
	if deck == nil {
		deck = NewShortDeck(cfg.Rng, cfg.Variant.MinRank)
	}

	h := &Hand{
		cfg:    cfg,
		log:    log,
		sink:   sink,
		seats:  seats,
		deck:   deck,
		pm:     NewPotManager(len(seats), log),
		phase:  PhaseIdle,
		sbSeat: -1,
		bbSeat: -1,
		drawer: -1,
		now:    time.Now,
	}
	for _, s := range seats {
		h.tableTotal += s.Stack
	}
	return h, nil
}

// Phase returns the current phase.
func (h *Hand) Phase() Phase { return h.phase }

// Community returns a copy of the board.
func (h *Hand) Community() []Card {
	return append([]Card{}, h.community...)
}

// Results returns the pot results once the hand is COMPLETE.
func (h *Hand) Results() []PotResult { return h.results }

// Outcome is "showdown", "uncontested" or "voided" once COMPLETE.
func (h *Hand) Outcome() string { return h.outcome }

// ToAct returns the seat whose action the hand is waiting for, or -1.
func (h *Hand) ToAct() int {
	switch h.phase {
	case PhaseBetting:
		return h.round.toAct
	case PhaseDrawing:
		return h.drawer
	default:
		return -1
	}
}

// LegalActions describes what the seat on turn may do. During a draw
// round the only legal kind is DRAW.
func (h *Hand) LegalActions() LegalActions {
	switch h.phase {
	case PhaseBetting:
		return h.round.legalActions(h.round.toAct)
	case PhaseDrawing:
		return LegalActions{Kinds: []ActionKind{Draw}}
	default:
		return LegalActions{}
	}
}

// Begin posts blinds and antes, deals hole cards and opens the first
// street. The hand must be IDLE.
func (h *Hand) Begin() error {
	if h.phase != PhaseIdle {
		return fmt.Errorf("%w: hand already started", ErrHandComplete)
	}

	h.phase = PhaseBlinds
	states := make([]string, len(h.seats))
	for i, s := range h.seats {
		states[i] = s.State.String()
	}
	h.emit(EventHandStart, HandStartPayload{
		HandID:     h.cfg.HandID,
		Variant:    h.cfg.Variant.Name,
		DealerSeat: h.cfg.Dealer,
		SeatStates: states,
	})

	h.postForcedBets()
	h.phase = PhaseDealing
	if err := h.dealHoleCards(); err != nil {
		return h.fault(err)
	}
	h.streetIdx = 0
	if err := h.openStreet(); err != nil {
		return h.fault(err)
	}
	return h.checkConservation()
}

// postForcedBets collects antes and posts the blinds. In heads-up play
// the dealer posts the small blind. Stud variants post antes only; the
// bring-in is charged after the deal.
func (h *Hand) postForcedBets() {
	var antes []int64
	if h.cfg.Stakes.Ante > 0 {
		antes = make([]int64, len(h.seats))
		for i, s := range h.seats {
			if s.InHand() {
				// Antes are dead money, not street bets.
				antes[i] = s.payDead(h.cfg.Stakes.Ante)
				h.pm.AddBet(i, antes[i])
			}
		}
	}

	payload := BlindsPostedPayload{SBSeat: -1, BBSeat: -1, Antes: antes}
	if !h.cfg.Variant.UseBringIn && h.cfg.Stakes.BigBlind > 0 {
		if h.playersInHand() == 2 {
			// Heads up the dealer posts the small blind.
			if h.seats[h.cfg.Dealer].InHand() {
				h.sbSeat = h.cfg.Dealer
			} else {
				h.sbSeat = h.nextInHand(h.cfg.Dealer)
			}
		} else {
			h.sbSeat = h.nextInHand(h.cfg.Dealer)
		}
		h.bbSeat = h.nextInHand(h.sbSeat)

		sbPaid := h.seats[h.sbSeat].pay(h.cfg.Stakes.SmallBlind)
		h.pm.AddBet(h.sbSeat, sbPaid)
		bbPaid := h.seats[h.bbSeat].pay(h.cfg.Stakes.BigBlind)
		h.pm.AddBet(h.bbSeat, bbPaid)

		payload.SBSeat, payload.SBAmount = h.sbSeat, sbPaid
		payload.BBSeat, payload.BBAmount = h.bbSeat, bbPaid
		h.log.Debugf("Blinds posted: seat %d posts %d, seat %d posts %d",
			h.sbSeat, sbPaid, h.bbSeat, bbPaid)
	}
	h.emit(EventBlindsPosted, payload)
}

// dealHoleCards deals the variant's initial hole cards one at a time
// around the table starting left of the dealer.
func (h *Hand) dealHoleCards() error {
	for round := 0; round < h.cfg.Variant.HoleCards; round++ {
		for off := 1; off <= len(h.seats); off++ {
			i := (h.cfg.Dealer + off) % len(h.seats)
			s := h.seats[i]
			if !s.InHand() {
				continue
			}
			c, err := h.deck.Deal()
			if err != nil {
				return err
			}
			faceUp := false
			if fu := h.cfg.Variant.FaceUp; round < len(fu) {
				faceUp = fu[round]
			}
			s.Hole = append(s.Hole, HoleCard{Card: c, FaceUp: faceUp})
		}
	}
	for i, s := range h.seats {
		if !s.InHand() {
			continue
		}
		h.emit(EventHoleDealt, HoleDealtPayload{
			Seat:      i,
			CardCount: len(s.Hole),
			Shown:     h.shownCards(s),
		})
	}
	return nil
}

func (h *Hand) shownCards(s *Seat) []string {
	var shown []string
	for _, hc := range s.Hole {
		if hc.FaceUp {
			shown = append(shown, hc.Card.String())
		}
	}
	return shown
}

// openStreet deals the current street's cards and opens its draw or
// betting round. Streets where no seat can act are closed immediately so
// all-in hands run out to showdown.
func (h *Hand) openStreet() error {
	street := h.cfg.Variant.Streets[h.streetIdx]

	if street.DealCommunity > 0 {
		h.phase = PhaseDealing
		if street.Burn {
			if err := h.deck.Burn(); err != nil {
				return err
			}
		}
		dealt := make([]Card, 0, street.DealCommunity)
		for i := 0; i < street.DealCommunity; i++ {
			c, err := h.deck.Deal()
			if err != nil {
				return err
			}
			dealt = append(dealt, c)
		}
		h.community = append(h.community, dealt...)
		h.emit(EventCommunity, CommunityDealtPayload{
			Street: street.Name,
			Cards:  cardStrings(dealt),
		})
	}

	if street.DealHole > 0 {
		h.phase = PhaseDealing
		base := len(h.firstInHand().Hole)
		for off := 1; off <= len(h.seats); off++ {
			i := (h.cfg.Dealer + off) % len(h.seats)
			s := h.seats[i]
			if !s.InHand() {
				continue
			}
			for k := 0; k < street.DealHole; k++ {
				c, err := h.deck.Deal()
				if err != nil {
					return err
				}
				faceUp := false
				if fu := h.cfg.Variant.FaceUp; base+k < len(fu) {
					faceUp = fu[base+k]
				}
				s.Hole = append(s.Hole, HoleCard{Card: c, FaceUp: faceUp})
			}
			h.emit(EventHoleDealt, HoleDealtPayload{
				Seat:      i,
				CardCount: len(s.Hole),
				Shown:     h.shownCards(s),
			})
		}
	}

	if street.Draw {
		h.drawQueue = h.drawQueue[:0]
		for off := 1; off <= len(h.seats); off++ {
			i := (h.cfg.Dealer + off) % len(h.seats)
			if h.seats[i].CanAct() {
				h.drawQueue = append(h.drawQueue, i)
			}
		}
		if len(h.drawQueue) > 0 {
			h.drawer = h.drawQueue[0]
			h.drawQueue = h.drawQueue[1:]
			h.phase = PhaseDrawing
			return nil
		}
		// Everyone is all in; hands stand pat.
	}
	return h.openBetting()
}

// openBetting starts the street's betting round, or closes the street
// right away when one or zero seats can still act and no bet is
// outstanding.
func (h *Hand) openBetting() error {
	street := h.cfg.Variant.Streets[h.streetIdx]
	fixedBet := h.cfg.Variant.fixedBetFor(h.streetIdx, h.cfg.Stakes.BigBlind)

	var openBet, minRaise int64
	minRaise = h.cfg.Stakes.BigBlind
	if h.cfg.Variant.Limit == FixedLimit {
		minRaise = fixedBet
	}

	first := -1
	if h.streetIdx == 0 {
		if h.cfg.Variant.UseBringIn {
			first = h.postBringIn()
			openBet = h.highestStreetBet()
		} else if h.bbSeat >= 0 {
			openBet = h.highestStreetBet()
			if h.playersInHand() == 2 {
				// Heads up the small blind (dealer) opens preflop.
				first = h.sbSeat
				if !h.seats[first].CanAct() {
					first = h.nextActor(first)
				}
			} else {
				first = h.nextActor(h.bbSeat)
			}
		} else {
			first = h.nextActor(h.cfg.Dealer)
		}
	} else {
		first = h.nextActor(h.cfg.Dealer)
	}

	actors := 0
	for _, s := range h.seats {
		if s.CanAct() {
			actors++
		}
	}
	if first < 0 || actors == 0 || (actors == 1 && h.seats[first].Bet >= openBet) {
		h.log.Debugf("No betting possible on %s, closing street", street.Name)
		return h.closeStreet()
	}

	h.phase = PhaseBetting
	h.round = newBettingRound(h.seats, h.pm, h.cfg.Variant.Limit, fixedBet, openBet, minRaise, first)
	return nil
}

// postBringIn charges the forced bring-in to the seat showing the worst
// door card and seats the action left of it.
func (h *Hand) postBringIn() int {
	worst := -1
	for i, s := range h.seats {
		if !s.InHand() {
			continue
		}
		if worst < 0 || doorCardLess(s, h.seats[worst]) {
			worst = i
		}
	}
	if worst < 0 {
		return -1
	}
	amount := h.cfg.Stakes.BringIn
	if amount <= 0 {
		amount = h.cfg.Stakes.BigBlind
	}
	paid := h.seats[worst].pay(amount)
	h.pm.AddBet(worst, paid)
	h.log.Debugf("Seat %d brings in for %d", worst, paid)
	h.emit(EventAction, ActionPayload{
		Seat:   worst,
		Kind:   Bet.String(),
		Amount: paid,
		Street: h.cfg.Variant.Streets[0].Name,
	})
	return h.nextActor(worst)
}

// doorCardLess orders seats by their lowest exposed card, suit as the
// final tiebreak so the comparison is total.
func doorCardLess(a, b *Seat) bool {
	ac, bc := lowestUpCard(a), lowestUpCard(b)
	if ac.rank != bc.rank {
		return ac.rank < bc.rank
	}
	return ac.suit < bc.suit
}

func lowestUpCard(s *Seat) Card {
	var low Card
	for _, hc := range s.Hole {
		if !hc.FaceUp {
			continue
		}
		if !low.Valid() || hc.Card.rank < low.rank ||
			(hc.Card.rank == low.rank && hc.Card.suit < low.suit) {
			low = hc.Card
		}
	}
	return low
}

// Apply submits an action for a seat. Only the seat on turn is accepted.
// Protocol violations leave the hand untouched; conservation faults void
// it.
func (h *Hand) Apply(act Action) error {
	switch h.phase {
	case PhaseBetting:
		if act.Seat != h.round.toAct {
			return fmt.Errorf("%w: seat %d acted, seat %d to act", ErrNotYourTurn, act.Seat, h.round.toAct)
		}
		if act.Kind == Draw {
			return fmt.Errorf("%w: no draw during betting", ErrIllegalAction)
		}
		return h.applyBetting(act)
	case PhaseDrawing:
		if act.Seat != h.drawer {
			return fmt.Errorf("%w: seat %d acted, seat %d to draw", ErrNotYourTurn, act.Seat, h.drawer)
		}
		if act.Kind != Draw {
			return fmt.Errorf("%w: draw round accepts only DRAW", ErrIllegalAction)
		}
		return h.applyDraw(act)
	case PhaseComplete:
		return fmt.Errorf("%w: hand is over", ErrHandComplete)
	default:
		return fmt.Errorf("%w: no action expected in %s", ErrIllegalAction, h.phase)
	}
}

func (h *Hand) applyBetting(act Action) error {
	street := h.cfg.Variant.Streets[h.streetIdx]
	before := h.seats[act.Seat].TotalBet
	if err := h.round.apply(act); err != nil {
		return err
	}
	paid := h.seats[act.Seat].TotalBet - before

	amount := act.Amount
	switch act.Kind {
	case Fold, Check:
		amount = 0
	case Call, AllIn:
		amount = paid
	}
	h.recordAction(act.Seat, act.Kind, amount, 0)
	h.emit(EventAction, ActionPayload{
		Seat:   act.Seat,
		Kind:   act.Kind.String(),
		Amount: amount,
		Street: street.Name,
	})
	h.log.Debugf("Seat %d %s %d on %s", act.Seat, act.Kind, amount, street.Name)

	if h.playersInHand() == 1 {
		if err := h.settleUncontested(); err != nil {
			return err
		}
		return h.checkConservation()
	}
	if h.round.done() {
		if err := h.closeStreet(); err != nil {
			return err
		}
		return h.checkConservation()
	}
	h.round.advance()
	return h.checkConservation()
}

// applyDraw exchanges the drawer's masked cards for replacements. The
// discards of earlier drawers are reshuffled in only if the deck runs
// dry mid-round.
func (h *Hand) applyDraw(act Action) error {
	s := h.seats[act.Seat]
	if act.DiscardMask >= 1<<uint(len(s.Hole)) {
		return fmt.Errorf("%w: discard mask %#x exceeds %d hole cards", ErrIllegalAction, act.DiscardMask, len(s.Hole))
	}

	discardCount := bits.OnesCount8(act.DiscardMask)
	replacements := make([]Card, 0, discardCount)
	for i := 0; i < discardCount; i++ {
		c, err := h.deck.Deal()
		if err != nil {
			if len(h.muck) == 0 {
				return h.fault(fmt.Errorf("deck exhausted with no discards to recycle: %w", err))
			}
			h.deck.Return(h.muck...)
			h.muck = nil
			c, err = h.deck.Deal()
			if err != nil {
				return h.fault(err)
			}
		}
		replacements = append(replacements, c)
	}

	ri := 0
	for i := range s.Hole {
		if act.DiscardMask&(1<<uint(i)) == 0 {
			continue
		}
		h.muck = append(h.muck, s.Hole[i].Card)
		s.Hole[i].Card = replacements[ri]
		ri++
	}

	h.recordAction(act.Seat, Draw, 0, act.DiscardMask)
	h.emit(EventDraw, DrawPayload{Seat: act.Seat, DiscardCount: discardCount})
	h.log.Debugf("Seat %d draws %d", act.Seat, discardCount)

	if len(h.drawQueue) > 0 {
		h.drawer = h.drawQueue[0]
		h.drawQueue = h.drawQueue[1:]
	} else {
		h.drawer = -1
		if err := h.openBetting(); err != nil {
			return err
		}
	}
	return h.checkConservation()
}

// closeStreet folds street bets into pots and moves on: the next street,
// or showdown after the last one.
func (h *Hand) closeStreet() error {
	if h.streetIdx+1 >= len(h.cfg.Variant.Streets) {
		// An uncalled excess can only exist once betting is finished for
		// the hand. Refund it before the final partition.
		h.pm.ReturnUncalled(h.seats)
	}
	h.pm.CloseStreet(h.foldedMask())
	for _, s := range h.seats {
		s.Bet = 0
	}
	h.round = nil
	h.muck = nil

	if h.streetIdx+1 >= len(h.cfg.Variant.Streets) {
		return h.showdown()
	}
	h.streetIdx++
	return h.openStreet()
}

// showdown evaluates every live hand and settles the pots.
func (h *Hand) showdown() error {
	h.phase = PhaseShowdown
	for i, s := range h.seats {
		if !s.InHand() {
			continue
		}
		cards := append(s.HoleCards(), h.community...)
		hv, err := Evaluate(cards, h.cfg.Variant.Scheme)
		if err != nil {
			return h.fault(fmt.Errorf("evaluating seat %d: %w", i, err))
		}
		s.Value = &hv
		h.emit(EventShowdown, ShowdownPayload{
			Seat:  i,
			Cards: cardStrings(cards),
			Rank:  hv.Description,
		})
		h.log.Debugf("Seat %d shows %s (%s)", i, cardStrings(s.HoleCards()), hv.Description)
	}

	h.phase = PhaseSettling
	h.results = h.pm.Distribute(h.seats, h.cfg.Dealer)
	for _, r := range h.results {
		h.emit(EventPotAwarded, PotAwardedPayload{
			PotIndex:   r.Index,
			Winners:    r.Winners,
			AmountEach: r.AmountEach,
			Amount:     r.Amount,
		})
	}
	h.finish("showdown")
	return nil
}

// settleUncontested awards everything to the last live seat.
func (h *Hand) settleUncontested() error {
	winner := -1
	for i, s := range h.seats {
		if s.InHand() {
			winner = i
			break
		}
	}
	if winner < 0 {
		return h.fault(fmt.Errorf("no live seat at uncontested settlement"))
	}
	// No uncalled refund here: a seat can only fold while at or below the
	// winner's commitment, so the whole pot belongs to the winner.
	h.phase = PhaseSettling
	h.results = h.pm.AwardAll(h.seats, winner)
	for _, r := range h.results {
		h.emit(EventPotAwarded, PotAwardedPayload{
			PotIndex:   r.Index,
			Winners:    r.Winners,
			AmountEach: r.AmountEach,
			Amount:     r.Amount,
		})
	}
	h.log.Debugf("Seat %d wins uncontested", winner)
	h.finish("uncontested")
	return nil
}

func (h *Hand) finish(outcome string) {
	for _, s := range h.seats {
		s.Bet = 0
	}
	h.outcome = outcome
	h.emit(EventHandEnd, HandEndPayload{Outcome: outcome})
	h.phase = PhaseComplete
}

// Abort voids the hand in any non-terminal phase, returning every seat's
// commitment to its stack.
func (h *Hand) Abort(reason string) error {
	if h.phase == PhaseComplete {
		return fmt.Errorf("%w: cannot abort", ErrHandComplete)
	}
	h.log.Warnf("Hand %s aborted: %s", h.cfg.HandID, reason)
	h.void()
	return nil
}

// void returns all commitments and completes the hand with a voided
// outcome.
func (h *Hand) void() {
	for _, s := range h.seats {
		s.Stack += s.TotalBet
		s.TotalBet = 0
		s.Bet = 0
	}
	h.pm = NewPotManager(len(h.seats), h.log)
	h.round = nil
	h.finish("voided")
}

// fault voids the hand after an unrecoverable internal error.
func (h *Hand) fault(err error) error {
	h.log.Errorf("Hand %s faulted: %v", h.cfg.HandID, err)
	h.void()
	return ErrFault(err.Error())
}

// checkConservation verifies that stacks plus committed chips still sum
// to the table total. A violation dumps the state and voids the hand.
func (h *Hand) checkConservation() error {
	if h.phase == PhaseComplete {
		return nil
	}
	var sum int64
	for _, s := range h.seats {
		sum += s.Stack
	}
	sum += h.pm.TotalPot()
	if sum == h.tableTotal {
		return nil
	}
	h.log.Criticalf("Chip conservation violated: have %d, want %d\n%s",
		sum, h.tableTotal, spew.Sdump(h.Snapshot()))
	return h.fault(fmt.Errorf("chip conservation violated: have %d, want %d", sum, h.tableTotal))
}

func (h *Hand) foldedMask() []bool {
	folded := make([]bool, len(h.seats))
	for i, s := range h.seats {
		folded[i] = !s.InHand()
	}
	return folded
}

func (h *Hand) playersInHand() int {
	count := 0
	for _, s := range h.seats {
		if s.InHand() {
			count++
		}
	}
	return count
}

// nextInHand returns the first live seat strictly after from.
func (h *Hand) nextInHand(from int) int {
	n := len(h.seats)
	for off := 1; off <= n; off++ {
		i := ((from+off)%n + n) % n
		if h.seats[i].InHand() {
			return i
		}
	}
	return -1
}

// nextActor returns the first seat strictly after from that can act.
func (h *Hand) nextActor(from int) int {
	n := len(h.seats)
	for off := 1; off <= n; off++ {
		i := ((from+off)%n + n) % n
		if h.seats[i].CanAct() {
			return i
		}
	}
	return -1
}

func (h *Hand) firstInHand() *Seat {
	for _, s := range h.seats {
		if s.InHand() {
			return s
		}
	}
	return h.seats[0]
}

func (h *Hand) highestStreetBet() int64 {
	var hi int64
	for _, s := range h.seats {
		if s.Bet > hi {
			hi = s.Bet
		}
	}
	return hi
}

func (h *Hand) recordAction(seat int, kind ActionKind, amount int64, mask uint8) {
	h.actions = append(h.actions, HistoryAction{
		Seat:        seat,
		Kind:        kind.String(),
		Amount:      amount,
		Street:      h.cfg.Variant.Streets[h.streetIdx].Name,
		DiscardMask: mask,
	})
}

func (h *Hand) emit(typ EventType, payload interface{}) {
	h.seq++
	h.sink.Emit(Event{
		Seq:     h.seq,
		Time:    h.now(),
		Type:    typ,
		Payload: payload,
	})
}

// SeatSnapshot is a copy of one seat's public and private state.
type SeatSnapshot struct {
	Num      int
	Player   string
	Name     string
	Stack    int64
	State    SeatState
	Hole     []HoleCard
	Bet      int64
	TotalBet int64
	Value    *HandValue
}

// HandSnapshot is a deep copy of the hand's observable state. Readers
// never race with the engine because the copy is made synchronously.
type HandSnapshot struct {
	HandID      string
	Variant     string
	Phase       Phase
	Dealer      int
	SBSeat      int
	BBSeat      int
	ToAct       int
	StreetIndex int
	Street      string
	CurrentBet  int64
	MinRaise    int64
	Community   []Card
	Pots        []Pot
	TotalPot    int64
	Seats       []SeatSnapshot
}

// Snapshot returns a deep copy of the hand state.
func (h *Hand) Snapshot() HandSnapshot {
	snap := HandSnapshot{
		HandID:      h.cfg.HandID,
		Variant:     h.cfg.Variant.Name,
		Phase:       h.phase,
		Dealer:      h.cfg.Dealer,
		SBSeat:      h.sbSeat,
		BBSeat:      h.bbSeat,
		ToAct:       h.ToAct(),
		StreetIndex: h.streetIdx,
		Community:   append([]Card{}, h.community...),
		TotalPot:    h.pm.TotalPot(),
	}
	if h.streetIdx < len(h.cfg.Variant.Streets) {
		snap.Street = h.cfg.Variant.Streets[h.streetIdx].Name
	}
	if h.round != nil {
		snap.CurrentBet = h.round.currentBet
		snap.MinRaise = h.round.minRaise
	}
	for _, p := range h.pm.Pots() {
		snap.Pots = append(snap.Pots, Pot{
			Amount:   p.Amount,
			Eligible: append([]bool{}, p.Eligible...),
			Cap:      p.Cap,
		})
	}
	for _, s := range h.seats {
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
		if s.Value != nil {
			v := *s.Value
			v.Best = append([]Card{}, s.Value.Best...)
			ss.Value = &v
		}
		snap.Seats = append(snap.Seats, ss)
	}
	return snap
}
