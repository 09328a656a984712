package poker

import "time"

// EventType names one entry in a hand's event stream.
type EventType string

const (
	EventHandStart    EventType = "HAND_START"
	EventBlindsPosted EventType = "BLINDS_POSTED"
	EventHoleDealt    EventType = "HOLE_DEALT"
	EventCommunity    EventType = "COMMUNITY_DEALT"
	EventAction       EventType = "ACTION"
	EventDraw         EventType = "DRAW"
	EventShowdown     EventType = "SHOWDOWN"
	EventPotAwarded   EventType = "POT_AWARDED"
	EventHandEnd      EventType = "HAND_END"
)

// Event is one entry in the totally ordered stream a hand emits from
// start to settlement. Seq increases by one per event within a hand.
type Event struct {
	Seq     uint64      `json:"seq"`
	Time    time.Time   `json:"time"`
	Type    EventType   `json:"type"`
	Payload interface{} `json:"payload"`
}

// HandStartPayload announces a new hand.
type HandStartPayload struct {
	HandID     string   `json:"hand_id"`
	Variant    string   `json:"variant"`
	DealerSeat int      `json:"dealer_seat"`
	SeatStates []string `json:"seat_states"`
}

// BlindsPostedPayload records the forced bets. Antes is indexed by seat
// and nil when the hand has no ante.
type BlindsPostedPayload struct {
	SBSeat   int     `json:"sb_seat"`
	SBAmount int64   `json:"sb_amount"`
	BBSeat   int     `json:"bb_seat"`
	BBAmount int64   `json:"bb_amount"`
	Antes    []int64 `json:"antes,omitempty"`
}

// HoleDealtPayload announces hole cards going to a seat. The cards
// themselves stay private; face-up stud cards appear in Shown.
type HoleDealtPayload struct {
	Seat      int      `json:"seat"`
	CardCount int      `json:"card_count"`
	Shown     []string `json:"shown,omitempty"`
}

// CommunityDealtPayload carries newly dealt shared cards.
type CommunityDealtPayload struct {
	Street string   `json:"street"`
	Cards  []string `json:"cards"`
}

// ActionPayload records an accepted betting action.
type ActionPayload struct {
	Seat   int    `json:"seat"`
	Kind   string `json:"kind"`
	Amount int64  `json:"amount"`
	Street string `json:"street"`
}

// DrawPayload records a completed discard-and-replace. Discarded cards
// stay private.
type DrawPayload struct {
	Seat         int `json:"seat"`
	DiscardCount int `json:"discard_count"`
}

// ShowdownPayload reveals a seat's hand.
type ShowdownPayload struct {
	Seat  int      `json:"seat"`
	Cards []string `json:"cards"`
	Rank  string   `json:"rank"`
}

// PotAwardedPayload reports one pot's settlement.
type PotAwardedPayload struct {
	PotIndex   int   `json:"pot_index"`
	Winners    []int `json:"winners"`
	AmountEach int64 `json:"amount_each"`
	Amount     int64 `json:"amount"`
}

// HandEndPayload closes the stream. Outcome is "showdown",
// "uncontested" or "voided".
type HandEndPayload struct {
	Outcome string `json:"outcome"`
}

// Sink receives hand events in order. Implementations must not block;
// the engine calls Emit synchronously on its own thread.
type Sink interface {
	Emit(Event)
}

// Recorder is a Sink that keeps every event in memory.
type Recorder struct {
	events []Event
}

// Emit appends the event.
func (r *Recorder) Emit(e Event) {
	r.events = append(r.events, e)
}

// Events returns the recorded stream.
func (r *Recorder) Events() []Event {
	return r.events
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.events = nil
}

// multiSink fans one stream out to several sinks.
type multiSink []Sink

func (m multiSink) Emit(e Event) {
	for _, s := range m {
		s.Emit(e)
	}
}

// MultiSink combines sinks into one. Nil entries are skipped.
func MultiSink(sinks ...Sink) Sink {
	var out multiSink
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}
