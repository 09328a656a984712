package poker

import (
	"errors"
	"testing"
)

func TestVariantStructure(t *testing.T) {
	holdem := TexasHoldem()
	if holdem.HoleCards != 2 || len(holdem.Streets) != 4 || holdem.Limit != NoLimit {
		t.Errorf("Unexpected hold'em structure: %+v", holdem)
	}
	var community int
	for _, st := range holdem.Streets {
		community += st.DealCommunity
	}
	if community != 5 {
		t.Errorf("Expected 5 community cards, got %d", community)
	}

	draw := TripleDraw27()
	if draw.HoleCards != 5 || draw.Scheme != SchemeDeuceToSeven || draw.Limit != FixedLimit {
		t.Errorf("Unexpected triple draw structure: %+v", draw)
	}
	draws := 0
	for _, st := range draw.Streets {
		if st.Draw {
			draws++
		}
	}
	if draws != 3 {
		t.Errorf("Expected 3 draw rounds, got %d", draws)
	}

	short := ShortDeck()
	if short.MinRank != Six {
		t.Errorf("Expected six-plus deck, got min rank %d", short.MinRank)
	}

	stud := SevenCardStud()
	if stud.HoleCards != 3 || !stud.UseBringIn || stud.community() {
		t.Errorf("Unexpected stud structure: %+v", stud)
	}
	if len(stud.FaceUp) != 7 || !stud.FaceUp[2] || stud.FaceUp[6] {
		t.Errorf("Unexpected stud exposure pattern: %v", stud.FaceUp)
	}
}

func TestFixedBetSchedule(t *testing.T) {
	draw := TripleDraw27()
	// Small bet on the first two streets, big bet after
	if got := draw.fixedBetFor(0, 20); got != 20 {
		t.Errorf("Expected small bet 20 on street 0, got %d", got)
	}
	if got := draw.fixedBetFor(1, 20); got != 20 {
		t.Errorf("Expected small bet 20 on street 1, got %d", got)
	}
	if got := draw.fixedBetFor(2, 20); got != 40 {
		t.Errorf("Expected big bet 40 on street 2, got %d", got)
	}
	if got := draw.fixedBetFor(3, 20); got != 40 {
		t.Errorf("Expected big bet 40 on street 3, got %d", got)
	}

	explicit := draw
	explicit.FixedBets = []int64{30, 30, 60, 60}
	if got := explicit.fixedBetFor(2, 20); got != 60 {
		t.Errorf("Expected explicit bet 60, got %d", got)
	}

	if got := TexasHoldem().fixedBetFor(0, 20); got != 0 {
		t.Errorf("Expected no fixed bet for no-limit, got %d", got)
	}
}

// Scenario: seven-card stud with antes, a bring-in from the low door
// card, face-up streets, and fixed-limit sizing.
func TestSevenCardStud(t *testing.T) {
	seats := testSeats(1000, 1000)
	rec := &Recorder{}
	h, err := NewHand(HandConfig{
		HandID:  "stud-1",
		Variant: SevenCardStud(),
		Stakes:  Stakes{BigBlind: 20, Ante: 5, BringIn: 10},
		Dealer:  0,
		Sink:    rec,
		Deck: deckFor(
			"AH", "KH", "AD", "KD", "2S", "9C", // third street, doors 2S and 9C
			"TS", "JC", // fourth
			"TH", "JD", // fifth
			"4H", "5D", // sixth
			"AS", "KS", // seventh, face down
		),
	}, seats)
	if err != nil {
		t.Fatalf("NewHand failed: %v", err)
	}
	if err := h.Begin(); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	total := int64(2000)

	// Seat 1 shows the 2S door card and brings it in; seat 0 acts next.
	if h.ToAct() != 0 {
		t.Fatalf("Expected seat 0 to act after the bring-in, got %d", h.ToAct())
	}
	if got := h.Snapshot().CurrentBet; got != 10 {
		t.Fatalf("Expected the bring-in to set the bet to 10, got %d", got)
	}
	mustApply(t, h, seats, total, Action{Seat: 0, Kind: Call})
	mustApply(t, h, seats, total, Action{Seat: 1, Kind: Check})

	// Fourth street: fixed-limit bets must match the street size exactly.
	if h.ToAct() != 1 {
		t.Fatalf("Expected seat 1 to open fourth street, got %d", h.ToAct())
	}
	if err := h.Apply(Action{Seat: 1, Kind: Bet, Amount: 30}); !errors.Is(err, ErrInvalidRaiseSize) {
		t.Errorf("Expected ErrInvalidRaiseSize for an off-size bet, got %v", err)
	}
	mustApply(t, h, seats, total, Action{Seat: 1, Kind: Bet, Amount: 20})
	if err := h.Apply(Action{Seat: 0, Kind: Raise, Amount: 50}); !errors.Is(err, ErrInvalidRaiseSize) {
		t.Errorf("Expected ErrInvalidRaiseSize for an off-size raise, got %v", err)
	}
	mustApply(t, h, seats, total, Action{Seat: 0, Kind: Raise, Amount: 40})
	mustApply(t, h, seats, total, Action{Seat: 1, Kind: Call})

	for street := 0; street < 3; street++ {
		mustApply(t, h, seats, total, Action{Seat: 1, Kind: Check})
		mustApply(t, h, seats, total, Action{Seat: 0, Kind: Check})
	}

	if h.Phase() != PhaseComplete {
		t.Fatalf("Expected COMPLETE, got %s", h.Phase())
	}
	// Aces full of tens beats kings full of jacks.
	if seats[1].Value == nil || seats[1].Value.Category != FullHouse {
		t.Fatalf("Expected a full house for seat 1, got %+v", seats[1].Value)
	}
	if seats[1].Stack != 1055 || seats[0].Stack != 945 {
		t.Errorf("Expected 1055/945, got %d/%d", seats[1].Stack, seats[0].Stack)
	}

	// Up-cards are public from the deal.
	sawShown := false
	for _, e := range rec.Events() {
		if e.Type == EventHoleDealt {
			p := e.Payload.(HoleDealtPayload)
			if len(p.Shown) > 0 {
				sawShown = true
			}
		}
	}
	if !sawShown {
		t.Error("Expected face-up stud cards in HOLE_DEALT events")
	}
}
