package poker

import (
	"errors"
	"math/rand"
	"testing"
)

func newTestTable(t *testing.T, maxSeats int, seed int64) *Table {
	t.Helper()
	table, err := NewTable(TableConfig{
		ID:       "t1",
		Variant:  TexasHoldem(),
		Stakes:   Stakes{SmallBlind: 10, BigBlind: 20},
		MaxSeats: maxSeats,
		Rng:      rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	return table
}

func TestTableSitAndLeave(t *testing.T) {
	table := newTestTable(t, 2, 1)

	seat, err := table.Sit("alice", "Alice", 1000)
	if err != nil || seat != 0 {
		t.Fatalf("Expected alice at seat 0, got %d (%v)", seat, err)
	}
	if _, err := table.Sit("alice", "Alice", 500); err == nil {
		t.Error("Expected error seating the same player twice")
	}
	if _, err := table.Sit("bob", "Bob", 0); err == nil {
		t.Error("Expected error for zero buy-in")
	}
	seat, err = table.Sit("bob", "Bob", 800)
	if err != nil || seat != 1 {
		t.Fatalf("Expected bob at seat 1, got %d (%v)", seat, err)
	}
	if _, err := table.Sit("carol", "Carol", 1000); err == nil {
		t.Error("Expected error when the table is full")
	}

	chips, err := table.Leave(1)
	if err != nil {
		t.Fatalf("Leave failed: %v", err)
	}
	if chips != 800 {
		t.Errorf("Expected bob to take 800 chips, got %d", chips)
	}
	if _, err := table.Leave(1); err == nil {
		t.Error("Expected error leaving an empty seat")
	}
	if _, err := table.Leave(9); err == nil {
		t.Error("Expected error for out-of-range seat")
	}
}

func TestTableNeedsPlayers(t *testing.T) {
	table := newTestTable(t, 6, 1)
	if _, err := table.Sit("alice", "Alice", 1000); err != nil {
		t.Fatalf("Sit failed: %v", err)
	}
	if _, err := table.StartHand(); !errors.Is(err, ErrNotEnoughPlayers) {
		t.Errorf("Expected ErrNotEnoughPlayers, got %v", err)
	}
	if table.CanStartHand() {
		t.Error("Expected table not ready with one player")
	}
}

func driveTableHand(t *testing.T, table *Table) {
	t.Helper()
	hand := table.CurrentHand()
	for hand.Phase() != PhaseComplete {
		seat := hand.ToAct()
		if seat < 0 {
			t.Fatalf("Hand stalled in %s", hand.Phase())
		}
		la := hand.LegalActions()
		act := Action{Seat: seat}
		switch {
		case la.Allows(Draw):
			act.Kind = Draw
		case la.Allows(Check):
			act.Kind = Check
		case la.Allows(Call):
			act.Kind = Call
		default:
			act.Kind = Fold
		}
		if err := table.Apply(act); err != nil {
			t.Fatalf("Apply %s by seat %d failed: %v", act.Kind, seat, err)
		}
	}
}

func TestTableMultiHandSession(t *testing.T) {
	table := newTestTable(t, 6, 42)
	for _, name := range []string{"alice", "bob", "carol"} {
		if _, err := table.Sit(name, name, 1000); err != nil {
			t.Fatalf("Sit %s failed: %v", name, err)
		}
	}
	if !table.CanStartHand() {
		t.Fatal("Expected table ready with three players")
	}

	dealers := make(map[int]bool)
	for n := 0; n < 3; n++ {
		if _, err := table.StartHand(); err != nil {
			t.Fatalf("StartHand %d failed: %v", n+1, err)
		}
		if _, err := table.StartHand(); err == nil {
			t.Error("Expected error starting a hand mid-hand")
		}
		dealers[table.Snapshot().Dealer] = true
		driveTableHand(t, table)

		// Chips stay on the table across hands
		var total int64
		for _, ss := range table.Snapshot().Seats {
			total += ss.Stack
		}
		if total != 3000 {
			t.Fatalf("Hand %d leaked chips: table holds %d", n+1, total)
		}
	}

	if table.HandNum() != 3 {
		t.Errorf("Expected 3 hands, got %d", table.HandNum())
	}
	if len(dealers) != 3 {
		t.Errorf("Expected the button to rotate, saw dealers %v", dealers)
	}
}

func TestTableLeaveDuringHand(t *testing.T) {
	table := newTestTable(t, 6, 5)
	for _, name := range []string{"alice", "bob"} {
		if _, err := table.Sit(name, name, 1000); err != nil {
			t.Fatalf("Sit failed: %v", err)
		}
	}
	if _, err := table.StartHand(); err != nil {
		t.Fatalf("StartHand failed: %v", err)
	}
	if _, err := table.Leave(0); err == nil {
		t.Error("Expected error leaving mid-hand")
	}
}
