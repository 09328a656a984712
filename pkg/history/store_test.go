package history

import (
	"path/filepath"
	"testing"

	"github.com/cardroom/engine/pkg/poker"
)

func testHistory(id string) poker.HandHistory {
	return poker.HandHistory{
		HandID:  id,
		Variant: "texas-holdem",
		Dealer:  0,
		Stakes:  poker.Stakes{SmallBlind: 10, BigBlind: 20},
		Players: []poker.HistoryPlayer{
			{Seat: 0, Name: "alice", Identity: "alice", StackStart: 1000},
			{Seat: 1, Name: "bob", Identity: "bob", StackStart: 1000},
		},
		Actions: []poker.HistoryAction{
			{Seat: 0, Kind: "FOLD", Street: "preflop"},
		},
		Pots:     []poker.HistoryPot{{Amount: 30, Winners: []int{1}}},
		PotTotal: 30,
		Outcome:  "uncontested",
	}
}

func TestStoreSaveAndGet(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "hands.sqlite"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	defer store.Close()

	want := testHistory("hand-1")
	if err := store.SaveHand(want); err != nil {
		t.Fatalf("SaveHand failed: %v", err)
	}

	got, err := store.GetHand("hand-1")
	if err != nil {
		t.Fatalf("GetHand failed: %v", err)
	}
	if got.HandID != want.HandID || got.PotTotal != want.PotTotal {
		t.Errorf("Round trip mismatch: %+v vs %+v", got, want)
	}
	if len(got.Actions) != 1 || got.Actions[0].Kind != "FOLD" {
		t.Errorf("Actions did not survive: %+v", got.Actions)
	}

	if _, err := store.GetHand("missing"); err == nil {
		t.Error("Expected error for missing hand")
	}
}

func TestStoreReplaceAndList(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "hands.sqlite"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	defer store.Close()

	for _, id := range []string{"hand-1", "hand-2", "hand-3"} {
		if err := store.SaveHand(testHistory(id)); err != nil {
			t.Fatalf("SaveHand %s failed: %v", id, err)
		}
	}

	// Saving again under the same id replaces, not duplicates
	updated := testHistory("hand-2")
	updated.PotTotal = 500
	if err := store.SaveHand(updated); err != nil {
		t.Fatalf("SaveHand replace failed: %v", err)
	}
	got, err := store.GetHand("hand-2")
	if err != nil {
		t.Fatalf("GetHand failed: %v", err)
	}
	if got.PotTotal != 500 {
		t.Errorf("Expected replaced history, got pot %d", got.PotTotal)
	}

	ids, err := store.ListHands(10)
	if err != nil {
		t.Fatalf("ListHands failed: %v", err)
	}
	if len(ids) != 3 {
		t.Errorf("Expected 3 hands, got %v", ids)
	}
}
