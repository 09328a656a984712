package poker

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// driveCallStation plays a hand to completion: stand pat, check when
// free, call otherwise.
func driveCallStation(t *testing.T, h *Hand) {
	t.Helper()
	for h.Phase() != PhaseComplete {
		seat := h.ToAct()
		require.GreaterOrEqual(t, seat, 0, "hand stalled in %s", h.Phase())
		la := h.LegalActions()
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
		require.NoError(t, h.Apply(act))
	}
}

func playedHand(t *testing.T, variant Variant, seed int64, rec *Recorder) *Hand {
	t.Helper()
	seats := testSeats(1000, 1000, 1000)
	for i, s := range seats {
		s.Player = []string{"alice", "bob", "carol"}[i]
		s.Name = s.Player
	}
	h, err := NewHand(HandConfig{
		HandID:  "hist-1",
		Variant: variant,
		Stakes:  Stakes{SmallBlind: 10, BigBlind: 20},
		Dealer:  1,
		Rng:     rand.New(rand.NewSource(seed)),
		Sink:    rec,
	}, seats)
	require.NoError(t, err)
	require.NoError(t, h.Begin())
	driveCallStation(t, h)
	return h
}

func TestHistoryJSONRoundTrip(t *testing.T) {
	h := playedHand(t, TexasHoldem(), 99, &Recorder{})
	hist := h.History()

	require.Equal(t, "hist-1", hist.HandID)
	require.Equal(t, "texas-holdem", hist.Variant)
	require.Len(t, hist.Players, 3)
	require.NotEmpty(t, hist.Actions)
	require.NotEmpty(t, hist.Pots)
	require.Equal(t, int64(60), hist.PotTotal)

	data, err := json.Marshal(hist)
	require.NoError(t, err)
	var back HandHistory
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, hist, back)
}

// requireSameEvents compares two event streams ignoring timestamps.
func requireSameEvents(t *testing.T, want, got []Event) {
	t.Helper()
	require.Equal(t, len(want), len(got))
	for i := range want {
		require.Equal(t, want[i].Seq, got[i].Seq, "event %d", i)
		require.Equal(t, want[i].Type, got[i].Type, "event %d", i)
		require.Equal(t, want[i].Payload, got[i].Payload, "event %d", i)
	}
}

func TestReplayReproducesHoldem(t *testing.T) {
	rec := &Recorder{}
	h := playedHand(t, TexasHoldem(), 7, rec)
	hist := h.History()

	// Serialize and deserialize before replaying, as an offline consumer
	// would.
	data, err := json.Marshal(hist)
	require.NoError(t, err)
	var loaded HandHistory
	require.NoError(t, json.Unmarshal(data, &loaded))

	rec2 := &Recorder{}
	replayed, err := Replay(loaded, rand.New(rand.NewSource(7)), rec2)
	require.NoError(t, err)
	require.Equal(t, PhaseComplete, replayed.Phase())

	requireSameEvents(t, rec.Events(), rec2.Events())
	require.Equal(t, hist.Pots, replayed.History().Pots)
}

func TestReplayReproducesTripleDraw(t *testing.T) {
	rec := &Recorder{}
	h := playedHand(t, TripleDraw27(), 21, rec)
	hist := h.History()

	rec2 := &Recorder{}
	replayed, err := Replay(hist, rand.New(rand.NewSource(21)), rec2)
	require.NoError(t, err)
	require.Equal(t, PhaseComplete, replayed.Phase())
	requireSameEvents(t, rec.Events(), rec2.Events())
}

func TestReplayUnknownVariant(t *testing.T) {
	_, err := Replay(HandHistory{Variant: "omaha-hi-lo"}, rand.New(rand.NewSource(1)), nil)
	require.Error(t, err)
}

func TestVariantByName(t *testing.T) {
	for _, name := range []string{
		"texas-holdem", "2-7-triple-draw", "short-deck-holdem", "seven-card-stud",
	} {
		v, ok := VariantByName(name)
		require.True(t, ok, name)
		require.Equal(t, name, v.Name)
	}
	_, ok := VariantByName("five-card-stud")
	require.False(t, ok)
}
