package poker

import (
	"fmt"
	"math/rand"
)

// Deck is a fixed-capacity ordered sequence of cards plus a position
// marking the next card to deal. Cards at indices below the position are
// consumed; draw-variant discards may be returned into the undealt region.
type Deck struct {
	cards []Card
	pos   int
	rng   *rand.Rand
	// out counts cards dealt and still in play, so Return can tell a
	// legitimate discard from a card the deck never released.
	out int
}

// NewDeck creates a standard 52-card deck shuffled with the given RNG. The
// RNG must be seeded exactly once per hand so hands can be replayed.
func NewDeck(rng *rand.Rand) *Deck {
	return NewShortDeck(rng, Two)
}

// NewShortDeck creates a deck containing only ranks >= minRank (a 36-card
// short deck for minRank Six), shuffled with the given RNG.
func NewShortDeck(rng *rand.Rand, minRank Rank) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	for suit := Hearts; suit <= Spades; suit++ {
		for rank := minRank; rank <= Ace; rank++ {
			d.cards = append(d.cards, Card{rank: rank, suit: suit})
		}
	}
	d.Shuffle()
	return d
}

// NewDeckFromCards creates a deck dealing the given cards in order. No
// shuffle is performed; used for restoration and deterministic tests.
func NewDeckFromCards(cards []Card, rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, len(cards), 52),
		rng:   rng,
	}
	copy(d.cards, cards)
	return d
}

// Shuffle runs Fisher-Yates over the undealt region only, consuming
// uniform integers from the deck's RNG.
func (d *Deck) Shuffle() {
	if d.rng == nil {
		// Restored decks without an RNG keep their explicit order.
		return
	}
	for i := len(d.cards) - 1; i > d.pos; i-- {
		j := d.pos + d.rng.Intn(i-d.pos+1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal returns the card at the current position and advances it.
func (d *Deck) Deal() (Card, error) {
	if d.pos >= len(d.cards) {
		return Card{}, ErrDeckExhausted
	}
	c := d.cards[d.pos]
	d.pos++
	d.out++
	return c, nil
}

// Burn consumes one card without exposing it, as between streets.
func (d *Deck) Burn() error {
	_, err := d.Deal()
	return err
}

// Return appends cards to the tail of the undealt region and reshuffles
// that region. Only cards the deck has actually dealt may come back, so
// in-play plus undealt never exceeds the deck's composition; anything
// beyond that is dropped.
func (d *Deck) Return(cards ...Card) {
	if len(cards) == 0 || d.out == 0 {
		return
	}
	// Drop the consumed prefix so the deck never grows past capacity.
	d.cards = append(d.cards[:0], d.cards[d.pos:]...)
	d.pos = 0
	for _, c := range cards {
		if d.out == 0 {
			break
		}
		d.cards = append(d.cards, c)
		d.out--
	}
	d.Shuffle()
}

// Remove deletes a specific card from the undealt region. Used when some
// cards are already known to be in play.
func (d *Deck) Remove(c Card) error {
	for i := d.pos; i < len(d.cards); i++ {
		if d.cards[i] == c {
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotInDeck, c)
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int { return len(d.cards) - d.pos }

// Size returns the total number of cards the deck currently holds, dealt
// or not.
func (d *Deck) Size() int { return len(d.cards) }

// Cards returns a copy of the undealt region, in deal order.
func (d *Deck) Cards() []Card {
	out := make([]Card, d.Remaining())
	copy(out, d.cards[d.pos:])
	return out
}
