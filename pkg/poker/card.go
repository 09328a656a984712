package poker

import (
	"encoding/json"
	"fmt"
)

// Suit represents a card suit
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// String returns the single-letter encoding of the suit
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Rank represents a card rank, 2 through 14 with ace always high
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankLetters = map[Rank]string{
	Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7",
	Eight: "8", Nine: "9", Ten: "T", Jack: "J", Queen: "Q", King: "K", Ace: "A",
}

// String returns the single-letter encoding of the rank ("T" for ten)
func (r Rank) String() string {
	if s, ok := rankLetters[r]; ok {
		return s
	}
	return "?"
}

// Card represents a playing card. The zero value is the sentinel invalid
// card (rank 0 would otherwise be meaningless).
type Card struct {
	rank Rank
	suit Suit
}

// NewCard creates a card from rank and suit. Out-of-range ranks yield the
// invalid card.
func NewCard(rank Rank, suit Suit) Card {
	if rank < Two || rank > Ace || suit > Spades {
		return Card{}
	}
	return Card{rank: rank, suit: suit}
}

// Rank returns the card's rank
func (c Card) Rank() Rank { return c.rank }

// Suit returns the card's suit
func (c Card) Suit() Suit { return c.suit }

// Valid reports whether the card is a real card rather than the parse-error
// sentinel.
func (c Card) Valid() bool { return c.rank >= Two && c.rank <= Ace && c.suit <= Spades }

// Index returns the canonical index suit*13 + (rank-2), in 0..51. Used for
// serialization and table lookups.
func (c Card) Index() int {
	return int(c.suit)*13 + int(c.rank) - 2
}

// CardFromIndex is the inverse of Index.
func CardFromIndex(idx int) (Card, error) {
	if idx < 0 || idx > 51 {
		return Card{}, fmt.Errorf("%w: index %d out of range", ErrInvalidCard, idx)
	}
	return Card{rank: Rank(idx%13 + 2), suit: Suit(idx / 13)}, nil
}

// String returns the two-character encoding, e.g. "AS" or "TD"
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return c.rank.String() + c.suit.String()
}

// ParseCard parses the two-character form "RS". "10X" is accepted as an
// alias for "TX". Invalid inputs return the sentinel invalid card along
// with the error.
func ParseCard(s string) (Card, error) {
	if len(s) < 2 || len(s) > 3 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rankStr, suitStr := s[:len(s)-1], s[len(s)-1:]
	if len(rankStr) == 2 && rankStr != "10" {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	var rank Rank
	switch rankStr {
	case "2", "3", "4", "5", "6", "7", "8", "9":
		rank = Rank(rankStr[0] - '0')
	case "T", "t", "10":
		rank = Ten
	case "J", "j":
		rank = Jack
	case "Q", "q":
		rank = Queen
	case "K", "k":
		rank = King
	case "A", "a":
		rank = Ace
	default:
		return Card{}, fmt.Errorf("%w: rank %q", ErrInvalidCard, rankStr)
	}

	var suit Suit
	switch suitStr {
	case "H", "h":
		suit = Hearts
	case "D", "d":
		suit = Diamonds
	case "C", "c":
		suit = Clubs
	case "S", "s":
		suit = Spades
	default:
		return Card{}, fmt.Errorf("%w: suit %q", ErrInvalidCard, suitStr)
	}

	return Card{rank: rank, suit: suit}, nil
}

// MustCard parses a card string and panics on failure. Intended for
// constants and tests.
func MustCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// MarshalJSON implements json.Marshaler, encoding the card as its
// two-character string form.
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (c *Card) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCard(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func cardStrings(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}
