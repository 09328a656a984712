package poker

import (
	"fmt"
	"sort"
	"strings"

	chp "github.com/chehsunliu/poker"
)

// RankingScheme selects the total order used at showdown.
type RankingScheme int

const (
	// SchemeHighCard is the standard poker order: straight flush down to
	// high card.
	SchemeHighCard RankingScheme = iota
	// SchemeDeuceToSeven is 2-7 lowball: straights and flushes count
	// against the holder and aces are always high, so the best possible
	// hand is 2-3-4-5-7.
	SchemeDeuceToSeven
)

// String returns the scheme name used in variant records and histories.
func (s RankingScheme) String() string {
	switch s {
	case SchemeHighCard:
		return "high-card"
	case SchemeDeuceToSeven:
		return "2-7-lowball"
	default:
		return "unknown"
	}
}

// HandCategory classifies a five-card hand.
type HandCategory int

const (
	HighCard HandCategory = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a display name for the category
func (c HandCategory) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// HandValue is a complete evaluation of a hand. Key is a comparable rank
// under the selected scheme where greater is always the winner, so callers
// never need scheme-specific comparisons.
type HandValue struct {
	Scheme      RankingScheme
	Category    HandCategory
	Key         int32
	Best        []Card
	Description string
}

// The chehsunliu evaluator ranks all 7462 distinct five-card hands with 1
// as the best high hand. In 2-7 lowball the order is exactly inverted:
// the worst high hand (7-5-4-3-2 offsuit, rank 7462) is the best low hand.
const worstHighRank = 7462

// toLibCard converts a Card to the chehsunliu representation.
func toLibCard(c Card) chp.Card {
	var suitChar byte
	switch c.suit {
	case Spades:
		suitChar = 's'
	case Hearts:
		suitChar = 'h'
	case Diamonds:
		suitChar = 'd'
	case Clubs:
		suitChar = 'c'
	}
	return chp.NewCard(c.rank.String() + string(suitChar))
}

// categoryFromRankClass maps the library's rank class (1 = straight flush
// .. 9 = high card) to a HandCategory.
func categoryFromRankClass(class int32) HandCategory {
	switch class {
	case 1:
		return StraightFlush
	case 2:
		return FourOfAKind
	case 3:
		return FullHouse
	case 4:
		return Flush
	case 5:
		return Straight
	case 6:
		return ThreeOfAKind
	case 7:
		return TwoPair
	case 8:
		return Pair
	default:
		return HighCard
	}
}

// Evaluate returns the rank of the best five-card hand drawable from 5 to
// 7 input cards under the given scheme. The evaluation is pure: identical
// inputs always produce identical values.
func Evaluate(cards []Card, scheme RankingScheme) (HandValue, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return HandValue{}, fmt.Errorf("%w: got %d", ErrInvalidCardCount, len(cards))
	}
	for _, c := range cards {
		if !c.Valid() {
			return HandValue{}, fmt.Errorf("%w: %s", ErrInvalidCard, c)
		}
	}

	best, bestRank := bestFive(cards, scheme)

	hv := HandValue{
		Scheme:   scheme,
		Category: categoryFromRankClass(chp.RankClass(bestRank)),
		Best:     best,
	}
	switch scheme {
	case SchemeDeuceToSeven:
		hv.Key = bestRank
		hv.Description = lowDescription(best, hv.Category)
	default:
		hv.Key = worstHighRank + 1 - bestRank
		hv.Description = chp.RankString(bestRank)
	}
	return hv, nil
}

// bestFive picks the winning five-card subset: the lowest library rank for
// high-card play, the highest for deuce-to-seven.
func bestFive(cards []Card, scheme RankingScheme) ([]Card, int32) {
	lib := make([]chp.Card, len(cards))
	for i, c := range cards {
		lib[i] = toLibCard(c)
	}

	if len(cards) == 5 {
		return append([]Card{}, cards...), chp.Evaluate(lib)
	}

	var best []Card
	var bestRank int32
	first := true
	forEachFiveSubset(cards, func(subset []Card) {
		sub := make([]chp.Card, 5)
		for i, c := range subset {
			sub[i] = toLibCard(c)
		}
		rank := chp.Evaluate(sub)
		better := rank < bestRank
		if scheme == SchemeDeuceToSeven {
			better = rank > bestRank
		}
		if first || better {
			first = false
			bestRank = rank
			best = append([]Card{}, subset...)
		}
	})
	return best, bestRank
}

// forEachFiveSubset visits every 5-card combination of cards (6 or 7
// inputs, so at most C(7,5)=21 subsets).
func forEachFiveSubset(cards []Card, visit func([]Card)) {
	n := len(cards)
	idx := [5]int{}
	subset := make([]Card, 5)
	var rec func(start, k int)
	rec = func(start, k int) {
		if k == 5 {
			for i, ci := range idx {
				subset[i] = cards[ci]
			}
			visit(subset)
			return
		}
		for i := start; i <= n-(5-k); i++ {
			idx[k] = i
			rec(i+1, k+1)
		}
	}
	rec(0, 0)
}

// lowDescription renders a lowball hand: pat low hands read high-card
// first ("8-6-4-3-2 low"), paired or straight/flush hands keep their
// high-hand name since that is what dooms them.
func lowDescription(best []Card, cat HandCategory) string {
	if cat != HighCard {
		return cat.String()
	}
	ranks := make([]string, len(best))
	sorted := append([]Card{}, best...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].rank > sorted[j].rank })
	for i, c := range sorted {
		ranks[i] = c.rank.String()
	}
	return strings.Join(ranks, "-") + " low"
}

// CompareHands compares two hand values, returning -1, 0 or 1 as a is
// worse than, equal to, or better than b. Both values must come from the
// same scheme.
func CompareHands(a, b HandValue) int {
	switch {
	case a.Key < b.Key:
		return -1
	case a.Key > b.Key:
		return 1
	default:
		return 0
	}
}
