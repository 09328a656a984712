package poker

// LimitType is the betting limit policy for a variant.
type LimitType int

const (
	NoLimit LimitType = iota
	PotLimit
	FixedLimit
)

func (l LimitType) String() string {
	switch l {
	case NoLimit:
		return "no-limit"
	case PotLimit:
		return "pot-limit"
	case FixedLimit:
		return "fixed-limit"
	default:
		return "unknown"
	}
}

// Street describes one stage of a hand's schedule. A street may deal
// community cards, deal additional hole cards, or run a draw round; every
// street is followed by a betting round.
type Street struct {
	Name string
	// DealCommunity is the number of shared cards dealt before betting.
	DealCommunity int
	// Burn discards one card before dealing community cards.
	Burn bool
	// Draw runs a discard-and-replace round before betting.
	Draw bool
	// DealHole is the number of extra hole cards dealt to each live seat,
	// used by stud streets.
	DealHole int
}

// Variant is a data-only description of a poker game. The hand engine
// never branches on variant names, only on these fields.
type Variant struct {
	Name string
	// HoleCards dealt to each seat before the first street.
	HoleCards int
	// FaceUp marks which hole cards, by cumulative deal order, are
	// public. Nil means all face down.
	FaceUp  []bool
	Streets []Street
	Scheme  RankingScheme
	Limit   LimitType
	// FixedBets gives the bet size per street for fixed-limit play. Must
	// have one entry per street.
	FixedBets []int64
	// MinRank strips lower ranks from the deck, Two for a full deck.
	MinRank Rank
	// UseBringIn starts the first street's action with a forced bet from
	// the seat showing the worst up-card.
	UseBringIn bool
}

// TexasHoldem returns no-limit Texas Hold'em: two hole cards, four
// betting rounds over a shared board.
func TexasHoldem() Variant {
	return Variant{
		Name:      "texas-holdem",
		HoleCards: 2,
		Streets: []Street{
			{Name: "preflop"},
			{Name: "flop", DealCommunity: 3, Burn: true},
			{Name: "turn", DealCommunity: 1, Burn: true},
			{Name: "river", DealCommunity: 1, Burn: true},
		},
		Scheme:  SchemeHighCard,
		Limit:   NoLimit,
		MinRank: Two,
	}
}

// TripleDraw27 returns fixed-limit 2-7 Triple Draw Lowball: five private
// cards, three draw rounds, small bet on the first two streets and big
// bet after. Bet sizes are derived from the big blind at deal time.
func TripleDraw27() Variant {
	return Variant{
		Name:      "2-7-triple-draw",
		HoleCards: 5,
		Streets: []Street{
			{Name: "predraw"},
			{Name: "first-draw", Draw: true},
			{Name: "second-draw", Draw: true},
			{Name: "third-draw", Draw: true},
		},
		Scheme:  SchemeDeuceToSeven,
		Limit:   FixedLimit,
		MinRank: Two,
	}
}

// ShortDeck returns short-deck (six-plus) hold'em: the standard hold'em
// schedule over a 36-card deck with deuces through fives removed.
func ShortDeck() Variant {
	v := TexasHoldem()
	v.Name = "short-deck-holdem"
	v.MinRank = Six
	return v
}

// SevenCardStud returns the seven-card stud structure: no community
// cards, hole cards accumulate across streets with third through sixth
// dealt face up, and the worst door card brings it in.
func SevenCardStud() Variant {
	return Variant{
		Name:      "seven-card-stud",
		HoleCards: 3,
		FaceUp:    []bool{false, false, true, true, true, true, false},
		Streets: []Street{
			{Name: "third"},
			{Name: "fourth", DealHole: 1},
			{Name: "fifth", DealHole: 1},
			{Name: "sixth", DealHole: 1},
			{Name: "seventh", DealHole: 1},
		},
		Scheme:     SchemeHighCard,
		Limit:      FixedLimit,
		MinRank:    Two,
		UseBringIn: true,
	}
}

// fixedBetFor returns the fixed-limit bet size for street index i,
// defaulting to the small bet on the first half of the schedule and the
// big bet after, scaled from the big blind.
func (v Variant) fixedBetFor(i int, bigBlind int64) int64 {
	if v.Limit != FixedLimit {
		return 0
	}
	if len(v.FixedBets) > i {
		return v.FixedBets[i]
	}
	if i < (len(v.Streets)+1)/2 {
		return bigBlind
	}
	return bigBlind * 2
}

// community reports whether the variant deals community cards at all.
func (v Variant) community() bool {
	for _, st := range v.Streets {
		if st.DealCommunity > 0 {
			return true
		}
	}
	return false
}
