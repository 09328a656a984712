package poker

import (
	"encoding/json"
	"testing"
)

func TestCardStringRoundTrip(t *testing.T) {
	// Every card must survive encode-then-decode
	for suit := Hearts; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			c := NewCard(rank, suit)
			parsed, err := ParseCard(c.String())
			if err != nil {
				t.Fatalf("ParseCard(%q) failed: %v", c.String(), err)
			}
			if parsed != c {
				t.Errorf("Round trip of %q gave %q", c.String(), parsed.String())
			}
		}
	}
}

func TestCardIndexRoundTrip(t *testing.T) {
	for idx := 0; idx < 52; idx++ {
		c, err := CardFromIndex(idx)
		if err != nil {
			t.Fatalf("CardFromIndex(%d) failed: %v", idx, err)
		}
		if c.Index() != idx {
			t.Errorf("Index round trip of %d gave %d", idx, c.Index())
		}
	}

	// Spot check the formula suit*13 + (rank-2)
	if got := MustCard("2H").Index(); got != 0 {
		t.Errorf("Expected 2H at index 0, got %d", got)
	}
	if got := MustCard("AS").Index(); got != 3*13+12 {
		t.Errorf("Expected AS at index 51, got %d", got)
	}

	if _, err := CardFromIndex(52); err == nil {
		t.Error("Expected error for index 52")
	}
	if _, err := CardFromIndex(-1); err == nil {
		t.Error("Expected error for index -1")
	}
}

func TestParseCardTenAlias(t *testing.T) {
	ten, err := ParseCard("10H")
	if err != nil {
		t.Fatalf("ParseCard(10H) failed: %v", err)
	}
	if ten != MustCard("TH") {
		t.Errorf("Expected 10H to parse as TH, got %s", ten)
	}

	lower, err := ParseCard("th")
	if err != nil {
		t.Fatalf("ParseCard(th) failed: %v", err)
	}
	if lower != ten {
		t.Errorf("Expected th to parse as TH, got %s", lower)
	}
}

func TestParseCardInvalid(t *testing.T) {
	for _, input := range []string{"", "A", "1H", "AX", "ZZ", "10", "100", "AHH"} {
		c, err := ParseCard(input)
		if err == nil {
			t.Errorf("Expected error parsing %q", input)
		}
		if c.Valid() {
			t.Errorf("Expected sentinel invalid card for %q, got %s", input, c)
		}
		if c != (Card{}) {
			t.Errorf("Expected zero card for %q", input)
		}
	}
}

func TestCardJSON(t *testing.T) {
	c := MustCard("QD")
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"QD"` {
		t.Errorf("Expected \"QD\", got %s", data)
	}

	var back Card
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back != c {
		t.Errorf("JSON round trip of %s gave %s", c, back)
	}

	if err := json.Unmarshal([]byte(`"XX"`), &back); err == nil {
		t.Error("Expected error unmarshaling invalid card")
	}
}

func TestCardEquality(t *testing.T) {
	if MustCard("AS") != NewCard(Ace, Spades) {
		t.Error("Expected equal cards to compare equal")
	}
	if MustCard("AS") == MustCard("AH") {
		t.Error("Expected different suits to compare unequal")
	}
}
