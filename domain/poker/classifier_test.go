package poker

import (
	"errors"
	"testing"
)

func cards(t *testing.T, mnemonics ...string) []Card {
	t.Helper()
	cs, err := ParseCards(mnemonics)
	if err != nil {
		t.Fatal(err)
	}
	return cs
}

func TestClassifyFiveCards(t *testing.T) {
	cases := []struct {
		name  string
		hand  []string
		want  HandCategory
		power int
	}{
		{"royal flush", []string{"AS", "KS", "QS", "JS", "TS"}, RoyalFlush, 1},
		{"straight flush", []string{"9S", "8S", "7S", "6S", "5S"}, StraightFlush, 2},
		{"wheel straight flush", []string{"AH", "2H", "3H", "4H", "5H"}, StraightFlush, 2},
		{"four of a kind", []string{"AS", "AH", "AD", "AC", "2S"}, FourOfAKind, 3},
		{"full house", []string{"KS", "KH", "KD", "5C", "5S"}, FullHouse, 4},
		{"flush", []string{"2H", "5H", "8H", "JH", "KH"}, Flush, 5},
		{"straight", []string{"5H", "6D", "7C", "8S", "9H"}, Straight, 6},
		{"wheel", []string{"AS", "2H", "3D", "4C", "5S"}, Straight, 6},
		{"broadway", []string{"AS", "KH", "QD", "JC", "TS"}, Straight, 6},
		{"three of a kind", []string{"7S", "7H", "7D", "KC", "2S"}, ThreeOfAKind, 7},
		{"two pair", []string{"QS", "QH", "4D", "4C", "9S"}, TwoPair, 8},
		{"one pair", []string{"TS", "TH", "4D", "8C", "9S"}, OnePair, 9},
		{"high card", []string{"2H", "5D", "8C", "JS", "KH"}, HighCard, 10},
		{"no wrap-around straight", []string{"KS", "AH", "2D", "3C", "4S"}, HighCard, 10},
		{"gap", []string{"AS", "KH", "QD", "JC", "9S"}, HighCard, 10},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h, err := Classify(cards(t, c.hand...))
			if err != nil {
				t.Fatal(err)
			}
			if h.Category != c.want {
				t.Fatalf("expected %v, got %v", c.want, h.Category)
			}
			if h.Strength() != c.power {
				t.Fatalf("expected strength %d, got %d", c.power, h.Strength())
			}
		})
	}
}

func TestClassifyShortHands(t *testing.T) {
	cases := []struct {
		hand []string
		want HandCategory
	}{
		{[]string{"AS", "AH", "AD", "AC"}, FourOfAKind},
		{[]string{"7S", "7H", "7D"}, ThreeOfAKind},
		{[]string{"7S", "7H", "7D", "2C"}, ThreeOfAKind},
		{[]string{"QS", "QH", "4D", "4C"}, OnePair},
		{[]string{"QS", "QH"}, OnePair},
		{[]string{"2S", "3S", "4S", "5S"}, HighCard},
		{[]string{"KD", "9C"}, HighCard},
		{[]string{"KD"}, HighCard},
	}
	for _, c := range cases {
		h, err := Classify(cards(t, c.hand...))
		if err != nil {
			t.Fatal(err)
		}
		if h.Category != c.want {
			t.Errorf("%v: expected %v, got %v", c.hand, c.want, h.Category)
		}
	}
}

func TestClassifyErrors(t *testing.T) {
	if _, err := Classify(nil); !errors.Is(err, ErrInvalidCardCount) {
		t.Fatalf("expected ErrInvalidCardCount for no cards, got %v", err)
	}
	six := cards(t, "AS", "KS", "QS", "JS", "TS", "9S")
	if _, err := Classify(six); !errors.Is(err, ErrInvalidCardCount) {
		t.Fatalf("expected ErrInvalidCardCount for six cards, got %v", err)
	}
	bad := []Card{{Suit: 1, Rank: 14}, {Suit: 9, Rank: 3}}
	if _, err := Classify(bad); !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("expected ErrInvalidCard, got %v", err)
	}
	dup := cards(t, "AS", "AS", "KD")
	if _, err := Classify(dup); !errors.Is(err, ErrDuplicateCard) {
		t.Fatalf("expected ErrDuplicateCard, got %v", err)
	}
}

func TestClassifyTieBreakIsRankDescending(t *testing.T) {
	in := cards(t, "4C", "QS", "4D", "9S", "QH")
	h, err := Classify(in)
	if err != nil {
		t.Fatal(err)
	}
	want := cards(t, "QS", "QH", "9S", "4C", "4D")
	for i := range want {
		if h.TieBreak[i] != want[i] {
			t.Fatalf("position %d: expected %v, got %v", i, want[i], h.TieBreak[i])
		}
	}
	for i := range in {
		if h.Source[i] != in[i] {
			t.Fatal("source cards do not match the input")
		}
	}
}

func TestWheelKeepsAceAsFourteen(t *testing.T) {
	h, err := Classify(cards(t, "3D", "AS", "5S", "2H", "4C"))
	if err != nil {
		t.Fatal(err)
	}
	if h.TieBreak[0].Rank != Ace {
		t.Fatalf("expected the ace to lead the tie-break cards, got %v", h.TieBreak)
	}
	if h.order[0] != 5 || h.order[4] != 1 {
		t.Fatalf("expected the wheel to order 5 high with a low ace, got %v", h.order)
	}
}

func TestRuleTablesOrder(t *testing.T) {
	want := []HandCategory{RoyalFlush, StraightFlush, FourOfAKind, FullHouse, Flush, Straight, ThreeOfAKind, TwoPair, OnePair, HighCard}
	if len(fiveCardRules) != len(want) {
		t.Fatalf("expected %d five-card rules, got %d", len(want), len(fiveCardRules))
	}
	for i, r := range fiveCardRules {
		if r.category != want[i] {
			t.Fatalf("rule %d: expected %v, got %v", i, want[i], r.category)
		}
	}
	short := []HandCategory{FourOfAKind, ThreeOfAKind, OnePair, HighCard}
	for i, r := range shortHandRules {
		if r.category != short[i] {
			t.Fatalf("short rule %d: expected %v, got %v", i, short[i], r.category)
		}
	}
}

func TestFirstMatchWins(t *testing.T) {
	// A flush that is also a straight must never reach the Flush rule.
	s := &shape{size: 5, flush: true, straight: true}
	s.counts[9], s.counts[8], s.counts[7], s.counts[6], s.counts[5] = 1, 1, 1, 1, 1
	if got := firstMatch(fiveCardRules, s); got != StraightFlush {
		t.Fatalf("expected StraightFlush, got %v", got)
	}
	s.counts[Ace], s.counts[King] = 1, 1
	if got := firstMatch(fiveCardRules, s); got != RoyalFlush {
		t.Fatalf("expected RoyalFlush, got %v", got)
	}
	if got := firstMatch(nil, s); got != NoHand {
		t.Fatalf("expected NoHand from an empty table, got %v", got)
	}
}

func TestCategoryTitles(t *testing.T) {
	if RoyalFlush.String() != "Royal Flush" || FourOfAKind.String() != "Four of a Kind" || NoHand.String() != "No Hand" {
		t.Fatal("unexpected category titles")
	}
	var c HandCategory
	if err := c.UnmarshalText([]byte("Two Pair")); err != nil || c != TwoPair {
		t.Fatalf("expected TwoPair, got %v (%v)", c, err)
	}
	if _, err := HandCategory(42).MarshalText(); err == nil {
		t.Fatal("expected an error for an unknown category")
	}
}
