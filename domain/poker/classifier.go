package poker

import (
	"fmt"
	"slices"
)

const handSize = 5

// ClassifiedHand is the category of at most five cards together with the
// cards that decide ties.
type ClassifiedHand struct {
	Category HandCategory
	// TieBreak is the rank-descending sort of Source.
	TieBreak []Card
	Source   []Card

	// order holds the ranks compared by Compare, highest first. It matches
	// TieBreak except in the wheel, where the ace ranks as 1 and comes last.
	order []uint8
	// lead is the highest card under order; its suit is the last tie-break.
	lead Card
}

// Strength returns the strength ordinal of the hand (1 strongest, 10 weakest).
func (h ClassifiedHand) Strength() int {
	return h.Category.Strength()
}

// shape is the rank and suit summary of a candidate hand.
type shape struct {
	size     int
	counts   [maxRank + 1]uint8
	flush    bool
	straight bool
	wheel    bool
}

func (s *shape) has(rank uint8) bool {
	return s.counts[rank] > 0
}

// ranksWith returns how many distinct ranks occur exactly n times.
func (s *shape) ranksWith(n uint8) int {
	found := 0
	for r := minRank; r <= maxRank; r++ {
		if s.counts[r] == n {
			found++
		}
	}
	return found
}

type rule struct {
	category HandCategory
	match    func(s *shape) bool
}

// fiveCardRules is evaluated top to bottom and the first match wins.
// The order is the ranking of poker hands and must not change.
var fiveCardRules = []rule{
	{RoyalFlush, func(s *shape) bool { return s.flush && s.straight && s.has(Ace) && s.has(King) }},
	{StraightFlush, func(s *shape) bool { return s.flush && s.straight }},
	{FourOfAKind, func(s *shape) bool { return s.ranksWith(4) > 0 }},
	{FullHouse, func(s *shape) bool { return s.ranksWith(3) > 0 && s.ranksWith(2) > 0 }},
	{Flush, func(s *shape) bool { return s.flush }},
	{Straight, func(s *shape) bool { return s.straight }},
	{ThreeOfAKind, func(s *shape) bool { return s.ranksWith(3) > 0 }},
	{TwoPair, func(s *shape) bool { return s.ranksWith(2) == 2 }},
	{OnePair, func(s *shape) bool { return s.ranksWith(2) == 1 }},
	{HighCard, func(*shape) bool { return true }},
}

// shortHandRules applies to fewer than five cards, where flushes,
// straights, full houses and two pair cannot be formed.
var shortHandRules = []rule{
	{FourOfAKind, func(s *shape) bool { return s.ranksWith(4) > 0 }},
	{ThreeOfAKind, func(s *shape) bool { return s.ranksWith(3) > 0 }},
	{OnePair, func(s *shape) bool { return s.ranksWith(2) > 0 }},
	{HighCard, func(*shape) bool { return true }},
}

func rulesFor(size int) []rule {
	if size == handSize {
		return fiveCardRules
	}
	return shortHandRules
}

// firstMatch returns the category of the first rule that matches s.
func firstMatch(rules []rule, s *shape) HandCategory {
	for _, r := range rules {
		if r.match(s) {
			return r.category
		}
	}
	return NoHand
}

func newShape(sorted []Card) *shape {
	s := &shape{size: len(sorted)}
	for _, c := range sorted {
		s.counts[c.Rank]++
	}
	if s.size != handSize {
		return s
	}

	s.flush = true
	for _, c := range sorted[1:] {
		if c.Suit != sorted[0].Suit {
			s.flush = false
			break
		}
	}

	s.straight = true
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Rank-sorted[i].Rank != 1 {
			s.straight = false
			break
		}
	}
	if !s.straight {
		s.wheel = sorted[0].Rank == Ace && sorted[1].Rank == 5 && sorted[2].Rank == 4 &&
			sorted[3].Rank == 3 && sorted[4].Rank == 2
		s.straight = s.wheel
	}
	return s
}

// Classify determines the category of one to five distinct cards.
func Classify(cards []Card) (ClassifiedHand, error) {
	if len(cards) == 0 {
		return ClassifiedHand{}, fmt.Errorf("%w: cannot classify an empty hand", ErrInvalidCardCount)
	}
	if err := validateCards(cards, handSize); err != nil {
		return ClassifiedHand{}, err
	}
	return classify(cards), nil
}

// classify assumes cards were validated.
func classify(cards []Card) ClassifiedHand {
	sorted := SortByRankDesc(cards)
	s := newShape(sorted)

	h := ClassifiedHand{
		Category: firstMatch(rulesFor(s.size), s),
		TieBreak: sorted,
		Source:   slices.Clone(cards),
		order:    make([]uint8, len(sorted)),
		lead:     sorted[0],
	}
	for i, c := range sorted {
		h.order[i] = c.Rank
	}
	if s.wheel {
		// A-5-4-3-2 orders as 5-4-3-2-1.
		copy(h.order, h.order[1:])
		h.order[len(h.order)-1] = 1
		h.lead = sorted[1]
	}
	return h
}
