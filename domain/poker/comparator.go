package poker

// Compare orders two classified hands. It returns +1 when a is stronger,
// -1 when b is stronger and 0 when they cannot be told apart.
//
// Hands are ordered by category, then by their ranks from the highest
// down, then by how many cards they hold, then by the suit of their
// highest card (Spade > Heart > Diamond > Club). The suit step is a house
// rule that makes equal-rank hands distinct for display; CompareRanks
// stops before it.
func Compare(a, b ClassifiedHand) int {
	if c := CompareRanks(a, b); c != 0 {
		return c
	}
	if len(a.order) == 0 || len(b.order) == 0 {
		return 0
	}
	switch {
	case a.lead.Suit < b.lead.Suit:
		return 1
	case a.lead.Suit > b.lead.Suit:
		return -1
	}
	return 0
}

// CompareRanks is Compare without the suit tie-break. Hands it reports as
// equal split the pot.
func CompareRanks(a, b ClassifiedHand) int {
	if c := strongerOrdinal(a.Strength(), b.Strength()); c != 0 {
		return c
	}
	for i := 0; i < len(a.order) && i < len(b.order); i++ {
		switch {
		case a.order[i] > b.order[i]:
			return 1
		case a.order[i] < b.order[i]:
			return -1
		}
	}
	// Equal prefixes: the hand with more cards is stronger.
	switch {
	case len(a.order) > len(b.order):
		return 1
	case len(a.order) < len(b.order):
		return -1
	}
	return 0
}

// strongerOrdinal is the one place where "1 is best" is turned into an
// ordering: the lower ordinal wins. NoHand (0) loses to every real hand.
func strongerOrdinal(a, b int) int {
	a, b = noHandLast(a), noHandLast(b)
	switch {
	case a < b:
		return 1
	case a > b:
		return -1
	}
	return 0
}

func noHandLast(ordinal int) int {
	if ordinal == NoHand.Strength() {
		return HighCard.Strength() + 1
	}
	return ordinal
}
