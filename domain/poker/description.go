package poker

import "fmt"

var rankNames = [...]string{
	2: "Two", 3: "Three", 4: "Four", 5: "Five", 6: "Six", 7: "Seven", 8: "Eight",
	9: "Nine", 10: "Ten", 11: "Jack", 12: "Queen", 13: "King", 14: "Ace",
}

func rankName(rank uint8) string {
	if int(rank) < len(rankNames) && rankNames[rank] != "" {
		return rankNames[rank]
	}
	return "?"
}

func rankPlural(rank uint8) string {
	if rank == 6 {
		return "Sixes"
	}
	return rankName(rank) + "s"
}

// groupedRanks returns the ranks of the hand ordered by how many cards share
// them, then by rank, both descending.
func groupedRanks(cards []Card) []uint8 {
	var counts [maxRank + 1]uint8
	for _, c := range cards {
		counts[c.Rank]++
	}
	var ranks []uint8
	for n := uint8(4); n >= 1; n-- {
		for r := maxRank; r >= minRank; r-- {
			if counts[r] == n {
				ranks = append(ranks, uint8(r))
			}
		}
	}
	return ranks
}

// Describe returns a short human description such as "Full House, Kings over Fives".
func Describe(h ClassifiedHand) string {
	if len(h.TieBreak) == 0 {
		return "No cards"
	}
	groups := groupedRanks(h.TieBreak)
	title := h.Category.String()
	switch h.Category {
	case RoyalFlush:
		return title
	case StraightFlush, Straight:
		return fmt.Sprintf("%s, %s high", title, rankName(h.lead.Rank))
	case Flush:
		return fmt.Sprintf("%s, %s high", title, rankName(groups[0]))
	case HighCard:
		return fmt.Sprintf("%s, %s", title, rankName(groups[0]))
	case FullHouse:
		return fmt.Sprintf("%s, %s over %s", title, rankPlural(groups[0]), rankPlural(groups[1]))
	case TwoPair:
		return fmt.Sprintf("%s, %s and %s", title, rankPlural(groups[0]), rankPlural(groups[1]))
	case FourOfAKind, ThreeOfAKind, OnePair:
		return fmt.Sprintf("%s, %s", title, rankPlural(groups[0]))
	}
	return title
}
