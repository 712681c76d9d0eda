package poker

import "fmt"

// HandCategory is a poker hand category. Its value is the strength
// ordinal: 1 is the strongest hand, 10 the weakest, 0 the empty-input
// sentinel that is never compared against real hands.
type HandCategory uint8

const (
	NoHand HandCategory = iota
	RoyalFlush
	StraightFlush
	FourOfAKind
	FullHouse
	Flush
	Straight
	ThreeOfAKind
	TwoPair
	OnePair
	HighCard
)

var categoryTitles = [...]string{
	NoHand:        "No Hand",
	RoyalFlush:    "Royal Flush",
	StraightFlush: "Straight Flush",
	FourOfAKind:   "Four of a Kind",
	FullHouse:     "Full House",
	Flush:         "Flush",
	Straight:      "Straight",
	ThreeOfAKind:  "Three of a Kind",
	TwoPair:       "Two Pair",
	OnePair:       "One Pair",
	HighCard:      "High Card",
}

// Strength returns the strength ordinal of the category.
func (h HandCategory) Strength() int {
	return int(h)
}

// String returns the title of the category, e.g. "Four of a Kind".
func (h HandCategory) String() string {
	if int(h) < len(categoryTitles) {
		return categoryTitles[h]
	}
	return "Unknown"
}

// MarshalText encodes the category as its title.
func (h HandCategory) MarshalText() ([]byte, error) {
	if int(h) >= len(categoryTitles) {
		return nil, fmt.Errorf("unknown hand category %d", h)
	}
	return []byte(h.String()), nil
}

// UnmarshalText decodes a category title.
func (h *HandCategory) UnmarshalText(text []byte) error {
	for i, title := range categoryTitles {
		if title == string(text) {
			*h = HandCategory(i)
			return nil
		}
	}
	return fmt.Errorf("unknown hand category %q", text)
}
