package poker

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

// Card suit constants (1-4). Lower values win the final tie-break.
const (
	Spade   = 1 // ♠
	Heart   = 2 // ♥
	Diamond = 3 // ♦
	Club    = 4 // ♣
)

// Card rank constants for face cards and ace
const (
	Ten   = 10
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14 // high everywhere except the wheel A-2-3-4-5
)

const (
	minRank = 2
	maxRank = Ace
	minSuit = Spade
	maxSuit = Club

	// codeBase separates suit from rank in the numeric card code.
	codeBase = 1000
)

// Card represents a playing card with suit and rank.
// The zero value is not a valid card.
type Card struct {
	Suit uint8 `json:"suit"` // 1-4: spades, hearts, diamonds, clubs
	Rank uint8 `json:"rank"` // 2-14: deuce through ace
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: 1-4 (Spade, Heart, Diamond, Club)
//   - rank: 2-14 (2-10 face value, Jack=11, Queen=12, King=13, Ace=14)
//
// Returns the Card or an error wrapping ErrInvalidCard.
func NewCard(suit uint8, rank uint8) (Card, error) {
	c := Card{Suit: suit, Rank: rank}
	if !c.Valid() {
		return Card{}, invalidCard(c)
	}
	return c, nil
}

// IsValidCard reports whether the rank is in [2,14] and the suit in [1,4].
func IsValidCard(c Card) bool {
	return c.Rank >= minRank && c.Rank <= maxRank && c.Suit >= minSuit && c.Suit <= maxSuit
}

// Valid is the method form of IsValidCard.
func (c Card) Valid() bool {
	return IsValidCard(c)
}

// Code returns the numeric code of the card: suit*1000 + rank.
func Code(c Card) int {
	return int(c.Suit)*codeBase + int(c.Rank)
}

// FromCode decodes a numeric card code produced by Code.
func FromCode(code int) (Card, error) {
	if code < 0 {
		return Card{}, fmt.Errorf("%w: negative code %d", ErrInvalidCard, code)
	}
	suit, rank := code/codeBase, code%codeBase
	if suit > maxSuit || rank > maxRank {
		return Card{}, fmt.Errorf("%w: code %d", ErrInvalidCard, code)
	}
	return NewCard(uint8(suit), uint8(rank))
}

var rankLetters = map[uint8]string{
	Ten:   "T",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
	Ace:   "A",
}

var suitLetters = [...]string{Spade: "S", Heart: "H", Diamond: "D", Club: "C"}

func rankString(rank uint8) string {
	if s, ok := rankLetters[rank]; ok {
		return s
	}
	return strconv.Itoa(int(rank))
}

// Mnemonic returns the two-character form of the card, e.g. "AS" or "TD".
func (c Card) Mnemonic() string {
	if !c.Valid() {
		return "??"
	}
	return rankString(c.Rank) + suitLetters[c.Suit]
}

// String returns a human-readable representation of the Card using suit symbols
// (♠, ♥, ♦, ♣) and rank abbreviations (A, K, Q, J, T or number).
func (c Card) String() string {
	var suit string
	switch c.Suit {
	case Spade:
		suit = pterm.Black("♠")
	case Heart:
		suit = pterm.LightRed("♥")
	case Diamond:
		suit = pterm.LightRed("♦")
	case Club:
		suit = pterm.Black("♣")
	default:
		suit = "?"
	}
	return rankString(c.Rank) + suit
}

// ParseCard parses a mnemonic such as "AS", "10h", "Td" or "2c".
func ParseCard(s string) (Card, error) {
	m := strings.ToUpper(strings.TrimSpace(s))
	if len(m) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	rankPart, suitPart := m[:len(m)-1], m[len(m)-1:]

	var suit uint8
	for i, l := range suitLetters {
		if l != "" && l == suitPart {
			suit = uint8(i)
		}
	}
	if suit == 0 {
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrInvalidCard, s)
	}

	var rank uint8
	for r, l := range rankLetters {
		if l == rankPart {
			rank = r
		}
	}
	if rank == 0 {
		n, err := strconv.Atoi(rankPart)
		if err != nil || n < minRank || n > Ten {
			return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidCard, s)
		}
		rank = uint8(n)
	}
	return NewCard(suit, rank)
}

// ParseCards parses a slice of mnemonics, reporting the position of the first bad one.
func ParseCards(mnemonics []string) ([]Card, error) {
	cards := make([]Card, len(mnemonics))
	for i, m := range mnemonics {
		c, err := ParseCard(m)
		if err != nil {
			return nil, fmt.Errorf("card at position %d: %w", i, err)
		}
		cards[i] = c
	}
	return cards, nil
}

// SortByRankDesc returns a copy of cards ordered by rank, highest first.
// Cards of equal rank keep their original relative order.
func SortByRankDesc(cards []Card) []Card {
	sorted := slices.Clone(cards)
	slices.SortStableFunc(sorted, func(a, b Card) int {
		return int(b.Rank) - int(a.Rank)
	})
	return sorted
}
