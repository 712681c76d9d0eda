package poker

import (
	"errors"
	"fmt"
)

// Evaluation errors. Callers match them with errors.Is; the wrapped message
// carries the details.
var (
	ErrInvalidInputShape = errors.New("input is not a sequence")
	ErrInvalidCardCount  = errors.New("invalid card count")
	ErrInvalidCard       = errors.New("invalid card")
	ErrDuplicateCard     = errors.New("duplicate card")
	ErrEmptyPlayerList   = errors.New("empty player list")
	// ErrNoValidHand means no candidate subset could be classified.
	// It is unreachable for valid input.
	ErrNoValidHand = errors.New("no valid hand")
)

var errorCodes = []struct {
	err  error
	code string
}{
	{ErrInvalidInputShape, "InvalidInputShapeError"},
	{ErrInvalidCardCount, "InvalidCardCountError"},
	{ErrInvalidCard, "InvalidCardError"},
	{ErrDuplicateCard, "DuplicateCardError"},
	{ErrEmptyPlayerList, "EmptyPlayerListError"},
	{ErrNoValidHand, "NoValidHandError"},
}

// ErrorCode returns the stable tag for an evaluation error, or "" when err
// does not wrap one of the package's sentinel errors.
func ErrorCode(err error) string {
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return e.code
		}
	}
	return ""
}

func invalidCard(c Card) error {
	return fmt.Errorf("%w: suit %d, rank %d", ErrInvalidCard, c.Suit, c.Rank)
}

// validateCards checks the count, every card's range and uniqueness, in that order.
func validateCards(cards []Card, limit int) error {
	if len(cards) > limit {
		return fmt.Errorf("%w: got %d cards, at most %d allowed", ErrInvalidCardCount, len(cards), limit)
	}
	for i, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("card at position %d: %w", i, invalidCard(c))
		}
	}
	var seen [maxSuit + 1][maxRank + 1]bool
	for _, c := range cards {
		if seen[c.Suit][c.Rank] {
			return fmt.Errorf("%w: %s appears more than once", ErrDuplicateCard, c.Mnemonic())
		}
		seen[c.Suit][c.Rank] = true
	}
	return nil
}
