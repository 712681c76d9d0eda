// Package deck deals playing cards from a shuffled 52-card deck.
package deck

import (
	"crypto/cipher"
	"errors"
	"fmt"

	"go.dedis.ch/kyber/v4/suites"

	"github.com/Trungkien03/poker-hand-logic/domain/poker"
)

// Size is the number of cards in a standard deck.
const Size = 52

var ErrNotEnoughCards = errors.New("not enough cards left in the deck")

var suite suites.Suite = suites.MustFind("Ed25519")

// Deck is a standard 52-card deck. Cards are drawn from the top.
type Deck struct {
	cards  []poker.Card
	next   int
	stream cipher.Stream
}

// Option configures a Deck.
type Option func(*Deck)

// WithStream sets the random stream used to shuffle. By default the deck
// draws from the Ed25519 suite's random stream.
func WithStream(s cipher.Stream) Option {
	return func(d *Deck) {
		d.stream = s
	}
}

// New returns an unshuffled deck ordered by suit, then rank.
func New(opts ...Option) *Deck {
	d := &Deck{
		cards:  make([]poker.Card, 0, Size),
		stream: suite.RandomStream(),
	}
	for _, opt := range opts {
		opt(d)
	}
	for i := 0; i < Size; i++ {
		c, err := IndexToCard(i)
		if err != nil {
			panic(err)
		}
		d.cards = append(d.cards, c)
	}
	return d
}

// IndexToCard converts a deck index (0-51) to a Card. Indices map to suits in
// order (spades, hearts, diamonds, clubs) with ranks 2 through ace within each suit.
func IndexToCard(i int) (poker.Card, error) {
	if i < 0 || i >= Size {
		return poker.Card{}, fmt.Errorf("card index %d out of range", i)
	}
	return poker.NewCard(uint8(i/13)+poker.Spade, uint8(i%13)+2)
}

// CardToIndex is the inverse of IndexToCard.
func CardToIndex(c poker.Card) int {
	return int(c.Suit-poker.Spade)*13 + int(c.Rank) - 2
}

// Remaining returns how many cards are left to draw.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// Draw removes n cards from the top of the deck.
func (d *Deck) Draw(n int) ([]poker.Card, error) {
	if n < 0 || n > d.Remaining() {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrNotEnoughCards, n, d.Remaining())
	}
	drawn := make([]poker.Card, n)
	copy(drawn, d.cards[d.next:d.next+n])
	d.next += n
	return drawn, nil
}

// Deal gives each of players hands of size cards, one card per player per
// round as at a real table.
func (d *Deck) Deal(players, size int) ([][]poker.Card, error) {
	if players < 0 || size < 0 {
		return nil, fmt.Errorf("invalid deal of %d cards to %d players", size, players)
	}
	if players*size > d.Remaining() {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrNotEnoughCards, players*size, d.Remaining())
	}
	hands := make([][]poker.Card, players)
	for i := range hands {
		hands[i] = make([]poker.Card, 0, size)
	}
	for round := 0; round < size; round++ {
		for p := range hands {
			c, err := d.Draw(1)
			if err != nil {
				return nil, err
			}
			hands[p] = append(hands[p], c[0])
		}
	}
	return hands, nil
}
