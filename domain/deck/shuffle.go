package deck

import (
	"crypto/cipher"
	"math/big"

	"go.dedis.ch/kyber/v4/util/random"

	"github.com/Trungkien03/poker-hand-logic/domain/poker"
)

// Shuffle returns every card to the deck and puts them in a random order.
func (d *Deck) Shuffle() {
	d.next = 0
	perm := permutation(d.stream, len(d.cards))
	shuffled := make([]poker.Card, len(d.cards))
	for i, j := range perm {
		shuffled[i] = d.cards[j]
	}
	d.cards = shuffled
}

// permutation returns a Fisher-Yates permutation of [0, n) driven by stream.
func permutation(stream cipher.Stream, n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		// random.Int is uniform in [1, mod), never zero.
		j := int(random.Int(big.NewInt(int64(i+2)), stream).Int64()) - 1
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
