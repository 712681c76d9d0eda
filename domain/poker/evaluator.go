package poker

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
)

// MaxCards is the largest hand BestHand accepts. It bounds the search at
// C(10,5) = 252 five-card subsets.
const MaxCards = 10

// HandResult is the best hand found in a set of cards.
type HandResult struct {
	Category    HandCategory `json:"category"`
	Strength    int          `json:"strengthOrdinal"`
	Description string       `json:"description"`
	BestFive    []Card       `json:"bestFiveCards"`

	hand ClassifiedHand
}

// Hand returns the classified hand behind the result.
func (r HandResult) Hand() ClassifiedHand {
	return r.hand
}

func newHandResult(h ClassifiedHand) HandResult {
	best := h.TieBreak
	if best == nil {
		best = []Card{}
	}
	return HandResult{
		Category:    h.Category,
		Strength:    h.Strength(),
		Description: Describe(h),
		BestFive:    best,
		hand:        h,
	}
}

// PlayerEntry is one player's cards at showdown.
type PlayerEntry struct {
	ID    string `json:"id"`
	Cards []Card `json:"cards"`
}

// Winner is a player holding the best hand.
type Winner struct {
	PlayerID string       `json:"playerId"`
	BestFive []Card       `json:"bestFiveCards"`
	AllCards []Card       `json:"allCards"`
	Category HandCategory `json:"category"`
	Strength int          `json:"strengthOrdinal"`
}

// Standing is a player's place at showdown. Players splitting a pot share a place.
type Standing struct {
	Place    int        `json:"place"`
	PlayerID string     `json:"playerId"`
	Result   HandResult `json:"result"`
}

// WinnerSet is the outcome of ResolveWinners.
type WinnerSet struct {
	WinCount  int        `json:"winCount"`
	Winners   []Winner   `json:"winners"`
	Standings []Standing `json:"standings"`
}

// Evaluator finds best hands and resolves showdowns. It holds no state
// between calls and is safe for concurrent use.
type Evaluator struct {
	log     *slog.Logger
	workers int
	// classify scores each five-card subset in BestHand.
	classify func([]Card) (ClassifiedHand, error)
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.log = l
		}
	}
}

// WithWorkers bounds how many players ResolveWinners evaluates at once.
// Values below 1 mean one per CPU.
func WithWorkers(n int) Option {
	return func(e *Evaluator) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		e.workers = n
	}
}

// NewEvaluator returns an Evaluator that logs nothing and evaluates one
// player per CPU unless opts say otherwise.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		workers:  runtime.GOMAXPROCS(0),
		classify: Classify,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEvaluator = NewEvaluator()

// BestHand returns the best hand that can be made from up to ten cards.
func BestHand(cards []Card) (HandResult, error) {
	return defaultEvaluator.BestHand(cards)
}

// ResolveWinners returns every player tied for the best hand.
func ResolveWinners(players []PlayerEntry) (WinnerSet, error) {
	return defaultEvaluator.ResolveWinners(players)
}

// BestHand returns the best hand that can be made from up to ten cards.
//
// No cards give NoHand and a single card gives HighCard without
// classification. Two to four cards are classified as they are; five or
// more are searched over every five-card subset.
func (e *Evaluator) BestHand(cards []Card) (HandResult, error) {
	if err := validateCards(cards, MaxCards); err != nil {
		return HandResult{}, err
	}

	switch {
	case len(cards) == 0:
		return newHandResult(ClassifiedHand{Category: NoHand}), nil
	case len(cards) == 1:
		c := cards[0]
		return newHandResult(ClassifiedHand{
			Category: HighCard,
			TieBreak: []Card{c},
			Source:   []Card{c},
			order:    []uint8{c.Rank},
			lead:     c,
		}), nil
	case len(cards) < handSize:
		return newHandResult(classify(cards)), nil
	}

	var (
		best  ClassifiedHand
		found bool
	)
	// Subsets of validated cards always classify. A subset that does not is
	// logged and skipped; ErrNoValidHand is returned only if none do.
	for i, subset := range Combinations(cards, handSize) {
		h, err := e.classify(subset)
		if err != nil {
			e.log.Debug("skipping subset", "index", i, "err", err)
			continue
		}
		if !found || Compare(h, best) > 0 {
			best, found = h, true
		}
	}
	if !found {
		return HandResult{}, fmt.Errorf("%w: none of %d subsets classified", ErrNoValidHand, Binomial(len(cards), handSize))
	}
	e.log.Debug("best hand", "cards", len(cards), "category", best.Category.String())
	return newHandResult(best), nil
}

// ResolveWinners evaluates every player's best hand and returns all players
// tied for the best one. Ties ignore suits, so identical ranks split the pot.
func (e *Evaluator) ResolveWinners(players []PlayerEntry) (WinnerSet, error) {
	if len(players) == 0 {
		return WinnerSet{}, ErrEmptyPlayerList
	}

	results := make([]HandResult, len(players))
	errs := make([]error, len(players))
	var g errgroup.Group
	g.SetLimit(e.workers)
	for i, p := range players {
		i, p := i, p
		g.Go(func() error {
			results[i], errs[i] = e.BestHand(p.Cards)
			return nil
		})
	}
	_ = g.Wait()
	for i, err := range errs {
		if err != nil {
			return WinnerSet{}, fmt.Errorf("player %q: %w", players[i].ID, err)
		}
	}

	order := make([]int, len(players))
	for i := range order {
		order[i] = i
	}
	// sort by strength ordinal, best first
	slices.SortStableFunc(order, func(i, j int) int {
		return -Compare(results[i].hand, results[j].hand)
	})

	set := WinnerSet{Standings: make([]Standing, len(order))}
	top := results[order[0]].hand
	place := 1
	for pos, idx := range order {
		if pos > 0 && CompareRanks(results[order[pos-1]].hand, results[idx].hand) != 0 {
			place = pos + 1
		}
		set.Standings[pos] = Standing{Place: place, PlayerID: players[idx].ID, Result: results[idx]}

		if CompareRanks(results[idx].hand, top) != 0 {
			continue
		}
		set.Winners = append(set.Winners, Winner{
			PlayerID: players[idx].ID,
			BestFive: results[idx].BestFive,
			AllCards: slices.Clone(players[idx].Cards),
			Category: results[idx].Category,
			Strength: results[idx].Strength,
		})
	}
	set.WinCount = len(set.Winners)
	e.log.Debug("showdown resolved", "players", len(players), "winners", set.WinCount)
	return set, nil
}
