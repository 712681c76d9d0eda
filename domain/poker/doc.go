// Package poker implements poker hand evaluation: classifying up to five
// cards into a hand category, ordering classified hands, finding the best
// five-card hand in up to ten cards and resolving the winners of a showdown.
//
// # Core Types
//
// Card: a playing card with suit (1-4) and rank (2-14, Ace high).
//
// HandCategory: one of ten categories. Its value is the strength ordinal,
// 1 (Royal Flush) is the strongest and 10 (High Card) the weakest.
//
// ClassifiedHand: a category plus the rank-ordered cards that break ties.
//
// # Evaluation
//
// Classify applies an ordered rule table, first match wins. Compare orders
// classified hands by category, then rank by rank from the highest card,
// then by the suit of the highest card (Spade > Heart > Diamond > Club).
// BestHand searches every five-card subset with Compare and ResolveWinners
// collects every player whose hand matches the best one rank for rank,
// so equal hands split the pot whatever their suits.
//
// All functions are pure. Evaluator only adds a logger and a bound on how
// many players are evaluated concurrently.
package poker
