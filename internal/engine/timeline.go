package engine

import (
	"sort"

	"github.com/dfalcao/tempoclash/internal/game"
)

// AgilityFunc converts a card's base speed cost into its effective cost for
// an actor with the given agility. Supplied by the caller and treated as an
// opaque pure function.
type AgilityFunc func(baseCost, agility int) int

// DefaultAgility subtracts agility from the base cost, never going below 1.
func DefaultAgility(baseCost, agility int) int {
	eff := baseCost - agility
	if eff < 1 {
		eff = 1
	}
	return eff
}

// BuildTimeline merges both sides' chosen cards into one chronological
// sequence ordered by accumulated effective speed. Ties resolve player
// before opponent, then original draw order, so the ordering is total and
// replays are deterministic. Pure: no I/O, no randomness.
func BuildTimeline(playerCards, opponentCards []game.Card, playerAgility, opponentAgility int, adjust AgilityFunc) []game.TimelineEntry {
	if adjust == nil {
		adjust = DefaultAgility
	}
	entries := make([]game.TimelineEntry, 0, len(playerCards)+len(opponentCards))

	appendSide := func(cards []game.Card, actor game.Actor, agility int) {
		total := 0
		for i, c := range cards {
			total += adjust(c.SpeedCost, agility)
			entries = append(entries, game.TimelineEntry{
				Actor:           actor,
				Card:            c,
				CumulativeSpeed: total,
				OriginalIndex:   i,
				PriorityWeight:  actor.PriorityWeight(),
			})
		}
	}
	appendSide(playerCards, game.ActorPlayer, playerAgility)
	appendSide(opponentCards, game.ActorOpponent, opponentAgility)

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.CumulativeSpeed != b.CumulativeSpeed {
			return a.CumulativeSpeed < b.CumulativeSpeed
		}
		if a.PriorityWeight != b.PriorityWeight {
			return a.PriorityWeight < b.PriorityWeight
		}
		return a.OriginalIndex < b.OriginalIndex
	})
	return entries
}
