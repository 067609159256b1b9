package engine

import (
	"sort"

	"github.com/dfalcao/tempoclash/internal/game"
)

// DetectCombo classifies the currently selected cards into a named pattern
// by their shared combo value: two-of-a-kind is a pair, three a triple, and
// so on. The longest run wins; equal-length runs resolve to the higher
// value. Returns nil for empty input or when no pattern is present —
// defensive contract for UI callers.
func DetectCombo(cards []game.Card) *game.ComboDescriptor {
	if len(cards) < 2 {
		return nil
	}

	sorted := make([]game.Card, len(cards))
	copy(sorted, cards)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Value < sorted[j].Value })

	bestValue, bestLen := 0, 0
	runValue, runLen := sorted[0].Value, 0
	flush := func() {
		if runLen > bestLen || (runLen == bestLen && runValue > bestValue) {
			bestValue, bestLen = runValue, runLen
		}
	}
	for _, c := range sorted {
		if c.Value == runValue {
			runLen++
			continue
		}
		flush()
		runValue, runLen = c.Value, 1
	}
	flush()

	name, ok := patternForCount(bestLen)
	if !ok {
		return nil
	}
	matched := make([]game.Card, 0, bestLen)
	for _, c := range cards {
		if c.Value == bestValue {
			matched = append(matched, c)
		}
	}
	return &game.ComboDescriptor{Name: name, MatchedCards: matched}
}

func patternForCount(n int) (game.ComboPattern, bool) {
	switch {
	case n >= 5:
		return game.ComboQuint, true
	case n == 4:
		return game.ComboQuad, true
	case n == 3:
		return game.ComboTriple, true
	case n == 2:
		return game.ComboPair, true
	default:
		return "", false
	}
}
