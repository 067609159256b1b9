package ai

import (
	"sort"
	"strings"

	"github.com/dfalcao/tempoclash/internal/game"
)

// MaxSubsetSize caps the combinatorial search: enumeration is O(2^deck)
// truncated by this constant, which keeps the worst case tractable. Callers
// wanting cheaper searches bound deck size or MaxCards, never interrupt.
const MaxSubsetSize = 3

// Budget constrains the opponent's action-set search for one turn.
type Budget struct {
	Energy   int `json:"energy"`
	Speed    int `json:"speed"`
	MinCards int `json:"min_cards"`
	MaxCards int `json:"max_cards"`
}

// Selection is one candidate card subset with its aggregate stats. Order
// within Cards preserves deck order; it matters only for display.
type Selection struct {
	Cards       []game.Card `json:"cards"`
	TotalSpeed  int         `json:"total_speed"`
	TotalCost   int         `json:"total_cost"`
	TotalDamage int         `json:"total_damage"`
	TotalBlock  int         `json:"total_block"`
	AttackCost  int         `json:"attack_cost"`
	DefenseCost int         `json:"defense_cost"`
	Score       int         `json:"score"`
}

// IDs returns the subset's card IDs in deck order.
func (s Selection) IDs() []string {
	ids := make([]string, len(s.Cards))
	for i, c := range s.Cards {
		ids[i] = c.ID
	}
	return ids
}

func (s Selection) key() string { return strings.Join(s.IDs(), ",") }

// ChooseActionSet searches the opponent's deck for the best card subset
// under the given budgets and mode. Pure and deterministic: all randomness
// lives in the mode draw, never here. Internally inconsistent budgets
// (negative energy or speed) yield an empty selection rather than an error.
func ChooseActionSet(deck []game.Card, b Budget, mode Mode) Selection {
	if len(deck) == 0 || b.Energy < 0 || b.Speed < 0 {
		return Selection{}
	}
	maxCards := b.MaxCards
	if maxCards <= 0 || maxCards > MaxSubsetSize {
		maxCards = MaxSubsetSize
	}
	minCards := b.MinCards
	if minCards < 1 {
		minCards = 1
	}

	feasible := make([]Selection, 0, 32)
	for _, subset := range combinations(deck, maxCards) {
		sel := summarize(subset)
		if sel.TotalSpeed > b.Speed || sel.TotalCost > b.Energy {
			continue
		}
		if len(sel.Cards) < minCards {
			continue
		}
		sel.Score = score(sel, mode)
		feasible = append(feasible, sel)
	}

	if len(feasible) == 0 {
		return cheapestSingle(deck, b)
	}

	sort.SliceStable(feasible, func(i, j int) bool { return rankBetter(feasible[i], feasible[j]) })

	for _, sel := range feasible {
		if meetsThreshold(sel, mode, b.Energy) {
			return sel
		}
	}
	// No subset satisfies the mode threshold: fall back to the best-ranked
	// feasible subset regardless of threshold.
	return feasible[0]
}

// combinations generates every non-empty subset of deck up to maxSize as an
// immutable snapshot, by recursive backtracking over indices.
func combinations(deck []game.Card, maxSize int) [][]game.Card {
	var out [][]game.Card
	var walk func(start int, current []game.Card)
	walk = func(start int, current []game.Card) {
		for i := start; i < len(deck); i++ {
			next := make([]game.Card, len(current)+1)
			copy(next, current)
			next[len(current)] = deck[i]
			out = append(out, next)
			if len(next) < maxSize {
				walk(i+1, next)
			}
		}
	}
	walk(0, nil)
	return out
}

func summarize(cards []game.Card) Selection {
	sel := Selection{Cards: cards}
	for _, c := range cards {
		sel.TotalSpeed += c.SpeedCost
		sel.TotalCost += c.ActionCost
		switch c.Type {
		case game.CardTypeAttack:
			sel.AttackCost += c.ActionCost
			sel.TotalDamage += c.Damage * c.HitCount()
		case game.CardTypeDefense, game.CardTypeGeneral:
			sel.DefenseCost += c.ActionCost
			sel.TotalBlock += c.Block
		}
	}
	return sel
}

// meetsThreshold is the mode-specific aggregate test: aggro wants at least
// half the energy budget spent on attacks, turtle the same for defense,
// balanced half the budget spent overall.
func meetsThreshold(sel Selection, mode Mode, energyBudget int) bool {
	switch mode {
	case ModeAggro:
		return sel.AttackCost*2 >= energyBudget
	case ModeTurtle:
		return sel.DefenseCost*2 >= energyBudget
	default:
		return sel.TotalCost*2 >= energyBudget
	}
}

func score(sel Selection, mode Mode) int {
	switch mode {
	case ModeAggro:
		return sel.AttackCost*10 + sel.TotalDamage - sel.TotalSpeed
	case ModeTurtle:
		return sel.DefenseCost*10 + sel.TotalBlock
	default:
		return sel.TotalDamage + sel.TotalBlock + sel.TotalCost
	}
}

// rankBetter is the deterministic total ranking over feasible subsets:
// longer subset wins, then higher score, then lower total speed, then lower
// total cost, then lexicographic id ordering.
func rankBetter(a, b Selection) bool {
	if len(a.Cards) != len(b.Cards) {
		return len(a.Cards) > len(b.Cards)
	}
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.TotalSpeed != b.TotalSpeed {
		return a.TotalSpeed < b.TotalSpeed
	}
	if a.TotalCost != b.TotalCost {
		return a.TotalCost < b.TotalCost
	}
	return a.key() < b.key()
}

// cheapestSingle is the last-resort fallback: the single lowest-cost card
// that fits both budgets, or an empty selection when none does.
func cheapestSingle(deck []game.Card, b Budget) Selection {
	best := Selection{}
	for _, c := range deck {
		if c.ActionCost > b.Energy || c.SpeedCost > b.Speed {
			continue
		}
		cand := summarize([]game.Card{c})
		if len(best.Cards) == 0 ||
			cand.TotalCost < best.TotalCost ||
			(cand.TotalCost == best.TotalCost && cand.TotalSpeed < best.TotalSpeed) ||
			(cand.TotalCost == best.TotalCost && cand.TotalSpeed == best.TotalSpeed && cand.key() < best.key()) {
			best = cand
		}
	}
	return best
}
