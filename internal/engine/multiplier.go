package engine

import (
	"fmt"
	"math"

	"github.com/dfalcao/tempoclash/internal/game"
)

// DeflationBase is the decay applied per prior use of the same pattern
// within a run: effective = base × DeflationBase^usageCount.
const DeflationBase = 0.5

// LargeHandThreshold is the minimum selection size for large-hand modifiers
// to apply.
const LargeHandThreshold = 5

const (
	focusBonusPerCard   = 0.1
	momentumRatePerCard = 0.05
)

// ModifierKind selects how a chain modifier transforms the running value.
type ModifierKind string

const (
	// ModifierPerCardScale multiplies by (1 + Amount × cardCount).
	ModifierPerCardScale ModifierKind = "per_card_scale"
	// ModifierFlatPerCard adds Amount × cardCount.
	ModifierFlatPerCard ModifierKind = "flat_per_card"
	// ModifierLargeHand multiplies by Amount, only for selections of
	// LargeHandThreshold cards or more.
	ModifierLargeHand ModifierKind = "large_hand"
)

// Modifier is one step of the caller-supplied modifier chain. Chains are
// applied strictly in the order given — percentage stacking makes the order
// part of the contract.
type Modifier struct {
	Kind   ModifierKind `json:"kind"`
	Amount float64      `json:"amount"`
	Label  string       `json:"label"`
}

// MultiplierRequest carries everything needed to price a detected pattern.
// UsageCount comes from the caller-owned usage map; the engine holds no
// state between calls.
type MultiplierRequest struct {
	Pattern       game.ComboPattern `json:"pattern"`
	CardCount     int               `json:"card_count"`
	FocusBonus    bool              `json:"focus_bonus"`
	MomentumBonus bool              `json:"momentum_bonus"`
	Chain         []Modifier        `json:"chain"`
	UsageCount    int               `json:"usage_count"`
}

var baseMultipliers = map[game.ComboPattern]float64{
	game.ComboPair:   1.5,
	game.ComboTriple: 2.0,
	game.ComboQuad:   3.0,
	game.ComboQuint:  4.0,
}

// BaseMultiplier returns the per-pattern starting multiplier. Unknown
// patterns price at the neutral 1.0.
func BaseMultiplier(p game.ComboPattern) float64 {
	if m, ok := baseMultipliers[p]; ok {
		return m
	}
	return 1.0
}

// ComputeMultiplier prices a pattern through the optional bonuses, the
// ordered modifier chain, and repeated-use deflation.
func ComputeMultiplier(req MultiplierRequest) float64 {
	v, _ := multiplierSteps(req, false)
	return v
}

// ExplainMultiplier performs the identical computation as ComputeMultiplier
// and additionally returns one description per applied step with the value
// before and after it.
func ExplainMultiplier(req MultiplierRequest) (float64, []string) {
	return multiplierSteps(req, true)
}

// multiplierSteps is the single implementation behind both entry points, so
// the explained value can never drift from the computed one.
func multiplierSteps(req MultiplierRequest, explain bool) (float64, []string) {
	var steps []string
	note := func(format string, args ...interface{}) {
		if explain {
			steps = append(steps, fmt.Sprintf(format, args...))
		}
	}

	v := BaseMultiplier(req.Pattern)
	note("base %s: %.3f", string(req.Pattern), v)

	if req.FocusBonus {
		before := v
		v += focusBonusPerCard * float64(req.CardCount)
		note("focus bonus (+%.2f per card): %.3f -> %.3f", focusBonusPerCard, before, v)
	}
	if req.MomentumBonus {
		before := v
		v *= 1 + momentumRatePerCard*float64(req.CardCount)
		note("momentum bonus (x%.2f per card): %.3f -> %.3f", momentumRatePerCard, before, v)
	}

	for _, m := range req.Chain {
		before := v
		switch m.Kind {
		case ModifierPerCardScale:
			v *= 1 + m.Amount*float64(req.CardCount)
		case ModifierFlatPerCard:
			v += m.Amount * float64(req.CardCount)
		case ModifierLargeHand:
			if req.CardCount < LargeHandThreshold {
				note("%s: skipped (%d cards, needs %d)", modifierLabel(m), req.CardCount, LargeHandThreshold)
				continue
			}
			v *= m.Amount
		default:
			note("%s: unknown kind, skipped", modifierLabel(m))
			continue
		}
		note("%s: %.3f -> %.3f", modifierLabel(m), before, v)
	}

	if req.UsageCount > 0 {
		before := v
		v *= math.Pow(DeflationBase, float64(req.UsageCount))
		note("deflation (%.1f^%d): %.3f -> %.3f", DeflationBase, req.UsageCount, before, v)
	}
	return v, steps
}

func modifierLabel(m Modifier) string {
	if m.Label != "" {
		return m.Label
	}
	return string(m.Kind)
}
