package service

import (
	"github.com/dfalcao/tempoclash/internal/catalog"
	"github.com/dfalcao/tempoclash/internal/engine"
	"github.com/dfalcao/tempoclash/internal/game"
)

// ComboReadout is the expected-payout answer for a tentative selection. It
// feeds the UI readout only; it never touches the damage path.
type ComboReadout struct {
	Combo      *game.ComboDescriptor `json:"combo,omitempty"`
	Multiplier float64               `json:"multiplier"`
	Steps      []string              `json:"steps,omitempty"`
}

// ComboPayout classifies a tentative selection and prices it against the
// run's current usage counts, including the optional bonuses and modifier
// chain supplied by the caller.
func ComboPayout(repo RunRepo, cat *catalog.Catalog, runUUID string, cardIDs []string, focus, momentum bool, chain []engine.Modifier) (*ComboReadout, error) {
	run, err := repo.GetRunByUUID(runUUID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, ErrRunNotFound
	}

	cards := cat.ResolveDeck(cardIDs)
	combo := engine.DetectCombo(cards)
	if combo == nil {
		return &ComboReadout{Multiplier: 1.0}, nil
	}

	usage := run.ComboUsage()
	final, steps := engine.ExplainMultiplier(engine.MultiplierRequest{
		Pattern:       combo.Name,
		CardCount:     len(cards),
		FocusBonus:    focus,
		MomentumBonus: momentum,
		Chain:         chain,
		UsageCount:    usage[string(combo.Name)],
	})
	return &ComboReadout{Combo: combo, Multiplier: final, Steps: steps}, nil
}
