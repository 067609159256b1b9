package service

import (
	"math/rand"

	"github.com/dfalcao/tempoclash/internal/ai"
	"github.com/dfalcao/tempoclash/internal/catalog"
	"github.com/dfalcao/tempoclash/internal/dedupe"
	"github.com/dfalcao/tempoclash/internal/keys"
)

// PreviewTurn computes the what-if outcome for a selection without
// persisting anything. The AI draw is seeded from the run and turn so the
// same preview request always answers the same way until a turn commits.
// Concurrent identical previews collapse into one computation.
func PreviewTurn(repo RunRepo, cat *catalog.Catalog, profiles map[string]ai.ModeWeights, runUUID string, cardIDs []string, playerOverdrive bool) (*TurnReport, error) {
	run, battle, err := loadActive(repo, runUUID)
	if err != nil {
		return nil, err
	}

	key := keys.SelectionKey(runUUID, battle.TurnCount, cardIDs)
	v, err, _ := dedupe.PreviewGroup.Do(key, func() (interface{}, error) {
		seed := int64(run.ID)<<16 | int64(battle.TurnCount)
		rng := rand.New(rand.NewSource(seed))
		report, err := resolveTurn(cat, profiles, run, battle, cardIDs, playerOverdrive, rng)
		if err != nil {
			return nil, err
		}
		return report, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*TurnReport), nil
}
