package service

import (
	"errors"

	"github.com/dfalcao/tempoclash/internal/ai"
	"github.com/dfalcao/tempoclash/internal/catalog"
	"github.com/dfalcao/tempoclash/internal/game"
)

var (
	ErrRunNotFound      = errors.New("run not found")
	ErrRunNotInProgress = errors.New("run is not in progress")
	ErrNoActiveBattle   = errors.New("run has no active battle")
	ErrEnemyNotFound    = errors.New("unknown enemy")
	ErrDeckEmpty        = errors.New("deck resolves to no known cards")
	ErrCardNotInDeck    = errors.New("selected card is not in the run deck")
)

// RunRepo is the narrow persistence surface the service needs. The storage
// package's Repository satisfies it; tests provide mocks.
type RunRepo interface {
	CreateRun(*game.Run) error
	GetRunByUUID(string) (*game.Run, error)
	UpdateRun(*game.Run) error
	CreateBattle(*game.Battle) error
	GetActiveBattle(runID uint) (*game.Battle, error)
	UpdateBattle(*game.Battle) error
	UpdateStatsOnRunEnd(r *game.Run, won bool) error
}

// TurnReport is the aggregate answer to a submitted or previewed turn.
type TurnReport struct {
	Mode            ai.Mode               `json:"mode"`
	EnemyCards      []game.Card           `json:"enemy_cards"`
	Assignments     []ai.Assignment       `json:"assignments"`
	Outcome         game.TurnOutcome      `json:"outcome"`
	Combo           *game.ComboDescriptor `json:"combo,omitempty"`
	Multiplier      float64               `json:"multiplier"`
	MultiplierSteps []string              `json:"multiplier_steps,omitempty"`
	BattleStatus    string                `json:"battle_status"`
	RunStatus       string                `json:"run_status"`
}

// selectionFromDeck validates that every selected id is available in the
// deck (respecting duplicates) and resolves it through the catalog. Unknown
// ids are dropped by the catalog contract, never an error.
func selectionFromDeck(cat *catalog.Catalog, deck, selected []string) ([]game.Card, error) {
	available := make(map[string]int, len(deck))
	for _, id := range deck {
		available[id]++
	}
	for _, id := range selected {
		if available[id] <= 0 {
			return nil, ErrCardNotInDeck
		}
		available[id]--
	}
	return cat.ResolveDeck(selected), nil
}
