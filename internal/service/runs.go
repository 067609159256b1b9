package service

import (
	"time"

	"github.com/dfalcao/tempoclash/internal/ai"
	"github.com/dfalcao/tempoclash/internal/catalog"
	"github.com/dfalcao/tempoclash/internal/game"

	"github.com/google/uuid"
)

const (
	defaultRunHP       = 80
	defaultEnergy      = 6
	defaultSpeedBudget = 12
)

// StartRun creates a new persisted run for the player with the given deck.
// Unknown card ids are dropped; a deck that resolves to nothing is refused.
func StartRun(repo RunRepo, cat *catalog.Catalog, playerName string, deckIDs []string) (*game.Run, error) {
	resolved := cat.ResolveDeck(deckIDs)
	if len(resolved) == 0 {
		return nil, ErrDeckEmpty
	}
	kept := make([]string, len(resolved))
	for i, c := range resolved {
		kept[i] = c.ID
	}

	run := &game.Run{
		RunUUID:      uuid.NewString(),
		PlayerName:   playerName,
		HP:           defaultRunHP,
		MaxHP:        defaultRunHP,
		Status:       game.StatusInProgress,
		LastActivity: time.Now(),
	}
	run.SetDeck(kept)
	if err := repo.CreateRun(run); err != nil {
		return nil, err
	}
	return run, nil
}

// StartBattle opens an encounter against the named enemy archetype. Any
// previous undecided battle stays untouched; callers are expected to finish
// one battle before opening the next.
func StartBattle(repo RunRepo, enemy game.EnemyDef, runUUID string) (*game.Battle, error) {
	run, err := repo.GetRunByUUID(runUUID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, ErrRunNotFound
	}
	if run.Status != game.StatusInProgress {
		return nil, ErrRunNotInProgress
	}

	b := &game.Battle{
		RunID:         run.ID,
		EnemyName:     enemy.Name,
		EnemyHP:       enemy.HitPoints,
		EnemyMaxHP:    enemy.HitPoints,
		EnemyStrength: enemy.Strength,
		EnemyAgility:  enemy.Agility,
		Profile:       enemy.Profile,
		Status:        game.BattleActive,
		EnergyBudget:  enemy.Energy,
		SpeedBudget:   enemy.SpeedBudget,
		MinCards:      enemy.MinCards,
		MaxCards:      enemy.MaxCards,
	}
	if b.EnergyBudget <= 0 {
		b.EnergyBudget = defaultEnergy
	}
	if b.SpeedBudget <= 0 {
		b.SpeedBudget = defaultSpeedBudget
	}
	if b.MaxCards <= 0 || b.MaxCards > ai.MaxSubsetSize {
		b.MaxCards = ai.MaxSubsetSize
	}
	b.SetDeck(enemy.Deck)

	units := enemy.Units
	if len(units) == 0 {
		units = []string{enemy.Name}
	}
	roster := make([]game.BattleUnit, len(units))
	for i, name := range units {
		roster[i] = game.BattleUnit{Name: name, Alive: true}
	}
	b.SetUnits(roster)

	if err := repo.CreateBattle(b); err != nil {
		return nil, err
	}
	run.LastActivity = time.Now()
	if err := repo.UpdateRun(run); err != nil {
		return nil, err
	}
	return b, nil
}
