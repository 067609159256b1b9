package service

import (
	"math/rand"
	"strings"
	"time"

	"github.com/dfalcao/tempoclash/internal/ai"
	"github.com/dfalcao/tempoclash/internal/catalog"
	"github.com/dfalcao/tempoclash/internal/engine"
	"github.com/dfalcao/tempoclash/internal/game"
)

// SubmitTurn commits one full turn: the player's selected cards against an
// opponent action set drawn by the AI. The battle and run rows are updated
// with the simulation result. The random source drives only the AI mode
// draw; everything else is deterministic for the same draw.
func SubmitTurn(repo RunRepo, cat *catalog.Catalog, profiles map[string]ai.ModeWeights, runUUID string, cardIDs []string, playerOverdrive bool, rng *rand.Rand) (*TurnReport, error) {
	run, battle, err := loadActive(repo, runUUID)
	if err != nil {
		return nil, err
	}

	report, err := resolveTurn(cat, profiles, run, battle, cardIDs, playerOverdrive, rng)
	if err != nil {
		return nil, err
	}

	// Deflation bookkeeping: the usage map lives on the run row and counts
	// committed turns only (previews never touch it).
	if report.Combo != nil {
		usage := run.ComboUsage()
		usage[string(report.Combo.Name)]++
		run.SetComboUsage(usage)
	}

	run.HP = report.Outcome.PlayerHP
	run.TurnCount++
	run.LastActivity = time.Now()
	battle.EnemyHP = report.Outcome.OpponentHP
	battle.TurnCount++
	battle.LastTurnLog = strings.Join(report.Outcome.Log, "\n")

	switch {
	case report.Outcome.PlayerHP <= 0:
		battle.Status = game.BattleLost
		run.Status = game.StatusFinished
		if err := repo.UpdateStatsOnRunEnd(run, false); err != nil {
			return nil, err
		}
	case report.Outcome.OpponentHP <= 0:
		battle.Status = game.BattleWon
		units := battle.Units()
		for i := range units {
			units[i].Alive = false
		}
		battle.SetUnits(units)
	}
	report.BattleStatus = battle.Status
	report.RunStatus = run.Status

	if err := repo.UpdateBattle(battle); err != nil {
		return nil, err
	}
	if err := repo.UpdateRun(run); err != nil {
		return nil, err
	}
	return report, nil
}

func loadActive(repo RunRepo, runUUID string) (*game.Run, *game.Battle, error) {
	run, err := repo.GetRunByUUID(runUUID)
	if err != nil {
		return nil, nil, err
	}
	if run == nil {
		return nil, nil, ErrRunNotFound
	}
	if run.Status != game.StatusInProgress {
		return nil, nil, ErrRunNotInProgress
	}
	battle, err := repo.GetActiveBattle(run.ID)
	if err != nil {
		return nil, nil, err
	}
	if battle == nil {
		return nil, nil, ErrNoActiveBattle
	}
	return run, battle, nil
}

// resolveTurn performs the pure part of a turn: combo readout, AI action
// selection, timeline construction and simulation. It mutates only the
// battle's unit roster bookkeeping (least-recent-use counters).
func resolveTurn(cat *catalog.Catalog, profiles map[string]ai.ModeWeights, run *game.Run, battle *game.Battle, cardIDs []string, playerOverdrive bool, rng *rand.Rand) (*TurnReport, error) {
	playerCards, err := selectionFromDeck(cat, run.Deck(), cardIDs)
	if err != nil {
		return nil, err
	}

	report := &TurnReport{}

	report.Combo = engine.DetectCombo(playerCards)
	if report.Combo != nil {
		usage := run.ComboUsage()
		final, steps := engine.ExplainMultiplier(engine.MultiplierRequest{
			Pattern:    report.Combo.Name,
			CardCount:  len(playerCards),
			UsageCount: usage[string(report.Combo.Name)],
		})
		report.Multiplier = final
		report.MultiplierSteps = steps
	}

	weights, ok := profiles[battle.Profile]
	if !ok {
		weights = ai.DefaultWeights()
	}
	report.Mode = ai.PickMode(rng, weights)

	enemyDeck := cat.ResolveDeck(battle.Deck())
	budget := ai.Budget{
		Energy:   battle.EnergyBudget,
		Speed:    battle.SpeedBudget,
		MinCards: battle.MinCards,
		MaxCards: battle.MaxCards,
	}
	sel := ai.ChooseActionSet(enemyDeck, budget, report.Mode)
	report.EnemyCards = sel.Cards

	// Spread repeated enemy card ids across living units for display.
	roster := battle.Units()
	units := make([]ai.Unit, len(roster))
	seq := 0
	for i, u := range roster {
		units[i] = ai.Unit{Name: u.Name, Alive: u.Alive, LastUsed: u.LastUsed}
		if u.LastUsed > seq {
			seq = u.LastUsed
		}
	}
	report.Assignments, _ = ai.AssignUnits(sel.IDs(), units, seq)
	for i := range units {
		roster[i].LastUsed = units[i].LastUsed
	}
	battle.SetUnits(roster)

	player := game.ActorState{
		HP:            run.HP,
		MaxHP:         run.MaxHP,
		Strength:      run.Strength,
		Agility:       run.Agility,
		Vulnerability: run.Vulnerability,
	}
	enemy := game.ActorState{
		HP:            battle.EnemyHP,
		MaxHP:         battle.EnemyMaxHP,
		Strength:      battle.EnemyStrength,
		Agility:       battle.EnemyAgility,
		Vulnerability: battle.EnemyVulnerability,
	}

	timeline := engine.BuildTimeline(playerCards, sel.Cards, run.Agility, battle.EnemyAgility, engine.DefaultAgility)
	report.Outcome = engine.SimulateTurn(timeline, player, enemy, playerOverdrive, ai.ShouldOverdrive(battle.TurnCount, enemy))
	report.BattleStatus = battle.Status
	report.RunStatus = run.Status
	return report, nil
}
