package service

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dfalcao/tempoclash/internal/catalog"
	"github.com/dfalcao/tempoclash/internal/game"
)

type mockRepo struct {
	run    *game.Run
	battle *game.Battle

	createdRuns    int
	createdBattles int
	updatedRuns    int
	updatedBattles int
	statsCalls     int
	statsWon       bool

	failOn string
}

func (m *mockRepo) fail(op string) error {
	if m.failOn == op {
		return errors.New("forced " + op + " failure")
	}
	return nil
}

func (m *mockRepo) CreateRun(r *game.Run) error {
	if err := m.fail("CreateRun"); err != nil {
		return err
	}
	m.createdRuns++
	r.ID = 1
	m.run = r
	return nil
}

func (m *mockRepo) GetRunByUUID(uuid string) (*game.Run, error) {
	if err := m.fail("GetRunByUUID"); err != nil {
		return nil, err
	}
	if m.run == nil || m.run.RunUUID != uuid {
		return nil, nil
	}
	return m.run, nil
}

func (m *mockRepo) UpdateRun(*game.Run) error {
	if err := m.fail("UpdateRun"); err != nil {
		return err
	}
	m.updatedRuns++
	return nil
}

func (m *mockRepo) CreateBattle(b *game.Battle) error {
	if err := m.fail("CreateBattle"); err != nil {
		return err
	}
	m.createdBattles++
	b.ID = 1
	m.battle = b
	return nil
}

func (m *mockRepo) GetActiveBattle(runID uint) (*game.Battle, error) {
	if err := m.fail("GetActiveBattle"); err != nil {
		return nil, err
	}
	if m.battle == nil || m.battle.RunID != runID || m.battle.Status != game.BattleActive {
		return nil, nil
	}
	return m.battle, nil
}

func (m *mockRepo) UpdateBattle(*game.Battle) error {
	if err := m.fail("UpdateBattle"); err != nil {
		return err
	}
	m.updatedBattles++
	return nil
}

func (m *mockRepo) UpdateStatsOnRunEnd(r *game.Run, won bool) error {
	if err := m.fail("UpdateStatsOnRunEnd"); err != nil {
		return err
	}
	m.statsCalls++
	m.statsWon = won
	return nil
}

func testCatalog() *catalog.Catalog {
	return catalog.New([]game.Card{
		{ID: "strike", Name: "Strike", Type: game.CardTypeAttack, Damage: 6, SpeedCost: 2, ActionCost: 1, Value: 1},
		{ID: "finisher", Name: "Finisher", Type: game.CardTypeAttack, Damage: 50, SpeedCost: 2, ActionCost: 2, Value: 3},
		{ID: "guard", Name: "Guard", Type: game.CardTypeDefense, Block: 5, SpeedCost: 2, ActionCost: 1, Value: 2},
		{ID: "ejab", Name: "Jab", Type: game.CardTypeAttack, Damage: 10, SpeedCost: 1, ActionCost: 1, Value: 1},
	})
}

func activeFixture(playerHP int, playerDeck []string, enemyHP int) (*mockRepo, *game.Run, *game.Battle) {
	run := &game.Run{RunUUID: "run-1", PlayerName: "tester", HP: playerHP, MaxHP: 80, Status: game.StatusInProgress}
	run.ID = 1
	run.SetDeck(playerDeck)

	battle := &game.Battle{
		RunID:        1,
		EnemyName:    "Bandit",
		EnemyHP:      enemyHP,
		EnemyMaxHP:   enemyHP,
		Status:       game.BattleActive,
		EnergyBudget: 6,
		SpeedBudget:  12,
		MaxCards:     3,
	}
	battle.ID = 1
	battle.SetDeck([]string{"ejab"})
	battle.SetUnits([]game.BattleUnit{{Name: "Bandit", Alive: true}})

	return &mockRepo{run: run, battle: battle}, run, battle
}

func TestStartRun_PersistsResolvedDeck(t *testing.T) {
	repo := &mockRepo{}
	run, err := StartRun(repo, testCatalog(), "tester", []string{"strike", "bogus", "guard"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.createdRuns != 1 {
		t.Fatalf("expected one created run, got %d", repo.createdRuns)
	}
	if run.RunUUID == "" {
		t.Fatal("expected a generated run uuid")
	}
	if run.HP != 80 || run.MaxHP != 80 {
		t.Fatalf("expected default hp 80/80, got %d/%d", run.HP, run.MaxHP)
	}
	if got := run.Deck(); !reflect.DeepEqual(got, []string{"strike", "guard"}) {
		t.Fatalf("unknown ids must be dropped, got %v", got)
	}
	if run.Status != game.StatusInProgress {
		t.Fatalf("expected in_progress, got %s", run.Status)
	}
}

func TestStartRun_RefusesEmptyDeck(t *testing.T) {
	repo := &mockRepo{}
	if _, err := StartRun(repo, testCatalog(), "tester", []string{"bogus"}); !errors.Is(err, ErrDeckEmpty) {
		t.Fatalf("expected ErrDeckEmpty, got %v", err)
	}
	if repo.createdRuns != 0 {
		t.Fatal("nothing must be persisted on refusal")
	}
}

func TestStartBattle_AppliesDefaults(t *testing.T) {
	run := &game.Run{RunUUID: "run-1", Status: game.StatusInProgress}
	run.ID = 1
	repo := &mockRepo{run: run}

	enemy := game.EnemyDef{Name: "Bandit", HitPoints: 30, Profile: "cutthroat", Deck: []string{"ejab"}}
	b, err := StartBattle(repo, enemy, "run-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.EnergyBudget != 6 || b.SpeedBudget != 12 || b.MaxCards != 3 {
		t.Fatalf("expected budget defaults 6/12/3, got %d/%d/%d", b.EnergyBudget, b.SpeedBudget, b.MaxCards)
	}
	units := b.Units()
	if len(units) != 1 || units[0].Name != "Bandit" || !units[0].Alive {
		t.Fatalf("single-body enemies get a one-unit roster, got %+v", units)
	}
	if repo.createdBattles != 1 || repo.updatedRuns != 1 {
		t.Fatalf("expected battle created and run touched, got %d/%d", repo.createdBattles, repo.updatedRuns)
	}
}

func TestStartBattle_MultiUnitRoster(t *testing.T) {
	run := &game.Run{RunUUID: "run-1", Status: game.StatusInProgress}
	run.ID = 1
	repo := &mockRepo{run: run}

	enemy := game.EnemyDef{Name: "Twins", HitPoints: 30, Units: []string{"Left Jackal", "Right Jackal"}}
	b, err := StartBattle(repo, enemy, "run-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	units := b.Units()
	if len(units) != 2 || units[0].Name != "Left Jackal" || units[1].Name != "Right Jackal" {
		t.Fatalf("expected the configured roster, got %+v", units)
	}
}

func TestStartBattle_RunStateErrors(t *testing.T) {
	repo := &mockRepo{}
	if _, err := StartBattle(repo, game.EnemyDef{Name: "Bandit"}, "missing"); !errors.Is(err, ErrRunNotFound) {
		t.Fatalf("expected ErrRunNotFound, got %v", err)
	}

	done := &game.Run{RunUUID: "run-1", Status: game.StatusFinished}
	done.ID = 1
	repo = &mockRepo{run: done}
	if _, err := StartBattle(repo, game.EnemyDef{Name: "Bandit"}, "run-1"); !errors.Is(err, ErrRunNotInProgress) {
		t.Fatalf("expected ErrRunNotInProgress, got %v", err)
	}
}

func TestSubmitTurn_PersistsOutcome(t *testing.T) {
	repo, run, battle := activeFixture(80, []string{"strike", "strike"}, 60)

	report, err := SubmitTurn(repo, testCatalog(), nil, "run-1", []string{"strike", "strike"}, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Both strikes land, the enemy jab lands once.
	if report.Outcome.OpponentHP != 48 {
		t.Fatalf("expected enemy hp 48, got %d", report.Outcome.OpponentHP)
	}
	if report.Outcome.PlayerHP != 70 {
		t.Fatalf("expected player hp 70, got %d", report.Outcome.PlayerHP)
	}
	if run.HP != 70 || battle.EnemyHP != 48 {
		t.Fatalf("rows must track the outcome, got run %d battle %d", run.HP, battle.EnemyHP)
	}
	if run.TurnCount != 1 || battle.TurnCount != 1 {
		t.Fatalf("turn counters must advance, got %d/%d", run.TurnCount, battle.TurnCount)
	}
	if battle.LastTurnLog == "" {
		t.Fatal("expected the turn log to be recorded")
	}
	if repo.updatedRuns != 1 || repo.updatedBattles != 1 {
		t.Fatalf("expected one update each, got %d/%d", repo.updatedRuns, repo.updatedBattles)
	}
}

func TestSubmitTurn_ComboUsageIncrements(t *testing.T) {
	repo, run, _ := activeFixture(80, []string{"strike", "strike"}, 60)

	report, err := SubmitTurn(repo, testCatalog(), nil, "run-1", []string{"strike", "strike"}, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Combo == nil || report.Combo.Name != game.ComboPair {
		t.Fatalf("two equal-value cards must read as a pair, got %+v", report.Combo)
	}
	if report.Multiplier != 1.5 {
		t.Fatalf("first pair of the run must price at 1.5, got %v", report.Multiplier)
	}
	if got := run.ComboUsage()["pair"]; got != 1 {
		t.Fatalf("usage counter must advance to 1, got %d", got)
	}
}

func TestSubmitTurn_WinMarksBattleAndUnits(t *testing.T) {
	repo, run, battle := activeFixture(80, []string{"finisher"}, 5)

	report, err := SubmitTurn(repo, testCatalog(), nil, "run-1", []string{"finisher"}, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.BattleStatus != game.BattleWon {
		t.Fatalf("expected battle won, got %s", report.BattleStatus)
	}
	if run.Status != game.StatusInProgress {
		t.Fatalf("a won battle must not end the run, got %s", run.Status)
	}
	for _, u := range battle.Units() {
		if u.Alive {
			t.Fatalf("all units must be dead after a win, got %+v", u)
		}
	}
	if repo.statsCalls != 0 {
		t.Fatal("stats are settled on run end, not per battle")
	}
}

func TestSubmitTurn_LossFinishesRun(t *testing.T) {
	// The enemy jab is faster than the strike and lethal at 5 hp.
	repo, run, battle := activeFixture(5, []string{"strike"}, 60)

	report, err := SubmitTurn(repo, testCatalog(), nil, "run-1", []string{"strike"}, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Outcome.PlayerHP != 0 {
		t.Fatalf("expected player down, got %d", report.Outcome.PlayerHP)
	}
	if battle.Status != game.BattleLost || run.Status != game.StatusFinished {
		t.Fatalf("expected lost/finished, got %s/%s", battle.Status, run.Status)
	}
	if repo.statsCalls != 1 || repo.statsWon {
		t.Fatalf("expected one losing stats settlement, got calls=%d won=%v", repo.statsCalls, repo.statsWon)
	}
	// The player's slower strike never happened.
	if report.Outcome.PlayerDealt != 0 {
		t.Fatalf("downed player must not act, dealt %d", report.Outcome.PlayerDealt)
	}
}

func TestSubmitTurn_StateErrors(t *testing.T) {
	repo := &mockRepo{}
	if _, err := SubmitTurn(repo, testCatalog(), nil, "missing", nil, false, nil); !errors.Is(err, ErrRunNotFound) {
		t.Fatalf("expected ErrRunNotFound, got %v", err)
	}

	run := &game.Run{RunUUID: "run-1", Status: game.StatusInProgress}
	run.ID = 1
	repo = &mockRepo{run: run}
	if _, err := SubmitTurn(repo, testCatalog(), nil, "run-1", nil, false, nil); !errors.Is(err, ErrNoActiveBattle) {
		t.Fatalf("expected ErrNoActiveBattle, got %v", err)
	}

	repo, _, _ = activeFixture(80, []string{"strike"}, 60)
	if _, err := SubmitTurn(repo, testCatalog(), nil, "run-1", []string{"guard"}, false, nil); !errors.Is(err, ErrCardNotInDeck) {
		t.Fatalf("expected ErrCardNotInDeck, got %v", err)
	}
	if _, err := SubmitTurn(repo, testCatalog(), nil, "run-1", []string{"strike", "strike"}, false, nil); !errors.Is(err, ErrCardNotInDeck) {
		t.Fatalf("duplicates beyond the deck copy must be refused, got %v", err)
	}
}

func TestSubmitTurn_RepoFailurePropagates(t *testing.T) {
	repo, _, _ := activeFixture(80, []string{"strike"}, 60)
	repo.failOn = "UpdateBattle"

	if _, err := SubmitTurn(repo, testCatalog(), nil, "run-1", []string{"strike"}, false, nil); err == nil {
		t.Fatal("expected the storage failure to surface")
	}
	if repo.updatedRuns != 0 {
		t.Fatal("the run update must not happen after a failed battle update")
	}
}

func TestPreviewTurn_DoesNotPersist(t *testing.T) {
	repo, run, battle := activeFixture(80, []string{"strike", "strike"}, 60)

	report, err := PreviewTurn(repo, testCatalog(), nil, "run-1", []string{"strike"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report == nil || report.Outcome.OpponentHP >= 60 && report.Outcome.PlayerHP >= 80 {
		t.Fatalf("expected a simulated outcome, got %+v", report)
	}
	if repo.updatedRuns != 0 || repo.updatedBattles != 0 || repo.statsCalls != 0 {
		t.Fatal("previews must not persist anything")
	}
	if run.TurnCount != 0 || battle.TurnCount != 0 || run.HP != 80 || battle.EnemyHP != 60 {
		t.Fatal("previews must not advance game state")
	}
	if len(run.ComboUsage()) != 0 {
		t.Fatal("previews must not touch usage counters")
	}
}

func TestPreviewTurn_Deterministic(t *testing.T) {
	repo, _, _ := activeFixture(80, []string{"strike", "strike"}, 60)

	first, err := PreviewTurn(repo, testCatalog(), nil, "run-1", []string{"strike", "strike"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := PreviewTurn(repo, testCatalog(), nil, "run-1", []string{"strike", "strike"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same run and turn must preview identically:\n%+v\n%+v", first, second)
	}
}

func TestHandleStaleRun(t *testing.T) {
	run := &game.Run{RunUUID: "run-1", Status: game.StatusInProgress}
	run.ID = 1
	repo := &mockRepo{run: run}

	if err := HandleStaleRun(repo, run); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run.Status != game.StatusAbandoned {
		t.Fatalf("expected abandoned, got %s", run.Status)
	}
	if repo.updatedRuns != 1 {
		t.Fatalf("expected one persisted update, got %d", repo.updatedRuns)
	}

	// Already-settled runs are left alone.
	done := &game.Run{RunUUID: "run-2", Status: game.StatusFinished}
	if err := HandleStaleRun(repo, done); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if done.Status != game.StatusFinished || repo.updatedRuns != 1 {
		t.Fatal("finished runs must not be swept")
	}
}

func TestComboPayout_NoPatternIsNeutral(t *testing.T) {
	repo, _, _ := activeFixture(80, []string{"strike", "guard"}, 60)

	readout, err := ComboPayout(repo, testCatalog(), "run-1", []string{"strike", "guard"}, false, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if readout.Combo != nil || readout.Multiplier != 1.0 {
		t.Fatalf("distinct values must price neutral, got %+v", readout)
	}
}

func TestComboPayout_UsesRunUsage(t *testing.T) {
	repo, run, _ := activeFixture(80, []string{"strike", "strike"}, 60)
	run.SetComboUsage(map[string]int{"pair": 1})

	readout, err := ComboPayout(repo, testCatalog(), "run-1", []string{"strike", "strike"}, false, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if readout.Combo == nil || readout.Combo.Name != game.ComboPair {
		t.Fatalf("expected a pair readout, got %+v", readout)
	}
	if readout.Multiplier != 0.75 {
		t.Fatalf("expected deflated 1.5*0.5 = 0.75, got %v", readout.Multiplier)
	}
	if len(readout.Steps) == 0 {
		t.Fatal("expected step descriptions")
	}
}
