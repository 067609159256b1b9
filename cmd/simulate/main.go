// Command simulate is the batch analytics harness: it drives the combat
// core through thousands of seeded battles and prints aggregate statistics.
// Given the same seed and configuration the output is bit-for-bit
// reproducible.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/dfalcao/tempoclash/internal/ai"
	"github.com/dfalcao/tempoclash/internal/catalog"
	"github.com/dfalcao/tempoclash/internal/config"
	"github.com/dfalcao/tempoclash/internal/engine"
	"github.com/dfalcao/tempoclash/internal/game"
)

const maxTurnsPerBattle = 50

func main() {
	configPath := flag.String("config", "./tempoclash_config.json", "game configuration file")
	profilesPath := flag.String("profiles", "./ai_profiles.yaml", "AI tuning profiles file")
	enemyName := flag.String("enemy", "", "enemy archetype to fight (defaults to the first configured)")
	battles := flag.Int("battles", 1000, "number of battles to simulate")
	seed := flag.Int64("seed", 1, "random seed for the AI mode draws")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	profiles, err := config.LoadProfiles(*profilesPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "profiles:", err)
		os.Exit(1)
	}
	if len(cfg.Enemies) == 0 {
		fmt.Fprintln(os.Stderr, "config has no enemies")
		os.Exit(1)
	}
	enemy := cfg.Enemies[0]
	if *enemyName != "" {
		e, ok := cfg.EnemyByName(*enemyName)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown enemy %q\n", *enemyName)
			os.Exit(1)
		}
		enemy = e
	}

	cat := catalog.New(cfg.Cards)
	rng := rand.New(rand.NewSource(*seed))
	stats := runBattles(cat, profiles, enemy, *battles, rng)
	stats.print(enemy.Name, *battles, *seed)
}

type aggregate struct {
	wins, losses, stalls int
	totalTurns           int
	playerDamage         int
	enemyDamage          int
	modeCounts           map[ai.Mode]int
}

func runBattles(cat *catalog.Catalog, profiles map[string]ai.ModeWeights, enemy game.EnemyDef, n int, rng *rand.Rand) aggregate {
	agg := aggregate{modeCounts: map[ai.Mode]int{}}
	playerDeck := cat.Cards()
	enemyDeck := cat.ResolveDeck(enemy.Deck)
	weights, ok := profiles[enemy.Profile]
	if !ok {
		weights = ai.DefaultWeights()
	}
	budget := ai.Budget{Energy: enemy.Energy, Speed: enemy.SpeedBudget, MinCards: enemy.MinCards, MaxCards: enemy.MaxCards}
	if budget.Energy <= 0 {
		budget.Energy = 6
	}
	if budget.Speed <= 0 {
		budget.Speed = 12
	}

	for b := 0; b < n; b++ {
		player := game.ActorState{HP: 80, MaxHP: 80}
		foe := game.ActorState{HP: enemy.HitPoints, MaxHP: enemy.HitPoints, Strength: enemy.Strength, Agility: enemy.Agility}

		turn := 0
		for ; turn < maxTurnsPerBattle; turn++ {
			mode := ai.PickMode(rng, weights)
			agg.modeCounts[mode]++
			enemySel := ai.ChooseActionSet(enemyDeck, budget, mode)
			// The scripted player plays a balanced hand from the full catalog.
			playerSel := ai.ChooseActionSet(playerDeck, budget, ai.ModeBalanced)

			timeline := engine.BuildTimeline(playerSel.Cards, enemySel.Cards, player.Agility, enemy.Agility, engine.DefaultAgility)
			out := engine.SimulateTurn(timeline, player, foe, false, ai.ShouldOverdrive(turn, foe))
			agg.playerDamage += out.PlayerDealt
			agg.enemyDamage += out.OpponentDealt
			player.HP = out.PlayerHP
			foe.HP = out.OpponentHP
			// Block and stances reset between turns; only hp carries over.
			player.Block, player.IsDefending, player.CounterValue = 0, false, 0
			foe.Block, foe.IsDefending, foe.CounterValue = 0, false, 0

			if player.HP <= 0 || foe.HP <= 0 {
				break
			}
		}
		agg.totalTurns += turn + 1
		switch {
		case foe.HP <= 0 && player.HP > 0:
			agg.wins++
		case player.HP <= 0:
			agg.losses++
		default:
			agg.stalls++
		}
	}
	return agg
}

func (a aggregate) print(enemy string, battles int, seed int64) {
	fmt.Printf("enemy=%s battles=%d seed=%d\n", enemy, battles, seed)
	fmt.Printf("wins=%d losses=%d stalls=%d\n", a.wins, a.losses, a.stalls)
	if battles > 0 {
		fmt.Printf("avg turns per battle: %.2f\n", float64(a.totalTurns)/float64(battles))
		fmt.Printf("avg player damage per battle: %.2f\n", float64(a.playerDamage)/float64(battles))
		fmt.Printf("avg enemy damage per battle: %.2f\n", float64(a.enemyDamage)/float64(battles))
	}
	fmt.Printf("mode draws: aggro=%d turtle=%d balanced=%d\n",
		a.modeCounts[ai.ModeAggro], a.modeCounts[ai.ModeTurtle], a.modeCounts[ai.ModeBalanced])
}
