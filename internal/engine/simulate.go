package engine

import (
	"github.com/dfalcao/tempoclash/internal/game"
)

// SimulateTurn drives the resolver across a fixed timeline and aggregates
// the result. Iteration stops as soon as either side reaches 0 hp; the
// remaining entries are not applied. An empty timeline is a no-op returning
// the untouched initial values. Deterministic for identical inputs.
func SimulateTurn(timeline []game.TimelineEntry, player, opponent game.ActorState, playerOverdrive, opponentOverdrive bool) game.TurnOutcome {
	player.OverdriveActive = playerOverdrive
	opponent.OverdriveActive = opponentOverdrive

	out := game.TurnOutcome{PlayerHP: player.HP, OpponentHP: opponent.HP}
	for _, entry := range timeline {
		var res game.ActionResult
		switch entry.Actor {
		case game.ActorPlayer:
			player, opponent, res = Resolve(player, entry.Card, opponent)
			out.PlayerDealt += res.DamageDealt
			out.OpponentDealt += res.DamageTaken
		case game.ActorOpponent:
			opponent, player, res = Resolve(opponent, entry.Card, player)
			out.OpponentDealt += res.DamageDealt
			out.PlayerDealt += res.DamageTaken
		default:
			continue
		}
		for _, ev := range res.Events {
			out.Log = append(out.Log, ev.Text)
		}
		out.PlayerHP = player.HP
		out.OpponentHP = opponent.HP
		if player.HP <= 0 || opponent.HP <= 0 {
			break
		}
	}
	return out
}
