package engine

import (
	"math"
	"strconv"

	"github.com/dfalcao/tempoclash/internal/game"
)

// Resolve applies one card played by the actor against the opposing side.
// States are passed and returned by value so a preview and a committed turn
// can never alias each other; the caller decides what to keep.
func Resolve(actor game.ActorState, card game.Card, opponent game.ActorState) (game.ActorState, game.ActorState, game.ActionResult) {
	switch card.Type {
	case game.CardTypeDefense, game.CardTypeGeneral:
		return resolveGuard(actor, card, opponent)
	case game.CardTypeAttack:
		return resolveAttack(actor, card, opponent)
	default:
		// Unrecognized card types are a zero-effect result, not an error.
		res := game.ActionResult{Events: []game.Event{{Kind: game.ResultNone, Text: card.Name + " has no effect"}}}
		return actor, opponent, res
	}
}

func resolveGuard(actor game.ActorState, card game.Card, opponent game.ActorState) (game.ActorState, game.ActorState, game.ActionResult) {
	gain := card.Block + actor.Strength
	if gain < 0 {
		gain = 0
	}
	actor.Block += gain
	actor.IsDefending = true
	if card.Counter > 0 {
		// Counters overwrite; they do not stack.
		actor.CounterValue = card.Counter
	}
	text := card.Name + ": +" + strconv.Itoa(gain) + " block"
	if card.Counter > 0 {
		text += ", counter " + strconv.Itoa(card.Counter)
	}
	res := game.ActionResult{Events: []game.Event{{Kind: game.ResultGuard, Amount: gain, Text: text}}}
	return actor, opponent, res
}

func resolveAttack(actor game.ActorState, card game.Card, opponent game.ActorState) (game.ActorState, game.ActorState, game.ActionResult) {
	res := game.ActionResult{Events: make([]game.Event, 0, card.HitCount())}
	for hit := 0; hit < card.HitCount(); hit++ {
		raw := card.Damage + actor.Strength
		if raw < 0 {
			raw = 0
		}
		if actor.OverdriveActive {
			raw *= 2
		}

		if opponent.IsDefending && opponent.Block > 0 {
			// Crush doubles the value used for block absorption only; any
			// overflow is applied to HP as-is, without dividing the
			// multiplier back out.
			eff := raw
			if card.HasTrait(game.TraitCrush) {
				eff = raw * 2
			}
			if eff < opponent.Block {
				opponent.Block -= eff
				res.Events = append(res.Events, game.Event{
					Kind: game.ResultBlocked,
					Text: card.Name + ": blocked, " + strconv.Itoa(eff) + " absorbed (" + strconv.Itoa(opponent.Block) + " block left)",
				})
				continue
			}
			remainder := eff - opponent.Block
			opponent.Block = 0
			final := int(math.Floor(float64(remainder) * opponent.VulnMult()))
			opponent.HP -= final
			opponent.ClampHP()
			res.DamageDealt += final
			res.Events = append(res.Events, game.Event{
				Kind:   game.ResultPierce,
				Amount: final,
				Text:   card.Name + ": pierces block for " + strconv.Itoa(final) + " damage",
			})
			actor, res = applyCounter(actor, opponent, final, res)
			continue
		}

		final := int(math.Floor(float64(raw) * opponent.VulnMult()))
		opponent.HP -= final
		opponent.ClampHP()
		res.DamageDealt += final
		res.Events = append(res.Events, game.Event{
			Kind:   game.ResultHit,
			Amount: final,
			Text:   card.Name + ": hits for " + strconv.Itoa(final) + " damage",
		})
		actor, res = applyCounter(actor, opponent, final, res)
	}
	return actor, opponent, res
}

// applyCounter retaliates against the attacker when a hit landed for more
// than zero damage. Fully blocked hits never trigger counters.
func applyCounter(actor game.ActorState, opponent game.ActorState, finalDamage int, res game.ActionResult) (game.ActorState, game.ActionResult) {
	if opponent.CounterValue <= 0 || finalDamage <= 0 {
		return actor, res
	}
	actor.HP -= opponent.CounterValue
	actor.ClampHP()
	res.DamageTaken += opponent.CounterValue
	res.Events = append(res.Events, game.Event{
		Kind:   game.ResultHit,
		Amount: opponent.CounterValue,
		Text:   "counter strikes back for " + strconv.Itoa(opponent.CounterValue) + " damage",
	})
	return actor, res
}
