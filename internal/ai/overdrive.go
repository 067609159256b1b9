package ai

import "github.com/dfalcao/tempoclash/internal/game"

// ShouldOverdrive reports whether the opponent enters overdrive this turn.
// The trigger is intentionally disabled: it always returns false, keeping
// the hook point in place without inventing activation conditions.
func ShouldOverdrive(turn int, enemy game.ActorState) bool {
	return false
}
