package service

import (
	"time"

	"github.com/dfalcao/tempoclash/internal/game"
)

// HandleStaleRun finishes a run abandoned beyond the inactivity TTL. The
// run does not count toward profile stats; it simply stops being sweepable.
func HandleStaleRun(repo RunRepo, run *game.Run) error {
	if run == nil || run.Status != game.StatusInProgress {
		return nil
	}
	run.Status = game.StatusAbandoned
	run.LastActivity = time.Now()
	return repo.UpdateRun(run)
}
