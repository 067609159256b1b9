package main

import (
	"time"

	"github.com/dfalcao/tempoclash/internal/logging"
	"github.com/dfalcao/tempoclash/internal/service"
	"github.com/dfalcao/tempoclash/internal/storage"
)

// startStaleRunSweeper periodically abandons runs idle beyond the TTL so
// they stop showing up as in-progress.
func startStaleRunSweeper(repo storage.Repository, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			cutoff := time.Now().Add(-ttl)
			runs, err := repo.FindStaleRuns(cutoff)
			if err != nil {
				logging.Error("stale run sweeper failed", err, nil)
				continue
			}
			for i := range runs {
				if err := service.HandleStaleRun(repo, &runs[i]); err != nil {
					logging.Error("failed to abandon stale run", err, logging.Fields{"run_uuid": runs[i].RunUUID})
				}
			}
		}
	}()
}
