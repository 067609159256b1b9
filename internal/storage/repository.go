package storage

import (
	"time"

	"github.com/dfalcao/tempoclash/internal/game"
)

type Repository interface {
	CreateRun(r *game.Run) error
	GetRunByUUID(uuid string) (*game.Run, error)
	UpdateRun(r *game.Run) error

	CreateBattle(b *game.Battle) error
	// GetActiveBattle returns the run's current undecided battle, or nil
	// when the run has none.
	GetActiveBattle(runID uint) (*game.Battle, error)
	UpdateBattle(b *game.Battle) error

	// UpdateStatsOnRunEnd records the run outcome on the player's profile.
	// It is a no-op for runs already counted.
	UpdateStatsOnRunEnd(r *game.Run, won bool) error
	GetTopProfiles(limit int) ([]game.PlayerProfile, error)

	// FindStaleRuns returns in-progress runs whose last activity is at or
	// before the provided cutoff. The caller decides how to resolve them.
	FindStaleRuns(cutoff time.Time) ([]game.Run, error)
}
