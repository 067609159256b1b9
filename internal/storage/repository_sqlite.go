package storage

import (
	"errors"
	"time"

	"github.com/dfalcao/tempoclash/internal/game"

	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateRun(run *game.Run) error {
	return r.db.Create(run).Error
}

func (r *sqliteRepository) GetRunByUUID(uuid string) (*game.Run, error) {
	var run game.Run
	if err := r.db.Where("run_uuid = ?", uuid).First(&run).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}

func (r *sqliteRepository) UpdateRun(run *game.Run) error {
	return r.db.Save(run).Error
}

func (r *sqliteRepository) CreateBattle(b *game.Battle) error {
	return r.db.Create(b).Error
}

func (r *sqliteRepository) GetActiveBattle(runID uint) (*game.Battle, error) {
	var b game.Battle
	err := r.db.Where("run_id = ? AND status = ?", runID, game.BattleActive).
		Order("id DESC").First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *sqliteRepository) UpdateBattle(b *game.Battle) error {
	return r.db.Save(b).Error
}

func (r *sqliteRepository) UpdateStatsOnRunEnd(run *game.Run, won bool) error {
	if run.PlayerName == "" {
		return nil
	}
	var p game.PlayerProfile
	err := r.db.Where("player_name = ?", run.PlayerName).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		p = game.PlayerProfile{PlayerName: run.PlayerName}
	} else if err != nil {
		return err
	}
	p.Runs++
	if won {
		p.Wins++
	} else {
		p.Defeats++
	}
	return r.db.Save(&p).Error
}

func (r *sqliteRepository) GetTopProfiles(limit int) ([]game.PlayerProfile, error) {
	if limit <= 0 {
		limit = 10
	}
	var profiles []game.PlayerProfile
	err := r.db.Order("wins DESC, runs ASC, player_name ASC").Limit(limit).Find(&profiles).Error
	return profiles, err
}

func (r *sqliteRepository) FindStaleRuns(cutoff time.Time) ([]game.Run, error) {
	var runs []game.Run
	err := r.db.Where("status = ? AND last_activity <= ?", game.StatusInProgress, cutoff).Find(&runs).Error
	return runs, err
}
