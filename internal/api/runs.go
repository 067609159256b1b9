package api

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/dfalcao/tempoclash/internal/constants"
	"github.com/dfalcao/tempoclash/internal/logging"
	"github.com/dfalcao/tempoclash/internal/service"

	"github.com/gin-gonic/gin"
)

type CreateRunRequest struct {
	PlayerName string   `json:"player_name"`
	Deck       []string `json:"deck"`
}

var runUUIDRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

func normalizeRunUUID(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CreateRun starts a new run for the named player with the given deck.
func (h *GameHandler) CreateRun(c *gin.Context) {
	var req CreateRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if strings.TrimSpace(req.PlayerName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	run, err := service.StartRun(h.repo, h.catalog, strings.TrimSpace(req.PlayerName), req.Deck)
	if err != nil {
		if errors.Is(err, service.ErrDeckEmpty) {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrDeckEmpty})
			return
		}
		logging.Error("failed to create run", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateRun})
		return
	}
	logging.Info("run created", logging.Fields{constants.LogFieldRunUUID: run.RunUUID})
	c.JSON(http.StatusCreated, run)
}

// GetRun returns a run and its active battle, when one exists.
func (h *GameHandler) GetRun(c *gin.Context) {
	uuid := normalizeRunUUID(c.Param("runUUID"))
	if !runUUIDRegex.MatchString(uuid) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRunID})
		return
	}
	run, err := h.repo.GetRunByUUID(uuid)
	if err != nil || run == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRunNotFound})
		return
	}
	battle, err := h.repo.GetActiveBattle(run.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrRunNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{"run": run, "battle": battle})
}

type StartBattleRequest struct {
	Enemy string `json:"enemy"`
}

// StartBattle opens an encounter against a configured enemy archetype.
func (h *GameHandler) StartBattle(c *gin.Context) {
	uuid := normalizeRunUUID(c.Param("runUUID"))
	if !runUUIDRegex.MatchString(uuid) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRunID})
		return
	}
	var req StartBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	enemy, ok := h.cfg.EnemyByName(req.Enemy)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrEnemyNotFound})
		return
	}
	battle, err := service.StartBattle(h.repo, enemy, uuid)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRunNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRunNotFound})
		case errors.Is(err, service.ErrRunNotInProgress):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrRunNotInProgress})
		default:
			logging.Error("failed to start battle", err, logging.Fields{constants.LogFieldRunUUID: uuid, constants.LogFieldEnemy: req.Enemy})
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdateRun})
		}
		return
	}
	logging.Info("battle started", logging.Fields{constants.LogFieldRunUUID: uuid, constants.LogFieldEnemy: battle.EnemyName})
	c.JSON(http.StatusCreated, battle)
}
