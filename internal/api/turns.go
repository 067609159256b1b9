package api

import (
	"errors"
	"math/rand"
	"net/http"

	"github.com/dfalcao/tempoclash/internal/constants"
	"github.com/dfalcao/tempoclash/internal/engine"
	"github.com/dfalcao/tempoclash/internal/logging"
	"github.com/dfalcao/tempoclash/internal/service"

	"github.com/gin-gonic/gin"
)

type TurnRequest struct {
	Cards           []string `json:"cards"`
	PlayerOverdrive bool     `json:"player_overdrive"`
}

// newTurnRNG builds a fresh draw source for one committed turn. A *rand.Rand
// is not safe for concurrent use and handlers run in parallel, so each
// request gets its own; the top-level rand source used for seeding is locked.
// Previews use their own replayable seed inside the service.
func newTurnRNG() *rand.Rand {
	return rand.New(rand.NewSource(rand.Int63()))
}

// SubmitTurn commits one turn of the active battle.
func (h *GameHandler) SubmitTurn(c *gin.Context) {
	uuid := normalizeRunUUID(c.Param("runUUID"))
	if !runUUIDRegex.MatchString(uuid) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRunID})
		return
	}
	var req TurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	report, err := service.SubmitTurn(h.repo, h.catalog, h.profiles, uuid, req.Cards, req.PlayerOverdrive, newTurnRNG())
	if err != nil {
		h.writeTurnError(c, uuid, err, constants.ErrFailedSubmitTurn)
		return
	}
	logging.Debug("turn resolved", logging.Fields{
		constants.LogFieldRunUUID: uuid,
		constants.LogFieldMode:    string(report.Mode),
	})
	c.JSON(http.StatusOK, report)
}

// PreviewTurn answers a what-if readout without persisting anything.
func (h *GameHandler) PreviewTurn(c *gin.Context) {
	uuid := normalizeRunUUID(c.Param("runUUID"))
	if !runUUIDRegex.MatchString(uuid) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRunID})
		return
	}
	var req TurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	report, err := service.PreviewTurn(h.repo, h.catalog, h.profiles, uuid, req.Cards, req.PlayerOverdrive)
	if err != nil {
		h.writeTurnError(c, uuid, err, constants.ErrFailedPreviewTurn)
		return
	}
	c.JSON(http.StatusOK, report)
}

type ComboPreviewRequest struct {
	RunUUID  string            `json:"run_uuid"`
	Cards    []string          `json:"cards"`
	Focus    bool              `json:"focus"`
	Momentum bool              `json:"momentum"`
	Chain    []engine.Modifier `json:"chain"`
}

// ComboPreview classifies a tentative selection and explains its payout
// multiplier against the run's usage counts.
func (h *GameHandler) ComboPreview(c *gin.Context) {
	var req ComboPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	uuid := normalizeRunUUID(req.RunUUID)
	if !runUUIDRegex.MatchString(uuid) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRunID})
		return
	}
	readout, err := service.ComboPayout(h.repo, h.catalog, uuid, req.Cards, req.Focus, req.Momentum, req.Chain)
	if err != nil {
		if errors.Is(err, service.ErrRunNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRunNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedPreviewTurn})
		return
	}
	c.JSON(http.StatusOK, readout)
}

func (h *GameHandler) writeTurnError(c *gin.Context, uuid string, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrRunNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRunNotFound})
	case errors.Is(err, service.ErrRunNotInProgress):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrRunNotInProgress})
	case errors.Is(err, service.ErrNoActiveBattle):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
	case errors.Is(err, service.ErrCardNotInDeck):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrCardNotInDeck})
	default:
		logging.Error("turn failed", err, logging.Fields{constants.LogFieldRunUUID: uuid})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: fallback})
	}
}
