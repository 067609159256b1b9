package api

import (
	"net/http"

	"github.com/dfalcao/tempoclash/internal/constants"
	"github.com/dfalcao/tempoclash/internal/logging"

	"github.com/gin-gonic/gin"
)

// ListCards returns every card definition in configuration order.
func (h *GameHandler) ListCards(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Cards())
}

// ListEnemies returns the configured enemy roster.
func (h *GameHandler) ListEnemies(c *gin.Context) {
	c.JSON(http.StatusOK, h.cfg.Enemies)
}

// ListLeaderboard returns the top player profiles by wins.
func (h *GameHandler) ListLeaderboard(c *gin.Context) {
	profiles, err := h.repo.GetTopProfiles(10)
	if err != nil {
		logging.Error("failed to fetch leaderboard", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchBoard})
		return
	}
	c.JSON(http.StatusOK, profiles)
}
