package api

import (
	"github.com/dfalcao/tempoclash/internal/ai"
	"github.com/dfalcao/tempoclash/internal/catalog"
	"github.com/dfalcao/tempoclash/internal/config"
	"github.com/dfalcao/tempoclash/internal/storage"
)

// GameHandler groups all run/battle HTTP handlers.
type GameHandler struct {
	repo     storage.Repository
	catalog  *catalog.Catalog
	cfg      *config.LoadedConfig
	profiles map[string]ai.ModeWeights
}

// NewGameHandler creates a GameHandler bound to the repository, the card
// catalog and the AI tuning profiles.
func NewGameHandler(repo storage.Repository, cat *catalog.Catalog, cfg *config.LoadedConfig, profiles map[string]ai.ModeWeights) *GameHandler {
	if profiles == nil {
		profiles = map[string]ai.ModeWeights{}
	}
	return &GameHandler{repo: repo, catalog: cat, cfg: cfg, profiles: profiles}
}
