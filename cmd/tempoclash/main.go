package main

import (
	"time"

	"github.com/dfalcao/tempoclash/internal/api"
	"github.com/dfalcao/tempoclash/internal/catalog"
	"github.com/dfalcao/tempoclash/internal/config"
	"github.com/dfalcao/tempoclash/internal/constants"
	"github.com/dfalcao/tempoclash/internal/logging"
	"github.com/dfalcao/tempoclash/internal/storage"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
)

type envConfig struct {
	ConfigPath   string        `env:"TEMPO_CONFIG" envDefault:"./tempoclash_config.json"`
	ProfilesPath string        `env:"TEMPO_PROFILES" envDefault:"./ai_profiles.yaml"`
	DBPath       string        `env:"TEMPO_DB" envDefault:"./data/tempoclash.db"`
	Addr         string        `env:"TEMPO_ADDR"`
	StaleRunTTL  time.Duration `env:"TEMPO_STALE_RUN_TTL" envDefault:"72h"`
}

func main() {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		logging.Fatal("Invalid environment configuration", err, nil)
	}

	cfg, err := config.LoadConfig(ec.ConfigPath)
	if err != nil {
		logging.Fatal("Missing or invalid tempoclash configuration", err, logging.Fields{
			"config_path": ec.ConfigPath,
			"hint":        "create a tempoclash_config.json with a 'card_list' array (id,name,type,damage,block,hits,speed_cost,action_cost,traits,counter,value), an 'enemy_list' array and optional server.address",
		})
	}
	profiles, err := config.LoadProfiles(ec.ProfilesPath)
	if err != nil {
		logging.Fatal("Invalid AI profiles file", err, logging.Fields{"profiles_path": ec.ProfilesPath})
	}

	db, err := storage.OpenDB(ec.DBPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	repo := storage.NewSQLiteRepository(db)
	cat := catalog.New(cfg.Cards)
	handler := api.NewGameHandler(repo, cat, cfg, profiles)

	startStaleRunSweeper(repo, ec.StaleRunTTL)

	router := gin.Default()
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, api.Version)
		apiRoutes.GET(constants.RouteCards, handler.ListCards)
		apiRoutes.GET(constants.RouteEnemies, handler.ListEnemies)
		apiRoutes.GET(constants.RouteLeaderboard, handler.ListLeaderboard)

		apiRoutes.POST(constants.RouteRuns, handler.CreateRun)
		apiRoutes.GET(constants.RouteRunByUUID, handler.GetRun)
		apiRoutes.POST(constants.RouteRunBattles, handler.StartBattle)
		apiRoutes.POST(constants.RouteRunTurn, handler.SubmitTurn)
		apiRoutes.POST(constants.RouteRunPreview, handler.PreviewTurn)
		apiRoutes.POST(constants.RouteComboPreview, handler.ComboPreview)
	}

	addr := ec.Addr
	if addr == "" {
		addr = cfg.ServerAddress
	}
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
