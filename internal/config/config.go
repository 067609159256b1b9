package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dfalcao/tempoclash/internal/game"
)

type cardEntry struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Damage     int      `json:"damage"`
	Block      int      `json:"block"`
	Hits       int      `json:"hits"`
	SpeedCost  int      `json:"speed_cost"`
	ActionCost int      `json:"action_cost"`
	Traits     []string `json:"traits"`
	Counter    int      `json:"counter"`
	Value      int      `json:"value"`
}

type enemyEntry struct {
	Name        string   `json:"name"`
	HitPoints   int      `json:"hit_points"`
	Strength    int      `json:"strength"`
	Agility     int      `json:"agility"`
	Deck        []string `json:"deck"`
	Units       []string `json:"units"`
	Profile     string   `json:"profile"`
	Energy      int      `json:"energy"`
	SpeedBudget int      `json:"speed_budget"`
	MinCards    int      `json:"min_cards"`
	MaxCards    int      `json:"max_cards"`
}

type rawConfig struct {
	CardList  []cardEntry  `json:"card_list"`
	EnemyList []enemyEntry `json:"enemy_list"`
	Server    *struct {
		Address string `json:"address"`
	} `json:"server"`
}

// LoadedConfig contains the card catalog source, the enemy roster and the
// server address to bind to.
type LoadedConfig struct {
	Cards         []game.Card
	Enemies       []game.EnemyDef
	ServerAddress string
}

// EnemyByName returns the configured enemy archetype, case-insensitively.
func (c *LoadedConfig) EnemyByName(name string) (game.EnemyDef, bool) {
	for _, e := range c.Enemies {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return game.EnemyDef{}, false
}

// LoadConfig reads the configuration file at path and returns cards, enemies
// and the server address. It requires the key `card_list` (snake_case).
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(rc.CardList) == 0 {
		return nil, fmt.Errorf("config file %s: card_list is empty (provide 'card_list' array)", path)
	}

	cards := make([]game.Card, 0, len(rc.CardList))
	idSet := make(map[string]struct{}, len(rc.CardList))
	for _, e := range rc.CardList {
		id := strings.TrimSpace(e.ID)
		if id == "" {
			return nil, fmt.Errorf("config file %s: card entry missing 'id'", path)
		}
		if _, exists := idSet[strings.ToLower(id)]; exists {
			return nil, fmt.Errorf("config file %s: duplicate card id '%s'", path, id)
		}
		idSet[strings.ToLower(id)] = struct{}{}
		switch game.CardType(e.Type) {
		case game.CardTypeAttack, game.CardTypeDefense, game.CardTypeGeneral:
		default:
			return nil, fmt.Errorf("config file %s: card '%s' has unknown type '%s'", path, id, e.Type)
		}
		cards = append(cards, game.Card{
			ID:         id,
			Name:       e.Name,
			Type:       game.CardType(e.Type),
			Damage:     e.Damage,
			Block:      e.Block,
			Hits:       e.Hits,
			SpeedCost:  e.SpeedCost,
			ActionCost: e.ActionCost,
			Traits:     e.Traits,
			Counter:    e.Counter,
			Value:      e.Value,
		})
	}

	enemies := make([]game.EnemyDef, 0, len(rc.EnemyList))
	nameSet := make(map[string]struct{}, len(rc.EnemyList))
	for _, e := range rc.EnemyList {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, fmt.Errorf("config file %s: enemy entry missing 'name'", path)
		}
		ln := strings.ToLower(name)
		if _, exists := nameSet[ln]; exists {
			return nil, fmt.Errorf("config file %s: duplicate enemy name '%s'", path, name)
		}
		nameSet[ln] = struct{}{}
		if e.HitPoints <= 0 {
			return nil, fmt.Errorf("config file %s: enemy '%s' needs positive hit_points", path, name)
		}
		for _, id := range e.Deck {
			if _, known := idSet[strings.ToLower(strings.TrimSpace(id))]; !known {
				return nil, fmt.Errorf("config file %s: enemy '%s' references unknown card id '%s'", path, name, id)
			}
		}
		enemies = append(enemies, game.EnemyDef{
			Name:        name,
			HitPoints:   e.HitPoints,
			Strength:    e.Strength,
			Agility:     e.Agility,
			Deck:        e.Deck,
			Units:       e.Units,
			Profile:     e.Profile,
			Energy:      e.Energy,
			SpeedBudget: e.SpeedBudget,
			MinCards:    e.MinCards,
			MaxCards:    e.MaxCards,
		})
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}

	return &LoadedConfig{Cards: cards, Enemies: enemies, ServerAddress: addr}, nil
}
