package game

import (
	"encoding/json"
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	StatusInProgress = "in_progress"
	StatusFinished   = "finished"
	StatusAbandoned  = "abandoned"

	BattleActive = "active"
	BattleWon    = "won"
	BattleLost   = "lost"
)

// Run is one persisted playthrough: the player's stats, deck and the combo
// usage counters that drive payout deflation. Card stats themselves are not
// persisted — the deck is stored as a comma-separated list of catalog IDs
// and resolved through the catalog on every load.
type Run struct {
	gorm.Model
	RunUUID       string  `json:"run_uuid" gorm:"uniqueIndex"`
	PlayerName    string  `json:"player_name"`
	HP            int     `json:"hp"`
	MaxHP         int     `json:"max_hp"`
	Strength      int     `json:"strength"`
	Agility       int     `json:"agility"`
	Vulnerability float64 `json:"vulnerability"`
	DeckCSV       string  `json:"-" gorm:"column:deck_csv"`
	// ComboUsageJSON serializes the pattern -> use-count map. The multiplier
	// engine itself is stateless; this row is the single owner of the map.
	ComboUsageJSON string    `json:"-" gorm:"column:combo_usage_json"`
	Status         string    `json:"status"`
	TurnCount      int       `json:"turn_count"`
	LastActivity   time.Time `json:"last_activity"`
}

func (Run) TableName() string { return "runs" }

// Deck returns the run's deck as catalog IDs.
func (r *Run) Deck() []string {
	if strings.TrimSpace(r.DeckCSV) == "" {
		return nil
	}
	parts := strings.Split(r.DeckCSV, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// SetDeck stores the deck IDs in canonical CSV form.
func (r *Run) SetDeck(ids []string) {
	r.DeckCSV = strings.Join(ids, ",")
}

// ComboUsage decodes the persisted pattern use counts. A missing or invalid
// payload decodes to an empty map rather than an error.
func (r *Run) ComboUsage() map[string]int {
	m := map[string]int{}
	if strings.TrimSpace(r.ComboUsageJSON) == "" {
		return m
	}
	if err := json.Unmarshal([]byte(r.ComboUsageJSON), &m); err != nil {
		return map[string]int{}
	}
	return m
}

// SetComboUsage encodes and stores the pattern use counts.
func (r *Run) SetComboUsage(m map[string]int) {
	if len(m) == 0 {
		r.ComboUsageJSON = ""
		return
	}
	b, err := json.Marshal(m)
	if err != nil {
		return
	}
	r.ComboUsageJSON = string(b)
}

// Battle is the persisted state of one encounter within a run.
type Battle struct {
	gorm.Model
	RunID              uint    `json:"-" gorm:"index"`
	EnemyName          string  `json:"enemy_name"`
	EnemyHP            int     `json:"enemy_hp"`
	EnemyMaxHP         int     `json:"enemy_max_hp"`
	EnemyStrength      int     `json:"enemy_strength"`
	EnemyAgility       int     `json:"enemy_agility"`
	EnemyVulnerability float64 `json:"enemy_vulnerability"`
	Profile            string  `json:"profile"`
	DeckCSV            string  `json:"-" gorm:"column:deck_csv"`
	// UnitsJSON stores the living/dead unit roster for multi-unit enemies.
	UnitsJSON    string `json:"-" gorm:"column:units_json"`
	Status       string `json:"status"`
	TurnCount    int    `json:"turn_count"`
	LastTurnLog  string `json:"last_turn_log"`
	EnergyBudget int    `json:"energy_budget"`
	SpeedBudget  int    `json:"speed_budget"`
	MinCards     int    `json:"min_cards"`
	MaxCards     int    `json:"max_cards"`
}

func (Battle) TableName() string { return "battles" }

// Deck returns the enemy deck as catalog IDs.
func (b *Battle) Deck() []string {
	if strings.TrimSpace(b.DeckCSV) == "" {
		return nil
	}
	parts := strings.Split(b.DeckCSV, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// SetDeck stores the enemy deck IDs in canonical CSV form.
func (b *Battle) SetDeck(ids []string) {
	b.DeckCSV = strings.Join(ids, ",")
}

// BattleUnit is one body of a multi-unit enemy, serialized into UnitsJSON.
type BattleUnit struct {
	Name     string `json:"name"`
	Alive    bool   `json:"alive"`
	LastUsed int    `json:"last_used"`
}

// Units decodes the persisted unit roster.
func (b *Battle) Units() []BattleUnit {
	if strings.TrimSpace(b.UnitsJSON) == "" {
		return nil
	}
	var units []BattleUnit
	if err := json.Unmarshal([]byte(b.UnitsJSON), &units); err != nil {
		return nil
	}
	return units
}

// SetUnits encodes and stores the unit roster.
func (b *Battle) SetUnits(units []BattleUnit) {
	if len(units) == 0 {
		b.UnitsJSON = ""
		return
	}
	raw, err := json.Marshal(units)
	if err != nil {
		return
	}
	b.UnitsJSON = string(raw)
}

// PlayerProfile stores aggregate per-player stats for the leaderboard.
type PlayerProfile struct {
	gorm.Model
	PlayerName string `json:"player_name" gorm:"uniqueIndex"`
	Runs       int    `json:"runs"`
	Wins       int    `json:"wins"`
	Defeats    int    `json:"defeats"`
}

func (PlayerProfile) TableName() string { return "player_profiles" }
