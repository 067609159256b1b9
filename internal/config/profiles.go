package config

import (
	"fmt"
	"os"

	"github.com/dfalcao/tempoclash/internal/ai"

	"gopkg.in/yaml.v3"
)

// ai_profiles.yaml maps a profile name to mode weights, e.g.
//
//	profiles:
//	  bruiser: {aggro: 6, turtle: 1, balanced: 3}
//	  shelled: {aggro: 1, turtle: 7, balanced: 2}
//
// Designers tune these without touching the main game config.
type rawProfiles struct {
	Profiles map[string]ai.ModeWeights `yaml:"profiles"`
}

// LoadProfiles reads the AI tuning profiles file. A missing file is not an
// error: enemies then draw from the uniform default table.
func LoadProfiles(path string) (map[string]ai.ModeWeights, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]ai.ModeWeights{}, nil
		}
		return nil, fmt.Errorf("failed to read profiles file %s: %w", path, err)
	}
	var rp rawProfiles
	if err := yaml.Unmarshal(b, &rp); err != nil {
		return nil, fmt.Errorf("failed to parse profiles file %s: %w", path, err)
	}
	for name, w := range rp.Profiles {
		if w.Aggro < 0 || w.Turtle < 0 || w.Balanced < 0 {
			return nil, fmt.Errorf("profiles file %s: profile '%s' has negative weights", path, name)
		}
	}
	if rp.Profiles == nil {
		rp.Profiles = map[string]ai.ModeWeights{}
	}
	return rp.Profiles, nil
}
