package ai

import "math/rand"

// Mode is the coarse behavioral bias governing which action subsets the
// opponent prefers this turn.
type Mode string

const (
	ModeAggro    Mode = "aggro"
	ModeTurtle   Mode = "turtle"
	ModeBalanced Mode = "balanced"
)

// ModeWeights is the per-enemy draw table. Zero weights exclude a mode.
type ModeWeights struct {
	Aggro    int `json:"aggro" yaml:"aggro"`
	Turtle   int `json:"turtle" yaml:"turtle"`
	Balanced int `json:"balanced" yaml:"balanced"`
}

// DefaultWeights is the uniform fallback used when an enemy identity has no
// configured profile.
func DefaultWeights() ModeWeights {
	return ModeWeights{Aggro: 1, Turtle: 1, Balanced: 1}
}

func (w ModeWeights) total() int {
	t := 0
	if w.Aggro > 0 {
		t += w.Aggro
	}
	if w.Turtle > 0 {
		t += w.Turtle
	}
	if w.Balanced > 0 {
		t += w.Balanced
	}
	return t
}

// PickMode draws one mode from the weight table using a cumulative
// subtraction scan. The random source is injected so decisions replay in
// tests; an empty or invalid table degrades to balanced.
func PickMode(rng *rand.Rand, w ModeWeights) Mode {
	total := w.total()
	if rng == nil || total <= 0 {
		return ModeBalanced
	}
	roll := rng.Intn(total)
	if w.Aggro > 0 {
		if roll < w.Aggro {
			return ModeAggro
		}
		roll -= w.Aggro
	}
	if w.Turtle > 0 {
		if roll < w.Turtle {
			return ModeTurtle
		}
		roll -= w.Turtle
	}
	return ModeBalanced
}
