package game

// CardType classifies what a card does when it resolves.
// Using a dedicated type instead of plain string makes code safer and self-documenting.
type CardType string

const (
	CardTypeAttack  CardType = "attack"
	CardTypeDefense CardType = "defense"
	CardTypeGeneral CardType = "general"
)

// Trait keys recognized by the resolver. Traits are open-ended flags; cards
// may carry keys the engine does not know about and those are simply ignored.
const (
	TraitCrush = "crush"
)

// Card is an immutable definition looked up from the catalog by ID. The
// engine never mutates cards; all per-turn state lives on ActorState.
type Card struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Type       CardType `json:"type"`
	Damage     int      `json:"damage"`
	Block      int      `json:"block"`
	Hits       int      `json:"hits"`
	SpeedCost  int      `json:"speed_cost"`
	ActionCost int      `json:"action_cost"`
	Traits     []string `json:"traits"`
	Counter    int      `json:"counter"`
	// Value is the card's combo rank (poker-style). Cards sharing a value
	// form pairs, triples and larger sets.
	Value int `json:"value"`
}

// HitCount returns the number of hits an attack performs (minimum 1).
func (c Card) HitCount() int {
	if c.Hits < 1 {
		return 1
	}
	return c.Hits
}

// HasTrait reports whether the card carries the given trait flag.
func (c Card) HasTrait(name string) bool {
	for _, t := range c.Traits {
		if t == name {
			return true
		}
	}
	return false
}
