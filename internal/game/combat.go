package game

// Actor identifies which side of the battle an action belongs to.
type Actor string

const (
	ActorPlayer   Actor = "player"
	ActorOpponent Actor = "opponent"
)

// priorityWeight orders actors on speed ties: the player always acts before
// the opponent at the same cumulative speed.
func (a Actor) PriorityWeight() int {
	if a == ActorPlayer {
		return 0
	}
	return 1
}

// ActorState is the mutable per-resolution snapshot of one combatant. It is
// constructed fresh from persisted stats for every simulated turn or preview
// and discarded afterwards; there is no cross-turn identity beyond the
// values copied in.
type ActorState struct {
	HP              int     `json:"hp"`
	MaxHP           int     `json:"max_hp"`
	Block           int     `json:"block"`
	IsDefending     bool    `json:"is_defending"`
	CounterValue    int     `json:"counter_value"`
	Strength        int     `json:"strength"`
	Agility         int     `json:"agility"`
	Vulnerability   float64 `json:"vulnerability"`
	OverdriveActive bool    `json:"overdrive_active"`
}

// VulnMult returns the vulnerability multiplier, treating the zero value as
// the neutral 1.0 so callers can build states from partial data.
func (s ActorState) VulnMult() float64 {
	if s.Vulnerability <= 0 {
		return 1.0
	}
	return s.Vulnerability
}

// ClampHP keeps hp within [0, MaxHP]. Block is clamped to zero separately.
func (s *ActorState) ClampHP() {
	if s.HP < 0 {
		s.HP = 0
	}
	if s.MaxHP > 0 && s.HP > s.MaxHP {
		s.HP = s.MaxHP
	}
}

// TimelineEntry is one scheduled action on the merged turn timeline.
type TimelineEntry struct {
	Actor           Actor `json:"actor"`
	Card            Card  `json:"card"`
	CumulativeSpeed int   `json:"cumulative_speed"`
	OriginalIndex   int   `json:"original_index"`
	PriorityWeight  int   `json:"priority_weight"`
}

// ResultKind labels the outcome of one resolved hit.
type ResultKind string

const (
	ResultHit     ResultKind = "hit"
	ResultBlocked ResultKind = "blocked"
	ResultPierce  ResultKind = "pierce"
	ResultGuard   ResultKind = "guard"
	ResultNone    ResultKind = "none"
)

// Event is one human-readable step of an action resolution.
type Event struct {
	Kind   ResultKind `json:"kind"`
	Amount int        `json:"amount"`
	Text   string     `json:"text"`
}

// ActionResult is the pure output of one Action Resolver call. Callers own
// and aggregate results independently; nothing here is shared.
type ActionResult struct {
	DamageDealt int     `json:"damage_dealt"`
	DamageTaken int     `json:"damage_taken"`
	Events      []Event `json:"events"`
}

// ComboPattern names a recognized card-set pattern.
type ComboPattern string

const (
	ComboPair   ComboPattern = "pair"
	ComboTriple ComboPattern = "triple"
	ComboQuad   ComboPattern = "quad"
	ComboQuint  ComboPattern = "quint"
)

// ComboDescriptor describes a detected pattern over the currently selected
// cards. Derived purely from the selection; never persisted.
type ComboDescriptor struct {
	Name         ComboPattern `json:"name"`
	MatchedCards []Card       `json:"matched_cards"`
}

// TurnOutcome aggregates a full timeline simulation.
type TurnOutcome struct {
	PlayerHP      int      `json:"player_hp"`
	OpponentHP    int      `json:"opponent_hp"`
	PlayerDealt   int      `json:"player_dealt"`
	OpponentDealt int      `json:"opponent_dealt"`
	Log           []string `json:"log"`
}

// EnemyDef is an enemy archetype loaded from the game configuration: base
// stats, the deck its units draw from, and the AI tuning profile name.
type EnemyDef struct {
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
