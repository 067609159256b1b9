package ai

// Unit is one living body of a multi-unit enemy. LastUsed is a monotonic
// sequence number, not a timestamp, so assignment stays deterministic and
// free of wall-clock dependencies.
type Unit struct {
	Name     string `json:"name"`
	Alive    bool   `json:"alive"`
	LastUsed int    `json:"last_used"`
}

// Assignment attributes one played card to one unit for display.
type Assignment struct {
	CardID   string `json:"card_id"`
	UnitName string `json:"unit_name"`
}

// AssignUnits spreads the chosen card ids across living units round-robin
// by least-recent-use, so repeated ids are not always attributed to the
// same body. Dead units are excluded entirely. The units slice is mutated
// in place (LastUsed advances); seq is the caller's monotonic counter and
// the updated value is returned.
func AssignUnits(cardIDs []string, units []Unit, seq int) ([]Assignment, int) {
	if len(cardIDs) == 0 {
		return nil, seq
	}
	alive := make([]*Unit, 0, len(units))
	for i := range units {
		if units[i].Alive {
			alive = append(alive, &units[i])
		}
	}
	if len(alive) == 0 {
		return nil, seq
	}

	out := make([]Assignment, 0, len(cardIDs))
	for _, id := range cardIDs {
		pick := alive[0]
		for _, u := range alive[1:] {
			if u.LastUsed < pick.LastUsed {
				pick = u
			}
		}
		seq++
		pick.LastUsed = seq
		out = append(out, Assignment{CardID: id, UnitName: pick.Name})
	}
	return out, seq
}
