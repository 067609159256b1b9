package keys

import (
	"sort"
	"strconv"
	"strings"
)

// SelectionKey produces a canonical key for a card selection within a run
// turn. Behavior: trims ids, lower-cases, sorts and joins, then prefixes
// with the run and turn so distinct turns never collide. Suitable for
// deduplication keys.
func SelectionKey(runUUID string, turn int, cardIDs []string) string {
	parts := make([]string, 0, len(cardIDs))
	for _, id := range cardIDs {
		s := strings.ToLower(strings.TrimSpace(id))
		if s == "" {
			continue
		}
		parts = append(parts, s)
	}
	sort.Strings(parts)
	return runUUID + ":" + strconv.Itoa(turn) + ":" + strings.Join(parts, ",")
}
