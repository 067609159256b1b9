// Package catalog resolves immutable card definitions by identifier. It is
// the read-only adapter between configuration and the combat core: decks are
// lists of ids and unknown ids are dropped silently, never an error.
package catalog

import (
	"github.com/dfalcao/tempoclash/internal/game"
)

type Catalog struct {
	byID    map[string]game.Card
	ordered []game.Card
}

// New builds a catalog from configured cards. Later duplicates of an id
// override earlier ones; config validation rejects duplicates upstream.
func New(cards []game.Card) *Catalog {
	c := &Catalog{byID: make(map[string]game.Card, len(cards)), ordered: make([]game.Card, 0, len(cards))}
	for _, card := range cards {
		if card.ID == "" {
			continue
		}
		if _, exists := c.byID[card.ID]; !exists {
			c.ordered = append(c.ordered, card)
		}
		c.byID[card.ID] = card
	}
	return c
}

// Lookup returns the definition for id.
func (c *Catalog) Lookup(id string) (game.Card, bool) {
	card, ok := c.byID[id]
	return card, ok
}

// ResolveDeck maps ids to definitions, dropping unknown ids.
func (c *Catalog) ResolveDeck(ids []string) []game.Card {
	out := make([]game.Card, 0, len(ids))
	for _, id := range ids {
		if card, ok := c.byID[id]; ok {
			out = append(out, card)
		}
	}
	return out
}

// Cards lists every definition in configuration order.
func (c *Catalog) Cards() []game.Card {
	out := make([]game.Card, len(c.ordered))
	copy(out, c.ordered)
	return out
}
