package catalog

import (
	"testing"

	"github.com/dfalcao/tempoclash/internal/game"
)

func TestCatalog_LookupAndResolve(t *testing.T) {
	c := New([]game.Card{
		{ID: "strike", Name: "Strike", Type: game.CardTypeAttack, Damage: 6},
		{ID: "guard", Name: "Guard", Type: game.CardTypeDefense, Block: 5},
	})

	card, ok := c.Lookup("strike")
	if !ok || card.Damage != 6 {
		t.Fatalf("lookup failed: %+v, %v", card, ok)
	}
	if _, ok := c.Lookup("missing"); ok {
		t.Fatal("unknown id must not resolve")
	}

	deck := c.ResolveDeck([]string{"guard", "missing", "strike", "strike"})
	if len(deck) != 3 {
		t.Fatalf("expected 3 resolved cards with the unknown dropped, got %d", len(deck))
	}
	if deck[0].ID != "guard" || deck[1].ID != "strike" || deck[2].ID != "strike" {
		t.Fatalf("resolution must preserve order and duplicates, got %+v", deck)
	}
}

func TestCatalog_CardsReturnsCopy(t *testing.T) {
	c := New([]game.Card{{ID: "strike", Type: game.CardTypeAttack}})
	cards := c.Cards()
	cards[0].ID = "tampered"
	if again := c.Cards(); again[0].ID != "strike" {
		t.Fatal("Cards must hand out a copy")
	}
}

func TestCatalog_SkipsEmptyIDs(t *testing.T) {
	c := New([]game.Card{{ID: "", Name: "ghost"}, {ID: "strike"}})
	if len(c.Cards()) != 1 {
		t.Fatalf("empty ids must be skipped, got %+v", c.Cards())
	}
}
