package engine

import (
	"reflect"
	"testing"

	"github.com/dfalcao/tempoclash/internal/game"
)

func valueCard(id string, value int) game.Card {
	return game.Card{ID: id, Name: id, Type: game.CardTypeAttack, Value: value}
}

func TestDetectCombo_NilAndEmpty(t *testing.T) {
	if DetectCombo(nil) != nil {
		t.Fatal("nil input must yield no combo")
	}
	if DetectCombo([]game.Card{}) != nil {
		t.Fatal("empty input must yield no combo")
	}
	if DetectCombo([]game.Card{valueCard("a", 1)}) != nil {
		t.Fatal("single card must yield no combo")
	}
}

func TestDetectCombo_NoPattern(t *testing.T) {
	cards := []game.Card{valueCard("a", 1), valueCard("b", 2), valueCard("c", 3)}
	if DetectCombo(cards) != nil {
		t.Fatal("distinct values must yield no combo")
	}
}

func TestDetectCombo_Patterns(t *testing.T) {
	cases := []struct {
		values []int
		want   game.ComboPattern
		size   int
	}{
		{[]int{2, 2}, game.ComboPair, 2},
		{[]int{1, 3, 3}, game.ComboPair, 2},
		{[]int{4, 4, 4}, game.ComboTriple, 3},
		{[]int{5, 5, 5, 5}, game.ComboQuad, 4},
		{[]int{6, 6, 6, 6, 6}, game.ComboQuint, 5},
	}
	for _, tc := range cases {
		cards := make([]game.Card, len(tc.values))
		for i, v := range tc.values {
			cards[i] = valueCard(string(rune('a'+i)), v)
		}
		got := DetectCombo(cards)
		if got == nil {
			t.Fatalf("values %v: expected %s, got nil", tc.values, tc.want)
		}
		if got.Name != tc.want {
			t.Fatalf("values %v: expected %s, got %s", tc.values, tc.want, got.Name)
		}
		if len(got.MatchedCards) != tc.size {
			t.Fatalf("values %v: expected %d matched cards, got %d", tc.values, tc.size, len(got.MatchedCards))
		}
	}
}

func TestDetectCombo_LongestRunWinsThenHigherValue(t *testing.T) {
	// A triple beats a pair regardless of values.
	cards := []game.Card{
		valueCard("a", 9), valueCard("b", 9),
		valueCard("c", 2), valueCard("d", 2), valueCard("e", 2),
	}
	got := DetectCombo(cards)
	if got == nil || got.Name != game.ComboTriple {
		t.Fatalf("expected triple, got %+v", got)
	}

	// Equal-length runs resolve to the higher value.
	cards = []game.Card{valueCard("a", 1), valueCard("b", 1), valueCard("c", 7), valueCard("d", 7)}
	got = DetectCombo(cards)
	if got == nil || got.MatchedCards[0].Value != 7 {
		t.Fatalf("expected the higher pair, got %+v", got)
	}
}

func TestDetectCombo_Idempotent(t *testing.T) {
	cards := []game.Card{valueCard("a", 3), valueCard("b", 3), valueCard("c", 1)}
	first := DetectCombo(cards)
	second := DetectCombo(cards)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated detection must yield identical descriptors")
	}
}
