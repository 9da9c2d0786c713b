package deck

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/youruser/deckapp/internal/cards"
)

// fixtureRepo holds main cards 1..70, extra cards 201..230 and one token
// in the reserved range.
func fixtureRepo() *cards.Repository {
	var list []cards.Card
	for i := 1; i <= 70; i++ {
		list = append(list, cards.Card{ID: i, Name: fmt.Sprintf("Monster %d", i), Type: "通常モン"})
	}
	for i := 201; i <= 230; i++ {
		list = append(list, cards.Card{ID: i, Name: fmt.Sprintf("Fusion %d", i), Type: "融合"})
	}
	list = append(list, cards.Card{ID: 100001, Name: "Token", Type: "トークン"})
	return cards.NewRepository(list, "test")
}

// fill adds each id once to the zone.
func fill(t *testing.T, d *Deck, kind cards.Zone, ids ...int) {
	t.Helper()
	for _, id := range ids {
		require.True(t, d.Add(kind, id), "add %d to %s", id, kind)
	}
}

func seq(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}
