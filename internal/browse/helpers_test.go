package browse

import (
	"fmt"

	"github.com/youruser/deckapp/internal/cards"
)

// catalog builds n main-zone cards with ids 1..n and extra-zone cards with
// ids 1001..1000+extra.
func catalog(n, extra int) *cards.Repository {
	var list []cards.Card
	for i := 1; i <= n; i++ {
		list = append(list, cards.Card{
			ID:     i,
			Name:   fmt.Sprintf("Card %d", i),
			Type:   "効果モン",
			Attack: (i % 5) * 100,
		})
	}
	for i := 1; i <= extra; i++ {
		list = append(list, cards.Card{
			ID:   1000 + i,
			Name: fmt.Sprintf("Fusion %d", i),
			Type: "融合",
		})
	}
	return cards.NewRepository(list, "")
}

func cardIDs(list []*cards.Card) []int {
	out := make([]int, len(list))
	for i, c := range list {
		out[i] = c.ID
	}
	return out
}
