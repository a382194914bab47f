// internal/models/card_deck.go
package models

// Card names as the server knows them.
const (
	CardShuffleTurnOrder = "ShuffleTurnOrder"
	CardReverseTurnOrder = "ReverseTurnOrder"
	CardSkipNextTurn     = "SkipNextTurn"
)

// CardDeck maps every special-action card to whether it is enabled in the game.
type CardDeck struct {
	ShuffleTurnOrder bool `json:"ShuffleTurnOrder"`
	ReverseTurnOrder bool `json:"ReverseTurnOrder"`
	SkipNextTurn     bool `json:"SkipNextTurn"`
}

// Enabled returns the names of the enabled cards in deck order.
func (d CardDeck) Enabled() []string {
	names := make([]string, 0, 3)
	if d.ShuffleTurnOrder {
		names = append(names, CardShuffleTurnOrder)
	}
	if d.ReverseTurnOrder {
		names = append(names, CardReverseTurnOrder)
	}
	if d.SkipNextTurn {
		names = append(names, CardSkipNextTurn)
	}
	return names
}
