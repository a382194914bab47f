// internal/models/game.go
package models

// GameConfig is the create-game payload: rules, card deck and the host's appearance.
type GameConfig struct {
	// GameName is only present in the named variant of the payload.
	GameName string   `json:"game_name,omitempty"`
	Rules    Rules    `json:"rules"`
	CardDeck CardDeck `json:"card_deck"`
	Player   Player   `json:"player"`
}
