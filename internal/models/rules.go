// internal/models/rules.go
package models

// Rules captures the game-time settings a host submits when creating a game.
// Field order is the order the server's create_game schema lists them and the
// order they are serialized in.
type Rules struct {
	// ShuffleTurnOrderOnStart shuffles the participants once the game starts.
	ShuffleTurnOrderOnStart bool `json:"shuffle_turn_order_on_start"`

	// EnableChat allows chat messages in the game namespace.
	EnableChat bool `json:"enable_chat"`

	// FinishGameOnDisconnect ends the game as soon as a player disconnects.
	FinishGameOnDisconnect bool `json:"finish_game_on_disconnect"`

	// FinishGameOnWin ends the game on the first winning row.
	FinishGameOnWin bool `json:"finish_game_on_win"`

	// AllowReconnect lets a disconnected player rejoin.
	AllowReconnect bool `json:"allow_reconnect"`

	// WinningRowLength is how many tokens in a row win the game.
	WinningRowLength int `json:"winning_row_length"`

	// FieldHasBounds limits rows to the play field.
	FieldHasBounds bool `json:"field_has_bounds"`

	EnableCards  bool `json:"enable_cards"`
	EnableCheats bool `json:"enable_cheats"`

	// NumberOfPlayers is nil when the player count is variable or not part of the payload.
	NumberOfPlayers *int `json:"number_of_players,omitempty"`

	// StartGameIfAllReady starts the countdown once every player is ready.
	StartGameIfAllReady bool `json:"start_game_if_all_ready"`

	VariablePlayerCount bool `json:"variable_player_count"`

	PlayFieldWidth  int `json:"play_field_width"`
	PlayFieldHeight int `json:"play_field_height"`

	// EnableGravity makes tokens fall to the lowest free cell of a column.
	EnableGravity bool `json:"enable_gravity"`

	// GameIsPublic lists the game in the public game list.
	GameIsPublic bool `json:"game_is_public"`

	// CardPlacementCooldown is the number of turns between two card placements.
	CardPlacementCooldown int `json:"card_placement_cooldown"`
}
