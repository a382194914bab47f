// internal/models/lobby.go
package models

// LobbyConfig describes the waiting room that precedes a game.
type LobbyConfig struct {
	LobbyName          string `json:"lobby_name"`
	AllowRuleVoting    bool   `json:"allow_rule_voting"`
	ListPublicly       bool   `json:"list_publicly"`
	MaxNumberOfPlayers int    `json:"max_number_of_players"`

	// PlayerKey is the server-issued secret of the hosting player's session.
	// It is left empty, and therefore omitted, in payloads shared with clients.
	PlayerKey string `json:"player_key,omitempty"`
}

// HasPlayerKey reports whether the lobby still carries the host secret.
func (l LobbyConfig) HasPlayerKey() bool {
	return l.PlayerKey != ""
}
