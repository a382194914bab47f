// Package fixtures builds the hand-authored game and lobby payloads used to
// exercise the game server, and the client-facing variants derived from them.
package fixtures

import "github.com/fiaro/fixtures/internal/models"

// File names of the emitted fixtures.
const (
	GameFile      = "test_game.json"
	LobbyFile     = "test_lobby.json"
	LobbyPostFile = "test_lobby_post.json"
)

// BuildGameConfig returns the create-game payload written to test_game.json.
func BuildGameConfig() models.GameConfig {
	return models.GameConfig{
		Rules: defaultRules(),
		CardDeck: models.CardDeck{
			ShuffleTurnOrder: true,
			ReverseTurnOrder: true,
			SkipNextTurn:     true,
		},
		Player: models.Player{
			Name: "TestPlayer123",
			TokenStyle: models.TokenStyle{
				Color: models.RGBA{255, 255, 255, 255},
			},
		},
	}
}

// BuildNamedGameConfig returns the named variant of the create-game payload,
// the one printed to standard output.
func BuildNamedGameConfig() models.GameConfig {
	numberOfPlayers := 2
	imgSrc := ""

	game := BuildGameConfig()
	game.GameName = "My Test Game"
	game.Rules.NumberOfPlayers = &numberOfPlayers
	game.Player = models.Player{
		Name: "",
		TokenStyle: models.TokenStyle{
			Color:  models.RGBA{255, 255, 255, 255},
			ImgSrc: &imgSrc,
		},
	}
	return game
}

// BuildLobbyConfig returns the host-side create-lobby payload, player_key included.
func BuildLobbyConfig() models.LobbyConfig {
	return models.LobbyConfig{
		LobbyName:          "My test game lobby",
		AllowRuleVoting:    false,
		ListPublicly:       true,
		MaxNumberOfPlayers: 2,
		PlayerKey:          "asdhja67h32",
	}
}

// DeriveClientLobbyConfig returns a copy of lobby without the host's player_key.
// On a post the host retrieves its key from the server, so the key never
// travels in the client payload.
func DeriveClientLobbyConfig(lobby models.LobbyConfig) models.LobbyConfig {
	client := lobby
	client.PlayerKey = ""
	return client
}

func defaultRules() models.Rules {
	return models.Rules{
		ShuffleTurnOrderOnStart: true,
		EnableChat:              true,
		FinishGameOnDisconnect:  true,
		FinishGameOnWin:         true,
		AllowReconnect:          false,
		WinningRowLength:        4,
		FieldHasBounds:          true,
		EnableCards:             false,
		EnableCheats:            false,
		StartGameIfAllReady:     true,
		VariablePlayerCount:     false,
		PlayFieldWidth:          7,
		PlayFieldHeight:         6,
		EnableGravity:           true,
		GameIsPublic:            true,
		CardPlacementCooldown:   3,
	}
}
