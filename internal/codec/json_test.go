package codec

import (
	"strings"
	"testing"

	"github.com/fiaro/fixtures/internal/fixtures"
	"github.com/fiaro/fixtures/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lobbyText = `{
    "lobby_name": "My test game lobby",
    "allow_rule_voting": false,
    "list_publicly": true,
    "max_number_of_players": 2,
    "player_key": "asdhja67h32"
}`

const lobbyPostText = `{
    "lobby_name": "My test game lobby",
    "allow_rule_voting": false,
    "list_publicly": true,
    "max_number_of_players": 2
}`

func TestSerialize_Lobby(t *testing.T) {
	text, err := Serialize(fixtures.BuildLobbyConfig())
	require.NoError(t, err)
	assert.Equal(t, lobbyText, string(text))

	post, err := Serialize(fixtures.DeriveClientLobbyConfig(fixtures.BuildLobbyConfig()))
	require.NoError(t, err)
	assert.Equal(t, lobbyPostText, string(post))
}

func TestSerialize_Deterministic(t *testing.T) {
	first, err := Serialize(fixtures.BuildGameConfig())
	require.NoError(t, err)
	second, err := Serialize(fixtures.BuildGameConfig())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSerialize_Formatting(t *testing.T) {
	text, err := Serialize(fixtures.BuildGameConfig())
	require.NoError(t, err)

	s := string(text)
	assert.True(t, strings.HasPrefix(s, "{\n    \"rules\": {\n        \"shuffle_turn_order_on_start\": true,"))
	assert.Contains(t, s, "\"color\": [\n                255,\n                255,\n                255,\n                255\n            ]")
	assert.False(t, strings.HasSuffix(s, "\n"))
	assert.NotContains(t, s, "\t")
}

func TestRoundTrip(t *testing.T) {
	t.Run("Game", func(t *testing.T) {
		for _, game := range []models.GameConfig{fixtures.BuildGameConfig(), fixtures.BuildNamedGameConfig()} {
			text, err := Serialize(game)
			require.NoError(t, err)

			var parsed models.GameConfig
			require.NoError(t, Parse(text, &parsed))
			assert.Equal(t, game, parsed)
		}
	})

	t.Run("Lobby", func(t *testing.T) {
		lobby := fixtures.BuildLobbyConfig()
		text, err := Serialize(lobby)
		require.NoError(t, err)

		var parsed models.LobbyConfig
		require.NoError(t, Parse(text, &parsed))
		assert.Equal(t, lobby, parsed)
	})
}

func TestParse_Invalid(t *testing.T) {
	var lobby models.LobbyConfig
	err := Parse([]byte(`{"lobby_name": `), &lobby)
	require.Error(t, err)
}

func TestTopLevelKeys(t *testing.T) {
	keys := TopLevelKeys([]byte(lobbyText))
	assert.Equal(t, []string{"lobby_name", "allow_rule_voting", "list_publicly", "max_number_of_players", "player_key"}, keys)
}

func TestStripKey(t *testing.T) {
	// Given: the serialized host-side lobby
	text, err := Serialize(fixtures.BuildLobbyConfig())
	require.NoError(t, err)

	// When: player_key is stripped from the text
	stripped, err := StripKey(text, "player_key")
	require.NoError(t, err)

	// Then: it matches the serialized record-level derivation
	assert.Equal(t, lobbyPostText, string(stripped))
}
