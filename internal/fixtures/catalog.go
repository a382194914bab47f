package fixtures

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fiaro/fixtures/internal/models"
	"github.com/fiaro/fixtures/internal/schema"
)

// Fixture is one record to serialize, the file name it is emitted under and
// the schema its serialized form must satisfy.
type Fixture struct {
	Name   string
	Schema string
	Record any
}

// Catalog returns the fixture set in emission order. The client lobby is
// derived from lobby, which is left untouched.
func Catalog(game models.GameConfig, lobby models.LobbyConfig) []Fixture {
	return []Fixture{
		{Name: GameFile, Schema: schema.CreateGame, Record: game},
		{Name: LobbyFile, Schema: schema.CreateLobby, Record: lobby},
		{Name: LobbyPostFile, Schema: schema.LobbyPost, Record: DeriveClientLobbyConfig(lobby)},
	}
}

// Select keeps the fixtures whose name matches the doublestar pattern.
// An empty pattern keeps everything.
func Select(fixtures []Fixture, pattern string) ([]Fixture, error) {
	if pattern == "" {
		return fixtures, nil
	}
	selected := make([]Fixture, 0, len(fixtures))
	for _, f := range fixtures {
		ok, err := doublestar.Match(pattern, f.Name)
		if err != nil {
			return nil, fmt.Errorf("invalid fixture pattern %q: %w", pattern, err)
		}
		if ok {
			selected = append(selected, f)
		}
	}
	return selected, nil
}
