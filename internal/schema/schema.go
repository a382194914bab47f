// Package schema validates serialized fixtures against the JSON schemas the
// game server applies to incoming create-game and create-lobby payloads.
package schema

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Schema names.
const (
	CreateGame  = "create_game"
	CreateLobby = "create_lobby"
	LobbyPost   = "lobby_post"
)

//go:embed schemas/*.json
var files embed.FS

// ValidationError lists every violation found in one document.
type ValidationError struct {
	Schema   string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("document does not match schema %s: %s", e.Schema, strings.Join(e.Problems, "; "))
}

// Validator holds the compiled schemas.
type Validator struct {
	schemas map[string]*gojsonschema.Schema
}

// NewValidator compiles the embedded schemas.
func NewValidator() (*Validator, error) {
	v := &Validator{schemas: make(map[string]*gojsonschema.Schema)}
	for _, name := range []string{CreateGame, CreateLobby, LobbyPost} {
		raw, err := files.ReadFile("schemas/" + name + ".json")
		if err != nil {
			return nil, fmt.Errorf("failed to read schema %s: %w", name, err)
		}
		compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
		}
		v.schemas[name] = compiled
	}
	return v, nil
}

// Validate checks text against the named schema. A violation is returned as
// a *ValidationError; any other error means the check itself could not run.
func (v *Validator) Validate(name string, text []byte) error {
	compiled, ok := v.schemas[name]
	if !ok {
		return fmt.Errorf("unknown schema %q", name)
	}

	result, err := compiled.Validate(gojsonschema.NewBytesLoader(text))
	if err != nil {
		return fmt.Errorf("failed to validate against %s: %w", name, err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return &ValidationError{Schema: name, Problems: problems}
}
