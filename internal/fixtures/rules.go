// internal/fixtures/rules.go
package fixtures

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/fiaro/fixtures/internal/models"
	"github.com/stoewer/go-strcase"
)

// ApplyRuleOverrides returns a copy of rules with the named settings replaced.
// Names may be given in snake, kebab or camel case. Unknown names, values of the
// wrong type and negative numbers are rejected; rules itself is never modified.
func ApplyRuleOverrides(rules models.Rules, overrides map[string]string) (models.Rules, error) {
	updated := rules
	if updated.NumberOfPlayers != nil {
		n := *updated.NumberOfPlayers
		updated.NumberOfPlayers = &n
	}

	assignBool := func(field *bool, key, raw string) error {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid value %q for %s: expected a boolean", raw, key)
		}
		*field = v
		return nil
	}

	assignInt := func(field *int, key, raw string) error {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid value %q for %s: expected an integer", raw, key)
		}
		if v < 0 {
			return fmt.Errorf("%s must be non-negative", key)
		}
		*field = v
		return nil
	}

	// apply in a stable order so the first error reported does not depend on map iteration
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		raw := overrides[name]
		key := strcase.SnakeCase(name)

		var err error
		switch key {
		case "shuffle_turn_order_on_start":
			err = assignBool(&updated.ShuffleTurnOrderOnStart, key, raw)
		case "enable_chat":
			err = assignBool(&updated.EnableChat, key, raw)
		case "finish_game_on_disconnect":
			err = assignBool(&updated.FinishGameOnDisconnect, key, raw)
		case "finish_game_on_win":
			err = assignBool(&updated.FinishGameOnWin, key, raw)
		case "allow_reconnect":
			err = assignBool(&updated.AllowReconnect, key, raw)
		case "winning_row_length":
			err = assignInt(&updated.WinningRowLength, key, raw)
		case "field_has_bounds":
			err = assignBool(&updated.FieldHasBounds, key, raw)
		case "enable_cards":
			err = assignBool(&updated.EnableCards, key, raw)
		case "enable_cheats":
			err = assignBool(&updated.EnableCheats, key, raw)
		case "number_of_players":
			var n int
			if err = assignInt(&n, key, raw); err == nil {
				updated.NumberOfPlayers = &n
			}
		case "start_game_if_all_ready":
			err = assignBool(&updated.StartGameIfAllReady, key, raw)
		case "variable_player_count":
			err = assignBool(&updated.VariablePlayerCount, key, raw)
		case "play_field_width":
			err = assignInt(&updated.PlayFieldWidth, key, raw)
		case "play_field_height":
			err = assignInt(&updated.PlayFieldHeight, key, raw)
		case "enable_gravity":
			err = assignBool(&updated.EnableGravity, key, raw)
		case "game_is_public":
			err = assignBool(&updated.GameIsPublic, key, raw)
		case "card_placement_cooldown":
			err = assignInt(&updated.CardPlacementCooldown, key, raw)
		default:
			err = fmt.Errorf("unknown rule %q", name)
		}
		if err != nil {
			return rules, err
		}
	}

	return updated, nil
}
