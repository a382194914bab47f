// Package codec renders fixture records as JSON text and reads them back.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// prettyOptions indents with four spaces and keeps declared key order.
// Width 0 puts every array element on its own line.
var prettyOptions = &pretty.Options{
	Width:    0,
	Prefix:   "",
	Indent:   "    ",
	SortKeys: false,
}

// Serialize renders v as indented JSON without a trailing newline.
// Struct fields keep their declaration order, so equal input yields
// byte-identical output.
func Serialize(v any) ([]byte, error) {
	compact, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fixture: %w", err)
	}
	return bytes.TrimRight(pretty.PrettyOptions(compact, prettyOptions), "\n"), nil
}

// Parse decodes serialized fixture text into v.
func Parse(text []byte, v any) error {
	if !gjson.ValidBytes(text) {
		return fmt.Errorf("fixture is not valid JSON")
	}
	if err := json.Unmarshal(text, v); err != nil {
		return fmt.Errorf("failed to unmarshal fixture: %w", err)
	}
	return nil
}

// TopLevelKeys returns the keys of the top-level object in document order.
func TopLevelKeys(text []byte) []string {
	var keys []string
	gjson.ParseBytes(text).ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	return keys
}

// StripKey removes a top-level key from serialized text, keeping the order of
// the remaining keys, and re-indents the result.
func StripKey(text []byte, key string) ([]byte, error) {
	stripped, err := sjson.DeleteBytes(text, escapePath(key))
	if err != nil {
		return nil, fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return bytes.TrimRight(pretty.PrettyOptions(pretty.Ugly(stripped), prettyOptions), "\n"), nil
}

// escapePath escapes the characters gjson/sjson treat as path syntax.
func escapePath(key string) string {
	var b bytes.Buffer
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
