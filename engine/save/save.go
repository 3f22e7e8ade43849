// Package save implements the JSON record persisted for command history.
package save

import (
	"encoding/json"
	"errors"
)

// ErrEmpty is returned by Decode when there is nothing to decode.
var ErrEmpty = errors.New("save: empty history record")

// Encode serializes history entries as a JSON array of strings, oldest
// first. A nil slice encodes as [] rather than null.
func Encode(entries []string) ([]byte, error) {
	if entries == nil {
		entries = []string{}
	}
	return json.Marshal(entries)
}

// Decode parses a JSON array of strings. The result is never nil on
// success; a JSON null decodes to an empty slice.
func Decode(data []byte) ([]string, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	var entries []string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []string{}
	}
	return entries, nil
}
