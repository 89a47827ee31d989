// Package cursor implements Relay-style connection pagination over a counted
// row range. Cursors are opaque base64 strings wrapping an absolute offset
// into the connection's full ordering.
package cursor

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const prefix = "arrayconnection:"

// Encode builds an opaque cursor for an absolute offset.
func Encode(offset int) string {
	return base64.StdEncoding.EncodeToString([]byte(prefix + strconv.Itoa(offset)))
}

// Decode parses an opaque cursor back into its offset.
func Decode(raw string) (int, error) {
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid cursor: %w", err)
	}
	trimmed, ok := strings.CutPrefix(string(data), prefix)
	if !ok {
		return 0, fmt.Errorf("invalid cursor")
	}
	offset, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid cursor")
	}
	return offset, nil
}

// offsetWithDefault decodes a cursor, falling back to the default when the
// cursor is absent or malformed. Malformed cursors never fail pagination.
func offsetWithDefault(raw string, def int) int {
	if raw == "" {
		return def
	}
	offset, err := Decode(raw)
	if err != nil {
		return def
	}
	return offset
}
