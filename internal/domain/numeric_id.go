package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// NumericID is an entity reference decoded from either a JSON number or a
// numeric string, since HTML select values arrive as strings. An empty
// string or null decodes to 0, which validation reports as missing.
type NumericID int64

// UnmarshalJSON implements json.Unmarshaler.
func (n *NumericID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*n = 0
			return nil
		}
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: id must be an integer, got %s", ErrInvalidID, data)
	}
	*n = NumericID(v)
	return nil
}
