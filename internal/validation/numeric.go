package validation

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Numeric holds a number as sent by the client. JSON numbers and numeric
// strings are both accepted, so `"duration": 30` and `"duration": "30"`
// validate the same way as the url-encoded form `duration=30`.
//
// Any other JSON value is kept as its raw text and fails the numeric rule.
type Numeric string

func (n *Numeric) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*n = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Numeric(s)
	default:
		*n = Numeric(data)
	}

	return nil
}

// Int returns the value as an int. Call it only after validation passed.
func (n Numeric) Int() int {
	v, _ := strconv.Atoi(strings.TrimSpace(string(n)))
	return v
}
