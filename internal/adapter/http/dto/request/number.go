package request

import (
	"bytes"
	"encoding/json"
	"strings"
)

// RawNumber is numeric form input kept as typed. It accepts a JSON number or
// a JSON string, so "12.50" and 12.50 both arrive as "12.50". Parsing is left
// to the use cases, which ignore values that are not numbers.
type RawNumber string

func (n *RawNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = RawNumber(strings.TrimSpace(s))
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*n = RawNumber(num.String())
	return nil
}

func (n RawNumber) String() string { return string(n) }
