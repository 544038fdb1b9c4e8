package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// NumberString is a numeric field that the backend may send as a JSON number,
// a string or null. It keeps the text form and always marshals as a string.
type NumberString string

func (n *NumberString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0, bytes.Equal(b, []byte("null")):
		*n = ""
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumberString(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return fmt.Errorf("number field: %w", err)
	}
	*n = NumberString(num.String())
	return nil
}

func (n NumberString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(n))
}

func (n NumberString) String() string { return string(n) }
