package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is an opaque backend identifier.
// The backend emits integer ids; the client only compares and echoes them,
// so they are held as strings and accept either JSON representation.
type ID string

// UnmarshalJSON accepts a JSON number, string or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var n json.Number
	if err := dec.Decode(&n); err != nil {
		return fmt.Errorf("invalid id %s", data)
	}
	*id = NumberID(n)
	return nil
}

// NumberID converts a JSON number to an ID. Integral values lose any
// fraction or exponent, so 1, 1.0 and 1e0 all become "1".
func NumberID(n json.Number) ID {
	if i, err := n.Int64(); err == nil {
		return ID(strconv.FormatInt(i, 10))
	}
	if f, err := n.Float64(); err == nil {
		return ID(strconv.FormatFloat(f, 'f', -1, 64))
	}
	return ID(n.String())
}

// MarshalJSON writes integer ids as JSON numbers so the backend's integer
// columns accept them, and anything else as a string.
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(strconv.FormatInt(n, 10)), nil
	}
	return json.Marshal(string(id))
}

// String returns the id as stored.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the id is unset.
func (id ID) IsZero() bool {
	return id == ""
}
