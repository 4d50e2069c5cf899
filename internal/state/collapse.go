package state

import (
	"bytes"
	"encoding/json"
	"slices"

	"github.com/nikbrunner/vodmarks/internal/model"
)

// EncodeCollapsed serializes a collapsed set as a sorted JSON array of strings.
func EncodeCollapsed(set map[model.ID]bool) string {
	ids := make([]string, 0, len(set))
	for id, on := range set {
		if on {
			ids = append(ids, string(id))
		}
	}
	slices.Sort(ids)
	data, _ := json.Marshal(ids)
	return string(data)
}

// DecodeCollapsed parses a persisted collapsed set.
// Anything that is not a JSON array yields an empty set.
// Numeric elements are coerced to strings. Null, empty strings and other
// element types are dropped.
func DecodeCollapsed(raw string) map[model.ID]bool {
	set := make(map[model.ID]bool)
	if raw == "" {
		return set
	}

	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		return set
	}
	for _, elem := range elems {
		elem = bytes.TrimSpace(elem)
		if bytes.Equal(elem, []byte("null")) {
			continue
		}
		var s string
		if err := json.Unmarshal(elem, &s); err == nil {
			if s != "" {
				set[model.ID(s)] = true
			}
			continue
		}
		var n json.Number
		if err := json.Unmarshal(elem, &n); err == nil {
			set[model.NumberID(n)] = true
		}
	}
	return set
}
