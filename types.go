package traceix

import (
	"encoding/json"
	"fmt"
)

// Result is the raw JSON reply from a Traceix endpoint. The response shape is
// server-defined and passed through unchanged. A nil Result means the request
// could not be completed.
type Result []byte

// Decode unmarshals the result into v.
func (r Result) Decode(v interface{}) error {
	if r == nil {
		return NewDecodeError("no result to decode", 0, nil)
	}
	return json.Unmarshal(r, v)
}

// String returns the raw JSON as a string.
func (r Result) String() string {
	return string(r)
}

// MarshalJSON emits the raw JSON unchanged.
func (r Result) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	return r, nil
}

// UnmarshalJSON stores a copy of the raw JSON.
func (r *Result) UnmarshalJSON(data []byte) error {
	*r = append((*r)[:0], data...)
	return nil
}

// SearchType selects which index HashSearch queries.
type SearchType string

const (
	// SearchCapa searches the capability-extraction index.
	SearchCapa SearchType = "capa"
	// SearchExif searches the EXIF-metadata index.
	SearchExif SearchType = "exif"
)

// endpoint maps the search type to its endpoint path. The empty value
// defaults to the capa index.
func (s SearchType) endpoint() (string, error) {
	switch s {
	case "", SearchCapa:
		return pathCapaSearch, nil
	case SearchExif:
		return pathExifSearch, nil
	default:
		return "", NewInvalidSearchTypeError(
			fmt.Sprintf("search must be of type %s or %s, got %q", SearchCapa, SearchExif, string(s)), nil,
		)
	}
}
