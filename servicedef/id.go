package servicedef

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is an opaque identifier assigned by the service. Some backends send numeric ids, so a
// JSON number is accepted and kept in its textual form. A JSON null is the same as absent.
type ID string

func (id ID) String() string { return string(id) }

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("id should be a string or a number, got %s", truncateJSON(data))
		}
		if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
			return err
		}
		*id = ID(n.String())
		return nil
	}
}

func truncateJSON(data []byte) string {
	if len(data) > 40 {
		return string(data[:40]) + "..."
	}
	return string(data)
}
