package group

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON encodes the result as a JSON object whose members appear in
// ascending key order. Keys are rendered by their canonical string form since
// JSON object keys must be strings.
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(canonical(k))
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		recs, err := json.Marshal(r.groups[i])
		if err != nil {
			return nil, err
		}
		buf.Write(recs)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
