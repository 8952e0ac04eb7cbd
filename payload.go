package supacamel

import (
	"encoding/json"
	"io"
)

// normalizePayload converts the keys of an insert/update/upsert payload to
// the backing convention. Accepts maps, slices of maps, structs, slices of
// structs, JSON strings, []byte, or io.Reader; the payload is normalized to a
// generic JSON value first so that key renaming is uniform across input
// kinds. Keys already in the backing convention (or carrying embedded
// syntax) are kept as-is by the namer.
func normalizePayload(in interface{}, namer func(string) string) (interface{}, error) {
	if in == nil {
		return nil, nil
	}
	var decoded interface{}
	switch v := in.(type) {
	case json.RawMessage:
		if err := json.Unmarshal(v, &decoded); err != nil {
			return nil, err
		}
	case []byte:
		if err := json.Unmarshal(v, &decoded); err != nil {
			return nil, err
		}
	case string:
		if err := json.Unmarshal([]byte(v), &decoded); err != nil {
			return nil, err
		}
	case io.Reader:
		if err := json.NewDecoder(v).Decode(&decoded); err != nil {
			return nil, err
		}
	default:
		b, err := json.Marshal(in)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(b, &decoded); err != nil {
			return nil, err
		}
	}
	return convertKeys(decoded, namer), nil
}
