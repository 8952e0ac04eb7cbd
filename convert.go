package supacamel

import "encoding/json"

// convertKeys returns a copy of v with every key of plain JSON objects
// renamed by namer, recursing into nested objects and arrays. Any other
// value is returned as-is by reference, so opaque types survive untouched.
// nil in, nil out.
func convertKeys(v interface{}, namer func(string) string) interface{} {
	switch value := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(value))
		for k, item := range value {
			out[namer(k)] = convertKeys(item, namer)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(value))
		for i, item := range value {
			out[i] = convertKeys(item, namer)
		}
		return out
	}
	return v
}

// convertJSONKeys decodes a JSON document, converts its keys recursively and
// re-encodes it. Empty input, JSON null and documents that do not parse are
// returned unchanged; whatever the backing service produced stays observable.
func convertJSONKeys(data []byte, namer func(string) string) []byte {
	if len(data) == 0 {
		return data
	}
	var decoded interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return data
	}
	if decoded == nil {
		return data
	}
	converted, err := json.Marshal(convertKeys(decoded, namer))
	if err != nil {
		return data
	}
	return converted
}
