package imports

import (
	"encoding/json"
	"io"
	"strings"
)

// ParseResponse recovers the JSON object embedded in free-form model output.
// It takes the span from the first '{' to the last '}' and decodes it as a
// single object. Anything that does not decode cleanly yields an empty map;
// the result is never nil.
func ParseResponse(text string) map[string]any {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return map[string]any{}
	}

	obj, ok := decodeObject(text[start : end+1])
	if !ok {
		return map[string]any{}
	}
	return obj
}

func decodeObject(span string) (map[string]any, bool) {
	dec := json.NewDecoder(strings.NewReader(span))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil || obj == nil {
		return nil, false
	}
	// The whole span has to be one object; trailing text means the greedy span
	// covered more than one fragment.
	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}
	return obj, true
}
