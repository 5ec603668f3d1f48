package imports

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want map[string]any
	}{
		{name: "surrounding prose", in: `prefix {"a":1} suffix`, want: map[string]any{"a": json.Number("1")}},
		{name: "no json", in: "no json here", want: map[string]any{}},
		{name: "empty", in: "", want: map[string]any{}},
		{name: "truncated", in: `{"personalInfo": {"fullName": "Jane"`, want: map[string]any{}},
		{name: "close before open", in: `} oops {`, want: map[string]any{}},
		{name: "markdown fence", in: "```json\n{\"skills\": {\"soft\": [\"listening\"]}}\n```", want: map[string]any{
			"skills": map[string]any{"soft": []any{"listening"}},
		}},
		{name: "nested braces", in: `Result: {"a": {"b": {"c": "d"}}}.`, want: map[string]any{
			"a": map[string]any{"b": map[string]any{"c": "d"}},
		}},
		{name: "two objects span fails", in: `{"a":1} and also {"b":2}`, want: map[string]any{}},
		{name: "braces in prose after object", in: `{"a":"x"} see {note}`, want: map[string]any{}},
		{name: "empty object", in: `{}`, want: map[string]any{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := ParseResponse(tt.in)
			if got == nil {
				t.Fatalf("ParseResponse returned nil")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ParseResponse(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseResponsePreservesNumbers(t *testing.T) {
	got := ParseResponse(`{"education":[{"gpa": 3.90, "year": 2024123412341234}]}`)
	edu := got["education"].([]any)[0].(map[string]any)
	if edu["gpa"] != json.Number("3.90") {
		t.Fatalf("expected gpa kept verbatim, got %#v", edu["gpa"])
	}
	if edu["year"] != json.Number("2024123412341234") {
		t.Fatalf("expected large number kept verbatim, got %#v", edu["year"])
	}
}
