package question

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeOptionsPriority(t *testing.T) {
	tests := []struct {
		name    string
		options string
		choices string
		answers string
		text    string
		want    []string
	}{
		{
			name:    "options array wins",
			options: `["a","b","c","d"]`,
			choices: `["x"]`,
			want:    []string{"a", "b", "c", "d"},
		},
		{
			name:    "choices array when options missing",
			choices: `["w","x","y","z"]`,
			want:    []string{"w", "x", "y", "z"},
		},
		{
			name:    "answers array as last array source",
			answers: `["1","2"]`,
			want:    []string{"1", "2"},
		},
		{
			name:    "delimited options string",
			options: `"red; green; blue; cyan"`,
			want:    []string{"red", "green", "blue", "cyan"},
		},
		{
			name:    "newline separated options string",
			options: `"one\ntwo\nthree"`,
			want:    []string{"one", "two", "three"},
		},
		{
			name: "options marker in question text",
			text: "Which is best? Options: (A) maps, (B) slices, (C) channels, (D) arrays",
			want: []string{"maps", "slices", "channels", "arrays"},
		},
		{
			name: "no source at all",
			text: "Explain goroutines.",
			want: nil,
		},
		{
			name:    "array members trimmed and blanks dropped",
			options: `["  a  ","","b"]`,
			want:    []string{"a", "b"},
		},
		{
			name:    "non-string members stringified",
			options: `[1,true,"x"]`,
			want:    []string{"1", "true", "x"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeOptions(
				json.RawMessage(tt.options),
				json.RawMessage(tt.choices),
				json.RawMessage(tt.answers),
				tt.text,
			)
			assert.Equal(t, tt.want, got)
		})
	}
}
