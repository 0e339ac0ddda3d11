package genai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare array", `[1,2,3]`, `[1,2,3]`},
		{"fenced array", "```json\n[\"a\",\"b\"]\n```", `["a","b"]`},
		{"prose around array", `Here you go: ["x"] hope that helps`, `["x"]`},
		{"no array", `just text`, ""},
		{"brackets reversed", `] nope [`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSONArray(tt.in))
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"score":90}`, `{"score":90}`},
		{"fenced object", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"nested braces", `text {"a":{"b":2}} trailing`, `{"a":{"b":2}}`},
		{"no object", `nothing here`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSONObject(tt.in))
		})
	}
}

func TestMockSequencing(t *testing.T) {
	m := &Mock{Responses: []string{"first", "second"}}

	out, err := m.GenerateText(context.Background(), "p")
	assert.NoError(t, err)
	assert.Equal(t, "first", out)

	out, _ = m.GenerateText(context.Background(), "p")
	assert.Equal(t, "second", out)

	// Exhausted: last response repeats.
	out, _ = m.GenerateText(context.Background(), "p")
	assert.Equal(t, "second", out)
	assert.Equal(t, 3, m.Calls)
}
