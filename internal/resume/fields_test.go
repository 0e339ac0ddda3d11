package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFields(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Fields
	}{
		{
			name: "full header",
			text: "Jane Doe\nSenior Engineer\njane.doe@example.com\n+1 555-010-9999\n",
			want: Fields{Name: "Jane Doe", Email: "jane.doe@example.com", Phone: "+1 555-010-9999"},
		},
		{
			name: "leading blank lines before name",
			text: "\n\n  Grace Hopper  \ngrace@navy.mil",
			want: Fields{Name: "Grace Hopper", Email: "grace@navy.mil"},
		},
		{
			name: "email embedded in prose",
			text: "Contact me (ada@lovelace.io) any time.",
			want: Fields{Name: "Contact me (ada@lovelace.io) any time.", Email: "ada@lovelace.io"},
		},
		{
			name: "no contact details",
			text: "Just a plain paragraph about work history.",
			want: Fields{Name: "Just a plain paragraph about work history."},
		},
		{
			name: "empty input",
			text: "",
			want: Fields{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractFields(tt.text))
		})
	}
}
