package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripJSONFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain json untouched",
			in:   `{"a":1}`,
			want: `{"a":1}`,
		},
		{
			name: "json fence removed",
			in:   "```json\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "uppercase fence removed",
			in:   "```JSON\n[1,2]\n```",
			want: `[1,2]`,
		},
		{
			name: "leading prose dropped",
			in:   "Here is your outfit:\n{\"outfits\":[]}",
			want: `{"outfits":[]}`,
		},
		{
			name: "trailing prose dropped",
			in:   "{\"a\":1}\nHope this helps!",
			want: `{"a":1}`,
		},
		{
			name: "braces inside string literals ignored",
			in:   `{"notes":"wear the {bold} scarf"} trailing`,
			want: `{"notes":"wear the {bold} scarf"}`,
		},
		{
			name: "escaped quotes inside strings",
			in:   `{"notes":"the \"good\" jacket"}`,
			want: `{"notes":"the \"good\" jacket"}`,
		},
		{
			name: "array before object wins",
			in:   `[{"a":1}] {"b":2}`,
			want: `[{"a":1}]`,
		},
		{
			name: "no json at all",
			in:   "Sorry, I cannot help with that.",
			want: "Sorry, I cannot help with that.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripJSONFences(tt.in))
		})
	}
}
