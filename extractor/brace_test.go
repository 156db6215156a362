package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchingBrace(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		start int
		want  int
	}{
		{
			name:  "flat object",
			text:  `{"a": 1}`,
			start: 0,
			want:  7,
		},
		{
			name:  "nested objects",
			text:  `{"a": {"b": {"c": 1}}}`,
			start: 0,
			want:  21,
		},
		{
			name:  "brace inside string ignored",
			text:  `{"a": "}"}`,
			start: 0,
			want:  9,
		},
		{
			name:  "escaped quote does not end string",
			text:  `{"a": "\"}", "b": 2}`,
			start: 0,
			want:  19,
		},
		{
			name:  "unterminated object",
			text:  `{"a": {"b": 1}`,
			start: 0,
			want:  -1,
		},
		{
			name:  "start at inner brace",
			text:  `{"a": {"b": 1}}`,
			start: 6,
			want:  13,
		},
		{
			name:  "open brace inside string ignored",
			text:  `{"a": "{", "b": 1}`,
			start: 0,
			want:  17,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchingBrace(tt.text, tt.start))
		})
	}
}
