package markup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestItemName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Unclosed color tag gets closed",
			input:    "<color:#FF0000>Sword",
			expected: "<color:#FF0000>Sword</color>",
		},
		{
			name:     "Unclosed gradient tag gets closed",
			input:    "<gradient:#fff:#000>Blade",
			expected: "<gradient:#fff:#000>Blade</gradient>",
		},
		{
			name:     "Named tag closes with its literal name",
			input:    "<red>Sword",
			expected: "<red>Sword</red>",
		},
		{
			name:     "No tag returns input unchanged",
			input:    "Plain Stick",
			expected: "Plain Stick",
		},
		{
			name:     "Delimiters out of order return input unchanged",
			input:    "weird>name<here",
			expected: "weird>name<here",
		},
		{
			name:     "Only the first tag is inspected",
			input:    "<red>Sword<bold>",
			expected: "<red>Sword<bold></red>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			req.Equal(tt.expected, ItemName(tt.input))
		})
	}
}
