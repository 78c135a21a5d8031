package markup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvertLegacy(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "No legacy escapes",
			input:    "plain text",
			expected: "plain text",
		},
		{
			name:     "Single color escape",
			input:    "§cDanger",
			expected: "<red>Danger",
		},
		{
			name:     "Color and decoration, order preserved",
			input:    "§e§lGold §rplain",
			expected: "<yellow><bold>Gold <reset>plain",
		},
		{
			name:     "Uppercase code",
			input:    "§CDanger",
			expected: "<red>Danger",
		},
		{
			name:     "Unknown code is dropped",
			input:    "a§zb",
			expected: "ab",
		},
		{
			name:     "Trailing bare section character",
			input:    "dangling§",
			expected: "dangling",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.expected, ConvertLegacy(tt.input))
		})
	}
}

func TestStripLegacy(t *testing.T) {
	req := require.New(t)
	req.Equal("Danger plain", StripLegacy("§cDanger §lplain"))
	req.Equal("untouched", StripLegacy("untouched"))
}

func TestSanitize_PermissionTiers(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		canColor  bool
		canFormat bool
		expected  string
	}{
		{
			name:      "No color permission strips and escapes everything",
			input:     "Hi <red>there</red> §cboom",
			canColor:  false,
			canFormat: false,
			expected:  `<white>Hi \<red>there\</red> boom</white>`,
		},
		{
			name:      "No color permission, empty input",
			input:     "",
			canColor:  false,
			canFormat: false,
			expected:  "<white></white>",
		},
		{
			name:      "Color without formatting keeps converted legacy colors",
			input:     "§cHi <bold>x",
			canColor:  true,
			canFormat: false,
			expected:  `<red>Hi \<bold>x`,
		},
		{
			name:      "Full trust passes markup through",
			input:     "§cHi <bold>x",
			canColor:  true,
			canFormat: true,
			expected:  "<red>Hi <bold>x",
		},
		{
			name:      "Full trust without legacy escapes is untouched",
			input:     "<gradient:#fff:#000>shiny</gradient>",
			canColor:  true,
			canFormat: true,
			expected:  "<gradient:#fff:#000>shiny</gradient>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			req.Equal(tt.expected, Sanitize(tt.input, tt.canColor, tt.canFormat))
		})
	}
}

func TestClosingTag(t *testing.T) {
	req := require.New(t)
	req.Equal("</red>", ClosingTag("<red>"))
	req.Equal("</light_purple>", ClosingTag("<light_purple>"))
	req.Equal("", ClosingTag("red"))
	req.Equal("", ClosingTag("<>"))
}
