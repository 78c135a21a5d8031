package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "format.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	req := require.New(t)
	path := writeConfig(t, `
use-static-format: false
use-item-display: true
global-format: "<gray>%display-name%</gray>: %message%"
group-formats:
  admin: "<red>[Admin]</red> %display-name%: %message%"
  default: "%display-name%: %message%"
groups:
  - name: admin
    weight: 100
    members:
      - "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
censored-words: [creeper]
censor-replacement: "#"
`)

	format, err := Load(path)
	req.NoError(err)
	req.False(format.UseStaticFormat())
	req.True(format.UseItemDisplay())
	req.Equal("<gray>%display-name%</gray>: %message%", format.GlobalFormat())

	adminFormat, ok := format.GroupFormat("admin")
	req.True(ok)
	req.Equal("<red>[Admin]</red> %display-name%: %message%", adminFormat)

	_, ok = format.GroupFormat("unknown")
	req.False(ok)

	req.Len(format.Groups, 1)
	req.Equal([]string{"creeper"}, format.CensoredWords)

	r, err := format.CensorRune()
	req.NoError(err)
	req.Equal('#', r)
}

func TestLoad_Failures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "Invalid YAML",
			content: "use-static-format: [unclosed",
		},
		{
			name: "Group without a name",
			content: `
groups:
  - weight: 10
`,
		},
		{
			name: "Group member that is not a UUID",
			content: `
groups:
  - name: admin
    weight: 10
    members: [not-a-uuid]
`,
		},
		{
			name: "Negative group weight",
			content: `
groups:
  - name: admin
    weight: -1
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}
}

func TestCensorRune_Defaults(t *testing.T) {
	req := require.New(t)

	format := Format{}
	r, err := format.CensorRune()
	req.NoError(err)
	req.Equal('*', r)

	format.CensorChar = "ab"
	_, err = format.CensorRune()
	req.Error(err)
}
