package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		millis   int64
		expected string
	}{
		{0, "0 seconds"},
		{999, "0 seconds"},
		{45000, "45 seconds"},
		{59000, "59 seconds"},
		{60000, "1 minutes"},
		{90000, "1 minutes"},
		{3599000, "59 minutes"},
		{3600000, "1 hours"},
		{86399000, "23 hours"},
		{86400000, "1 days"},
		{172800000, "2 days"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, FormatDuration(tt.millis))
		})
	}
}
