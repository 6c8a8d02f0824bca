package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"PT2H", 2 * time.Hour},
		{"PT2H30M", 2*time.Hour + 30*time.Minute},
		{"PT90M", 90 * time.Minute},
		{"P1DT4H", 28 * time.Hour},
		{"PT45S", 45 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseISODuration(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseISODurationInvalid(t *testing.T) {
	for _, input := range []string{"", "2H", "PT", "PTXH", "PT2"} {
		t.Run(input, func(t *testing.T) {
			_, err := parseISODuration(input)
			assert.Error(t, err)
		})
	}
}

func TestFormatISODuration(t *testing.T) {
	assert.Equal(t, "PT2H30M", formatISODuration(2*time.Hour+30*time.Minute))
	assert.Equal(t, "PT3H", formatISODuration(3*time.Hour))
	assert.Equal(t, "PT45M", formatISODuration(45*time.Minute))
	assert.Equal(t, "", formatISODuration(0))
}
