package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateInput(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "", want: ""},
		{in: "2025-06-01", want: "2025-06-01"},
		{in: " 01/06/2025 ", want: "2025-06-01"},
		{in: "1/6/2025", want: "2025-06-01"},
		{in: "01.06.2025", want: "2025-06-01"},
		{in: "2025-13-01", wantErr: true},
		{in: "amanhã", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseDateInput(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseDecimal(t *testing.T) {
	v, err := ParseDecimal("-24,5")
	require.NoError(t, err)
	assert.Equal(t, -24.5, v)

	v, err = ParseDecimal("-46.633")
	require.NoError(t, err)
	assert.Equal(t, -46.633, v)

	_, err = ParseDecimal("norte")
	assert.Error(t, err)
}

func TestFormatDateRange(t *testing.T) {
	assert.Equal(t, "01/06/2025", FormatDateRange("2025-06-01", "2025-06-01"))
	assert.Equal(t, "01/06/2025 – 03/06/2025", FormatDateRange("2025-06-01", "2025-06-03"))
	assert.Equal(t, "—", FormatDate(""))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "Música", TruncateString("Música", 6))
	assert.Equal(t, "Fes...", TruncateString("Festival", 6))
}
