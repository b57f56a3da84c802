package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), date)

	for _, invalid := range []string{"", "10/03/2024", "2024-13-01", "2024-02-30", "hoje"} {
		_, err := ParseDate(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in    string
		id    int64
		valid bool
	}{
		{"1", 1, true},
		{" 42 ", 42, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
		{"low-stock", 0, false},
	}

	for _, tt := range tests {
		id, ok := ParseID(tt.in)
		assert.Equal(t, tt.valid, ok, tt.in)
		assert.Equal(t, tt.id, id, tt.in)
	}
}

func TestParseInt(t *testing.T) {
	n, err := ParseInt("10")
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	_, err = ParseInt("1.5")
	assert.Error(t, err)
}
