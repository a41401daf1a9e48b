package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateToDay(t *testing.T) {
	in := time.Date(2026, 8, 14, 17, 42, 9, 120, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC), TruncateToDay(in))
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "monday maps to itself",
			in:   time.Date(2026, 8, 10, 15, 0, 0, 0, time.UTC),
			want: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "wednesday maps back to monday",
			in:   time.Date(2026, 8, 12, 3, 30, 0, 0, time.UTC),
			want: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday belongs to the preceding monday",
			in:   time.Date(2026, 8, 16, 23, 59, 0, 0, time.UTC),
			want: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStart(tt.in))
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-08-14")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC), *d)

	_, err = ParseDate("14/08/2026")
	assert.Error(t, err)
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 10.46, RoundWithTwoDecimalPlace(10.456))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, -3.33, RoundWithTwoDecimalPlace(-3.3333))
}
