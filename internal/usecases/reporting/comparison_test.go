package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agencyops/marketing-metrics-api/internal/domain"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name        string
		current     float64
		previous    float64
		wantPercent float64
		wantTrend   domain.Trend
	}{
		{
			name:    "growth above the band trends up",
			current: 120, previous: 100,
			wantPercent: 20, wantTrend: domain.TrendUp,
		},
		{
			name:    "decline below the band trends down",
			current: 80, previous: 100,
			wantPercent: -20, wantTrend: domain.TrendDown,
		},
		{
			name:    "movement inside the band is stable",
			current: 100.5, previous: 100,
			wantPercent: 0.5, wantTrend: domain.TrendStable,
		},
		{
			name:    "previous zero reports zero percent, not infinity",
			current: 50, previous: 0,
			wantPercent: 0, wantTrend: domain.TrendStable,
		},
		{
			name:    "both zero",
			current: 0, previous: 0,
			wantPercent: 0, wantTrend: domain.TrendStable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.current, tt.previous)

			assert.Equal(t, tt.current, got.Current)
			assert.Equal(t, tt.previous, got.Previous)
			assert.InDelta(t, tt.current-tt.previous, got.AbsoluteChange, 1e-9)
			assert.InDelta(t, tt.wantPercent, got.PercentChange, 1e-9)
			assert.Equal(t, tt.wantTrend, got.Trend)
		})
	}
}
