package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/agencyops/marketing-metrics-api/internal/domain"
)

func points(values ...float64) []domain.ChartPoint {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	out := make([]domain.ChartPoint, 0, len(values))
	for i, v := range values {
		out = append(out, domain.ChartPoint{Date: base.AddDate(0, 0, i), Value: v})
	}
	return out
}

func TestSuppressOutliers_DropsExtremePoints(t *testing.T) {
	series := points(100, 102, 98, 101, 99, 103, 97, 5000)

	kept := suppressOutliers(series, defaultSigmaThreshold)

	assert.Len(t, kept, 7)
	for _, p := range kept {
		assert.Less(t, p.Value, 5000.0)
	}
}

func TestSuppressOutliers_NegativeSeriesJudgedByMagnitude(t *testing.T) {
	// a net-growth style series swinging around zero: the sign must not make
	// ordinary points look like outliers, and the spike is still dropped
	series := points(5, -5, 4, -4, 6, -6, 5, 500)

	kept := suppressOutliers(series, defaultSigmaThreshold)

	assert.Len(t, kept, 7)
	for _, p := range kept {
		assert.Less(t, p.Value, 500.0)
	}
}

func TestSuppressOutliers_ShortSeriesUntouched(t *testing.T) {
	series := points(1, 2, 5000, 3)
	assert.Equal(t, series, suppressOutliers(series, defaultSigmaThreshold))
}

func TestSuppressOutliers_NoVarianceUntouched(t *testing.T) {
	series := points(10, 10, 10, 10, 10, 10)
	assert.Equal(t, series, suppressOutliers(series, defaultSigmaThreshold))
}

func TestSuppressOutliers_RefusesToDropMajority(t *testing.T) {
	// with a tiny sigma nearly everything would be cut; the original series
	// must come back instead
	series := points(1, 100, 2, 99, 3, 98, 4)
	kept := suppressOutliers(series, 0.01)
	assert.Equal(t, series, kept)
}
