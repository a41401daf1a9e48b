package reporting

import (
	"math"

	"github.com/agencyops/marketing-metrics-api/internal/domain"
)

const (
	// defaultSigmaThreshold is how many standard deviations from the mean a
	// point may sit before outlier suppression drops it.
	defaultSigmaThreshold = 2.5

	// minPointsForSuppression is the series length below which suppression
	// is skipped entirely: with so few points every value is signal.
	minPointsForSuppression = 5
)

// suppressOutliers drops points whose magnitude sits farther than sigma
// standard deviations from the series mean. Mean and deviation are taken
// over the absolute values, so a series that swings negative (net growth) is
// judged by magnitude, not direction. The original series is returned
// untouched when it is too short, has no variance, or when the cut would
// remove more than half the points (a spiky-by-nature series, not a series
// with outliers).
func suppressOutliers(points []domain.ChartPoint, sigma float64) []domain.ChartPoint {
	if len(points) < minPointsForSuppression {
		return points
	}

	mean, stddev := meanStddev(points)
	if stddev == 0 {
		return points
	}

	kept := make([]domain.ChartPoint, 0, len(points))
	for _, p := range points {
		if math.Abs(math.Abs(p.Value)-mean) <= sigma*stddev {
			kept = append(kept, p)
		}
	}

	if len(kept) < (len(points)+1)/2 {
		return points
	}

	return kept
}

// meanStddev is computed over the absolute values of the series.
func meanStddev(points []domain.ChartPoint) (float64, float64) {
	var sum float64
	for _, p := range points {
		sum += math.Abs(p.Value)
	}
	mean := sum / float64(len(points))

	var variance float64
	for _, p := range points {
		d := math.Abs(p.Value) - mean
		variance += d * d
	}
	variance /= float64(len(points))

	return mean, math.Sqrt(variance)
}
