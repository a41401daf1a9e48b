package reporting

import "github.com/agencyops/marketing-metrics-api/internal/domain"

// trendBand is the percent-change band, in either direction, inside which a
// movement is reported as stable rather than up or down.
const trendBand = 1.0

// Compare builds a period-over-period delta. When the previous period has
// no value the percent change is reported as 0, not infinity, and the trend
// comes out stable; the absolute change still carries the movement.
func Compare(current, previous float64) domain.MetricComparison {
	comparison := domain.MetricComparison{
		Current:        current,
		Previous:       previous,
		AbsoluteChange: current - previous,
		Trend:          domain.TrendStable,
	}

	if previous != 0 {
		comparison.PercentChange = (current - previous) / previous * 100
	}

	if comparison.PercentChange > trendBand {
		comparison.Trend = domain.TrendUp
	} else if comparison.PercentChange < -trendBand {
		comparison.Trend = domain.TrendDown
	}

	return comparison
}
