package domain

import (
	"time"
)

// Timeframe bounds one report query.
type Timeframe struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ValuesReportRequest queries lifetime aggregate statistics for a set of
// campaigns. ConversionMetricID is required for any statistic that reports
// conversions or revenue: omitting it does not fail the request, the
// platform silently returns zeroed conversion fields.
type ValuesReportRequest struct {
	CampaignIDs        []string
	ConversionMetricID string
	Statistics         []string
	Timeframe          Timeframe
}

// SeriesReportRequest queries bucketed statistics for one flow. The flow
// report only accepts a single-flow equality filter, unlike the campaign
// report's array-membership filter; the two syntaxes are not
// interchangeable across report kinds.
type SeriesReportRequest struct {
	FlowID             string
	ConversionMetricID string
	Statistics         []string
	Interval           string
	Timeframe          Timeframe
}

// AggregateRequest queries a metric-aggregates series (event counts or
// values over time, optionally split by a dimension).
type AggregateRequest struct {
	MetricID     string
	Measurements []string
	Interval     string
	By           []string
	Timeframe    Timeframe
}

// ReportRow is one grouping of a values report.
type ReportRow struct {
	Groupings  map[string]string  `json:"groupings"`
	Statistics map[string]float64 `json:"statistics"`
}

// SeriesRow is one grouping of a series report; each statistic holds one
// value per entry of the report's DateTimes.
type SeriesRow struct {
	Groupings  map[string]string    `json:"groupings"`
	Statistics map[string][]float64 `json:"statistics"`
}

type SeriesReport struct {
	DateTimes []time.Time `json:"date_times"`
	Rows      []SeriesRow `json:"rows"`
}

// AggregateSeries is one dimension combination of an aggregate result; each
// measurement holds one value per entry of the result's Dates.
type AggregateSeries struct {
	Dimensions   []string             `json:"dimensions"`
	Measurements map[string][]float64 `json:"measurements"`
}

type AggregateResult struct {
	Dates  []time.Time       `json:"dates"`
	Series []AggregateSeries `json:"data"`
}
