package reporting

import (
	"sort"

	"github.com/agencyops/marketing-metrics-api/infrastructure/repository"
	"github.com/agencyops/marketing-metrics-api/internal/domain"
	"github.com/agencyops/marketing-metrics-api/pkg/utils"
)

// CampaignSummaryResponse carries the windowed summary plus, when the
// caller asked for it, the comparison against the preceding window.
type CampaignSummaryResponse struct {
	Summary    domain.CampaignSummary             `json:"summary"`
	Comparison map[string]domain.MetricComparison `json:"comparison,omitempty"`
}

type ListGrowthSummaryResponse struct {
	Summary    domain.ListGrowthSummary           `json:"summary"`
	Comparison map[string]domain.MetricComparison `json:"comparison,omitempty"`
}

type RevenueSummaryResponse struct {
	Summary    domain.RevenueSummary              `json:"summary"`
	Comparison map[string]domain.MetricComparison `json:"comparison,omitempty"`
}

// Reporter is the read path over stored metric rows. Nothing here calls the
// remote platform; summaries are computed from what the last sync persisted.
type Reporter interface {
	CampaignSummary(tenantID string, window domain.MetricWindow, compare bool) (*CampaignSummaryResponse, error)
	FlowSummary(tenantID string, window domain.MetricWindow) (*domain.FlowSummary, error)
	ListGrowthSummary(tenantID string, window domain.MetricWindow, compare bool) (*ListGrowthSummaryResponse, error)
	RevenueSummary(tenantID string, window domain.MetricWindow, compare bool) (*RevenueSummaryResponse, error)
	RevenueChart(tenantID string, window domain.MetricWindow, excludeOutliers bool) ([]domain.ChartPoint, error)
	ListGrowthChart(tenantID string, window domain.MetricWindow, excludeOutliers bool) ([]domain.ChartPoint, error)
	Segments(tenantID string) ([]*domain.SegmentMetric, error)
}

type Service struct {
	campaignRepo   repository.CampaignMetricRepository
	flowRepo       repository.FlowMetricRepository
	segmentRepo    repository.SegmentMetricRepository
	listGrowthRepo repository.ListGrowthMetricRepository
	revenueRepo    repository.RevenueAttributionRepository
}

func NewService(
	campaignRepo repository.CampaignMetricRepository,
	flowRepo repository.FlowMetricRepository,
	segmentRepo repository.SegmentMetricRepository,
	listGrowthRepo repository.ListGrowthMetricRepository,
	revenueRepo repository.RevenueAttributionRepository,
) Reporter {
	return &Service{
		campaignRepo:   campaignRepo,
		flowRepo:       flowRepo,
		segmentRepo:    segmentRepo,
		listGrowthRepo: listGrowthRepo,
		revenueRepo:    revenueRepo,
	}
}

// CampaignSummary aggregates the tenant's campaigns sent inside the window.
// Drafts never enter the summary: the range read is on sent_at, which a
// draft does not have. Rate fields are the simple mean of each campaign's
// own rate rather than total-over-total, so one huge send does not define
// the "typical campaign".
func (s *Service) CampaignSummary(tenantID string, window domain.MetricWindow, compare bool) (*CampaignSummaryResponse, error) {
	current, err := s.campaignSummaryFor(tenantID, window)
	if err != nil {
		return nil, err
	}

	response := &CampaignSummaryResponse{Summary: *current}

	if compare {
		previous, err := s.campaignSummaryFor(tenantID, window.Previous())
		if err != nil {
			return nil, err
		}

		response.Comparison = map[string]domain.MetricComparison{
			"total_campaigns": Compare(float64(current.TotalCampaigns), float64(previous.TotalCampaigns)),
			"total_revenue":   Compare(current.TotalRevenue, previous.TotalRevenue),
			"avg_open_rate":   Compare(current.AvgOpenRate, previous.AvgOpenRate),
			"avg_click_rate":  Compare(current.AvgClickRate, previous.AvgClickRate),
		}
	}

	return response, nil
}

func (s *Service) campaignSummaryFor(tenantID string, window domain.MetricWindow) (*domain.CampaignSummary, error) {
	campaigns, err := s.campaignRepo.GetByDateRange(tenantID, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	summary := &domain.CampaignSummary{TotalCampaigns: len(campaigns)}

	var openRateSum, clickRateSum, bounceRateSum float64
	for _, c := range campaigns {
		summary.TotalRecipients += c.Recipients
		summary.TotalDelivered += c.Delivered
		summary.TotalOpens += c.OpensUnique
		summary.TotalClicks += c.ClicksUnique
		summary.TotalUnsubscribed += c.Unsubscribed
		summary.TotalRevenue += c.ConversionValue

		openRateSum += c.OpenRate
		clickRateSum += c.ClickRate
		bounceRateSum += c.BounceRate
	}

	if len(campaigns) > 0 {
		n := float64(len(campaigns))
		summary.AvgOpenRate = openRateSum / n
		summary.AvgClickRate = clickRateSum / n
		summary.AvgBounceRate = bounceRateSum / n
	}
	summary.TotalRevenue = utils.RoundWithTwoDecimalPlace(summary.TotalRevenue)

	return summary, nil
}

// FlowSummary sums each flow's weekly message rows over the window. Flow
// revenue is always this sum; there is no stored per-flow total to drift
// out of date.
func (s *Service) FlowSummary(tenantID string, window domain.MetricWindow) (*domain.FlowSummary, error) {
	flows, err := s.flowRepo.ListFlows(tenantID)
	if err != nil {
		return nil, err
	}

	weeks, err := s.flowRepo.GetMessageWeeksByDateRange(tenantID, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	byFlow := make(map[string]*domain.FlowSummaryItem, len(flows))
	for _, f := range flows {
		byFlow[f.ExternalID] = &domain.FlowSummaryItem{
			FlowID: f.ExternalID,
			Name:   f.Name,
			Status: string(f.Status),
		}
	}

	for _, week := range weeks {
		item, ok := byFlow[week.FlowID]
		if !ok {
			continue
		}
		item.OpensUnique += week.OpensUnique
		item.ClicksUnique += week.ClicksUnique
		item.Conversions += week.Conversions
		item.Revenue += week.ConversionValue
	}

	summary := &domain.FlowSummary{
		TotalFlows: len(flows),
		Flows:      make([]domain.FlowSummaryItem, 0, len(byFlow)),
	}
	for _, item := range byFlow {
		item.Revenue = utils.RoundWithTwoDecimalPlace(item.Revenue)
		summary.TotalRevenue += item.Revenue
		summary.Flows = append(summary.Flows, *item)
	}
	summary.TotalRevenue = utils.RoundWithTwoDecimalPlace(summary.TotalRevenue)

	sort.Slice(summary.Flows, func(i, j int) bool {
		return summary.Flows[i].Revenue > summary.Flows[j].Revenue
	})

	return summary, nil
}

func (s *Service) ListGrowthSummary(tenantID string, window domain.MetricWindow, compare bool) (*ListGrowthSummaryResponse, error) {
	current, err := s.listGrowthSummaryFor(tenantID, window)
	if err != nil {
		return nil, err
	}

	response := &ListGrowthSummaryResponse{Summary: *current}

	if compare {
		previous, err := s.listGrowthSummaryFor(tenantID, window.Previous())
		if err != nil {
			return nil, err
		}

		response.Comparison = map[string]domain.MetricComparison{
			"net_growth":             Compare(float64(current.NetGrowth), float64(previous.NetGrowth)),
			"total_subscriptions":    Compare(float64(current.TotalSubscriptions), float64(previous.TotalSubscriptions)),
			"total_form_submissions": Compare(float64(current.TotalFormSubmissions), float64(previous.TotalFormSubmissions)),
		}
	}

	return response, nil
}

func (s *Service) listGrowthSummaryFor(tenantID string, window domain.MetricWindow) (*domain.ListGrowthSummary, error) {
	rows, err := s.listGrowthRepo.GetByDateRange(tenantID, domain.GrowthIntervalDay, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	summary := &domain.ListGrowthSummary{}

	var growthRateSum, churnRateSum float64
	for _, row := range rows {
		summary.TotalSubscriptions += row.EmailSubscriptions + row.SMSSubscriptions
		summary.TotalUnsubscriptions += row.EmailUnsubscriptions + row.SMSUnsubscriptions
		summary.TotalFormSubmissions += row.FormSubmissions
		summary.NetGrowth += row.NetGrowth

		growthRateSum += row.GrowthRate
		churnRateSum += row.ChurnRate
	}

	if len(rows) > 0 {
		n := float64(len(rows))
		summary.AvgGrowthRate = growthRateSum / n
		summary.AvgChurnRate = churnRateSum / n
	}

	return summary, nil
}

func (s *Service) RevenueSummary(tenantID string, window domain.MetricWindow, compare bool) (*RevenueSummaryResponse, error) {
	current, err := s.revenueSummaryFor(tenantID, window)
	if err != nil {
		return nil, err
	}

	response := &RevenueSummaryResponse{Summary: *current}

	if compare {
		previous, err := s.revenueSummaryFor(tenantID, window.Previous())
		if err != nil {
			return nil, err
		}

		response.Comparison = map[string]domain.MetricComparison{
			"total_revenue": Compare(current.TotalRevenue, previous.TotalRevenue),
			"email_revenue": Compare(current.EmailRevenue, previous.EmailRevenue),
			"sms_revenue":   Compare(current.SMSRevenue, previous.SMSRevenue),
			"total_orders":  Compare(float64(current.TotalOrders), float64(previous.TotalOrders)),
		}
	}

	return response, nil
}

func (s *Service) revenueSummaryFor(tenantID string, window domain.MetricWindow) (*domain.RevenueSummary, error) {
	rows, err := s.revenueRepo.GetByDateRange(tenantID, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	summary := &domain.RevenueSummary{}
	for _, row := range rows {
		summary.EmailRevenue += row.EmailRevenue
		summary.SMSRevenue += row.SMSRevenue
		summary.EmailOrders += row.EmailOrders
		summary.SMSOrders += row.SMSOrders
	}

	summary.EmailRevenue = utils.RoundWithTwoDecimalPlace(summary.EmailRevenue)
	summary.SMSRevenue = utils.RoundWithTwoDecimalPlace(summary.SMSRevenue)
	summary.TotalRevenue = utils.RoundWithTwoDecimalPlace(summary.EmailRevenue + summary.SMSRevenue)
	summary.TotalOrders = summary.EmailOrders + summary.SMSOrders

	if summary.TotalRevenue > 0 {
		summary.EmailShare = summary.EmailRevenue / summary.TotalRevenue
		summary.SMSShare = summary.SMSRevenue / summary.TotalRevenue
	}

	return summary, nil
}

// RevenueChart returns one point per stored day. Outlier suppression is
// opt-in and only ever touches the chart series, never the stored rows or
// the summaries.
func (s *Service) RevenueChart(tenantID string, window domain.MetricWindow, excludeOutliers bool) ([]domain.ChartPoint, error) {
	rows, err := s.revenueRepo.GetByDateRange(tenantID, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	points := make([]domain.ChartPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, domain.ChartPoint{Date: row.Date, Value: row.TotalRevenue})
	}

	if excludeOutliers {
		points = suppressOutliers(points, defaultSigmaThreshold)
	}

	return points, nil
}

func (s *Service) ListGrowthChart(tenantID string, window domain.MetricWindow, excludeOutliers bool) ([]domain.ChartPoint, error) {
	rows, err := s.listGrowthRepo.GetByDateRange(tenantID, domain.GrowthIntervalDay, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	points := make([]domain.ChartPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, domain.ChartPoint{Date: row.Date, Value: float64(row.NetGrowth)})
	}

	if excludeOutliers {
		points = suppressOutliers(points, defaultSigmaThreshold)
	}

	return points, nil
}

func (s *Service) Segments(tenantID string) ([]*domain.SegmentMetric, error) {
	return s.segmentRepo.List(tenantID)
}
