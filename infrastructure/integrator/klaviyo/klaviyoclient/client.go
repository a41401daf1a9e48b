package klaviyoclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"

	kdomain "github.com/agencyops/marketing-metrics-api/infrastructure/integrator/klaviyo/domain"
	"github.com/agencyops/marketing-metrics-api/internal/config"
)

// Report payloads can run to thousands of rows per page, so decoding goes
// through jsoniter instead of encoding/json.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client is the typed surface over the platform's REST API. It performs no
// caching and no persistence so it can be exercised against recorded HTTP
// fixtures.
type Client interface {
	ListCampaigns(ctx context.Context, filter, cursor string) (*kdomain.Page[kdomain.Campaign], error)
	ListFlows(ctx context.Context, filter, cursor string) (*kdomain.Page[kdomain.Flow], error)
	ListSegments(ctx context.Context, filter, cursor string) (*kdomain.Page[kdomain.Segment], error)
	ListMetrics(ctx context.Context, filter, cursor string) (*kdomain.Page[kdomain.Metric], error)
	CampaignValuesReport(ctx context.Context, req kdomain.ValuesReportRequest) ([]kdomain.ReportRow, error)
	FlowSeriesReport(ctx context.Context, req kdomain.SeriesReportRequest) (*kdomain.SeriesReport, error)
	MetricAggregate(ctx context.Context, req kdomain.AggregateRequest) (*kdomain.AggregateResult, error)
}

type KlaviyoClient struct {
	cfg    *config.Config
	apiKey string
	httpc  *http.Client
}

// NewClient builds a client bound to one tenant's credential. The key is
// only ever written to the Authorization header.
func NewClient(cfg *config.Config, apiKey string) Client {
	return &KlaviyoClient{
		cfg:    cfg,
		apiKey: apiKey,
		httpc:  &http.Client{Timeout: cfg.Klaviyo.RequestTimeout},
	}
}

func (c *KlaviyoClient) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	endpoint := c.cfg.Klaviyo.BaseURL + path
	if len(params) > 0 {
		endpoint = endpoint + "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("Authorization", "Klaviyo-API-Key "+c.apiKey)
	req.Header.Set("revision", c.cfg.Klaviyo.Revision)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := c.handleResponse(resp)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", path, err)
	}

	return nil
}

type errorBody struct {
	Errors []struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
		Code   string `json:"code"`
	} `json:"errors"`
}

// handleResponse maps the response status onto the error taxonomy. The
// request's Authorization header never reaches the returned error.
func (c *KlaviyoClient) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	apiErr := &kdomain.APIError{
		StatusCode: resp.StatusCode,
		Detail:     errorDetail(body),
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		apiErr.Kind = kdomain.ErrKindRateLimited
		apiErr.RetryAfter = parseRetryAfter(resp.Header.Get("Retry-After"))
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		apiErr.Kind = kdomain.ErrKindFatal
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		apiErr.Kind = kdomain.ErrKindRequestInvalid
	default:
		apiErr.Kind = kdomain.ErrKindTransient
	}

	return nil, apiErr
}

func errorDetail(body []byte) string {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil || len(parsed.Errors) == 0 {
		return ""
	}

	first := parsed.Errors[0]
	if first.Detail != "" {
		return first.Detail
	}
	return first.Title
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}

	seconds, err := strconv.Atoi(header)
	if err != nil || seconds < 0 {
		return 0
	}

	return time.Duration(seconds) * time.Second
}

// resource and listEnvelope mirror the platform's JSON:API wire format.
type resource[A any] struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Attributes A      `json:"attributes"`
}

type listEnvelope[A any] struct {
	Data  []resource[A] `json:"data"`
	Links struct {
		Next string `json:"next"`
	} `json:"links"`
}

// nextCursor extracts the opaque page cursor from the "next" link. Empty on
// the last page.
func nextCursor(next string) string {
	if next == "" {
		return ""
	}

	parsed, err := url.Parse(next)
	if err != nil {
		return ""
	}

	return parsed.Query().Get("page[cursor]")
}

// listPage fetches one page of a listing. The filter expression is
// provider-specific and passed through opaquely.
func listPage[A, T any](ctx context.Context, c *KlaviyoClient, path, filter, cursor string, conv func(id string, attrs A) T) (*kdomain.Page[T], error) {
	params := url.Values{}
	if filter != "" {
		params.Set("filter", filter)
	}
	if cursor != "" {
		params.Set("page[cursor]", cursor)
	}

	var envelope listEnvelope[A]
	if err := c.do(ctx, http.MethodGet, path, params, nil, &envelope); err != nil {
		return nil, err
	}

	page := &kdomain.Page[T]{
		Items:      make([]T, 0, len(envelope.Data)),
		NextCursor: nextCursor(envelope.Links.Next),
	}

	for _, res := range envelope.Data {
		page.Items = append(page.Items, conv(res.ID, res.Attributes))
	}

	return page, nil
}
