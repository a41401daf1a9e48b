package klaviyoclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kdomain "github.com/agencyops/marketing-metrics-api/infrastructure/integrator/klaviyo/domain"
	"github.com/agencyops/marketing-metrics-api/internal/config"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Klaviyo: config.Klaviyo{
			BaseURL:        baseURL,
			Revision:       "2024-10-15",
			RequestTimeout: 5 * time.Second,
		},
	}
}

func TestClient_SendsCredentialAndRevisionHeaders(t *testing.T) {
	var gotAuth, gotRevision string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRevision = r.Header.Get("revision")
		w.Write([]byte(`{"data":[],"links":{}}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), "pk_test_key")
	_, err := client.ListSegments(context.Background(), "", "")

	require.NoError(t, err)
	assert.Equal(t, "Klaviyo-API-Key pk_test_key", gotAuth)
	assert.Equal(t, "2024-10-15", gotRevision)
}

func TestClient_StatusErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		headers    map[string]string
		body       string
		check      func(t *testing.T, err error)
		retryAfter time.Duration
	}{
		{
			name:    "429 maps to rate limited with retry-after",
			status:  http.StatusTooManyRequests,
			headers: map[string]string{"Retry-After": "12"},
			check: func(t *testing.T, err error) {
				assert.True(t, kdomain.IsRateLimited(err))
			},
			retryAfter: 12 * time.Second,
		},
		{
			name:   "401 maps to fatal",
			status: http.StatusUnauthorized,
			check: func(t *testing.T, err error) {
				assert.True(t, kdomain.IsFatal(err))
			},
		},
		{
			name:   "403 maps to fatal",
			status: http.StatusForbidden,
			check: func(t *testing.T, err error) {
				assert.True(t, kdomain.IsFatal(err))
			},
		},
		{
			name:   "400 maps to request invalid with detail",
			status: http.StatusBadRequest,
			body:   `{"errors":[{"title":"Bad filter","detail":"filter syntax not accepted"}]}`,
			check: func(t *testing.T, err error) {
				assert.True(t, kdomain.IsRequestInvalid(err))
				assert.Contains(t, err.Error(), "filter syntax not accepted")
			},
		},
		{
			name:   "500 maps to transient",
			status: http.StatusInternalServerError,
			check: func(t *testing.T, err error) {
				assert.True(t, kdomain.IsTransient(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tt.headers {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(testConfig(srv.URL), "pk_test_key")
			_, err := client.ListCampaigns(context.Background(), "", "")

			require.Error(t, err)
			tt.check(t, err)

			// the credential never reaches the error text
			assert.NotContains(t, err.Error(), "pk_test_key")

			var apiErr *kdomain.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.retryAfter, apiErr.RetryAfter)
		})
	}
}

func TestClient_ListCampaignsFollowsCursor(t *testing.T) {
	var cursors []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cursor := r.URL.Query().Get("page[cursor]")
		cursors = append(cursors, cursor)

		if cursor == "" {
			w.Write([]byte(`{
				"data":[{"id":"c1","type":"campaign","attributes":{"name":"First"}}],
				"links":{"next":"https://a.klaviyo.com/api/campaigns?page%5Bcursor%5D=abc123"}
			}`))
			return
		}
		w.Write([]byte(`{
			"data":[{"id":"c2","type":"campaign","attributes":{"name":"Second"}}],
			"links":{}
		}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), "pk_test_key")

	page1, err := client.ListCampaigns(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, page1.Items, 1)
	assert.Equal(t, "c1", page1.Items[0].ID)
	assert.Equal(t, "abc123", page1.NextCursor)

	page2, err := client.ListCampaigns(context.Background(), "", page1.NextCursor)
	require.NoError(t, err)
	require.Len(t, page2.Items, 1)
	assert.Equal(t, "c2", page2.Items[0].ID)
	assert.Empty(t, page2.NextCursor)

	assert.Equal(t, []string{"", "abc123"}, cursors)
}

func TestCampaignFilter(t *testing.T) {
	assert.Equal(t, `any(campaign_id,["c1","c2"])`, campaignFilter([]string{"c1", "c2"}))
}

func TestFlowFilter(t *testing.T) {
	assert.Equal(t, `equals(flow_id,"f1")`, flowFilter("f1"))
}

func TestClient_CampaignValuesReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/campaign-values-reports", r.URL.Path)
		w.Write([]byte(`{
			"data":{"attributes":{"results":[
				{"groupings":{"campaign_id":"c1"},"statistics":{"recipients":100,"conversion_value":42.5}}
			]}}
		}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), "pk_test_key")
	rows, err := client.CampaignValuesReport(context.Background(), kdomain.ValuesReportRequest{
		CampaignIDs: []string{"c1"},
		Statistics:  []string{"recipients", "conversion_value"},
	})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "c1", rows[0].Groupings["campaign_id"])
	assert.Equal(t, 100.0, rows[0].Statistics["recipients"])
	assert.Equal(t, 42.5, rows[0].Statistics["conversion_value"])
}

func TestNextCursor(t *testing.T) {
	assert.Empty(t, nextCursor(""))
	assert.Empty(t, nextCursor("://bad"))
	assert.Equal(t, "xyz", nextCursor("https://a.klaviyo.com/api/flows?page%5Bcursor%5D=xyz"))
}
