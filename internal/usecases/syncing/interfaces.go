package syncing

import (
	"context"

	"github.com/agencyops/marketing-metrics-api/infrastructure/integrator/klaviyo"
	"github.com/agencyops/marketing-metrics-api/internal/domain"
)

// Syncer runs a full metrics sync for one tenant.
type Syncer interface {
	RunSync(ctx context.Context, tenantID string) (*domain.SyncReport, error)
}

// IntegratorFactory builds a per-tenant platform integrator from the
// tenant's opaque credential. One integrator instance serves one run.
type IntegratorFactory func(apiKey string) klaviyo.Integrator
