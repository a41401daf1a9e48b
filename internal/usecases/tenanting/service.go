package tenanting

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"

	"github.com/agencyops/marketing-metrics-api/infrastructure/repository"
	"github.com/agencyops/marketing-metrics-api/internal/domain"
)

const (
	idCharacters = "0123456789abcdefghijklmnopqrstuvwxyz"
	idLength     = 12
)

type TenantService interface {
	CreateTenant(request *domain.CreateTenantRequest) (*domain.TenantResponse, error)
	ListTenants() ([]*domain.TenantResponse, error)
	GetTenant(id string) (*domain.TenantResponse, error)
	UpdateTenant(id string, request *domain.UpdateTenantRequest) (*domain.TenantResponse, error)
	DeleteTenant(id string) error
}

type Service struct {
	tenantRepository repository.TenantRepository
}

func NewService(tenantRepository repository.TenantRepository) TenantService {
	return &Service{
		tenantRepository: tenantRepository,
	}
}

func (s *Service) CreateTenant(request *domain.CreateTenantRequest) (*domain.TenantResponse, error) {
	if request.Name == "" || request.APIKey == "" || request.ConversionMetricName == "" {
		return nil, fmt.Errorf("%w: name, api_key and conversion_metric_name are required", ErrMissingRequired)
	}

	id, err := gonanoid.Generate(idCharacters, idLength)
	if err != nil {
		return nil, fmt.Errorf("generating tenant id: %w", err)
	}

	tenant := &domain.Tenant{
		ID:                   id,
		Name:                 request.Name,
		APIKey:               request.APIKey,
		ConversionMetricName: request.ConversionMetricName,
		Timezone:             request.Timezone,
		Currency:             request.Currency,
		Status:               domain.TenantStatusActive,
	}
	if tenant.Timezone == "" {
		tenant.Timezone = "UTC"
	}
	if tenant.Currency == "" {
		tenant.Currency = "USD"
	}

	if err := s.tenantRepository.Create(tenant); err != nil {
		return nil, err
	}

	logrus.WithField("tenant_id", tenant.ID).Info("tenanting: tenant created")

	return tenant.ToResponse(), nil
}

func (s *Service) ListTenants() ([]*domain.TenantResponse, error) {
	tenants, err := s.tenantRepository.List()
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.TenantResponse, 0, len(tenants))
	for _, t := range tenants {
		responses = append(responses, t.ToResponse())
	}

	return responses, nil
}

func (s *Service) GetTenant(id string) (*domain.TenantResponse, error) {
	tenant, err := s.tenantRepository.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, ErrTenantNotFound
	}

	return tenant.ToResponse(), nil
}

// UpdateTenant applies the non-nil fields of the request; sending api_key
// rotates the stored credential. The credential itself is never echoed back.
func (s *Service) UpdateTenant(id string, request *domain.UpdateTenantRequest) (*domain.TenantResponse, error) {
	tenant, err := s.tenantRepository.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, ErrTenantNotFound
	}

	if request.Name != nil {
		tenant.Name = *request.Name
	}
	if request.APIKey != nil {
		tenant.APIKey = *request.APIKey
		logrus.WithField("tenant_id", id).Info("tenanting: credential rotated")
	}
	if request.ConversionMetricName != nil {
		tenant.ConversionMetricName = *request.ConversionMetricName
	}
	if request.Timezone != nil {
		tenant.Timezone = *request.Timezone
	}
	if request.Currency != nil {
		tenant.Currency = *request.Currency
	}
	if request.Status != nil {
		tenant.Status = *request.Status
	}

	if err := s.tenantRepository.Update(tenant); err != nil {
		return nil, err
	}

	return tenant.ToResponse(), nil
}

func (s *Service) DeleteTenant(id string) error {
	tenant, err := s.tenantRepository.GetByID(id)
	if err != nil {
		return err
	}
	if tenant == nil {
		return ErrTenantNotFound
	}

	return s.tenantRepository.Delete(id)
}
