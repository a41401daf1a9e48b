package syncing

import "errors"

var (
	ErrTenantNotFound = errors.New("tenant not found")
	ErrTenantInactive = errors.New("tenant is not active")
	ErrMissingAPIKey  = errors.New("tenant has no API credential configured")
)
