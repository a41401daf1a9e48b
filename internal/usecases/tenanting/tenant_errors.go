package tenanting

import "errors"

var (
	ErrTenantNotFound  = errors.New("tenant not found")
	ErrMissingRequired = errors.New("missing required data")
)
