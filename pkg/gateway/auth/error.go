package auth

import (
	"errors"
	"fmt"
)

var ErrAPIKeyError = errors.New("")     // Base error for API key
var ErrTenantError = errors.New("")     // Base error for Tenant
var ErrAdminTokenError = errors.New("") // Base error for admin token

var ErrInvalidAPIKeyString = fmt.Errorf("invalid API key string%w", ErrAPIKeyError)
var ErrMismatchAPIKey = fmt.Errorf("mismatch API key%w", ErrAPIKeyError)
var ErrRevokedAPIKey = fmt.Errorf("revoked API key%w", ErrAPIKeyError)
var ErrAPIKeyNotFound = fmt.Errorf("API key not found%w", ErrAPIKeyError)
var ErrTenantInactive = fmt.Errorf("tenant is inactive%w", ErrAPIKeyError)

var ErrTenantNotFound = fmt.Errorf("tenant not found%w", ErrTenantError)

var ErrInvalidAdminToken = fmt.Errorf("invalid admin token%w", ErrAdminTokenError)
var ErrMissingAdminScope = fmt.Errorf("token carries no admin scope%w", ErrAdminTokenError)
