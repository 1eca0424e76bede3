package shared

import "errors"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes shared across the domain
const (
	CodeNotFound         = "NOT_FOUND"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeStoreUnavailable = "STORE_UNAVAILABLE"
)

// ErrStoreUnavailable marks failures reaching the record store
var ErrStoreUnavailable = NewDomainError(CodeStoreUnavailable, "Store unavailable")

// CodeOf returns the code of the first DomainError in err's chain, or "" if there is none.
func CodeOf(err error) string {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}
