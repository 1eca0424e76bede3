package registro

import (
	"strings"
	"unicode/utf8"

	"github.com/fiscal/registros/internal/domain/shared"
)

// RFCMaxLength is the declared width of the RFC column (VarChar(13)).
const RFCMaxLength = 13

// ValidateRFC checks that a taxpayer identifier is present and fits the column.
// The value is matched exactly by the store, so it is never rewritten; oversized
// values are rejected rather than truncated.
func ValidateRFC(rfc string) error {
	if strings.TrimSpace(rfc) == "" {
		return ErrRFCRequired
	}
	if utf8.RuneCountInString(rfc) > RFCMaxLength {
		return ErrRFCTooLong
	}
	return nil
}

// Registration domain errors
var (
	ErrRFCRequired      = shared.NewDomainError(shared.CodeInvalidInput, "RFC cannot be empty")
	ErrRFCTooLong       = shared.NewDomainError(shared.CodeInvalidInput, "RFC cannot exceed 13 characters")
	ErrRegistroNotFound = shared.NewDomainError(shared.CodeNotFound, "Registro no encontrado")
)
