package dto

import (
	"net/http"

	"github.com/fiscal/registros/internal/domain/shared"
)

// Client-facing messages. Causes are logged, never returned.
const (
	MsgInvalidApproval = "RFC y aprobacion (boolean) son requeridos"
	MsgListFailed      = "Error al obtener registros"
	MsgUpdateFailed    = "Error al actualizar el registro"
	MsgNotFound        = "Registro no encontrado"
)

var domainCodeToHTTPStatus = map[string]int{
	shared.CodeInvalidInput:     http.StatusBadRequest,
	shared.CodeNotFound:         http.StatusNotFound,
	shared.CodeStoreUnavailable: http.StatusInternalServerError,
}

// StatusFor maps the domain code carried by err to an HTTP status.
// Errors without a known code map to 500.
func StatusFor(err error) int {
	if status, ok := domainCodeToHTTPStatus[shared.CodeOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}
