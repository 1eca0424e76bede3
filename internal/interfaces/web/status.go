package web

import "github.com/fiscal/registros/internal/domain/registro"

// badge returns the label and CSS modifier for a nullable approval flag.
func badge(aprobacion *bool) (label, class string) {
	switch registro.StatusOf(aprobacion) {
	case registro.StatusApproved:
		return "Aprobado", "badge-approved"
	case registro.StatusRejected:
		return "Rechazado", "badge-rejected"
	default:
		return "Pendiente", "badge-pending"
	}
}
