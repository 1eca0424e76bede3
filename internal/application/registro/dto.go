package registro

import "github.com/fiscal/registros/internal/domain/registro"

// RegistroResponse is one row of GET /api/registros. Keys keep the column
// aliases of the joined view; APROBACION is null while the record is pending.
type RegistroResponse struct {
	RFC        string `json:"RFC" example:"ABC010101AAA"`
	Nombre     string `json:"NOMBRE" example:"Acme SA"`
	Periodo    string `json:"PERIODO" example:"2024-01"`
	Aprobacion *bool  `json:"APROBACION" extensions:"x-nullable"`
}

// SetApprovalRequest is the body of POST /api/registros. Aprobacion is a
// pointer so that an absent or null flag fails the required check.
type SetApprovalRequest struct {
	Rfc        string `json:"rfc" binding:"required" example:"ABC010101AAA"`
	Aprobacion *bool  `json:"aprobacion" binding:"required"`
}

// ToRegistroResponse converts a domain record.
func ToRegistroResponse(r registro.Registro) RegistroResponse {
	return RegistroResponse{
		RFC:        r.RFC,
		Nombre:     r.Nombre,
		Periodo:    r.Periodo,
		Aprobacion: r.Aprobacion,
	}
}

// ToRegistroResponses converts a slice, keeping an empty result non-nil.
func ToRegistroResponses(rs []registro.Registro) []RegistroResponse {
	out := make([]RegistroResponse, len(rs))
	for i, r := range rs {
		out[i] = ToRegistroResponse(r)
	}
	return out
}
