// Package registro holds the fiscal registration record reviewed by operators.
//
// A record is assembled from two relations: the registrations relation (RFC, period,
// approval flag) and the client catalog (rfc, name). Records are created and deleted
// outside this system; the only mutation is the approval flag.
package registro

// ApprovalStatus is the review state derived from the nullable approval flag.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
	StatusRejected ApprovalStatus = "rejected"
)

// StatusOf maps the stored flag to a status: nil is pending, true approved, false rejected.
func StatusOf(aprobacion *bool) ApprovalStatus {
	switch {
	case aprobacion == nil:
		return StatusPending
	case *aprobacion:
		return StatusApproved
	default:
		return StatusRejected
	}
}

// Registro is one row of the joined registration view.
type Registro struct {
	RFC        string
	Nombre     string
	Periodo    string
	Aprobacion *bool
}

// Status returns the record's derived approval status.
func (r Registro) Status() ApprovalStatus {
	return StatusOf(r.Aprobacion)
}

// IsApproved reports whether the record is currently approved.
func (r Registro) IsApproved() bool {
	return r.Status() == StatusApproved
}

// IsRejected reports whether the record is currently rejected.
func (r Registro) IsRejected() bool {
	return r.Status() == StatusRejected
}
