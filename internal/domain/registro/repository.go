package registro

import "context"

// Repository is the registry store gateway.
type Repository interface {
	// ListRegistrations returns every registration joined to its client, in store order.
	// Registrations without a matching client are excluded.
	ListRegistrations(ctx context.Context) ([]Registro, error)

	// SetApproval overwrites the approval flag of the registration with the given RFC
	// and returns the number of rows affected.
	SetApproval(ctx context.Context, rfc string, approved bool) (int64, error)
}
