package activity

import "context"

type Repository interface {
	// Append inserts one record; the lead must exist.
	Append(ctx context.Context, a *Activity) error

	// ListForLead returns the audit trail oldest first.
	ListForLead(ctx context.Context, leadID string) ([]Activity, error)
}
