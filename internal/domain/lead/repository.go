package lead

import (
	"context"
	"time"
)

// Filter is ANDed; zero values are ignored. Results are newest first.
type Filter struct {
	Status   Status
	LenderID string
	Limit    int
}

// UpdateFields enumerates every column a lead mutation may touch.
// Nil pointers leave the column unchanged; UpdatedAt is always written.
type UpdateFields struct {
	Status     *Status
	AssignedTo *string
	Notes      *string
	UpdatedAt  time.Time
}

type Repository interface {
	Create(ctx context.Context, l *Lead) error

	// GetByID loads the lead with its lender display fields.
	GetByID(ctx context.Context, id string) (*Lead, error)

	// GetByIDForUpdate locks the row for the rest of the transaction.
	GetByIDForUpdate(ctx context.Context, id string) (*Lead, error)

	List(ctx context.Context, f Filter) ([]Lead, error)

	ApplyMutation(ctx context.Context, id string, u UpdateFields) error

	// CountByStatus only reports statuses with at least one lead.
	CountByStatus(ctx context.Context) (map[Status]int64, error)

	// CountCreatedSince counts leads created strictly after since.
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}
