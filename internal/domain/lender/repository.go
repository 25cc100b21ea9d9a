package lender

import "context"

// Repository is read-only: lender CRUD lives in the lender directory, not here.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Lender, error)
	// Active lenders only.
	GetBySlug(ctx context.Context, slug string) (*Lender, error)
	// Active lenders, best rated first.
	ListActive(ctx context.Context) ([]Lender, error)
}
