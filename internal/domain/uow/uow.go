package uow

import (
	"context"

	"lendhub-backend/internal/domain/activity"
	"lendhub-backend/internal/domain/lead"
	"lendhub-backend/internal/domain/lender"
)

// Repos are bound to one transaction.
type Repos struct {
	Leads      lead.Repository
	Activities activity.Repository
	Lenders    lender.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the lead first, then pass it in
	WithinLeadTx(ctx context.Context, leadID string, fn func(r Repos, l *lead.Lead) error) error
}
