package leadmock

import (
	"context"
	"time"

	domain "lendhub-backend/internal/domain/lead"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Reads with no func set return context.Canceled; writes are no-ops.
type Repo struct {
	CreateFn           func(ctx context.Context, l *domain.Lead) error
	GetByIDFn          func(ctx context.Context, id string) (*domain.Lead, error)
	GetByIDForUpdateFn func(ctx context.Context, id string) (*domain.Lead, error)
	ListFn             func(ctx context.Context, f domain.Filter) ([]domain.Lead, error)
	ApplyMutationFn    func(ctx context.Context, id string, u domain.UpdateFields) error
	CountByStatusFn    func(ctx context.Context) (map[domain.Status]int64, error)
	CountSinceFn       func(ctx context.Context, since time.Time) (int64, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Lead) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id string) (*domain.Lead, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, f domain.Filter) ([]domain.Lead, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, context.Canceled
}

func (m *Repo) ApplyMutation(ctx context.Context, id string, u domain.UpdateFields) error {
	if m.ApplyMutationFn != nil {
		return m.ApplyMutationFn(ctx, id, u)
	}
	return nil
}

func (m *Repo) CountByStatus(ctx context.Context) (map[domain.Status]int64, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	if m.CountSinceFn != nil {
		return m.CountSinceFn(ctx, since)
	}
	return 0, context.Canceled
}
