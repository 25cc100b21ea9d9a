package lendermock

import (
	"context"

	"lendhub-backend/internal/domain/errs"
	domain "lendhub-backend/internal/domain/lender"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock; lookups with no func set report not found.
type Repo struct {
	GetByIDFn    func(ctx context.Context, id string) (*domain.Lender, error)
	GetBySlugFn  func(ctx context.Context, slug string) (*domain.Lender, error)
	ListActiveFn func(ctx context.Context) ([]domain.Lender, error)
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.Lender, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errs.NotFound("lender not found")
}

func (m *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Lender, error) {
	if m.GetBySlugFn != nil {
		return m.GetBySlugFn(ctx, slug)
	}
	return nil, errs.NotFound("lender not found")
}

func (m *Repo) ListActive(ctx context.Context) ([]domain.Lender, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return []domain.Lender{}, nil
}
