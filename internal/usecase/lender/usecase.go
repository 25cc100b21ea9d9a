package lender

import (
	"context"
	"strings"
	"time"

	"lendhub-backend/internal/domain/errs"
	domainLender "lendhub-backend/internal/domain/lender"
)

// Usecase is the read-only lender lookup used by the public site and the
// admin lead views.
type Usecase struct {
	repo    domainLender.Repository
	timeout time.Duration
}

func NewUsecase(r domainLender.Repository, timeout time.Duration) *Usecase {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Usecase{repo: r, timeout: timeout}
}

func (u *Usecase) ListActive(ctx context.Context) ([]domainLender.Lender, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	out, err := u.repo.ListActive(ctx)
	if err != nil {
		return nil, errs.Store("list lenders", err)
	}
	return out, nil
}

func (u *Usecase) GetBySlug(ctx context.Context, slug string) (*domainLender.Lender, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, errs.Validation("slug", "slug is required")
	}
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	l, err := u.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, errs.Store("get lender", err)
	}
	return l, nil
}

func (u *Usecase) GetByID(ctx context.Context, id string) (*domainLender.Lender, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Store("get lender", err)
	}
	return l, nil
}
