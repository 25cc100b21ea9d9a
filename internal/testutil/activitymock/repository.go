package activitymock

import (
	"context"

	domain "lendhub-backend/internal/domain/activity"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock; Appended records every successful Append.
type Repo struct {
	AppendFn      func(ctx context.Context, a *domain.Activity) error
	ListForLeadFn func(ctx context.Context, leadID string) ([]domain.Activity, error)

	Appended []domain.Activity
}

func (m *Repo) Append(ctx context.Context, a *domain.Activity) error {
	if m.AppendFn != nil {
		if err := m.AppendFn(ctx, a); err != nil {
			return err
		}
	}
	m.Appended = append(m.Appended, *a)
	return nil
}

func (m *Repo) ListForLead(ctx context.Context, leadID string) ([]domain.Activity, error) {
	if m.ListForLeadFn != nil {
		return m.ListForLeadFn(ctx, leadID)
	}
	return []domain.Activity{}, nil
}
