package lender

import (
	"context"
	"errors"
	"testing"
	"time"

	"lendhub-backend/internal/domain/errs"
	domainLender "lendhub-backend/internal/domain/lender"
	"lendhub-backend/internal/testutil/lendermock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBySlug_NormalizesSlug(t *testing.T) {
	uc := NewUsecase(&lendermock.Repo{
		GetBySlugFn: func(_ context.Context, slug string) (*domainLender.Lender, error) {
			assert.Equal(t, "bpi-personal", slug)
			return &domainLender.Lender{ID: "LD-1", Slug: slug}, nil
		},
	}, time.Second)

	l, err := uc.GetBySlug(context.Background(), "  BPI-Personal ")
	require.NoError(t, err)
	assert.Equal(t, "LD-1", l.ID)
}

func TestGetBySlug_BlankIsValidation(t *testing.T) {
	uc := NewUsecase(&lendermock.Repo{}, 0)
	_, err := uc.GetBySlug(context.Background(), "  ")
	assert.True(t, errs.IsValidation(err))
}

func TestGetByID_NotFound(t *testing.T) {
	uc := NewUsecase(&lendermock.Repo{}, 0)
	_, err := uc.GetByID(context.Background(), "missing")
	assert.True(t, errs.IsNotFound(err))
}

func TestListActive_StoreError(t *testing.T) {
	uc := NewUsecase(&lendermock.Repo{
		ListActiveFn: func(context.Context) ([]domainLender.Lender, error) {
			return nil, errors.New("conn reset")
		},
	}, 0)
	_, err := uc.ListActive(context.Background())
	require.Error(t, err)
	assert.Equal(t, errs.KindStore, errs.KindOf(err))
}

func TestListActive_AppliesTimeout(t *testing.T) {
	uc := NewUsecase(&lendermock.Repo{
		ListActiveFn: func(ctx context.Context) ([]domainLender.Lender, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok, "store call should carry a deadline")
			return []domainLender.Lender{{ID: "a"}}, nil
		},
	}, time.Second)
	out, err := uc.ListActive(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 1)
}
