package gormrepo

import (
	"context"

	lenderDomain "lendhub-backend/internal/domain/lender"

	"gorm.io/gorm"
)

const lenderNotFound = "lender not found"

type LenderRepository struct{ db *gorm.DB }

func NewLenderRepository(db *gorm.DB) *LenderRepository { return &LenderRepository{db: db} }

func (r *LenderRepository) GetByID(ctx context.Context, id string) (*lenderDomain.Lender, error) {
	var out lenderDomain.Lender
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, storeErr("get lender", lenderNotFound, err)
	}
	return &out, nil
}

func (r *LenderRepository) GetBySlug(ctx context.Context, slug string) (*lenderDomain.Lender, error) {
	var out lenderDomain.Lender
	err := r.db.WithContext(ctx).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&out).Error
	if err != nil {
		return nil, storeErr("get lender", lenderNotFound, err)
	}
	return &out, nil
}

func (r *LenderRepository) ListActive(ctx context.Context) ([]lenderDomain.Lender, error) {
	out := []lenderDomain.Lender{}
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("rating DESC, review_count DESC, name ASC").
		Find(&out).Error
	if err != nil {
		return nil, storeErr("list lenders", lenderNotFound, err)
	}
	return out, nil
}
