package gormrepo

import (
	"context"

	activityDomain "lendhub-backend/internal/domain/activity"
	leadDomain "lendhub-backend/internal/domain/lead"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ActivityRepository struct{ db *gorm.DB }

func NewActivityRepository(db *gorm.DB) *ActivityRepository { return &ActivityRepository{db: db} }

func (r *ActivityRepository) Append(ctx context.Context, a *activityDomain.Activity) error {
	var n int64
	if err := r.db.WithContext(ctx).Model(&leadDomain.Lead{}).Where("id = ?", a.LeadID).Count(&n).Error; err != nil {
		return storeErr("check lead", leadNotFound, err)
	}
	if n == 0 {
		return storeErr("append activity", leadNotFound, gorm.ErrRecordNotFound)
	}
	return storeErr("append activity", leadNotFound, r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error)
}

func (r *ActivityRepository) ListForLead(ctx context.Context, leadID string) ([]activityDomain.Activity, error) {
	out := []activityDomain.Activity{}
	err := r.db.WithContext(ctx).
		Where("lead_id = ?", leadID).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storeErr("list activities", leadNotFound, err)
	}
	return out, nil
}
