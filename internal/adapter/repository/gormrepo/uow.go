package gormrepo

import (
	"context"

	"lendhub-backend/internal/domain/lead"
	"lendhub-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) repos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Leads:      &LeadRepository{db: tx},
		Activities: &ActivityRepository{db: tx},
		Lenders:    &LenderRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(u.repos(tx))
	})
}

func (u *GormUoW) WithinLeadTx(ctx context.Context, leadID string, fn func(r uow.Repos, l *lead.Lead) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := u.repos(tx)
		// lock the lead row up-front so concurrent note appends serialize
		l, err := r.Leads.GetByIDForUpdate(ctx, leadID)
		if err != nil {
			return err
		}
		return fn(r, l)
	})
}
