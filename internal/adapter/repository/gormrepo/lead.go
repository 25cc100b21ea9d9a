package gormrepo

import (
	"context"
	"time"

	leadDomain "lendhub-backend/internal/domain/lead"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const leadNotFound = "lead not found"

type LeadRepository struct{ db *gorm.DB }

func NewLeadRepository(db *gorm.DB) *LeadRepository { return &LeadRepository{db: db} }

func (r *LeadRepository) Create(ctx context.Context, l *leadDomain.Lead) error {
	return storeErr("create lead", leadNotFound, r.db.WithContext(ctx).Omit(clause.Associations).Create(l).Error)
}

func (r *LeadRepository) GetByID(ctx context.Context, id string) (*leadDomain.Lead, error) {
	var out leadDomain.Lead
	res := r.db.WithContext(ctx).Preload("Lender").Where("id = ?", id).First(&out)
	if res.Error != nil {
		return nil, storeErr("get lead", leadNotFound, res.Error)
	}
	out.FillDisplay()
	return &out, nil
}

func (r *LeadRepository) GetByIDForUpdate(ctx context.Context, id string) (*leadDomain.Lead, error) {
	var out leadDomain.Lead
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Lender").
		Where("id = ?", id).
		First(&out)
	if res.Error != nil {
		return nil, storeErr("lock lead", leadNotFound, res.Error)
	}
	out.FillDisplay()
	return &out, nil
}

func (r *LeadRepository) List(ctx context.Context, f leadDomain.Filter) ([]leadDomain.Lead, error) {
	q := r.db.WithContext(ctx).Preload("Lender")
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.LenderID != "" {
		q = q.Where("lender_id = ?", f.LenderID)
	}
	q = q.Order("created_at DESC, id DESC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	out := []leadDomain.Lead{}
	if err := q.Find(&out).Error; err != nil {
		return nil, storeErr("list leads", leadNotFound, err)
	}
	for i := range out {
		out[i].FillDisplay()
	}
	return out, nil
}

func (r *LeadRepository) ApplyMutation(ctx context.Context, id string, u leadDomain.UpdateFields) error {
	cols := map[string]any{"updated_at": u.UpdatedAt}
	if u.Status != nil {
		cols["status"] = *u.Status
	}
	if u.AssignedTo != nil {
		cols["assigned_to"] = *u.AssignedTo
	}
	if u.Notes != nil {
		cols["notes"] = *u.Notes
	}

	res := r.db.WithContext(ctx).
		Model(&leadDomain.Lead{}).
		Where("id = ?", id).
		Updates(cols)
	if res.Error != nil {
		return storeErr("update lead", leadNotFound, res.Error)
	}
	if res.RowsAffected == 0 {
		return storeErr("update lead", leadNotFound, gorm.ErrRecordNotFound)
	}
	return nil
}

type statusCount struct {
	Status leadDomain.Status
	Total  int64
}

func (r *LeadRepository) CountByStatus(ctx context.Context) (map[leadDomain.Status]int64, error) {
	var rows []statusCount
	err := r.db.WithContext(ctx).
		Model(&leadDomain.Lead{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, storeErr("count leads", leadNotFound, err)
	}

	out := make(map[leadDomain.Status]int64, len(rows))
	for _, row := range rows {
		if row.Total > 0 {
			out[row.Status] = row.Total
		}
	}
	return out, nil
}

func (r *LeadRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&leadDomain.Lead{}).
		Where("created_at > ?", since.UTC()).
		Count(&n).Error
	if err != nil {
		return 0, storeErr("count recent leads", leadNotFound, err)
	}
	return n, nil
}
