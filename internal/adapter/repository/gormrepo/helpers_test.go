package gormrepo

import (
	"testing"
	"time"

	activityDomain "lendhub-backend/internal/domain/activity"
	leadDomain "lendhub-backend/internal/domain/lead"
	lenderDomain "lendhub-backend/internal/domain/lender"
	"lendhub-backend/pkg/id"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB creates an in-memory sqlite DB with every table migrated.
// One connection only: each new :memory: connection would be a fresh database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&lenderDomain.Lender{}, &leadDomain.Lead{}, &activityDomain.Activity{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeLead(createdAt time.Time) *leadDomain.Lead {
	return &leadDomain.Lead{
		ID:         id.New(),
		FirstName:  "Maria",
		LastName:   "Santos",
		Email:      "maria@example.ph",
		Phone:      "+639171234567",
		LoanAmount: 50_000,
		Source:     leadDomain.DefaultSource,
		Status:     leadDomain.StatusNew,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
}

func seedLender(t *testing.T, db *gorm.DB, name, slug string, rating float64, reviews int, active bool) *lenderDomain.Lender {
	t.Helper()
	l := &lenderDomain.Lender{
		ID:           id.New(),
		Name:         name,
		Slug:         slug,
		Rating:       rating,
		ReviewCount:  reviews,
		IsActive:     active,
		Requirements: datatypes.JSONSlice[string]{"Valid ID"},
	}
	if err := db.Create(l).Error; err != nil {
		t.Fatalf("seed lender: %v", err)
	}
	// gorm skips zero-value bools that carry a default tag
	if !active {
		if err := db.Model(l).Update("is_active", false).Error; err != nil {
			t.Fatalf("deactivate lender: %v", err)
		}
	}
	return l
}
