package db

import (
	"lendhub-backend/internal/domain/activity"
	"lendhub-backend/internal/domain/lead"
	"lendhub-backend/internal/domain/lender"

	"gorm.io/gorm"
)

// Migrate creates or updates the lenders, leads and lead_activities tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&lender.Lender{}, &lead.Lead{}, &activity.Activity{})
}
