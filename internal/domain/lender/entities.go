package lender

import (
	"time"

	"gorm.io/datatypes"
)

// Table: lenders. Owned by the lender directory; leads only hold a weak reference.
type Lender struct {
	ID                  string                      `gorm:"column:id;primaryKey;size:36" json:"id"`
	Name                string                      `gorm:"column:name;size:255;not null" json:"name"`
	Slug                string                      `gorm:"column:slug;size:255;not null;uniqueIndex:ux_lenders_slug" json:"slug"`
	Description         string                      `gorm:"column:description;type:text" json:"description,omitempty"`
	LogoURL             string                      `gorm:"column:logo_url;type:text" json:"logo_url,omitempty"`
	WebsiteURL          string                      `gorm:"column:website_url;type:text" json:"website_url,omitempty"`
	Phone               string                      `gorm:"column:phone;size:64" json:"phone,omitempty"`
	Email               string                      `gorm:"column:email;size:255" json:"email,omitempty"`
	Address             string                      `gorm:"column:address;type:text" json:"address,omitempty"`
	Rating              float64                     `gorm:"column:rating;default:0" json:"rating"`
	ReviewCount         int                         `gorm:"column:review_count;default:0" json:"review_count"`
	IsVerified          bool                        `gorm:"column:is_verified;default:false" json:"is_verified"`
	IsActive            bool                        `gorm:"column:is_active;default:true;index" json:"is_active"`
	MinimumLoanAmount   *float64                    `gorm:"column:minimum_loan_amount" json:"minimum_loan_amount,omitempty"`
	MaximumLoanAmount   *float64                    `gorm:"column:maximum_loan_amount" json:"maximum_loan_amount,omitempty"`
	MinimumInterestRate *float64                    `gorm:"column:minimum_interest_rate" json:"minimum_interest_rate,omitempty"`
	MaximumInterestRate *float64                    `gorm:"column:maximum_interest_rate" json:"maximum_interest_rate,omitempty"`
	ProcessingTimeDays  *int                        `gorm:"column:processing_time_days" json:"processing_time_days,omitempty"`
	Requirements        datatypes.JSONSlice[string] `gorm:"column:requirements;not null" json:"requirements"`
	CreatedAt           time.Time                   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time                   `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Lender) TableName() string { return "lenders" }
