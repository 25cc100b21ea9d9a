package lead

import (
	"lendhub-backend/internal/domain/activity"
	domainLead "lendhub-backend/internal/domain/lead"
)

type CreateLeadInput struct {
	FirstName        string   `json:"first_name" validate:"required,max=255"`
	LastName         string   `json:"last_name" validate:"required,max=255"`
	Email            string   `json:"email" validate:"required,email,max=255"`
	Phone            string   `json:"phone" validate:"required,max=64"`
	LoanAmount       float64  `json:"loan_amount" validate:"gt=0"`
	LoanPurpose      string   `json:"loan_purpose"`
	EmploymentStatus string   `json:"employment_status" validate:"max=64"`
	MonthlyIncome    *float64 `json:"monthly_income" validate:"omitempty,gte=0"`
	Source           string   `json:"source" validate:"max=64"`
	LenderID         string   `json:"lender_id" validate:"max=36"`
}

type UpdateStatusInput struct {
	LeadID string
	Status string
	Notes  string
	Actor  string
}

type AssignInput struct {
	LeadID     string
	AssignedTo string
	Actor      string
}

type AddNoteInput struct {
	LeadID string
	Note   string
	Actor  string
}

type ListLeadsInput struct {
	Status   string
	LenderID string
	Limit    int
}

// LeadDetail is a lead plus its audit trail, oldest entry first.
type LeadDetail struct {
	domainLead.Lead
	Activities []activity.Activity `json:"activities"`
}

// Statistics backs the admin dashboard. Recent counts leads created in
// the last RecentWindow.
type Statistics struct {
	Total    int64            `json:"total"`
	Recent   int64            `json:"recent"`
	ByStatus map[string]int64 `json:"by_status"`
}
