package lead

import (
	"strings"
	"time"

	"lendhub-backend/internal/domain/lender"
)

type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusQualified Status = "qualified"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusClosed    Status = "closed"
)

// Statuses lists every settable status. Any status may be set from any other.
var Statuses = []Status{
	StatusNew, StatusContacted, StatusQualified,
	StatusApproved, StatusRejected, StatusClosed,
}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// ParseStatus accepts the exact lowercase status literal.
func ParseStatus(raw string) (Status, bool) {
	s := Status(raw)
	return s, s.Valid()
}

const DefaultSource = "website"

// Table: leads. Timestamps are owned by the lead service, not by gorm, and
// stored at microsecond precision so successive updates never tie.
type Lead struct {
	ID               string         `gorm:"column:id;primaryKey;size:36" json:"id"`
	FirstName        string         `gorm:"column:first_name;size:255;not null" json:"first_name"`
	LastName         string         `gorm:"column:last_name;size:255;not null" json:"last_name"`
	Email            string         `gorm:"column:email;size:255;not null;index" json:"email"`
	Phone            string         `gorm:"column:phone;size:64;not null" json:"phone"`
	LoanAmount       float64        `gorm:"column:loan_amount;type:decimal(18,2);not null" json:"loan_amount"`
	LoanPurpose      string         `gorm:"column:loan_purpose;type:text" json:"loan_purpose,omitempty"`
	EmploymentStatus string         `gorm:"column:employment_status;size:64" json:"employment_status,omitempty"`
	MonthlyIncome    *float64       `gorm:"column:monthly_income;type:decimal(18,2)" json:"monthly_income,omitempty"`
	Source           string         `gorm:"column:source;size:64;not null;default:website" json:"source"`
	LenderID         *string        `gorm:"column:lender_id;size:36;index:idx_leads_lender" json:"lender_id,omitempty"`
	Lender           *lender.Lender `gorm:"foreignKey:LenderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	AssignedTo       *string        `gorm:"column:assigned_to;size:64" json:"assigned_to,omitempty"`
	Notes            string         `gorm:"column:notes;type:text" json:"notes,omitempty"`
	Status           Status         `gorm:"column:status;size:20;not null;default:new;index:idx_leads_status" json:"status"`
	CreatedAt        time.Time      `gorm:"column:created_at;precision:6;not null;autoCreateTime:false;index:idx_leads_created" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;precision:6;not null;autoUpdateTime:false" json:"updated_at"`

	// display joins, filled from Lender when it is loaded
	LenderName string `gorm:"-" json:"lender_name,omitempty"`
	LenderSlug string `gorm:"-" json:"lender_slug,omitempty"`
}

func (Lead) TableName() string { return "leads" }

// FillDisplay copies the joined lender fields onto the lead.
func (l *Lead) FillDisplay() {
	if l.Lender != nil {
		l.LenderName = l.Lender.Name
		l.LenderSlug = l.Lender.Slug
	}
}

// AppendNote returns prior notes with entry appended after a blank line.
// Each entry is stamped "[<RFC3339 UTC>] text".
func AppendNote(prior, note string, at time.Time) string {
	entry := "[" + at.UTC().Format(time.RFC3339) + "] " + strings.TrimSpace(note)
	if prior == "" {
		return entry
	}
	return prior + "\n\n" + entry
}

// NextUpdatedAt returns now, bumped past prev so updated_at strictly increases.
func NextUpdatedAt(prev, now time.Time) time.Time {
	now = now.UTC().Truncate(time.Microsecond)
	if !now.After(prev) {
		return prev.Add(time.Microsecond)
	}
	return now
}
