package activity

import (
	"time"

	"lendhub-backend/internal/domain/lead"

	"gorm.io/datatypes"
)

type Kind string

const (
	KindStatusChange      Kind = "status_change"
	KindAssignmentChanged Kind = "assignment_changed"
	KindNoteAdded         Kind = "note_added"
)

// Metadata is the optional JSON object attached to an activity
// (json on mysql and sqlite, jsonb on postgres).
type Metadata = datatypes.JSONMap

// Table: lead_activities. Rows are immutable once written.
type Activity struct {
	ID          string     `gorm:"column:id;primaryKey;size:36" json:"id"`
	LeadID      string     `gorm:"column:lead_id;size:36;not null;index:idx_lead_activities_lead" json:"lead_id"`
	Lead        *lead.Lead `gorm:"foreignKey:LeadID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Type        Kind       `gorm:"column:activity_type;size:32;not null" json:"activity_type"`
	Description string     `gorm:"column:description;type:text;not null" json:"description"`
	PerformedBy string     `gorm:"column:performed_by;size:64;not null" json:"performed_by"`
	Metadata    Metadata   `gorm:"column:metadata" json:"metadata,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at;precision:6;not null;autoCreateTime:false;index:idx_lead_activities_lead" json:"created_at"`
}

func (Activity) TableName() string { return "lead_activities" }
