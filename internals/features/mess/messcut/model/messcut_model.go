package model

import (
	"time"

	"github.com/google/uuid"
)

// Request status set by the hostel admin.
const (
	StatusPending = "Pending"
	StatusAccept  = "ACCEPT"
	StatusReject  = "REJECT"
)

// Decision set by the parent (acts once).
const (
	ParentStatusPending = "Pending"
	ParentStatusApprove = "APPROVE"
	ParentStatusReject  = "REJECT"
)

// Dates are stored as YYYY-MM-DD strings so they stay plain calendar dates;
// a date column read back through a session timezone has shifted these by a
// day before.
type MesscutModel struct {
	MesscutID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:messcut_id" json:"messcut_id"`
	MesscutName            string     `gorm:"size:120;not null;column:messcut_name" json:"messcut_name"`
	MesscutAdmissionNumber string     `gorm:"size:40;not null;index;column:messcut_admission_number" json:"messcut_admission_number"`
	MesscutRoomNumber      string     `gorm:"size:20;column:messcut_room_number" json:"messcut_room_number"`
	MesscutLeavingDate     string     `gorm:"size:10;not null;column:messcut_leaving_date" json:"messcut_leaving_date"`
	MesscutLeavingTime     string     `gorm:"size:40;column:messcut_leaving_time" json:"messcut_leaving_time"`
	MesscutReturningDate   string     `gorm:"size:10;column:messcut_returning_date" json:"messcut_returning_date"`
	MesscutReturningTime   string     `gorm:"size:40;column:messcut_returning_time" json:"messcut_returning_time"`
	MesscutReason          string     `gorm:"type:text;not null;column:messcut_reason" json:"messcut_reason"`
	MesscutPeriod          string     `gorm:"size:60;default:'-';column:messcut_period" json:"messcut_period"`
	MesscutStatus          string     `gorm:"size:10;not null;default:'Pending';column:messcut_status" json:"messcut_status"`
	MesscutParentStatus    string     `gorm:"size:10;not null;default:'Pending';column:messcut_parent_status" json:"messcut_parent_status"`
	MesscutAdminRemark     string     `gorm:"type:text;column:messcut_admin_remark" json:"messcut_admin_remark"`
	MesscutUpdatedBy       string     `gorm:"size:120;column:messcut_updated_by" json:"messcut_updated_by"`
	MesscutStatusUpdatedAt *time.Time `gorm:"column:messcut_status_updated_at" json:"messcut_status_updated_at,omitempty"`
	MesscutCreatedAt       time.Time  `gorm:"autoCreateTime;column:messcut_created_at" json:"messcut_created_at"`
	MesscutUpdatedAt       time.Time  `gorm:"autoUpdateTime;column:messcut_updated_at" json:"messcut_updated_at"`
}

func (MesscutModel) TableName() string { return "messcuts" }
