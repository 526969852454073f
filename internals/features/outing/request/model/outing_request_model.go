package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	DecisionPending  = "PENDING"
	DecisionApproved = "APPROVED"
	DecisionRejected = "REJECTED"
)

// OutingRequestModel is a one-day outing pass request. Month and year are
// denormalized from the date so the one-outing-per-month rule is a unique
// index instead of a range scan.
type OutingRequestModel struct {
	OutingID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:outing_id" json:"outing_id"`
	OutingAdmissionNumber string     `gorm:"size:40;not null;uniqueIndex:uq_outing_month;column:outing_admission_number" json:"outing_admission_number"`
	OutingStudentName     string     `gorm:"size:120;not null;column:outing_student_name" json:"outing_student_name"`
	OutingDate            string     `gorm:"size:10;not null;column:outing_date" json:"outing_date"`
	OutingLeavingTime     string     `gorm:"size:10;not null;column:outing_leaving_time" json:"outing_leaving_time"`
	OutingReturningTime   string     `gorm:"size:10;not null;column:outing_returning_time" json:"outing_returning_time"`
	OutingReason          string     `gorm:"type:text;not null;column:outing_reason" json:"outing_reason"`
	OutingMonth           int        `gorm:"not null;uniqueIndex:uq_outing_month;column:outing_month" json:"outing_month"`
	OutingYear            int        `gorm:"not null;uniqueIndex:uq_outing_month;column:outing_year" json:"outing_year"`
	OutingParentStatus    string     `gorm:"size:10;not null;default:'PENDING';column:outing_parent_status" json:"outing_parent_status"`
	OutingParentDecidedAt *time.Time `gorm:"column:outing_parent_decided_at" json:"outing_parent_decided_at,omitempty"`
	OutingAdminStatus     string     `gorm:"size:10;not null;default:'PENDING';column:outing_admin_status" json:"outing_admin_status"`
	OutingAdminComment    string     `gorm:"type:text;column:outing_admin_comment" json:"outing_admin_comment"`
	OutingAdminDecidedAt  *time.Time `gorm:"column:outing_admin_decided_at" json:"outing_admin_decided_at,omitempty"`
	OutingCreatedAt       time.Time  `gorm:"autoCreateTime;column:outing_created_at" json:"outing_created_at"`
	OutingUpdatedAt       time.Time  `gorm:"autoUpdateTime;column:outing_updated_at" json:"outing_updated_at"`
}

func (OutingRequestModel) TableName() string { return "outing_requests" }
