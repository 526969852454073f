package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// ApologyModel: a written apology filed for a room, usually submitted by
// the room representative on behalf of a student.
type ApologyModel struct {
	ApologyID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:apology_id" json:"apology_id"`
	ApologyRoomNumber      string    `gorm:"size:20;not null;column:apology_room_number" json:"apology_room_number"`
	ApologyStudentName     string    `gorm:"size:120;not null;column:apology_student_name" json:"apology_student_name"`
	ApologyAdmissionNumber string    `gorm:"size:40;not null;index;column:apology_admission_number" json:"apology_admission_number"`
	ApologyReason          string    `gorm:"type:text;not null;column:apology_reason" json:"apology_reason"`
	ApologySubmittedBy     string    `gorm:"size:120;not null;column:apology_submitted_by" json:"apology_submitted_by"`
	ApologyStatus          string    `gorm:"size:12;not null;default:'Pending';column:apology_status" json:"apology_status"`
	ApologyCreatedAt       time.Time `gorm:"autoCreateTime;column:apology_created_at" json:"apology_created_at"`
	ApologyUpdatedAt       time.Time `gorm:"autoUpdateTime;column:apology_updated_at" json:"apology_updated_at"`
}

func (ApologyModel) TableName() string { return "apology_requests" }
