package model

import (
	"time"

	"github.com/google/uuid"
)

// ParentModel is a guardian login tied to one student. Credentials are
// issued by the office, not self-registered.
type ParentModel struct {
	ParentID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:parent_id" json:"parent_id"`
	ParentUsername        string    `gorm:"size:60;not null;uniqueIndex;column:parent_username" json:"parent_username"`
	ParentPasswordHash    string    `gorm:"size:100;not null;column:parent_password_hash" json:"-"`
	ParentName            string    `gorm:"size:120;not null;column:parent_name" json:"parent_name"`
	ParentStudentName     string    `gorm:"size:120;not null;column:parent_student_name" json:"parent_student_name"`
	ParentStudentCode     string    `gorm:"size:20;not null;column:parent_student_code" json:"parent_student_code"`
	ParentAdmissionNumber string    `gorm:"size:40;not null;index;column:parent_admission_number" json:"parent_admission_number"`
	ParentSemester        string    `gorm:"size:10;column:parent_semester" json:"parent_semester"`
	ParentBranch          string    `gorm:"size:80;not null;column:parent_branch" json:"parent_branch"`
	ParentRoomNumber      string    `gorm:"size:20;not null;column:parent_room_number" json:"parent_room_number"`
	ParentCreatedAt       time.Time `gorm:"autoCreateTime;column:parent_created_at" json:"parent_created_at"`
	ParentUpdatedAt       time.Time `gorm:"autoUpdateTime;column:parent_updated_at" json:"parent_updated_at"`
}

func (ParentModel) TableName() string { return "parent_users" }
