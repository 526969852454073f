package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentModel is the hostel roster: one row per admitted student.
type StudentModel struct {
	StudentID                uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentName              string    `gorm:"size:120;not null;column:student_name" json:"student_name"`
	StudentAdmissionNumber   string    `gorm:"size:40;not null;uniqueIndex;column:student_admission_number" json:"student_admission_number"`
	StudentPhoneNumber       string    `gorm:"size:20;column:student_phone_number" json:"student_phone_number"`
	StudentBranch            string    `gorm:"size:80;column:student_branch" json:"student_branch"`
	StudentRoomNumber        string    `gorm:"size:20;column:student_room_number" json:"student_room_number"`
	StudentYear              string    `gorm:"size:10;column:student_year" json:"student_year"`
	StudentSemester          string    `gorm:"size:10;column:student_semester" json:"student_semester"`
	StudentParentName        string    `gorm:"size:120;column:student_parent_name" json:"student_parent_name"`
	StudentParentPhoneNumber string    `gorm:"size:20;column:student_parent_phone_number" json:"student_parent_phone_number"`
	StudentRole              string    `gorm:"size:20;not null;default:'student';column:student_role" json:"student_role"`
	StudentEmail             *string   `gorm:"size:255;column:student_email" json:"student_email,omitempty"`
	StudentPasswordHash      string    `gorm:"size:100;not null;column:student_password_hash" json:"-"`
	StudentProfilePhotoURL   *string   `gorm:"type:text;column:student_profile_photo_url" json:"student_profile_photo_url,omitempty"`
	StudentCreatedAt         time.Time `gorm:"autoCreateTime;column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt         time.Time `gorm:"autoUpdateTime;column:student_updated_at" json:"student_updated_at"`
}

func (StudentModel) TableName() string { return "students" }
