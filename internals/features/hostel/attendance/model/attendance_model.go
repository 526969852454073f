package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	PublishNone      = "none"
	PublishPublished = "published"
)

// AttendanceModel is one roll-call mark: a student on a given day. The
// pair (date, admission number) is unique so re-saving a sheet upserts.
type AttendanceModel struct {
	AttendanceID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`
	AttendanceDate            string    `gorm:"size:10;not null;uniqueIndex:uq_attendance_day_student;column:attendance_date" json:"attendance_date"`
	AttendanceAdmissionNumber string    `gorm:"size:40;not null;uniqueIndex:uq_attendance_day_student;column:attendance_admission_number" json:"attendance_admission_number"`
	AttendanceStudentName     string    `gorm:"size:120;column:attendance_student_name" json:"attendance_student_name"`
	AttendanceSemester        string    `gorm:"size:10;column:attendance_semester" json:"attendance_semester"`
	AttendanceRoomNumber      string    `gorm:"size:20;column:attendance_room_number" json:"attendance_room_number"`
	AttendanceMesscut         bool      `gorm:"not null;default:false;column:attendance_messcut" json:"attendance_messcut"`
	AttendancePresent         bool      `gorm:"not null;default:false;column:attendance_present" json:"attendance_present"`
	AttendanceSelected        bool      `gorm:"not null;default:false;column:attendance_selected" json:"attendance_selected"`
	AttendancePublished       string    `gorm:"size:12;not null;default:'none';column:attendance_published" json:"attendance_published"`
	AttendanceCreatedAt       time.Time `gorm:"autoCreateTime;column:attendance_created_at" json:"attendance_created_at"`
	AttendanceUpdatedAt       time.Time `gorm:"autoUpdateTime;column:attendance_updated_at" json:"attendance_updated_at"`
}

func (AttendanceModel) TableName() string { return "attendance_marks" }
