package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	EligibleYes = "YES"
	EligibleNo  = "NO"
)

// OutingEligibilityModel is the warden's allow-list: one row per student,
// flipped in bulk at the start of each term.
type OutingEligibilityModel struct {
	EligibilityID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:eligibility_id" json:"eligibility_id"`
	EligibilityAdmissionNumber string    `gorm:"size:40;not null;uniqueIndex;column:eligibility_admission_number" json:"eligibility_admission_number"`
	EligibilityStudentName     string    `gorm:"size:120;not null;column:eligibility_student_name" json:"eligibility_student_name"`
	EligibilityIsEligible      string    `gorm:"size:3;not null;default:'NO';column:eligibility_is_eligible" json:"eligibility_is_eligible"`
	EligibilityCreatedAt       time.Time `gorm:"autoCreateTime;column:eligibility_created_at" json:"eligibility_created_at"`
	EligibilityUpdatedAt       time.Time `gorm:"autoUpdateTime;column:eligibility_updated_at" json:"eligibility_updated_at"`
}

func (OutingEligibilityModel) TableName() string { return "outing_eligibility" }
