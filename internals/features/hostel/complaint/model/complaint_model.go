package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "Pending"
	StatusResolved = "Resolved"
	StatusRejected = "Rejected"
)

type ComplaintModel struct {
	ComplaintID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:complaint_id" json:"complaint_id"`
	ComplaintName            string     `gorm:"size:120;not null;column:complaint_name" json:"complaint_name"`
	ComplaintAdmissionNumber string     `gorm:"size:40;not null;index;column:complaint_admission_number" json:"complaint_admission_number"`
	ComplaintRoomNumber      string     `gorm:"size:20;not null;column:complaint_room_number" json:"complaint_room_number"`
	ComplaintText            string     `gorm:"type:text;not null;column:complaint_text" json:"complaint_text"`
	ComplaintStatus          string     `gorm:"size:12;not null;default:'Pending';column:complaint_status" json:"complaint_status"`
	ComplaintRemark          string     `gorm:"type:text;column:complaint_remark" json:"complaint_remark"`
	ComplaintRemarkAddedAt   *time.Time `gorm:"column:complaint_remark_added_at" json:"complaint_remark_added_at,omitempty"`
	ComplaintCreatedAt       time.Time  `gorm:"autoCreateTime;column:complaint_created_at" json:"complaint_created_at"`
	ComplaintUpdatedAt       time.Time  `gorm:"autoUpdateTime;column:complaint_updated_at" json:"complaint_updated_at"`
}

func (ComplaintModel) TableName() string { return "complaints" }
