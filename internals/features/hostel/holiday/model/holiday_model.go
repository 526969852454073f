package model

import (
	"time"

	"github.com/google/uuid"
)

// HolidayModel is a calendar event published to the notice board. The date
// is kept as a plain YYYY-MM-DD string so it never shifts across timezones.
type HolidayModel struct {
	HolidayID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:holiday_id" json:"holiday_id"`
	HolidayDate      string    `gorm:"size:10;not null;index;column:holiday_date" json:"holiday_date"`
	HolidayType      string    `gorm:"size:40;not null;column:holiday_type" json:"holiday_type"`
	HolidayReason    string    `gorm:"type:text;not null;column:holiday_reason" json:"holiday_reason"`
	HolidayCreatedAt time.Time `gorm:"autoCreateTime;column:holiday_created_at" json:"holiday_created_at"`
	HolidayUpdatedAt time.Time `gorm:"autoUpdateTime;column:holiday_updated_at" json:"holiday_updated_at"`
}

func (HolidayModel) TableName() string { return "holidays" }
