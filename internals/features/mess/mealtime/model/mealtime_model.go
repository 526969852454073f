package model

import (
	"github.com/google/uuid"
)

// The four serving windows of the mess. One row per meal.
type MealTimeModel struct {
	MealTimeID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:meal_time_id" json:"meal_time_id"`
	MealTimeMeal      string    `gorm:"size:12;not null;uniqueIndex;column:meal_time_meal" json:"meal_time_meal"`
	MealTimeStartTime string    `gorm:"size:5;not null;column:meal_time_start_time" json:"meal_time_start_time"` // "07:00"
	MealTimeEndTime   string    `gorm:"size:5;not null;column:meal_time_end_time" json:"meal_time_end_time"`     // "09:00"
}

func (MealTimeModel) TableName() string { return "meal_times" }
