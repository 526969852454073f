package dto

import (
	"strings"

	model "santhome_backend/internals/features/mess/mealtime/model"
)

type UpsertMealTimeRequest struct {
	Meal      string `json:"meal" validate:"required,oneof=breakfast lunch tea dinner"`
	StartTime string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime   string `json:"endTime" validate:"required,datetime=15:04"`
}

func (r UpsertMealTimeRequest) ToModel() *model.MealTimeModel {
	return &model.MealTimeModel{
		MealTimeMeal:      strings.ToLower(strings.TrimSpace(r.Meal)),
		MealTimeStartTime: r.StartTime,
		MealTimeEndTime:   r.EndTime,
	}
}

type MealTimeResponse struct {
	Meal      string `json:"meal"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func NewMealTimeResponse(m *model.MealTimeModel) *MealTimeResponse {
	if m == nil {
		return nil
	}
	return &MealTimeResponse{
		Meal:      m.MealTimeMeal,
		StartTime: m.MealTimeStartTime,
		EndTime:   m.MealTimeEndTime,
	}
}
