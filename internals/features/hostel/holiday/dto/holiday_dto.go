package dto

import (
	"strings"

	"github.com/google/uuid"

	model "santhome_backend/internals/features/hostel/holiday/model"
)

type CreateHolidayRequest struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	HolidayType string `json:"holidayType" validate:"required,max=40"`
	Reason      string `json:"reason" validate:"required,min=3"`
}

func (r CreateHolidayRequest) ToModel() *model.HolidayModel {
	return &model.HolidayModel{
		HolidayDate:   r.Date,
		HolidayType:   strings.TrimSpace(r.HolidayType),
		HolidayReason: strings.TrimSpace(r.Reason),
	}
}

// UpdateHolidayRequest carries only the fields the admin actually changed.
type UpdateHolidayRequest struct {
	Date        *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	HolidayType *string `json:"holidayType" validate:"omitempty,max=40"`
	Reason      *string `json:"reason" validate:"omitempty,min=3"`
}

func (r UpdateHolidayRequest) Empty() bool {
	return r.Date == nil && r.HolidayType == nil && r.Reason == nil
}

func (r UpdateHolidayRequest) ApplyToModel(m *model.HolidayModel) {
	if r.Date != nil {
		m.HolidayDate = *r.Date
	}
	if r.HolidayType != nil {
		m.HolidayType = strings.TrimSpace(*r.HolidayType)
	}
	if r.Reason != nil {
		m.HolidayReason = strings.TrimSpace(*r.Reason)
	}
}

type HolidayResponse struct {
	ID          uuid.UUID `json:"id"`
	Date        string    `json:"date"`
	HolidayType string    `json:"holidayType"`
	Reason      string    `json:"reason"`
	CreatedAt   string    `json:"createdAt"`
}

func NewHolidayResponse(m *model.HolidayModel) *HolidayResponse {
	if m == nil {
		return nil
	}
	return &HolidayResponse{
		ID:          m.HolidayID,
		Date:        m.HolidayDate,
		HolidayType: m.HolidayType,
		Reason:      m.HolidayReason,
		CreatedAt:   m.HolidayCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func NewHolidayResponses(rows []model.HolidayModel) []*HolidayResponse {
	out := make([]*HolidayResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewHolidayResponse(&rows[i]))
	}
	return out
}
