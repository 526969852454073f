package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "santhome_backend/internals/features/hostel/apology/model"
)

type CreateApologyRequest struct {
	RoomNumber      string `json:"roomNo" validate:"required,max=20"`
	StudentName     string `json:"studentName" validate:"required,max=120"`
	AdmissionNumber string `json:"admissionNo" validate:"required,max=40"`
	Reason          string `json:"reason" validate:"required,min=3"`
	SubmittedBy     string `json:"submittedBy" validate:"required,max=120"`
}

func (r CreateApologyRequest) ToModel() *model.ApologyModel {
	return &model.ApologyModel{
		ApologyRoomNumber:      strings.TrimSpace(r.RoomNumber),
		ApologyStudentName:     strings.TrimSpace(r.StudentName),
		ApologyAdmissionNumber: strings.TrimSpace(r.AdmissionNumber),
		ApologyReason:          strings.TrimSpace(r.Reason),
		ApologySubmittedBy:     strings.TrimSpace(r.SubmittedBy),
		ApologyStatus:          model.StatusPending,
	}
}

type UpdateApologyStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Approved Rejected"`
}

type ApologyResponse struct {
	ID              uuid.UUID `json:"id"`
	RoomNumber      string    `json:"roomNo"`
	StudentName     string    `json:"studentName"`
	AdmissionNumber string    `json:"admissionNo"`
	Reason          string    `json:"reason"`
	SubmittedBy     string    `json:"submittedBy"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

func NewApologyResponse(m *model.ApologyModel) *ApologyResponse {
	if m == nil {
		return nil
	}
	return &ApologyResponse{
		ID:              m.ApologyID,
		RoomNumber:      m.ApologyRoomNumber,
		StudentName:     m.ApologyStudentName,
		AdmissionNumber: m.ApologyAdmissionNumber,
		Reason:          m.ApologyReason,
		SubmittedBy:     m.ApologySubmittedBy,
		Status:          m.ApologyStatus,
		CreatedAt:       m.ApologyCreatedAt,
	}
}

func NewApologyResponses(rows []model.ApologyModel) []*ApologyResponse {
	out := make([]*ApologyResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewApologyResponse(&rows[i]))
	}
	return out
}
