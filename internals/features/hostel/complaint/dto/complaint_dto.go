package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "santhome_backend/internals/features/hostel/complaint/model"
)

type CreateComplaintRequest struct {
	Name            string `json:"name" validate:"required,max=120"`
	AdmissionNumber string `json:"admissionNo" validate:"required,max=40"`
	RoomNumber      string `json:"roomNo" validate:"required,max=20"`
	Complaint       string `json:"complaint" validate:"required,min=3"`
}

func (r CreateComplaintRequest) ToModel() *model.ComplaintModel {
	return &model.ComplaintModel{
		ComplaintName:            strings.TrimSpace(r.Name),
		ComplaintAdmissionNumber: strings.TrimSpace(r.AdmissionNumber),
		ComplaintRoomNumber:      strings.TrimSpace(r.RoomNumber),
		ComplaintText:            strings.TrimSpace(r.Complaint),
		ComplaintStatus:          model.StatusPending,
	}
}

// UpdateComplaintRequest is partial: status only, remark only, or both.
// An empty remark string is a deliberate clear, so pointers matter here.
type UpdateComplaintRequest struct {
	Status *string `json:"status" validate:"omitempty,oneof=Pending Resolved Rejected"`
	Remark *string `json:"remark" validate:"omitempty"`
}

func (r UpdateComplaintRequest) Empty() bool {
	return r.Status == nil && r.Remark == nil
}

func (r UpdateComplaintRequest) ApplyToModel(m *model.ComplaintModel) {
	if r.Status != nil {
		m.ComplaintStatus = *r.Status
	}
	if r.Remark != nil {
		m.ComplaintRemark = *r.Remark
		now := time.Now()
		m.ComplaintRemarkAddedAt = &now
	}
}

type ComplaintResponse struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	AdmissionNumber string     `json:"admissionNo"`
	RoomNumber      string     `json:"roomNo"`
	Complaint       string     `json:"complaint"`
	Status          string     `json:"status"`
	Remark          string     `json:"remark,omitempty"`
	RemarkAddedAt   *time.Time `json:"remarkAddedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func NewComplaintResponse(m *model.ComplaintModel) *ComplaintResponse {
	if m == nil {
		return nil
	}
	return &ComplaintResponse{
		ID:              m.ComplaintID,
		Name:            m.ComplaintName,
		AdmissionNumber: m.ComplaintAdmissionNumber,
		RoomNumber:      m.ComplaintRoomNumber,
		Complaint:       m.ComplaintText,
		Status:          m.ComplaintStatus,
		Remark:          m.ComplaintRemark,
		RemarkAddedAt:   m.ComplaintRemarkAddedAt,
		CreatedAt:       m.ComplaintCreatedAt,
	}
}

func NewComplaintResponses(rows []model.ComplaintModel) []*ComplaintResponse {
	out := make([]*ComplaintResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewComplaintResponse(&rows[i]))
	}
	return out
}
