package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "santhome_backend/internals/features/mess/messcut/model"
	service "santhome_backend/internals/features/mess/messcut/service"
)

/* ===================== REQUESTS ===================== */

type CreateMesscutRequest struct {
	Name            string `json:"name" validate:"omitempty,max=120"`
	AdmissionNumber string `json:"admissionNo" validate:"required,max=40"`
	RoomNumber      string `json:"roomNo" validate:"omitempty,max=20"`
	LeavingDate     string `json:"leavingDate" validate:"required,datetime=2006-01-02"`
	LeavingTime     string `json:"leavingTime" validate:"omitempty,max=40"`
	ReturningDate   string `json:"returningDate" validate:"omitempty,datetime=2006-01-02"`
	ReturningTime   string `json:"returningTime" validate:"omitempty,max=40"`
	Reason          string `json:"reason" validate:"required,min=3"`
}

// ToModel builds the record; the display period is derived here so it is
// stored alongside the raw dates.
func (r CreateMesscutRequest) ToModel() *model.MesscutModel {
	period := service.CalculatePeriod(r.LeavingDate, r.LeavingTime, r.ReturningDate, r.ReturningTime)

	return &model.MesscutModel{
		MesscutName:            strings.TrimSpace(r.Name),
		MesscutAdmissionNumber: strings.TrimSpace(r.AdmissionNumber),
		MesscutRoomNumber:      strings.TrimSpace(r.RoomNumber),
		MesscutLeavingDate:     strings.TrimSpace(r.LeavingDate),
		MesscutLeavingTime:     strings.TrimSpace(r.LeavingTime),
		MesscutReturningDate:   strings.TrimSpace(r.ReturningDate),
		MesscutReturningTime:   strings.TrimSpace(r.ReturningTime),
		MesscutReason:          strings.TrimSpace(r.Reason),
		MesscutPeriod:          period,
		MesscutStatus:          model.StatusPending,
		MesscutParentStatus:    model.ParentStatusPending,
	}
}

type UpdateMesscutStatusRequest struct {
	Status      string `json:"status" validate:"required,oneof=Pending ACCEPT REJECT"`
	AdminRemark string `json:"adminRemark" validate:"omitempty"`
	UpdatedBy   string `json:"updatedBy" validate:"omitempty,max=120"`
}

func (r UpdateMesscutStatusRequest) ApplyToModel(m *model.MesscutModel) {
	m.MesscutStatus = r.Status
	m.MesscutAdminRemark = r.AdminRemark
	if r.UpdatedBy != "" {
		m.MesscutUpdatedBy = r.UpdatedBy
	} else {
		m.MesscutUpdatedBy = "Admin"
	}
	now := time.Now()
	m.MesscutStatusUpdatedAt = &now
}

type UpdateParentStatusRequest struct {
	ParentStatus string `json:"parentStatus" validate:"required,oneof=APPROVE REJECT"`
}

/* ===================== RESPONSES ===================== */

type MesscutResponse struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	AdmissionNumber string     `json:"admissionNo"`
	RoomNumber      string     `json:"roomNo"`
	LeavingDate     string     `json:"leavingDate"`
	LeavingTime     string     `json:"leavingTime"`
	ReturningDate   string     `json:"returningDate"`
	ReturningTime   string     `json:"returningTime"`
	Reason          string     `json:"reason"`
	Period          string     `json:"period"`
	Status          string     `json:"status"`
	ParentStatus    string     `json:"parentStatus"`
	AdminRemark     string     `json:"adminRemark,omitempty"`
	UpdatedBy       string     `json:"updatedBy,omitempty"`
	StatusUpdatedAt *time.Time `json:"statusUpdatedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func NewMesscutResponse(m *model.MesscutModel) *MesscutResponse {
	if m == nil {
		return nil
	}
	return &MesscutResponse{
		ID:              m.MesscutID,
		Name:            m.MesscutName,
		AdmissionNumber: m.MesscutAdmissionNumber,
		RoomNumber:      m.MesscutRoomNumber,
		LeavingDate:     m.MesscutLeavingDate,
		LeavingTime:     m.MesscutLeavingTime,
		ReturningDate:   m.MesscutReturningDate,
		ReturningTime:   m.MesscutReturningTime,
		Reason:          m.MesscutReason,
		Period:          m.MesscutPeriod,
		Status:          m.MesscutStatus,
		ParentStatus:    m.MesscutParentStatus,
		AdminRemark:     m.MesscutAdminRemark,
		UpdatedBy:       m.MesscutUpdatedBy,
		StatusUpdatedAt: m.MesscutStatusUpdatedAt,
		CreatedAt:       m.MesscutCreatedAt,
	}
}

func NewMesscutResponses(rows []model.MesscutModel) []*MesscutResponse {
	out := make([]*MesscutResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewMesscutResponse(&rows[i]))
	}
	return out
}
