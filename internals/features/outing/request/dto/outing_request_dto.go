package dto

import (
	"strings"
	"time"

	messcut "santhome_backend/internals/features/mess/messcut/service"
	model "santhome_backend/internals/features/outing/request/model"
)

type CreateOutingRequest struct {
	AdmissionNumber string `json:"admissionNumber" validate:"required,max=40"`
	StudentName     string `json:"studentName" validate:"required,max=120"`
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	LeavingTime     string `json:"leavingTime" validate:"required"`
	ReturningTime   string `json:"returningTime" validate:"required"`
	Reason          string `json:"reason" validate:"required,min=3"`
}

func (r CreateOutingRequest) ToModel() (*model.OutingRequestModel, error) {
	day, err := messcut.ParseCivilDate(r.Date)
	if err != nil {
		return nil, err
	}
	return &model.OutingRequestModel{
		OutingAdmissionNumber: strings.TrimSpace(r.AdmissionNumber),
		OutingStudentName:     strings.TrimSpace(r.StudentName),
		OutingDate:            r.Date,
		OutingLeavingTime:     messcut.NormalizeTime(r.LeavingTime),
		OutingReturningTime:   messcut.NormalizeTime(r.ReturningTime),
		OutingReason:          strings.TrimSpace(r.Reason),
		OutingMonth:           int(day.Month),
		OutingYear:            day.Year,
		OutingParentStatus:    model.DecisionPending,
		OutingAdminStatus:     model.DecisionPending,
	}, nil
}

type OutingDecisionRequest struct {
	Status  string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
	Comment string `json:"adminComment"`
}

// MonthlyReportRow aggregates taken outings per student.
type MonthlyReportRow struct {
	AdmissionNumber string `json:"admissionNumber" gorm:"column:admission_number"`
	StudentName     string `json:"studentName" gorm:"column:student_name"`
	TotalOutings    int64  `json:"totalOutings" gorm:"column:total_outings"`
}

type OutingStats struct {
	Total    int64 `json:"total"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
	Pending  int64 `json:"pending"`
	Monthly  int64 `json:"monthly"`
}

type ApprovedOutingRow struct {
	AdmissionNumber string `json:"admissionNumber" gorm:"column:admission_number"`
	StudentName     string `json:"studentName" gorm:"column:student_name"`
	LastOutingDate  string `json:"lastOutingDate" gorm:"column:last_outing_date"`
}

type OutingResponse struct {
	ID              string     `json:"id"`
	AdmissionNumber string     `json:"admissionNumber"`
	StudentName     string     `json:"studentName"`
	Date            string     `json:"date"`
	LeavingTime     string     `json:"leavingTime"`
	ReturningTime   string     `json:"returningTime"`
	Reason          string     `json:"reason"`
	Month           int        `json:"month"`
	Year            int        `json:"year"`
	ParentStatus    string     `json:"parentStatus"`
	ParentDecidedAt *time.Time `json:"parentDecidedAt,omitempty"`
	AdminStatus     string     `json:"adminStatus"`
	AdminComment    string     `json:"adminComment,omitempty"`
	AdminDecidedAt  *time.Time `json:"adminDecidedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func NewOutingResponse(m *model.OutingRequestModel) *OutingResponse {
	if m == nil {
		return nil
	}
	return &OutingResponse{
		ID:              m.OutingID.String(),
		AdmissionNumber: m.OutingAdmissionNumber,
		StudentName:     m.OutingStudentName,
		Date:            m.OutingDate,
		LeavingTime:     m.OutingLeavingTime,
		ReturningTime:   m.OutingReturningTime,
		Reason:          m.OutingReason,
		Month:           m.OutingMonth,
		Year:            m.OutingYear,
		ParentStatus:    m.OutingParentStatus,
		ParentDecidedAt: m.OutingParentDecidedAt,
		AdminStatus:     m.OutingAdminStatus,
		AdminComment:    m.OutingAdminComment,
		AdminDecidedAt:  m.OutingAdminDecidedAt,
		CreatedAt:       m.OutingCreatedAt,
	}
}

func NewOutingResponses(rows []model.OutingRequestModel) []*OutingResponse {
	out := make([]*OutingResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewOutingResponse(&rows[i]))
	}
	return out
}
