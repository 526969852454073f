package dto

import (
	"strings"

	model "santhome_backend/internals/features/finance/feedue/model"
)

type FeeDueEntry struct {
	AdmissionNumber string `json:"admissionNumber"`
	Name            string `json:"name"`
	Branch          string `json:"branch"`
	Semester        string `json:"semester"`
	PhoneNumber     string `json:"phoneNumber"`
	TotalPaid       int64  `json:"totalPaid"`
	TotalDue        *int64 `json:"totalDue"`
}

// Validate applies the office upload rules row by row; the caller skips
// bad rows instead of rejecting the whole sheet.
func (e FeeDueEntry) Validate() string {
	if e.AdmissionNumber == "" || e.Name == "" || e.TotalDue == nil {
		return "Missing required fields (admissionNumber, name, totalDue)"
	}
	if e.TotalPaid < 0 || *e.TotalDue < 0 {
		return "totalPaid / totalDue cannot be negative"
	}
	return ""
}

func (e FeeDueEntry) ToModel() *model.FeeDueModel {
	return &model.FeeDueModel{
		FeeAdmissionNumber: strings.TrimSpace(e.AdmissionNumber),
		FeeStudentName:     strings.TrimSpace(e.Name),
		FeeBranch:          strings.TrimSpace(e.Branch),
		FeeSemester:        strings.TrimSpace(e.Semester),
		FeePhoneNumber:     strings.TrimSpace(e.PhoneNumber),
		FeeTotalPaid:       e.TotalPaid,
		FeeTotalDue:        *e.TotalDue,
	}
}

type SkippedFeeEntry struct {
	AdmissionNumber string `json:"admissionNumber"`
	Reason          string `json:"reason"`
}

type BulkDeleteFeeRequest struct {
	AdmissionNumbers []string `json:"admissionNumbers" validate:"required,min=1"`
}

type InitiateFeePaymentRequest struct {
	AdmissionNumber string `json:"admissionNumber" validate:"required,max=40"`
	Amount          int64  `json:"amount" validate:"required,gt=0"`
	Email           string `json:"email" validate:"omitempty,email"`
}
