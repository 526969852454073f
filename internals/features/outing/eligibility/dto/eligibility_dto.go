package dto

import (
	model "santhome_backend/internals/features/outing/eligibility/model"
)

type EligibilityEntry struct {
	AdmissionNumber string `json:"admissionNumber" validate:"required,max=40"`
	StudentName     string `json:"studentName" validate:"required,max=120"`
	IsEligible      string `json:"isEligible" validate:"required,oneof=YES NO"`
}

type SetEligibilityBulkRequest struct {
	Students []EligibilityEntry `json:"students" validate:"required,min=1,dive"`
}

func (e EligibilityEntry) ToModel() *model.OutingEligibilityModel {
	flag := model.EligibleNo
	if e.IsEligible == model.EligibleYes {
		flag = model.EligibleYes
	}
	return &model.OutingEligibilityModel{
		EligibilityAdmissionNumber: e.AdmissionNumber,
		EligibilityStudentName:     e.StudentName,
		EligibilityIsEligible:      flag,
	}
}

type EligibleStudent struct {
	AdmissionNumber string `json:"admissionNumber"`
	StudentName     string `json:"studentName"`
}
