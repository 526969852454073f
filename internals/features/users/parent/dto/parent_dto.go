package dto

import (
	"strings"

	model "santhome_backend/internals/features/users/parent/model"
)

type LoginParentRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ChangeParentPasswordRequest struct {
	Username        string `json:"username" validate:"required"`
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

type CreateParentRequest struct {
	Username        string `json:"username" validate:"required,max=60"`
	Password        string `json:"password" validate:"required,min=6"`
	ParentName      string `json:"parentName" validate:"required,max=120"`
	StudentName     string `json:"studentName" validate:"required,max=120"`
	StudentCode     string `json:"studentJecCode" validate:"required,max=20"`
	AdmissionNumber string `json:"admissionNumber" validate:"required,max=40"`
	Semester        string `json:"semester" validate:"omitempty,max=10"`
	Branch          string `json:"branch" validate:"required,max=80"`
	RoomNumber      string `json:"roomNumber" validate:"required,max=20"`
}

func (r CreateParentRequest) ToModel(passwordHash string) *model.ParentModel {
	return &model.ParentModel{
		ParentUsername:        strings.TrimSpace(r.Username),
		ParentPasswordHash:    passwordHash,
		ParentName:            strings.TrimSpace(r.ParentName),
		ParentStudentName:     strings.TrimSpace(r.StudentName),
		ParentStudentCode:     strings.ToUpper(strings.TrimSpace(r.StudentCode)),
		ParentAdmissionNumber: strings.TrimSpace(r.AdmissionNumber),
		ParentSemester:        strings.TrimSpace(r.Semester),
		ParentBranch:          strings.TrimSpace(r.Branch),
		ParentRoomNumber:      strings.TrimSpace(r.RoomNumber),
	}
}

type ParentProfile struct {
	ParentName      string `json:"parentName"`
	StudentName     string `json:"studentName"`
	StudentCode     string `json:"studentJecCode"`
	AdmissionNumber string `json:"admissionNumber"`
	Semester        string `json:"semester"`
	Branch          string `json:"branch"`
	RoomNumber      string `json:"roomNumber"`
}

func NewParentProfile(m *model.ParentModel) *ParentProfile {
	if m == nil {
		return nil
	}
	return &ParentProfile{
		ParentName:      m.ParentName,
		StudentName:     m.ParentStudentName,
		StudentCode:     m.ParentStudentCode,
		AdmissionNumber: m.ParentAdmissionNumber,
		Semester:        m.ParentSemester,
		Branch:          m.ParentBranch,
		RoomNumber:      m.ParentRoomNumber,
	}
}

type ParentLoginResponse struct {
	AccessToken  string         `json:"accessToken"`
	RefreshToken string         `json:"refreshToken"`
	User         *ParentProfile `json:"user"`
}
