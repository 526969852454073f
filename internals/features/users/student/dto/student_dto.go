package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "santhome_backend/internals/features/users/student/model"
)

type RegisterStudentRequest struct {
	Name              string  `json:"name" validate:"required,max=120"`
	AdmissionNumber   string  `json:"admissionNumber" validate:"required,max=40"`
	PhoneNumber       string  `json:"phoneNumber" validate:"omitempty,max=20"`
	Branch            string  `json:"branch" validate:"omitempty,max=80"`
	RoomNumber        string  `json:"roomNo" validate:"omitempty,max=20"`
	Year              string  `json:"year" validate:"omitempty,max=10"`
	Semester          string  `json:"sem" validate:"omitempty,max=10"`
	ParentName        string  `json:"parentName" validate:"omitempty,max=120"`
	ParentPhoneNumber string  `json:"parentPhoneNumber" validate:"omitempty,max=20"`
	Email             *string `json:"gmail" validate:"omitempty,email"`
	Password          string  `json:"password" validate:"required,min=6"`
}

func (r RegisterStudentRequest) ToModel(passwordHash string) *model.StudentModel {
	var email *string
	if r.Email != nil {
		normalized := strings.ToLower(strings.TrimSpace(*r.Email))
		if normalized != "" {
			email = &normalized
		}
	}
	return &model.StudentModel{
		StudentName:              strings.TrimSpace(r.Name),
		StudentAdmissionNumber:   strings.TrimSpace(r.AdmissionNumber),
		StudentPhoneNumber:       strings.TrimSpace(r.PhoneNumber),
		StudentBranch:            strings.TrimSpace(r.Branch),
		StudentRoomNumber:        strings.TrimSpace(r.RoomNumber),
		StudentYear:              strings.TrimSpace(r.Year),
		StudentSemester:          strings.TrimSpace(r.Semester),
		StudentParentName:        strings.TrimSpace(r.ParentName),
		StudentParentPhoneNumber: strings.TrimSpace(r.ParentPhoneNumber),
		StudentEmail:             email,
		StudentPasswordHash:      passwordHash,
	}
}

type LoginStudentRequest struct {
	AdmissionNumber string `json:"admissionNumber" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

type UpdatePasswordRequest struct {
	AdmissionNumber string `json:"admissionNumber" validate:"required"`
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

type UpdateStudentRequest struct {
	Name              *string `json:"name" validate:"omitempty,max=120"`
	PhoneNumber       *string `json:"phoneNumber" validate:"omitempty,max=20"`
	Branch            *string `json:"branch" validate:"omitempty,max=80"`
	RoomNumber        *string `json:"roomNo" validate:"omitempty,max=20"`
	Year              *string `json:"year" validate:"omitempty,max=10"`
	Semester          *string `json:"sem" validate:"omitempty,max=10"`
	ParentName        *string `json:"parentName" validate:"omitempty,max=120"`
	ParentPhoneNumber *string `json:"parentPhoneNumber" validate:"omitempty,max=20"`
	Email             *string `json:"gmail" validate:"omitempty,email"`
}

func (r UpdateStudentRequest) Empty() bool {
	return r.Name == nil && r.PhoneNumber == nil && r.Branch == nil &&
		r.RoomNumber == nil && r.Year == nil && r.Semester == nil &&
		r.ParentName == nil && r.ParentPhoneNumber == nil && r.Email == nil
}

func (r UpdateStudentRequest) ApplyToModel(m *model.StudentModel) {
	if r.Name != nil {
		m.StudentName = strings.TrimSpace(*r.Name)
	}
	if r.PhoneNumber != nil {
		m.StudentPhoneNumber = strings.TrimSpace(*r.PhoneNumber)
	}
	if r.Branch != nil {
		m.StudentBranch = strings.TrimSpace(*r.Branch)
	}
	if r.RoomNumber != nil {
		m.StudentRoomNumber = strings.TrimSpace(*r.RoomNumber)
	}
	if r.Year != nil {
		m.StudentYear = strings.TrimSpace(*r.Year)
	}
	if r.Semester != nil {
		m.StudentSemester = strings.TrimSpace(*r.Semester)
	}
	if r.ParentName != nil {
		m.StudentParentName = strings.TrimSpace(*r.ParentName)
	}
	if r.ParentPhoneNumber != nil {
		m.StudentParentPhoneNumber = strings.TrimSpace(*r.ParentPhoneNumber)
	}
	if r.Email != nil {
		normalized := strings.ToLower(strings.TrimSpace(*r.Email))
		if normalized == "" {
			m.StudentEmail = nil
		} else {
			m.StudentEmail = &normalized
		}
	}
}

type BulkSemesterUpdateRequest struct {
	AdmissionNumbers []string `json:"admissionNumbers" validate:"required,min=1"`
	Semester         string   `json:"sem" validate:"required,max=10"`
}

type StudentResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	AdmissionNumber   string    `json:"admissionNumber"`
	PhoneNumber       string    `json:"phoneNumber,omitempty"`
	Branch            string    `json:"branch,omitempty"`
	RoomNumber        string    `json:"roomNo,omitempty"`
	Year              string    `json:"year,omitempty"`
	Semester          string    `json:"sem,omitempty"`
	ParentName        string    `json:"parentName,omitempty"`
	ParentPhoneNumber string    `json:"parentPhoneNumber,omitempty"`
	Email             *string   `json:"gmail,omitempty"`
	ProfilePhotoURL   *string   `json:"profilePhoto,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

func NewStudentResponse(m *model.StudentModel) *StudentResponse {
	if m == nil {
		return nil
	}
	return &StudentResponse{
		ID:                m.StudentID,
		Name:              m.StudentName,
		AdmissionNumber:   m.StudentAdmissionNumber,
		PhoneNumber:       m.StudentPhoneNumber,
		Branch:            m.StudentBranch,
		RoomNumber:        m.StudentRoomNumber,
		Year:              m.StudentYear,
		Semester:          m.StudentSemester,
		ParentName:        m.StudentParentName,
		ParentPhoneNumber: m.StudentParentPhoneNumber,
		Email:             m.StudentEmail,
		ProfilePhotoURL:   m.StudentProfilePhotoURL,
		CreatedAt:         m.StudentCreatedAt,
	}
}

func NewStudentResponses(rows []model.StudentModel) []*StudentResponse {
	out := make([]*StudentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewStudentResponse(&rows[i]))
	}
	return out
}

type LoginResponse struct {
	AccessToken  string           `json:"accessToken"`
	RefreshToken string           `json:"refreshToken"`
	User         *StudentResponse `json:"user"`
}
